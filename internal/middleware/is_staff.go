package middleware

import (
	"net/http"

	"skyward-labs/flightdeck/internal/auth"
)

// IsStaffMiddleware gates the report review and tour management surface
// to owners and admins.
func IsStaffMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

			claims := auth.GetUserClaims(r.Context())
			if claims == nil {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			if claims.Role().IsStaff() {
				next.ServeHTTP(w, r)
				return
			}
			http.Error(w, "Forbidden. Need staff perms", http.StatusForbidden)
		})
	}
}
