package middleware

import (
	"net/http"

	"skyward-labs/flightdeck/internal/auth"
)

// IsMemberMiddleware requires any active VA affiliation in the claims.
func IsMemberMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

			claims := auth.GetUserClaims(r.Context())
			if claims == nil || claims.VAID() == "" {
				http.Error(w, "Forbidden. Need VA membership", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
