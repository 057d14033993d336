package middleware

import (
	"net/http"
	"strings"

	"skyward-labs/flightdeck/internal/auth"
	"skyward-labs/flightdeck/internal/db/repositories"
)

// AuthMiddleware accepts either a Bearer JWT (tracker and web clients) or
// an X-API-Key plus X-VA-Id pair (bot clients). Both paths end with
// UserClaims in the request context.
func AuthMiddleware(jwtSecret string, keysRepo *repositories.KeysRepo, memberRepo *repositories.MembershipRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

			authHeader := r.Header.Get("Authorization")
			apiKey := r.Header.Get("X-API-Key")

			var claims auth.UserClaims

			switch {
			case strings.HasPrefix(authHeader, "Bearer "):
				token := strings.TrimPrefix(authHeader, "Bearer ")
				parsed, err := auth.ParseToken(jwtSecret, token)
				if err != nil {
					http.Error(w, "Unauthorized. Invalid token", http.StatusUnauthorized)
					return
				}
				claims = parsed

			case apiKey != "":
				vaID := r.Header.Get("X-VA-Id")

				keyRes, err := keysRepo.GetStatus(r.Context(), apiKey)
				if err != nil {
					http.Error(w, "Unauthorized. Invalid API Key", http.StatusUnauthorized)
					return
				}
				if !keyRes.Status {
					http.Error(w, "Unauthorized. Inactive API Key", http.StatusUnauthorized)
					return
				}

				member, err := memberRepo.GetByUserAndVA(r.Context(), keyRes.UserID, vaID)
				if err != nil || member == nil {
					http.Error(w, "Unauthorized. No membership for VA", http.StatusUnauthorized)
					return
				}

				claims = &auth.APIKeyClaims{
					UserUUID:  keyRes.UserID,
					RoleValue: member.Role,
					VaUUID:    vaID,
				}

			default:
				http.Error(w, "Unauthorized. Missing credentials", http.StatusUnauthorized)
				return
			}

			ctx := auth.SetUserClaims(r.Context(), claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
