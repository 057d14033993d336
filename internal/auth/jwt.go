package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"skyward-labs/flightdeck/internal/constants"
)

// tokenClaims is the wire shape of tracker-issued tokens: HS256 with the
// pilot id, the active VA and the role held in that VA.
type tokenClaims struct {
	UserID string `json:"user_id"`
	VAID   string `json:"va_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// SignToken issues a token for a pilot session. Used by the tracker login
// flow and by tests.
func SignToken(secret, userID, vaID string, role constants.VARole, ttl time.Duration) (string, error) {
	claims := tokenClaims{
		UserID: userID,
		VAID:   vaID,
		Role:   role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseToken validates an HS256 bearer token and returns UserClaims.
// Role strings are normalized here; nothing past this point compares
// mixed-case roles.
func ParseToken(secret, tokenString string) (UserClaims, error) {
	var claims tokenClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	role, err := constants.ParseRole(claims.Role)
	if err != nil {
		return nil, err
	}

	return &JWTUserClaims{
		UserUUID:  claims.UserID,
		RoleValue: role,
		VaUUID:    claims.VAID,
	}, nil
}
