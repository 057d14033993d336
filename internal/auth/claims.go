package auth

import "skyward-labs/flightdeck/internal/constants"

// UserClaims is what the auth middleware places in the request context,
// regardless of whether the caller authenticated with a JWT (tracker,
// web client) or an API key (bots).
type UserClaims interface {
	UserID() string
	Role() constants.VARole
	VAID() string
	Source() string
}

type JWTUserClaims struct {
	UserUUID  string
	RoleValue constants.VARole
	VaUUID    string
}

func (c *JWTUserClaims) UserID() string         { return c.UserUUID }
func (c *JWTUserClaims) Role() constants.VARole { return c.RoleValue }
func (c *JWTUserClaims) VAID() string           { return c.VaUUID }
func (c *JWTUserClaims) Source() string         { return "JWT" }

type APIKeyClaims struct {
	UserUUID  string
	RoleValue constants.VARole
	VaUUID    string
}

func (c *APIKeyClaims) UserID() string         { return c.UserUUID }
func (c *APIKeyClaims) Role() constants.VARole { return c.RoleValue }
func (c *APIKeyClaims) VAID() string           { return c.VaUUID }
func (c *APIKeyClaims) Source() string         { return "API_KEY" }
