package auth

import (
	"github.com/golang-jwt/jwt/v5"
)

// represents JWT claims. The user id comes from user_id when present,
// otherwise from the standard sub claim.
type Claims struct {
	UserID string `json:"user_id,omitempty"`
	Email  string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// returns the authenticated user id carried by the token
func (c *Claims) Identity() string {
	if c.UserID != "" {
		return c.UserID
	}

	return c.Subject
}

// issues and validates HS256 session tokens
type Authenticator struct {
	secret []byte
}
