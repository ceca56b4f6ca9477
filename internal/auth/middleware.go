package auth

import (
	"strings"

	"github.com/gin-gonic/gin"

	apierrors "codeberg.org/tubespark/server/internal/errors"
)

// validates JWT tokens and adds user info to context
func (a *Authenticator) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			apierrors.Unauthorized(c, "authorization header required")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			apierrors.Unauthorized(c, "invalid authorization header format")
			return
		}

		claims, err := a.ValidateJWT(parts[1])
		if err != nil {
			apierrors.Unauthorized(c, "invalid or expired token")
			return
		}

		c.Set("user_id", claims.Identity())
		c.Set("user_email", claims.Email)

		c.Next()
	}
}

// extracts user_id from context after Middleware
func GetUserID(c *gin.Context) (string, bool) {
	userID := c.GetString("user_id")

	return userID, userID != ""
}
