package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ecoshare/ecoshare/internal/models"
)

// RequireRole gates a route group on the role claim carried by the
// session token. RequireAuth must run first.
func RequireRole(role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetAccountID(c) == 0 {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			c.Abort()
			return
		}

		if GetRole(c) != role {
			c.JSON(http.StatusForbidden, gin.H{"error": "insufficient role"})
			c.Abort()
			return
		}

		c.Next()
	}
}
