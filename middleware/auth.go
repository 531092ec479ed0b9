package middleware

import (
	"context"
	"net/http"
	"strings"

	"washex/models"
	"washex/utils"

	"github.com/gin-gonic/gin"
)

// StaffAuthMiddleware authenticates staff via Bearer JWT and checks the
// session against the Redis auth cache so revoked tokens stop working
// immediately. On success it stores staffID and staffRole on the context.
func StaffAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		staffID, role, err := utils.VerifyToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}
		if !utils.SessionValid(context.Background(), staffID, tokenString) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "session revoked, sign in again"})
			return
		}

		c.Set("staffID", staffID)
		c.Set("staffRole", role)
		c.Next()
	}
}

// RequireRole gates a route group to the given staff roles. Admins pass
// every gate.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, _ := c.Get("staffRole")
		roleStr, _ := role.(string)
		if roleStr == models.RoleAdmin {
			c.Next()
			return
		}
		for _, allowed := range roles {
			if roleStr == allowed {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "insufficient role"})
	}
}
