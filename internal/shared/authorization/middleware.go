package authorization

import (
	"github.com/gin-gonic/gin"

	"klevant/internal/shared/constants"
)

// RequireAdmin aborts the request unless the authenticated user is an admin.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(constants.ContextKeyUserRole)
		if role != string(RoleAdmin) {
			c.JSON(403, gin.H{
				"error": "admin access required",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireRole aborts the request unless the authenticated user holds one of
// the given roles.
func RequireRole(roles ...UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		current := UserRole(c.GetString(constants.ContextKeyUserRole))
		for _, r := range roles {
			if current == r {
				c.Next()
				return
			}
		}
		c.JSON(403, gin.H{
			"error": "insufficient role",
		})
		c.Abort()
	}
}
