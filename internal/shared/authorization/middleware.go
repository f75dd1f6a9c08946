package authorization

import (
	"github.com/gin-gonic/gin"
)

func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole := c.GetString("user_role")
		if userRole != string(RoleAdmin) {
			c.JSON(403, gin.H{
				"error": "admin access required",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireWriter rejects read_only accounts on mutating routes.
func RequireWriter() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := ParseRole(c.GetString("user_role"))
		if !role.CanWrite() {
			c.JSON(403, gin.H{
				"error": "write access required",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
