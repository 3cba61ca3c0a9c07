package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// AdminMiddleware must run after AuthMiddleware.
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !c.GetBool("is_admin") {
			c.JSON(http.StatusForbidden, gin.H{"message": "access denied, admin only"})
			c.Abort()
			return
		}
		c.Next()
	}
}
