package middlewares

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ModeratorAuth gates moderator routes behind the shared moderator password.
// An empty configured password keeps the surface locked; real authentication
// is an external collaborator's job.
func ModeratorAuth(password string) gin.HandlerFunc {
	return func(c *gin.Context) {
		supplied := c.GetHeader("X-Moderator-Password")
		if password == "" || subtle.ConstantTimeCompare([]byte(supplied), []byte(password)) != 1 {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid moderator password"})
			c.Abort()
			return
		}
		c.Next()
	}
}
