package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionMiddleware assigns a session id when the client did not send one
// and echoes it back on the response.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionId := c.GetHeader("X-Session-ID")
		if sessionId == "" {
			sessionId = uuid.NewString()
		}

		c.Set("sessionId", sessionId)
		c.Writer.Header().Set("X-Session-ID", sessionId)

		c.Next()
	}
}
