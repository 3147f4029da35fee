package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	userIDKey    = "userId"
	userIDHeader = "X-User-Id"
	maxUserIDLen = 128
)

// Identity stores the optional caller id from the X-User-Id header. Requests
// without it are anonymous and still served.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader(userIDHeader))
		if len(id) > maxUserIDLen {
			id = id[:maxUserIDLen]
		}
		if id != "" {
			c.Set(userIDKey, id)
		}
		c.Next()
	}
}

// UserIDFromContext fetches the user ID set by the identity middleware.
func UserIDFromContext(c *gin.Context) string {
	if c == nil {
		return ""
	}
	val, _ := c.Get(userIDKey)
	if id, ok := val.(string); ok {
		return id
	}
	return ""
}
