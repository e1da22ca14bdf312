package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	// UserIDHeader carries the user id resolved by the upstream gateway
	UserIDHeader = "X-User-Id"
	// UserIDKey is where the resolved id is stored on the gin context
	UserIDKey = "user_id"
)

// Identity copies the resolved user id into the context. Requests without
// the header pass through anonymously; a non-numeric id is a bad request.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(UserIDHeader)
		if raw == "" {
			c.Next()
			return
		}
		uid, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || uid <= 0 {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid " + UserIDHeader})
			return
		}
		c.Set(UserIDKey, uid)
		c.Next()
	}
}
