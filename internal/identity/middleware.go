package identity

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Header carries the id of the already-authenticated caller. The gateway in
// front of this service validates credentials and forwards the numeric id.
const Header = "X-Sharer-User-Id"

const contextKey = "shareUserID"

// Required is a Gin middleware that extracts the caller id from the
// X-Sharer-User-Id header and aborts with 400 when it is missing or not a
// positive integer.
func Required() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(Header)
		if header == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"error": "missing " + Header + " header",
			})
			return
		}

		id, err := strconv.ParseInt(header, 10, 64)
		if err != nil || id <= 0 {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"error": "invalid " + Header + " header",
			})
			return
		}

		c.Set(contextKey, id)
		c.Next()
	}
}

// UserID returns the authenticated caller's id or 0 when absent.
func UserID(c *gin.Context) int64 {
	if v, ok := c.Get(contextKey); ok {
		if id, ok := v.(int64); ok {
			return id
		}
	}
	return 0
}
