package middleware

import (
	"github.com/fotoflo/cloudhunter/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/godruoyi/go-snowflake"
)

const requestIDKey = "requestID"

// RequestID stamps every request with a snowflake id, echoed back in the
// X-Request-ID header and picked up by the request logger.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := utils.Uint64ToStr(snowflake.ID())
		c.Set(requestIDKey, id)
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}

// RequestIDFromContext returns the id set by RequestID, or "-".
func RequestIDFromContext(c *gin.Context) string {
	if id, ok := c.Get(requestIDKey); ok {
		if s, ok := id.(string); ok {
			return s
		}
	}
	return "-"
}
