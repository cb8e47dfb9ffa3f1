package middleware

import (
	"crypto/subtle"
	"os"
	"strings"

	"github.com/fotoflo/cloudhunter/pkg/utils"
	"github.com/gin-gonic/gin"
)

// CronAuth gates the cron endpoints behind a bearer secret when
// CRON_SECRET is set. Left unset the endpoints stay open, which is fine
// when the scheduler calls over a private network.
func CronAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		secret := os.Getenv("CRON_SECRET")
		if secret == "" {
			c.Next()
			return
		}

		supplied := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
		if subtle.ConstantTimeCompare([]byte(supplied), []byte(secret)) != 1 {
			utils.SimpleResponse(c, 401, "Unauthorized", utils.ErrUnauthorized)
			c.Abort()
			return
		}

		c.Next()
	}
}
