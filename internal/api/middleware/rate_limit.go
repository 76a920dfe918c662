package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/michaeltheo/placements-backend/pkg/redis"
	"github.com/michaeltheo/placements-backend/pkg/response"
)

// RateLimit limits requests per client IP within a window. Used on the OTP
// validation endpoint to slow down code guessing. Fails open when Redis is
// unavailable.
func RateLimit(client *redis.Client, logger *zap.Logger, prefix string, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := "ratelimit:" + prefix + ":" + c.ClientIP()

		ok, err := client.CheckRateLimit(c.Request.Context(), key, limit, window)
		if err != nil {
			logger.Warn("rate limit check failed", zap.Error(err))
			c.Next()
			return
		}
		if !ok {
			response.Error(c, 429, 42900, "Πολλές αιτήσεις. Δοκιμάστε ξανά αργότερα.")
			c.Abort()
			return
		}
		c.Next()
	}
}
