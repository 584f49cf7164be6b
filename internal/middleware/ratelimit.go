package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const (
	intakeLimitMax    = 5
	intakeLimitWindow = time.Minute
)

// IntakeRateLimit returns a middleware limiting unauthenticated form
// submissions per IP. With a nil redis client it is a no-op.
func IntakeRateLimit(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rdb == nil {
			c.Next()
			return
		}

		ip := c.ClientIP()
		if ip == "" {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		windowKey := time.Now().Unix() / int64(intakeLimitWindow.Seconds())
		key := fmt.Sprintf("tesah:intake_limit:%s:%d", ip, windowKey)

		count, err := rdb.Incr(ctx, key).Result()
		if err != nil {
			c.Next()
			return
		}

		if count == 1 {
			rdb.PExpire(ctx, key, intakeLimitWindow+time.Second)
		}

		if count > intakeLimitMax {
			c.Header("Retry-After", "60")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"success": false,
				"message": "too many submissions, please try again later",
			})
			return
		}

		c.Next()
	}
}
