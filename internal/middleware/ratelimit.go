package middleware

import (
	"fmt"
	"time"

	"github.com/brightpage/admin-core/internal/pkg/response"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const (
	rateLimitMax    = 30
	rateLimitWindow = time.Second
)

// RateLimit returns a middleware enforcing a per-IP fixed-window limit on
// unauthenticated traffic. Requests carrying a valid admin token pass through,
// and the limiter fails open when Redis is unreachable.
func RateLimit(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Runs ahead of Auth(), so check the token directly.
		if _, err := validateToken(extractToken(c)); err == nil {
			c.Next()
			return
		}

		ip := c.ClientIP()
		if ip == "" {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		key := fmt.Sprintf("admin-core:rate_limit:%s:%d", ip, time.Now().Unix())

		count, err := rdb.Incr(ctx, key).Result()
		if err != nil {
			c.Next()
			return
		}
		if count == 1 {
			rdb.PExpire(ctx, key, rateLimitWindow+time.Second)
		}

		if count > rateLimitMax {
			response.TooManyRequests(c, "Too many requests. Slow down and try again.")
			return
		}
		c.Next()
	}
}
