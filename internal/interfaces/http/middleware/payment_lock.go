package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"havenly.backend/pkg/redis"
)

var (
	redisSetNX = redis.SetNX
	redisDel   = redis.Del
)

// PaymentLockMiddleware serializes booking attempts per user. A second
// request while a charge is still in flight gets a 409 instead of a
// double charge. The TTL bounds the lock if the process dies mid-charge.
func PaymentLockMiddleware(ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, exists := CurrentUser(c)
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Authentication required",
			})
			return
		}

		ctx := c.Request.Context()
		lockKey := fmt.Sprintf("payment_lock:%s", user.ID)

		acquired, err := redisSetNX(ctx, lockKey, "processing", ttl)
		if err != nil {
			// Redis down must not take bookings down with it
			c.Next()
			return
		}
		if !acquired {
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{
				"error": "A payment is already in progress for this account",
			})
			return
		}

		c.Next()

		_ = redisDel(ctx, lockKey)
	}
}
