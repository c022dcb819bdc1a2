package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/roblesfd/helpdesk-backend/internal/infrastructure/ratelimit"
	"github.com/roblesfd/helpdesk-backend/internal/shared/logger"
	"github.com/roblesfd/helpdesk-backend/internal/shared/utils"
)

// RateLimit enforces per-IP request limits on the routes it wraps.
// Limiter errors fail open so a broken Redis does not take down traffic.
func RateLimit(limiter ratelimit.RateLimiter, scope string, cfg ratelimit.RateLimitConfig, log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("%s:%s", scope, c.ClientIP())

		allowed, err := limiter.Allow(key, cfg)
		if err != nil {
			log.Warnw("rate limiter unavailable, allowing request", "scope", scope, "error", err)
			c.Next()
			return
		}

		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
