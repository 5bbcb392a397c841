package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"klevant/internal/infrastructure/ratelimit"
	"klevant/internal/shared/utils"
)

// RateLimit throttles by client IP. Applied to the public ticket
// submission endpoint.
func RateLimit(limiter ratelimit.RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, err := limiter.Allow(c.Request.Context(), c.ClientIP())
		if err != nil || allowed {
			c.Next()
			return
		}
		utils.ErrorResponse(c, http.StatusTooManyRequests, "too many requests, try again later")
		c.Abort()
	}
}
