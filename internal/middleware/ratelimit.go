package middleware

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/tivrox/agency-api/internal/httperr"
	"github.com/tivrox/agency-api/internal/ratelimit"
)

// RateLimit rejects callers that exceed the per-IP budget on the public
// endpoints (intake and login).
func RateLimit(limiter ratelimit.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if !limiter.Allow(c.Request.Context(), ip) {
			log.Printf("ratelimit: blocked %s %s from %s", c.Request.Method, c.FullPath(), ip)
			httperr.TooManyRequests(c, "rate_limited", "Too many requests. Please try again later.")
			c.Abort()
			return
		}
		c.Next()
	}
}
