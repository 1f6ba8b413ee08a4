package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"ai-life-planner/pkg/response"
)

const (
	limiterCacheSize = 4096
	limiterCacheTTL  = 10 * time.Minute
)

// RateLimit enforces a per-user token bucket. Idle limiters expire from
// the cache, so the map does not grow with the user population.
func (m Middleware) RateLimit() gin.HandlerFunc {
	limiters := expirable.NewLRU[string, *rate.Limiter](limiterCacheSize, nil, limiterCacheTTL)

	perSecond := rate.Limit(float64(m.cfg.RateLimit.RequestsPerMinute) / 60.0)
	burst := m.cfg.RateLimit.Burst
	if burst <= 0 {
		burst = 1
	}

	return func(c *gin.Context) {
		key := UserID(c)
		if key == "" {
			key = c.ClientIP()
		}

		limiter, ok := limiters.Get(key)
		if !ok {
			limiter = rate.NewLimiter(perSecond, burst)
			limiters.Add(key, limiter)
		}

		if !limiter.Allow() {
			m.l.Warnf(c.Request.Context(), "rate limit exceeded for %s", key)
			response.TooManyRequests(c)
			c.Abort()
			return
		}

		c.Next()
	}
}
