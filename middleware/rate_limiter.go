package middleware

import (
	"net/http"
	"sync"
	"time"

	"registrations/config"
	"registrations/metrics"

	"github.com/gin-gonic/gin"
)

// RateLimiter is a per-client token bucket
type RateLimiter struct {
	name     string
	visitors map[string]*Visitor
	mu       sync.Mutex
	rate     int           // Tokens refilled per interval
	burst    int           // Burst capacity
	interval time.Duration // Refill interval
	now      func() time.Time
}

type Visitor struct {
	tokens      int
	lastUpdated time.Time
}

// NewRateLimiter creates a limiter from cfg, name labels its rejection metric
func NewRateLimiter(name string, cfg config.RateLimitConfig) *RateLimiter {
	interval := cfg.Interval
	if interval <= 0 {
		interval = time.Minute
	}
	return &RateLimiter{
		name:     name,
		visitors: make(map[string]*Visitor),
		rate:     cfg.Rate,
		burst:    cfg.Burst,
		interval: interval,
		now:      time.Now,
	}
}

// Allow consumes one token for key and reports whether the request may proceed
func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	visitor, exists := rl.visitors[key]
	if !exists {
		visitor = &Visitor{tokens: rl.burst, lastUpdated: now}
		rl.visitors[key] = visitor
	}

	// Refill tokens
	refill := int(now.Sub(visitor.lastUpdated) / rl.interval)
	if refill > 0 {
		visitor.tokens = min(visitor.tokens+refill*rl.rate, rl.burst)
		visitor.lastUpdated = visitor.lastUpdated.Add(time.Duration(refill) * rl.interval)
	}

	if visitor.tokens > 0 {
		visitor.tokens--
		return true
	}
	return false
}

func RateLimiterMiddleware(rl *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.Allow(c.ClientIP()) {
			metrics.RateLimiterRejections.WithLabelValues(rl.name).Inc()

			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "Too many requests. Please try again later.",
			})
			return
		}
		c.Next()
	}
}
