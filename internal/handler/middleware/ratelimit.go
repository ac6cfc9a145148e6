package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"sync"
	"time"

	"bounce-booking/internal/handler/httperr"
	"bounce-booking/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const limiterIdleTTL = 10 * time.Minute

var errRateLimited = errors.New("rate limit exceeded")

// RateLimiter throttles public storefront traffic per client IP.
type RateLimiter struct {
	limiters sync.Map
	rps      rate.Limit
	burst    int
	now      func() time.Time

	pruneMu   sync.Mutex
	lastPrune time.Time
}

type limiterEntry struct {
	limiter    *rate.Limiter
	mu         sync.Mutex
	lastAccess time.Time
}

func NewRateLimiter(cfg config.RateLimitConfig) *RateLimiter {
	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = 5
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 10
	}
	return &RateLimiter{
		rps:       rate.Limit(rps),
		burst:     burst,
		now:       time.Now,
		lastPrune: time.Now(),
	}
}

func (rl *RateLimiter) getLimiter(key string) *rate.Limiter {
	now := rl.now()
	if v, ok := rl.limiters.Load(key); ok {
		entry := v.(*limiterEntry)
		entry.mu.Lock()
		entry.lastAccess = now
		entry.mu.Unlock()
		return entry.limiter
	}

	entry := &limiterEntry{
		limiter:    rate.NewLimiter(rl.rps, rl.burst),
		lastAccess: now,
	}
	actual, _ := rl.limiters.LoadOrStore(key, entry)
	return actual.(*limiterEntry).limiter
}

// Prune drops limiters idle for longer than the idle TTL.
func (rl *RateLimiter) Prune() int {
	cutoff := rl.now().Add(-limiterIdleTTL)
	removed := 0
	rl.limiters.Range(func(key, value any) bool {
		entry := value.(*limiterEntry)
		entry.mu.Lock()
		idle := entry.lastAccess.Before(cutoff)
		entry.mu.Unlock()
		if idle {
			rl.limiters.Delete(key)
			removed++
		}
		return true
	})
	return removed
}

func (rl *RateLimiter) maybePrune() {
	rl.pruneMu.Lock()
	due := rl.now().Sub(rl.lastPrune) >= limiterIdleTTL
	if due {
		rl.lastPrune = rl.now()
	}
	rl.pruneMu.Unlock()
	if due {
		rl.Prune()
	}
}

func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		rl.maybePrune()
		clientIP := c.ClientIP()
		if clientIP == "" {
			clientIP = "unknown"
		}

		if !rl.getLimiter(clientIP).Allow() {
			slog.Warn("Rate limit exceeded",
				"client_ip", clientIP,
				"path", c.Request.URL.Path,
				"method", c.Request.Method)
			c.Header("Retry-After", "1")
			c.Header("X-RateLimit-Limit", strconv.Itoa(rl.burst))
			httperr.Abort(c, errRateLimited, httperr.New(http.StatusTooManyRequests, "RATE_LIMITED", "Too many requests", nil))
			return
		}
		c.Next()
	}
}
