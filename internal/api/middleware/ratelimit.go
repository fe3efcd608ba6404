package middleware

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	apierrors "github.com/indietrack/artist-dashboard/internal/api/shared/errors"
	"github.com/indietrack/artist-dashboard/internal/logger"
)

// RateLimitConfig holds the per client limits
type RateLimitConfig struct {
	RequestsPerMinute int
	Burst             int
	// IdleTTL is how long an unused client limiter is kept
	IdleTTL time.Duration
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter keeps one token bucket per client IP
type RateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*clientLimiter
	limit    rate.Limit
	burst    int
	idleTTL  time.Duration
	now      func() time.Time
}

// NewRateLimiter creates a rate limiter; a non-positive rate disables limiting
func NewRateLimiter(cfg RateLimitConfig) *RateLimiter {
	limit := rate.Inf
	if cfg.RequestsPerMinute > 0 {
		limit = rate.Limit(float64(cfg.RequestsPerMinute) / 60)
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}
	idleTTL := cfg.IdleTTL
	if idleTTL <= 0 {
		idleTTL = 10 * time.Minute
	}

	return &RateLimiter{
		limiters: make(map[string]*clientLimiter),
		limit:    limit,
		burst:    burst,
		idleTTL:  idleTTL,
		now:      time.Now,
	}
}

// Allow reports whether the client may make another request now
func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	cl, ok := rl.limiters[key]
	if !ok {
		cl = &clientLimiter{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.limiters[key] = cl
	}
	cl.lastSeen = now
	return cl.limiter.AllowN(now, 1)
}

// Cleanup drops limiters of clients idle for longer than the TTL
func (rl *RateLimiter) Cleanup() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cutoff := rl.now().Add(-rl.idleTTL)
	removed := 0
	for key, cl := range rl.limiters {
		if cl.lastSeen.Before(cutoff) {
			delete(rl.limiters, key)
			removed++
		}
	}
	return removed
}

// Handler returns the gin middleware keyed by client IP
func (rl *RateLimiter) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP()
		if !rl.Allow(key) {
			logger.WarnCtx(c.Request.Context(), "Rate limit exceeded",
				zap.String("client_ip", key),
				zap.String("path", c.Request.URL.Path),
			)
			c.Header("Retry-After", "60")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierrors.Response{
				Error: apierrors.NewRateLimitedError("Too many requests, please try again later"),
			})
			return
		}
		c.Next()
	}
}

// StartCleanup periodically drops idle limiters until ctx is done
func (rl *RateLimiter) StartCleanup(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if n := rl.Cleanup(); n > 0 {
					logger.Debug("Dropped idle rate limiters", zap.Int("count", n))
				}
			}
		}
	}()
}
