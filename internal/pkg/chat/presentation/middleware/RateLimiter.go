package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/Shreya020904/Planner-ui/internal/apperror"
	"github.com/Shreya020904/Planner-ui/internal/auth"
)

const (
	DefaultRate  = rate.Limit(10) // messages per second
	DefaultBurst = 20
)

// ErrRateLimited is returned when a sender exceeds its message budget.
var ErrRateLimited = apperror.New(apperror.ErrUnavailable, "too many messages, slow down")

// RateLimiter keeps one token bucket per sender.
type RateLimiter struct {
	mu     sync.Mutex
	every  rate.Limit
	burst  int
	limits map[string]*rate.Limiter
}

// NewRateLimiter creates a limiter allowing every events per second per key
// with the given burst.
func NewRateLimiter(every rate.Limit, burst int) *RateLimiter {
	return &RateLimiter{
		every:  every,
		burst:  burst,
		limits: make(map[string]*rate.Limiter),
	}
}

// getLimiter gets or creates a limiter for the given key.
func (rl *RateLimiter) getLimiter(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if limiter, ok := rl.limits[key]; ok {
		return limiter
	}
	limiter := rate.NewLimiter(rl.every, rl.burst)
	rl.limits[key] = limiter
	return limiter
}

// Allow reports whether key may send now.
func (rl *RateLimiter) Allow(key string) bool {
	return rl.getLimiter(key).Allow()
}

// AllowAt is Allow evaluated at t.
func (rl *RateLimiter) AllowAt(key string, t time.Time) bool {
	return rl.getLimiter(key).AllowN(t, 1)
}

// PerUser rejects requests from an authenticated user over budget. It must
// run after auth.RequireAuth.
func (rl *RateLimiter) PerUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.Allow(auth.UserID(c)) {
			c.Header("Retry-After", "1")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": apperror.Message(ErrRateLimited), "code": "RATE_LIMITED"})
			return
		}
		c.Next()
	}
}
