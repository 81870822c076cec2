package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// visitor is a token bucket for one client IP.
type visitor struct {
	tokens   float64
	lastSeen time.Time
}

// RateLimiter throttles requests per client IP. Used on the auth routes to
// slow credential stuffing.
type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	burst    float64
	rate     float64 // tokens per second
	nextGC   time.Time
}

// NewRateLimiter allows maxRequests per perDuration with bursts up to
// maxRequests.
func NewRateLimiter(maxRequests int, perDuration time.Duration) *RateLimiter {
	return &RateLimiter{
		visitors: make(map[string]*visitor),
		burst:    float64(maxRequests),
		rate:     float64(maxRequests) / perDuration.Seconds(),
		nextGC:   time.Now().Add(10 * time.Minute),
	}
}

func (rl *RateLimiter) allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	rl.pruneLocked(now)

	v, ok := rl.visitors[ip]
	if !ok {
		rl.visitors[ip] = &visitor{tokens: rl.burst - 1, lastSeen: now}
		return true
	}

	v.tokens += now.Sub(v.lastSeen).Seconds() * rl.rate
	if v.tokens > rl.burst {
		v.tokens = rl.burst
	}
	v.lastSeen = now

	if v.tokens < 1 {
		return false
	}
	v.tokens--
	return true
}

// pruneLocked drops buckets idle for over ten minutes. Runs at most every ten
// minutes, piggybacked on allow so there is no background goroutine.
func (rl *RateLimiter) pruneLocked(now time.Time) {
	if now.Before(rl.nextGC) {
		return
	}
	for ip, v := range rl.visitors {
		if now.Sub(v.lastSeen) > 10*time.Minute {
			delete(rl.visitors, ip)
		}
	}
	rl.nextGC = now.Add(10 * time.Minute)
}

func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.allow(c.ClientIP()) {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests. Please try again later."})
			c.Abort()
			return
		}
		c.Next()
	}
}
