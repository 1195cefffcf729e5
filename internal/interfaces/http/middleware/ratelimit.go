package middleware

import (
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// RateLimiter is a fixed-window in-memory rate limiter keyed by client
type RateLimiter struct {
	mu      sync.Mutex
	clients map[string]*rateLimitEntry
	limit   int
	window  time.Duration
}

type rateLimitEntry struct {
	tokens    int
	lastReset time.Time
}

// NewRateLimiter creates a rate limiter allowing limit requests per window
func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		clients: make(map[string]*rateLimitEntry),
		limit:   limit,
		window:  window,
	}
	go rl.cleanup()
	return rl
}

// cleanup evicts entries whose window expired long ago
func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(rl.window * 2)
	defer ticker.Stop()

	for range ticker.C {
		rl.mu.Lock()
		now := time.Now()
		for key, e := range rl.clients {
			if now.Sub(e.lastReset) > rl.window*2 {
				delete(rl.clients, key)
			}
		}
		rl.mu.Unlock()
	}
}

// Allow reports whether a request from key fits within the current window
func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	e, exists := rl.clients[key]
	if !exists || now.Sub(e.lastReset) >= rl.window {
		rl.clients[key] = &rateLimitEntry{tokens: rl.limit - 1, lastReset: now}
		return true
	}

	if e.tokens > 0 {
		e.tokens--
		return true
	}
	return false
}

// Remaining returns how many requests key has left in its window
func (rl *RateLimiter) Remaining(key string) int {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	e, exists := rl.clients[key]
	if !exists || time.Since(e.lastReset) >= rl.window {
		return rl.limit
	}
	return e.tokens
}

func rateLimitExceeded(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
		"success": false,
		"error": gin.H{
			"code":    "RATE_LIMIT_EXCEEDED",
			"message": "Too many requests. Please try again later.",
		},
	})
}

// RateLimit limits all requests per client IP
func RateLimit(limiter *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP()

		if !limiter.Allow(key) {
			rateLimitExceeded(c)
			return
		}

		c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", limiter.limit))
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", limiter.Remaining(key)))

		c.Next()
	}
}

// RateLimitPaths limits requests per client IP, but only on the given path
// prefixes. Used to throttle login and signup more aggressively than the
// rest of the API.
func RateLimitPaths(limiter *RateLimiter, prefixes ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		matched := false
		for _, p := range prefixes {
			if strings.HasPrefix(c.Request.URL.Path, p) {
				matched = true
				break
			}
		}
		if !matched {
			c.Next()
			return
		}

		if !limiter.Allow(c.ClientIP()) {
			rateLimitExceeded(c)
			return
		}

		c.Next()
	}
}
