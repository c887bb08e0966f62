package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	lru "github.com/hashicorp/golang-lru/v2"
)

// windowEntry tracks one caller's request count for the current window.
type windowEntry struct {
	count   int
	resetAt time.Time
}

// RateLimiter enforces a fixed-window request ceiling per client IP.
// Windows live in an LRU cache, so stale callers are evicted either by
// their deadline passing or by cache pressure.
type RateLimiter struct {
	limit  int
	window time.Duration

	mu      sync.Mutex
	entries *lru.Cache[string, *windowEntry]
}

func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	entries, err := lru.New[string, *windowEntry](4096)
	if err != nil {
		panic(err)
	}
	return &RateLimiter{
		limit:   limit,
		window:  window,
		entries: entries,
	}
}

// Allow records one request for key and reports whether it fits in the
// current window.
func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	entry, ok := rl.entries.Get(key)
	if !ok || now.After(entry.resetAt) {
		rl.entries.Add(key, &windowEntry{count: 1, resetAt: now.Add(rl.window)})
		return true
	}
	if entry.count >= rl.limit {
		return false
	}
	entry.count++
	return true
}

func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.Allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "request was throttled"})
			return
		}
		c.Next()
	}
}
