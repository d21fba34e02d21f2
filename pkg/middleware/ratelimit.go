package middleware

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
)

// RateLimiter is a process-scoped fixed-window request counter keyed by client
// identity. Counters live in memory only and reset on restart; that is
// deliberate, the limit is best-effort abuse protection, not accounting.
type RateLimiter struct {
	mu         sync.Mutex
	counters   map[string]int
	window     int64
	limit      int
	windowSize time.Duration
}

func NewRateLimiter(limit int) *RateLimiter {
	return &RateLimiter{
		counters:   make(map[string]int),
		limit:      limit,
		windowSize: time.Minute,
	}
}

func (rl *RateLimiter) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		windowStart := time.Now().Truncate(rl.windowSize)
		count := rl.increment(clientIdentifier(c), windowStart.Unix())

		remaining := rl.limit - count
		if remaining < 0 {
			remaining = 0
		}
		c.Set("X-RateLimit-Limit", fmt.Sprintf("%d", rl.limit))
		c.Set("X-RateLimit-Remaining", fmt.Sprintf("%d", remaining))
		c.Set("X-RateLimit-Reset", fmt.Sprintf("%d", windowStart.Add(rl.windowSize).Unix()))

		if count > rl.limit {
			retryAfter := rl.windowSize - time.Since(windowStart)
			c.Set("Retry-After", fmt.Sprintf("%d", int(retryAfter.Seconds())))
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"success": false,
				"error":   "Rate limit exceeded",
			})
		}

		return c.Next()
	}
}

// increment bumps the caller's counter for the given window, discarding all
// counters whenever the window rolls over.
func (rl *RateLimiter) increment(id string, window int64) int {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if window != rl.window {
		rl.window = window
		rl.counters = make(map[string]int)
	}

	rl.counters[id]++
	return rl.counters[id]
}

// clientIdentifier prefers the forwarded client address when behind a proxy.
// X-Forwarded-For can hold a chain "client, proxy1, proxy2"; the first entry
// is the original caller.
func clientIdentifier(c *fiber.Ctx) string {
	if forwarded := c.Get("X-Forwarded-For"); forwarded != "" {
		parts := strings.Split(forwarded, ",")
		return strings.TrimSpace(parts[0])
	}
	if realIP := c.Get("X-Real-IP"); realIP != "" {
		return realIP
	}
	return c.IP()
}
