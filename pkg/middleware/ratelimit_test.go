package middleware

import (
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func limitedApp(limit int) *fiber.App {
	app := fiber.New()
	app.Use(NewRateLimiter(limit).Middleware())
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func TestRateLimiterAllowsUpToLimit(t *testing.T) {
	app := limitedApp(3)

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("X-Forwarded-For", "10.0.0.1")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, "3", resp.Header.Get("X-RateLimit-Limit"))
		assert.Equal(t, strconv.Itoa(2-i), resp.Header.Get("X-RateLimit-Remaining"))
	}

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("X-Forwarded-For", "10.0.0.1")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)
	assert.Equal(t, "0", resp.Header.Get("X-RateLimit-Remaining"))
	assert.NotEmpty(t, resp.Header.Get("Retry-After"))
}

func TestRateLimiterIsolatesClients(t *testing.T) {
	app := limitedApp(1)

	for _, ip := range []string{"10.0.0.1", "10.0.0.2", "10.0.0.3"} {
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("X-Forwarded-For", ip)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode, ip)
	}
}

func TestRateLimiterResetsOnWindowRollover(t *testing.T) {
	rl := NewRateLimiter(5)

	assert.Equal(t, 1, rl.increment("client", 100))
	assert.Equal(t, 2, rl.increment("client", 100))
	// New window discards prior counts.
	assert.Equal(t, 1, rl.increment("client", 160))
}

func TestClientIdentifierPrefersForwardedFor(t *testing.T) {
	app := fiber.New()
	var got string
	app.Get("/", func(c *fiber.Ctx) error {
		got = clientIdentifier(c)
		return c.SendString("ok")
	})

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	req.Header.Set("X-Real-IP", "10.0.0.9")
	_, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, "203.0.113.7", got)
}

func TestClientIdentifierFallsBackToRealIP(t *testing.T) {
	app := fiber.New()
	var got string
	app.Get("/", func(c *fiber.Ctx) error {
		got = clientIdentifier(c)
		return c.SendString("ok")
	})

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("X-Real-IP", "10.0.0.9")
	_, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.9", got)
}
