package main

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/EnmaSantos/office-snack-app/internal/config"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(trusted ...string) *config.App {
	return &config.App{
		RateLimit: config.RateLimit{MaxRequests: 2, Window: time.Minute},
		Cors:      config.Cors{AllowOrigins: "*"},
		Proxy:     config.Proxy{Header: fiber.HeaderXForwardedFor, TrustedProxies: trusted},
	}
}

func ping(t *testing.T, app *fiber.App, forwardedFor string) int {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(fiber.HeaderXForwardedFor, forwardedFor)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	resp.Body.Close()
	return resp.StatusCode
}

func TestNewApp_RateLimitIgnoresUntrustedForwardedFor(t *testing.T) {
	app := newApp(testConfig())
	app.Get("/ping", func(c *fiber.Ctx) error { return c.SendString(c.IP()) })

	assert.Equal(t, fiber.StatusOK, ping(t, app, "10.0.0.1"))
	assert.Equal(t, fiber.StatusOK, ping(t, app, "10.0.0.2"))
	assert.Equal(t, fiber.StatusTooManyRequests, ping(t, app, "10.0.0.3"))
}

func TestNewApp_RateLimitKeysOnTrustedForwardedFor(t *testing.T) {
	// app.Test requests arrive from 0.0.0.0.
	app := newApp(testConfig("0.0.0.0"))
	app.Get("/ping", func(c *fiber.Ctx) error { return c.SendString(c.IP()) })

	assert.Equal(t, fiber.StatusOK, ping(t, app, "10.0.0.1"))
	assert.Equal(t, fiber.StatusOK, ping(t, app, "10.0.0.1"))
	assert.Equal(t, fiber.StatusTooManyRequests, ping(t, app, "10.0.0.1"))
	assert.Equal(t, fiber.StatusOK, ping(t, app, "10.0.0.2"))
}
