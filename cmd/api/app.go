package main

import (
	"errors"
	"strings"

	"github.com/EnmaSantos/office-snack-app/internal/config"
	"github.com/EnmaSantos/office-snack-app/internal/handler"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// newApp builds the Fiber app with the global middleware stack. The client
// address comes from cfg.Proxy.Header only when the peer is a trusted proxy.
func newApp(cfg *config.App) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:                 "Office Snack API v1.0",
		ProxyHeader:             cfg.Proxy.Header,
		EnableTrustedProxyCheck: true,
		TrustedProxies:          cfg.Proxy.TrustedProxies,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				code = fe.Code
			}
			return c.Status(code).JSON(handler.ErrorResponse{Message: err.Error()})
		},
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Cors.AllowOrigins,
		AllowCredentials: cfg.Cors.AllowOrigins != "*",
	}))
	app.Use(limiter.New(limiter.Config{
		Max:        cfg.RateLimit.MaxRequests,
		Expiration: cfg.RateLimit.Window,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		Next: func(c *fiber.Ctx) bool {
			return strings.HasPrefix(c.Path(), "/ws") || strings.HasPrefix(c.Path(), "/swagger")
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(handler.ErrorResponse{Message: "too many requests"})
		},
	}))
	return app
}
