// Package middleware contains the HTTP middleware shared by all routes.
package middleware

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// LoggerKey is the fiber.Ctx locals key under which the request-scoped logger
// is stored. Handlers retrieve it via Logger(c).
const LoggerKey = "logger"

// RequestID tags every request with a UUID (echoed in the X-Request-ID
// response header) and stores a request-scoped slog logger in the context.
// One summary line is logged per request with method, path, status, and
// duration.
func RequestID(base *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("X-Request-ID", id)

		reqLog := base.With("request_id", id, "method", c.Method(), "path", c.Path())
		c.Locals(LoggerKey, reqLog)

		start := time.Now()
		err := c.Next()

		reqLog.Info("request", "status", c.Response().StatusCode(), "duration", time.Since(start))
		return err
	}
}

// Logger returns the request-scoped logger, falling back to the default
// logger for contexts created outside RequestID (tests, mostly).
func Logger(c *fiber.Ctx) *slog.Logger {
	if l, ok := c.Locals(LoggerKey).(*slog.Logger); ok {
		return l
	}
	return slog.Default()
}
