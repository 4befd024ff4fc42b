package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/gophergolf/scorecard/internal/store"
)

// Health handles GET /health. It re-derives the database state on every call
// and distinguishes "disconnected" from "tables missing", so a probe can tell
// a dead database from an unmigrated one.
func Health(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		status := st.CheckStatus(c.Context())

		state := "healthy"
		code := fiber.StatusOK
		if !status.Healthy() {
			state = "unhealthy"
			code = fiber.StatusServiceUnavailable
		}

		database := "connected"
		if !status.Connected {
			database = "disconnected"
		}
		tables := "exist"
		if !status.TablesExist {
			tables = "missing"
		}

		return c.Status(code).JSON(fiber.Map{
			"status":       state,
			"database":     database,
			"tables":       tables,
			"games_count":  status.Games,
			"places_count": status.Places,
			"timestamp":    time.Now().UTC().Format(time.RFC3339),
		})
	}
}
