package handlers

import (
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/gophergolf/scorecard/internal/middleware"
	"github.com/gophergolf/scorecard/internal/store"
	"github.com/gophergolf/scorecard/internal/web"
)

// NewApp assembles the Fiber application: view engine, global middleware,
// static assets, and every route. main and the handler tests share this, so
// what the tests exercise is exactly what runs in production.
func NewApp(st *store.Store, log *slog.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName: "Gopher Minigolf",
		Views:   web.Engine(),
		// One translation point for errors that escape the handlers (bad
		// routes, panics surfaced by recover): JSON for API callers, a
		// minimal HTML page for browsers.
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if wantsJSON(c) {
				return jsonError(c, err)
			}
			return htmlError(c, err)
		},
	})

	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(middleware.RequestID(log))

	// Pages
	app.Get("/", Index(st))
	app.Get("/score/:id", ScorePage(st))
	app.Get("/history", HistoryPage(st))
	app.Get("/results/:id", ResultsPage(st))
	app.Get("/settings", SettingsPage(st))

	// Game + score JSON endpoints (paths follow the classic UI's fetch calls)
	app.Post("/save", SaveGame(st))
	app.Post("/update_score", UpdateScore(st))
	app.Post("/delete_game/:id", DeleteGame(st))

	// Configuration API
	api := app.Group("/api")
	api.Get("/places", ListPlaces(st))
	api.Post("/places", CreatePlace(st))
	api.Get("/places/:id", GetPlace(st))
	api.Put("/places/:id", UpdatePlace(st))
	api.Delete("/places/:id", DeletePlace(st))
	api.Get("/places/:id/tracks", GetTrackConfig(st))
	api.Put("/places/:id/tracks", UpdateTrackConfig(st))
	api.Put("/places/:id/tracks/:number", SetTrackType(st))
	api.Get("/track-types", ListTrackTypes(st))

	app.Get("/health", Health(st))

	// Embedded icons and other assets; a missing file 404s and nothing else
	// cares.
	app.Use("/static", filesystem.New(filesystem.Config{
		Root: web.StaticFS(),
	}))

	return app
}

// wantsJSON decides which error rendering a request gets: API paths and
// JSON-accepting clients get the JSON contract, everyone else the HTML page.
func wantsJSON(c *fiber.Ctx) bool {
	path := c.Path()
	if strings.HasPrefix(path, "/api/") || path == "/save" ||
		path == "/update_score" || strings.HasPrefix(path, "/delete_game/") ||
		path == "/health" {
		return true
	}
	return strings.Contains(c.Get(fiber.HeaderAccept), fiber.MIMEApplicationJSON)
}
