// cmd/server is the entry point for the Gopher Minigolf server.
//
// Startup is an explicit phase that finishes before the listener accepts its
// first request: configuration, logging, the database connection, schema
// migrations, seed data, and the legacy-game backfill all happen here, in
// order. Request handling never has to wonder whether the schema exists.
package main

import (
	"log/slog"
	"os"

	"github.com/gophergolf/scorecard/internal/config"
	"github.com/gophergolf/scorecard/internal/database"
	"github.com/gophergolf/scorecard/internal/handlers"
	"github.com/gophergolf/scorecard/internal/logging"
	"github.com/gophergolf/scorecard/internal/store"
)

func main() {
	cfg := config.Load()
	log := logging.Setup(cfg.Env, cfg.LogLevel)

	if cfg.DatabaseURL == "" {
		log.Error("DATABASE_URL is required")
		os.Exit(1)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Error("database connection failed", "error", err)
		os.Exit(1)
	}

	if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
		log.Error("migrations failed", "error", err)
		os.Exit(1)
	}

	if err := database.Seed(db, cfg.SeedDemo && !cfg.IsProduction()); err != nil {
		log.Error("seeding failed", "error", err)
		os.Exit(1)
	}

	st := store.New(db)

	// Attach place references to rounds recorded before places existed.
	migrated, err := st.MigrateLegacyGames()
	if err != nil {
		log.Error("legacy game backfill failed", "error", err)
		os.Exit(1)
	}
	if migrated > 0 {
		log.Info("migrated legacy games", "count", migrated)
	}

	app := handlers.NewApp(st, log)

	log.Info("starting server", "port", cfg.Port, "env", cfg.Env)
	if err := app.Listen(":" + cfg.Port); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
