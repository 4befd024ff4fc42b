// Package config handles loading and validating runtime configuration for the
// Gopher Minigolf server. All settings come from environment variables so the
// same binary runs unchanged in development and production; a local .env file
// is honoured when present to make development convenient.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration values for the application.
type Config struct {
	Port        string // TCP port the HTTP server listens on (e.g., "8080")
	DatabaseURL string // PostgreSQL connection string
	Env         string // "development" or "production"
	LogLevel    string // "debug", "info", "warn", or "error"
	SeedDemo    bool   // seed example places on startup (development convenience)
}

// IsProduction reports whether the server runs with production settings
// (JSON logs, no demo seed data).
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Load reads configuration from environment variables and returns a populated
// Config. A missing .env file is fine — in production real environment
// variables are set by the platform.
func Load() *Config {
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	env := os.Getenv("ENV")
	if env == "" {
		// Default to development so local runs never behave like production.
		env = "development"
	}

	level := os.Getenv("LOG_LEVEL")
	if level == "" {
		level = "info"
	}

	return &Config{
		Port:        port,
		DatabaseURL: os.Getenv("DATABASE_URL"), // required; startup fails without it
		Env:         env,
		LogLevel:    level,
		SeedDemo:    os.Getenv("SEED_DEMO_PLACES") == "true",
	}
}
