// Package database provides helpers for connecting to PostgreSQL and keeping
// its schema up to date. Schema changes live as versioned SQL files under
// migrations/ and are applied on startup, so a freshly provisioned database
// becomes usable without manual steps.
package database

import (
	"time"

	"github.com/golang-migrate/migrate/v4"
	// Blank imports register the postgres database driver and the file://
	// source driver with the migrate library.
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens a connection to the PostgreSQL database at the given DSN and
// verifies it with a ping. The pool is configured conservatively for the small
// hosted instances this app runs on: connections are recycled after five
// minutes so stale ones from a restarted database don't linger.
func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}
	return db, nil
}

// RunMigrations applies any pending "up" migrations from the migrations/
// directory. migrate tracks applied versions in the schema_migrations table,
// so re-running on every startup is safe.
func RunMigrations(dsn string) error {
	m, err := migrate.New("file://migrations", dsn)
	if err != nil {
		return err
	}

	// ErrNoChange just means the schema is already current.
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return err
	}
	return nil
}
