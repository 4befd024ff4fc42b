// Package store is the domain layer: it owns the consistency rules of the
// schema — uniqueness, range invariants, find-or-create and upsert semantics,
// cascading deletes, and the totals/winner aggregation. Handlers stay thin and
// call into here; every multi-row write runs inside a single transaction so a
// failed request never leaves partial state behind.
package store

import (
	"gorm.io/gorm"

	"github.com/gophergolf/scorecard/internal/models"
)

// Store wraps the database handle with the domain operations.
type Store struct {
	db *gorm.DB
}

// New returns a Store over the given database handle.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// DB exposes the underlying handle for the few callers (health probe, tests)
// that need raw access.
func (s *Store) DB() *gorm.DB {
	return s.db
}

func validTrackCount(n int) bool {
	return n >= models.MinTrackCount && n <= models.MaxTrackCount
}
