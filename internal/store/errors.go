package store

import (
	"errors"
	"fmt"
	"strings"
)

// Domain failure conditions. Handlers translate these into HTTP responses;
// nothing below this layer knows about status codes.
var (
	// ErrInvalidInput marks a missing required field, malformed number, or
	// out-of-range value. Always wrapped with detail naming the field.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDuplicateEntity is returned when creating an entity whose unique
	// name already exists.
	ErrDuplicateEntity = errors.New("entity already exists")

	// ErrStorageUnavailable means the database cannot be reached or the
	// required tables are absent.
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// NotFoundError reports a reference to an entity id that does not exist.
type NotFoundError struct {
	Entity string
	ID     uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

// InUseError reports a refused delete of an entity still referenced by others,
// including how many referencing rows exist.
type InUseError struct {
	Entity string
	By     string
	Count  int64
}

func (e *InUseError) Error() string {
	return fmt.Sprintf("%s is used by %d %s", e.Entity, e.Count, e.By)
}

func invalidInput(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

// IsUnavailable recognises driver-level connectivity failures and missing
// tables. Handlers surface these as "storage unavailable" instead of a generic
// internal error, matching what the health probe reports.
func IsUnavailable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrStorageUnavailable) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "failed to connect") ||
		strings.Contains(msg, "database is closed") ||
		strings.Contains(msg, "no such table") || // sqlite
		strings.Contains(msg, "does not exist") // postgres undefined_table
}

// isUniqueViolation recognises a unique-constraint error from either backend
// (Postgres in production, sqlite in tests). Used by the find-or-create and
// create paths to treat a lost insert race as "already exists".
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") || // postgres 23505
		strings.Contains(msg, "UNIQUE constraint failed") // sqlite
}
