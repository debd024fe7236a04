package store

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors returned by the store layer. Handlers map these to
// HTTP statuses; the store never speaks HTTP.
var (
	// ErrNotFound covers both "does not exist" and "exists but belongs
	// to another player" – callers must not be able to tell the two apart.
	ErrNotFound = errors.New("record not found")

	// ErrConflict indicates a uniqueness violation, e.g. a duplicate
	// shot number within a round+hole.
	ErrConflict = errors.New("duplicate record")
)

// ValidationError names the first offending field of a rejected input.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

func invalidf(field, format string, args ...interface{}) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// isDuplicateKey reports whether err is a unique-constraint violation from
// the database. Postgres says "duplicate key value violates unique
// constraint", SQLite says "UNIQUE constraint failed".
func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key value") || strings.Contains(msg, "unique constraint")
}
