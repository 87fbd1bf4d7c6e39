package domain

import (
	"errors"
	"strings"
)

// Sentinel errors shared across services and repositories.
var (
	// ErrNotFound is returned when an event, slot, or participant does not exist.
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned when an operation is rejected by the event
	// lifecycle: structural edits after publication, votes outside the
	// published window, or removals that would orphan recorded votes.
	ErrConflict = errors.New("conflict")
)

// ValidationError reports every violated field of an input at once, so a
// caller can surface all problems in a single round trip. No state is
// mutated when a ValidationError is returned.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Violations, "; ")
}
