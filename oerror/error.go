package oerror

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when an operation refers to a body, obstacle or interactable that is not in the
	// registry.
	ErrNotFound = errors.New("not found")
	// ErrInvalidConfiguration is returned when a body, object or simulation is created with values that would
	// later break the numerical code (non-positive mass or radius, non-finite vectors, etc).
	ErrInvalidConfiguration = errors.New("invalid configuration")
)

// OomphError is an error raised on a broken internal invariant.
type OomphError struct {
	Err string
}

// New returns a new OomphError with a formatted message.
func New(message string, args ...any) *OomphError {
	return &OomphError{Err: fmt.Sprintf(message, args...)}
}

func (e *OomphError) Error() string {
	return e.Err
}

// NotFound wraps ErrNotFound with the kind and id of the missing entry.
func NotFound(kind, id string) error {
	return fmt.Errorf("%s %q: %w", kind, id, ErrNotFound)
}

// Invalid wraps ErrInvalidConfiguration with a formatted reason.
func Invalid(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvalidConfiguration)
}
