package models

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a referenced entity id does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrInsufficientStock is returned when a sale requests more units than
	// the product has on hand. Distinct from a validation error so callers
	// can render a specific message.
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrDuplicateEmail is returned when a write would violate the unique
	// email constraint on customers or users.
	ErrDuplicateEmail = errors.New("email already registered")
)

// ValidationError reports a field-level constraint violation. The write it
// belongs to is rejected in full.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
