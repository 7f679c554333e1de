package service

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthenticated is returned when the user has no stored credential.
	ErrUnauthenticated = errors.New("user is not authenticated")
	// ErrNoListings is returned when indexing is requested before any file
	// listings have been loaded.
	ErrNoListings = errors.New("no file listings loaded")
)

// ValidationError represents a validation error with a field name.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field %s: %s", e.Field, e.Message)
}

// WrapError wraps an error with additional context.
func WrapError(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}
