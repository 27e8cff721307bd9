package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a referenced entity id does not resolve.
	ErrNotFound = errors.New("entity not found")

	// ErrExpired is returned when a share token is past its expiry. The HTTP
	// layer surfaces it identically to ErrNotFound so that a visitor cannot
	// tell an expired link from one that never existed.
	ErrExpired = errors.New("share link expired")

	// ErrInvalidOperation is returned for structurally forbidden actions,
	// rejected before any mutating call is issued.
	ErrInvalidOperation = errors.New("invalid operation")

	// ErrTreeCorrupted is returned when walking parent pointers exceeds the
	// hop bound, which only happens when the stored tree contains a cycle.
	ErrTreeCorrupted = fmt.Errorf("%w: folder tree contains a cycle", ErrInvalidOperation)

	// ErrBackendUnavailable wraps transport failures from the record store or
	// the storage gateway. Callers surface it as a retryable failure; no
	// automatic retry is performed.
	ErrBackendUnavailable = errors.New("backend unavailable")

	ErrEmailExists        = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ValidationError reports malformed user input. The operation is not
// attempted when one is returned.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
