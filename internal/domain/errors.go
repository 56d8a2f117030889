package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain value fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidImageSize is returned when an image size is outside the closed set.
	ErrInvalidImageSize = errors.New("invalid image size")

	// ErrInvalidLocation is returned when a coordinate is out of range.
	ErrInvalidLocation = errors.New("invalid location")

	// ErrInvalidMode is returned when a result mode string is not recognized.
	ErrInvalidMode = errors.New("invalid result mode")
)

// ValidationError carries the field that failed validation alongside a
// human-readable message. It wraps one of the sentinel errors above.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError creates a ValidationError for the given field.
func NewValidationError(field, message string, err error) *ValidationError {
	return &ValidationError{Field: field, Message: message, Err: err}
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Field + " " + e.Message
}

// Unwrap returns the wrapped sentinel error for errors.Is/errors.As.
func (e *ValidationError) Unwrap() error {
	return e.Err
}
