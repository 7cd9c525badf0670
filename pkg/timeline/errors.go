package timeline

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is returned when a caller violates the BuildTimeline
// contract (missing session id, nil logs). Data-quality defects inside
// the logs never produce this error; they are counted in Diagnostics.
var ErrInvalidInput = errors.New("invalid input")

// ValidationError wraps field-specific validation errors
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// Unwrap makes every validation error match ErrInvalidInput via errors.Is.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) error {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
