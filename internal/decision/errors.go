package decision

import (
	"errors"
	"fmt"
)

// ErrValidation matches every input violation reported by this package.
var ErrValidation = errors.New("validation failed")

// Reasons attached to a ValidationError
var (
	ErrEmptyField        = errors.New("must not be empty")
	ErrDuplicateOptions  = errors.New("options must be different")
	ErrTooManyPriorities = errors.New("at most 3 priorities are allowed")
	ErrInvalidID         = errors.New("must be a UUID")
)

// ValidationError reports a single rejected input field.
type ValidationError struct {
	Field  string
	Reason error
}

func newValidationError(field string, reason error) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s %v", ErrValidation, e.Field, e.Reason)
}

// Unwrap exposes the reason so callers can match it with errors.Is.
func (e *ValidationError) Unwrap() error {
	return e.Reason
}

// Is makes every ValidationError match ErrValidation.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// IsValidationError reports whether err contains at least one ValidationError.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidation)
}
