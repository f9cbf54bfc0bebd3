// Package apperrors defines the error taxonomy shared by services and handlers.
package apperrors

import (
	"errors"
	"fmt"
)

var (
	// ErrConflict indicates an attempt to create a resource that already exists.
	ErrConflict = errors.New("resource already exists")
	// ErrInvalidCredentials is returned for both unknown email and wrong password,
	// so responses never reveal which field was wrong.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrNotFound indicates the requested resource does not exist or is not visible to the caller.
	ErrNotFound = errors.New("resource not found")
	// ErrUpstream indicates a failure of an external provider call.
	ErrUpstream = errors.New("upstream provider error")
)

// ValidationError reports missing or malformed client input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Validation creates a new validation error with the given message.
func Validation(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is a validation error.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
