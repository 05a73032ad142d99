// Package apperrors defines the error taxonomy the handlers translate
// into HTTP status codes. Services wrap these sentinels with %w so the
// routing layer only ever needs errors.Is.
package apperrors

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation marks client input that is malformed or violates a
	// precondition. Raised before any query executes.
	ErrValidation = errors.New("invalid request")

	// ErrNotFound marks a target row that does not exist, or a filtered
	// search that matched zero rows.
	ErrNotFound = errors.New("not found")

	// ErrUnauthorized marks missing or bad credentials.
	ErrUnauthorized = errors.New("unauthorized")
)

// Validationf wraps ErrValidation with a formatted message.
func Validationf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// NotFoundf wraps ErrNotFound with a formatted message.
func NotFoundf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}

// Unauthorizedf wraps ErrUnauthorized with a formatted message.
func Unauthorizedf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrUnauthorized, fmt.Sprintf(format, args...))
}
