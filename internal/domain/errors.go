package domain

import (
	"errors"
	"fmt"
)

// Common domain errors that can occur during verification operations.
var (
	// ErrInvalidConfiguration indicates that engine configuration is invalid
	// or incomplete.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrNilCheck indicates that a verification was constructed without a
	// delegate check.
	ErrNilCheck = errors.New("check cannot be nil")
)

// AssertionError is the descriptive failure value a check signals when the
// recorded interactions do not satisfy it. The engine propagates assertion
// errors to the caller unchanged, so the error a caller sees on timeout is
// exactly the one produced by the final poll.
type AssertionError struct {
	// Check is the name of the check that failed.
	Check string

	// Message describes why the recorded interactions did not satisfy
	// the check.
	Message string
}

// Error implements the error interface for AssertionError.
func (e *AssertionError) Error() string {
	return fmt.Sprintf("verification failed: check=%s, %s", e.Check, e.Message)
}

// NewAssertionError creates a new AssertionError with the given details.
func NewAssertionError(check, message string) *AssertionError {
	return &AssertionError{
		Check:   check,
		Message: message,
	}
}
