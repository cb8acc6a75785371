package model

import "fmt"

// ValidationError reports malformed or semantically inconsistent input,
// detected before any network call. The caller can recover by correcting
// the input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// NewValidationError creates a ValidationError with the given message.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

func validationf(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// IntegrityError reports a database row that cannot be mapped into a
// domain object, usually a missing required identifier. It indicates bad
// upstream data, not bad caller input.
type IntegrityError struct {
	Message string
}

func (e *IntegrityError) Error() string { return e.Message }

func integrityf(format string, args ...any) error {
	return &IntegrityError{Message: fmt.Sprintf(format, args...)}
}
