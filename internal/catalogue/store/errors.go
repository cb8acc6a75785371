package store

import "fmt"

// PartialFailureError reports that a saga step failed and a compensating
// delete for an earlier step failed too, leaving orphaned rows upstream
// that need manual cleanup.
type PartialFailureError struct {
	Step             string
	Cause            error
	CompensationStep string
	CompensationErr  error
}

func (e *PartialFailureError) Error() string {
	return fmt.Sprintf(
		"step %q failed: %v; compensation for step %q also failed: %v; manual cleanup required",
		e.Step, e.Cause, e.CompensationStep, e.CompensationErr,
	)
}

// Unwrap exposes the original step failure.
func (e *PartialFailureError) Unwrap() error {
	return e.Cause
}
