package operations

import (
	"fmt"
)

// StepError wraps the error that stopped a run with the failing step
type StepError struct {
	StepID   string `json:"step"`
	StepName string `json:"step_name"`
	Cause    error  `json:"cause,omitempty"`
}

// Error implements the error interface
func (e *StepError) Error() string {
	if e == nil {
		return "unknown step error"
	}
	return fmt.Sprintf("step %s (%s) failed: %v", e.StepID, e.StepName, e.Cause)
}

// Unwrap returns the underlying error
func (e *StepError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// NewStepError creates a new step error
func NewStepError(step Step, cause error) *StepError {
	return &StepError{
		StepID:   step.ID(),
		StepName: step.Name(),
		Cause:    cause,
	}
}
