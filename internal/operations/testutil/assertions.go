package testutil

import (
	"testing"

	"github.com/premlamishra/pdf-report-generator-fpdf/internal/operations"
)

// AssertStepStatus verifies a step has the expected status
func AssertStepStatus(t *testing.T, step *operations.StepState, expected operations.StepStatus) {
	t.Helper()
	if step == nil {
		t.Fatal("step state is nil")
	}
	if step.GetStatus() != expected {
		t.Errorf("step %s status = %v, want %v", step.ID, step.GetStatus(), expected)
	}
}

// AssertStepCompleted verifies a step of the run completed successfully
func AssertStepCompleted(t *testing.T, state *operations.RunState, stepID string) {
	t.Helper()
	step := state.GetStep(stepID)
	if step == nil {
		t.Fatalf("step %s not found", stepID)
	}
	AssertStepStatus(t, step, operations.StepStatusCompleted)
	if step.EndTime == nil {
		t.Errorf("step %s completed without an end time", stepID)
	}
}

// AssertStepFailed verifies a step of the run failed
func AssertStepFailed(t *testing.T, state *operations.RunState, stepID string) {
	t.Helper()
	step := state.GetStep(stepID)
	if step == nil {
		t.Fatalf("step %s not found", stepID)
	}
	AssertStepStatus(t, step, operations.StepStatusFailed)
	if step.Error == nil {
		t.Errorf("step %s failed without an error", stepID)
	}
}

// AssertStepNotStarted verifies a step of the run never started
func AssertStepNotStarted(t *testing.T, state *operations.RunState, stepID string) {
	t.Helper()
	if step := state.GetStep(stepID); step != nil {
		t.Errorf("step %s started with status %v", stepID, step.GetStatus())
	}
}
