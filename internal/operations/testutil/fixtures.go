package testutil

import (
	"context"
	"errors"

	"github.com/premlamishra/pdf-report-generator-fpdf/internal/operations"
)

// CreateSuccessfulStep creates a step that always succeeds and records
// its id in order
func CreateSuccessfulStep(id, name string, order *[]string) *MockStep {
	return &MockStep{
		IDValue:   id,
		NameValue: name,
		ExecuteFunc: func(ctx context.Context, state *operations.RunState) error {
			if order != nil {
				*order = append(*order, id)
			}
			state.SetStepMetadata(id, "ran", true)
			return nil
		},
	}
}

// CreateFailingStep creates a step that always fails
func CreateFailingStep(id, name string, err error) *MockStep {
	if err == nil {
		err = errors.New("step failed")
	}

	return &MockStep{
		IDValue:   id,
		NameValue: name,
		ExecuteFunc: func(ctx context.Context, state *operations.RunState) error {
			return err
		},
	}
}
