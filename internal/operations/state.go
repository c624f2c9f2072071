package operations

import (
	"github.com/premlamishra/pdf-report-generator-fpdf/internal/charts"
	"github.com/premlamishra/pdf-report-generator-fpdf/internal/config"
	"github.com/premlamishra/pdf-report-generator-fpdf/internal/document"
	"github.com/premlamishra/pdf-report-generator-fpdf/pkg/contracts/domain"
)

// RunState carries the results of each step to the steps after it.
// Steps run strictly in sequence, so it is not locked.
type RunState struct {
	Paths *config.Paths

	// load
	Dataset *domain.SalesDataset
	Summary *domain.SalesSummary

	// charts
	Charts charts.ChartSet

	// document
	Document *document.Document

	// write
	OutputPath   string
	BytesWritten int64
	SummaryCSV   string

	steps []*StepState
}

// NewRunState creates the state of a run over the given paths
func NewRunState(paths *config.Paths) *RunState {
	return &RunState{Paths: paths}
}

// Steps returns the state of every step that has started, in run order
func (s *RunState) Steps() []*StepState {
	return s.steps
}

// GetStep returns the state of the step with the given id
func (s *RunState) GetStep(id string) *StepState {
	for _, st := range s.steps {
		if st.ID == id {
			return st
		}
	}
	return nil
}

// SetStepMetadata records a result value on a started step; unknown ids are ignored
func (s *RunState) SetStepMetadata(id, key string, value interface{}) {
	if st := s.GetStep(id); st != nil {
		st.SetMetadata(key, value)
	}
}

func (s *RunState) addStep(st *StepState) {
	s.steps = append(s.steps, st)
}
