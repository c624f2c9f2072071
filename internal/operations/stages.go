package operations

import (
	"context"
	"log/slog"
	"time"

	"github.com/premlamishra/pdf-report-generator-fpdf/internal/charts"
	"github.com/premlamishra/pdf-report-generator-fpdf/internal/config"
	"github.com/premlamishra/pdf-report-generator-fpdf/internal/dataprocessing"
	"github.com/premlamishra/pdf-report-generator-fpdf/internal/document"
	apperrors "github.com/premlamishra/pdf-report-generator-fpdf/internal/errors"
	"github.com/premlamishra/pdf-report-generator-fpdf/internal/exporter"
	"github.com/premlamishra/pdf-report-generator-fpdf/internal/infrastructure"
)

// Step IDs
const (
	StepIDLoad     = "load"
	StepIDCharts   = "charts"
	StepIDDocument = "document"
	StepIDWrite    = "write"
)

// Step names
const (
	StepNameLoad     = "Data Loader"
	StepNameCharts   = "Chart Renderer"
	StepNameDocument = "Document Builder"
	StepNameWrite    = "Output Writer"
)

// LoadStep reads the workbook and aggregates it by category
type LoadStep struct {
	BaseStep
	logger *slog.Logger
}

// NewLoadStep creates a new load step
func NewLoadStep(logger *slog.Logger) *LoadStep {
	return &LoadStep{
		BaseStep: NewBaseStep(StepIDLoad, StepNameLoad),
		logger:   infrastructure.WithComponent(logger, StepIDLoad),
	}
}

// Execute runs the load step
func (s *LoadStep) Execute(ctx context.Context, state *RunState) error {
	if err := requirePaths(state); err != nil {
		return err
	}

	dataset, summary, err := dataprocessing.Load(state.Paths.InputFile, dataprocessing.LoadOptions{
		SheetName: state.Paths.SheetName,
		Logger:    s.logger,
	})
	if err != nil {
		return err
	}

	state.Dataset = dataset
	state.Summary = summary
	state.SetStepMetadata(s.ID(), "records", dataset.Len())
	state.SetStepMetadata(s.ID(), "categories", summary.Len())
	state.SetStepMetadata(s.ID(), "sheet", dataset.Sheet)
	return nil
}

// ChartsStep renders the bar, pie and line charts
type ChartsStep struct {
	BaseStep
	logger *slog.Logger
}

// NewChartsStep creates a new charts step
func NewChartsStep(logger *slog.Logger) *ChartsStep {
	return &ChartsStep{
		BaseStep: NewBaseStep(StepIDCharts, StepNameCharts),
		logger:   infrastructure.WithComponent(logger, StepIDCharts),
	}
}

// Execute runs the charts step
func (s *ChartsStep) Execute(ctx context.Context, state *RunState) error {
	if err := requirePaths(state); err != nil {
		return err
	}
	if state.Dataset == nil || state.Summary == nil {
		return apperrors.NewAppValidationError("charts need a loaded dataset")
	}

	if err := state.Paths.EnsureDirectories(); err != nil {
		return err
	}

	set := charts.ChartSetFor(state.Paths)
	if err := charts.NewRenderer(s.logger).RenderAll(set, state.Dataset, state.Summary); err != nil {
		return err
	}

	state.Charts = set
	state.SetStepMetadata(s.ID(), "charts", len(set.Pages()))
	return nil
}

// DocumentStep lays out the report pages
type DocumentStep struct {
	BaseStep
	logger   *slog.Logger
	clock    func() time.Time
	compress bool
}

// NewDocumentStep creates a new document step
func NewDocumentStep(logger *slog.Logger, clock func() time.Time, compress bool) *DocumentStep {
	return &DocumentStep{
		BaseStep: NewBaseStep(StepIDDocument, StepNameDocument),
		logger:   infrastructure.WithComponent(logger, StepIDDocument),
		clock:    clock,
		compress: compress,
	}
}

// Execute runs the document step
func (s *DocumentStep) Execute(ctx context.Context, state *RunState) error {
	if err := requirePaths(state); err != nil {
		return err
	}
	if state.Summary == nil {
		return apperrors.NewAppValidationError("document needs a category summary")
	}

	b := document.NewBuilder(document.Options{
		Clock:    s.clock,
		LogoPath: state.Paths.LogoFile,
		Compress: s.compress,
		Logger:   s.logger,
	})

	if err := b.AddTitlePage(); err != nil {
		return err
	}
	if err := b.AddSummaryTable(state.Summary); err != nil {
		return err
	}
	for _, page := range state.Charts.Pages() {
		if err := b.AddChartPage(page.Title, page.ImagePath); err != nil {
			return err
		}
	}

	doc, err := b.Finalize()
	if err != nil {
		return err
	}

	state.Document = doc
	state.SetStepMetadata(s.ID(), "pages", doc.PageCount())
	return nil
}

// WriteStep writes the document and, when configured, the summary CSV
type WriteStep struct {
	BaseStep
	logger *slog.Logger
}

// NewWriteStep creates a new write step
func NewWriteStep(logger *slog.Logger) *WriteStep {
	return &WriteStep{
		BaseStep: NewBaseStep(StepIDWrite, StepNameWrite),
		logger:   infrastructure.WithComponent(logger, StepIDWrite),
	}
}

// Execute runs the write step
func (s *WriteStep) Execute(ctx context.Context, state *RunState) error {
	if err := requirePaths(state); err != nil {
		return err
	}
	if state.Document == nil {
		return apperrors.NewAppValidationError("nothing to write: document was not built")
	}

	n, err := exporter.NewDocumentWriter(s.logger).Write(state.Document, state.Paths.OutputFile)
	if err != nil {
		return err
	}
	state.OutputPath = state.Paths.OutputFile
	state.BytesWritten = n
	state.SetStepMetadata(s.ID(), "bytes", n)

	if state.Paths.SummaryCSV != "" {
		if err := exporter.NewCSVWriter(s.logger).WriteSummary(state.Summary, state.Paths.SummaryCSV); err != nil {
			return err
		}
		state.SummaryCSV = state.Paths.SummaryCSV
		state.SetStepMetadata(s.ID(), "summary_csv", state.SummaryCSV)
	}
	return nil
}

func requirePaths(state *RunState) error {
	if state == nil || state.Paths == nil {
		return apperrors.NewConfigError("run state has no resolved paths", nil)
	}
	return nil
}

// NewReportPipeline wires the load, charts, document and write steps over
// the paths resolved from cfg.
func NewReportPipeline(cfg *config.Config, logger *slog.Logger, opts ...Option) (*Pipeline, error) {
	if cfg == nil {
		return nil, apperrors.NewConfigError("configuration is required", nil)
	}
	if logger == nil {
		logger = slog.Default()
	}

	paths, err := cfg.ResolvePaths()
	if err != nil {
		return nil, apperrors.NewConfigError("failed to resolve paths", err)
	}
	paths.LogPathResolution(logger)

	s := newSettings(append([]Option{WithLogger(logger)}, opts...))
	steps := []Step{
		NewLoadStep(logger),
		NewChartsStep(logger),
		NewDocumentStep(logger, s.clock, s.compress),
		NewWriteStep(logger),
	}

	return NewPipeline(NewRunState(paths), steps, append([]Option{WithLogger(logger)}, opts...)...), nil
}
