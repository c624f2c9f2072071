package operations

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"

	"github.com/premlamishra/pdf-report-generator-fpdf/internal/infrastructure"
)

// settings collects the Options of a pipeline
type settings struct {
	tracer   trace.Tracer
	meter    metric.Meter
	logger   *slog.Logger
	clock    func() time.Time
	compress bool
}

// Option configures a Pipeline
type Option func(*settings)

// WithTracer sets the tracer the run and step spans are started on
func WithTracer(tracer trace.Tracer) Option {
	return func(s *settings) { s.tracer = tracer }
}

// WithMeter sets the meter the run metrics are recorded on
func WithMeter(meter metric.Meter) Option {
	return func(s *settings) { s.meter = meter }
}

// WithLogger sets the pipeline logger
func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) { s.logger = logger }
}

// WithClock sets the clock the document date is taken from
func WithClock(clock func() time.Time) Option {
	return func(s *settings) { s.clock = clock }
}

// WithCompression toggles stream compression of the PDF
func WithCompression(compress bool) Option {
	return func(s *settings) { s.compress = compress }
}

func newSettings(opts []Option) settings {
	s := settings{
		clock:    time.Now,
		compress: true,
	}
	for _, opt := range opts {
		opt(&s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	if s.tracer == nil {
		s.tracer = otel.Tracer(infrastructure.TracerName)
	}
	if s.meter == nil {
		s.meter = otel.Meter(infrastructure.MeterName)
	}
	return s
}

// Pipeline runs its steps once, in order, stopping at the first failure.
type Pipeline struct {
	steps   []Step
	state   *RunState
	tracer  trace.Tracer
	metrics *infrastructure.ReportMetrics
	logger  *slog.Logger
}

// NewPipeline creates a pipeline over state
func NewPipeline(state *RunState, steps []Step, opts ...Option) *Pipeline {
	s := newSettings(opts)
	logger := infrastructure.WithComponent(s.logger, "pipeline")

	metrics, err := infrastructure.CreateReportMetrics(s.meter)
	if err != nil {
		logger.Warn("Run metrics disabled", slog.String("error", err.Error()))
		metrics, _ = infrastructure.CreateReportMetrics(metricnoop.NewMeterProvider().Meter(infrastructure.MeterName))
	}

	return &Pipeline{
		steps:   steps,
		state:   state,
		tracer:  s.tracer,
		metrics: metrics,
		logger:  logger,
	}
}

// Steps returns the steps in run order
func (p *Pipeline) Steps() []Step {
	return p.steps
}

// Run executes every step. The returned state is valid even on error and
// shows how far the run got; the error is a *StepError.
func (p *Pipeline) Run(ctx context.Context) (*RunState, error) {
	ctx = infrastructure.EnsureRunID(ctx)
	ctx, span := p.tracer.Start(ctx, "report.run",
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(attribute.Int("report.steps", len(p.steps))),
	)
	defer span.End()

	start := time.Now()
	p.logger.InfoContext(ctx, "Report run started", slog.Int("steps", len(p.steps)))
	defer p.recordVolume(ctx)

	for _, step := range p.steps {
		if err := p.runStep(ctx, step); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			p.logger.ErrorContext(ctx, "Report run failed",
				slog.String("step", step.ID()),
				slog.Duration("duration", time.Since(start)),
				slog.String("error", err.Error()))
			return p.state, err
		}
	}

	span.SetStatus(codes.Ok, "")
	p.logger.InfoContext(ctx, "Report run completed",
		slog.Duration("duration", time.Since(start)))
	return p.state, nil
}

// recordVolume adds the records and categories the run got as far as loading
func (p *Pipeline) recordVolume(ctx context.Context) {
	if p.state.Dataset != nil {
		p.metrics.Records.Add(ctx, int64(p.state.Dataset.Len()))
	}
	if p.state.Summary != nil {
		p.metrics.Categories.Add(ctx, int64(p.state.Summary.Len()))
	}
}

func (p *Pipeline) runStep(ctx context.Context, step Step) error {
	ctx, span := p.tracer.Start(ctx, "report.step."+step.ID(),
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(
			attribute.String("step.id", step.ID()),
			attribute.String("step.name", step.Name()),
		),
	)
	defer span.End()

	st := NewStepState(step.ID(), step.Name())
	p.state.addStep(st)
	st.Start()

	p.logger.InfoContext(ctx, "Step started",
		slog.String("step", step.ID()),
		slog.String("name", step.Name()))

	err := ctx.Err()
	if err == nil {
		err = step.Execute(ctx, p.state)
	}
	if err != nil {
		st.Fail(err)
		p.recordDuration(ctx, st)
		infrastructure.RecordError(ctx, err)
		p.logger.ErrorContext(ctx, "Step failed",
			slog.String("step", step.ID()),
			slog.Duration("duration", st.Duration()),
			slog.String("error", err.Error()))
		return NewStepError(step, err)
	}

	st.Complete()
	p.recordDuration(ctx, st)
	infrastructure.SetSpanAttributes(ctx, st.Metadata)
	span.SetStatus(codes.Ok, "")

	p.logger.InfoContext(ctx, "Step completed",
		slog.String("step", step.ID()),
		slog.Duration("duration", st.Duration()))
	return nil
}

func (p *Pipeline) recordDuration(ctx context.Context, st *StepState) {
	p.metrics.StepDuration.Record(ctx, st.Duration().Seconds(),
		metric.WithAttributes(
			attribute.String("step", st.ID),
			attribute.String("status", string(st.GetStatus())),
		),
	)
}
