package infrastructure

import (
	"go.opentelemetry.io/otel/metric"
)

// ReportMetrics holds the instruments recorded by a report run
type ReportMetrics struct {
	StepDuration metric.Float64Histogram
	Records      metric.Int64Counter
	Categories   metric.Int64Counter
}

// CreateReportMetrics creates the report run instruments on meter
func CreateReportMetrics(meter metric.Meter) (*ReportMetrics, error) {
	stepDuration, err := meter.Float64Histogram(
		"report.step.duration",
		metric.WithDescription("Report step duration in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	records, err := meter.Int64Counter(
		"report.records",
		metric.WithDescription("Sales records loaded from the workbook"),
	)
	if err != nil {
		return nil, err
	}

	categories, err := meter.Int64Counter(
		"report.categories",
		metric.WithDescription("Product categories in the summary"),
	)
	if err != nil {
		return nil, err
	}

	return &ReportMetrics{
		StepDuration: stepDuration,
		Records:      records,
		Categories:   categories,
	}, nil
}
