package infrastructure

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/premlamishra/pdf-report-generator-fpdf/internal/config"
)

func TestInitializeOTel_None(t *testing.T) {
	providers, err := InitializeOTel(DefaultOTelConfig(), slog.Default())
	require.NoError(t, err)

	assert.Nil(t, providers.TracerProvider)
	assert.NotNil(t, providers.Tracer)
	assert.Nil(t, providers.MeterProvider)
	assert.NotNil(t, providers.Meter)
	assert.NoError(t, providers.Shutdown(context.Background()))
}

func TestInitializeOTel_Stdout(t *testing.T) {
	defer otel.SetTracerProvider(noop.NewTracerProvider())

	var out bytes.Buffer
	cfg := DefaultOTelConfig()
	cfg.TraceExporter = "stdout"
	cfg.Writer = &out

	providers, err := InitializeOTel(cfg, slog.Default())
	require.NoError(t, err)
	require.NotNil(t, providers.TracerProvider)

	ctx, span := providers.Tracer.Start(context.Background(), "load")
	assert.NotEmpty(t, TraceIDFromContext(ctx))
	SetSpanAttributes(ctx, map[string]interface{}{"records": 3, "source": "superstore_sample.xlsx"})
	RecordError(ctx, errors.New("boom"))
	span.End()

	require.NoError(t, providers.Shutdown(context.Background()))
	assert.Contains(t, out.String(), `"Name":"load"`)
	assert.Contains(t, out.String(), "boom")
}

func TestInitializeOTel_UnsupportedExporter(t *testing.T) {
	cfg := DefaultOTelConfig()
	cfg.TraceExporter = "otlp"

	_, err := InitializeOTel(cfg, slog.Default())
	assert.Error(t, err)
}

func TestInitializeOTel_PrometheusTextfile(t *testing.T) {
	defer otel.SetMeterProvider(metricnoop.NewMeterProvider())

	file := filepath.Join(t.TempDir(), "report.prom")
	cfg := DefaultOTelConfig()
	cfg.MetricExporter = "prometheus"
	cfg.MetricsFile = file

	providers, err := InitializeOTel(cfg, slog.Default())
	require.NoError(t, err)
	require.NotNil(t, providers.MeterProvider)

	records, err := providers.Meter.Int64Counter("report.records")
	require.NoError(t, err)
	records.Add(context.Background(), 3, metric.WithAttributes(attribute.String("sheet", "Sheet1")))

	require.NoError(t, providers.Shutdown(context.Background()))

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	// legacy exposition escapes dots, UTF-8 exposition quotes the name
	assert.Contains(t, strings.ReplaceAll(string(data), ".", "_"), "report_records_total")
	assert.Contains(t, string(data), `sheet="Sheet1"`)
}

func TestInitializeOTel_PrometheusWithoutTextfile(t *testing.T) {
	cfg := DefaultOTelConfig()
	cfg.MetricExporter = "prometheus"
	cfg.MetricsFile = ""

	_, err := InitializeOTel(cfg, slog.Default())
	assert.Error(t, err)
}

func TestInitializeOTel_UnsupportedMetricExporter(t *testing.T) {
	cfg := DefaultOTelConfig()
	cfg.MetricExporter = "otlp"

	_, err := InitializeOTel(cfg, slog.Default())
	assert.Error(t, err)
}

func TestOTelConfigFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Tracing.Exporter = "stdout"
	cfg.Metrics.Exporter = "prometheus"
	cfg.Metrics.TextfilePath = "metrics/report.prom"

	oc := OTelConfigFromConfig(cfg)
	assert.Equal(t, ServiceName, oc.ServiceName)
	assert.Equal(t, "stdout", oc.TraceExporter)
	assert.Equal(t, "prometheus", oc.MetricExporter)
	assert.Equal(t, "metrics/report.prom", oc.MetricsFile)
}

func TestTraceIDFromContext_NoSpan(t *testing.T) {
	assert.Empty(t, TraceIDFromContext(context.Background()))
}
