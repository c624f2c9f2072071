package infrastructure

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/premlamishra/pdf-report-generator-fpdf/internal/config"
)

func decodeEntry(t *testing.T, data []byte) map[string]interface{} {
	t.Helper()
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &entry))
	return entry
}

func TestInitializeLogger_File(t *testing.T) {
	prev := slog.Default()
	resetRunLog()
	defer func() {
		resetRunLog()
		slog.SetDefault(prev)
	}()

	logFile := filepath.Join(t.TempDir(), "logs", "salesreport.log")
	cfg := config.LoggingConfig{
		Level:    "info",
		Format:   "json",
		Output:   "file",
		FilePath: logFile,
	}

	logger, err := InitializeLogger(cfg)
	require.NoError(t, err)
	require.NotNil(t, logger)
	assert.FileExists(t, logFile)

	logger.Debug("below level")
	logger.Info("Chart rendered", "chart", "bar")
	require.NoError(t, CloseLogFile())

	content, err := os.ReadFile(logFile)
	require.NoError(t, err)

	entry := decodeEntry(t, content)
	assert.Equal(t, "Chart rendered", entry["msg"])
	assert.Equal(t, "bar", entry["chart"])
	assert.Equal(t, "salesreport", entry["app"])
	assert.Equal(t, "INFO", entry["level"])
	assert.Same(t, logger, GetLogger())

	again, err := InitializeLogger(config.LoggingConfig{Level: "debug", Output: "console"})
	require.NoError(t, err)
	assert.Same(t, logger, again)
}

func TestInitializeLogger_UnwritableFile(t *testing.T) {
	prev := slog.Default()
	resetRunLog()
	defer func() {
		resetRunLog()
		slog.SetDefault(prev)
	}()

	blocker := filepath.Join(t.TempDir(), "logs")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	_, err := InitializeLogger(config.LoggingConfig{
		Level:    "info",
		Output:   "both",
		FilePath: filepath.Join(blocker, "salesreport.log"),
	})
	assert.Error(t, err)
}

func TestRunHandler_RunID(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONLogger(&buf, nil)

	ctx := WithRunID(context.Background(), "run-123")
	logger.InfoContext(ctx, "Report run started")

	entry := decodeEntry(t, buf.Bytes())
	assert.Equal(t, "run-123", entry["run_id"])
	assert.NotContains(t, entry, "trace_id")
}

func TestRunHandler_SpanIDs(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONLogger(&buf, nil).With("component", "charts")

	tp := sdktrace.NewTracerProvider()
	ctx, span := tp.Tracer("test").Start(context.Background(), "report.step.charts")
	logger.InfoContext(ctx, "Step started")
	span.End()

	entry := decodeEntry(t, buf.Bytes())
	assert.Equal(t, span.SpanContext().TraceID().String(), entry["trace_id"])
	assert.Equal(t, span.SpanContext().SpanID().String(), entry["span_id"])
	assert.Equal(t, "charts", entry["component"])
}

func TestLevelFromString(t *testing.T) {
	tests := []struct {
		level    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"WARN", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			assert.Equal(t, tt.expected, levelFromString(tt.level))
		})
	}
}

func TestRunIDHelpers(t *testing.T) {
	assert.Empty(t, RunID(context.Background()))

	ctx := EnsureRunID(context.Background())
	id := RunID(ctx)
	require.NotEmpty(t, id)
	assert.Equal(t, id, RunID(EnsureRunID(ctx)), "an existing run id is kept")
	assert.NotEqual(t, NewRunID(), NewRunID())
}

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	WithComponent(logger, "charts").Info("component test")
	assert.Equal(t, "charts", decodeEntry(t, buf.Bytes())["component"])
}
