package infrastructure

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.opentelemetry.io/otel/trace"

	"github.com/premlamishra/pdf-report-generator-fpdf/internal/config"
)

// runLog is the process-wide logger of a report run and the file it appends to.
var runLog struct {
	once   sync.Once
	logger *slog.Logger

	mu   sync.Mutex
	file *os.File
}

// InitializeLogger builds the JSON logger described by cfg and installs it
// as the slog default. Only the first call configures anything; later calls
// return the same logger.
func InitializeLogger(cfg config.LoggingConfig) (*slog.Logger, error) {
	var err error
	runLog.once.Do(func() {
		var w io.Writer
		w, err = logWriter(cfg)
		if err != nil {
			return
		}
		runLog.logger = NewJSONLogger(w, &slog.HandlerOptions{
			AddSource: true,
			Level:     levelFromString(cfg.Level),
		}).With(slog.String("app", "salesreport"))
		slog.SetDefault(runLog.logger)
	})
	return runLog.logger, err
}

// GetLogger returns the run logger, or the slog default before InitializeLogger.
func GetLogger() *slog.Logger {
	if runLog.logger == nil {
		return slog.Default()
	}
	return runLog.logger
}

// logWriter resolves the configured output to a writer, opening the log file
// for "file" and "both".
func logWriter(cfg config.LoggingConfig) (io.Writer, error) {
	output := strings.ToLower(cfg.Output)
	if output != "file" && output != "both" {
		return os.Stdout, nil
	}

	file, err := openLogFile(cfg.FilePath)
	if err != nil {
		return nil, err
	}
	runLog.mu.Lock()
	runLog.file = file
	runLog.mu.Unlock()

	if output == "both" {
		return io.MultiWriter(os.Stdout, file), nil
	}
	return file, nil
}

// NewJSONLogger builds a JSON logger on w whose records carry the run id and,
// inside a span, the trace and span ids.
func NewJSONLogger(w io.Writer, opts *slog.HandlerOptions) *slog.Logger {
	return slog.New(&runHandler{Handler: slog.NewJSONHandler(w, opts)})
}

// runHandler stamps records with the correlation ids found in their context.
type runHandler struct {
	slog.Handler
}

func (h *runHandler) Handle(ctx context.Context, r slog.Record) error {
	if id := RunID(ctx); id != "" {
		r.AddAttrs(slog.String("run_id", id))
	}
	if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
		r.AddAttrs(
			slog.String("trace_id", sc.TraceID().String()),
			slog.String("span_id", sc.SpanID().String()),
		)
	}
	return h.Handler.Handle(ctx, r)
}

func (h *runHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &runHandler{Handler: h.Handler.WithAttrs(attrs)}
}

func (h *runHandler) WithGroup(name string) slog.Handler {
	return &runHandler{Handler: h.Handler.WithGroup(name)}
}

// levelFromString maps a configured level name; unknown names log at info.
func levelFromString(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// CloseLogFile closes the run log file, if one was opened.
func CloseLogFile() error {
	runLog.mu.Lock()
	defer runLog.mu.Unlock()

	if runLog.file == nil {
		return nil
	}
	err := runLog.file.Close()
	runLog.file = nil
	return err
}

// resetRunLog lets tests initialize the logger again.
func resetRunLog() {
	CloseLogFile()
	runLog.logger = nil
	runLog.once = sync.Once{}
}

// openLogFile appends to filePath, creating it and its directory as needed.
func openLogFile(filePath string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return file, nil
}
