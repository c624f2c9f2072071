package exporter

import (
	"io"
	"log/slog"
	"os"

	apperrors "github.com/premlamishra/pdf-report-generator-fpdf/internal/errors"
	"github.com/premlamishra/pdf-report-generator-fpdf/internal/validation"
)

// Renderable is a finished document that can serialize itself
type Renderable interface {
	Render(w io.Writer) error
}

// DocumentWriter writes finished documents to disk
type DocumentWriter struct {
	validator *validation.FileValidator
	logger    *slog.Logger
}

// NewDocumentWriter creates a new document writer
func NewDocumentWriter(logger *slog.Logger) *DocumentWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &DocumentWriter{
		validator: validation.NewFileValidator(logger),
		logger:    logger,
	}
}

// Write renders doc into path, replacing any existing file, and returns
// the number of bytes written. Every failure is a STORAGE error.
func (w *DocumentWriter) Write(doc Renderable, path string) (int64, error) {
	if err := w.validator.ValidateOutputDirectory(dirOf(path)); err != nil {
		return 0, err
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return 0, apperrors.NewStorageError("failed to create document file", err).
			WithContext("path", path)
	}

	cw := &countingWriter{w: file}
	if err := doc.Render(cw); err != nil {
		file.Close()
		return cw.n, apperrors.NewStorageError("failed to write document", err).
			WithContext("path", path)
	}
	if err := file.Close(); err != nil {
		return cw.n, apperrors.NewStorageError("failed to close document file", err).
			WithContext("path", path)
	}

	w.logger.Info("Document written",
		slog.String("path", path),
		slog.Int64("bytes", cw.n))
	return cw.n, nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
