package exporter

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"

	"github.com/premlamishra/pdf-report-generator-fpdf/internal/config"
	apperrors "github.com/premlamishra/pdf-report-generator-fpdf/internal/errors"
	"github.com/premlamishra/pdf-report-generator-fpdf/internal/validation"
	"github.com/premlamishra/pdf-report-generator-fpdf/pkg/contracts/domain"
)

// utf8BOM helps Excel recognize UTF-8
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// CSVWriter provides CSV export functionality
type CSVWriter struct {
	validator *validation.FileValidator
	logger    *slog.Logger
}

// NewCSVWriter creates a new CSV writer instance
func NewCSVWriter(logger *slog.Logger) *CSVWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CSVWriter{
		validator: validation.NewFileValidator(logger),
		logger:    logger,
	}
}

// WriteOptions configures CSV writing behavior
type WriteOptions struct {
	Headers   []string
	Records   [][]string
	BOMPrefix bool // Add UTF-8 BOM for Excel compatibility
}

// WriteCSV writes data to a CSV file, replacing any existing file
func (w *CSVWriter) WriteCSV(filePath string, options WriteOptions) error {
	w.logger.Info("Writing CSV file",
		slog.String("file_path", filePath),
		slog.Int("record_count", len(options.Records)))

	if err := w.validator.ValidateOutputDirectory(dirOf(filePath)); err != nil {
		return err
	}

	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return apperrors.NewStorageError("failed to open file", err).WithContext("path", filePath)
	}
	defer file.Close()

	if options.BOMPrefix {
		if _, err := file.Write(utf8BOM); err != nil {
			return apperrors.NewStorageError("failed to write BOM", err).WithContext("path", filePath)
		}
	}

	writer := csv.NewWriter(file)

	if len(options.Headers) > 0 {
		if err := writer.Write(options.Headers); err != nil {
			return apperrors.NewStorageError("failed to write headers", err).WithContext("path", filePath)
		}
	}

	for i, record := range options.Records {
		if err := writer.Write(record); err != nil {
			return apperrors.NewStorageError(fmt.Sprintf("failed to write record %d", i), err).
				WithContext("path", filePath)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return apperrors.NewStorageError("failed to flush CSV", err).WithContext("path", filePath)
	}
	if err := file.Close(); err != nil {
		return apperrors.NewStorageError("failed to close file", err).WithContext("path", filePath)
	}
	return nil
}

// SummaryHeaders are the columns of the summary export
var SummaryHeaders = []string{
	config.SummaryColCategory,
	config.SummaryColSales,
	config.SummaryColShipping,
	config.SummaryColRecords,
}

// WriteSummary exports the aggregate table, one row per category in table order.
func (w *CSVWriter) WriteSummary(summary *domain.SalesSummary, filePath string) error {
	records := make([][]string, 0, summary.Len())
	if summary != nil {
		for _, c := range summary.Categories {
			records = append(records, []string{
				c.Category,
				formatAmount(c.TotalUnitPrice),
				formatAmount(c.TotalShippingCost),
				formatInt(c.RecordCount),
			})
		}
	}

	return w.WriteCSV(filePath, WriteOptions{
		Headers:   SummaryHeaders,
		Records:   records,
		BOMPrefix: true,
	})
}
