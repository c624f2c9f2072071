package dataprocessing

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	apperrors "github.com/premlamishra/pdf-report-generator-fpdf/internal/errors"
	"github.com/premlamishra/pdf-report-generator-fpdf/internal/validation"
	"github.com/premlamishra/pdf-report-generator-fpdf/pkg/contracts/domain"
)

// LoadOptions controls how a workbook is read
type LoadOptions struct {
	// SheetName selects the worksheet; empty means the first sheet.
	SheetName string
	Logger    *slog.Logger
}

func (o LoadOptions) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}

// Load reads the workbook at path and aggregates it by category.
func Load(path string, opts LoadOptions) (*domain.SalesDataset, *domain.SalesSummary, error) {
	dataset, err := LoadWorkbook(path, opts)
	if err != nil {
		return nil, nil, err
	}
	summary := Aggregate(dataset)

	opts.logger().Info("Aggregated sales by category",
		slog.Int("records", dataset.Len()),
		slog.Int("categories", summary.Len()))
	return dataset, summary, nil
}

// LoadWorkbook reads the sales records of a single worksheet. The first
// non-empty row is the header; it is mapped onto the record fields with
// ResolveSchema before any data row is read.
func LoadWorkbook(path string, opts LoadOptions) (*domain.SalesDataset, error) {
	logger := opts.logger()

	if err := validation.NewFileValidator(logger).ValidateExcelFile(path); err != nil {
		return nil, err
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, apperrors.NewParsingError("failed to open workbook", err).
			WithContext("path", path)
	}
	defer f.Close()

	sheet := opts.SheetName
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, apperrors.NewParsingError("workbook has no sheets", nil).
				WithContext("path", path)
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, apperrors.NewParsingError(fmt.Sprintf("failed to read sheet %q", sheet), err).
			WithContext("path", path)
	}

	headerIdx := -1
	for i, row := range rows {
		if !isBlankRow(row) {
			headerIdx = i
			break
		}
	}
	if headerIdx < 0 {
		return nil, apperrors.NewParsingError(fmt.Sprintf("sheet %q has no header row", sheet), nil).
			WithContext("path", path)
	}

	cols, err := ResolveSchema(rows[headerIdx])
	if err != nil {
		return nil, err
	}

	logger.Info("Reading sales workbook",
		slog.String("file", path),
		slog.String("sheet", sheet),
		slog.Int("total_rows", len(rows)))

	dataset := &domain.SalesDataset{
		Source:  path,
		Sheet:   sheet,
		Records: make([]domain.SalesRecord, 0, len(rows)-headerIdx-1),
	}

	skipped := 0
	for i := headerIdx + 1; i < len(rows); i++ {
		row := rows[i]
		excelRow := i + 1

		if isBlankRow(row) {
			logger.Debug("Skipping blank row", slog.Int("row", excelRow))
			skipped++
			continue
		}

		category := cellValue(row, cols.Category)
		if category == "" {
			logger.Warn("Row without category left out of the category summary", slog.Int("row", excelRow))
		}

		unitPrice, perr := parseAmount(row, cols.UnitPrice, excelRow, "unit_price")
		if perr != nil {
			return nil, perr.WithContext("path", path).WithContext("sheet", sheet)
		}
		shippingCost, perr := parseAmount(row, cols.ShippingCost, excelRow, "shipping_cost")
		if perr != nil {
			return nil, perr.WithContext("path", path).WithContext("sheet", sheet)
		}

		dataset.Records = append(dataset.Records, domain.SalesRecord{
			Row:          len(dataset.Records),
			Category:     category,
			UnitPrice:    unitPrice,
			ShippingCost: shippingCost,
		})
	}

	logger.Info("Loaded sales workbook",
		slog.String("sheet", sheet),
		slog.Int("records", len(dataset.Records)),
		slog.Int("skipped_rows", skipped))

	return dataset, nil
}

// cellValue returns the trimmed cell at idx; excelize drops trailing empty cells.
func cellValue(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// parseAmount parses a money cell. Currency symbols and thousands
// separators are stripped; an empty cell counts as zero.
func parseAmount(row []string, idx, excelRow int, column string) (decimal.Decimal, *apperrors.AppError) {
	raw := cellValue(row, idx)
	cleaned := strings.NewReplacer("$", "", ",", "", " ", "").Replace(raw)
	if cleaned == "" {
		return decimal.Zero, nil
	}

	value, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, apperrors.NewParsingError(
			fmt.Sprintf("invalid %s %q in row %d", column, raw, excelRow), err).
			WithContext("row", excelRow).
			WithContext("column", column).
			WithContext("value", raw)
	}
	return value, nil
}
