package dataprocessing

import (
	"sort"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/premlamishra/pdf-report-generator-fpdf/internal/config"
	apperrors "github.com/premlamishra/pdf-report-generator-fpdf/internal/errors"
)

// ColumnMap holds the zero-based column indices of the fields a sales
// record is built from.
type ColumnMap struct {
	Category     int
	UnitPrice    int
	ShippingCost int
}

// requiredColumns lists the normalized headers every workbook must carry
var requiredColumns = []string{
	config.ColumnCategory,
	config.ColumnUnitPrice,
	config.ColumnShippingCost,
}

// NormalizeHeader canonicalizes a raw header cell: NFKC, trimmed,
// spaces replaced with underscores, lowercased.
// " Product Category " becomes "product_category".
func NormalizeHeader(h string) string {
	h = norm.NFKC.String(h)
	h = strings.TrimSpace(h)
	h = strings.ReplaceAll(h, " ", "_")
	return strings.ToLower(h)
}

// ResolveSchema maps the normalized header row onto the columns the loader
// needs. The first occurrence of a duplicated header wins.
func ResolveSchema(header []string) (ColumnMap, error) {
	index := make(map[string]int, len(header))
	normalized := make([]string, 0, len(header))
	for i, h := range header {
		name := NormalizeHeader(h)
		normalized = append(normalized, name)
		if name == "" {
			continue
		}
		if _, seen := index[name]; !seen {
			index[name] = i
		}
	}

	var missing []string
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return ColumnMap{}, apperrors.NewParsingError(
			"missing required columns: "+strings.Join(missing, ", "), nil).
			WithContext("missing", missing).
			WithContext("found", normalized)
	}

	return ColumnMap{
		Category:     index[config.ColumnCategory],
		UnitPrice:    index[config.ColumnUnitPrice],
		ShippingCost: index[config.ColumnShippingCost],
	}, nil
}
