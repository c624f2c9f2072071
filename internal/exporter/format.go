package exporter

import (
	"path/filepath"
	"strconv"

	"github.com/shopspring/decimal"
)

// formatAmount formats a money value with exactly 2 decimal places
func formatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// formatInt formats an int value for CSV output
func formatInt(i int) string {
	return strconv.Itoa(i)
}

func dirOf(path string) string {
	return filepath.Dir(path)
}
