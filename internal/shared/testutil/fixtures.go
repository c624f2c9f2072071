package testutil

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

// SalesHeader is the header row of the standard superstore workbook,
// in its raw, un-normalized spelling.
var SalesHeader = []interface{}{" Order ID", "Product Category ", "Unit Price", " Shipping Cost"}

// TwoCategoryRows is the two-category dataset used across tests:
// Furniture 100/10 and 200/20, Technology 300/5.
var TwoCategoryRows = [][]interface{}{
	{"CA-1", "Furniture", 100, 10},
	{"CA-2", "Technology", 300, 5},
	{"CA-3", "Furniture", 200, 20},
}

// WriteWorkbook saves a single-sheet workbook with the given header and rows
// into dir and returns its path.
func WriteWorkbook(t *testing.T, dir, name string, header []interface{}, rows [][]interface{}) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	if header != nil {
		if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
			t.Fatalf("failed to write header: %v", err)
		}
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			t.Fatalf("failed to compute cell name: %v", err)
		}
		r := row
		if err := f.SetSheetRow(sheet, cell, &r); err != nil {
			t.Fatalf("failed to write row %d: %v", i, err)
		}
	}

	path := filepath.Join(dir, name)
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("failed to save workbook: %v", err)
	}
	return path
}

// WriteSalesWorkbook writes the standard two-category workbook
func WriteSalesWorkbook(t *testing.T, dir string) string {
	t.Helper()
	return WriteWorkbook(t, dir, "superstore_sample.xlsx", SalesHeader, TwoCategoryRows)
}

// WritePNG writes a small solid PNG image to path
func WritePNG(t *testing.T, path string) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 8, 4))
	for x := 0; x < 8; x++ {
		for y := 0; y < 4; y++ {
			img.Set(x, y, color.RGBA{R: 0x69, G: 0xA1, B: 0xF4, A: 0xFF})
		}
	}

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create png: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode png: %v", err)
	}
	return path
}
