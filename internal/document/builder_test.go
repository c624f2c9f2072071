package document

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/premlamishra/pdf-report-generator-fpdf/internal/config"
	apperrors "github.com/premlamishra/pdf-report-generator-fpdf/internal/errors"
	"github.com/premlamishra/pdf-report-generator-fpdf/internal/shared/testutil"
	"github.com/premlamishra/pdf-report-generator-fpdf/pkg/contracts/domain"
)

var fixedClock = func() time.Time {
	return time.Date(2026, time.October, 7, 9, 30, 0, 0, time.UTC)
}

func twoCategorySummary() *domain.SalesSummary {
	summary := domain.NewSalesSummary()
	for _, r := range []domain.SalesRecord{
		{Row: 0, Category: "Furniture", UnitPrice: decimal.NewFromInt(100), ShippingCost: decimal.NewFromInt(10)},
		{Row: 1, Category: "Technology", UnitPrice: decimal.NewFromInt(300), ShippingCost: decimal.NewFromInt(5)},
		{Row: 2, Category: "Furniture", UnitPrice: decimal.NewFromInt(200), ShippingCost: decimal.NewFromInt(20)},
	} {
		summary.Add(r)
	}
	return summary
}

type chartFiles struct {
	bar, pie, line string
}

func writeCharts(t *testing.T, dir string) chartFiles {
	t.Helper()
	return chartFiles{
		bar:  testutil.WritePNG(t, filepath.Join(dir, config.BarChartFile)),
		pie:  testutil.WritePNG(t, filepath.Join(dir, config.PieChartFile)),
		line: testutil.WritePNG(t, filepath.Join(dir, config.LineChartFile)),
	}
}

func buildReport(t *testing.T, opts Options, summary *domain.SalesSummary, charts chartFiles) *Document {
	t.Helper()

	b := NewBuilder(opts)
	require.NoError(t, b.AddTitlePage())
	require.NoError(t, b.AddSummaryTable(summary))
	require.NoError(t, b.AddChartPage(config.BarPageTitle, charts.bar))
	require.NoError(t, b.AddChartPage(config.PiePageTitle, charts.pie))
	require.NoError(t, b.AddChartPage(config.LinePageTitle, charts.line))

	doc, err := b.Finalize()
	require.NoError(t, err)
	return doc
}

func TestBuilder_StandardReport(t *testing.T) {
	dir := t.TempDir()
	charts := writeCharts(t, dir)

	doc := buildReport(t, Options{Clock: fixedClock}, twoCategorySummary(), charts)

	require.Equal(t, 5, doc.PageCount())
	pages := doc.Pages()

	wantSections := []Section{SectionTitle, SectionSummary, SectionChart, SectionChart, SectionChart}
	for i, p := range pages {
		assert.Equal(t, i+1, p.Number)
		assert.Equal(t, wantSections[i], p.Section)
	}

	title := pages[0]
	assert.False(t, title.Decorated)
	assert.True(t, title.HasLine(config.ReportTitle))
	assert.True(t, title.HasLine(config.ReportSubtitle))
	assert.True(t, title.HasLine(config.ReportAuthor))
	assert.True(t, title.HasLine(config.ReportRole))
	assert.False(t, title.HasLine(config.HeaderTitle))
	assert.False(t, title.HasLine(FooterText(1)))

	for _, p := range pages[1:] {
		assert.True(t, p.Decorated, "page %d", p.Number)
		assert.True(t, p.HasLine(config.HeaderTitle), "page %d", p.Number)
		assert.True(t, p.HasLine("Generated on October 07, 2026"), "page %d", p.Number)
		assert.True(t, p.HasLine(FooterText(p.Number)), "page %d", p.Number)
	}

	assert.True(t, pages[2].HasLine(config.BarPageTitle))
	assert.Equal(t, []string{charts.bar}, pages[2].Images)
	assert.Equal(t, []string{charts.pie}, pages[3].Images)
	assert.Equal(t, []string{charts.line}, pages[4].Images)
	for _, p := range pages {
		assert.Empty(t, p.MissingImages)
	}

	data := doc.Bytes()
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}

func TestBuilder_SummaryRows(t *testing.T) {
	doc := buildReport(t, Options{Clock: fixedClock}, twoCategorySummary(), writeCharts(t, t.TempDir()))

	summaryPage := doc.Pages()[1]
	assert.True(t, summaryPage.HasLine(config.SummaryHeading))
	assert.True(t, summaryPage.HasLine(config.SummaryColCategory))
	assert.True(t, summaryPage.HasLine(config.SummaryColSales))
	assert.True(t, summaryPage.HasLine(config.SummaryColShipping))

	require.Len(t, summaryPage.Rows, 2)
	assert.Equal(t, []string{"Furniture", "$300.00", "$30.00"}, summaryPage.Rows[0].Cells)
	assert.Equal(t, []string{"Technology", "$300.00", "$5.00"}, summaryPage.Rows[1].Cells)
	assert.Equal(t, RGB{245, 245, 245}, summaryPage.Rows[0].Fill)
	assert.Equal(t, RGB{255, 255, 255}, summaryPage.Rows[1].Fill)
}

func TestBuilder_MissingChartImage(t *testing.T) {
	dir := t.TempDir()
	charts := writeCharts(t, dir)
	charts.pie = filepath.Join(dir, "absent.png")

	logger, handler := testutil.NewTestLogger(t)
	doc := buildReport(t, Options{Clock: fixedClock, Logger: logger}, twoCategorySummary(), charts)

	require.Equal(t, 5, doc.PageCount())
	pie := doc.Pages()[3]
	assert.True(t, pie.HasLine(config.PiePageTitle))
	assert.True(t, pie.HasLine(config.MissingImagePrefix+charts.pie))
	assert.Equal(t, []string{charts.pie}, pie.MissingImages)
	assert.Empty(t, pie.Images)
	assert.True(t, pie.Decorated)

	testutil.AssertLogContains(t, handler, slog.LevelWarn, "Chart image could not be loaded")
	testutil.AssertNoErrors(t, handler)
}

func TestBuilder_MissingImageTextInOutput(t *testing.T) {
	dir := t.TempDir()
	charts := writeCharts(t, dir)
	charts.line = filepath.Join(dir, "gone.png")

	doc := buildReport(t, Options{Clock: fixedClock, Compress: false}, twoCategorySummary(), charts)

	assert.True(t, bytes.Contains(doc.Bytes(), []byte(config.MissingImagePrefix)))
	assert.True(t, bytes.Contains(doc.Bytes(), []byte("gone.png")))
}

func TestBuilder_CorruptImageDoesNotPoisonDocument(t *testing.T) {
	dir := t.TempDir()
	charts := writeCharts(t, dir)
	charts.bar = filepath.Join(dir, "corrupt.png")
	require.NoError(t, os.WriteFile(charts.bar, []byte("not a png"), 0644))

	doc := buildReport(t, Options{Clock: fixedClock}, twoCategorySummary(), charts)

	pages := doc.Pages()
	assert.Equal(t, []string{charts.bar}, pages[2].MissingImages)
	assert.Equal(t, []string{charts.pie}, pages[3].Images)
	assert.Equal(t, []string{charts.line}, pages[4].Images)
}

func TestBuilder_Logo(t *testing.T) {
	dir := t.TempDir()
	charts := writeCharts(t, dir)

	t.Run("present", func(t *testing.T) {
		logo := testutil.WritePNG(t, filepath.Join(dir, config.DefaultLogoFile))
		doc := buildReport(t, Options{Clock: fixedClock, LogoPath: logo}, twoCategorySummary(), charts)

		pages := doc.Pages()
		assert.NotContains(t, pages[0].Images, logo)
		for _, p := range pages[1:] {
			assert.Contains(t, p.Images, logo, "page %d", p.Number)
		}
	})

	t.Run("absent", func(t *testing.T) {
		logger, handler := testutil.NewTestLogger(t)
		logo := filepath.Join(dir, "no-logo.png")
		doc := buildReport(t, Options{Clock: fixedClock, LogoPath: logo, Logger: logger}, twoCategorySummary(), charts)

		for _, p := range doc.Pages() {
			assert.NotContains(t, p.Images, logo)
		}
		assert.Equal(t, 5, doc.PageCount())
		testutil.AssertNoErrors(t, handler)
	})
}

func TestBuilder_AutomaticPageBreak(t *testing.T) {
	summary := domain.NewSalesSummary()
	for i := 0; i < 60; i++ {
		summary.Add(domain.SalesRecord{
			Row:          i,
			Category:     fmt.Sprintf("Category %02d", i),
			UnitPrice:    decimal.NewFromInt(int64(i)),
			ShippingCost: decimal.NewFromInt(1),
		})
	}

	doc := buildReport(t, Options{Clock: fixedClock}, summary, writeCharts(t, t.TempDir()))
	pages := doc.Pages()

	var summaryPages []Page
	var rows []TableRow
	for _, p := range pages {
		if p.Section == SectionSummary {
			summaryPages = append(summaryPages, p)
			rows = append(rows, p.Rows...)
		}
	}

	require.Greater(t, len(summaryPages), 1)
	assert.Equal(t, 1+len(summaryPages)+3, doc.PageCount())
	for _, p := range summaryPages {
		assert.True(t, p.Decorated)
		assert.True(t, p.HasLine(config.HeaderTitle))
		assert.True(t, p.HasLine(FooterText(p.Number)))
	}

	require.Len(t, rows, 60)
	for i, r := range rows {
		assert.Equal(t, fmt.Sprintf("Category %02d", i), r.Cells[0])
		assert.Equal(t, RowFill(i), r.Fill)
	}
}

func TestBuilder_Finalized(t *testing.T) {
	b := NewBuilder(Options{Clock: fixedClock})
	require.NoError(t, b.AddTitlePage())

	doc, err := b.Finalize()
	require.NoError(t, err)
	assert.Equal(t, 1, doc.PageCount())

	_, err = b.Finalize()
	assert.ErrorIs(t, err, ErrFinalized)
	assert.ErrorIs(t, b.AddSummaryTable(twoCategorySummary()), ErrFinalized)
	assert.ErrorIs(t, b.AddChartPage("late", "late.png"), ErrFinalized)
	assert.Equal(t, 1, doc.PageCount())
}

func TestBuilder_OutOfOrder(t *testing.T) {
	b := NewBuilder(Options{Clock: fixedClock})

	assert.ErrorIs(t, b.AddChartPage(config.BarPageTitle, "bar.png"), ErrOutOfOrder)
	assert.ErrorIs(t, b.AddSummaryTable(twoCategorySummary()), ErrOutOfOrder)
	assert.Equal(t, 0, b.PageCount())

	require.NoError(t, b.AddTitlePage())
	assert.ErrorIs(t, b.AddTitlePage(), ErrOutOfOrder)
	assert.Equal(t, 1, b.PageCount())
}

func TestBuilder_Deterministic(t *testing.T) {
	dir := t.TempDir()
	charts := writeCharts(t, dir)

	first := buildReport(t, Options{Clock: fixedClock, Compress: true}, twoCategorySummary(), charts)
	second := buildReport(t, Options{Clock: fixedClock, Compress: true}, twoCategorySummary(), charts)

	assert.Equal(t, first.PageCount(), second.PageCount())
	assert.Equal(t, first.Pages()[1].Rows, second.Pages()[1].Rows)
	assert.Equal(t, first.Bytes(), second.Bytes())
}

func TestDocument_Render(t *testing.T) {
	doc := buildReport(t, Options{Clock: fixedClock}, twoCategorySummary(), writeCharts(t, t.TempDir()))

	var buf bytes.Buffer
	require.NoError(t, doc.Render(&buf))
	assert.Equal(t, doc.Bytes(), buf.Bytes())

	// rendering is repeatable
	var again bytes.Buffer
	require.NoError(t, doc.Render(&again))
	assert.Equal(t, buf.Bytes(), again.Bytes())
}

func TestRowFill(t *testing.T) {
	for i := 0; i < 6; i++ {
		if i%2 == 0 {
			assert.Equal(t, RGB{245, 245, 245}, RowFill(i))
		} else {
			assert.Equal(t, RGB{255, 255, 255}, RowFill(i))
		}
	}
}

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"300", "$300.00"},
		{"30", "$30.00"},
		{"1234.5", "$1234.50"},
		{"0", "$0.00"},
		{"-5", "$-5.00"},
		{"0.005", "$0.01"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatCurrency(decimal.RequireFromString(tt.in)))
		})
	}
}

func TestFinalize_RenderErrorType(t *testing.T) {
	b := NewBuilder(Options{Clock: fixedClock})
	require.NoError(t, b.AddTitlePage())
	b.pdf.SetError(fmt.Errorf("boom"))

	_, err := b.Finalize()
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeRender))
}
