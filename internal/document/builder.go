package document

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/premlamishra/pdf-report-generator-fpdf/internal/config"
	apperrors "github.com/premlamishra/pdf-report-generator-fpdf/internal/errors"
	"github.com/premlamishra/pdf-report-generator-fpdf/internal/validation"
	"github.com/premlamishra/pdf-report-generator-fpdf/pkg/contracts/domain"
)

var (
	// ErrFinalized is returned by every mutation after Finalize
	ErrFinalized = errors.New("document already finalized")
	// ErrOutOfOrder is returned when a section is added out of sequence
	ErrOutOfOrder = errors.New("document section out of order")
)

// next lists the sections that may follow each state; "" is the empty document
var next = map[Section][]Section{
	"":             {SectionTitle},
	SectionTitle:   {SectionSummary},
	SectionSummary: {SectionChart},
	SectionChart:   {SectionChart},
}

// Options configures a Builder
type Options struct {
	// Clock provides the generation date; defaults to time.Now.
	Clock func() time.Time
	// LogoPath is drawn in the page header when it can be loaded.
	LogoPath string
	// Compress enables stream compression in the output.
	Compress bool
	Logger   *slog.Logger
}

// Builder assembles the report PDF page by page. It moves through the
// states title, summary, chart and finalized, in that order.
type Builder struct {
	pdf       *fpdf.Fpdf
	tr        func(string) string
	validator *validation.FileValidator
	logger    *slog.Logger
	now       time.Time

	logo      image
	hasLogo   bool
	section   Section
	pages     []Page
	finalized bool
}

// image is an image registered with the PDF
type image struct {
	name      string
	imageType string
}

func (img image) options() fpdf.ImageOptions {
	return fpdf.ImageOptions{ImageType: img.imageType}
}

// NewBuilder creates an empty A4 portrait document
func NewBuilder(opts Options) *Builder {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}
	now := clock()

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(opts.Compress)
	pdf.SetCatalogSort(true)
	pdf.SetCreationDate(now)
	pdf.SetModificationDate(now)
	pdf.SetTitle(config.ReportTitle, true)
	pdf.SetAuthor(config.AppVendor, true)
	pdf.SetCreator(config.AppName+" "+config.AppVersion, true)
	pdf.SetAutoPageBreak(true, bottomMargin)

	b := &Builder{
		pdf:       pdf,
		tr:        pdf.UnicodeTranslatorFromDescriptor(""),
		validator: validation.NewFileValidator(logger),
		logger:    logger,
		now:       now,
	}
	pdf.SetHeaderFunc(b.header)
	pdf.SetFooterFunc(b.footer)

	if opts.LogoPath != "" {
		b.logo, b.hasLogo = b.loadImage(opts.LogoPath)
		if !b.hasLogo {
			logger.Debug("Logo not available, header drawn without it",
				slog.String("logo", opts.LogoPath))
		}
	}
	return b
}

// AddTitlePage draws the undecorated cover page.
func (b *Builder) AddTitlePage() error {
	if err := b.begin(SectionTitle); err != nil {
		return err
	}

	b.setFont("B", sizeTitle)
	b.setTextColor(colorTitle)
	b.pdf.Ln(titleTopGap)
	b.cell(0, config.ReportTitle, "", 1, "C", false)

	b.setFont("", sizeSubtitle)
	b.setTextColor(colorSubtitle)
	b.cell(0, config.ReportSubtitle, "", 1, "C", false)

	b.pdf.Ln(titleBylineGap)
	b.setFont("I", sizeBody)
	b.cell(0, config.ReportAuthor, "", 1, "C", false)
	b.cell(0, config.ReportRole, "", 1, "C", false)

	return b.check("title page")
}

// AddSummaryTable draws the per-category table. Rows that do not fit
// continue on a new decorated page.
func (b *Builder) AddSummaryTable(summary *domain.SalesSummary) error {
	if err := b.begin(SectionSummary); err != nil {
		return err
	}

	b.setFont("B", sizeHeading)
	b.setTextColor(colorTitle)
	b.cell(0, config.SummaryHeading, "", 1, "", false)

	b.setFillColor(colorTableHead)
	b.setFont("B", sizeBody)
	b.cell(colCategoryWidth, config.SummaryColCategory, "1", 0, "C", true)
	b.cell(colAmountWidth, config.SummaryColSales, "1", 0, "C", true)
	b.cell(colAmountWidth, config.SummaryColShipping, "1", 1, "C", true)

	b.setFont("", sizeBody)
	if summary != nil {
		for i, c := range summary.Categories {
			fill := RowFill(i)
			b.setFillColor(fill)
			row := TableRow{
				Cells: []string{c.Category, FormatCurrency(c.TotalUnitPrice), FormatCurrency(c.TotalShippingCost)},
				Fill:  fill,
			}
			b.cell(colCategoryWidth, row.Cells[0], "1", 0, "L", true)
			b.cell(colAmountWidth, row.Cells[1], "1", 0, "R", true)
			b.cell(colAmountWidth, row.Cells[2], "1", 1, "R", true)

			p := b.current()
			p.Rows = append(p.Rows, row)
		}
	}

	return b.check("summary table")
}

// AddChartPage draws a heading and the chart image at 150 mm width. An
// image that cannot be loaded is replaced by an inline error line; the
// page is kept either way.
func (b *Builder) AddChartPage(title, imagePath string) error {
	if err := b.begin(SectionChart); err != nil {
		return err
	}

	b.setFont("B", sizeHeading)
	b.setTextColor(colorHeading)
	b.cell(0, title, "", 1, "", false)
	b.pdf.Ln(chartHeadingGap)

	img, ok := b.loadImage(imagePath)
	if !ok {
		b.logger.Warn("Chart image could not be loaded",
			slog.String("title", title),
			slog.String("path", imagePath))
		b.setTextColor(colorError)
		b.setFont("", sizeBody)
		b.cell(0, config.MissingImagePrefix+imagePath, "", 1, "", false)
		p := b.current()
		p.MissingImages = append(p.MissingImages, imagePath)
		return b.check("chart page")
	}

	b.pdf.ImageOptions(img.name, chartX, 0, chartWidth, 0, true, img.options(), 0, "")
	p := b.current()
	p.Images = append(p.Images, imagePath)

	return b.check("chart page")
}

// Finalize closes the document and serializes it. The builder accepts
// no further changes afterwards.
func (b *Builder) Finalize() (*Document, error) {
	if b.finalized {
		return nil, ErrFinalized
	}
	b.finalized = true

	var buf bytes.Buffer
	if err := b.pdf.Output(&buf); err != nil {
		return nil, apperrors.NewRenderError("failed to finalize document", err)
	}

	b.logger.Info("Document finalized",
		slog.Int("pages", len(b.pages)),
		slog.Int("bytes", buf.Len()))

	return &Document{pages: b.pages, data: buf.Bytes()}, nil
}

// PageCount returns the number of pages started so far
func (b *Builder) PageCount() int {
	return len(b.pages)
}

// begin moves to section and starts its first page.
func (b *Builder) begin(section Section) error {
	if b.finalized {
		return ErrFinalized
	}
	allowed := false
	for _, s := range next[b.section] {
		if s == section {
			allowed = true
			break
		}
	}
	if !allowed {
		return fmt.Errorf("%w: %s after %q", ErrOutOfOrder, section, b.section)
	}
	if err := b.pdf.Error(); err != nil {
		return apperrors.NewRenderError("document is in a failed state", err)
	}

	b.section = section
	b.pdf.AddPage()
	return nil
}

// check surfaces the error latched by fpdf while drawing.
func (b *Builder) check(what string) error {
	if err := b.pdf.Error(); err != nil {
		return apperrors.NewRenderError("failed to draw "+what, err).
			WithContext("page", b.pdf.PageNo())
	}
	return nil
}

// loadImage registers an image with the document. It reports false when
// the file is missing, of an unsupported type or cannot be decoded.
func (b *Builder) loadImage(path string) (image, bool) {
	imageType, err := b.validator.ValidateImageFile(path)
	if err != nil {
		return image{}, false
	}
	if !b.pdf.Ok() {
		return image{}, false
	}

	f, err := os.Open(path)
	if err != nil {
		return image{}, false
	}
	defer f.Close()

	opts := fpdf.ImageOptions{ImageType: strings.ToLower(imageType)}
	b.pdf.RegisterImageOptionsReader(path, opts, f)
	if err := b.pdf.Error(); err != nil {
		b.logger.Warn("Failed to decode image",
			slog.String("path", path),
			slog.String("error", err.Error()))
		b.pdf.ClearError()
		return image{}, false
	}

	return image{name: path, imageType: opts.ImageType}, true
}

// current returns the page being drawn, or nil before the first page
func (b *Builder) current() *Page {
	if len(b.pages) == 0 {
		return nil
	}
	return &b.pages[len(b.pages)-1]
}

// cell draws one text cell and records its text on the current page.
// The page is looked up after drawing since the cell may have broken onto a new page.
func (b *Builder) cell(w float64, text, border string, ln int, align string, fill bool) {
	b.pdf.CellFormat(w, lineHeight, b.tr(text), border, ln, align, fill, 0, "")
	if p := b.current(); p != nil {
		p.Lines = append(p.Lines, text)
	}
}

func (b *Builder) setFont(style string, size float64) {
	b.pdf.SetFont(fontFamily, style, size)
}

func (b *Builder) setTextColor(c RGB) {
	b.pdf.SetTextColor(c.R, c.G, c.B)
}

func (b *Builder) setFillColor(c RGB) {
	b.pdf.SetFillColor(c.R, c.G, c.B)
}
