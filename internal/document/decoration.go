package document

import (
	"fmt"
	"log/slog"

	"github.com/premlamishra/pdf-report-generator-fpdf/internal/config"
)

// decorated reports whether pages of a section carry the header and footer
func decorated(s Section) bool {
	return s == SectionSummary || s == SectionChart
}

// header runs at the start of every page, including pages started by an
// automatic page break. It records the page and draws the report header.
func (b *Builder) header() {
	page := Page{
		Number:    b.pdf.PageNo(),
		Section:   b.section,
		Decorated: decorated(b.section),
	}
	b.pages = append(b.pages, page)
	if !page.Decorated {
		return
	}

	b.logger.Debug("Decorating page",
		slog.Int("page", page.Number),
		slog.String("section", string(page.Section)))

	b.setFont("B", sizeHeading)
	if b.hasLogo {
		b.pdf.ImageOptions(b.logo.name, logoX, logoY, logoWidth, 0, false, b.logo.options(), 0, "")
		p := b.current()
		p.Images = append(p.Images, b.logo.name)
	}
	b.setTextColor(colorHeading)
	b.cell(0, config.HeaderTitle, "", 1, "C", false)

	b.setFont("", sizeDate)
	b.setTextColor(colorBlack)
	b.cell(0, config.HeaderDatePrefix+b.now.Format(config.HeaderDateLayout), "", 1, "C", false)
	b.pdf.Ln(headerGap)
}

// footer runs when a page is closed
func (b *Builder) footer() {
	page := b.current()
	if page == nil || !page.Decorated {
		return
	}

	b.pdf.SetY(footerOffset)
	b.setFont("I", sizeFooter)
	b.setTextColor(colorBlack)
	b.cell(0, FooterText(page.Number), "", 0, "C", false)
}

// FooterText returns the footer line of page n
func FooterText(n int) string {
	return fmt.Sprintf("Page %d - %s", n, config.FooterLabel)
}
