package document

import (
	"bytes"
	"io"
)

// Section identifies which part of the report a page belongs to
type Section string

const (
	SectionTitle   Section = "title"
	SectionSummary Section = "summary"
	SectionChart   Section = "chart"
)

// Page records what was drawn on one page of the document.
type Page struct {
	Number  int
	Section Section
	// Decorated is true when the page carries the report header and footer.
	Decorated bool
	// Lines holds every text line in drawing order, header and footer included.
	Lines []string
	// Images holds the paths of the images placed on the page.
	Images []string
	// MissingImages holds the paths of images that could not be loaded.
	MissingImages []string
	// Rows holds the summary table body rows drawn on the page.
	Rows []TableRow
}

// TableRow is one body row of the summary table
type TableRow struct {
	Cells []string
	Fill  RGB
}

// HasLine reports whether text was drawn on the page
func (p Page) HasLine(text string) bool {
	for _, l := range p.Lines {
		if l == text {
			return true
		}
	}
	return false
}

// Document is a finalized report. It is immutable.
type Document struct {
	pages []Page
	data  []byte
}

// Pages returns a copy of the page model
func (d *Document) Pages() []Page {
	out := make([]Page, len(d.pages))
	copy(out, d.pages)
	return out
}

// PageCount returns the number of pages
func (d *Document) PageCount() int {
	return len(d.pages)
}

// Bytes returns the serialized PDF
func (d *Document) Bytes() []byte {
	return bytes.Clone(d.data)
}

// Render writes the serialized PDF to w
func (d *Document) Render(w io.Writer) error {
	_, err := w.Write(d.data)
	return err
}
