// Package document lays out the report PDF.
//
// A Builder takes the sections in a fixed order: the title page, the
// category summary table and then one page per chart. Every page after
// the title carries the report header and a numbered footer, including
// pages started by an automatic page break. Finalize serializes the PDF
// into an immutable Document that also records what was drawn on each
// page.
package document
