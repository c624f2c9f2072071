// Package exporter writes the outputs of a report run to disk.
//
// This package contains two components:
//
// DocumentWriter: Serializes a finished document to its output path,
// replacing any previous file.
//
// CSVWriter: Core CSV writing with a UTF-8 BOM for Excel compatibility,
// used to export the category summary table.
//
// Example usage:
//
//	n, err := exporter.NewDocumentWriter(logger).Write(doc, "report.pdf")
//
//	err = exporter.NewCSVWriter(logger).WriteSummary(summary, "summary.csv")
package exporter
