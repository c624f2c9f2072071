// Package operations runs a report generation as a fixed sequence of steps.
//
// A report run is a Pipeline over four steps:
//
//	load      read the workbook and aggregate it by category
//	charts    render the bar, pie and line chart images
//	document  lay out the title, summary and chart pages
//	write     write the PDF and, when configured, the summary CSV
//
// Steps share a RunState and run strictly one after another. The first
// failing step stops the run; its error is returned wrapped in a
// StepError. Each run and step is traced with OpenTelemetry.
package operations
