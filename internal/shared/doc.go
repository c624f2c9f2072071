// Package shared holds code used across the report generator's packages that
// does not belong to a single pipeline step.
//
// The testutil subpackage provides a buffered slog handler for asserting on
// log output and fixture builders for sales workbooks and chart images.
package shared
