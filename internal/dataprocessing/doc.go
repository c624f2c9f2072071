// Package dataprocessing loads the sales workbook and builds the per-category
// aggregate table the charts and the summary page are drawn from.
//
// # Architecture
//
// The package is organized into three steps:
//
// 1. Schema: NormalizeHeader and ResolveSchema map raw header cells onto columns
// 2. Loader: LoadWorkbook reads one worksheet into a domain.SalesDataset
// 3. Aggregator: Aggregate groups the dataset by category
//
// # Usage
//
//	dataset, summary, err := dataprocessing.Load("superstore_sample.xlsx", dataprocessing.LoadOptions{})
//	if err != nil {
//	    return err
//	}
//
// # Data Flow
//
//	Excel File → Schema → SalesRecords → Aggregator → SalesSummary
//
// # Error Handling
//
// All errors are *errors.AppError values. A missing workbook is NOT_FOUND,
// a missing column or malformed number is PARSING and carries the row and
// column in its context.
//
// Amounts are parsed as decimals so the aggregate sums equal the raw sums exactly.
package dataprocessing
