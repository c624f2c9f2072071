package config

import "github.com/premlamishra/pdf-report-generator-fpdf/pkg/contracts"

// Application constants - the fixed names and texts of a report run
const (
	// Application Info
	AppName    = "Superstore PDF Report"
	AppVersion = contracts.Version
	AppVendor  = "BI/Analytics Team"

	// File Paths (relative to the base directory)
	DefaultInputFile  = "superstore_sample.xlsx"
	DefaultLogoFile   = "logo.png"
	DefaultOutputFile = "report.pdf"

	// Chart image filenames (inside the charts directory)
	BarChartFile  = "category_chart.png"
	PieChartFile  = "profit_pie.png"
	LineChartFile = "revenue_chart.png"

	// Normalized source columns
	ColumnCategory     = "product_category"
	ColumnUnitPrice    = "unit_price"
	ColumnShippingCost = "shipping_cost"

	// Log Settings
	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"
)

// Report texts
const (
	ReportTitle    = "Superstore PDF Report"
	ReportSubtitle = "Automated Sales and Shipping Summary"
	ReportAuthor   = "Prepared by: Premla Mishra"
	ReportRole     = "Intern - BI/Analytics Team"

	HeaderTitle      = "Superstore Sales Report"
	HeaderDatePrefix = "Generated on "
	HeaderDateLayout = "January 02, 2006"
	FooterLabel      = "Confidential"

	SummaryHeading      = "Category-wise Sales & Shipping Summary"
	SummaryColCategory  = "Category"
	SummaryColSales     = "Total Sales"
	SummaryColShipping  = "Shipping Cost"
	SummaryColRecords   = "Records"
	MissingImagePrefix  = "Failed to load image: "
	CompletionMsgPrefix = "PDF report generated: "
)

// Chart titles and axis labels
const (
	BarChartTitle  = "Total Sales by Product Category"
	BarChartYLabel = "Total Sales (Unit Price in $)"

	PieChartTitle = "Shipping Cost Distribution by Category"

	LineChartTitle  = "Sales Trend Across Orders"
	LineChartXLabel = "Entry Index"
	LineChartYLabel = "Unit Price in $"

	// Page headings of the chart pages, in document order
	BarPageTitle  = "Total Sales by Product Category"
	PiePageTitle  = "Shipping Cost Distribution"
	LinePageTitle = "Sales Trend Across Orders"
)

// Chart dimensions in pixels
const (
	ChartWidth   = 600
	ChartHeight  = 400
	PieChartSize = 500
)

// Chart colors (hex, no leading #)
const (
	BarChartColor  = "69A1F4"
	LineChartColor = "7FB77E"
)

// PiePalette is the pastel palette cycled over pie slices
var PiePalette = []string{
	"FBB4AE", "B3CDE3", "CCEBC5", "DECBE4", "FED9A6",
	"FFFFCC", "E5D8BD", "FDDAEC", "F2F2F2",
}
