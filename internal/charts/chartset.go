package charts

import (
	"github.com/premlamishra/pdf-report-generator-fpdf/internal/config"
)

// ChartSet holds the paths of the rendered chart images
type ChartSet struct {
	Bar  string
	Pie  string
	Line string
}

// ChartSetFor returns the chart image paths resolved for a run
func ChartSetFor(paths *config.Paths) ChartSet {
	return ChartSet{
		Bar:  paths.BarChart,
		Pie:  paths.PieChart,
		Line: paths.LineChart,
	}
}

// ChartPage pairs a chart image with the heading of its document page
type ChartPage struct {
	Title     string
	ImagePath string
}

// Pages returns the chart pages in document order: bar, pie, line.
func (s ChartSet) Pages() []ChartPage {
	return []ChartPage{
		{Title: config.BarPageTitle, ImagePath: s.Bar},
		{Title: config.PiePageTitle, ImagePath: s.Pie},
		{Title: config.LinePageTitle, ImagePath: s.Line},
	}
}
