package charts

import (
	"bytes"
	"fmt"
	"log/slog"
	"math"
	"os"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"golang.org/x/sync/errgroup"

	"github.com/premlamishra/pdf-report-generator-fpdf/internal/config"
	apperrors "github.com/premlamishra/pdf-report-generator-fpdf/internal/errors"
	"github.com/premlamishra/pdf-report-generator-fpdf/pkg/contracts/domain"
)

// Renderer writes chart PNGs to the paths of a ChartSet.
// Each render overwrites its target file.
type Renderer struct {
	width   int
	height  int
	pieSize int
	logger  *slog.Logger
}

const (
	// bar label band limits
	minBarLabelBand = 60
	labelRotation   = 45.0

	// the pie title is drawn in the top padding, above the circle
	pieTitleBand     = 50
	pieTitleFontSize = 14.0
)

// NewRenderer creates a renderer with the configured chart sizes
func NewRenderer(logger *slog.Logger) *Renderer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Renderer{
		width:   config.ChartWidth,
		height:  config.ChartHeight,
		pieSize: config.PieChartSize,
		logger:  logger,
	}
}

// RenderAll renders the three report charts to the paths in set.
// The charts write to distinct files and are rendered concurrently; the
// first failure is returned.
func (r *Renderer) RenderAll(set ChartSet, dataset *domain.SalesDataset, summary *domain.SalesSummary) error {
	// The default font is loaded lazily and unguarded; load it before fanning out.
	if _, err := chart.GetDefaultFont(); err != nil {
		return apperrors.NewRenderError("failed to load chart font", err)
	}

	var g errgroup.Group
	g.Go(func() error { return r.RenderBar(summary, set.Bar) })
	g.Go(func() error { return r.RenderPie(summary, set.Pie) })
	g.Go(func() error { return r.RenderLine(dataset, set.Line) })
	return g.Wait()
}

// RenderBar draws one bar per category, its height the total unit price.
func (r *Renderer) RenderBar(summary *domain.SalesSummary, path string) error {
	graph, err := r.barChart(summary)
	if err != nil {
		return err
	}
	return r.write("bar", path, func(buf *bytes.Buffer) error {
		return graph.Render(chart.PNG, buf)
	})
}

func (r *Renderer) barChart(summary *domain.SalesSummary) (chart.BarChart, error) {
	if summary.Len() == 0 {
		return chart.BarChart{}, apperrors.NewRenderError("bar chart needs at least one category", nil).
			WithContext("chart", "bar")
	}

	color := drawing.ColorFromHex(config.BarChartColor)
	bars := make([]chart.Value, 0, summary.Len())
	labels := make([]string, 0, summary.Len())
	low, high := 0.0, 0.0
	for _, c := range summary.Categories {
		v := c.TotalUnitPrice.InexactFloat64()
		low, high = math.Min(low, v), math.Max(high, v)
		bars = append(bars, chart.Value{
			Label: c.Category,
			Value: v,
			Style: chart.Style{FillColor: color, StrokeColor: color},
		})
		labels = append(labels, c.Category)
	}
	if high == low {
		high = low + 1
	}

	// Labels are drawn whole and rotated, over a band sized to the widest one.
	band, err := r.labelBand(labels)
	if err != nil {
		return chart.BarChart{}, err
	}

	return chart.BarChart{
		Title:  config.BarChartTitle,
		Width:  r.width,
		Height: r.height,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 16, Right: max(16, band/2), Bottom: band},
		},
		BarWidth: barWidth(r.width, len(bars)),
		XAxis: chart.Style{
			TextRotationDegrees: labelRotation,
			TextWrap:            chart.TextWrapNone,
			TextHorizontalAlign: chart.TextHorizontalAlignLeft,
		},
		YAxis: chart.YAxis{
			Name:  config.BarChartYLabel,
			Range: &chart.ContinuousRange{Min: low, Max: high},
		},
		Bars: bars,
	}, nil
}

// labelBand returns the height below the plot that fits the widest rotated
// label, kept between minBarLabelBand and half the chart height.
func (r *Renderer) labelBand(labels []string) (int, error) {
	font, err := chart.GetDefaultFont()
	if err != nil {
		return 0, apperrors.NewRenderError("failed to load chart font", err)
	}
	measure, err := chart.PNG(r.width, r.height)
	if err != nil {
		return 0, apperrors.NewRenderError("failed to measure bar labels", err)
	}
	measure.SetFont(font)
	measure.SetFontSize(chart.DefaultAxisFontSize)

	widest, tallest := 0, 0
	for _, label := range labels {
		box := measure.MeasureText(label)
		widest = max(widest, box.Width())
		tallest = max(tallest, box.Height())
	}

	sin := math.Sin(labelRotation * math.Pi / 180)
	band := chart.DefaultXAxisMargin + int(math.Ceil(float64(widest+tallest)*sin)) + 8
	return min(max(band, minBarLabelBand), r.height/2), nil
}

// RenderPie draws one slice per category sized by total shipping cost,
// labelled "<category> <share>%".
func (r *Renderer) RenderPie(summary *domain.SalesSummary, path string) error {
	graph, err := r.pieChart(summary)
	if err != nil {
		return err
	}
	return r.write("pie", path, func(buf *bytes.Buffer) error {
		return graph.Render(chart.PNG, buf)
	})
}

func (r *Renderer) pieChart(summary *domain.SalesSummary) (chart.PieChart, error) {
	if summary.Len() == 0 {
		return chart.PieChart{}, apperrors.NewRenderError("pie chart needs at least one category", nil).
			WithContext("chart", "pie")
	}

	_, total := summary.Totals()
	if !total.IsPositive() {
		return chart.PieChart{}, apperrors.NewRenderError("pie chart needs a positive shipping cost total", nil).
			WithContext("chart", "pie").
			WithContext("total", total.String())
	}

	values := make([]chart.Value, 0, summary.Len())
	for i, c := range summary.Categories {
		if c.TotalShippingCost.IsNegative() {
			return chart.PieChart{}, apperrors.NewRenderError("pie chart cannot draw a negative slice", nil).
				WithContext("chart", "pie").
				WithContext("category", c.Category)
		}
		color := drawing.ColorFromHex(config.PiePalette[i%len(config.PiePalette)])
		values = append(values, chart.Value{
			Label: PieLabel(c.Category, c.TotalShippingCost, total),
			Value: c.TotalShippingCost.InexactFloat64(),
			Style: chart.Style{FillColor: color, StrokeColor: drawing.ColorWhite},
		})
	}

	// PieChart draws its own title inside the circle's box.
	return chart.PieChart{
		Title:      config.PieChartTitle,
		TitleStyle: chart.Style{Hidden: true},
		Width:      r.pieSize,
		Height:     r.pieSize,
		Background: chart.Style{
			Padding: chart.Box{Top: pieTitleBand, Left: 16, Right: 16, Bottom: 16},
		},
		Values:   values,
		Elements: []chart.Renderable{titleBand(config.PieChartTitle, r.pieSize)},
	}, nil
}

// titleBand draws title centered in the top pieTitleBand pixels of the image
func titleBand(title string, width int) chart.Renderable {
	return func(rr chart.Renderer, _ chart.Box, defaults chart.Style) {
		chart.Draw.TextWithin(rr, title, chart.Box{Top: 12, Left: 0, Right: width, Bottom: pieTitleBand}, chart.Style{
			Font:                defaults.Font,
			FontSize:            pieTitleFontSize,
			FontColor:           chart.DefaultTextColor,
			TextHorizontalAlign: chart.TextHorizontalAlignCenter,
			TextVerticalAlign:   chart.TextVerticalAlignTop,
		})
	}
}

// RenderLine plots unit price against the row index, in sheet row order.
func (r *Renderer) RenderLine(dataset *domain.SalesDataset, path string) error {
	graph, err := r.lineChart(dataset)
	if err != nil {
		return err
	}
	return r.write("line", path, func(buf *bytes.Buffer) error {
		return graph.Render(chart.PNG, buf)
	})
}

func (r *Renderer) lineChart(dataset *domain.SalesDataset) (chart.Chart, error) {
	if dataset.Len() == 0 {
		return chart.Chart{}, apperrors.NewRenderError("line chart needs at least one record", nil).
			WithContext("chart", "line")
	}

	xs := make([]float64, 0, dataset.Len())
	ys := make([]float64, 0, dataset.Len())
	for _, rec := range dataset.Records {
		xs = append(xs, float64(rec.Row))
		ys = append(ys, rec.UnitPrice.InexactFloat64())
	}

	xMin, xMax := minMax(xs)
	if xMin == xMax {
		// a single point needs room on both sides
		xMin, xMax = xMin-1, xMax+1
	}
	yMin, yMax := minMax(ys)
	var yRange chart.Range
	if yMin == yMax {
		yRange = &chart.ContinuousRange{Min: yMin - 1, Max: yMax + 1}
	}

	color := drawing.ColorFromHex(config.LineChartColor)
	return chart.Chart{
		Title:  config.LineChartTitle,
		Width:  r.width,
		Height: r.height,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16},
		},
		XAxis: chart.XAxis{
			Name:           config.LineChartXLabel,
			Range:          &chart.ContinuousRange{Min: xMin, Max: xMax},
			Ticks:          rowTicks(xMin, xMax),
			ValueFormatter: rowFormatter,
		},
		YAxis: chart.YAxis{
			Name:  config.LineChartYLabel,
			Range: yRange,
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    config.LineChartYLabel,
				XValues: xs,
				YValues: ys,
				Style: chart.Style{
					StrokeColor: color,
					StrokeWidth: 2,
					DotColor:    color,
					DotWidth:    3,
				},
			},
		},
	}, nil
}

// maxRowTicks bounds the labelled rows on the line chart x axis
const maxRowTicks = 10

// rowTicks labels whole row indexes between lo and hi, at most maxRowTicks of them.
func rowTicks(lo, hi float64) []chart.Tick {
	first, last := int(math.Ceil(lo)), int(math.Floor(hi))
	if first < 0 {
		first = 0
	}
	if last < first {
		return []chart.Tick{{Value: float64(first), Label: strconv.Itoa(first)}}
	}

	step := (last - first + maxRowTicks) / maxRowTicks
	ticks := make([]chart.Tick, 0, maxRowTicks+1)
	for i := first; i <= last; i += step {
		ticks = append(ticks, chart.Tick{Value: float64(i), Label: strconv.Itoa(i)})
	}
	return ticks
}

// rowFormatter prints an x value as a whole row index
func rowFormatter(v interface{}) string {
	if f, ok := v.(float64); ok {
		return strconv.Itoa(int(math.Round(f)))
	}
	return fmt.Sprintf("%v", v)
}

// write renders into memory, then replaces the file at path.
func (r *Renderer) write(name, path string, render func(*bytes.Buffer) error) error {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		return apperrors.NewRenderError(fmt.Sprintf("failed to render %s chart", name), err).
			WithContext("chart", name).
			WithContext("path", path)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return apperrors.NewStorageError(fmt.Sprintf("failed to write %s chart", name), err).
			WithContext("chart", name).
			WithContext("path", path)
	}

	r.logger.Info("Chart rendered",
		slog.String("chart", name),
		slog.String("path", path),
		slog.Int("bytes", buf.Len()))
	return nil
}

// PieLabel formats a slice label with its share of total to one decimal.
func PieLabel(category string, value, total decimal.Decimal) string {
	share := value.Div(total).Mul(decimal.NewFromInt(100))
	return fmt.Sprintf("%s %s%%", category, share.StringFixed(1))
}

func barWidth(width, bars int) int {
	w := (width - 120) / (2 * bars)
	if w < 10 {
		return 10
	}
	if w > 80 {
		return 80
	}
	return w
}

func minMax(values []float64) (float64, float64) {
	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		lo, hi = math.Min(lo, v), math.Max(hi, v)
	}
	return lo, hi
}
