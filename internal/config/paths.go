package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	apperrors "github.com/premlamishra/pdf-report-generator-fpdf/internal/errors"
)

// Paths contains all the resolved paths of a report run.
// This is the single source of truth for file locations; every other
// package receives its paths from here.
type Paths struct {
	BaseDir    string
	InputFile  string
	SheetName  string
	LogoFile   string
	ChartsDir  string
	OutputFile string
	SummaryCSV string // empty when the CSV export is disabled

	// Chart images, inside ChartsDir
	BarChart  string
	PieChart  string
	LineChart string
}

// ResolvePaths turns the configured paths into absolute ones.
func (c *Config) ResolvePaths() (*Paths, error) {
	base := c.Paths.BaseDir
	if base == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		base = wd
	}
	base, err := filepath.Abs(base)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve base directory: %w", err)
	}

	resolve := func(p string) string {
		if p == "" || filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(base, p)
	}

	chartsDir := resolve(c.Paths.ChartsDir)

	return &Paths{
		BaseDir:    base,
		InputFile:  resolve(c.Paths.InputFile),
		SheetName:  c.Paths.SheetName,
		LogoFile:   resolve(c.Paths.LogoFile),
		ChartsDir:  chartsDir,
		OutputFile: resolve(c.Paths.OutputFile),
		SummaryCSV: resolve(c.Paths.SummaryCSV),

		BarChart:  filepath.Join(chartsDir, BarChartFile),
		PieChart:  filepath.Join(chartsDir, PieChartFile),
		LineChart: filepath.Join(chartsDir, LineChartFile),
	}, nil
}

// EnsureDirectories creates the charts and output directories if they don't exist
func (p *Paths) EnsureDirectories() error {
	directories := []string{
		p.ChartsDir,
		filepath.Dir(p.OutputFile),
	}
	if p.SummaryCSV != "" {
		directories = append(directories, filepath.Dir(p.SummaryCSV))
	}

	for _, dir := range directories {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return apperrors.NewStorageError("failed to create output directory", err).
				WithContext("directory", dir)
		}
		slog.Debug("Ensured directory exists", slog.String("directory", dir))
	}

	return nil
}

// FileExists checks if a file exists
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}

// LogPathResolution logs the resolved paths for debugging
func (p *Paths) LogPathResolution(logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}

	logger.Info("Path resolution summary",
		slog.Group("input",
			slog.String("workbook", p.InputFile),
			slog.String("sheet", p.SheetName),
			slog.String("logo", p.LogoFile),
			slog.Bool("logo_exists", p.LogoFile != "" && FileExists(p.LogoFile)),
		),
		slog.Group("output",
			slog.String("charts_dir", p.ChartsDir),
			slog.String("document", p.OutputFile),
			slog.String("summary_csv", p.SummaryCSV),
		))
}
