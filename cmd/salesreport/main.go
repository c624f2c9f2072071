package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/premlamishra/pdf-report-generator-fpdf/internal/config"
	"github.com/premlamishra/pdf-report-generator-fpdf/internal/infrastructure"
	"github.com/premlamishra/pdf-report-generator-fpdf/internal/operations"
	"github.com/premlamishra/pdf-report-generator-fpdf/pkg/contracts"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run generates one report and returns the process exit code
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("salesreport", flag.ContinueOnError)
	fs.SetOutput(stderr)
	baseDir := fs.String("base", "", "directory relative paths are resolved against (defaults to the working directory)")
	input := fs.String("in", "", "sales workbook to read (defaults to "+config.DefaultInputFile+")")
	sheet := fs.String("sheet", "", "worksheet to read (defaults to the first sheet)")
	output := fs.String("out", "", "PDF file to write (defaults to "+config.DefaultOutputFile+")")
	chartsDir := fs.String("charts", "", "directory for the chart images")
	logo := fs.String("logo", "", "logo image drawn in the page header")
	summaryCSV := fs.String("csv", "", "also export the category summary to this CSV file")
	version := fs.Bool("version", false, "print version information and exit")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *version {
		fmt.Fprintln(stdout, contracts.ReadBuildInfo())
		return 0
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	// Flags override the file and environment configuration
	overrides := map[*string]string{
		&cfg.Paths.BaseDir:    *baseDir,
		&cfg.Paths.InputFile:  *input,
		&cfg.Paths.SheetName:  *sheet,
		&cfg.Paths.OutputFile: *output,
		&cfg.Paths.ChartsDir:  *chartsDir,
		&cfg.Paths.LogoFile:   *logo,
		&cfg.Paths.SummaryCSV: *summaryCSV,
	}
	for field, value := range overrides {
		if value != "" {
			*field = value
		}
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}
	defer infrastructure.CloseLogFile()

	providers, err := infrastructure.InitializeOTel(infrastructure.OTelConfigFromConfig(cfg), logger)
	if err != nil {
		logger.Error("Failed to initialize telemetry", slog.String("error", err.Error()))
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	defer func() {
		if err := providers.Shutdown(context.Background()); err != nil {
			logger.Warn("Telemetry shutdown failed", slog.String("error", err.Error()))
		}
	}()

	ctx := infrastructure.WithRunID(context.Background(), infrastructure.NewRunID())

	pipeline, err := operations.NewReportPipeline(cfg, logger,
		operations.WithTracer(providers.Tracer),
		operations.WithMeter(providers.Meter))
	if err != nil {
		logger.ErrorContext(ctx, "Failed to set up report run", slog.String("error", err.Error()))
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	state, err := pipeline.Run(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "Report generation failed", slog.String("error", err.Error()))
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	fmt.Fprintln(stdout, config.CompletionMsgPrefix+state.OutputPath)
	if state.SummaryCSV != "" {
		fmt.Fprintln(stdout, "Summary exported: "+state.SummaryCSV)
	}
	return 0
}
