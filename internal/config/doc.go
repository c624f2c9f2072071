// Package config provides centralized configuration management for the report
// generator. It handles loading configuration from multiple sources, validation,
// and path resolution for every file a report run reads or writes.
//
// # Configuration Sources
//
// Configuration is loaded from the following sources in order of precedence:
//
//	1. Environment variables (highest priority), optionally seeded from a .env file
//	2. A YAML file (report.yaml, configs/report.yaml or $REPORT_CONFIG_FILE)
//	3. Default values (lowest priority)
//
// With no environment and no files the defaults reproduce the fixed layout:
// superstore_sample.xlsx and logo.png are read from the working directory and
// the three chart images plus report.pdf are written next to them.
//
// # Environment Variables
//
// All environment variables follow the pattern REPORT_* for namespacing:
//
//	REPORT_PATHS_INPUT_FILE=data/superstore_sample.xlsx
//	REPORT_PATHS_OUTPUT_FILE=out/report.pdf
//	REPORT_PATHS_SUMMARY_CSV=out/category_summary.csv
//	REPORT_LOGGING_LEVEL=debug
//	REPORT_TRACING_EXPORTER=stdout
//
// # Usage
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	paths, err := cfg.ResolvePaths()
package config
