package config

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// EnvPrefix namespaces every environment variable read by Load
const EnvPrefix = "REPORT"

// Config represents the complete application configuration
type Config struct {
	Paths   PathsConfig   `yaml:"paths" envconfig:"PATHS"`
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
	Tracing TracingConfig `yaml:"tracing" envconfig:"TRACING"`
	Metrics MetricsConfig `yaml:"metrics" envconfig:"METRICS"`
}

// PathsConfig contains the input and output locations of a report run.
// Relative paths are resolved against BaseDir (the working directory when empty).
type PathsConfig struct {
	BaseDir    string `yaml:"base_dir" envconfig:"BASE_DIR"`
	InputFile  string `yaml:"input_file" envconfig:"INPUT_FILE" validate:"required"`
	SheetName  string `yaml:"sheet_name" envconfig:"SHEET_NAME"`
	LogoFile   string `yaml:"logo_file" envconfig:"LOGO_FILE"`
	ChartsDir  string `yaml:"charts_dir" envconfig:"CHARTS_DIR" validate:"required"`
	OutputFile string `yaml:"output_file" envconfig:"OUTPUT_FILE" validate:"required"`
	SummaryCSV string `yaml:"summary_csv" envconfig:"SUMMARY_CSV"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" validate:"oneof=debug info warn warning error"`
	Format   string `yaml:"format" envconfig:"FORMAT"`
	Output   string `yaml:"output" envconfig:"OUTPUT" validate:"oneof=console file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH" validate:"required_unless=Output console"`
}

// TracingConfig contains OpenTelemetry tracing configuration
type TracingConfig struct {
	Exporter    string  `yaml:"exporter" envconfig:"EXPORTER" validate:"oneof=none stdout"`
	SampleRatio float64 `yaml:"sample_ratio" envconfig:"SAMPLE_RATIO" validate:"gte=0,lte=1"`
	Environment string  `yaml:"environment" envconfig:"ENVIRONMENT"`
}

// MetricsConfig contains OpenTelemetry metrics configuration. The prometheus
// exporter writes the run's metrics to TextfilePath when the run ends.
type MetricsConfig struct {
	Exporter     string `yaml:"exporter" envconfig:"EXPORTER" validate:"oneof=none prometheus"`
	TextfilePath string `yaml:"textfile_path" envconfig:"TEXTFILE_PATH" validate:"required_if=Exporter prometheus"`
}

// Load builds the configuration from, in increasing order of precedence:
// built-in defaults, an optional YAML file, an optional .env file and the
// process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !stderrors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg := Default()

	if configFile := getConfigFilePath(); configFile != "" {
		if err := loadFromFile(configFile, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// loadFromFile overlays the keys present in a YAML file onto cfg
func loadFromFile(filePath string, cfg *Config) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// Validate checks the configuration and normalizes the logging format.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if stderrors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fmt.Sprintf("%s (%s)", fe.Namespace(), fe.Tag()))
			}
			return fmt.Errorf("invalid fields: %s", strings.Join(fields, ", "))
		}
		return err
	}

	// JSON is the only supported log format
	c.Logging.Format = "json"
	return nil
}

// getConfigFilePath returns the path to the config file
func getConfigFilePath() string {
	if explicit := os.Getenv(EnvPrefix + "_CONFIG_FILE"); explicit != "" {
		return explicit
	}

	locations := []string{
		"report.yaml",
		"configs/report.yaml",
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location
		}
	}

	return "" // No config file found, use defaults and env vars only
}

// Default returns default configuration. It reproduces the fixed file layout
// of a report run: everything lives in the working directory.
func Default() *Config {
	return &Config{
		Paths: PathsConfig{
			InputFile:  DefaultInputFile,
			LogoFile:   DefaultLogoFile,
			ChartsDir:  ".",
			OutputFile: DefaultOutputFile,
		},
		Logging: LoggingConfig{
			Level:    DefaultLogLevel,
			Format:   DefaultLogFormat,
			Output:   "console",
			FilePath: "logs/salesreport.log",
		},
		Tracing: TracingConfig{
			Exporter:    "none",
			SampleRatio: 1.0,
			Environment: "development",
		},
		Metrics: MetricsConfig{
			Exporter:     "none",
			TextfilePath: "report_metrics.prom",
		},
	}
}
