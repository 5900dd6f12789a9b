package contract

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/huangsam/trackpulse/schema"
)

// ProfileConfig holds profiling settings.
type ProfileConfig struct {
	Enabled bool
	Prefix  string
}

// Config holds the runtime configuration for the analysis.
// This struct remains the "final, validated" config.
type Config struct {
	DataDir    string   // Directory relative input paths are resolved against
	InputFiles []string // Every file the loader attempts, in order

	CollectionFile string // First designated timestamp-bearing table
	RootlistFile   string // Second designated timestamp-bearing table

	TimestampColumn  string
	PopularityColumn string

	OutputDir      string
	Charts         bool // Chart output toggle
	Display        bool // Print aggregation tables to the terminal
	SnapshotFile   string
	SnapshotFormat schema.SnapshotFormat
	Engine         schema.AggregationEngine

	Output     schema.OutputMode
	OutputFile string // Console report destination ("" = stdout)
	Width      int    // Terminal width override (0 = auto-detect)
	UseColors  bool
	LogLevel   string
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	DataDirStr string

	// --- Fields from rootCmd.PersistentFlags() ---
	Files            []string `mapstructure:"files"`
	CollectionFile   string   `mapstructure:"collection-file"`
	RootlistFile     string   `mapstructure:"rootlist-file"`
	TimestampColumn  string   `mapstructure:"timestamp-column"`
	PopularityColumn string   `mapstructure:"popularity-column"`
	Output           string   `mapstructure:"output"`
	OutputFile       string   `mapstructure:"output-file"`
	Width            int      `mapstructure:"width"`
	Color            string   `mapstructure:"color"`
	LogLevel         string   `mapstructure:"log-level"`

	// --- Fields from analyzeCmd.Flags() ---
	OutputDir      string `mapstructure:"output-dir"`
	Charts         bool   `mapstructure:"charts"`
	Display        string `mapstructure:"display"`
	SnapshotFile   string `mapstructure:"snapshot-file"`
	SnapshotFormat string `mapstructure:"snapshot-format"`
	Engine         string `mapstructure:"engine"`
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	clone.InputFiles = slices.Clone(c.InputFiles)
	return &clone
}

// ResolveInput returns the path the loader reads for an input entry.
func (c *Config) ResolveInput(file string) string {
	if filepath.IsAbs(file) || c.DataDir == "" {
		return file
	}
	return filepath.Join(c.DataDir, file)
}

// ResolveOutput returns the path of an output artifact inside the output directory.
func (c *Config) ResolveOutput(name string) string {
	if c.OutputDir == "" {
		return name
	}
	return filepath.Join(c.OutputDir, name)
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processInputFiles(cfg, input); err != nil {
		return err
	}
	if err := processOutputs(cfg, input); err != nil {
		return err
	}
	return nil
}

// validateSimpleInputs processes and validates the console and column fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	// --- 0. Transfer simple non-validated fields from input -> cfg ---
	cfg.Charts = input.Charts
	cfg.LogLevel = input.LogLevel
	cfg.OutputFile = strings.TrimSpace(input.OutputFile)

	// Parse color flag
	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	// Parse display flag
	display, err := ParseBoolString(input.Display)
	if err != nil {
		return fmt.Errorf("invalid --display value: %w", err)
	}
	cfg.Display = display

	// --- 1. Width Validation ---
	if input.Width < 0 {
		return fmt.Errorf("width cannot be negative (received %d)", input.Width)
	}
	cfg.Width = input.Width

	// --- 2. Output Validation ---
	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, json", input.Output)
	}

	// --- 3. Column Validation ---
	cfg.TimestampColumn = strings.TrimSpace(input.TimestampColumn)
	if cfg.TimestampColumn == "" {
		return fmt.Errorf("timestamp-column cannot be empty")
	}
	cfg.PopularityColumn = strings.TrimSpace(input.PopularityColumn)
	if cfg.PopularityColumn == "" {
		return fmt.Errorf("popularity-column cannot be empty")
	}

	return nil
}

// processInputFiles resolves the data directory, the file list and the two designated tables.
func processInputFiles(cfg *Config, input *ConfigRawInput) error {
	cfg.DataDir = input.DataDirStr
	if cfg.DataDir == "" {
		cfg.DataDir = "."
	}

	cfg.InputFiles = nil
	for _, f := range input.Files {
		trimmed := strings.TrimSpace(f)
		if trimmed != "" {
			cfg.InputFiles = append(cfg.InputFiles, trimmed)
		}
	}
	if len(cfg.InputFiles) == 0 {
		return fmt.Errorf("at least one input file is required")
	}

	cfg.CollectionFile = strings.TrimSpace(input.CollectionFile)
	cfg.RootlistFile = strings.TrimSpace(input.RootlistFile)
	if cfg.CollectionFile == "" || cfg.RootlistFile == "" {
		return fmt.Errorf("collection-file and rootlist-file must both be set")
	}
	if cfg.CollectionFile == cfg.RootlistFile {
		return fmt.Errorf("collection-file and rootlist-file must differ (both are %q)", cfg.CollectionFile)
	}

	return nil
}

// processOutputs validates the snapshot, chart and engine settings.
func processOutputs(cfg *Config, input *ConfigRawInput) error {
	cfg.OutputDir = input.OutputDir
	if cfg.OutputDir == "" {
		cfg.OutputDir = "."
	}

	cfg.SnapshotFormat = schema.SnapshotFormat(strings.ToLower(input.SnapshotFormat))
	if _, ok := schema.ValidSnapshotFormats[cfg.SnapshotFormat]; !ok {
		return fmt.Errorf("invalid snapshot format '%s'. must be csv, parquet", input.SnapshotFormat)
	}

	cfg.SnapshotFile = strings.TrimSpace(input.SnapshotFile)
	if cfg.SnapshotFile == "" {
		switch cfg.SnapshotFormat {
		case schema.ParquetSnapshot:
			cfg.SnapshotFile = schema.DefaultParquetSnapshotFile
		default:
			cfg.SnapshotFile = schema.DefaultCSVSnapshotFile
		}
	}

	cfg.Engine = schema.AggregationEngine(strings.ToLower(input.Engine))
	if _, ok := schema.ValidAggregationEngines[cfg.Engine]; !ok {
		return fmt.Errorf("invalid engine '%s'. must be memory, sqlite", input.Engine)
	}

	return nil
}

// ProcessProfilingConfig handles the profiling flag and sets up profiling configuration.
func ProcessProfilingConfig(profile *ProfileConfig, profilePrefix string) error {
	if profilePrefix != "" {
		profile.Enabled = true
		profile.Prefix = profilePrefix
	}
	return nil
}
