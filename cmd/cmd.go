// Package cmd defines the command-line interface for trackpulse.
package cmd

import (
	"github.com/huangsam/trackpulse/internal/contract"
	"github.com/huangsam/trackpulse/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(loadCmd)
	rootCmd.AddCommand(bucketsCmd)
	rootCmd.AddCommand(versionCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().StringSlice("files", schema.DefaultInputFiles, "Comma-separated list of JSON files to load")
	rootCmd.PersistentFlags().String("collection-file", schema.CollectionFile, "First table merged into the combined dataset")
	rootCmd.PersistentFlags().String("rootlist-file", schema.RootlistFile, "Second table merged into the combined dataset")
	rootCmd.PersistentFlags().String("timestamp-column", schema.DefaultTimestampCol, "Column parsed as the UTC event time")
	rootCmd.PersistentFlags().String("popularity-column", schema.DefaultPopularityCol, "Column the popularity score is extracted from")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or json")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("log-level", "warn", "Diagnostic log level: debug or info or warn or error")
	rootCmd.PersistentFlags().String("profile", "", "Enable profiling and write profiles to files with this prefix")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of analyzeCmd to Viper
	analyzeCmd.Flags().String("output-dir", ".", "Directory for the snapshot and chart images")
	analyzeCmd.Flags().Bool("charts", true, "Render chart images")
	analyzeCmd.Flags().String("display", "yes", "Print aggregation tables (yes/no/true/false/1/0)")
	analyzeCmd.Flags().String("snapshot-format", string(schema.CSVSnapshot), "Snapshot format: csv or parquet")
	analyzeCmd.Flags().String("snapshot-file", "", "Snapshot file name (default combined_data.csv or combined_data.parquet)")
	analyzeCmd.Flags().String("engine", string(schema.MemoryEngine), "Aggregation engine: memory or sqlite")
	if err := viper.BindPFlags(analyzeCmd.Flags()); err != nil {
		contract.LogFatal("Error binding analyze flags", err)
	}
}
