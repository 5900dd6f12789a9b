package cmd

import (
	"github.com/huangsam/trackpulse/core"
	"github.com/huangsam/trackpulse/internal/chart"
	"github.com/spf13/cobra"
)

// analyzeCmd runs the full pipeline over an export directory.
var analyzeCmd = &cobra.Command{
	Use:   "analyze [data-dir]",
	Short: "Analyze when songs were added to the library.",
	Long: `Load every input file, merge the collection and rootlist tables, and
report when songs get added.

The run prints the load status of each file, count tables by month, season,
weekday, weekend, time of day and hour, a cumulative series and a day by hour
grid. It writes a snapshot of the combined table, renders chart images and
ends with a chi-squared test of whether additions are spread evenly across
months.

Examples:
  # Analyze the export in the current directory
  trackpulse analyze

  # Analyze another directory, writing artifacts elsewhere
  trackpulse analyze ~/Downloads/export --output-dir ./out

  # Aggregate with SQLite and save the snapshot as Parquet
  trackpulse analyze --engine sqlite --snapshot-format parquet

  # JSON report without chart images
  trackpulse analyze --output json --charts=false`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		ctx := core.WithChartRenderer(rootCtx, chart.NewRenderer())
		checkAndExecute(ctx, "Cannot run analysis", core.ExecuteAnalysis)
	},
}
