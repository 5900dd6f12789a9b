package cmd

import (
	"github.com/huangsam/trackpulse/core"
	"github.com/spf13/cobra"
)

// bucketsCmd prints the season and time-of-day buckets used by the analysis.
var bucketsCmd = &cobra.Command{
	Use:   "buckets",
	Short: "Show the season and time-of-day buckets.",
	Long: `Print which months make up each season and which hours make up each
time-of-day bucket. No data is read.`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		checkAndExecute(rootCtx, "Cannot display buckets", core.ExecuteBuckets)
	},
}
