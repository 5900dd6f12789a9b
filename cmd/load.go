package cmd

import (
	"github.com/huangsam/trackpulse/core"
	"github.com/spf13/cobra"
)

// loadCmd only loads the input files and reports the outcome of each.
var loadCmd = &cobra.Command{
	Use:   "load [data-dir]",
	Short: "Check which input files load.",
	Long: `Load every configured input file and print one row per file with its
status, record count and column count. Files that fail are listed with the
reason and never stop the others.

Examples:
  # Check the default file set
  trackpulse load ~/Downloads/export

  # Check a custom list
  trackpulse load --files Follow.json,Playlist1.json`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		checkAndExecute(rootCtx, "Cannot load files", core.ExecuteLoad)
	},
}
