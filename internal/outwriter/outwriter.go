// Package outwriter has output and writer logic.
package outwriter

import (
	"os"
	"time"

	"github.com/huangsam/trackpulse/internal/contract"
	"github.com/huangsam/trackpulse/internal/frame"
	"github.com/huangsam/trackpulse/schema"
	"golang.org/x/term"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteAnalysis prints the analysis report using the configured output format.
func (ow *OutWriter) WriteAnalysis(report *schema.AnalysisReport, cfg *contract.Config, duration time.Duration) error {
	return PrintAnalysis(report, cfg, duration)
}

// WriteLoads prints the per-file load results using the configured output format.
func (ow *OutWriter) WriteLoads(statuses []schema.LoadStatus, cfg *contract.Config, duration time.Duration) error {
	return PrintLoadResults(statuses, cfg, duration)
}

// WriteBuckets prints the season and time-of-day bucket definitions.
func (ow *OutWriter) WriteBuckets(cfg *contract.Config) error {
	return PrintBuckets(cfg)
}

// WriteSnapshotCSV writes the combined table to path as CSV.
func (ow *OutWriter) WriteSnapshotCSV(f *frame.Frame, path string) error {
	return WriteSnapshotCSV(f, path)
}

// Terminal width bounds used when sizing bar columns.
const (
	defaultTermWidth = 80
	minBarWidth      = 10
	maxBarWidth      = 50
)

// getTermWidth returns the width override, the detected terminal width or a
// conservative default for pipes and CI.
func getTermWidth(cfg *contract.Config) int {
	if cfg.Width > 0 {
		return cfg.Width
	}
	detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || detectedWidth <= 0 {
		return defaultTermWidth
	}
	return detectedWidth
}

// getMaxBarWidth calculates how many cells the bar column of a count table
// may use, based on terminal width.
func getMaxBarWidth(cfg *contract.Config) int {
	// Key + Count + Share columns with borders and padding
	baseWidth := 45

	available := getTermWidth(cfg) - baseWidth
	if available < minBarWidth {
		return minBarWidth
	}
	if available > maxBarWidth {
		return maxBarWidth
	}
	return available
}
