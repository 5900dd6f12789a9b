package outwriter

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/huangsam/trackpulse/internal/contract"
	"github.com/huangsam/trackpulse/schema"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// maxCumulativeRows caps the cumulative table; longer series are sampled.
const maxCumulativeRows = 12

// PrintAnalysis outputs the analysis report, dispatching based on the output format configured.
func PrintAnalysis(report *schema.AnalysisReport, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, report)
		}, "Wrote JSON"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
		return nil
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeAnalysisText(w, report, cfg, duration)
		}, "Wrote report")
	}
}

// textPrinter remembers the first write error so that long reports need a
// single check at the end.
type textPrinter struct {
	w   io.Writer
	err error
}

func (p *textPrinter) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *textPrinter) do(fn func(io.Writer) error) {
	if p.err != nil {
		return
	}
	p.err = fn(p.w)
}

// writeAnalysisText writes the human-readable report.
func writeAnalysisText(w io.Writer, report *schema.AnalysisReport, cfg *contract.Config, duration time.Duration) error {
	p := &textPrinter{w: w}

	// 1. Header and load status
	p.printf("🔎 Data: %s (Engine: %s)\n", cfg.DataDir, cfg.Engine)
	writeLoadLines(p, report.Loads, cfg.UseColors)

	if report.Skipped {
		p.printf("%s analysis: %s and %s must both load.\n",
			contract.GetSkippedLabel(cfg.UseColors), cfg.CollectionFile, cfg.RootlistFile)
		p.printf("✅ Completed in %v.\n", duration)
		return p.err
	}
	p.printf("Combined dataset created with %d records.\n", report.CombinedRecords)

	// 2. Aggregation tables
	if cfg.Display && report.Aggregations != nil {
		writeAggregations(p, report.Aggregations, getMaxBarWidth(cfg))
	}

	writeHighlights(p, report.Highlights)

	// 3. Artifacts
	writePopularity(p, report.Popularity, cfg.PopularityColumn)
	if report.Snapshot != "" {
		p.printf("💾 Saved snapshot to %s\n", report.Snapshot)
	}
	if len(report.Charts) > 0 {
		p.printf("📊 Rendered %d charts to %s\n", len(report.Charts), cfg.OutputDir)
	}

	// 4. Statistical test
	if chi := report.ChiSquared; chi != nil {
		p.printf("Chi-squared Test Results:\nChi2: %v\nP-value: %v\n", chi.Statistic, chi.PValue)
	}

	p.printf("✅ Analysis completed in %v.\n", duration)
	return p.err
}

// writeLoadLines prints one status line per input file.
func writeLoadLines(p *textPrinter, statuses []schema.LoadStatus, useColors bool) {
	for _, s := range statuses {
		label := contract.GetColorLabel(s.OK(), useColors)
		if s.OK() {
			p.printf("%s %s successfully with %d records.\n", label, s.Path, s.Records)
		} else {
			p.printf("%s to load %s: %s\n", label, s.Path, s.Error)
		}
	}
}

// writeAggregations prints every count table of the combined dataset.
func writeAggregations(p *textPrinter, aggs *schema.Aggregations, barWidth int) {
	tables := []struct {
		title  string
		label  string
		counts schema.Counts
	}{
		{"Song Additions by Month", "Month", aggs.ByMonth},
		{"Song Additions by Season", "Season", aggs.BySeason},
		{"Song Additions by Day of the Week", "Day", aggs.ByWeekday},
		{"Song Additions: Weekday vs Weekend", "Weekend", aggs.ByWeekend},
		{"Song Additions by Time of Day", "Time of Day", aggs.ByTimeOfDay},
		{"Song Additions by Hour of Day", "Hour", aggs.ByHour},
	}
	for _, t := range tables {
		p.do(func(w io.Writer) error {
			return writeCountsTable(w, t.title, t.label, t.counts, barWidth)
		})
	}
	p.do(func(w io.Writer) error {
		return writeCumulativeTable(w, aggs.Cumulative)
	})
	p.do(func(w io.Writer) error {
		return writeGridTable(w, aggs.DayHour)
	})
}

// writeCumulativeTable prints the running total, sampled down to a readable length.
func writeCumulativeTable(w io.Writer, points []schema.CumulativePoint) error {
	if _, err := fmt.Fprintf(w, "\nCumulative Song Additions Over Time\n"); err != nil {
		return err
	}
	sampled := sampleCumulative(points, maxCumulativeRows)
	data := make([][]string, 0, len(sampled))
	for _, pt := range sampled {
		data = append(data, []string{pt.Date.Format(schema.DateFormat), strconv.Itoa(pt.Total)})
	}
	return writeTable(w, []string{"Date", "Total"}, data)
}

// sampleCumulative picks at most n evenly spaced points, always keeping the
// first and the last.
func sampleCumulative(points []schema.CumulativePoint, n int) []schema.CumulativePoint {
	if len(points) <= n || n < 2 {
		return points
	}
	sampled := make([]schema.CumulativePoint, n)
	for i := range n {
		sampled[i] = points[i*(len(points)-1)/(n-1)]
	}
	return sampled
}

// writeGridTable prints the day by hour heat map as a table.
func writeGridTable(w io.Writer, grid schema.Grid) error {
	if _, err := fmt.Fprintf(w, "\nHeatmap of Song Additions by Day and Hour\n"); err != nil {
		return err
	}
	headers := make([]string, 0, len(grid.Cols)+1)
	headers = append(headers, "Day")
	for _, h := range grid.Cols {
		headers = append(headers, strconv.Itoa(h))
	}
	data := make([][]string, 0, len(grid.Rows))
	for r, day := range grid.Rows {
		row := make([]string, 0, len(grid.Cols)+1)
		row = append(row, day)
		for _, v := range grid.Cells[r] {
			row = append(row, strconv.Itoa(v))
		}
		data = append(data, row)
	}
	return writeTable(w, headers, data)
}

// writeHighlights prints the busiest day and hour slots.
func writeHighlights(p *textPrinter, h *schema.Highlights) {
	if h == nil {
		return
	}
	if h.PeakDay != "" {
		p.printf("🔥 Busiest slot: %s at %02d:00 (%d additions)\n", h.PeakDay, h.PeakHour, h.PeakCount)
	}
	if len(h.TopDays) > 0 {
		p.printf("Top days: %s\n", formatCounts(h.TopDays))
	}
	if len(h.TopHours) > 0 {
		p.printf("Top hours: %s\n", formatCounts(h.TopHours))
	}
}

// formatCounts renders counts as "key (count)" pairs.
func formatCounts(counts schema.Counts) string {
	parts := make([]string, len(counts))
	for i, e := range counts {
		parts[i] = fmt.Sprintf("%s (%d)", e.Key, e.Count)
	}
	return strings.Join(parts, ", ")
}

// writePopularity prints a one-line summary of the popularity scores.
func writePopularity(p *textPrinter, scores *schema.PopularityScores, column string) {
	switch {
	case scores == nil:
		return
	case !scores.Present:
		p.printf("📈 Popularity: column %s not found, no scores derived.\n", column)
	case len(scores.Values) == 0:
		p.printf("📈 Popularity: 0 scores from %s (%d missing).\n", scores.Column, scores.Missing)
	default:
		p.printf("📈 Popularity: %d scores from %s (%d missing), min %v, mean %.2f, max %v.\n",
			len(scores.Values), scores.Column, scores.Missing,
			floats.Min(scores.Values), stat.Mean(scores.Values, nil), floats.Max(scores.Values))
	}
}
