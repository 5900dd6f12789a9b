package outwriter

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/huangsam/trackpulse/internal/contract"
	"github.com/huangsam/trackpulse/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

const barRune = "█"

// writeWithFile handles the common pattern of opening a file, writing to it, and cleaning up.
// It accepts a writer function that takes an io.Writer and returns an error.
func writeWithFile(outputFile string, writer func(io.Writer) error, successMsg string) error {
	file, err := contract.SelectOutputFile(outputFile)
	if err != nil {
		return err
	}
	// Only close if it's not stdout
	if file != os.Stdout {
		defer func() { _ = file.Close() }()
	}

	if err := writer(file); err != nil {
		return err
	}

	if file != os.Stdout {
		fmt.Fprintf(os.Stderr, "💾 %s to %s\n", successMsg, outputFile)
	}
	return nil
}

// writeJSON is a generic JSON encoder that handles indentation consistently.
func writeJSON(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// writeTable renders headers and rows as a right-aligned terminal table.
func writeTable(w io.Writer, headers []string, data [][]string) error {
	table := tablewriter.NewWriter(w)
	table.Header(headers)
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// writeCountsTable renders a single-dimension aggregation with its share of
// the total and a proportional bar.
func writeCountsTable(w io.Writer, title string, label string, counts schema.Counts, barWidth int) error {
	if _, err := fmt.Fprintf(w, "\n%s\n", title); err != nil {
		return err
	}
	total := counts.Total()
	peak := counts.Max()
	data := make([][]string, 0, len(counts))
	for _, e := range counts {
		data = append(data, []string{
			e.Key,
			strconv.Itoa(e.Count),
			formatShare(e.Count, total),
			renderBar(e.Count, peak, barWidth),
		})
	}
	return writeTable(w, []string{label, "Count", "Share", "Bar"}, data)
}

// renderBar scales value against peak into at most width bar cells.
// Any non-zero value gets at least one cell.
func renderBar(value, peak, width int) string {
	if value <= 0 || peak <= 0 || width <= 0 {
		return ""
	}
	cells := value * width / peak
	if cells == 0 {
		cells = 1
	}
	return strings.Repeat(barRune, cells)
}

// formatShare formats part/total as a percentage with one decimal.
func formatShare(part, total int) string {
	if total == 0 {
		return "0.0%"
	}
	return fmt.Sprintf("%.1f%%", 100*float64(part)/float64(total))
}
