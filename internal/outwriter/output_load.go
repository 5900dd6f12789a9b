package outwriter

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/huangsam/trackpulse/internal/contract"
	"github.com/huangsam/trackpulse/schema"
)

// maxErrorWidth bounds the error column of the load table.
const maxErrorWidth = 60

// PrintLoadResults outputs the per-file load outcome, dispatching based on the output format configured.
func PrintLoadResults(statuses []schema.LoadStatus, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, statuses)
		}, "Wrote JSON"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
		return nil
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeLoadTable(w, statuses, cfg, duration)
		}, "Wrote table")
	}
}

// writeLoadTable generates and writes the human-readable load table.
func writeLoadTable(w io.Writer, statuses []schema.LoadStatus, cfg *contract.Config, duration time.Duration) error {
	if _, err := fmt.Fprintf(w, "🔎 Data: %s\n", cfg.DataDir); err != nil {
		return err
	}

	loaded := 0
	data := make([][]string, 0, len(statuses))
	for _, s := range statuses {
		if s.OK() {
			loaded++
		}
		data = append(data, []string{
			s.File,
			contract.GetColorLabel(s.OK(), cfg.UseColors),
			strconv.Itoa(s.Records),
			strconv.Itoa(s.Columns),
			contract.TruncateText(s.Error, maxErrorWidth),
		})
	}
	if err := writeTable(w, []string{"File", "Status", "Records", "Columns", "Error"}, data); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "Loaded %d of %d files in %v.\n", loaded, len(statuses), duration)
	return err
}
