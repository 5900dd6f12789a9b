package outwriter

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/go-gota/gota/dataframe"
	"github.com/huangsam/trackpulse/internal/frame"
)

// WriteSnapshotCSV writes the combined table to path as CSV, header first.
// Every cell is written as text, so nulls become empty fields.
func WriteSnapshotCSV(f *frame.Frame, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create snapshot file: %w", err)
	}
	defer func() { _ = file.Close() }()

	records := f.Records()
	// dataframe refuses a table without rows or columns
	if f.NumRows() == 0 || f.NumCols() == 0 {
		return csv.NewWriter(file).WriteAll(records)
	}

	df := dataframe.LoadRecords(records,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.NaNValues(nil),
	)
	if df.Err != nil {
		return fmt.Errorf("failed to build snapshot table: %w", df.Err)
	}
	if err := df.WriteCSV(file); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	return nil
}
