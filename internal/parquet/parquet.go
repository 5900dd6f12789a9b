// Package parquet provides data structures and functions for exporting the
// combined event table to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"encoding/json"
	"fmt"
	"os"
	"slices"
	"time"

	"github.com/huangsam/trackpulse/internal/frame"
	"github.com/huangsam/trackpulse/schema"
	"github.com/parquet-go/parquet-go"
)

// EventRow represents one row of the combined table with its derived features.
// Source fields other than the timestamp are kept as a JSON object, since
// every export file has its own columns.
type EventRow struct {
	// RowIndex is the position of the row in the combined table
	RowIndex int64 `parquet:"row_index,snappy"`

	// Timestamp is the parsed UTC event time (nullable when unparseable)
	Timestamp *time.Time `parquet:"timestamp,optional,snappy"`

	// Month is the calendar month 1-12 (nullable)
	Month *int32 `parquet:"month,optional,snappy"`

	// DayOfWeek is the English weekday name (nullable)
	DayOfWeek *string `parquet:"day_of_week,optional,snappy"`

	// Season is Winter, Spring, Summer or Autumn (nullable)
	Season *string `parquet:"season,optional,snappy"`

	// IsWeekend is true on Saturday and Sunday (nullable)
	IsWeekend *bool `parquet:"is_weekend,optional,snappy"`

	// TimeOfDay is the hour bucket (nullable)
	TimeOfDay *string `parquet:"time_of_day,optional,snappy"`

	// Hour is the hour of day 0-23 (nullable)
	Hour *int32 `parquet:"hour,optional,snappy"`

	// Date is the calendar date as YYYY-MM-DD (nullable)
	Date *string `parquet:"date,optional,snappy"`

	// PopularityScore is the trailing number of the popularity source column (nullable)
	PopularityScore *float64 `parquet:"popularity_score,optional,snappy"`

	// Fields contains the JSON-encoded remaining source columns
	Fields string `parquet:"fields,snappy"`
}

// WriteEventRowsParquet writes a slice of EventRow structs to a Parquet file.
func WriteEventRowsParquet(data []EventRow, outputPath string) error {
	// Create the output file
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// The schema is automatically derived from the EventRow struct tags
	writer := parquet.NewGenericWriter[EventRow](file)

	if _, err := writer.Write(data); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}
	return nil
}

// WriteSnapshot converts the combined table and writes it to outputPath.
func WriteSnapshot(f *frame.Frame, timestampCol, outputPath string) error {
	rows, err := ConvertFrame(f, timestampCol)
	if err != nil {
		return err
	}
	return WriteEventRowsParquet(rows, outputPath)
}

// ConvertFrame converts the combined table into EventRow values for Parquet export.
func ConvertFrame(f *frame.Frame, timestampCol string) ([]EventRow, error) {
	typed := append([]string{timestampCol, schema.PopularityCol}, schema.DerivedColumns...)
	var rawColumns []string
	for _, c := range f.Columns() {
		if !slices.Contains(typed, c) {
			rawColumns = append(rawColumns, c)
		}
	}

	result := make([]EventRow, f.NumRows())
	for i := range result {
		fields := make(map[string]any, len(rawColumns))
		for _, c := range rawColumns {
			if v := f.Value(i, c); v != nil {
				fields[c] = v
			}
		}
		encoded, err := json.Marshal(fields)
		if err != nil {
			return nil, fmt.Errorf("failed to encode fields of row %d: %w", i, err)
		}

		result[i] = EventRow{
			RowIndex:        int64(i),
			Timestamp:       ptrTo[time.Time](f.Value(i, timestampCol)),
			Month:           int32Ptr(f.Value(i, schema.MonthCol)),
			DayOfWeek:       ptrTo[string](f.Value(i, schema.DayOfWeekCol)),
			Season:          ptrTo[string](f.Value(i, schema.SeasonCol)),
			IsWeekend:       ptrTo[bool](f.Value(i, schema.IsWeekendCol)),
			TimeOfDay:       ptrTo[string](f.Value(i, schema.TimeOfDayCol)),
			Hour:            int32Ptr(f.Value(i, schema.HourCol)),
			Date:            ptrTo[string](f.Value(i, schema.DateCol)),
			PopularityScore: ptrTo[float64](f.Value(i, schema.PopularityCol)),
			Fields:          string(encoded),
		}
	}
	return result, nil
}

// ptrTo returns a pointer to v when it holds a T, nil otherwise.
func ptrTo[T any](v any) *T {
	if val, ok := v.(T); ok {
		return &val
	}
	return nil
}

func int32Ptr(v any) *int32 {
	if val, ok := v.(int); ok {
		n := int32(val)
		return &n
	}
	return nil
}
