// Package frame holds the flat in-memory record table every pipeline stage works on.
package frame

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"strconv"
	"time"
)

// TimeLayout is how timestamp cells are rendered in snapshots.
const TimeLayout = "2006-01-02 15:04:05-07:00"

// List is a nested JSON list kept verbatim in a single cell.
type List string

// MarshalJSON emits the list unchanged.
func (l List) MarshalJSON() ([]byte, error) {
	return []byte(l), nil
}

// Frame is an ordered set of columns over rows of loosely typed cells.
// A cell missing from a row reads as nil.
type Frame struct {
	columns []string
	known   map[string]struct{}
	rows    []map[string]any
}

// New returns an empty frame.
func New() *Frame {
	return &Frame{known: map[string]struct{}{}}
}

// Columns returns the column names in first-encountered order.
func (f *Frame) Columns() []string {
	return slices.Clone(f.columns)
}

// NumRows returns the number of rows.
func (f *Frame) NumRows() int {
	return len(f.rows)
}

// NumCols returns the number of columns.
func (f *Frame) NumCols() int {
	return len(f.columns)
}

// HasColumn reports whether name is a column of the frame.
func (f *Frame) HasColumn(name string) bool {
	_, ok := f.known[name]
	return ok
}

// Value returns the cell at row i and column name, nil when missing.
func (f *Frame) Value(i int, name string) any {
	return f.rows[i][name]
}

// Column returns the cells of one column in row order.
func (f *Frame) Column(name string) []any {
	values := make([]any, len(f.rows))
	for i, row := range f.rows {
		values[i] = row[name]
	}
	return values
}

// SetColumn replaces or appends a column. values must have one entry per row.
func (f *Frame) SetColumn(name string, values []any) error {
	if len(values) != len(f.rows) {
		return fmt.Errorf("column %q has %d values for %d rows", name, len(values), len(f.rows))
	}
	f.addColumn(name)
	for i, v := range values {
		if v == nil {
			delete(f.rows[i], name)
			continue
		}
		f.rows[i][name] = v
	}
	return nil
}

// AppendRow adds a row from parallel column and value slices.
func (f *Frame) AppendRow(columns []string, values []any) {
	row := make(map[string]any, len(columns))
	for i, c := range columns {
		f.addColumn(c)
		if values[i] != nil {
			row[c] = values[i]
		}
	}
	f.rows = append(f.rows, row)
}

func (f *Frame) addColumn(name string) {
	if _, ok := f.known[name]; ok {
		return
	}
	f.known[name] = struct{}{}
	f.columns = append(f.columns, name)
}

// Concat stacks frames row-wise. Columns are the union in first-seen order and
// rows are copied, so the inputs stay untouched.
func Concat(frames ...*Frame) *Frame {
	out := New()
	for _, src := range frames {
		for _, c := range src.columns {
			out.addColumn(c)
		}
		for _, row := range src.rows {
			out.rows = append(out.rows, maps.Clone(row))
		}
	}
	return out
}

// Records renders the frame as a header line followed by one line per row.
func (f *Frame) Records() [][]string {
	records := make([][]string, 0, len(f.rows)+1)
	records = append(records, f.Columns())
	for _, row := range f.rows {
		line := make([]string, len(f.columns))
		for j, c := range f.columns {
			line[j] = FormatValue(row[c])
		}
		records = append(records, line)
	}
	return records
}

// FormatValue renders a cell as text. Missing cells become the empty string.
func FormatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case json.Number:
		return val.String()
	case List:
		return string(val)
	case bool:
		return strconv.FormatBool(val)
	case int:
		return strconv.Itoa(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case time.Time:
		return val.Format(TimeLayout)
	default:
		return fmt.Sprint(val)
	}
}
