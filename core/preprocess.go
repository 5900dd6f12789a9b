package core

import (
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/huangsam/trackpulse/internal/frame"
)

// PreprocessTimestamps parses the timestamp column of f in place into UTC
// times. Values that cannot be parsed become null. A frame without the column
// is left untouched. It returns the number of parsed values.
func PreprocessTimestamps(f *frame.Frame, column string) int {
	if f == nil || !f.HasColumn(column) {
		return 0
	}

	values := f.Column(column)
	parsed := 0
	for i, v := range values {
		ts, ok := ParseTimestamp(v)
		if !ok {
			values[i] = nil
			continue
		}
		values[i] = ts
		parsed++
	}
	// Lengths match by construction
	_ = f.SetColumn(column, values)

	if dropped := f.NumRows() - parsed; dropped > 0 {
		slog.Debug("unparseable timestamps set to null", "column", column, "count", dropped)
	}
	return parsed
}

// ParseTimestamp converts a cell into a UTC time. Strings are parsed
// permissively and read as UTC when they carry no zone; integral numbers are
// read as epoch seconds, milliseconds, microseconds or nanoseconds by length.
// Integers are not assumed to be nanoseconds; a 10 digit value is seconds.
func ParseTimestamp(v any) (ts time.Time, ok bool) {
	switch val := v.(type) {
	case time.Time:
		return val.UTC(), true
	case string:
		return parseTimestampString(val)
	case json.Number:
		return parseTimestampString(val.String())
	default:
		return time.Time{}, false
	}
}

func parseTimestampString(s string) (ts time.Time, ok bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	// dateparse panics on a few malformed inputs
	defer func() {
		if r := recover(); r != nil {
			ts, ok = time.Time{}, false
		}
	}()
	parsed, err := dateparse.ParseIn(s, time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return parsed.UTC(), true
}
