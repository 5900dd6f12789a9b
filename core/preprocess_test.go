package core

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/huangsam/trackpulse/internal/frame"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimestamp(t *testing.T) {
	want := time.Date(2023, time.January, 5, 10, 0, 0, 0, time.UTC)
	tests := []struct {
		name  string
		input any
		ok    bool
	}{
		{"rfc3339 utc", "2023-01-05T10:00:00Z", true},
		{"offset converted to utc", "2023-01-05T12:00:00+02:00", true},
		{"naive read as utc", "2023-01-05 10:00:00", true},
		{"surrounding spaces", "  2023-01-05T10:00:00Z ", true},
		{"epoch seconds", json.Number("1672912800"), true},
		{"epoch millis", json.Number("1672912800000"), true},
		{"epoch nanos", json.Number("1672912800000000000"), true},
		{"epoch seconds string", "1672912800", true},
		{"already a time", want.In(time.FixedZone("X", 3600)), true},
		{"garbage", "not a date", false},
		{"empty", "", false},
		{"null", nil, false},
		{"bool", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, ok := ParseTimestamp(tt.input)
			require.Equal(t, tt.ok, ok)
			if !ok {
				return
			}
			assert.True(t, want.Equal(ts), "got %v", ts)
			assert.Equal(t, time.UTC, ts.Location())
		})
	}
}

func TestPreprocessTimestamps(t *testing.T) {
	f := frame.New()
	f.AppendRow([]string{"timestamp_utc", "id"}, []any{"2023-01-05T10:00:00Z", "a"})
	f.AppendRow([]string{"timestamp_utc", "id"}, []any{"bogus", "b"})
	f.AppendRow([]string{"id"}, []any{"c"})

	parsed := PreprocessTimestamps(f, "timestamp_utc")
	assert.Equal(t, 1, parsed)

	ts, ok := f.Value(0, "timestamp_utc").(time.Time)
	require.True(t, ok)
	assert.Equal(t, time.Date(2023, time.January, 5, 10, 0, 0, 0, time.UTC), ts)
	assert.Nil(t, f.Value(1, "timestamp_utc"))
	assert.Nil(t, f.Value(2, "timestamp_utc"))
	assert.Equal(t, "b", f.Value(1, "id"))
}

func TestPreprocessTimestamps_NoColumn(t *testing.T) {
	f := frame.New()
	f.AppendRow([]string{"id"}, []any{"a"})

	assert.Equal(t, 0, PreprocessTimestamps(f, "timestamp_utc"))
	assert.False(t, f.HasColumn("timestamp_utc"))
	assert.Equal(t, 0, PreprocessTimestamps(nil, "timestamp_utc"))
}
