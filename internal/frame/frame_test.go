package frame

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendRowAndColumns(t *testing.T) {
	f := New()
	f.AppendRow([]string{"a", "b"}, []any{"x", json.Number("1")})
	f.AppendRow([]string{"c", "a"}, []any{true, nil})

	assert.Equal(t, []string{"a", "b", "c"}, f.Columns())
	assert.Equal(t, 2, f.NumRows())
	assert.Equal(t, 3, f.NumCols())
	assert.True(t, f.HasColumn("c"))
	assert.False(t, f.HasColumn("d"))
	assert.Equal(t, []any{"x", nil}, f.Column("a"))
	assert.Nil(t, f.Value(0, "c"))
	assert.Equal(t, true, f.Value(1, "c"))
}

func TestSetColumn(t *testing.T) {
	f := New()
	f.AppendRow([]string{"a"}, []any{"x"})
	f.AppendRow([]string{"a"}, []any{"y"})

	require.NoError(t, f.SetColumn("month", []any{1, nil}))
	assert.Equal(t, []string{"a", "month"}, f.Columns())
	assert.Equal(t, []any{1, nil}, f.Column("month"))

	require.NoError(t, f.SetColumn("a", []any{"z", "z"}))
	assert.Equal(t, []string{"a", "month"}, f.Columns())
	assert.Equal(t, []any{"z", "z"}, f.Column("a"))

	assert.Error(t, f.SetColumn("bad", []any{1}))
}

func TestConcat(t *testing.T) {
	left := New()
	left.AppendRow([]string{"ts", "uri"}, []any{"t1", "u1"})
	right := New()
	right.AppendRow([]string{"ts", "extra"}, []any{"t2", "e2"})
	right.AppendRow([]string{"ts"}, []any{"t3"})

	combined := Concat(left, right)
	assert.Equal(t, 3, combined.NumRows())
	assert.Equal(t, []string{"ts", "uri", "extra"}, combined.Columns())
	assert.Equal(t, []any{"t1", "t2", "t3"}, combined.Column("ts"))
	assert.Equal(t, []any{"u1", nil, nil}, combined.Column("uri"))
	assert.Equal(t, []any{nil, "e2", nil}, combined.Column("extra"))

	// Inputs are not aliased
	require.NoError(t, combined.SetColumn("ts", []any{"x", "y", "z"}))
	assert.Equal(t, "t1", left.Value(0, "ts"))
	assert.Equal(t, "t2", right.Value(0, "ts"))
}

func TestConcatEmpty(t *testing.T) {
	combined := Concat(New(), New())
	assert.Equal(t, 0, combined.NumRows())
	assert.Empty(t, combined.Columns())
}

func TestRecords(t *testing.T) {
	f := New()
	ts := time.Date(2023, 1, 5, 10, 0, 0, 0, time.UTC)
	f.AppendRow([]string{"ts", "n", "ok", "tags"}, []any{ts, json.Number("2.50"), false, List(`["a"]`)})
	f.AppendRow([]string{"n", "hour"}, []any{json.Number("3"), 22})

	records := f.Records()
	require.Len(t, records, 3)
	assert.Equal(t, []string{"ts", "n", "ok", "tags", "hour"}, records[0])
	assert.Equal(t, []string{"2023-01-05 10:00:00+00:00", "2.50", "false", `["a"]`, ""}, records[1])
	assert.Equal(t, []string{"", "3", "", "", "22"}, records[2])
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected string
	}{
		{"nil", nil, ""},
		{"string", "abc", "abc"},
		{"number", json.Number("1e3"), "1e3"},
		{"list", List("[1,2]"), "[1,2]"},
		{"bool", true, "true"},
		{"int", 7, "7"},
		{"float", 1234.5, "1234.5"},
		{"time", time.Date(2023, 6, 15, 8, 0, 0, 0, time.UTC), "2023-06-15 08:00:00+00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatValue(tt.input))
		})
	}
}

func TestListMarshalJSON(t *testing.T) {
	out, err := json.Marshal(map[string]any{"tags": List(`["a","b"]`)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"tags":["a","b"]}`, string(out))
}
