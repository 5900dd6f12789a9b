package core

import (
	"encoding/json"
	"testing"

	"github.com/huangsam/trackpulse/internal/frame"
	"github.com/huangsam/trackpulse/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPopularityScore(t *testing.T) {
	tests := []struct {
		name  string
		input any
		score float64
		ok    bool
	}{
		{"trailing digits", "spotify:track:42", 42, true},
		{"leading zeros", "item007", 7, true},
		{"only digits", "123", 123, true},
		{"final newline", "spotify:track:12\n", 12, true},
		{"two final newlines", "spotify:track:12\n\n", 0, false},
		{"digits not at end", "track123abc", 0, false},
		{"no digits", "spotify:track:abc", 0, false},
		{"empty", "", 0, false},
		{"number cell", json.Number("5"), 0, false},
		{"null", nil, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, ok := PopularityScore(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.InDelta(t, tt.score, score, 0)
		})
	}
}

func TestDerivePopularity(t *testing.T) {
	f := frame.New()
	f.AppendRow([]string{"uri"}, []any{"spotify:track:10"})
	f.AppendRow([]string{"uri"}, []any{"spotify:track:x"})
	f.AppendRow([]string{"other"}, []any{"y"})
	f.AppendRow([]string{"uri"}, []any{"spotify:track:30"})

	scores := DerivePopularity(f, "uri")
	assert.True(t, scores.Present)
	assert.Equal(t, "uri", scores.Column)
	assert.Equal(t, []float64{10, 30}, scores.Values)
	assert.Equal(t, 2, scores.Missing)

	require.True(t, f.HasColumn(schema.PopularityCol))
	assert.Equal(t, []any{10.0, nil, nil, 30.0}, f.Column(schema.PopularityCol))
}

func TestDerivePopularity_Absent(t *testing.T) {
	f := frame.New()
	f.AppendRow([]string{"other"}, []any{"spotify:track:10"})

	scores := DerivePopularity(f, "uri")
	assert.False(t, scores.Present)
	assert.Nil(t, scores.Values)
	assert.False(t, f.HasColumn(schema.PopularityCol))
}

func TestDerivePopularity_NoParseableValues(t *testing.T) {
	f := frame.New()
	f.AppendRow([]string{"uri"}, []any{"spotify:track:x"})

	scores := DerivePopularity(f, "uri")
	assert.True(t, scores.Present)
	assert.Empty(t, scores.Values)
	assert.Equal(t, 1, scores.Missing)
	assert.True(t, f.HasColumn(schema.PopularityCol))
}
