package core

import (
	"regexp"
	"strconv"

	"github.com/huangsam/trackpulse/internal/frame"
	"github.com/huangsam/trackpulse/schema"
)

// A single final newline is tolerated after the digits.
var trailingDigits = regexp.MustCompile(`(\d+)\n?$`)

// PopularityScore extracts the trailing digit run of a string cell.
func PopularityScore(v any) (float64, bool) {
	s, ok := v.(string)
	if !ok {
		return 0, false
	}
	m := trailingDigits.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	score, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}
	return score, true
}

// DerivePopularity checks whether the source column exists and, if so, adds
// the popularity score column to f and returns the scores. When the column is
// absent the result is not Present and f is unchanged.
func DerivePopularity(f *frame.Frame, source string) schema.PopularityScores {
	if !f.HasColumn(source) {
		return schema.PopularityScores{Present: false}
	}

	scores := schema.PopularityScores{Present: true, Column: source, Values: []float64{}}
	cells := make([]any, f.NumRows())
	for i, v := range f.Column(source) {
		score, ok := PopularityScore(v)
		if !ok {
			scores.Missing++
			continue
		}
		cells[i] = score
		scores.Values = append(scores.Values, score)
	}
	// Lengths match by construction
	_ = f.SetColumn(schema.PopularityCol, cells)
	return scores
}
