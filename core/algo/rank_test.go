package algo

import (
	"testing"

	"github.com/huangsam/trackpulse/schema"
	"github.com/stretchr/testify/assert"
)

func TestRankCounts(t *testing.T) {
	counts := schema.Counts{
		{Key: "Autumn", Count: 3},
		{Key: "Spring", Count: 5},
		{Key: "Summer", Count: 3},
		{Key: "Winter", Count: 1},
	}

	ranked := RankCounts(counts, 3)
	assert.Equal(t, schema.Counts{
		{Key: "Spring", Count: 5},
		{Key: "Autumn", Count: 3},
		{Key: "Summer", Count: 3},
	}, ranked)

	// Input is left in key order
	assert.Equal(t, "Autumn", counts[0].Key)

	assert.Len(t, RankCounts(counts, 10), 4)
	assert.Empty(t, RankCounts(nil, 3))
}

func TestPeakCell(t *testing.T) {
	grid := schema.Grid{
		Rows:  []string{"Friday", "Thursday"},
		Cols:  []int{8, 22},
		Cells: [][]int{{1, 4}, {4, 2}},
	}
	day, hour, count, ok := PeakCell(grid)
	assert.True(t, ok)
	assert.Equal(t, "Friday", day)
	assert.Equal(t, 22, hour)
	assert.Equal(t, 4, count)

	_, _, _, ok = PeakCell(schema.Grid{})
	assert.False(t, ok)
}
