package algo

import (
	"sort"

	"github.com/huangsam/trackpulse/schema"
)

// RankCounts sorts a copy of the counts by count in descending order and
// returns the top 'limit' entries. Ties keep their key order. If limit is
// greater than the number of entries, all entries are returned.
func RankCounts(counts schema.Counts, limit int) schema.Counts {
	ranked := make(schema.Counts, len(counts))
	copy(ranked, counts)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	if len(ranked) > limit {
		return ranked[:limit]
	}
	return ranked
}

// PeakCell returns the busiest weekday and hour of a grid. ok is false for an
// empty grid.
func PeakCell(grid schema.Grid) (day string, hour int, count int, ok bool) {
	for r, row := range grid.Cells {
		for c, v := range row {
			if v > count {
				day, hour, count, ok = grid.Rows[r], grid.Cols[c], v, true
			}
		}
	}
	return day, hour, count, ok
}
