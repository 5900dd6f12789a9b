package agg

import (
	"cmp"
	"maps"
	"slices"
	"strconv"
	"time"

	"github.com/huangsam/trackpulse/schema"
)

// AggregateMemory computes the count tables with maps and sorting.
func AggregateMemory(features []schema.Features) *schema.Aggregations {
	valid := validOnly(features)

	return &schema.Aggregations{
		BySeason: countBy(valid, func(f schema.Features) string { return string(f.Season) }, identity),
		ByMonth:  countBy(valid, func(f schema.Features) int { return f.Month }, strconv.Itoa),
		ByWeekday: countBy(valid, func(f schema.Features) string {
			return f.DayOfWeek
		}, identity),
		ByWeekend: countBy(valid, func(f schema.Features) int {
			if f.IsWeekend {
				return 1
			}
			return 0
		}, func(k int) string { return weekendKey(k == 1) }),
		ByTimeOfDay: countBy(valid, func(f schema.Features) string { return string(f.TimeOfDay) }, identity),
		ByHour:      countBy(valid, func(f schema.Features) int { return f.Hour }, strconv.Itoa),
		DayHour:     dayHourGrid(valid),
		Cumulative:  cumulativeByDate(valid),
	}
}

func identity(s string) string { return s }

// countBy groups rows by key and returns the counts in ascending key order.
func countBy[K cmp.Ordered](features []schema.Features, key func(schema.Features) K, label func(K) string) schema.Counts {
	counts := make(map[K]int)
	for _, f := range features {
		counts[key(f)]++
	}
	out := make(schema.Counts, 0, len(counts))
	for _, k := range slices.Sorted(maps.Keys(counts)) {
		out = append(out, schema.CountEntry{Key: label(k), Count: counts[k]})
	}
	return out
}

// dayHourGrid cross-tabulates weekday by hour over the observed values of each.
func dayHourGrid(features []schema.Features) schema.Grid {
	type cell struct {
		day  string
		hour int
	}
	counts := make(map[cell]int)
	days := make(map[string]struct{})
	hours := make(map[int]struct{})
	for _, f := range features {
		counts[cell{f.DayOfWeek, f.Hour}]++
		days[f.DayOfWeek] = struct{}{}
		hours[f.Hour] = struct{}{}
	}

	grid := schema.Grid{
		Rows: slices.Sorted(maps.Keys(days)),
		Cols: slices.Sorted(maps.Keys(hours)),
	}
	grid.Cells = make([][]int, len(grid.Rows))
	for r, day := range grid.Rows {
		grid.Cells[r] = make([]int, len(grid.Cols))
		for c, hour := range grid.Cols {
			grid.Cells[r][c] = counts[cell{day, hour}]
		}
	}
	return grid
}

// cumulativeByDate returns the running row total per calendar date.
func cumulativeByDate(features []schema.Features) []schema.CumulativePoint {
	counts := make(map[int64]int)
	for _, f := range features {
		counts[f.Date.Unix()]++
	}
	points := make([]schema.CumulativePoint, 0, len(counts))
	total := 0
	for _, day := range slices.Sorted(maps.Keys(counts)) {
		total += counts[day]
		points = append(points, schema.CumulativePoint{Date: time.Unix(day, 0).UTC(), Total: total})
	}
	return points
}
