package core

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/huangsam/trackpulse/core/algo"
	"github.com/huangsam/trackpulse/internal/contract"
	"github.com/huangsam/trackpulse/internal/frame"
	"github.com/huangsam/trackpulse/internal/outwriter"
	"github.com/huangsam/trackpulse/internal/parquet"
	"github.com/huangsam/trackpulse/schema"
)

// topSlots is how many weekdays and hours the highlights list.
const topSlots = 3

// BuildCharts turns the aggregations into chart descriptions, in render
// order. Charts without any data are left out, and the popularity histogram
// is only produced when scores exist.
func BuildCharts(aggs *schema.Aggregations, popularity schema.PopularityScores) []schema.Chart {
	var charts []schema.Chart
	addBar := func(file, title, xLabel string, counts schema.Counts) {
		if len(counts) == 0 {
			return
		}
		charts = append(charts, schema.Chart{
			File:   file,
			Kind:   schema.BarChart,
			Title:  title,
			XLabel: xLabel,
			YLabel: "Number of Additions",
			Labels: counts.Keys(),
			Values: counts.Values(),
		})
	}

	addBar(schema.MonthChartFile, "Song Additions by Month", "Month", aggs.ByMonth)
	addBar(schema.SeasonChartFile, "Song Additions by Season", "Season", aggs.BySeason)
	addBar(schema.WeekdayChartFile, "Song Additions by Day of the Week", "Day of the Week", aggs.ByWeekday)
	addBar(schema.WeekendChartFile, "Song Additions: Weekday vs Weekend", "Is Weekend", aggs.ByWeekend)
	addBar(schema.TimeOfDayChartFile, "Song Additions by Time of Day", "Time of Day", aggs.ByTimeOfDay)

	if len(aggs.ByHour) > 0 {
		hours := make([]float64, len(aggs.ByHour))
		for i, e := range aggs.ByHour {
			h, _ := strconv.Atoi(e.Key)
			hours[i] = float64(h)
		}
		charts = append(charts, schema.Chart{
			File:   schema.HourChartFile,
			Kind:   schema.LineChart,
			Title:  "Song Additions by Hour of Day",
			XLabel: "Hour of Day",
			YLabel: "Number of Additions",
			X:      hours,
			Values: aggs.ByHour.Values(),
		})
	}

	if len(aggs.Cumulative) > 0 {
		chart := schema.Chart{
			File:   schema.CumulativeChartFile,
			Kind:   schema.TimeChart,
			Title:  "Cumulative Song Additions Over Time",
			XLabel: "Date",
			YLabel: "Cumulative Additions",
		}
		for _, pt := range aggs.Cumulative {
			chart.Times = append(chart.Times, pt.Date)
			chart.Values = append(chart.Values, float64(pt.Total))
		}
		charts = append(charts, chart)
	}

	if len(aggs.DayHour.Rows) > 0 {
		grid := aggs.DayHour
		charts = append(charts, schema.Chart{
			File:   schema.HeatMapChartFile,
			Kind:   schema.HeatMap,
			Title:  "Heatmap of Song Additions by Day and Hour",
			XLabel: "Hour of Day",
			YLabel: "Day of the Week",
			Grid:   &grid,
		})
	}

	if popularity.Present && len(popularity.Values) > 0 {
		charts = append(charts, schema.Chart{
			File:   schema.PopularityChartFile,
			Kind:   schema.Histogram,
			Title:  "Distribution of Song Popularity",
			XLabel: "Popularity Score",
			YLabel: "Frequency",
			Values: popularity.Values,
			Bins:   schema.PopularityBins,
		})
	}
	return charts
}

// RenderCharts draws every chart into the output directory and returns the
// written paths. Existing files are overwritten.
func RenderCharts(ctx context.Context, cfg *contract.Config, renderer contract.ChartRenderer, charts []schema.Chart) ([]string, error) {
	if len(charts) == 0 {
		return nil, nil
	}
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	paths := make([]string, 0, len(charts))
	for _, c := range charts {
		if err := ctx.Err(); err != nil {
			return paths, err
		}
		path := cfg.ResolveOutput(c.File)
		if err := renderer.Render(c, path); err != nil {
			return paths, err
		}
		slog.Debug("rendered chart", "kind", c.Kind, "path", path)
		paths = append(paths, path)
	}
	return paths, nil
}

// WriteSnapshot persists the combined table in the configured format and
// returns the written path.
func WriteSnapshot(cfg *contract.Config, combined *frame.Frame) (string, error) {
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	path := cfg.ResolveOutput(cfg.SnapshotFile)
	var err error
	switch cfg.SnapshotFormat {
	case schema.ParquetSnapshot:
		err = parquet.WriteSnapshot(combined, cfg.TimestampColumn, path)
	default:
		err = outwriter.NewOutWriter().WriteSnapshotCSV(combined, path)
	}
	if err != nil {
		return "", err
	}
	return path, nil
}

// BuildHighlights ranks the busiest weekdays and hours and finds the
// busiest weekday and hour combination.
func BuildHighlights(aggs *schema.Aggregations) *schema.Highlights {
	h := &schema.Highlights{
		TopDays:  algo.RankCounts(aggs.ByWeekday, topSlots),
		TopHours: algo.RankCounts(aggs.ByHour, topSlots),
	}
	if day, hour, count, ok := algo.PeakCell(aggs.DayHour); ok {
		h.PeakDay, h.PeakHour, h.PeakCount = day, hour, count
	}
	return h
}
