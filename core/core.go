// Package core has core logic for loading, enriching and analyzing event logs.
package core

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/huangsam/trackpulse/core/agg"
	"github.com/huangsam/trackpulse/core/algo"
	"github.com/huangsam/trackpulse/internal/contract"
	"github.com/huangsam/trackpulse/internal/outwriter"
	"github.com/huangsam/trackpulse/schema"
)

// ExecutorFunc defines the function signature for executing different commands.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config) error

// ExecuteAnalysis runs the full pipeline and prints the report.
// It serves as the main entry point for the 'analyze' command.
func ExecuteAnalysis(ctx context.Context, cfg *contract.Config) error {
	start := time.Now()
	report, err := RunAnalysis(ctx, cfg, chartRendererFrom(ctx))
	if err != nil {
		if report != nil {
			warnFailedLoads(report.Loads)
		}
		return err
	}
	duration := time.Since(start)
	return outwriter.NewOutWriter().WriteAnalysis(report, cfg, duration)
}

// ExecuteLoad only loads the input files and prints their status.
func ExecuteLoad(ctx context.Context, cfg *contract.Config) error {
	start := time.Now()
	loads, err := LoadSources(ctx, cfg)
	if err != nil {
		return err
	}
	duration := time.Since(start)
	return outwriter.NewOutWriter().WriteLoads(loads.Statuses, cfg, duration)
}

// ExecuteBuckets displays the season and time-of-day buckets.
// This is a static display that does not read any data.
func ExecuteBuckets(_ context.Context, cfg *contract.Config) error {
	return outwriter.NewOutWriter().WriteBuckets(cfg)
}

// RunAnalysis loads, merges and enriches the designated tables, aggregates
// them, writes the snapshot and charts, and runs the uniform-month test.
//
// A file that fails to load never stops the run. When either designated table
// is missing the report is marked Skipped and nothing else happens. Any later
// failure is returned together with the report built so far.
func RunAnalysis(ctx context.Context, cfg *contract.Config, renderer contract.ChartRenderer) (*schema.AnalysisReport, error) {
	// 1. Load every input file
	loads, err := LoadSources(ctx, cfg)
	if err != nil {
		return nil, err
	}
	report := &schema.AnalysisReport{Loads: loads.Statuses}

	// 2. Normalize timestamps of the designated tables, then stack them
	for _, name := range []string{cfg.CollectionFile, cfg.RootlistFile} {
		if f, ok := loads.Get(name); ok {
			PreprocessTimestamps(f, cfg.TimestampColumn)
		}
	}
	combined, ok := MergeSources(cfg, loads)
	if !ok {
		slog.Info("analysis skipped", "collection", cfg.CollectionFile, "rootlist", cfg.RootlistFile)
		report.Skipped = true
		return report, nil
	}
	report.CombinedRecords = combined.NumRows()

	// 3. Derived columns
	features, err := DeriveFeatures(combined, cfg.TimestampColumn)
	if err != nil {
		return report, fmt.Errorf("failed to derive features: %w", err)
	}
	popularity := DerivePopularity(combined, cfg.PopularityColumn)
	report.Popularity = &popularity
	if popularity.Present && len(popularity.Values) == 0 {
		contract.LogWarn("popularity chart skipped",
			fmt.Errorf("no value of %q ends in digits", cfg.PopularityColumn))
	}

	// 4. Count tables
	aggs, err := agg.Aggregate(ctx, cfg.Engine, features)
	if err != nil {
		return report, fmt.Errorf("failed to aggregate: %w", err)
	}
	report.Aggregations = aggs
	report.Highlights = BuildHighlights(aggs)

	// 5. Artifacts
	snapshot, err := WriteSnapshot(cfg, combined)
	if err != nil {
		return report, fmt.Errorf("failed to write snapshot: %w", err)
	}
	report.Snapshot = snapshot

	if cfg.Charts {
		charts, err := RenderCharts(ctx, cfg, renderer, BuildCharts(aggs, popularity))
		report.Charts = charts
		if err != nil {
			return report, fmt.Errorf("failed to render charts: %w", err)
		}
	}

	// 6. Uniform-month test
	chi, err := algo.ChiSquaredUniform(aggs.ByMonth.Values())
	if err != nil {
		return report, fmt.Errorf("chi-squared test failed: %w", err)
	}
	report.ChiSquared = chi
	return report, nil
}

// warnFailedLoads surfaces load failures when a later stage aborts the run
// before the report is printed.
func warnFailedLoads(statuses []schema.LoadStatus) {
	for _, s := range statuses {
		if !s.OK() {
			contract.LogWarn("failed to load "+s.Path, s.Err)
		}
	}
}
