// Package main provides a performance benchmarking tool for the trackpulse CLI.
// It measures how long the analyze command takes on each export directory with
// each aggregation engine, running every case multiple times, treating the first
// successful run as cold and averaging the rest as warm, and writes the timings
// as CSV for later comparison.
//
// Prerequisites:
// - trackpulse binary installed and available in PATH
// - One or more export directories below the base directory
//
// Usage: go run benchmark/main.go [export-base-dir]
//
//	export-base-dir: Directory whose subdirectories each hold an export
package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// BenchmarkResult holds the timings of one export and engine pair.
type BenchmarkResult struct {
	Export   string
	Engine   string
	Format   string
	ColdTime string
	WarmTime string
}

// BenchmarkConfig holds configuration for the benchmark run.
type BenchmarkConfig struct {
	ExportBase string
	Timeout    time.Duration
	Runs       int
	Engines    []string
	Formats    []string
}

func main() {
	// Parse command line arguments
	if len(os.Args) != 2 {
		fmt.Printf("Usage: %s [export-base-dir]\n", os.Args[0])
		os.Exit(1)
	}

	config := BenchmarkConfig{
		ExportBase: os.Args[1],
		Timeout:    2 * time.Minute,
		Runs:       4,
		Engines:    []string{"memory", "sqlite"},
		Formats:    []string{"csv", "parquet"},
	}

	exports, err := findExports(config.ExportBase)
	if err != nil {
		fmt.Printf("Prerequisites check failed: %v\n", err)
		os.Exit(1)
	}

	results := runBenchmarks(config, exports)

	if err := saveResults(results); err != nil {
		fmt.Printf("Failed to save results: %v\n", err)
		os.Exit(1)
	}

	printSummary(results)
}

// findExports verifies that the trackpulse binary exists and lists export directories
func findExports(base string) ([]string, error) {
	if _, err := exec.LookPath("trackpulse"); err != nil {
		return nil, fmt.Errorf("trackpulse binary not found in PATH")
	}

	entries, err := os.ReadDir(base)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", base, err)
	}
	var exports []string
	for _, e := range entries {
		if e.IsDir() {
			exports = append(exports, e.Name())
		}
	}
	if len(exports) == 0 {
		return nil, fmt.Errorf("no export directories found in %s", base)
	}
	return exports, nil
}

// runBenchmarks executes every engine and snapshot format against every export
func runBenchmarks(config BenchmarkConfig, exports []string) []BenchmarkResult {
	var results []BenchmarkResult

	fmt.Printf("Starting benchmark: %d exports, %v timeout, %d runs per case\n",
		len(exports), config.Timeout, config.Runs)

	for _, export := range exports {
		fmt.Printf("Benchmarking %s\n", export)
		exportPath := filepath.Join(config.ExportBase, export)
		for _, engine := range config.Engines {
			for _, format := range config.Formats {
				results = append(results, runBenchmarkSuite(config, export, exportPath, engine, format))
			}
		}
	}

	return results
}

// runBenchmarkSuite times one export, engine and format combination
func runBenchmarkSuite(config BenchmarkConfig, export, exportPath, engine, format string) BenchmarkResult {
	fmt.Printf("  engine=%s format=%s (%d runs)\n", engine, format, config.Runs)

	times := runBenchmark(config, exportPath, engine, format)

	coldTime, warmAvg := "TIMEOUT", "TIMEOUT"
	if len(times) > 0 {
		coldTime = fmt.Sprintf("%.3fs", times[0])
	}
	if len(times) > 1 {
		var sum float64
		for _, t := range times[1:] {
			sum += t
		}
		warmAvg = fmt.Sprintf("%.3fs", sum/float64(len(times)-1))
	}

	fmt.Printf("  Cold time: %s, Warm average: %s\n", coldTime, warmAvg)

	return BenchmarkResult{
		Export:   export,
		Engine:   engine,
		Format:   format,
		ColdTime: coldTime,
		WarmTime: warmAvg,
	}
}

// runBenchmark executes trackpulse analyze repeatedly and returns the successful run times
func runBenchmark(config BenchmarkConfig, exportPath, engine, format string) []float64 {
	outDir, err := os.MkdirTemp("", "trackpulse-bench-*")
	if err != nil {
		fmt.Printf("Warning: failed to create output dir: %v\n", err)
		return nil
	}
	defer func() { _ = os.RemoveAll(outDir) }()

	args := []string{
		"analyze", exportPath,
		"--engine", engine,
		"--snapshot-format", format,
		"--output-dir", outDir,
		"--display", "no",
		"--color", "no",
	}

	var times []float64
	for run := 1; run <= config.Runs; run++ {
		ctx, cancel := context.WithTimeout(context.Background(), config.Timeout)
		start := time.Now()
		output, cmdErr := exec.CommandContext(ctx, "trackpulse", args...).CombinedOutput()
		elapsed := time.Since(start).Seconds()
		cancel()

		if cmdErr == nil && isSuccess(output) {
			times = append(times, elapsed)
		}
	}
	return times
}

// isSuccess checks if command output indicates successful completion
func isSuccess(output []byte) bool {
	return strings.Contains(string(output), "Analysis completed in")
}

// saveResults writes benchmark results to a timestamped CSV file
func saveResults(results []BenchmarkResult) error {
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("/tmp/trackpulse_benchmark_%s.csv", timestamp)

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			fmt.Printf("Warning: failed to close file %s: %v\n", filename, closeErr)
		}
	}()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	// Write header
	if err := writer.Write([]string{"export", "engine", "format", "cold_time", "warm_avg"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	// Write results
	for _, result := range results {
		if err := writer.Write([]string{result.Export, result.Engine, result.Format, result.ColdTime, result.WarmTime}); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	fmt.Printf("Results saved to %s\n", filename)
	return nil
}

// printSummary displays the final benchmark results summary
func printSummary(results []BenchmarkResult) {
	fmt.Printf("Benchmark complete\n")
	for _, engine := range []string{"memory", "sqlite"} {
		fmt.Printf("Engine %s:\n", engine)
		for _, result := range results {
			if result.Engine == engine {
				fmt.Printf("  %-20s %-8s: Cold: %s, Warm: %s\n", result.Export, result.Format, result.ColdTime, result.WarmTime)
			}
		}
	}
}
