//go:build integration

// Package integration contains end-to-end tests for the trackpulse binary.
// These tests are excluded from normal test runs due to build tags.
// To run these tests: go test -tags integration ./integration
package integration

import (
	"bytes"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	collectionJSON = `[
  {"timestamp_utc": "2023-01-05T10:00:00Z", "message_item_uri": "spotify:track:12"},
  {"timestamp_utc": "2023-03-18T14:30:00Z", "message_item_uri": "spotify:track:40"},
  {"timestamp_utc": "not a date", "message_item_uri": "spotify:track:none"}
]`
	rootlistJSON = `[
  {"timestamp_utc": "2023-07-09T21:15:00Z", "message_item_uri": "spotify:track:7"}
]`
)

// newExport writes a minimal export into a fresh directory and returns it.
func newExport(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "AddedToCollection.json"), []byte(collectionJSON), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "AddedToRootlist.json"), []byte(rootlistJSON), 0o644))
	return dir
}

// runTrackpulse runs the binary inside dir with HOME pointed there, so no
// stray config file is picked up.
func runTrackpulse(t *testing.T, dir string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	cmd := exec.Command(getTrackpulseBinary(), args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(), "HOME="+dir)
	var out, errOut bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errOut
	err = cmd.Run()
	return out.String(), errOut.String(), err
}

func TestAnalyzeText(t *testing.T) {
	dir := newExport(t)
	outDir := filepath.Join(dir, "out")

	stdout, stderr, err := runTrackpulse(t, dir, "analyze", ".", "--output-dir", outDir, "--color", "no")
	require.NoError(t, err, stderr)

	assert.Contains(t, stdout, "Combined dataset created with 4 records.")
	assert.Contains(t, stdout, "Chi-squared Test Results:")
	assert.Contains(t, stdout, "Analysis completed in")
	assert.Contains(t, stdout, "Failed to load")

	assert.FileExists(t, filepath.Join(outDir, "combined_data.csv"))
	assert.FileExists(t, filepath.Join(outDir, "song_additions_by_month.png"))
	assert.FileExists(t, filepath.Join(outDir, "heatmap_song_additions.png"))
	assert.FileExists(t, filepath.Join(outDir, "song_popularity_distribution.png"))
}

func TestAnalyzeJSONParquet(t *testing.T) {
	dir := newExport(t)
	outDir := filepath.Join(dir, "out")

	stdout, stderr, err := runTrackpulse(t, dir, "analyze", ".",
		"--output", "json", "--output-dir", outDir,
		"--engine", "sqlite", "--snapshot-format", "parquet", "--charts=false")
	require.NoError(t, err, stderr)

	var report struct {
		Skipped         bool `json:"skipped"`
		CombinedRecords int  `json:"combined_records"`
		ChiSquared      struct {
			DoF int `json:"dof"`
		} `json:"chi_squared"`
		Snapshot string   `json:"snapshot"`
		Charts   []string `json:"charts"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &report))
	assert.False(t, report.Skipped)
	assert.Equal(t, 4, report.CombinedRecords)
	assert.Equal(t, 2, report.ChiSquared.DoF)
	assert.Equal(t, filepath.Join(outDir, "combined_data.parquet"), report.Snapshot)
	assert.Empty(t, report.Charts)
	assert.FileExists(t, report.Snapshot)
}

func TestAnalyzeSkipped(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "AddedToCollection.json"), []byte(collectionJSON), 0o644))

	stdout, stderr, err := runTrackpulse(t, dir, "analyze", ".", "--color", "no")
	require.NoError(t, err, stderr)
	assert.Contains(t, stdout, "Skipped analysis")
	assert.NoFileExists(t, filepath.Join(dir, "combined_data.csv"))
}

func TestLoad(t *testing.T) {
	dir := newExport(t)

	stdout, stderr, err := runTrackpulse(t, dir, "load", ".",
		"--files", "AddedToCollection.json,AddedToRootlist.json,Missing.json", "--color", "no")
	require.NoError(t, err, stderr)
	assert.Contains(t, stdout, "Loaded 2 of 3 files")
}

func TestBuckets(t *testing.T) {
	stdout, stderr, err := runTrackpulse(t, t.TempDir(), "buckets")
	require.NoError(t, err, stderr)
	assert.Contains(t, stdout, "Winter")
	assert.Contains(t, stdout, "Night")
}

func TestInvalidEngine(t *testing.T) {
	_, stderr, err := runTrackpulse(t, t.TempDir(), "analyze", ".", "--engine", "duckdb")
	require.Error(t, err)
	assert.Contains(t, stderr, "engine")
}
