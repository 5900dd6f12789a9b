package outwriter

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/huangsam/trackpulse/internal/frame"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	file, err := os.Open(path)
	require.NoError(t, err)
	defer func() { _ = file.Close() }()

	records, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	return records
}

func TestWriteSnapshotCSV(t *testing.T) {
	ts := time.Date(2023, time.January, 1, 12, 0, 0, 0, time.UTC)
	f := frame.New()
	f.AppendRow([]string{"timestamp_utc", "count", "uri"}, []any{ts, json.Number("3"), "spotify:track:42"})
	f.AppendRow([]string{"timestamp_utc", "flag"}, []any{nil, true})

	path := filepath.Join(t.TempDir(), "combined_data.csv")
	require.NoError(t, WriteSnapshotCSV(f, path))

	records := readCSV(t, path)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"timestamp_utc", "count", "uri", "flag"}, records[0])
	assert.Equal(t, []string{"2023-01-01 12:00:00+00:00", "3", "spotify:track:42", ""}, records[1])
	assert.Equal(t, []string{"", "", "", "true"}, records[2])
}

func TestWriteSnapshotCSV_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "combined_data.csv")
	require.NoError(t, os.WriteFile(path, []byte("stale content that is longer than the new file\n"), 0o644))

	f := frame.New()
	f.AppendRow([]string{"a"}, []any{"1"})
	require.NoError(t, WriteSnapshotCSV(f, path))

	assert.Equal(t, [][]string{{"a"}, {"1"}}, readCSV(t, path))
}

func TestWriteSnapshotCSV_NoRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "combined_data.csv")
	require.NoError(t, WriteSnapshotCSV(frame.New(), path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "\n", string(content))
}

func TestWriteSnapshotCSV_BadPath(t *testing.T) {
	err := WriteSnapshotCSV(frame.New(), filepath.Join(t.TempDir(), "missing", "x.csv"))
	assert.ErrorContains(t, err, "failed to create snapshot file")
}

func TestOutWriter_WriteSnapshotCSV(t *testing.T) {
	f := frame.New()
	f.AppendRow([]string{"month", "season"}, []any{1, "Winter"})

	path := filepath.Join(t.TempDir(), "combined_data.csv")
	require.NoError(t, NewOutWriter().WriteSnapshotCSV(f, path))

	assert.Equal(t, [][]string{{"month", "season"}, {"1", "Winter"}}, readCSV(t, path))
}
