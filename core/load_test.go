package core

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/huangsam/trackpulse/internal/contract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSources(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "good.json", `[{"a": 1, "b": {"c": "x"}}, {"a": 2}]`)
	writeFixture(t, dir, "single.json", `{"a": 3}`)
	writeFixture(t, dir, "broken.json", `[{"a": 1}`)
	writeFixture(t, dir, "scalars.json", `[1, 2]`)
	absolute := writeFixture(t, t.TempDir(), "elsewhere.json", `[]`)

	cfg := &contract.Config{
		DataDir:    dir,
		InputFiles: []string{"good.json", "single.json", "broken.json", "missing.json", "scalars.json", absolute},
	}
	result, err := LoadSources(context.Background(), cfg)
	require.NoError(t, err)
	require.Len(t, result.Statuses, 6)

	good := result.Statuses[0]
	assert.True(t, good.OK())
	assert.Equal(t, "good.json", good.File)
	assert.Equal(t, filepath.Join(dir, "good.json"), good.Path)
	assert.Equal(t, 2, good.Records)
	assert.Equal(t, 2, good.Columns)

	assert.True(t, result.Statuses[1].OK())
	assert.Equal(t, 1, result.Statuses[1].Records)

	for _, i := range []int{2, 3, 4} {
		s := result.Statuses[i]
		assert.False(t, s.OK(), s.File)
		assert.Equal(t, s.Err.Error(), s.Error)
		assert.Zero(t, s.Records)
	}

	assert.True(t, result.Statuses[5].OK())
	assert.Equal(t, absolute, result.Statuses[5].Path)
	assert.Equal(t, 3, result.Failed())

	f, ok := result.Get("good.json")
	require.True(t, ok)
	assert.True(t, f.HasColumn("b.c"))

	f, ok = result.Get(filepath.Join("nested", "single.json"))
	require.True(t, ok)
	assert.Equal(t, 1, f.NumRows())

	_, ok = result.Get("broken.json")
	assert.False(t, ok)
}

func TestLoadSources_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := LoadSources(ctx, &contract.Config{InputFiles: []string{"a.json"}})
	assert.ErrorIs(t, err, context.Canceled)
}
