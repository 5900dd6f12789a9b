package core

import (
	"testing"

	"github.com/huangsam/trackpulse/internal/contract"
	"github.com/huangsam/trackpulse/internal/frame"
	"github.com/huangsam/trackpulse/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeSources(t *testing.T) {
	collection := frame.New()
	collection.AppendRow([]string{"timestamp_utc", "a"}, []any{"t1", "x"})
	collection.AppendRow([]string{"timestamp_utc", "a"}, []any{"t2", "y"})
	rootlist := frame.New()
	rootlist.AppendRow([]string{"timestamp_utc", "b"}, []any{"t3", "z"})

	cfg := &contract.Config{CollectionFile: schema.CollectionFile, RootlistFile: schema.RootlistFile}
	loads := &LoadResult{Frames: map[string]*frame.Frame{
		schema.CollectionFile: collection,
		schema.RootlistFile:   rootlist,
	}}

	combined, ok := MergeSources(cfg, loads)
	require.True(t, ok)
	assert.Equal(t, 3, combined.NumRows())
	assert.Equal(t, []string{"timestamp_utc", "a", "b"}, combined.Columns())
	assert.Equal(t, "t3", combined.Value(2, "timestamp_utc"))
	assert.Nil(t, combined.Value(2, "a"))
	assert.Nil(t, combined.Value(0, "b"))

	// Inputs are not modified by later changes to the combined table
	require.NoError(t, combined.SetColumn("a", []any{nil, nil, nil}))
	assert.Equal(t, "x", collection.Value(0, "a"))
}

func TestMergeSources_Missing(t *testing.T) {
	cfg := &contract.Config{CollectionFile: schema.CollectionFile, RootlistFile: schema.RootlistFile}

	for name, frames := range map[string]map[string]*frame.Frame{
		"no rootlist":   {schema.CollectionFile: frame.New()},
		"no collection": {schema.RootlistFile: frame.New()},
		"neither":       {},
	} {
		t.Run(name, func(t *testing.T) {
			combined, ok := MergeSources(cfg, &LoadResult{Frames: frames})
			assert.False(t, ok)
			assert.Nil(t, combined)
		})
	}
}
