package core

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/huangsam/trackpulse/internal/contract"
	"github.com/huangsam/trackpulse/internal/frame"
	"github.com/huangsam/trackpulse/schema"
)

// LoadResult holds the per-file outcome of a load pass.
type LoadResult struct {
	Statuses []schema.LoadStatus     // One entry per configured file, in order
	Frames   map[string]*frame.Frame // Successfully loaded tables keyed by file base name
}

// Get returns the table loaded for a file name, if any.
func (r *LoadResult) Get(name string) (*frame.Frame, bool) {
	f, ok := r.Frames[filepath.Base(name)]
	return f, ok
}

// Failed returns the number of files that could not be loaded.
func (r *LoadResult) Failed() int {
	n := 0
	for _, s := range r.Statuses {
		if !s.OK() {
			n++
		}
	}
	return n
}

// LoadSources reads and flattens every configured input file. A file that
// cannot be read or parsed is recorded as failed and the rest still load.
// The only error returned is a cancelled context.
func LoadSources(ctx context.Context, cfg *contract.Config) (*LoadResult, error) {
	result := &LoadResult{Frames: make(map[string]*frame.Frame, len(cfg.InputFiles))}
	for _, file := range cfg.InputFiles {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		result.Statuses = append(result.Statuses, loadOne(cfg, file, result.Frames))
	}
	return result, nil
}

func loadOne(cfg *contract.Config, file string, frames map[string]*frame.Frame) schema.LoadStatus {
	path := cfg.ResolveInput(file)
	status := schema.LoadStatus{File: filepath.Base(file), Path: path}

	f, err := frame.ReadFile(path)
	if err != nil {
		status.Err = err
		status.Error = err.Error()
		slog.Debug("load failed", "file", status.File, "path", path, "error", err)
		return status
	}

	status.Records = f.NumRows()
	status.Columns = f.NumCols()
	frames[status.File] = f
	slog.Debug("loaded file", "file", status.File, "records", status.Records, "columns", status.Columns)
	return status
}
