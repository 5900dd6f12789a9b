package core

import (
	"github.com/huangsam/trackpulse/internal/contract"
	"github.com/huangsam/trackpulse/internal/frame"
)

// MergeSources stacks the collection and rootlist tables into the combined
// table. ok is false when either table failed to load, in which case the
// rest of the analysis is skipped.
func MergeSources(cfg *contract.Config, loads *LoadResult) (combined *frame.Frame, ok bool) {
	collection, okCollection := loads.Get(cfg.CollectionFile)
	rootlist, okRootlist := loads.Get(cfg.RootlistFile)
	if !okCollection || !okRootlist {
		return nil, false
	}
	return frame.Concat(collection, rootlist), true
}
