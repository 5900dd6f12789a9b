// Package agg has aggregation logic for derived event features.
package agg

import (
	"context"
	"fmt"

	"github.com/huangsam/trackpulse/schema"
)

// Aggregate computes every count table with the selected engine.
// Rows without a valid timestamp are left out of every table.
func Aggregate(ctx context.Context, engine schema.AggregationEngine, features []schema.Features) (*schema.Aggregations, error) {
	switch engine {
	case schema.MemoryEngine, "":
		return AggregateMemory(features), nil
	case schema.SQLiteEngine:
		return AggregateSQLite(ctx, features)
	default:
		return nil, fmt.Errorf("unsupported aggregation engine: %s. Must be memory or sqlite", engine)
	}
}

// validOnly drops rows whose timestamp could not be parsed.
func validOnly(features []schema.Features) []schema.Features {
	valid := make([]schema.Features, 0, len(features))
	for _, f := range features {
		if f.Valid {
			valid = append(valid, f)
		}
	}
	return valid
}

// weekendKey renders the weekend flag the way it sorts and prints.
func weekendKey(isWeekend bool) string {
	if isWeekend {
		return "true"
	}
	return "false"
}
