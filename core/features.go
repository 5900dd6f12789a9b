package core

import (
	"fmt"
	"time"

	"github.com/huangsam/trackpulse/internal/frame"
	"github.com/huangsam/trackpulse/schema"
)

// DeriveFeatures adds the calendar columns to the combined table in place and
// returns the per-row features. Rows whose timestamp is null get null derived
// cells and an invalid feature. A table without the timestamp column is an error.
func DeriveFeatures(f *frame.Frame, column string) ([]schema.Features, error) {
	if !f.HasColumn(column) {
		return nil, fmt.Errorf("combined table has no %q column", column)
	}

	n := f.NumRows()
	features := make([]schema.Features, n)
	derived := make(map[string][]any, len(schema.DerivedColumns))
	for _, c := range schema.DerivedColumns {
		derived[c] = make([]any, n)
	}

	for i, v := range f.Column(column) {
		ts, ok := v.(time.Time)
		if !ok {
			continue
		}
		feat := schema.NewFeatures(ts)
		features[i] = feat
		derived[schema.MonthCol][i] = feat.Month
		derived[schema.DayOfWeekCol][i] = feat.DayOfWeek
		derived[schema.SeasonCol][i] = string(feat.Season)
		derived[schema.IsWeekendCol][i] = feat.IsWeekend
		derived[schema.TimeOfDayCol][i] = string(feat.TimeOfDay)
		derived[schema.HourCol][i] = feat.Hour
		derived[schema.DateCol][i] = feat.Date.Format(schema.DateFormat)
	}

	for _, c := range schema.DerivedColumns {
		if err := f.SetColumn(c, derived[c]); err != nil {
			return nil, err
		}
	}
	return features, nil
}
