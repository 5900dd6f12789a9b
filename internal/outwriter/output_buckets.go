package outwriter

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/huangsam/trackpulse/internal/contract"
	"github.com/huangsam/trackpulse/schema"
)

// bucketDefinitions is the JSON form of the fixed feature buckets.
type bucketDefinitions struct {
	Seasons    []seasonBucket    `json:"seasons"`
	TimesOfDay []timeOfDayBucket `json:"times_of_day"`
}

type seasonBucket struct {
	Season schema.Season `json:"season"`
	Months []int         `json:"months"`
}

type timeOfDayBucket struct {
	Bucket schema.TimeOfDay `json:"bucket"`
	Hours  []int            `json:"hours"`
}

// PrintBuckets outputs the season and time-of-day bucket definitions.
// This is a static display that does not read any data.
func PrintBuckets(cfg *contract.Config) error {
	defs := buildBucketDefinitions()
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, defs)
		}, "Wrote JSON"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
		return nil
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeBucketTables(w, defs)
		}, "Wrote table")
	}
}

// buildBucketDefinitions expands the bucket rules into explicit member lists.
// Hours are attributed through TimeOfDayForHour so Night picks up the wrap-around.
func buildBucketDefinitions() bucketDefinitions {
	var defs bucketDefinitions
	for _, s := range schema.SeasonMonths {
		defs.Seasons = append(defs.Seasons, seasonBucket{Season: s.Season, Months: s.Months})
	}

	hours := map[schema.TimeOfDay][]int{}
	for h := range 24 {
		bucket := schema.TimeOfDayForHour(h)
		hours[bucket] = append(hours[bucket], h)
	}
	for _, b := range []schema.TimeOfDay{schema.Morning, schema.Afternoon, schema.Evening, schema.Night} {
		defs.TimesOfDay = append(defs.TimesOfDay, timeOfDayBucket{Bucket: b, Hours: hours[b]})
	}
	return defs
}

func writeBucketTables(w io.Writer, defs bucketDefinitions) error {
	seasons := make([][]string, 0, len(defs.Seasons))
	for _, s := range defs.Seasons {
		names := make([]string, len(s.Months))
		for i, m := range s.Months {
			names[i] = time.Month(m).String()
		}
		seasons = append(seasons, []string{string(s.Season), strings.Join(names, ", ")})
	}
	if err := writeTable(w, []string{"Season", "Months"}, seasons); err != nil {
		return err
	}

	times := make([][]string, 0, len(defs.TimesOfDay))
	for _, b := range defs.TimesOfDay {
		times = append(times, []string{string(b.Bucket), formatHours(b.Hours)})
	}
	return writeTable(w, []string{"Time of Day", "Hours"}, times)
}

// formatHours joins hours as a comma separated list.
func formatHours(hours []int) string {
	parts := make([]string, len(hours))
	for i, h := range hours {
		parts[i] = strconv.Itoa(h)
	}
	return strings.Join(parts, ", ")
}
