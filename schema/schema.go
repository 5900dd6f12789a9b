// Package schema has configs, models and global variables for all parts of trackpulse.
package schema

import "time"

// LoadStatus describes the outcome of loading a single input file.
type LoadStatus struct {
	File    string `json:"file"`            // Base name of the input file
	Path    string `json:"path"`            // Resolved path that was read
	Records int    `json:"records"`         // Number of rows loaded (0 on failure)
	Columns int    `json:"columns"`         // Number of flattened columns
	Err     error  `json:"-"`               // Load failure, nil on success
	Error   string `json:"error,omitempty"` // Err rendered for JSON output
}

// OK reports whether the file loaded successfully.
func (s LoadStatus) OK() bool {
	return s.Err == nil
}

// Features holds the calendar features derived from one row's timestamp.
// Valid is false when the row has no parseable timestamp; the other fields
// are then zero and the row is left out of every aggregation.
type Features struct {
	Valid     bool
	Month     int
	DayOfWeek string
	Season    Season
	IsWeekend bool
	TimeOfDay TimeOfDay
	Hour      int
	Date      time.Time // Midnight UTC of the calendar date
}

// CountEntry is one key of a single-dimension aggregation.
type CountEntry struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// Counts is an ordered single-dimension aggregation.
type Counts []CountEntry

// Grid is a two-dimensional count table. Cells[r][c] counts rows with
// day Rows[r] and hour Cols[c]; missing combinations are zero.
type Grid struct {
	Rows  []string `json:"rows"`
	Cols  []int    `json:"cols"`
	Cells [][]int  `json:"cells"`
}

// CumulativePoint is the running total of rows up to and including Date.
type CumulativePoint struct {
	Date  time.Time `json:"date"`
	Total int       `json:"total"`
}

// Aggregations bundles every count table computed from the combined table.
type Aggregations struct {
	BySeason    Counts            `json:"by_season"`
	ByMonth     Counts            `json:"by_month"`
	ByWeekday   Counts            `json:"by_weekday"`
	ByWeekend   Counts            `json:"by_weekend"`
	ByTimeOfDay Counts            `json:"by_time_of_day"`
	ByHour      Counts            `json:"by_hour"`
	DayHour     Grid              `json:"day_hour"`
	Cumulative  []CumulativePoint `json:"cumulative"`
}

// ChiSquaredResult is the outcome of the uniform-month goodness-of-fit check.
type ChiSquaredResult struct {
	Statistic float64     `json:"chi2"`
	PValue    float64     `json:"p_value"`
	DoF       int         `json:"dof"`
	Observed  []float64   `json:"observed"`
	Expected  [][]float64 `json:"expected"`
}

// PopularityScores is the tagged optional result of the popularity check.
// Present is false when the source column does not exist; Values then is nil.
type PopularityScores struct {
	Present bool      `json:"present"`
	Column  string    `json:"column,omitempty"`
	Values  []float64 `json:"-"`       // Non-null scores in row order
	Missing int       `json:"missing"` // Rows without a trailing number
}

// Chart describes one static chart to render. Only the fields relevant to
// Kind are populated.
type Chart struct {
	File   string    // Output file name, relative to the output directory
	Kind   ChartKind // How the data is drawn
	Title  string
	XLabel string
	YLabel string
	Labels []string    // Bar labels (BarChart)
	Values []float64   // Bar heights, line Y values or histogram samples
	X      []float64   // Line X values (LineChart)
	Times  []time.Time // Line X values (TimeChart)
	Grid   *Grid       // HeatMap data
	Bins   int         // Histogram bin count
}

// Highlights summarizes where additions concentrate.
type Highlights struct {
	TopDays   Counts `json:"top_days"`
	TopHours  Counts `json:"top_hours"`
	PeakDay   string `json:"peak_day,omitempty"`
	PeakHour  int    `json:"peak_hour"`
	PeakCount int    `json:"peak_count"`
}

// AnalysisReport is the JSON form of a full analysis run.
type AnalysisReport struct {
	Loads           []LoadStatus      `json:"loads"`
	Skipped         bool              `json:"skipped"`
	CombinedRecords int               `json:"combined_records"`
	Aggregations    *Aggregations     `json:"aggregations,omitempty"`
	Highlights      *Highlights       `json:"highlights,omitempty"`
	ChiSquared      *ChiSquaredResult `json:"chi_squared,omitempty"`
	Popularity      *PopularityScores `json:"popularity,omitempty"`
	Snapshot        string            `json:"snapshot,omitempty"`
	Charts          []string          `json:"charts,omitempty"`
}
