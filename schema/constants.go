package schema

// Custom string types for type safety.
type (
	// OutputMode represents the format of the console report.
	OutputMode string

	// SnapshotFormat represents the file format of the combined-table snapshot.
	SnapshotFormat string

	// AggregationEngine represents the backend used to compute count tables.
	AggregationEngine string

	// Season is one of the four meteorological seasons.
	Season string

	// TimeOfDay is one of the four hour-of-day buckets.
	TimeOfDay string

	// ChartKind represents how an aggregation is drawn.
	ChartKind string
)

// All output modes supported.
const (
	TextOut OutputMode = "text" // default
	JSONOut OutputMode = "json"
)

// All snapshot formats supported.
const (
	CSVSnapshot     SnapshotFormat = "csv" // default
	ParquetSnapshot SnapshotFormat = "parquet"
)

// All aggregation engines supported.
const (
	MemoryEngine AggregationEngine = "memory" // default
	SQLiteEngine AggregationEngine = "sqlite"
)

// Seasons, keyed by meteorological month ranges.
const (
	Winter Season = "Winter"
	Spring Season = "Spring"
	Summer Season = "Summer"
	Autumn Season = "Autumn"
)

// Hour-of-day buckets.
const (
	Morning   TimeOfDay = "Morning"
	Afternoon TimeOfDay = "Afternoon"
	Evening   TimeOfDay = "Evening"
	Night     TimeOfDay = "Night"
)

// Chart kinds.
const (
	BarChart  ChartKind = "bar"
	LineChart ChartKind = "line"
	TimeChart ChartKind = "timeline"
	HeatMap   ChartKind = "heatmap"
	Histogram ChartKind = "histogram"
)

// Default input file names of a streaming-service data export.
const (
	CollectionFile       = "AddedToCollection.json"
	RootlistFile         = "AddedToRootlist.json"
	CacheReportFile      = "CacheReport_Hourly.json"
	PlaybackSessionFile  = "BoomboxPlaybackSession_1.json"
	StreamingReportFile  = "AudioStreamingSettingsReport_Hourly.json"
	CurationChangeFile   = "AlignedCurationChangeSavedDestination.json"
	MessagingEventFile   = "ClientMessagingPlatformInteractionEvent.json"
	DefaultTimestampCol  = "timestamp_utc"
	DefaultPopularityCol = "message_item_uri"
)

// DefaultInputFiles lists every file loaded when no files are configured.
var DefaultInputFiles = []string{
	CollectionFile,
	RootlistFile,
	CacheReportFile,
	PlaybackSessionFile,
	StreamingReportFile,
	CurationChangeFile,
	MessagingEventFile,
}

// Derived column names added to the combined table.
const (
	MonthCol      = "month"
	DayOfWeekCol  = "day_of_week"
	SeasonCol     = "season"
	IsWeekendCol  = "is_weekend"
	TimeOfDayCol  = "time_of_day"
	HourCol       = "hour"
	DateCol       = "date"
	PopularityCol = "popularity_score"
)

// DerivedColumns lists the feature columns in the order they are added.
var DerivedColumns = []string{MonthCol, DayOfWeekCol, SeasonCol, IsWeekendCol, TimeOfDayCol, HourCol, DateCol}

// Chart file names. These are fixed and overwritten on every run.
const (
	MonthChartFile      = "song_additions_by_month.png"
	SeasonChartFile     = "song_additions_by_season.png"
	WeekdayChartFile    = "song_additions_by_weekday.png"
	WeekendChartFile    = "song_additions_weekend_vs_weekday.png"
	TimeOfDayChartFile  = "song_additions_by_time_of_day.png"
	HourChartFile       = "song_additions_by_hour.png"
	CumulativeChartFile = "cumulative_song_additions.png"
	HeatMapChartFile    = "heatmap_song_additions.png"
	PopularityChartFile = "song_popularity_distribution.png"
)

// Default snapshot file names per format.
const (
	DefaultCSVSnapshotFile     = "combined_data.csv"
	DefaultParquetSnapshotFile = "combined_data.parquet"
)

// PopularityBins is the fixed bin count of the popularity histogram.
const PopularityBins = 20

// DateFormat is the layout of the derived date column.
const DateFormat = "2006-01-02"

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut: {},
	JSONOut: {},
}

// ValidSnapshotFormats lists all valid snapshot formats.
var ValidSnapshotFormats = map[SnapshotFormat]struct{}{
	CSVSnapshot:     {},
	ParquetSnapshot: {},
}

// ValidAggregationEngines lists all valid aggregation engines.
var ValidAggregationEngines = map[AggregationEngine]struct{}{
	MemoryEngine: {},
	SQLiteEngine: {},
}

// SeasonMonths maps each season to its months, Winter wrapping the year end.
var SeasonMonths = []struct {
	Season Season
	Months []int
}{
	{Winter, []int{12, 1, 2}},
	{Spring, []int{3, 4, 5}},
	{Summer, []int{6, 7, 8}},
	{Autumn, []int{9, 10, 11}},
}

// TimeOfDayHours lists the half-open hour ranges of each bucket.
// Night covers every hour outside the other three.
var TimeOfDayHours = []struct {
	Bucket TimeOfDay
	Start  int
	End    int
}{
	{Morning, 5, 12},
	{Afternoon, 12, 17},
	{Evening, 17, 21},
}
