package schema

// Custom string types for type safety.
type (
	// Granularity represents the time-bucketing resolution for frequency analysis.
	Granularity string

	// TimeUnit represents the unit for time-of-day/week/month distributions.
	TimeUnit string

	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for caching.
	DatabaseBackend string
)

// All frequency granularities supported.
const (
	DayGranularity   Granularity = "day"
	WeekGranularity  Granularity = "week"
	MonthGranularity Granularity = "month" // default
	YearGranularity  Granularity = "year"
)

// All time distribution units supported.
const (
	HourUnit      TimeUnit = "hour"
	DayOfWeekUnit TimeUnit = "dayofweek"
	MonthUnit     TimeUnit = "month"
)

// All output modes supported.
const (
	TextOut    OutputMode = "text" // default
	CSVOut     OutputMode = "csv"
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All cache backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// TimestampLayout is the naive ISO-8601 layout used for the datetime
// column of persisted collections. It carries no zone offset on purpose:
// timestamps are already normalized to UTC before persistence.
const TimestampLayout = "2006-01-02T15:04:05"

// CSVHeader lists the persisted columns, in order. Column order matters
// for round-trip equality with previously written files.
var CSVHeader = []string{
	"sha",
	"author_name",
	"author_email",
	"committer_name",
	"committer_email",
	"datetime",
	"message",
	"insertions",
	"deletions",
	"lines_changed",
	"files_changed",
	"parents",
}

// ValidGranularities lists all valid frequency granularities.
var ValidGranularities = map[Granularity]struct{}{
	DayGranularity:   {},
	WeekGranularity:  {},
	MonthGranularity: {},
	YearGranularity:  {},
}

// ValidTimeUnits lists all valid time distribution units.
var ValidTimeUnits = map[TimeUnit]struct{}{
	HourUnit:      {},
	DayOfWeekUnit: {},
	MonthUnit:     {},
}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut:    {},
	CSVOut:     {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidCacheBackends lists all valid cache backends.
var ValidCacheBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}
