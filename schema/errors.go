package schema

import "errors"

// Sentinel errors shared across extraction and analysis. Callers match
// them with errors.Is after any amount of wrapping.
var (
	// ErrSourceUnavailable means a repository could not be obtained or
	// opened: the remote is unreachable or the local path is not a
	// valid repository.
	ErrSourceUnavailable = errors.New("repository source unavailable")

	// ErrUnsupportedUnit means an invalid bucketing unit or granularity
	// was requested.
	ErrUnsupportedUnit = errors.New("unsupported time unit")

	// ErrEmptyCollection means an aggregate with per-commit rates was
	// requested over zero records, where averages would be undefined.
	ErrEmptyCollection = errors.New("commit collection is empty")
)
