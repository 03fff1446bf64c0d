// Package schema has configs, models and global variables for all parts of gitpulse.
package schema

import "time"

// CommitRecord is one normalized, immutable representation of a single
// repository commit. Every numeric field is always present; when change
// statistics cannot be recovered for a commit they default to 0, so
// downstream aggregation never needs null handling.
type CommitRecord struct {
	SHA            string    // Unique content-addressed identifier of the commit
	AuthorName     string    // Identity at authorship time
	AuthorEmail    string    // Email at authorship time
	CommitterName  string    // Identity at commit time (may differ from author)
	CommitterEmail string    // Email at commit time
	Timestamp      time.Time // Committer time, converted to UTC with the offset stripped
	Message        string    // Full commit message, whitespace-trimmed
	Insertions     int       // Lines added; 0 when unavailable
	Deletions      int       // Lines removed; 0 when unavailable
	LinesChanged   int       // Insertions + deletions, or the source-reported total
	FilesChanged   int       // Count of distinct files touched
	Parents        int       // 0 for root, 1 for normal, >=2 for merge commits
}

// CommitCollection is a finite sequence of commit records, typically
// newest first as produced by extraction. It is treated as read-only by
// every analysis operation, so concurrent analysis over the same
// collection is safe.
type CommitCollection []CommitRecord

// FrequencyBucket is one (bucket, count) pair in a frequency table.
type FrequencyBucket struct {
	Bucket string `json:"bucket"`
	Count  int    `json:"count"`
}

// RankEntry is one (entity, count) pair in a ranking table, ordered
// descending by count.
type RankEntry struct {
	Entity string `json:"entity"`
	Count  int    `json:"count"`
}

// ChangeSummary holds change-volume totals over a collection plus the
// corresponding per-commit averages.
type ChangeSummary struct {
	TotalCommits      int     `json:"total_commits"`
	TotalFilesChanged int     `json:"total_files_changed"`
	TotalInsertions   int     `json:"total_insertions"`
	TotalDeletions    int     `json:"total_deletions"`
	AvgFilesPerCommit float64 `json:"avg_files_per_commit"`
	AvgInsertions     float64 `json:"avg_insertions_per_commit"`
	AvgDeletions      float64 `json:"avg_deletions_per_commit"`
}

// ContributorSummary is a ChangeSummary scoped to a single developer.
type ContributorSummary struct {
	Developer string `json:"developer"`
	ChangeSummary
}

// AnalysisReport bundles the output of every analysis operation for a
// single collection. Rendering components consume it read-only.
type AnalysisReport struct {
	Frequency    []FrequencyBucket   `json:"commit_frequency"`
	Contributors []RankEntry         `json:"developer_activity"`
	Hours        []FrequencyBucket   `json:"commit_time_hour"`
	Weekdays     []FrequencyBucket   `json:"commit_time_dayofweek"`
	Months       []FrequencyBucket   `json:"commit_time_month"`
	Keywords     []RankEntry         `json:"keywords"`
	Changes      ChangeSummary       `json:"file_changes"`
	Contributor  *ContributorSummary `json:"contributor,omitempty"`
}
