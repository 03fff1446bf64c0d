package core

import (
	"fmt"

	"github.com/huangsam/gitpulse/schema"
)

// ChangeSummary computes change-volume totals over the whole collection
// plus per-commit averages. It fails with schema.ErrEmptyCollection for
// a zero-commit collection, where the averages would be undefined.
func (a *Analyzer) ChangeSummary() (schema.ChangeSummary, error) {
	if len(a.commits) == 0 {
		return schema.ChangeSummary{}, fmt.Errorf("%w: no commits to summarize", schema.ErrEmptyCollection)
	}
	return summarize(a.commits), nil
}

// ContributorSummary computes the same totals and averages filtered to
// commits whose author name exactly matches. The second return value is
// false when no commits match; that is a valid lookup miss, not a
// fault.
func (a *Analyzer) ContributorSummary(authorName string) (schema.ContributorSummary, bool) {
	var matched schema.CommitCollection
	for _, rec := range a.commits {
		if rec.AuthorName == authorName {
			matched = append(matched, rec)
		}
	}
	if len(matched) == 0 {
		return schema.ContributorSummary{}, false
	}
	return schema.ContributorSummary{
		Developer:     authorName,
		ChangeSummary: summarize(matched),
	}, true
}

// summarize totals change volume for a non-empty record set.
func summarize(commits schema.CommitCollection) schema.ChangeSummary {
	s := schema.ChangeSummary{TotalCommits: len(commits)}
	for _, rec := range commits {
		s.TotalFilesChanged += rec.FilesChanged
		s.TotalInsertions += rec.Insertions
		s.TotalDeletions += rec.Deletions
	}
	n := float64(s.TotalCommits)
	s.AvgFilesPerCommit = float64(s.TotalFilesChanged) / n
	s.AvgInsertions = float64(s.TotalInsertions) / n
	s.AvgDeletions = float64(s.TotalDeletions) / n
	return s
}
