// Package core implements the activity analysis engine: independent,
// stateless query operations over a commit collection.
package core

import "github.com/huangsam/gitpulse/schema"

// Analyzer computes read-only aggregations over a commit collection.
// It captures the collection on construction; every method is
// independent and may be called in any order, from multiple goroutines.
type Analyzer struct {
	commits schema.CommitCollection
	dense   bool
}

// NewAnalyzer creates an analyzer over a collection. When dense is set,
// frequency and time-distribution tables emit zero-count buckets across
// the observed range instead of the sparse encoding.
func NewAnalyzer(commits schema.CommitCollection, dense bool) *Analyzer {
	return &Analyzer{commits: commits, dense: dense}
}

// Len returns the number of records under analysis.
func (a *Analyzer) Len() int {
	return len(a.commits)
}
