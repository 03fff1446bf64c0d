package contract

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

// RawCommit is the unnormalized payload a commit source produces for a
// single commit. The original timezone offset is still attached to When;
// normalization strips it.
type RawCommit struct {
	SHA            string
	AuthorName     string
	AuthorEmail    string
	CommitterName  string
	CommitterEmail string
	When           time.Time // committer time with its original offset
	Message        string
	Insertions     int
	Deletions      int
	LinesChanged   int
	FilesChanged   int
	Parents        int
	StatsOK        bool // false when change stats could not be computed
}

// CommitSource produces an ordered sequence of raw commit payloads,
// newest first. Local repository traversal and remote API pagination
// are both implementations of this capability; a single normalization
// step downstream is shared by all variants.
type CommitSource interface {
	// Name identifies the source for logging and cache keys.
	Name() string

	// Commits returns up to limit raw commit payloads, newest first.
	// A limit of 0 means the full history. An empty history is a valid
	// result, not an error.
	Commits(ctx context.Context, limit int) ([]RawCommit, error)
}

// MockCommitSource is a testify mock for the CommitSource type.
type MockCommitSource struct {
	mock.Mock
}

var _ CommitSource = &MockCommitSource{} // Compile-time check

// Name implements the CommitSource interface.
func (m *MockCommitSource) Name() string {
	ret := m.Called()
	return ret.String(0)
}

// Commits implements the CommitSource interface.
func (m *MockCommitSource) Commits(ctx context.Context, limit int) ([]RawCommit, error) {
	ret := m.Called(ctx, limit)
	commits, _ := ret.Get(0).([]RawCommit)
	return commits, ret.Error(1)
}
