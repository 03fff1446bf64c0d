package gitsource

import (
	"context"
	"fmt"

	"github.com/google/go-github/v57/github"
	"golang.org/x/time/rate"

	"github.com/huangsam/gitpulse/internal/contract"
	"github.com/huangsam/gitpulse/schema"
)

// githubPageSize is the maximum page size the commits endpoint allows.
const githubPageSize = 100

// GitHubSource pages through a repository's commits via the GitHub API.
// Requests are issued sequentially and rate limited client-side. The
// list endpoint carries no line-level stats; records default those
// fields to 0 unless detail fetching is enabled.
type GitHubSource struct {
	client  *github.Client
	limiter *rate.Limiter
	owner   string
	repo    string
	detail  bool
}

var _ contract.CommitSource = &GitHubSource{} // Compile-time check

// NewGitHubSource creates a rate-limited GitHub commit source. An empty
// token means unauthenticated access with its lower request quota.
func NewGitHubSource(owner, repo, token string, detail bool) *GitHubSource {
	client := github.NewClient(nil)
	if token != "" {
		client = client.WithAuthToken(token)
	}
	return &GitHubSource{
		client:  client,
		limiter: rate.NewLimiter(rate.Limit(contract.DefaultRequestsPerSec), 1),
		owner:   owner,
		repo:    repo,
		detail:  detail,
	}
}

// Name implements the CommitSource interface.
func (s *GitHubSource) Name() string {
	return fmt.Sprintf("github.com/%s/%s", s.owner, s.repo)
}

// Commits implements the CommitSource interface. Pagination stops early
// once limit is satisfied or the API reports no further pages. A page
// request failure aborts the run; partial pages are never returned
// silently.
func (s *GitHubSource) Commits(ctx context.Context, limit int) ([]contract.RawCommit, error) {
	opts := &github.CommitsListOptions{
		ListOptions: github.ListOptions{PerPage: githubPageSize},
	}

	var commits []contract.RawCommit
	for {
		if err := s.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter: %w", err)
		}

		page, resp, err := s.client.Repositories.ListCommits(ctx, s.owner, s.repo, opts)
		if err != nil {
			return nil, fmt.Errorf("%w: list commits for %s: %v", schema.ErrSourceUnavailable, s.Name(), err)
		}

		for _, rc := range page {
			if limit > 0 && len(commits) >= limit {
				return commits, nil
			}
			commits = append(commits, s.rawFromAPI(ctx, rc))
		}

		if resp.NextPage == 0 || (limit > 0 && len(commits) >= limit) {
			return commits, nil
		}
		opts.Page = resp.NextPage
	}
}

// rawFromAPI converts one API payload. With detail enabled it issues a
// per-commit request for change stats; a failure there degrades that
// single record to zeroed stats instead of aborting extraction.
func (s *GitHubSource) rawFromAPI(ctx context.Context, rc *github.RepositoryCommit) contract.RawCommit {
	inner := rc.GetCommit()
	raw := contract.RawCommit{
		SHA:            rc.GetSHA(),
		AuthorName:     inner.GetAuthor().GetName(),
		AuthorEmail:    inner.GetAuthor().GetEmail(),
		CommitterName:  inner.GetCommitter().GetName(),
		CommitterEmail: inner.GetCommitter().GetEmail(),
		When:           inner.GetCommitter().GetDate().Time,
		Message:        inner.GetMessage(),
		Parents:        len(rc.Parents),
	}

	if !s.detail {
		return raw
	}

	if err := s.limiter.Wait(ctx); err != nil {
		contract.LogWarn(fmt.Sprintf("Detail fetch canceled for commit %s", raw.SHA), err)
		return raw
	}
	detailed, _, err := s.client.Repositories.GetCommit(ctx, s.owner, s.repo, raw.SHA, nil)
	if err != nil {
		contract.LogWarn(fmt.Sprintf("Stats unavailable for commit %s, using zeroed stats", raw.SHA), err)
		return raw
	}

	stats := detailed.GetStats()
	raw.Insertions = stats.GetAdditions()
	raw.Deletions = stats.GetDeletions()
	raw.LinesChanged = stats.GetTotal()
	raw.FilesChanged = len(detailed.Files)
	raw.StatsOK = true
	return raw
}
