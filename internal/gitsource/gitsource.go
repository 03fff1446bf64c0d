// Package gitsource turns a live repository, local or remote, into a
// normalized commit collection.
package gitsource

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"

	"github.com/huangsam/gitpulse/internal/contract"
	"github.com/huangsam/gitpulse/schema"
)

// Obtain resolves a repository for iteration and returns it along with
// its local path. A remote clone URL is materialized under cfg.DataDir;
// an existing clone at the target location is reused without
// re-fetching. Failures wrap schema.ErrSourceUnavailable.
func Obtain(cfg *contract.Config) (*git.Repository, string, error) {
	source := cfg.Source
	if !isCloneURL(source) {
		repo, err := git.PlainOpen(source)
		if err != nil {
			return nil, "", fmt.Errorf("%w: cannot open %q: %v", schema.ErrSourceUnavailable, source, err)
		}
		return repo, source, nil
	}

	target := filepath.Join(cfg.DataDir, contract.RepoNameFromSource(source))
	if _, err := os.Stat(filepath.Join(target, ".git")); err == nil {
		contract.LogInfo("Reusing existing clone at %s", target)
		repo, err := git.PlainOpen(target)
		if err != nil {
			return nil, "", fmt.Errorf("%w: cannot open existing clone %q: %v", schema.ErrSourceUnavailable, target, err)
		}
		return repo, target, nil
	}

	if err := os.MkdirAll(target, 0o755); err != nil {
		return nil, "", fmt.Errorf("%w: cannot create clone target %q: %v", schema.ErrSourceUnavailable, target, err)
	}
	contract.LogInfo("Cloning %s into %s", source, target)
	repo, err := git.PlainClone(target, false, &git.CloneOptions{URL: source})
	if err != nil {
		return nil, "", fmt.Errorf("%w: clone of %q failed: %v", schema.ErrSourceUnavailable, source, err)
	}
	return repo, target, nil
}

// isCloneURL reports whether source names a remote repository rather
// than a local working copy.
func isCloneURL(source string) bool {
	return strings.Contains(source, "://") || strings.HasPrefix(source, "git@")
}

// LocalSource walks a local repository's commit graph newest first.
type LocalSource struct {
	repo *git.Repository
	path string
}

var _ contract.CommitSource = &LocalSource{} // Compile-time check

// NewLocalSource creates a commit source over an opened repository.
func NewLocalSource(repo *git.Repository, path string) *LocalSource {
	return &LocalSource{repo: repo, path: path}
}

// Name implements the CommitSource interface.
func (s *LocalSource) Name() string {
	return s.path
}

// Commits implements the CommitSource interface. It iterates commits in
// reverse-chronological order from HEAD and computes line/file stats per
// commit against its first parent (the empty tree for a root commit).
// A stats failure degrades that one record to zeroed stats instead of
// aborting the traversal.
func (s *LocalSource) Commits(ctx context.Context, limit int) ([]contract.RawCommit, error) {
	head, err := s.repo.Head()
	if errors.Is(err, plumbing.ErrReferenceNotFound) {
		return []contract.RawCommit{}, nil // zero commits is a valid history
	} else if err != nil {
		return nil, fmt.Errorf("%w: cannot resolve HEAD: %v", schema.ErrSourceUnavailable, err)
	}

	iter, err := s.repo.Log(&git.LogOptions{From: head.Hash(), Order: git.LogOrderCommitterTime})
	if err != nil {
		return nil, fmt.Errorf("%w: cannot walk history: %v", schema.ErrSourceUnavailable, err)
	}
	defer iter.Close()

	var commits []contract.RawCommit
	err = iter.ForEach(func(c *object.Commit) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if limit > 0 && len(commits) >= limit {
			return storer.ErrStop
		}
		commits = append(commits, rawFromCommit(c))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return commits, nil
}

// rawFromCommit builds the raw payload for one commit, recovering
// locally from stats-computation failures.
func rawFromCommit(c *object.Commit) contract.RawCommit {
	raw := contract.RawCommit{
		SHA:            c.Hash.String(),
		AuthorName:     c.Author.Name,
		AuthorEmail:    c.Author.Email,
		CommitterName:  c.Committer.Name,
		CommitterEmail: c.Committer.Email,
		When:           c.Committer.When,
		Message:        c.Message,
		Parents:        c.NumParents(),
	}

	stats, err := c.Stats()
	if err != nil {
		contract.LogWarn(fmt.Sprintf("Stats unavailable for commit %s, using zeroed stats", c.Hash), err)
		return raw
	}
	for _, fs := range stats {
		raw.Insertions += fs.Addition
		raw.Deletions += fs.Deletion
	}
	raw.LinesChanged = raw.Insertions + raw.Deletions
	raw.FilesChanged = len(stats)
	raw.StatsOK = true
	return raw
}

// Normalize converts a raw payload into a commit record: the committer
// time is converted to UTC and the offset stripped, the message is
// trimmed, and numeric fields are clamped to be non-negative.
func Normalize(raw contract.RawCommit) schema.CommitRecord {
	rec := schema.CommitRecord{
		SHA:            raw.SHA,
		AuthorName:     raw.AuthorName,
		AuthorEmail:    raw.AuthorEmail,
		CommitterName:  raw.CommitterName,
		CommitterEmail: raw.CommitterEmail,
		Timestamp:      raw.When.UTC().Truncate(time.Second),
		Message:        strings.TrimSpace(raw.Message),
		Parents:        max(raw.Parents, 0),
	}
	if raw.StatsOK {
		rec.Insertions = max(raw.Insertions, 0)
		rec.Deletions = max(raw.Deletions, 0)
		rec.FilesChanged = max(raw.FilesChanged, 0)
		rec.LinesChanged = max(raw.LinesChanged, 0)
		if rec.LinesChanged == 0 {
			rec.LinesChanged = rec.Insertions + rec.Deletions
		}
	}
	return rec
}

// ExtractHistory drains a commit source and normalizes every payload
// into a collection, newest first. It reports how many records were
// produced and how many carry degraded (zeroed) stats.
func ExtractHistory(ctx context.Context, src contract.CommitSource, limit int) (schema.CommitCollection, error) {
	raws, err := src.Commits(ctx, limit)
	if err != nil {
		return nil, err
	}

	collection := make(schema.CommitCollection, 0, len(raws))
	degraded := 0
	for _, raw := range raws {
		if !raw.StatsOK {
			degraded++
		}
		collection = append(collection, Normalize(raw))
	}

	if degraded > 0 {
		contract.LogWarn(fmt.Sprintf("%d of %d records have zeroed change stats", degraded, len(collection)), nil)
	}
	contract.LogInfo("Extracted %d commit records from %s", len(collection), src.Name())
	return collection, nil
}
