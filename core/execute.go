package core

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/huangsam/gitpulse/internal/contract"
	"github.com/huangsam/gitpulse/internal/gitsource"
	"github.com/huangsam/gitpulse/internal/iocache"
	"github.com/huangsam/gitpulse/internal/outwriter"
	"github.com/huangsam/gitpulse/internal/persist"
	"github.com/huangsam/gitpulse/schema"
)

// ExecuteFetch extracts commit history from the configured source and
// persists it as a flat collection file. It serves as the main entry
// point for the 'fetch' command.
func ExecuteFetch(ctx context.Context, cfg *contract.Config, store contract.CacheStore) error {
	start := time.Now()

	source, headSHA, err := resolveSource(cfg)
	if err != nil {
		return err
	}

	collection, err := fetchCollection(ctx, cfg, store, source, headSHA)
	if err != nil {
		return err
	}

	path, err := persistCollection(collection, cfg)
	if err != nil {
		return err
	}
	contract.LogInfo("Fetched %d commits from %s in %v", len(collection), source.Name(), time.Since(start))
	contract.LogInfo("Collection written to %s", path)
	return nil
}

// ExecuteAnalyze loads a persisted collection, computes every report
// section and renders the result. It serves as the main entry point for
// the 'analyze' command.
func ExecuteAnalyze(cfg *contract.Config, path string) error {
	if cfg.Output == schema.ParquetOut {
		return fmt.Errorf("parquet output applies to fetch, not analyze")
	}

	start := time.Now()
	collection, err := persist.LoadCSV(path)
	if err != nil {
		return err
	}

	analyzer := NewAnalyzer(collection, cfg.Dense)
	report, err := BuildReport(analyzer, cfg)
	if err != nil {
		return err
	}
	return outwriter.WriteReport(report, cfg, time.Since(start))
}

// resolveSource builds the commit source for the configured target,
// along with the head SHA used for cache keying. The head is unknown
// for API-backed sources, which therefore bypass the cache.
func resolveSource(cfg *contract.Config) (contract.CommitSource, string, error) {
	if cfg.Remote {
		return gitsource.NewGitHubSource(cfg.Owner, cfg.Repo, cfg.Token, cfg.Detail), "", nil
	}

	repo, path, err := gitsource.Obtain(cfg)
	if err != nil {
		return nil, "", err
	}

	var headSHA string
	if head, err := repo.Head(); err == nil {
		headSHA = head.Hash().String()
	}
	return gitsource.NewLocalSource(repo, path), headSHA, nil
}

// fetchCollection returns the collection for a source, consulting the
// cache before extraction and filling it afterwards. Cache failures
// degrade to a fresh extraction.
func fetchCollection(ctx context.Context, cfg *contract.Config, store contract.CacheStore, source contract.CommitSource, headSHA string) (schema.CommitCollection, error) {
	useCache := store != nil && !cfg.NoCache && headSHA != ""
	key := iocache.CollectionKey(source.Name(), headSHA, cfg.Limit)

	if useCache {
		if data, found, err := store.Get(key); err != nil {
			contract.LogWarn("Cache lookup failed", err)
		} else if found {
			collection, err := iocache.DecodeCollection(data)
			if err == nil {
				contract.LogInfo("Cache hit for %s", source.Name())
				return collection, nil
			}
			contract.LogWarn("Cache entry corrupt, re-extracting", err)
		}
	}

	collection, err := gitsource.ExtractHistory(ctx, source, cfg.Limit)
	if err != nil {
		return nil, err
	}

	if useCache {
		if data, err := iocache.EncodeCollection(collection); err != nil {
			contract.LogWarn("Cache encode failed", err)
		} else if err := store.Set(key, data); err != nil {
			contract.LogWarn("Cache store failed", err)
		}
	}
	return collection, nil
}

// persistCollection writes the collection in the configured format,
// deriving a timestamped filename under the data directory when no
// explicit output file is given.
func persistCollection(collection schema.CommitCollection, cfg *contract.Config) (string, error) {
	destination := cfg.OutputFile
	if destination == "" {
		ext := "csv"
		if cfg.Output == schema.ParquetOut {
			ext = "parquet"
		}
		name := fmt.Sprintf("%s_commits_%s.%s",
			contract.RepoNameFromSource(cfg.Source),
			time.Now().UTC().Format("20060102T150405"),
			ext)
		destination = filepath.Join(cfg.DataDir, name)
	}

	if cfg.Output == schema.ParquetOut {
		return persist.SaveParquet(collection, destination)
	}
	return persist.SaveCSV(collection, destination)
}
