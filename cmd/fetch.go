package cmd

import (
	"github.com/spf13/cobra"

	"github.com/huangsam/gitpulse/core"
	"github.com/huangsam/gitpulse/internal/contract"
	"github.com/huangsam/gitpulse/internal/iocache"
	"github.com/huangsam/gitpulse/schema"
)

// fetchCmd extracts commit history into a persisted collection.
var fetchCmd = &cobra.Command{
	Use:   "fetch [source]",
	Short: "Extract commit history into a flat collection file.",
	Long: `Extract the commit history of a repository into a flat collection file.

The source can be a local working copy, a clone URL, or (with --remote)
a GitHub owner/repo descriptor. Clone URLs are materialized under the
data directory and reused on later runs. Each commit becomes one
normalized record with author, committer, timestamp and change stats;
commits whose stats cannot be computed are kept with zeroed numbers.

Examples:
  # Extract the history of the current directory
  gitpulse fetch

  # Clone and extract, capped at the 500 newest commits
  gitpulse fetch https://github.com/spf13/cobra.git --limit 500

  # Extract through the GitHub API, with per-commit stats
  gitpulse fetch spf13/cobra --remote --detail

  # Write a parquet collection instead of CSV
  gitpulse fetch --output parquet --output-file commits.parquet`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		backend := cfg.CacheBackend
		if cfg.NoCache {
			backend = schema.NoneBackend
		}
		store, err := iocache.NewCacheStore(backend, cfg.CacheDBConnect)
		if err != nil {
			contract.LogFatal("Cannot initialize cache", err)
		}
		defer func() { _ = store.Close() }()

		if err := core.ExecuteFetch(rootCtx, cfg, store); err != nil {
			contract.LogFatal("Cannot fetch history", err)
		}
	},
}
