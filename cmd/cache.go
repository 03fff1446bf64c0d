package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/huangsam/gitpulse/internal/contract"
	"github.com/huangsam/gitpulse/internal/iocache"
	"github.com/huangsam/gitpulse/schema"
)

// cacheSetup loads the minimal configuration needed for cache
// operations, skipping source resolution and analysis validation.
func cacheSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	backend := schema.DatabaseBackend(viper.GetString("cache-backend"))
	if _, ok := schema.ValidCacheBackends[backend]; !ok {
		return fmt.Errorf("unsupported cache backend %q. Must be sqlite, mysql, postgresql, or none", backend)
	}

	cfg.CacheBackend = backend
	cfg.CacheDBConnect = viper.GetString("cache-db-connect")
	return nil
}

// cacheSetupWrapper wraps cacheSetup to provide PreRunE for cache commands.
func cacheSetupWrapper(_ *cobra.Command, _ []string) error {
	return cacheSetup()
}

// cacheCmd focused on cache management.
var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the commit collection cache.",
	Long: `Manage the cache of extracted commit collections.

Gitpulse caches extracted collections keyed on the repository head, so
repeated fetches of an unchanged repository skip history traversal.

Supported backends: SQLite (default), MySQL, PostgreSQL, or None

Examples:
  # Check cache status
  gitpulse cache status

  # Clear cache after a history rewrite
  gitpulse cache clear`,
}

// cacheClearCmd clears the cache.
var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all cached collections.",
	Long: `Delete every cached collection from the configured backend.

Use this when repository history was rewritten, or when the cache may
be stale or corrupted.`,
	PreRunE: cacheSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		store, err := iocache.NewCacheStore(cfg.CacheBackend, cfg.CacheDBConnect)
		if err != nil {
			contract.LogFatal("Cannot initialize cache", err)
		}
		defer func() { _ = store.Close() }()

		if err := store.Clear(); err != nil {
			contract.LogFatal("Failed to clear cache", err)
		}
		fmt.Println("Cache cleared successfully.")
	},
}

// cacheStatusCmd shows cache status.
var cacheStatusCmd = &cobra.Command{
	Use:     "status",
	Short:   "Display cache statistics and connection details.",
	PreRunE: cacheSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		store, err := iocache.NewCacheStore(cfg.CacheBackend, cfg.CacheDBConnect)
		if err != nil {
			contract.LogFatal("Cannot initialize cache", err)
		}
		defer func() { _ = store.Close() }()

		count, err := store.Count()
		if err != nil {
			contract.LogFatal("Failed to get cache status", err)
		}
		fmt.Printf("Backend: %s\n", cfg.CacheBackend)
		if cfg.CacheBackend == schema.SQLiteBackend && cfg.CacheDBConnect == "" {
			fmt.Printf("Database: %s\n", iocache.DefaultDBFilePath())
		}
		fmt.Printf("Cached collections: %d\n", count)
	},
}
