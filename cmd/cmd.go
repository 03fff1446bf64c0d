// Package cmd defines the command-line interface for gitpulse.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/huangsam/gitpulse/internal/contract"
	"github.com/huangsam/gitpulse/schema"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(fetchCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(cacheCmd)
	rootCmd.AddCommand(versionCmd)

	// Add the cache subcommands to the parent cache command
	cacheCmd.AddCommand(cacheClearCmd)
	cacheCmd.AddCommand(cacheStatusCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("data-dir", contract.DefaultDataDir, "Directory for clones and persisted collections")
	rootCmd.PersistentFlags().StringP("output", "o", string(schema.TextOut), "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("cache-backend", string(schema.SQLiteBackend), "Cache backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("cache-db-connect", "", "Database connection string for mysql/postgresql")
	rootCmd.PersistentFlags().Bool("no-cache", false, "Bypass the collection cache for this run")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of fetchCmd to Viper
	fetchCmd.Flags().IntP("limit", "l", 0, "Max commits to extract (0 = full history)")
	fetchCmd.Flags().Bool("remote", false, "Fetch through the GitHub API instead of a local clone")
	fetchCmd.Flags().Bool("detail", false, "Fetch per-commit change stats on the remote path (slower)")
	fetchCmd.Flags().String("github-token", "", "GitHub API token (or GITPULSE_GITHUB_TOKEN)")
	if err := viper.BindPFlags(fetchCmd.Flags()); err != nil {
		contract.LogFatal("Error binding fetch flags", err)
	}

	// Bind all flags of analyzeCmd to Viper
	analyzeCmd.Flags().StringP("granularity", "g", string(schema.MonthGranularity), "Frequency bucketing: day or week or month or year")
	analyzeCmd.Flags().Int("top", contract.DefaultTopDevelopers, "Ranking size for developer activity")
	analyzeCmd.Flags().Int("keywords", contract.DefaultTopKeywords, "Ranking size for message keywords")
	analyzeCmd.Flags().Bool("dense", false, "Emit zero-count buckets instead of sparse tables")
	analyzeCmd.Flags().String("contributor", "", "Summarize a single developer by exact name or email")
	if err := viper.BindPFlags(analyzeCmd.Flags()); err != nil {
		contract.LogFatal("Error binding analyze flags", err)
	}
}
