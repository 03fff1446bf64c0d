package cmd

import (
	"github.com/spf13/cobra"

	"github.com/huangsam/gitpulse/core"
	"github.com/huangsam/gitpulse/internal/contract"
)

// analyzeSetupWrapper runs shared setup without treating the positional
// argument as a repository source; for analyze it names a collection file.
func analyzeSetupWrapper(_ *cobra.Command, _ []string) error {
	return sharedSetup(nil)
}

// analyzeCmd computes activity statistics over a persisted collection.
var analyzeCmd = &cobra.Command{
	Use:   "analyze <collection-file>",
	Short: "Compute activity statistics over a fetched collection.",
	Long: `Compute descriptive statistics over a previously fetched collection.

The report covers commit frequency per period, top developers,
time-of-day and day-of-week patterns, message keywords, and change
volume totals with per-commit averages. Buckets with no commits are
omitted unless --dense is set.

Examples:
  # Monthly activity report
  gitpulse analyze data/cobra_commits_20260830T120000.csv

  # Weekly frequency with the 5 most active developers
  gitpulse analyze commits.csv --granularity week --top 5

  # Export the full report as JSON
  gitpulse analyze commits.csv --output json --output-file report.json

  # Drill into one developer by name or email
  gitpulse analyze commits.csv --contributor alice@example.com`,
	Args:    cobra.ExactArgs(1),
	PreRunE: analyzeSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		if err := core.ExecuteAnalyze(cfg, args[0]); err != nil {
			contract.LogFatal("Cannot analyze collection", err)
		}
	},
}
