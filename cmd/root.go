package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/huangsam/gitpulse/internal/contract"
	"github.com/huangsam/gitpulse/schema"
)

// All linker flags will be set by goreleaser infra at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// rootCtx is the root context for all operations.
var rootCtx = context.Background()

// cfg will hold the validated, final configuration.
var cfg = &contract.Config{}

// input holds the raw, unvalidated configuration from all sources
// (file, env, flags). Viper will unmarshal into this struct.
var input = &contract.ConfigRawInput{}

// rootCmd is the command-line entrypoint for all other commands.
var rootCmd = &cobra.Command{
	Use:                "gitpulse",
	Short:              "Extract and analyze Git commit activity.",
	Long:               `Gitpulse turns raw Git history into activity reports: commit frequency, contributor rankings, time-of-day patterns and change volume.`,
	Version:            version,
	SilenceErrors:      true,
	SilenceUsage:       true,
	DisableSuggestions: true,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	// Set environment variable prefix
	viper.SetEnvPrefix("GITPULSE")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // Read in environment variables that match

	// Set defaults in Viper
	viper.SetDefault("data-dir", contract.DefaultDataDir)
	viper.SetDefault("limit", 0)
	viper.SetDefault("granularity", schema.MonthGranularity)
	viper.SetDefault("top", contract.DefaultTopDevelopers)
	viper.SetDefault("keywords", contract.DefaultTopKeywords)
	viper.SetDefault("output", schema.TextOut)
	viper.SetDefault("cache-backend", schema.SQLiteBackend)
	viper.SetDefault("cache-db-connect", "")
}

// loadConfigFile handles config file loading logic common to all setup
// functions.
func loadConfigFile() error {
	// Check if a specific config file is provided
	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.SetConfigName(".gitpulse") // Name of config file (without extension)
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")     // Look in the current directory
		viper.AddConfigPath("$HOME") // Look in the home directory
	}

	// Load config file if present
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Config file was found but another error was produced
			return fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found, which is fine; we'll use defaults/env/flags.
	}
	return nil
}

// sharedSetup unmarshals config and runs validation. The single
// positional argument names the source repository.
func sharedSetup(args []string) error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Unmarshal all resolved values from Viper into our raw input struct.
	if err := viper.Unmarshal(input); err != nil {
		return fmt.Errorf("unable to unmarshal config: %w", err)
	}

	// Handle positional arguments (which Viper doesn't do).
	if len(args) == 1 {
		input.SourceStr = args[0]
	} else {
		input.SourceStr = "."
	}

	// Run all validation and complex parsing. This populates the global
	// 'cfg' from 'input'.
	return contract.ProcessAndValidate(cfg, input)
}

// sharedSetupWrapper wraps sharedSetup to provide PreRunE for Cobra.
func sharedSetupWrapper(_ *cobra.Command, args []string) error {
	return sharedSetup(args)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
