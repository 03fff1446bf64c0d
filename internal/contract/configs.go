// Package contract holds configuration, shared contracts and small
// utilities used by every other part of gitpulse.
package contract

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/huangsam/gitpulse/schema"
)

// Default values for configuration.
const (
	DefaultDataDir        = "data"
	DefaultTopDevelopers  = 10
	DefaultTopKeywords    = 20
	DefaultRequestsPerSec = 1 // conservative: GitHub allows ~1.4 req/sec authenticated
)

// Config holds the runtime configuration for fetch and analyze runs.
// This struct remains the "final, validated" config.
type Config struct {
	// Source resolution
	Source  string // Local path or remote clone URL
	DataDir string // Directory for clones and persisted collections
	Remote  bool   // Use the GitHub API instead of a local clone
	Owner   string // Parsed from Source when Remote is set
	Repo    string // Parsed from Source when Remote is set
	Detail  bool   // Fetch per-commit change stats on the remote path
	Token   string // GitHub API token, optional

	// Extraction
	Limit int // Max records to extract; 0 means full history

	// Analysis
	Granularity schema.Granularity
	TopN        int    // Ranking size for developer activity
	KeywordN    int    // Ranking size for message keywords
	Dense       bool   // Emit zero-count buckets instead of sparse tables
	Contributor string // Optional single-developer summary filter

	// Output
	Output     schema.OutputMode
	OutputFile string
	Width      int // Table width override; 0 means detect from terminal

	// Caching
	CacheBackend   schema.DatabaseBackend
	CacheDBConnect string
	NoCache        bool
}

// ConfigRawInput holds the raw, unvalidated configuration from all
// sources (file, env, flags). Viper unmarshals into this struct.
type ConfigRawInput struct {
	SourceStr      string `mapstructure:"source"`
	DataDir        string `mapstructure:"data-dir"`
	Remote         bool   `mapstructure:"remote"`
	Detail         bool   `mapstructure:"detail"`
	Token          string `mapstructure:"github-token"`
	Limit          int    `mapstructure:"limit"`
	Granularity    string `mapstructure:"granularity"`
	TopN           int    `mapstructure:"top"`
	KeywordN       int    `mapstructure:"keywords"`
	Dense          bool   `mapstructure:"dense"`
	Contributor    string `mapstructure:"contributor"`
	Output         string `mapstructure:"output"`
	OutputFile     string `mapstructure:"output-file"`
	Width          int    `mapstructure:"width"`
	CacheBackend   string `mapstructure:"cache-backend"`
	CacheDBConnect string `mapstructure:"cache-db-connect"`
	NoCache        bool   `mapstructure:"no-cache"`
}

// ProcessAndValidate populates cfg from the raw input, validating every
// enum-like field and parsing the remote source descriptor.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	cfg.Source = input.SourceStr
	cfg.DataDir = input.DataDir
	if cfg.DataDir == "" {
		cfg.DataDir = DefaultDataDir
	}
	cfg.Remote = input.Remote
	cfg.Detail = input.Detail
	cfg.Token = input.Token
	cfg.Limit = input.Limit
	if cfg.Limit < 0 {
		return fmt.Errorf("limit must be non-negative, got %d", cfg.Limit)
	}

	cfg.Granularity = schema.Granularity(input.Granularity)
	if _, ok := schema.ValidGranularities[cfg.Granularity]; !ok {
		return fmt.Errorf("%w: granularity %q", schema.ErrUnsupportedUnit, input.Granularity)
	}

	cfg.TopN = input.TopN
	if cfg.TopN <= 0 {
		cfg.TopN = DefaultTopDevelopers
	}
	cfg.KeywordN = input.KeywordN
	if cfg.KeywordN <= 0 {
		cfg.KeywordN = DefaultTopKeywords
	}
	cfg.Dense = input.Dense
	cfg.Contributor = input.Contributor

	cfg.Output = schema.OutputMode(input.Output)
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output mode %q. Must be text, csv, json or parquet", input.Output)
	}
	cfg.OutputFile = input.OutputFile
	cfg.Width = input.Width
	if cfg.Width < 0 {
		return fmt.Errorf("width must be non-negative, got %d", cfg.Width)
	}

	cfg.CacheBackend = schema.DatabaseBackend(input.CacheBackend)
	if _, ok := schema.ValidCacheBackends[cfg.CacheBackend]; !ok {
		return fmt.Errorf("unsupported cache backend %q. Must be sqlite, mysql, postgresql, or none", input.CacheBackend)
	}
	cfg.CacheDBConnect = input.CacheDBConnect
	cfg.NoCache = input.NoCache

	if cfg.Remote {
		owner, repo, err := ParseRemoteSource(cfg.Source)
		if err != nil {
			return err
		}
		cfg.Owner = owner
		cfg.Repo = repo
	}

	return nil
}

// ParseRemoteSource extracts owner and repository name from a GitHub
// URL or an "owner/repo" shorthand.
func ParseRemoteSource(source string) (string, string, error) {
	trimmed := strings.TrimSuffix(source, ".git")
	if u, err := url.Parse(trimmed); err == nil && u.Host != "" {
		trimmed = strings.Trim(u.Path, "/")
	}
	parts := strings.Split(trimmed, "/")
	if len(parts) < 2 || parts[len(parts)-1] == "" || parts[len(parts)-2] == "" {
		return "", "", fmt.Errorf("cannot parse owner/repo from source %q", source)
	}
	return parts[len(parts)-2], parts[len(parts)-1], nil
}

// RepoNameFromSource derives a repository directory name from a source
// descriptor, for clone targets and default output filenames.
func RepoNameFromSource(source string) string {
	name := strings.TrimSuffix(source, ".git")
	name = strings.TrimRight(name, "/")
	return filepath.Base(name)
}
