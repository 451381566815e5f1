package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Store backends
const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
	BackendQdrant = "qdrant"
)

// Identity providers
const (
	IdentityAuto   = "auto"
	IdentityGitHub = "gh"
	IdentityStatic = "static"
)

// Config represents the full application configuration
type Config struct {
	Store      StoreConfig      `yaml:"store"`
	Similarity SimilarityConfig `yaml:"similarity"`
	Identity   IdentityConfig   `yaml:"identity"`
	Logging    LoggingConfig    `yaml:"logging"`
	RateLimits RateLimitsConfig `yaml:"rate_limits"`
}

// StoreConfig selects and configures the document store
type StoreConfig struct {
	Backend    string       `yaml:"backend"`
	Path       string       `yaml:"path"`
	Collection string       `yaml:"collection"`
	Qdrant     QdrantConfig `yaml:"qdrant"`
}

// QdrantConfig contains Qdrant connection settings
type QdrantConfig struct {
	URL    string `yaml:"url"`
	APIKey string `yaml:"api_key"`
}

// SimilarityConfig tunes duplicate detection
type SimilarityConfig struct {
	Threshold      float64 `yaml:"threshold"`
	MinTitleLength int     `yaml:"min_title_length"`
}

// IdentityConfig selects where the current user comes from
type IdentityConfig struct {
	Provider string `yaml:"provider"`
	Email    string `yaml:"email"`
	Host     string `yaml:"host,omitempty"`
}

// LoggingConfig contains log output settings
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// RateLimitsConfig contains rate limiting settings
type RateLimitsConfig struct {
	StoreRPS int `yaml:"store_requests_per_second"`
}

// Load reads and parses config from the given path
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	expandConfigEnvVars(&cfg)
	applyDefaults(&cfg)

	return &cfg, nil
}

// Default returns the configuration used when no file is found
func Default() *Config {
	cfg := &Config{}
	expandConfigEnvVars(cfg)
	applyDefaults(cfg)
	return cfg
}

// FindConfigPath looks for config in common locations
func FindConfigPath(explicit string) string {
	if explicit != "" {
		return explicit
	}

	paths := []string{
		".github/tracker.yaml",
		".github/tracker.yml",
		"tracker.yaml",
		"tracker.yml",
	}

	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	if home, err := os.UserHomeDir(); err == nil {
		homePath := filepath.Join(home, ".config", "gh-tracker", "config.yaml")
		if _, err := os.Stat(homePath); err == nil {
			return homePath
		}
	}

	return ""
}

// defaultStorePath is where the SQLite database lives by default
func defaultStorePath() string {
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".local", "share", "gh-tracker", "issues.db")
	}
	return filepath.Join(".gh-tracker", "issues.db")
}

// applyDefaults sets default values for unset fields
func applyDefaults(cfg *Config) {
	if cfg.Store.Backend == "" {
		cfg.Store.Backend = BackendSQLite
	}
	if cfg.Store.Backend == BackendSQLite && cfg.Store.Path == "" {
		cfg.Store.Path = defaultStorePath()
	}
	if cfg.Store.Collection == "" {
		cfg.Store.Collection = "issues"
	}
	if cfg.Store.Backend == BackendQdrant && cfg.RateLimits.StoreRPS == 0 {
		cfg.RateLimits.StoreRPS = 50
	}

	if cfg.Similarity.Threshold == 0 {
		cfg.Similarity.Threshold = 60
	}
	if cfg.Similarity.MinTitleLength == 0 {
		cfg.Similarity.MinTitleLength = 3
	}

	if cfg.Identity.Provider == "" {
		cfg.Identity.Provider = IdentityAuto
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "warn"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "console"
	}
}
