package config

import (
	"os"
	"regexp"
)

var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// expandEnvVars replaces ${VAR_NAME} patterns with environment variable values
func expandEnvVars(s string) string {
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if value := os.Getenv(varName); value != "" {
			return value
		}
		return match // Keep original if env var not set
	})
}

// expandConfigEnvVars expands environment variables in config string fields
func expandConfigEnvVars(cfg *Config) {
	cfg.Store.Path = expandEnvVars(cfg.Store.Path)
	cfg.Store.Qdrant.URL = expandEnvVars(cfg.Store.Qdrant.URL)
	cfg.Store.Qdrant.APIKey = expandEnvVars(cfg.Store.Qdrant.APIKey)
	cfg.Identity.Email = expandEnvVars(cfg.Identity.Email)

	// TRACKER_EMAIL fills in the static identity when the file leaves it blank
	if cfg.Identity.Email == "" {
		cfg.Identity.Email = os.Getenv("TRACKER_EMAIL")
	}
}
