package config

import (
	"fmt"
	"regexp"
)

var collectionPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks the configuration for errors
func Validate(cfg *Config) []error {
	var errs []error

	// Validate store config
	switch cfg.Store.Backend {
	case BackendMemory:
	case BackendSQLite:
		if cfg.Store.Path == "" {
			errs = append(errs, ValidationError{"store.path", "required for sqlite backend"})
		}
	case BackendQdrant:
		if cfg.Store.Qdrant.URL == "" {
			errs = append(errs, ValidationError{"store.qdrant.url", "required for qdrant backend"})
		}
	default:
		errs = append(errs, ValidationError{"store.backend", "must be 'memory', 'sqlite' or 'qdrant'"})
	}

	if !collectionPattern.MatchString(cfg.Store.Collection) {
		errs = append(errs, ValidationError{"store.collection", "must be letters, digits and underscores, not starting with a digit"})
	}

	// Validate similarity
	if cfg.Similarity.Threshold < 0 || cfg.Similarity.Threshold > 100 {
		errs = append(errs, ValidationError{"similarity.threshold", "must be between 0 and 100"})
	}
	if cfg.Similarity.MinTitleLength < 0 {
		errs = append(errs, ValidationError{"similarity.min_title_length", "must not be negative"})
	}

	// Validate identity
	switch cfg.Identity.Provider {
	case IdentityAuto, IdentityGitHub:
	case IdentityStatic:
		if cfg.Identity.Email == "" {
			errs = append(errs, ValidationError{"identity.email", "required for static identity"})
		}
	default:
		errs = append(errs, ValidationError{"identity.provider", "must be 'auto', 'gh' or 'static'"})
	}

	// Validate logging
	switch cfg.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, ValidationError{"logging.level", "must be one of debug, info, warn, error"})
	}
	switch cfg.Logging.Format {
	case "console", "json":
	default:
		errs = append(errs, ValidationError{"logging.format", "must be 'console' or 'json'"})
	}

	if cfg.RateLimits.StoreRPS < 0 {
		errs = append(errs, ValidationError{"rate_limits.store_requests_per_second", "must not be negative"})
	}

	return errs
}
