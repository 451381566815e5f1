package cli

import (
	"fmt"

	"github.com/Kavirubc/gh-tracker/internal/config"
	"github.com/Kavirubc/gh-tracker/internal/identity"
	"github.com/Kavirubc/gh-tracker/internal/logging"
	"github.com/Kavirubc/gh-tracker/internal/similarity"
	"github.com/Kavirubc/gh-tracker/internal/store"
	"github.com/Kavirubc/gh-tracker/internal/store/qdrant"
	"github.com/Kavirubc/gh-tracker/internal/store/sqlite"
	"github.com/Kavirubc/gh-tracker/internal/workflow"
	"go.uber.org/zap"
)

// app holds everything a command needs
type app struct {
	cfg      *config.Config
	logger   *zap.Logger
	store    store.Store
	identity identity.Provider
	svc      *workflow.Service
}

// loadConfig reads the config file if one is found, otherwise the defaults
func loadConfig() (*config.Config, string, error) {
	cfgPath := config.FindConfigPath(cfgFile)
	if cfgPath == "" {
		return config.Default(), "", nil
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, cfgPath, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, cfgPath, nil
}

func newApp() (*app, error) {
	cfg, _, err := loadConfig()
	if err != nil {
		return nil, err
	}

	if errs := config.Validate(cfg); len(errs) > 0 {
		for _, e := range errs {
			fmt.Printf("config error: %v\n", e)
		}
		return nil, fmt.Errorf("invalid configuration")
	}

	logger := logging.New(cfg.Logging)

	s, err := openStore(cfg, logger)
	if err != nil {
		return nil, err
	}

	id, err := identity.New(cfg.Identity, logger)
	if err != nil {
		_ = s.Close()
		return nil, fmt.Errorf("failed to create identity provider: %w", err)
	}

	svc, err := workflow.New(workflow.Options{
		Store:    s,
		Identity: id,
		Engine: similarity.New(similarity.Options{
			Threshold:      cfg.Similarity.Threshold,
			MinTitleLength: cfg.Similarity.MinTitleLength,
		}),
		Collection: cfg.Store.Collection,
		Logger:     logger,
	})
	if err != nil {
		_ = s.Close()
		return nil, fmt.Errorf("failed to create service: %w", err)
	}

	return &app{cfg: cfg, logger: logger, store: s, identity: id, svc: svc}, nil
}

// openStore builds the configured backend behind the rate limiter
func openStore(cfg *config.Config, logger *zap.Logger) (store.Store, error) {
	var (
		s   store.Store
		err error
	)
	switch cfg.Store.Backend {
	case config.BackendMemory:
		s = store.NewMemory()
	case config.BackendSQLite:
		s, err = sqlite.Open(cfg.Store.Path)
	case config.BackendQdrant:
		s, err = qdrant.NewStore(&cfg.Store.Qdrant)
	default:
		return nil, fmt.Errorf("unknown store backend: %s", cfg.Store.Backend)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open %s store: %w", cfg.Store.Backend, err)
	}

	logger.Debug("Opened store",
		zap.String("backend", cfg.Store.Backend),
		zap.String("collection", cfg.Store.Collection),
		zap.Int("rps", cfg.RateLimits.StoreRPS))
	return store.NewRateLimited(s, cfg.RateLimits.StoreRPS), nil
}

func (a *app) Close() {
	if err := a.store.Close(); err != nil {
		a.logger.Warn("Failed to close store", zap.Error(err))
	}
	_ = a.logger.Sync()
}
