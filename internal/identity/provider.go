// Package identity resolves the authenticated user recorded as an issue's creator
package identity

import (
	"context"
	"errors"
	"fmt"

	"github.com/Kavirubc/gh-tracker/internal/config"
	"go.uber.org/zap"
)

// ErrNoIdentity is returned when no provider can name the current user
var ErrNoIdentity = errors.New("no authenticated user")

// Principal is the authenticated user
type Principal struct {
	Login  string `json:"login,omitempty"`
	Email  string `json:"email,omitempty"`
	Source string `json:"source"`
}

// ID returns the email-like identifier stored on issues
func (p Principal) ID() string {
	if p.Email != "" {
		return p.Email
	}
	return p.Login
}

// Provider supplies the current principal
type Provider interface {
	Current(ctx context.Context) (Principal, error)
}

// New builds the provider selected by cfg
func New(cfg config.IdentityConfig, logger *zap.Logger) (Provider, error) {
	switch cfg.Provider {
	case config.IdentityStatic:
		return NewStatic(cfg.Email), nil
	case config.IdentityGitHub:
		return NewGitHub(cfg.Host)
	case config.IdentityAuto, "":
		var primary Provider
		gh, err := NewGitHub(cfg.Host)
		if err != nil {
			logger.Debug("GitHub identity unavailable", zap.Error(err))
		} else {
			primary = gh
		}
		return NewFallback(primary, NewStatic(cfg.Email), logger), nil
	default:
		return nil, fmt.Errorf("unknown identity provider: %s", cfg.Provider)
	}
}
