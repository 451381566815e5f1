package identity

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Fallback tries a primary provider, then a fallback
type Fallback struct {
	primary  Provider
	fallback Provider
	logger   *zap.Logger
}

// NewFallback creates a provider chain. Either side may be nil.
func NewFallback(primary, fallback Provider, logger *zap.Logger) *Fallback {
	return &Fallback{primary: primary, fallback: fallback, logger: logger}
}

// Current returns the first principal either provider yields
func (f *Fallback) Current(ctx context.Context) (Principal, error) {
	var primaryErr error
	if f.primary != nil {
		p, err := f.primary.Current(ctx)
		if err == nil {
			return p, nil
		}
		primaryErr = err
		f.logger.Debug("Primary identity provider failed, trying fallback", zap.Error(err))
	}

	if f.fallback != nil {
		p, err := f.fallback.Current(ctx)
		if err == nil {
			return p, nil
		}
		if primaryErr != nil {
			return Principal{}, fmt.Errorf("%w (primary: %v)", err, primaryErr)
		}
		return Principal{}, err
	}

	if primaryErr != nil {
		return Principal{}, primaryErr
	}
	return Principal{}, ErrNoIdentity
}
