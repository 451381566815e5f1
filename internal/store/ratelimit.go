package store

import (
	"context"
	"fmt"

	"github.com/Kavirubc/gh-tracker/pkg/models"
	"golang.org/x/time/rate"
)

// RateLimited throttles calls to a remote store
type RateLimited struct {
	next    Store
	limiter *rate.Limiter
}

// NewRateLimited wraps next so that at most rps calls per second reach it.
// A non-positive rps returns next unchanged.
func NewRateLimited(next Store, rps int) Store {
	if rps <= 0 {
		return next
	}
	return &RateLimited{
		next:    next,
		limiter: rate.NewLimiter(rate.Limit(rps), rps),
	}
}

func (r *RateLimited) wait(ctx context.Context) error {
	if err := r.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}
	return nil
}

// Create waits for a token then delegates
func (r *RateLimited) Create(ctx context.Context, collection string, issue models.Issue) (string, error) {
	if err := r.wait(ctx); err != nil {
		return "", err
	}
	return r.next.Create(ctx, collection, issue)
}

// List waits for a token then delegates
func (r *RateLimited) List(ctx context.Context, collection string) ([]models.Issue, error) {
	if err := r.wait(ctx); err != nil {
		return nil, err
	}
	return r.next.List(ctx, collection)
}

// Update waits for a token then delegates
func (r *RateLimited) Update(ctx context.Context, collection, id string, patch models.IssuePatch) error {
	if err := r.wait(ctx); err != nil {
		return err
	}
	return r.next.Update(ctx, collection, id, patch)
}

// Close closes the wrapped store
func (r *RateLimited) Close() error {
	return r.next.Close()
}
