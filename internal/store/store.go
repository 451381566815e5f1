// Package store defines the document store the tracker keeps issues in.
//
// The store is deliberately thin: create, list and partial update over a
// named collection. Filtering and duplicate detection run over the full list
// in memory.
package store

import (
	"context"
	"errors"

	"github.com/Kavirubc/gh-tracker/pkg/models"
)

// DefaultCollection is the collection issues live in unless configured
const DefaultCollection = "issues"

// ErrNotFound is returned when an update targets an unknown ID
var ErrNotFound = errors.New("issue not found")

// Store is the document store contract
type Store interface {
	// Create stores issue and returns its new opaque ID. Any ID already
	// set on issue is ignored.
	Create(ctx context.Context, collection string, issue models.Issue) (string, error)

	// List returns every issue in the collection with its ID set.
	// An unknown collection is empty, not an error.
	List(ctx context.Context, collection string) ([]models.Issue, error)

	// Update writes the non-nil patch fields onto the issue with the given ID.
	Update(ctx context.Context, collection, id string, patch models.IssuePatch) error

	// Close releases resources
	Close() error
}

// Find returns the issue with the given ID from a listed collection
func Find(ctx context.Context, s Store, collection, id string) (*models.Issue, error) {
	issues, err := s.List(ctx, collection)
	if err != nil {
		return nil, err
	}
	for i := range issues {
		if issues[i].ID == id {
			return &issues[i], nil
		}
	}
	return nil, ErrNotFound
}
