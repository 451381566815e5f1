package workflow

import (
	"context"
	"sort"

	"github.com/Kavirubc/gh-tracker/pkg/models"
)

// List returns the issues matching f, newest first
func (s *Service) List(ctx context.Context, f Filter) ([]models.Issue, error) {
	issues, err := s.store.List(ctx, s.collection)
	if err != nil {
		return nil, opFailed("list issues", err)
	}

	sort.SliceStable(issues, func(i, j int) bool {
		return issues[i].CreatedAt.After(issues[j].CreatedAt)
	})
	return f.Apply(issues), nil
}

// Get returns one issue by ID
func (s *Service) Get(ctx context.Context, id string) (*models.Issue, error) {
	issues, err := s.store.List(ctx, s.collection)
	if err != nil {
		return nil, opFailed("list issues", err)
	}
	return findIssue(issues, id)
}
