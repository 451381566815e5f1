package workflow

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Kavirubc/gh-tracker/internal/store"
	"github.com/Kavirubc/gh-tracker/internal/transition"
	"github.com/Kavirubc/gh-tracker/pkg/models"
	"go.uber.org/zap"
)

// ErrAmbiguousID is returned when a short ID prefix names several issues
var ErrAmbiguousID = errors.New("ambiguous issue id")

// AttemptTransition moves the issue to requested if the policy allows it.
//
// A forbidden move returns the *transition.RejectedError unchanged and
// writes nothing. A self-transition is an allowed no-op and writes nothing.
// Otherwise status and updatedAt are written through the store. The
// read-check-write is not atomic: concurrent changes are last-write-wins.
func (s *Service) AttemptTransition(ctx context.Context, id string, requested models.Status) (*models.Issue, error) {
	issue, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := transition.Check(issue.Status, requested); err != nil {
		if transition.IsRejection(err) {
			s.logger.Info("Transition rejected",
				zap.String("id", issue.ID),
				zap.String("from", issue.Status.String()),
				zap.String("to", requested.String()))
		}
		return nil, err
	}

	if transition.IsNoop(issue.Status, requested) {
		return issue, nil
	}

	now := s.now()
	patch := models.IssuePatch{Status: &requested, UpdatedAt: &now}
	if err := s.store.Update(ctx, s.collection, issue.ID, patch); err != nil {
		return nil, opFailed("update issue", err)
	}

	s.logger.Info("Issue status changed",
		zap.String("id", issue.ID),
		zap.String("from", issue.Status.String()),
		zap.String("to", requested.String()))

	updated := patch.Apply(*issue)
	return &updated, nil
}

// Reassign changes who an issue is assigned to
func (s *Service) Reassign(ctx context.Context, id, assignee string) (*models.Issue, error) {
	assignee = strings.TrimSpace(assignee)
	if assignee == "" {
		return nil, &FieldError{Field: "assigned_to", Message: "required"}
	}

	issue, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	now := s.now()
	patch := models.IssuePatch{AssignedTo: &assignee, UpdatedAt: &now}
	if err := s.store.Update(ctx, s.collection, issue.ID, patch); err != nil {
		return nil, opFailed("update issue", err)
	}

	updated := patch.Apply(*issue)
	return &updated, nil
}

// findIssue resolves a full ID or a unique ID prefix
func findIssue(issues []models.Issue, id string) (*models.Issue, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, fmt.Errorf("issue id is required")
	}

	var found *models.Issue
	for i := range issues {
		if issues[i].ID == id {
			return &issues[i], nil
		}
		if strings.HasPrefix(issues[i].ID, id) {
			if found != nil {
				return nil, fmt.Errorf("%w: %s", ErrAmbiguousID, id)
			}
			found = &issues[i]
		}
	}
	if found == nil {
		return nil, fmt.Errorf("issue %s: %w", id, store.ErrNotFound)
	}
	return found, nil
}
