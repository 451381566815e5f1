package workflow

import (
	"context"
	"fmt"
	"strings"

	"github.com/Kavirubc/gh-tracker/pkg/models"
	"go.uber.org/zap"
)

// CreateRequest is a submitted new-issue form
type CreateRequest struct {
	Title       string
	Description string
	Priority    string
	AssignedTo  string

	// Force creates the issue even when similar issues exist
	Force bool
}

// Create validates the request, checks for duplicates and stores the issue.
//
// When similar issues exist and Force is false nothing is stored: the
// result carries the matches with NeedsConfirmation set so the caller can
// ask the user and resubmit with Force.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*models.CreateResult, error) {
	title := strings.TrimSpace(req.Title)
	description := strings.TrimSpace(req.Description)
	assignee := strings.TrimSpace(req.AssignedTo)

	if title == "" || description == "" || assignee == "" {
		return nil, ErrMissingFields
	}

	priority := models.PriorityMedium
	if strings.TrimSpace(req.Priority) != "" {
		p, err := models.ParsePriority(req.Priority)
		if err != nil {
			return nil, &FieldError{Field: "priority", Message: err.Error()}
		}
		priority = p
	}

	if !req.Force {
		similar, err := s.CheckTitle(ctx, req.Title)
		if err != nil {
			return nil, err
		}
		if len(similar) > 0 {
			s.logger.Info("Similar issues found, confirmation required",
				zap.String("title", title),
				zap.Int("similar", len(similar)))
			return &models.CreateResult{Similar: similar, NeedsConfirmation: true}, nil
		}
	}

	creator, err := s.currentUser(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	issue := models.Issue{
		Title:       title,
		Description: description,
		Status:      models.StatusOpen,
		Priority:    priority,
		AssignedTo:  assignee,
		CreatedBy:   creator,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	id, err := s.store.Create(ctx, s.collection, issue)
	if err != nil {
		return nil, opFailed("create issue", err)
	}
	issue.ID = id

	s.logger.Info("Issue created",
		zap.String("id", id),
		zap.String("title", title),
		zap.Bool("forced", req.Force))
	return &models.CreateResult{Issue: &issue}, nil
}

func (s *Service) currentUser(ctx context.Context) (string, error) {
	if s.identity == nil {
		return "", fmt.Errorf("identity provider not configured")
	}
	p, err := s.identity.Current(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to resolve current user: %w", err)
	}
	return p.ID(), nil
}
