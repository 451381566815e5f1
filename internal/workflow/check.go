package workflow

import (
	"context"

	"github.com/Kavirubc/gh-tracker/pkg/models"
	"go.uber.org/zap"
)

// CheckTitle fetches the current issues and returns those similar to title.
// Titles shorter than the engine's minimum length return nil without
// touching the store.
func (s *Service) CheckTitle(ctx context.Context, title string) ([]models.Match, error) {
	if !s.engine.Eligible(title) {
		return nil, nil
	}

	existing, err := s.store.List(ctx, s.collection)
	if err != nil {
		return nil, opFailed("list issues", err)
	}

	matches := s.engine.Matches(title, existing)
	s.logger.Debug("Checked title for duplicates",
		zap.String("title", title),
		zap.Int("existing", len(existing)),
		zap.Int("similar", len(matches)))
	return matches, nil
}
