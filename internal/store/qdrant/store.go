package qdrant

import (
	"context"
	"fmt"
	"sort"

	"github.com/Kavirubc/gh-tracker/internal/store"
	"github.com/Kavirubc/gh-tracker/pkg/models"
	"github.com/qdrant/go-client/qdrant"
)

// scrollPageSize is the number of points fetched per scroll request
const scrollPageSize = 256

var _ store.Store = (*Store)(nil)

// Create upserts issue as a new point
func (s *Store) Create(ctx context.Context, collection string, issue models.Issue) (string, error) {
	if err := s.ensureCollection(ctx, collection); err != nil {
		return "", err
	}

	issue.ID = models.NewIssueID()
	_, err := s.qdrant.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: collection,
		Wait:           qdrant.PtrOf(true),
		Points:         []*qdrant.PointStruct{issueToPoint(&issue)},
	})
	if err != nil {
		return "", fmt.Errorf("upsert failed: %w", err)
	}
	return issue.ID, nil
}

// List scrolls the whole collection, oldest issue first
func (s *Store) List(ctx context.Context, collection string) ([]models.Issue, error) {
	exists, err := s.collectionExists(ctx, collection)
	if err != nil || !exists {
		return nil, err
	}

	var (
		issues []models.Issue
		offset *qdrant.PointId
	)
	for {
		// One extra point tells us where the next page starts.
		points, err := s.qdrant.Scroll(ctx, &qdrant.ScrollPoints{
			CollectionName: collection,
			Offset:         offset,
			Limit:          qdrant.PtrOf(uint32(scrollPageSize + 1)),
			WithPayload:    qdrant.NewWithPayload(true),
		})
		if err != nil {
			return nil, fmt.Errorf("scroll failed: %w", err)
		}

		page := points
		if len(points) > scrollPageSize {
			page = points[:scrollPageSize]
		}
		for _, p := range page {
			issues = append(issues, payloadToIssue(p.Id, p.Payload))
		}

		if len(points) <= scrollPageSize {
			break
		}
		offset = points[scrollPageSize].Id
	}

	sort.SliceStable(issues, func(i, j int) bool {
		return issues[i].CreatedAt.Before(issues[j].CreatedAt)
	})
	return issues, nil
}

// Update sets the patched payload keys on an existing point
func (s *Store) Update(ctx context.Context, collection, id string, patch models.IssuePatch) error {
	exists, err := s.collectionExists(ctx, collection)
	if err != nil {
		return err
	}
	if !exists {
		return store.ErrNotFound
	}

	found, err := s.qdrant.Get(ctx, &qdrant.GetPoints{
		CollectionName: collection,
		Ids:            []*qdrant.PointId{qdrant.NewIDUUID(id)},
	})
	if err != nil {
		return fmt.Errorf("get failed: %w", err)
	}
	if len(found) == 0 {
		return store.ErrNotFound
	}

	payload := patchToPayload(patch)
	if len(payload) == 0 {
		return nil
	}

	_, err = s.qdrant.SetPayload(ctx, &qdrant.SetPayloadPoints{
		CollectionName: collection,
		Wait:           qdrant.PtrOf(true),
		Payload:        payload,
		PointsSelector: qdrant.NewPointsSelector(qdrant.NewIDUUID(id)),
	})
	if err != nil {
		return fmt.Errorf("set payload failed: %w", err)
	}
	return nil
}
