package store

import (
	"context"
	"sync"

	"github.com/Kavirubc/gh-tracker/pkg/models"
)

// Memory is an in-process Store. Issues are listed in insertion order.
type Memory struct {
	mu          sync.RWMutex
	collections map[string]*memoryCollection
}

type memoryCollection struct {
	order []string
	byID  map[string]models.Issue
}

// NewMemory creates an empty in-memory store
func NewMemory() *Memory {
	return &Memory{collections: make(map[string]*memoryCollection)}
}

// Create stores a copy of issue under a fresh UUID
func (m *Memory) Create(ctx context.Context, collection string, issue models.Issue) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.collections[collection]
	if !ok {
		c = &memoryCollection{byID: make(map[string]models.Issue)}
		m.collections[collection] = c
	}

	issue.ID = models.NewIssueID()
	c.order = append(c.order, issue.ID)
	c.byID[issue.ID] = issue
	return issue.ID, nil
}

// List returns copies of every issue in insertion order
func (m *Memory) List(ctx context.Context, collection string) ([]models.Issue, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	c, ok := m.collections[collection]
	if !ok {
		return nil, nil
	}

	issues := make([]models.Issue, 0, len(c.order))
	for _, id := range c.order {
		issues = append(issues, c.byID[id])
	}
	return issues, nil
}

// Update applies patch to the stored issue
func (m *Memory) Update(ctx context.Context, collection, id string, patch models.IssuePatch) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.collections[collection]
	if !ok {
		return ErrNotFound
	}
	issue, ok := c.byID[id]
	if !ok {
		return ErrNotFound
	}

	c.byID[id] = patch.Apply(issue)
	return nil
}

// Close is a no-op
func (m *Memory) Close() error {
	return nil
}
