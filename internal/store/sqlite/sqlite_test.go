package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/Kavirubc/gh-tracker/internal/store"
	"github.com/Kavirubc/gh-tracker/internal/store/storetest"
	"github.com/Kavirubc/gh-tracker/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "data", "issues.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestStore_Contract(t *testing.T) {
	storetest.Run(t, func(t *testing.T) store.Store {
		return openTemp(t)
	})
}

func TestStore_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "issues.db")
	ctx := context.Background()
	now := time.Date(2026, 5, 1, 9, 30, 0, 123, time.UTC)

	s, err := Open(path)
	require.NoError(t, err)
	id, err := s.Create(ctx, store.DefaultCollection, models.Issue{
		Title:     "Persisted issue",
		Status:    models.StatusOpen,
		Priority:  models.PriorityLow,
		CreatedAt: now,
		UpdatedAt: now,
	})
	require.NoError(t, err)
	require.NoError(t, s.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := store.Find(ctx, reopened, store.DefaultCollection, id)
	require.NoError(t, err)
	assert.Equal(t, "Persisted issue", got.Title)
	assert.True(t, now.Equal(got.CreatedAt))
}

func TestStore_UnusualCollectionNames(t *testing.T) {
	s := openTemp(t)
	ctx := context.Background()

	names := []string{"order", "select", "group", "with-dash", "9lives", `quo"te`, "issues; DROP TABLE x"}
	for _, name := range names {
		id, err := s.Create(ctx, name, models.Issue{Title: name, Status: models.StatusOpen, Priority: models.PriorityLow})
		require.NoError(t, err, "Create(%q)", name)

		issues, err := s.List(ctx, name)
		require.NoError(t, err, "List(%q)", name)
		require.Len(t, issues, 1, "List(%q)", name)
		assert.Equal(t, id, issues[0].ID)
		assert.Equal(t, name, issues[0].Title)

		status := models.StatusInProgress
		require.NoError(t, s.Update(ctx, name, id, models.IssuePatch{Status: &status}), "Update(%q)", name)
	}

	// The injection-shaped name stayed a single table.
	issues, err := s.List(ctx, "issues")
	require.NoError(t, err)
	assert.Empty(t, issues)
}

func TestStore_EmptyCollection(t *testing.T) {
	s := openTemp(t)
	ctx := context.Background()

	_, err := s.Create(ctx, "", models.Issue{Title: "bad"})
	assert.Error(t, err)

	issues, err := s.List(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, issues)

	assert.ErrorIs(t, s.Update(ctx, "", "id", models.IssuePatch{}), store.ErrNotFound)
}

func TestStore_EmptyPatchOnExisting(t *testing.T) {
	s := openTemp(t)
	ctx := context.Background()

	id, err := s.Create(ctx, store.DefaultCollection, models.Issue{Title: "keep", Status: models.StatusOpen, Priority: models.PriorityMedium})
	require.NoError(t, err)

	require.NoError(t, s.Update(ctx, store.DefaultCollection, id, models.IssuePatch{}))

	got, err := store.Find(ctx, s, store.DefaultCollection, id)
	require.NoError(t, err)
	assert.Equal(t, models.StatusOpen, got.Status)
}

func TestQuoteIdent(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"issues", `"issues"`},
		{"order", `"order"`},
		{"with-dash", `"with-dash"`},
		{`quo"te`, `"quo""te"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := quoteIdent(tt.name); got != tt.want {
				t.Errorf("quoteIdent(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}
