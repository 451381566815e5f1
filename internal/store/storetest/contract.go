// Package storetest holds behaviour every store.Store backend must share.
package storetest

import (
	"context"
	"testing"
	"time"

	"github.com/Kavirubc/gh-tracker/internal/store"
	"github.com/Kavirubc/gh-tracker/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Factory opens a fresh, empty store for one subtest
type Factory func(t *testing.T) store.Store

// Run exercises the create/list/update contract against a backend
func Run(t *testing.T, open Factory) {
	t.Run("list unknown collection is empty", func(t *testing.T) {
		s := open(t)
		issues, err := s.List(context.Background(), "nothing-here")
		require.NoError(t, err)
		assert.Empty(t, issues)
	})

	t.Run("create assigns id and round trips fields", func(t *testing.T) {
		s := open(t)
		ctx := context.Background()
		created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

		in := sampleIssue("Login button not working", created)
		in.ID = "ignored"
		id, err := s.Create(ctx, store.DefaultCollection, in)
		require.NoError(t, err)
		require.NotEmpty(t, id)
		assert.NotEqual(t, "ignored", id)

		issues, err := s.List(ctx, store.DefaultCollection)
		require.NoError(t, err)
		require.Len(t, issues, 1)

		got := issues[0]
		assert.Equal(t, id, got.ID)
		assert.Equal(t, in.Title, got.Title)
		assert.Equal(t, in.Description, got.Description)
		assert.Equal(t, in.Status, got.Status)
		assert.Equal(t, in.Priority, got.Priority)
		assert.Equal(t, in.AssignedTo, got.AssignedTo)
		assert.Equal(t, in.CreatedBy, got.CreatedBy)
		assert.True(t, in.CreatedAt.Equal(got.CreatedAt), "CreatedAt = %v, want %v", got.CreatedAt, in.CreatedAt)
		assert.True(t, in.UpdatedAt.Equal(got.UpdatedAt), "UpdatedAt = %v, want %v", got.UpdatedAt, in.UpdatedAt)
	})

	t.Run("ids are unique", func(t *testing.T) {
		s := open(t)
		ctx := context.Background()
		now := time.Now().UTC().Truncate(time.Second)

		first, err := s.Create(ctx, store.DefaultCollection, sampleIssue("one", now))
		require.NoError(t, err)
		second, err := s.Create(ctx, store.DefaultCollection, sampleIssue("two", now))
		require.NoError(t, err)
		assert.NotEqual(t, first, second)

		issues, err := s.List(ctx, store.DefaultCollection)
		require.NoError(t, err)
		assert.Len(t, issues, 2)
	})

	t.Run("collections are isolated", func(t *testing.T) {
		s := open(t)
		ctx := context.Background()

		_, err := s.Create(ctx, "alpha", sampleIssue("only in alpha", time.Now().UTC()))
		require.NoError(t, err)

		issues, err := s.List(ctx, "beta")
		require.NoError(t, err)
		assert.Empty(t, issues)
	})

	t.Run("update writes only patched fields", func(t *testing.T) {
		s := open(t)
		ctx := context.Background()
		created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

		id, err := s.Create(ctx, store.DefaultCollection, sampleIssue("Crash on save", created))
		require.NoError(t, err)

		status := models.StatusInProgress
		updated := created.Add(2 * time.Hour)
		require.NoError(t, s.Update(ctx, store.DefaultCollection, id, models.IssuePatch{
			Status:    &status,
			UpdatedAt: &updated,
		}))

		got, err := store.Find(ctx, s, store.DefaultCollection, id)
		require.NoError(t, err)
		assert.Equal(t, models.StatusInProgress, got.Status)
		assert.True(t, updated.Equal(got.UpdatedAt), "UpdatedAt = %v, want %v", got.UpdatedAt, updated)
		assert.Equal(t, "Crash on save", got.Title)
		assert.Equal(t, "dev@example.com", got.AssignedTo)
		assert.True(t, created.Equal(got.CreatedAt))
	})

	t.Run("update unknown id", func(t *testing.T) {
		s := open(t)
		ctx := context.Background()

		_, err := s.Create(ctx, store.DefaultCollection, sampleIssue("exists", time.Now().UTC()))
		require.NoError(t, err)

		status := models.StatusDone
		err = s.Update(ctx, store.DefaultCollection, models.NewIssueID(), models.IssuePatch{Status: &status})
		assert.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("find unknown id", func(t *testing.T) {
		s := open(t)
		_, err := store.Find(context.Background(), s, store.DefaultCollection, "missing")
		assert.ErrorIs(t, err, store.ErrNotFound)
	})
}

func sampleIssue(title string, at time.Time) models.Issue {
	return models.Issue{
		Title:       title,
		Description: "steps to reproduce",
		Status:      models.StatusOpen,
		Priority:    models.PriorityHigh,
		AssignedTo:  "dev@example.com",
		CreatedBy:   "reporter@example.com",
		CreatedAt:   at,
		UpdatedAt:   at,
	}
}
