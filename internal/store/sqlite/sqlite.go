// Package sqlite implements store.Store on a local SQLite file
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Kavirubc/gh-tracker/internal/store"
	"github.com/Kavirubc/gh-tracker/pkg/models"
	_ "modernc.org/sqlite"
)

const tableSchema = `
CREATE TABLE IF NOT EXISTS %s (
	id          TEXT PRIMARY KEY,
	title       TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	status      TEXT NOT NULL,
	priority    TEXT NOT NULL,
	assigned_to TEXT NOT NULL DEFAULT '',
	created_by  TEXT NOT NULL DEFAULT '',
	created_at  TEXT NOT NULL,
	updated_at  TEXT NOT NULL,
	seq         INTEGER NOT NULL
)`

// Store keeps each collection in its own table
type Store struct {
	db *sql.DB
}

// Open opens or creates the database at path
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// A single connection serializes writers on the file.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database
func (s *Store) Close() error {
	return s.db.Close()
}

// quoteIdent quotes a collection name for use as a table identifier.
// Any name is representable, reserved words included. SQLite compares
// identifiers case-insensitively, so collections differing only in case share
// a table.
func quoteIdent(collection string) string {
	return `"` + strings.ReplaceAll(collection, `"`, `""`) + `"`
}

func (s *Store) ensureTable(ctx context.Context, collection string) error {
	if _, err := s.db.ExecContext(ctx, fmt.Sprintf(tableSchema, quoteIdent(collection))); err != nil {
		return fmt.Errorf("failed to create table %q: %w", collection, err)
	}
	return nil
}

func (s *Store) tableExists(ctx context.Context, collection string) (bool, error) {
	var name string
	err := s.db.QueryRowContext(ctx,
		`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ? COLLATE NOCASE`, collection).Scan(&name)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check table %q: %w", collection, err)
	}
	return true, nil
}

// Create inserts issue under a fresh UUID
func (s *Store) Create(ctx context.Context, collection string, issue models.Issue) (string, error) {
	if collection == "" {
		return "", fmt.Errorf("collection name is required")
	}
	if err := s.ensureTable(ctx, collection); err != nil {
		return "", err
	}

	table := quoteIdent(collection)
	issue.ID = models.NewIssueID()
	_, err := s.db.ExecContext(ctx, fmt.Sprintf(`
		INSERT INTO %s (id, title, description, status, priority, assigned_to, created_by, created_at, updated_at, seq)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, (SELECT COALESCE(MAX(seq), 0) + 1 FROM %s))`, table, table),
		issue.ID,
		issue.Title,
		issue.Description,
		string(issue.Status),
		string(issue.Priority),
		issue.AssignedTo,
		issue.CreatedBy,
		formatTime(issue.CreatedAt),
		formatTime(issue.UpdatedAt),
	)
	if err != nil {
		return "", fmt.Errorf("failed to insert issue: %w", err)
	}
	return issue.ID, nil
}

// List returns all issues in insertion order
func (s *Store) List(ctx context.Context, collection string) ([]models.Issue, error) {
	exists, err := s.tableExists(ctx, collection)
	if err != nil || !exists {
		return nil, err
	}

	table := quoteIdent(collection)
	rows, err := s.db.QueryContext(ctx, fmt.Sprintf(`
		SELECT id, title, description, status, priority, assigned_to, created_by, created_at, updated_at
		FROM %s ORDER BY seq`, table))
	if err != nil {
		return nil, fmt.Errorf("failed to query issues: %w", err)
	}
	defer rows.Close()

	var issues []models.Issue
	for rows.Next() {
		var (
			issue                models.Issue
			status, priority     string
			createdAt, updatedAt string
		)
		if err := rows.Scan(&issue.ID, &issue.Title, &issue.Description, &status, &priority,
			&issue.AssignedTo, &issue.CreatedBy, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan issue: %w", err)
		}
		issue.Status = models.Status(status)
		issue.Priority = models.Priority(priority)
		if issue.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, fmt.Errorf("issue %s created_at: %w", issue.ID, err)
		}
		if issue.UpdatedAt, err = parseTime(updatedAt); err != nil {
			return nil, fmt.Errorf("issue %s updated_at: %w", issue.ID, err)
		}
		issues = append(issues, issue)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read issues: %w", err)
	}
	return issues, nil
}

// Update writes the patch fields in a single statement
func (s *Store) Update(ctx context.Context, collection, id string, patch models.IssuePatch) error {
	exists, err := s.tableExists(ctx, collection)
	if err != nil {
		return err
	}
	if !exists {
		return store.ErrNotFound
	}

	table := quoteIdent(collection)
	sets := []string{}
	args := []any{}
	if patch.Status != nil {
		sets = append(sets, "status = ?")
		args = append(args, string(*patch.Status))
	}
	if patch.AssignedTo != nil {
		sets = append(sets, "assigned_to = ?")
		args = append(args, *patch.AssignedTo)
	}
	if patch.UpdatedAt != nil {
		sets = append(sets, "updated_at = ?")
		args = append(args, formatTime(*patch.UpdatedAt))
	}

	query := fmt.Sprintf("UPDATE %s SET id = id", table)
	for _, set := range sets {
		query += ", " + set
	}
	query += " WHERE id = ?"
	args = append(args, id)

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update issue: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, s)
}
