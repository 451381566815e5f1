package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Priority is the urgency assigned to an issue
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// Priorities lists every valid priority from lowest to highest
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

// String returns the display form of the priority
func (p Priority) String() string {
	return string(p)
}

// IsValid reports whether p is a known priority
func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	default:
		return false
	}
}

// ParsePriority parses a priority case-insensitively
func ParsePriority(s string) (Priority, error) {
	switch normalizeEnum(s) {
	case "low":
		return PriorityLow, nil
	case "medium":
		return PriorityMedium, nil
	case "high":
		return PriorityHigh, nil
	}
	return "", fmt.Errorf("invalid priority %q: must be one of Low, Medium, High", s)
}

// Issue is a tracked work item as held by the document store.
// Only Title and Status are read by the duplicate and transition checks;
// the remaining fields are payload carried for the application.
type Issue struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      Status    `json:"status"`
	Priority    Priority  `json:"priority"`
	AssignedTo  string    `json:"assigned_to"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// IssuePatch holds the fields of a partial update. Nil fields are left
// untouched by the store.
type IssuePatch struct {
	Status     *Status    `json:"status,omitempty"`
	AssignedTo *string    `json:"assigned_to,omitempty"`
	UpdatedAt  *time.Time `json:"updated_at,omitempty"`
}

// Apply returns a copy of issue with the patch fields written over it
func (p IssuePatch) Apply(issue Issue) Issue {
	if p.Status != nil {
		issue.Status = *p.Status
	}
	if p.AssignedTo != nil {
		issue.AssignedTo = *p.AssignedTo
	}
	if p.UpdatedAt != nil {
		issue.UpdatedAt = *p.UpdatedAt
	}
	return issue
}

// IsEmpty reports whether the patch changes nothing
func (p IssuePatch) IsEmpty() bool {
	return p.Status == nil && p.AssignedTo == nil && p.UpdatedAt == nil
}

// NewIssueID returns a fresh opaque identifier for a stored issue
func NewIssueID() string {
	return uuid.NewString()
}

// ShortID returns the first eight characters of an ID for display
func ShortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}
