package models

import (
	"testing"
	"time"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		input   string
		want    Status
		wantErr bool
	}{
		{"Open", StatusOpen, false},
		{"open", StatusOpen, false},
		{"In Progress", StatusInProgress, false},
		{"InProgress", StatusInProgress, false},
		{"in_progress", StatusInProgress, false},
		{"in-progress", StatusInProgress, false},
		{" DONE ", StatusDone, false},
		{"closed", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseStatus(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseStatus(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseStatus(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestStatus_IsValid(t *testing.T) {
	for _, s := range Statuses {
		if !s.IsValid() {
			t.Errorf("%q.IsValid() = false, want true", s)
		}
	}
	if Status("Blocked").IsValid() {
		t.Errorf("Blocked.IsValid() = true, want false")
	}
}

func TestParsePriority(t *testing.T) {
	tests := []struct {
		input   string
		want    Priority
		wantErr bool
	}{
		{"Low", PriorityLow, false},
		{"medium", PriorityMedium, false},
		{"HIGH", PriorityHigh, false},
		{"urgent", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParsePriority(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParsePriority(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParsePriority(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestIssuePatch_Apply(t *testing.T) {
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	issue := Issue{
		ID:         "abc",
		Title:      "Login button broken",
		Status:     StatusOpen,
		Priority:   PriorityHigh,
		AssignedTo: "dev@example.com",
		CreatedAt:  created,
		UpdatedAt:  created,
	}

	status := StatusInProgress
	updated := created.Add(time.Hour)
	got := IssuePatch{Status: &status, UpdatedAt: &updated}.Apply(issue)

	if got.Status != StatusInProgress {
		t.Errorf("Status = %v, want %v", got.Status, StatusInProgress)
	}
	if !got.UpdatedAt.Equal(updated) {
		t.Errorf("UpdatedAt = %v, want %v", got.UpdatedAt, updated)
	}
	if got.AssignedTo != issue.AssignedTo || got.Title != issue.Title || !got.CreatedAt.Equal(created) {
		t.Errorf("Apply() touched fields outside the patch: %+v", got)
	}
	if issue.Status != StatusOpen {
		t.Errorf("Apply() mutated the original issue")
	}
}

func TestIssuePatch_IsEmpty(t *testing.T) {
	if !(IssuePatch{}).IsEmpty() {
		t.Errorf("IsEmpty() = false for zero patch")
	}
	s := StatusDone
	if (IssuePatch{Status: &s}).IsEmpty() {
		t.Errorf("IsEmpty() = true for status patch")
	}
}

func TestNewIssueID(t *testing.T) {
	id1 := NewIssueID()
	id2 := NewIssueID()

	if id1 == id2 {
		t.Errorf("NewIssueID returned duplicate IDs: %v", id1)
	}
	if len(id1) != 36 {
		t.Errorf("NewIssueID invalid length: %d", len(id1))
	}
	if got := ShortID(id1); len(got) != 8 {
		t.Errorf("ShortID length = %d, want 8", len(got))
	}
	if got := ShortID("abc"); got != "abc" {
		t.Errorf("ShortID(abc) = %v, want abc", got)
	}
}
