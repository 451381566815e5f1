package workflow

import (
	"testing"

	"github.com/Kavirubc/gh-tracker/pkg/models"
)

func TestParseFilter(t *testing.T) {
	tests := []struct {
		name     string
		status   string
		priority string
		wantErr  bool
		wantNil  bool
	}{
		{"empty", "", "", false, true},
		{"all", "All", "all", false, true},
		{"set", "Done", "Low", false, false},
		{"bad status", "Closed", "", true, false},
		{"bad priority", "", "urgent", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := ParseFilter(tt.status, tt.priority, "", nil)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFilter() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if (f.Status == nil) != tt.wantNil || (f.Priority == nil) != tt.wantNil {
				t.Errorf("ParseFilter() = %+v, want unset conditions %v", f, tt.wantNil)
			}
		})
	}
}

func TestFilter_Matches(t *testing.T) {
	issue := &models.Issue{
		Title:      "Login button broken",
		Status:     models.StatusInProgress,
		Priority:   models.PriorityHigh,
		AssignedTo: "Dev@Example.com",
	}

	open := models.StatusOpen
	inProgress := models.StatusInProgress
	high := models.PriorityHigh
	low := models.PriorityLow

	tests := []struct {
		name   string
		filter Filter
		want   bool
	}{
		{"empty filter", Filter{}, true},
		{"status match", Filter{Status: &inProgress}, true},
		{"status mismatch", Filter{Status: &open}, false},
		{"priority match", Filter{Priority: &high}, true},
		{"priority mismatch", Filter{Priority: &low}, false},
		{"assignee case insensitive", Filter{AssignedTo: "dev@example.com"}, true},
		{"assignee mismatch", Filter{AssignedTo: "other@example.com"}, false},
		{"title contains any", Filter{TitleContains: []string{"signup", "BUTTON"}}, true},
		{"title contains none", Filter{TitleContains: []string{"signup"}}, false},
		{"all conditions", Filter{Status: &inProgress, Priority: &high, TitleContains: []string{"login"}}, true},
		{"one condition fails", Filter{Status: &inProgress, Priority: &low}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.filter.Matches(issue); got != tt.want {
				t.Errorf("Matches() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestContainsAny(t *testing.T) {
	if !containsAny("Login Crash", []string{"crash"}) {
		t.Error("expected match")
	}
	if containsAny("Login Crash", []string{"signup"}) {
		t.Error("unexpected match")
	}
	if containsAny("Login Crash", nil) {
		t.Error("unexpected match with no substrings")
	}
}
