package workflow

import (
	"strings"

	"github.com/Kavirubc/gh-tracker/pkg/models"
)

// allValue is accepted by ParseFilter as "no filter"
const allValue = "all"

// Filter selects issues for listing.
// Set conditions are ANDed; values within TitleContains are ORed.
type Filter struct {
	Status        *models.Status
	Priority      *models.Priority
	AssignedTo    string
	TitleContains []string
}

// ParseFilter builds a Filter from user input. Empty strings and "All"
// leave a condition unset.
func ParseFilter(status, priority, assignee string, contains []string) (Filter, error) {
	var f Filter

	if s := strings.TrimSpace(status); s != "" && !strings.EqualFold(s, allValue) {
		parsed, err := models.ParseStatus(s)
		if err != nil {
			return Filter{}, &FieldError{Field: "status", Message: err.Error()}
		}
		f.Status = &parsed
	}

	if p := strings.TrimSpace(priority); p != "" && !strings.EqualFold(p, allValue) {
		parsed, err := models.ParsePriority(p)
		if err != nil {
			return Filter{}, &FieldError{Field: "priority", Message: err.Error()}
		}
		f.Priority = &parsed
	}

	f.AssignedTo = strings.TrimSpace(assignee)
	for _, c := range contains {
		if c = strings.TrimSpace(c); c != "" {
			f.TitleContains = append(f.TitleContains, c)
		}
	}
	return f, nil
}

// Matches reports whether issue satisfies every set condition
func (f Filter) Matches(issue *models.Issue) bool {
	if f.Status != nil && issue.Status != *f.Status {
		return false
	}
	if f.Priority != nil && issue.Priority != *f.Priority {
		return false
	}
	if f.AssignedTo != "" && !strings.EqualFold(issue.AssignedTo, f.AssignedTo) {
		return false
	}
	if len(f.TitleContains) > 0 && !containsAny(issue.Title, f.TitleContains) {
		return false
	}
	return true
}

// Apply returns the issues matching f in their original order
func (f Filter) Apply(issues []models.Issue) []models.Issue {
	out := make([]models.Issue, 0, len(issues))
	for i := range issues {
		if f.Matches(&issues[i]) {
			out = append(out, issues[i])
		}
	}
	return out
}

// containsAny checks if text contains any of the substrings (case-insensitive)
func containsAny(text string, substrings []string) bool {
	lowerText := strings.ToLower(text)
	for _, sub := range substrings {
		if strings.Contains(lowerText, strings.ToLower(sub)) {
			return true
		}
	}
	return false
}
