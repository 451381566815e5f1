package models

import (
	"fmt"
	"strings"
)

// Status is the lifecycle state of an issue
type Status string

const (
	StatusOpen       Status = "Open"
	StatusInProgress Status = "In Progress"
	StatusDone       Status = "Done"
)

// Statuses lists every valid status in lifecycle order
var Statuses = []Status{StatusOpen, StatusInProgress, StatusDone}

// String returns the display form of the status
func (s Status) String() string {
	return string(s)
}

// IsValid reports whether s is one of the three lifecycle states
func (s Status) IsValid() bool {
	switch s {
	case StatusOpen, StatusInProgress, StatusDone:
		return true
	default:
		return false
	}
}

// ParseStatus accepts the display form, the enum name, or a snake/kebab
// variant, case-insensitively.
func ParseStatus(s string) (Status, error) {
	switch normalizeEnum(s) {
	case "open":
		return StatusOpen, nil
	case "inprogress":
		return StatusInProgress, nil
	case "done":
		return StatusDone, nil
	}
	return "", fmt.Errorf("invalid status %q: must be one of Open, In Progress, Done", s)
}

func normalizeEnum(s string) string {
	r := strings.NewReplacer(" ", "", "_", "", "-", "")
	return r.Replace(strings.ToLower(strings.TrimSpace(s)))
}
