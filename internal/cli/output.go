package cli

import (
	"fmt"
	"io"

	"github.com/Kavirubc/gh-tracker/pkg/models"
	"github.com/fatih/color"
)

var (
	cyan   = color.New(color.FgCyan, color.Bold).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	green  = color.New(color.FgGreen).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	gray   = color.New(color.FgHiBlack).SprintFunc()
)

func statusColor(s models.Status) func(a ...interface{}) string {
	switch s {
	case models.StatusOpen:
		return yellow
	case models.StatusInProgress:
		return cyan
	case models.StatusDone:
		return green
	default:
		return fmt.Sprint
	}
}

func priorityColor(p models.Priority) func(a ...interface{}) string {
	if p == models.PriorityHigh {
		return red
	}
	return fmt.Sprint
}

func printIssue(w io.Writer, issue *models.Issue) {
	fmt.Fprintf(w, "%s  %s %s %s\n",
		gray(models.ShortID(issue.ID)),
		statusColor(issue.Status)(fmt.Sprintf("%-12s", issue.Status)),
		priorityColor(issue.Priority)(fmt.Sprintf("%-7s", issue.Priority)),
		issue.Title)
}

func printIssueDetail(w io.Writer, issue *models.Issue) {
	fmt.Fprintf(w, "%s %s\n", cyan(models.ShortID(issue.ID)), issue.Title)
	fmt.Fprintf(w, "   Status: %s | Priority: %s | Assigned to: %s\n",
		statusColor(issue.Status)(issue.Status), issue.Priority, issue.AssignedTo)
	if issue.CreatedBy != "" {
		fmt.Fprintf(w, "   Created by %s at %s\n", issue.CreatedBy, issue.CreatedAt.Local().Format("2006-01-02 15:04"))
	}
}

func printMatches(w io.Writer, matches []models.Match) {
	fmt.Fprintf(w, "%s Found %d similar issue(s):\n", yellow("Warning:"), len(matches))
	for i, m := range matches {
		fmt.Fprintf(w, "%d. %s %s (%.0f%%)\n", i+1, gray(models.ShortID(m.Issue.ID)), m.Issue.Title, m.Score)
	}
}
