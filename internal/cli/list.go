package cli

import (
	"context"
	"fmt"

	"github.com/Kavirubc/gh-tracker/internal/workflow"
	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	var (
		status   string
		priority string
		assignee string
		contains []string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List issues, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			filter, err := workflow.ParseFilter(status, priority, assignee, contains)
			if err != nil {
				return err
			}

			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.Close()

			issues, err := a.svc.List(ctx, filter)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(issues) == 0 {
				fmt.Fprintln(out, "No issues found")
				return nil
			}
			for i := range issues {
				printIssue(out, &issues[i])
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&status, "status", "All", "filter by status (Open, In Progress, Done or All)")
	cmd.Flags().StringVar(&priority, "priority", "All", "filter by priority (Low, Medium, High or All)")
	cmd.Flags().StringVar(&assignee, "assignee", "", "filter by assignee")
	cmd.Flags().StringSliceVar(&contains, "contains", nil, "title must contain any of these")

	return cmd
}
