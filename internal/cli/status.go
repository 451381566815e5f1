package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/Kavirubc/gh-tracker/internal/transition"
	"github.com/Kavirubc/gh-tracker/pkg/models"
	"github.com/spf13/cobra"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <id> <status>",
		Short: "Move an issue to a new status",
		Long: `Move an issue to Open, In Progress or Done. The ID may be shortened to
any unique prefix. Open issues must pass through In Progress before Done.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			requested, err := models.ParseStatus(strings.Join(args[1:], " "))
			if err != nil {
				return err
			}

			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.Close()

			out := cmd.OutOrStdout()
			issue, err := a.svc.AttemptTransition(ctx, args[0], requested)
			if err != nil {
				if transition.IsRejection(err) {
					fmt.Fprintf(out, "%s %v\n", red("Rejected:"), err)
					return shown(err)
				}
				return err
			}

			fmt.Fprintf(out, "%s %s is now %s\n", green("✓"),
				cyan(models.ShortID(issue.ID)), statusColor(issue.Status)(issue.Status))
			return nil
		},
	}
}

func newAssignCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "assign <id> <email>",
		Short: "Reassign an issue",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.Close()

			issue, err := a.svc.Reassign(ctx, args[0], args[1])
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s assigned to %s\n", green("✓"),
				cyan(models.ShortID(issue.ID)), issue.AssignedTo)
			return nil
		},
	}
}
