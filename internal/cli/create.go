package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/Kavirubc/gh-tracker/internal/workflow"
	"github.com/Kavirubc/gh-tracker/pkg/models"
	"github.com/spf13/cobra"
)

func newCreateCmd() *cobra.Command {
	var (
		req         workflow.CreateRequest
		interactive bool
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an issue",
		Long: `Create a new issue. The title is checked against existing issues first;
if similar issues exist you are asked to confirm before anything is stored.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.Close()

			if interactive {
				return runInteractiveCreate(ctx, a, cmd.OutOrStdout())
			}
			return runCreate(ctx, a.svc, req, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&req.Title, "title", "", "issue title")
	cmd.Flags().StringVar(&req.Description, "description", "", "issue description")
	cmd.Flags().StringVar(&req.Priority, "priority", models.PriorityMedium.String(), "priority (Low, Medium, High)")
	cmd.Flags().StringVar(&req.AssignedTo, "assign", "", "assignee email")
	cmd.Flags().BoolVar(&req.Force, "force", false, "create even if similar issues exist")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "fill in the form interactively")

	return cmd
}

// runCreate submits req and asks on in for confirmation when duplicates are found
func runCreate(ctx context.Context, svc *workflow.Service, req workflow.CreateRequest, in io.Reader, out io.Writer) error {
	res, err := svc.Create(ctx, req)
	if err != nil {
		return err
	}

	if res.NeedsConfirmation {
		printMatches(out, res.Similar)
		if !confirm(in, out, "Create anyway? [y/N]: ") {
			fmt.Fprintln(out, "Cancelled, nothing was created")
			return nil
		}
		req.Force = true
		if res, err = svc.Create(ctx, req); err != nil {
			return err
		}
	}

	fmt.Fprintf(out, "%s Created issue %s\n", green("✓"), cyan(models.ShortID(res.Issue.ID)))
	printIssueDetail(out, res.Issue)
	return nil
}

// confirm reads one line from in and reports whether it starts with y
func confirm(in io.Reader, out io.Writer, prompt string) bool {
	fmt.Fprint(out, prompt)
	scanner := bufio.NewScanner(in)
	if !scanner.Scan() {
		return false
	}
	return isYes(scanner.Text())
}

func isYes(answer string) bool {
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}
