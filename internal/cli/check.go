package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <title>",
		Short: "Show existing issues similar to a title",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			title := strings.Join(args, " ")

			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.Close()

			out := cmd.OutOrStdout()
			if !a.svc.Engine().Eligible(title) {
				fmt.Fprintf(out, "Title too short to check (minimum %d characters)\n",
					a.svc.Engine().Options().MinTitleLength)
				return nil
			}

			matches, err := a.svc.CheckTitle(ctx, title)
			if err != nil {
				return err
			}
			if len(matches) == 0 {
				fmt.Fprintln(out, "No similar issues found")
				return nil
			}
			printMatches(out, matches)
			return nil
		},
	}
}
