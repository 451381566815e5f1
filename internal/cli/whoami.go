package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the user recorded as creator of new issues",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.Close()

			p, err := a.identity.Current(context.Background())
			if err != nil {
				return fmt.Errorf("failed to resolve current user: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s (%s)\n", p.ID(), gray(p.Source))
			if p.Login != "" && p.Email != "" {
				fmt.Fprintf(out, "   GitHub login: %s\n", p.Login)
			}
			return nil
		},
	}
}
