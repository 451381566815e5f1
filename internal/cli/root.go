// Package cli implements the gh-tracker command line
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	version = "dev"
)

var rootCmd = &cobra.Command{
	Use:   "gh-tracker",
	Short: "Issue tracker with duplicate detection",
	Long: `gh-tracker keeps a small issue board with three statuses: Open,
In Progress and Done.

New issues are checked against existing titles before they are stored, and
an Open issue cannot be moved straight to Done.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	err := rootCmd.Execute()
	reportError(os.Stderr, err)
	return err
}

// shownError marks an error the command already printed
type shownError struct {
	err error
}

func (e *shownError) Error() string { return e.err.Error() }
func (e *shownError) Unwrap() error { return e.err }

func shown(err error) error {
	return &shownError{err: err}
}

// reportError prints err once unless a command already showed it
func reportError(w io.Writer, err error) {
	if err == nil {
		return
	}
	var s *shownError
	if errors.As(err, &s) {
		return
	}
	fmt.Fprintf(w, "%s %v\n", red("Error:"), err)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path")

	rootCmd.AddCommand(newCreateCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newStatusCmd())
	rootCmd.AddCommand(newAssignCmd())
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newWhoamiCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newVersionCmd())
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "gh-tracker version %s\n", version)
		},
	}
}
