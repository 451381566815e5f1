package cli

import (
	"fmt"

	"github.com/Kavirubc/gh-tracker/internal/config"
	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management commands",
	}

	cmd.AddCommand(newConfigValidateCmd())
	return cmd
}

func newConfigValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			cfg, cfgPath, err := loadConfig()
			if err != nil {
				return err
			}
			if cfgPath == "" {
				fmt.Fprintln(out, "No config file found, validating defaults")
			} else {
				fmt.Fprintf(out, "Validating config: %s\n", cfgPath)
			}

			errs := config.Validate(cfg)
			if len(errs) > 0 {
				fmt.Fprintln(out, "\nValidation errors:")
				for _, e := range errs {
					fmt.Fprintf(out, "  - %v\n", e)
				}
				return fmt.Errorf("configuration is invalid")
			}

			fmt.Fprintln(out, "\nConfiguration is valid!")
			fmt.Fprintf(out, "  - Store: %s (collection %q)\n", cfg.Store.Backend, cfg.Store.Collection)
			switch cfg.Store.Backend {
			case config.BackendSQLite:
				fmt.Fprintf(out, "  - Database: %s\n", cfg.Store.Path)
			case config.BackendQdrant:
				fmt.Fprintf(out, "  - Qdrant URL: %s\n", cfg.Store.Qdrant.URL)
			}
			fmt.Fprintf(out, "  - Similarity threshold: %.0f%% (min title length %d)\n",
				cfg.Similarity.Threshold, cfg.Similarity.MinTitleLength)
			fmt.Fprintf(out, "  - Identity: %s\n", cfg.Identity.Provider)

			return nil
		},
	}
}
