package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SscSPs/ledger_core/internal/platform/config"
	"github.com/SscSPs/ledger_core/pkg/database"
)

func newMigrateCommand() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			if path == "" {
				path = cfg.MigrationsPath
			}
			if err := database.RunMigrations(cfg.DatabaseURL, path, newLogger()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")
			return nil
		},
	}

	cmd.Flags().StringVar(&path, "path", "", "migrations source URL (defaults to MIGRATIONS_PATH)")

	return cmd
}
