package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SscSPs/ledger_core/internal/core/domain"
	"github.com/SscSPs/ledger_core/internal/middleware"
)

func newSeedCommand() *cobra.Command {
	var tenantID string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create the starter chart of accounts and a current fiscal year for a tenant",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := middleware.WithLogger(cmd.Context(), newLogger())
			svc, closeFn, err := openServices(ctx)
			if err != nil {
				return err
			}
			defer closeFn()

			result, err := svc.Account.SeedStarterChart(ctx, tenantID, domain.SystemUserID)
			if err != nil {
				return fmt.Errorf("seeding tenant %s: %w", tenantID, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), result.Message)
			return nil
		},
	}

	cmd.Flags().StringVar(&tenantID, "tenant", "", "tenant identifier (required)")
	_ = cmd.MarkFlagRequired("tenant")

	return cmd
}
