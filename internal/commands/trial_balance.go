package commands

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/SscSPs/ledger_core/internal/core/domain"
	"github.com/SscSPs/ledger_core/internal/dto"
	"github.com/SscSPs/ledger_core/internal/middleware"
	"github.com/SscSPs/ledger_core/internal/utils/accounting"
)

// ErrTrialBalanceMismatch is returned when debits and credits disagree beyond tolerance.
var ErrTrialBalanceMismatch = errors.New("trial balance does not balance")

func newTrialBalanceCommand() *cobra.Command {
	var tenantID, fiscalYearID, date string

	cmd := &cobra.Command{
		Use:   "trial-balance",
		Short: "Print a tenant's trial balance and fail if it does not balance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := middleware.WithLogger(cmd.Context(), newLogger())
			svc, closeFn, err := openServices(ctx)
			if err != nil {
				return err
			}
			defer closeFn()

			if fiscalYearID == "" {
				on := dto.NewDate(time.Now())
				if date != "" {
					if on, err = dto.ParseDate(date); err != nil {
						return err
					}
				}
				fy, err := svc.FiscalYear.FindContaining(ctx, tenantID, on.Time)
				if err != nil {
					return err
				}
				fiscalYearID = fy.FiscalYearID
			}

			report, err := svc.Reporting.TrialBalance(ctx, tenantID, fiscalYearID)
			if err != nil {
				return err
			}
			if err := writeTrialBalance(cmd.OutOrStdout(), report); err != nil {
				return err
			}
			if !report.IsBalanced {
				return fmt.Errorf("%w: difference %s", ErrTrialBalanceMismatch, report.Difference.StringFixed(accounting.MoneyScale))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&tenantID, "tenant", "", "tenant identifier (required)")
	_ = cmd.MarkFlagRequired("tenant")
	cmd.Flags().StringVar(&fiscalYearID, "fiscal-year", "", "fiscal year id (defaults to the year containing --date)")
	cmd.Flags().StringVar(&date, "date", "", "date used to pick the fiscal year, YYYY-MM-DD (defaults to today)")

	return cmd
}

// writeTrialBalance renders the report as an aligned text table.
func writeTrialBalance(out io.Writer, report *domain.TrialBalanceReport) error {
	fy := report.FiscalYear
	fmt.Fprintf(out, "%s (%s to %s)\n\n", fy.Name, dto.NewDate(fy.StartDate), dto.NewDate(fy.EndDate))

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "CODE\tNAME\tCATEGORY\tDEBIT\tCREDIT\t")
	for _, row := range report.Rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t\n",
			row.Code, row.Name, row.Category,
			row.Debit.StringFixed(accounting.MoneyScale), row.Credit.StringFixed(accounting.MoneyScale))
	}
	fmt.Fprintf(tw, "\tTOTAL\t\t%s\t%s\t\n",
		report.TotalDebit.StringFixed(accounting.MoneyScale), report.TotalCredit.StringFixed(accounting.MoneyScale))
	if err := tw.Flush(); err != nil {
		return err
	}

	status := "balanced"
	if !report.IsBalanced {
		status = "NOT BALANCED, difference " + report.Difference.StringFixed(accounting.MoneyScale)
	}
	_, err := fmt.Fprintf(out, "\n%s\n", status)
	return err
}
