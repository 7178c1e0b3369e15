package services

import (
	"context"

	"github.com/SscSPs/ledger_core/internal/core/domain"
)

// LedgerService projects posted journal lines into per-account histories.
type LedgerService interface {
	// BuildLedger returns running-balance histories for every account with posted lines, or only accountID when given.
	BuildLedger(ctx context.Context, tenantID, fiscalYearID string, accountID *string) ([]domain.AccountLedger, error)

	// AccountTotals returns the fiscal year and raw posted totals per account.
	AccountTotals(ctx context.Context, tenantID, fiscalYearID string) (*domain.FiscalYear, []domain.AccountTotals, error)
}
