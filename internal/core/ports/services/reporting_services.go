package services

import (
	"context"

	"github.com/SscSPs/ledger_core/internal/core/domain"
)

// ReportingService compiles financial statements for a fiscal year.
type ReportingService interface {
	TrialBalance(ctx context.Context, tenantID, fiscalYearID string) (*domain.TrialBalanceReport, error)
	ProfitAndLoss(ctx context.Context, tenantID, fiscalYearID string) (*domain.PAndLReport, error)
	BalanceSheet(ctx context.Context, tenantID, fiscalYearID string) (*domain.BalanceSheetReport, error)
}
