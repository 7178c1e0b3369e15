package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/ledger_core/internal/core/domain"
	portssvc "github.com/SscSPs/ledger_core/internal/core/ports/services"
	"github.com/SscSPs/ledger_core/internal/utils/accounting"
)

// reportingService implements the ReportingService interface
type reportingService struct {
	BaseService
	ledger portssvc.LedgerService
}

// NewReportingService creates the report compiler over the ledger projector.
func NewReportingService(ledger portssvc.LedgerService) portssvc.ReportingService {
	return &reportingService{ledger: ledger}
}

// Ensure reportingService implements the ReportingService interface
var _ portssvc.ReportingService = (*reportingService)(nil)

// TrialBalance lists raw posted debit and credit totals per account.
func (s *reportingService) TrialBalance(ctx context.Context, tenantID, fiscalYearID string) (*domain.TrialBalanceReport, error) {
	fy, totals, err := s.ledger.AccountTotals(ctx, tenantID, fiscalYearID)
	if err != nil {
		return nil, err
	}
	report := accounting.BuildTrialBalance(*fy, totals)
	if !report.IsBalanced {
		s.LogWarn(ctx, "Trial balance does not balance",
			slog.String("tenant_id", tenantID),
			slog.String("fiscal_year_id", fiscalYearID),
			slog.String("difference", report.Difference.String()))
	}
	s.LogInfo(ctx, "Trial balance compiled",
		slog.String("fiscal_year_id", fiscalYearID),
		slog.Int("rows", len(report.Rows)))
	return &report, nil
}

// ProfitAndLoss nets revenue against expenses for the year.
func (s *reportingService) ProfitAndLoss(ctx context.Context, tenantID, fiscalYearID string) (*domain.PAndLReport, error) {
	fy, totals, err := s.ledger.AccountTotals(ctx, tenantID, fiscalYearID)
	if err != nil {
		return nil, err
	}
	report := accounting.BuildProfitAndLoss(*fy, totals)
	s.LogInfo(ctx, "Profit and loss compiled",
		slog.String("fiscal_year_id", fiscalYearID),
		slog.String("net_income", report.NetIncome.String()))
	return &report, nil
}

// BalanceSheet groups assets, liabilities and equity. An imbalance is returned as data and logged.
func (s *reportingService) BalanceSheet(ctx context.Context, tenantID, fiscalYearID string) (*domain.BalanceSheetReport, error) {
	fy, totals, err := s.ledger.AccountTotals(ctx, tenantID, fiscalYearID)
	if err != nil {
		return nil, err
	}
	report := accounting.BuildBalanceSheet(*fy, totals)
	if !report.IsBalanced {
		s.LogWarn(ctx, "Balance sheet does not balance",
			slog.String("tenant_id", tenantID),
			slog.String("fiscal_year_id", fiscalYearID),
			slog.String("imbalance", report.Imbalance.String()))
	}
	s.LogInfo(ctx, "Balance sheet compiled", slog.String("fiscal_year_id", fiscalYearID))
	return &report, nil
}
