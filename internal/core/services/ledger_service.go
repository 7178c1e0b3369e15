package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/ledger_core/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_core/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledger_core/internal/core/ports/services"
	"github.com/SscSPs/ledger_core/internal/utils/accounting"
)

// ledgerService implements the LedgerService interface on top of posted journal lines.
type ledgerService struct {
	BaseService
	ledgerRepo     portsrepo.LedgerReader
	fiscalYearRepo portsrepo.FiscalYearReader
	accountRepo    portsrepo.AccountReader
}

// NewLedgerService creates the ledger projector.
func NewLedgerService(ledgerRepo portsrepo.LedgerReader, fiscalYearRepo portsrepo.FiscalYearReader, accountRepo portsrepo.AccountReader) portssvc.LedgerService {
	return &ledgerService{
		ledgerRepo:     ledgerRepo,
		fiscalYearRepo: fiscalYearRepo,
		accountRepo:    accountRepo,
	}
}

var _ portssvc.LedgerService = (*ledgerService)(nil)

func (s *ledgerService) project(ctx context.Context, tenantID string, fy *domain.FiscalYear, accountID *string) ([]domain.AccountLedger, error) {
	var (
		accounts map[string]domain.Account
		keep     []string
	)
	if accountID != nil {
		acc, err := s.accountRepo.FindAccountByID(ctx, tenantID, *accountID)
		if err != nil {
			s.LogUnexpected(ctx, err, "Failed to find ledger account", slog.String("account_id", *accountID))
			return nil, err
		}
		accounts = map[string]domain.Account{acc.AccountID: *acc}
		keep = []string{acc.AccountID}
	} else {
		// inactive accounts keep their history
		list, err := s.accountRepo.ListAccounts(ctx, tenantID, true)
		if err != nil {
			s.LogError(ctx, err, "Failed to list accounts for ledger", slog.String("tenant_id", tenantID))
			return nil, err
		}
		accounts = make(map[string]domain.Account, len(list))
		for _, a := range list {
			accounts[a.AccountID] = a
		}
	}

	lines, err := s.ledgerRepo.ListPostedLines(ctx, tenantID, fy.FiscalYearID, accountID)
	if err != nil {
		s.LogError(ctx, err, "Failed to read posted lines", slog.String("fiscal_year_id", fy.FiscalYearID))
		return nil, err
	}

	ledgers := accounting.ProjectLedgers(accounts, lines, keep...)
	s.LogDebug(ctx, "Ledger projected",
		slog.String("fiscal_year_id", fy.FiscalYearID),
		slog.Int("lines", len(lines)),
		slog.Int("accounts", len(ledgers)))
	return ledgers, nil
}

func (s *ledgerService) fiscalYear(ctx context.Context, tenantID, fiscalYearID string) (*domain.FiscalYear, error) {
	fy, err := s.fiscalYearRepo.FindFiscalYearByID(ctx, tenantID, fiscalYearID)
	if err != nil {
		s.LogUnexpected(ctx, err, "Failed to find fiscal year for ledger", slog.String("fiscal_year_id", fiscalYearID))
		return nil, err
	}
	return fy, nil
}

func (s *ledgerService) BuildLedger(ctx context.Context, tenantID, fiscalYearID string, accountID *string) ([]domain.AccountLedger, error) {
	fy, err := s.fiscalYear(ctx, tenantID, fiscalYearID)
	if err != nil {
		return nil, err
	}
	return s.project(ctx, tenantID, fy, accountID)
}

func (s *ledgerService) AccountTotals(ctx context.Context, tenantID, fiscalYearID string) (*domain.FiscalYear, []domain.AccountTotals, error) {
	fy, err := s.fiscalYear(ctx, tenantID, fiscalYearID)
	if err != nil {
		return nil, nil, err
	}
	ledgers, err := s.project(ctx, tenantID, fy, nil)
	if err != nil {
		return nil, nil, err
	}
	return fy, accounting.TotalsFromLedgers(ledgers), nil
}
