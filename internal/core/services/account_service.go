package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/ledger_core/internal/apperrors"
	"github.com/SscSPs/ledger_core/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_core/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledger_core/internal/core/ports/services"
	"github.com/SscSPs/ledger_core/internal/dto"
	"github.com/google/uuid"
)

// accountService implements the AccountSvcFacade interface
type accountService struct {
	BaseService
	accountRepo    portsrepo.AccountRepositoryWithTx
	fiscalYearRepo portsrepo.FiscalYearTransactionSupport
	clock          func() time.Time
}

// AccountServiceOption is a functional option for configuring the account service
type AccountServiceOption func(*accountService)

// WithAccountClock overrides the time source used for audit fields and the seeded fiscal year.
func WithAccountClock(clock func() time.Time) AccountServiceOption {
	return func(s *accountService) {
		s.clock = clock
	}
}

// NewAccountService creates a new account service with the provided options
func NewAccountService(accountRepo portsrepo.AccountRepositoryWithTx, fiscalYearRepo portsrepo.FiscalYearTransactionSupport, options ...AccountServiceOption) portssvc.AccountSvcFacade {
	svc := &accountService{
		accountRepo:    accountRepo,
		fiscalYearRepo: fiscalYearRepo,
		clock:          func() time.Time { return time.Now().UTC() },
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func (s *accountService) CreateAccount(ctx context.Context, tenantID string, req dto.CreateAccountRequest, userID string) (*domain.Account, error) {
	code := strings.TrimSpace(req.Code)
	name := strings.TrimSpace(req.Name)
	if code == "" || name == "" {
		return nil, fmt.Errorf("%w: account code and name are required", apperrors.ErrValidation)
	}
	category, ok := domain.ParseAccountCategory(req.Category)
	if !ok {
		return nil, fmt.Errorf("%w: unknown account category %q", apperrors.ErrValidation, req.Category)
	}

	if req.ParentAccountID != nil {
		parent, err := s.accountRepo.FindAccountByID(ctx, tenantID, *req.ParentAccountID)
		if err != nil {
			s.LogUnexpected(ctx, err, "Failed to find parent account", slog.String("parent_id", *req.ParentAccountID))
			return nil, fmt.Errorf("invalid parent account: %w", err)
		}
		if !parent.IsActive {
			return nil, fmt.Errorf("%w: parent account %s is inactive", apperrors.ErrNotFound, parent.AccountID)
		}
	}

	now := s.clock()
	account := domain.Account{
		AccountID:       uuid.NewString(),
		TenantID:        tenantID,
		Code:            code,
		Name:            name,
		Category:        category,
		ParentAccountID: req.ParentAccountID,
		Description:     req.Description,
		IsActive:        true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		s.LogUnexpected(ctx, err, "Failed to save account", slog.String("code", code))
		return nil, err
	}

	s.LogInfo(ctx, "Account created",
		slog.String("tenant_id", tenantID),
		slog.String("account_id", account.AccountID),
		slog.String("code", code))
	return &account, nil
}

func (s *accountService) GetAccountByID(ctx context.Context, tenantID, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, tenantID, accountID)
	if err != nil {
		s.LogUnexpected(ctx, err, "Failed to find account", slog.String("account_id", accountID))
		return nil, err
	}
	return account, nil
}

// ListAccounts returns the active chart ordered by code. Parents are resolved
// against the full chart so an inactive parent still shows up by name.
func (s *accountService) ListAccounts(ctx context.Context, tenantID string) ([]domain.AccountSummary, error) {
	all, err := s.accountRepo.ListAccounts(ctx, tenantID, true)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts", slog.String("tenant_id", tenantID))
		return nil, err
	}

	byID := make(map[string]domain.Account, len(all))
	children := make(map[string]int)
	for _, a := range all {
		byID[a.AccountID] = a
		if a.IsActive && a.ParentAccountID != nil {
			children[*a.ParentAccountID]++
		}
	}

	summaries := make([]domain.AccountSummary, 0, len(all))
	for _, a := range all {
		if !a.IsActive {
			continue
		}
		summary := domain.AccountSummary{Account: a, ChildCount: children[a.AccountID]}
		if a.ParentAccountID != nil {
			if parent, ok := byID[*a.ParentAccountID]; ok {
				ref := parent.Ref()
				summary.Parent = &ref
			}
		}
		summaries = append(summaries, summary)
	}

	s.LogDebug(ctx, "Accounts listed", slog.Int("count", len(summaries)))
	return summaries, nil
}

func (s *accountService) UpdateAccount(ctx context.Context, tenantID, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, tenantID, accountID)
	if err != nil {
		s.LogUnexpected(ctx, err, "Failed to find account for update", slog.String("account_id", accountID))
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: account name cannot be empty", apperrors.ErrValidation)
		}
		account.Name = name
	}
	if req.Description != nil {
		account.Description = *req.Description
	}
	account.LastUpdatedAt = s.clock()
	account.LastUpdatedBy = userID

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		s.LogUnexpected(ctx, err, "Failed to update account", slog.String("account_id", accountID))
		return nil, err
	}

	s.LogInfo(ctx, "Account updated", slog.String("account_id", accountID))
	return account, nil
}

func (s *accountService) DeactivateAccount(ctx context.Context, tenantID, accountID, userID string) error {
	account, err := s.accountRepo.FindAccountByID(ctx, tenantID, accountID)
	if err != nil {
		s.LogUnexpected(ctx, err, "Failed to find account for deactivation", slog.String("account_id", accountID))
		return err
	}
	if !account.IsActive {
		return nil
	}
	if err := s.accountRepo.DeactivateAccount(ctx, tenantID, accountID, userID, s.clock()); err != nil {
		s.LogUnexpected(ctx, err, "Failed to deactivate account", slog.String("account_id", accountID))
		return err
	}
	s.LogInfo(ctx, "Account deactivated", slog.String("account_id", accountID))
	return nil
}

// SeedStarterChart creates the starter chart and an open fiscal year for the current
// calendar year, all in one transaction. A tenant that already has accounts is left untouched.
func (s *accountService) SeedStarterChart(ctx context.Context, tenantID, userID string) (*domain.SeedResult, error) {
	tx, err := s.accountRepo.Begin(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to begin seed transaction")
		return nil, err
	}
	defer s.accountRepo.Rollback(ctx, tx)

	count, err := s.accountRepo.LockChartInTx(ctx, tx, tenantID)
	if err != nil {
		s.LogError(ctx, err, "Failed to lock chart of accounts", slog.String("tenant_id", tenantID))
		return nil, err
	}
	if count > 0 {
		s.LogInfo(ctx, "Chart of accounts already set up", slog.String("tenant_id", tenantID), slog.Int("accounts", count))
		return &domain.SeedResult{
			Seeded:  false,
			Message: fmt.Sprintf("Chart of accounts already set up (%d accounts)", count),
		}, nil
	}

	now := s.clock()
	audit := domain.AuditFields{CreatedAt: now, CreatedBy: userID, LastUpdatedAt: now, LastUpdatedBy: userID}

	accounts := make([]domain.Account, 0, len(starterChart))
	for _, sa := range starterChart {
		accounts = append(accounts, domain.Account{
			AccountID:   uuid.NewString(),
			TenantID:    tenantID,
			Code:        sa.code,
			Name:        sa.name,
			Category:    sa.category,
			IsActive:    true,
			AuditFields: audit,
		})
	}
	if err := s.accountRepo.SaveAccountsInTx(ctx, tx, accounts); err != nil {
		s.LogUnexpected(ctx, err, "Failed to save starter accounts", slog.String("tenant_id", tenantID))
		return nil, err
	}

	year := now.Year()
	fy := domain.FiscalYear{
		FiscalYearID: uuid.NewString(),
		TenantID:     tenantID,
		Name:         fmt.Sprintf("FY%d", year),
		StartDate:    time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC),
		EndDate:      time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC),
		AuditFields:  audit,
	}
	if err := s.fiscalYearRepo.SaveFiscalYearInTx(ctx, tx, fy); err != nil {
		s.LogUnexpected(ctx, err, "Failed to save starter fiscal year", slog.String("tenant_id", tenantID))
		return nil, err
	}

	if err := s.accountRepo.Commit(ctx, tx); err != nil {
		if !errors.Is(err, apperrors.ErrConflict) {
			s.LogError(ctx, err, "Failed to commit seed transaction")
		}
		return nil, err
	}

	s.LogInfo(ctx, "Starter chart seeded",
		slog.String("tenant_id", tenantID),
		slog.Int("accounts", len(accounts)),
		slog.String("fiscal_year", fy.Name))
	return &domain.SeedResult{
		Seeded:          true,
		Message:         fmt.Sprintf("Created %d accounts and fiscal year %s", len(accounts), fy.Name),
		AccountsCreated: len(accounts),
		FiscalYear:      &fy,
	}, nil
}
