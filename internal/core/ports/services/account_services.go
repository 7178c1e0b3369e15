package services

import (
	"context"

	"github.com/SscSPs/ledger_core/internal/core/domain"
	"github.com/SscSPs/ledger_core/internal/dto"
)

// AccountReaderSvc defines read operations for the chart of accounts
type AccountReaderSvc interface {
	// GetAccountByID retrieves a specific account by its unique identifier.
	GetAccountByID(ctx context.Context, tenantID, accountID string) (*domain.Account, error)

	// ListAccounts returns active accounts ordered by code, each with its parent summary and child count.
	ListAccounts(ctx context.Context, tenantID string) ([]domain.AccountSummary, error)
}

// AccountWriterSvc defines write operations for the chart of accounts
type AccountWriterSvc interface {
	// CreateAccount validates and persists a new account.
	CreateAccount(ctx context.Context, tenantID string, req dto.CreateAccountRequest, userID string) (*domain.Account, error)

	// UpdateAccount changes an account's name or description.
	UpdateAccount(ctx context.Context, tenantID, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.Account, error)

	// DeactivateAccount marks an account as inactive.
	DeactivateAccount(ctx context.Context, tenantID, accountID, userID string) error
}

// ChartSeederSvc bootstraps a tenant's books
type ChartSeederSvc interface {
	// SeedStarterChart creates the starter chart and a current fiscal year if the tenant has no accounts.
	SeedStarterChart(ctx context.Context, tenantID, userID string) (*domain.SeedResult, error)
}

// AccountSvcFacade combines all account-related service interfaces
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
	ChartSeederSvc
}
