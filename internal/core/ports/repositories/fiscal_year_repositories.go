package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/ledger_core/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// FiscalYearReader defines read operations for fiscal years
type FiscalYearReader interface {
	FindFiscalYearByID(ctx context.Context, tenantID, fiscalYearID string) (*domain.FiscalYear, error)

	// ListFiscalYears returns the tenant's fiscal years ordered by start date, then creation time.
	ListFiscalYears(ctx context.Context, tenantID string) ([]domain.FiscalYear, error)

	// FindFiscalYearContaining returns the first fiscal year, in list order, whose range contains date.
	FindFiscalYearContaining(ctx context.Context, tenantID string, date time.Time) (*domain.FiscalYear, error)
}

// FiscalYearWriter defines write operations for fiscal years
type FiscalYearWriter interface {
	SaveFiscalYear(ctx context.Context, fy domain.FiscalYear) error
}

// FiscalYearTransactionSupport defines fiscal year operations that run inside a caller's transaction
type FiscalYearTransactionSupport interface {
	SaveFiscalYearInTx(ctx context.Context, tx pgx.Tx, fy domain.FiscalYear) error

	// FindFiscalYearForShareInTx reads the fiscal year with FOR SHARE, blocking concurrent lock changes.
	FindFiscalYearForShareInTx(ctx context.Context, tx pgx.Tx, tenantID, fiscalYearID string) (*domain.FiscalYear, error)

	// FindFiscalYearForUpdateInTx reads the fiscal year with FOR UPDATE, blocking concurrent postings.
	FindFiscalYearForUpdateInTx(ctx context.Context, tx pgx.Tx, tenantID, fiscalYearID string) (*domain.FiscalYear, error)

	// FindFiscalYearContainingForShareInTx is FindFiscalYearContaining with a FOR SHARE row lock.
	FindFiscalYearContainingForShareInTx(ctx context.Context, tx pgx.Tx, tenantID string, date time.Time) (*domain.FiscalYear, error)

	// SetFiscalYearLockInTx sets is_locked and locked_at.
	SetFiscalYearLockInTx(ctx context.Context, tx pgx.Tx, tenantID, fiscalYearID string, locked bool, userID string, now time.Time) error
}

// FiscalYearRepositoryFacade combines all fiscal-year repository interfaces
type FiscalYearRepositoryFacade interface {
	FiscalYearReader
	FiscalYearWriter
	FiscalYearTransactionSupport
}

// FiscalYearRepositoryWithTx extends FiscalYearRepositoryFacade with transaction capabilities
type FiscalYearRepositoryWithTx interface {
	FiscalYearRepositoryFacade
	TransactionManager
}
