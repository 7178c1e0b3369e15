package services

import (
	"context"
	"time"

	"github.com/SscSPs/ledger_core/internal/core/domain"
	"github.com/SscSPs/ledger_core/internal/dto"
)

// FiscalYearReaderSvc defines read operations for fiscal years
type FiscalYearReaderSvc interface {
	GetFiscalYearByID(ctx context.Context, tenantID, fiscalYearID string) (*domain.FiscalYear, error)
	ListFiscalYears(ctx context.Context, tenantID string) ([]domain.FiscalYear, error)

	// FindContaining returns the fiscal year covering date; the first by start date wins on overlap.
	FindContaining(ctx context.Context, tenantID string, date time.Time) (*domain.FiscalYear, error)
}

// FiscalYearWriterSvc defines write operations for fiscal years
type FiscalYearWriterSvc interface {
	CreateFiscalYear(ctx context.Context, tenantID string, req dto.CreateFiscalYearRequest, userID string) (*domain.FiscalYear, error)

	// LockFiscalYear closes the period. It fails with a conflict while draft entries remain in it.
	LockFiscalYear(ctx context.Context, tenantID, fiscalYearID, userID string) (*domain.FiscalYear, error)

	// UnlockFiscalYear reopens the period.
	UnlockFiscalYear(ctx context.Context, tenantID, fiscalYearID, userID string) (*domain.FiscalYear, error)
}

// FiscalYearSvcFacade combines all fiscal-year service interfaces
type FiscalYearSvcFacade interface {
	FiscalYearReaderSvc
	FiscalYearWriterSvc
}
