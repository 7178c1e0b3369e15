package services

import (
	"context"
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

type fiscalYearService struct {
	BaseService
	fiscalYearRepo portsrepo.FiscalYearRepositoryWithTx
	journalRepo    portsrepo.JournalTransactionSupport
	clock          func() time.Time
}

// FiscalYearServiceOption is a functional option for configuring the fiscal year service
type FiscalYearServiceOption func(*fiscalYearService)

// WithFiscalYearClock overrides the time source used for lock timestamps and audit fields.
func WithFiscalYearClock(clock func() time.Time) FiscalYearServiceOption {
	return func(s *fiscalYearService) {
		s.clock = clock
	}
}

// NewFiscalYearService creates the fiscal year register. journalRepo is used to
// check for outstanding drafts before a year is locked.
func NewFiscalYearService(fiscalYearRepo portsrepo.FiscalYearRepositoryWithTx, journalRepo portsrepo.JournalTransactionSupport, options ...FiscalYearServiceOption) portssvc.FiscalYearSvcFacade {
	svc := &fiscalYearService{
		fiscalYearRepo: fiscalYearRepo,
		journalRepo:    journalRepo,
		clock:          func() time.Time { return time.Now().UTC() },
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.FiscalYearSvcFacade = (*fiscalYearService)(nil)

func (s *fiscalYearService) CreateFiscalYear(ctx context.Context, tenantID string, req dto.CreateFiscalYearRequest, userID string) (*domain.FiscalYear, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: fiscal year name is required", apperrors.ErrValidation)
	}
	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return nil, fmt.Errorf("%w: start and end dates are required", apperrors.ErrValidation)
	}
	start := domain.TruncateToDate(req.StartDate.Time)
	end := domain.TruncateToDate(req.EndDate.Time)
	if !end.After(start) {
		return nil, fmt.Errorf("%w: end date %s must be after start date %s",
			apperrors.ErrValidation, end.Format(time.DateOnly), start.Format(time.DateOnly))
	}

	now := s.clock()
	fy := domain.FiscalYear{
		FiscalYearID: uuid.NewString(),
		TenantID:     tenantID,
		Name:         name,
		StartDate:    start,
		EndDate:      end,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if err := s.fiscalYearRepo.SaveFiscalYear(ctx, fy); err != nil {
		s.LogUnexpected(ctx, err, "Failed to save fiscal year", slog.String("name", name))
		return nil, err
	}

	s.LogInfo(ctx, "Fiscal year created",
		slog.String("tenant_id", tenantID),
		slog.String("fiscal_year_id", fy.FiscalYearID),
		slog.String("name", name))
	return &fy, nil
}

func (s *fiscalYearService) GetFiscalYearByID(ctx context.Context, tenantID, fiscalYearID string) (*domain.FiscalYear, error) {
	fy, err := s.fiscalYearRepo.FindFiscalYearByID(ctx, tenantID, fiscalYearID)
	if err != nil {
		s.LogUnexpected(ctx, err, "Failed to find fiscal year", slog.String("fiscal_year_id", fiscalYearID))
		return nil, err
	}
	return fy, nil
}

func (s *fiscalYearService) ListFiscalYears(ctx context.Context, tenantID string) ([]domain.FiscalYear, error) {
	years, err := s.fiscalYearRepo.ListFiscalYears(ctx, tenantID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list fiscal years", slog.String("tenant_id", tenantID))
		return nil, err
	}
	if years == nil {
		years = []domain.FiscalYear{}
	}
	return years, nil
}

func (s *fiscalYearService) FindContaining(ctx context.Context, tenantID string, date time.Time) (*domain.FiscalYear, error) {
	fy, err := s.fiscalYearRepo.FindFiscalYearContaining(ctx, tenantID, date)
	if err != nil {
		s.LogUnexpected(ctx, err, "No fiscal year contains date", slog.String("date", date.Format(time.DateOnly)))
		return nil, err
	}
	return fy, nil
}

func (s *fiscalYearService) LockFiscalYear(ctx context.Context, tenantID, fiscalYearID, userID string) (*domain.FiscalYear, error) {
	return s.setLock(ctx, tenantID, fiscalYearID, userID, true)
}

func (s *fiscalYearService) UnlockFiscalYear(ctx context.Context, tenantID, fiscalYearID, userID string) (*domain.FiscalYear, error) {
	return s.setLock(ctx, tenantID, fiscalYearID, userID, false)
}

// setLock flips the lock flag under a FOR UPDATE row lock. Setting the flag to
// its current value is a no-op.
func (s *fiscalYearService) setLock(ctx context.Context, tenantID, fiscalYearID, userID string, locked bool) (*domain.FiscalYear, error) {
	tx, err := s.fiscalYearRepo.Begin(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to begin fiscal year lock transaction")
		return nil, err
	}
	defer s.fiscalYearRepo.Rollback(ctx, tx)

	fy, err := s.fiscalYearRepo.FindFiscalYearForUpdateInTx(ctx, tx, tenantID, fiscalYearID)
	if err != nil {
		s.LogUnexpected(ctx, err, "Failed to find fiscal year for lock change", slog.String("fiscal_year_id", fiscalYearID))
		return nil, err
	}
	if fy.IsLocked == locked {
		return fy, nil
	}

	if locked {
		drafts, err := s.journalRepo.CountDraftEntriesInTx(ctx, tx, tenantID, fiscalYearID)
		if err != nil {
			s.LogError(ctx, err, "Failed to count draft entries", slog.String("fiscal_year_id", fiscalYearID))
			return nil, err
		}
		if drafts > 0 {
			return nil, fmt.Errorf("%w: fiscal year %s has %d unposted entries", apperrors.ErrConflict, fy.Name, drafts)
		}
	}

	now := s.clock()
	if err := s.fiscalYearRepo.SetFiscalYearLockInTx(ctx, tx, tenantID, fiscalYearID, locked, userID, now); err != nil {
		s.LogUnexpected(ctx, err, "Failed to change fiscal year lock", slog.String("fiscal_year_id", fiscalYearID))
		return nil, err
	}
	if err := s.fiscalYearRepo.Commit(ctx, tx); err != nil {
		s.LogUnexpected(ctx, err, "Failed to commit fiscal year lock change", slog.String("fiscal_year_id", fiscalYearID))
		return nil, err
	}

	fy.IsLocked = locked
	fy.LockedAt = nil
	if locked {
		fy.LockedAt = &now
	}
	fy.LastUpdatedAt = now
	fy.LastUpdatedBy = userID

	s.LogInfo(ctx, "Fiscal year lock changed",
		slog.String("tenant_id", tenantID),
		slog.String("fiscal_year_id", fiscalYearID),
		slog.Bool("locked", locked))
	return fy, nil
}
