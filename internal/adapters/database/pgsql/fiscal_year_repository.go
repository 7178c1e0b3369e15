package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/ledger_core/internal/apperrors"
	"github.com/SscSPs/ledger_core/internal/core/domain"
	"github.com/SscSPs/ledger_core/internal/core/ports/repositories"
	"github.com/SscSPs/ledger_core/internal/models"
	"github.com/SscSPs/ledger_core/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const fiscalYearColumns = `fiscal_year_id, tenant_id, name, start_date, end_date, is_locked, locked_at,
		created_at, created_by, last_updated_at, last_updated_by`

// PgxFiscalYearRepository implements repositories.FiscalYearRepositoryWithTx using pgx.
type PgxFiscalYearRepository struct {
	BaseRepository
}

// NewPgxFiscalYearRepository creates a new repository for fiscal years.
func NewPgxFiscalYearRepository(pool *pgxpool.Pool) *PgxFiscalYearRepository {
	return &PgxFiscalYearRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ repositories.FiscalYearRepositoryWithTx = (*PgxFiscalYearRepository)(nil)

func saveFiscalYear(ctx context.Context, q querier, fy domain.FiscalYear) error {
	m := mapping.ToModelFiscalYear(fy)
	query := `
		INSERT INTO fiscal_years (` + fiscalYearColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);`
	_, err := q.Exec(ctx, query,
		m.FiscalYearID, m.TenantID, m.Name, m.StartDate, m.EndDate, m.IsLocked, m.LockedAt,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		return mapPgError(err, "failed to save fiscal year "+fy.Name)
	}
	return nil
}

// SaveFiscalYear inserts a new fiscal year.
func (r *PgxFiscalYearRepository) SaveFiscalYear(ctx context.Context, fy domain.FiscalYear) error {
	return saveFiscalYear(ctx, r.Pool, fy)
}

// SaveFiscalYearInTx inserts a new fiscal year within tx.
func (r *PgxFiscalYearRepository) SaveFiscalYearInTx(ctx context.Context, tx pgx.Tx, fy domain.FiscalYear) error {
	return saveFiscalYear(ctx, tx, fy)
}

func findOneFiscalYear(ctx context.Context, q querier, what, query string, args ...any) (*domain.FiscalYear, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, mapPgError(err, "failed to query "+what)
	}
	m, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.FiscalYear])
	if err != nil {
		return nil, mapPgError(err, what)
	}
	fy := mapping.ToDomainFiscalYear(m)
	return &fy, nil
}

func fiscalYearByIDQuery(lockClause string) string {
	return `SELECT ` + fiscalYearColumns + ` FROM fiscal_years WHERE tenant_id = $1 AND fiscal_year_id = $2 ` + lockClause + `;`
}

func fiscalYearContainingQuery(lockClause string) string {
	return `SELECT ` + fiscalYearColumns + ` FROM fiscal_years
		WHERE tenant_id = $1 AND start_date <= $2 AND end_date >= $2
		ORDER BY start_date, created_at
		LIMIT 1 ` + lockClause + `;`
}

// FindFiscalYearByID retrieves a fiscal year.
func (r *PgxFiscalYearRepository) FindFiscalYearByID(ctx context.Context, tenantID, fiscalYearID string) (*domain.FiscalYear, error) {
	return findOneFiscalYear(ctx, r.Pool, "fiscal year "+fiscalYearID, fiscalYearByIDQuery(""), tenantID, fiscalYearID)
}

// FindFiscalYearForShareInTx reads the fiscal year row under FOR SHARE.
func (r *PgxFiscalYearRepository) FindFiscalYearForShareInTx(ctx context.Context, tx pgx.Tx, tenantID, fiscalYearID string) (*domain.FiscalYear, error) {
	return findOneFiscalYear(ctx, tx, "fiscal year "+fiscalYearID, fiscalYearByIDQuery("FOR SHARE"), tenantID, fiscalYearID)
}

// FindFiscalYearForUpdateInTx reads the fiscal year row under FOR UPDATE.
func (r *PgxFiscalYearRepository) FindFiscalYearForUpdateInTx(ctx context.Context, tx pgx.Tx, tenantID, fiscalYearID string) (*domain.FiscalYear, error) {
	return findOneFiscalYear(ctx, tx, "fiscal year "+fiscalYearID, fiscalYearByIDQuery("FOR UPDATE"), tenantID, fiscalYearID)
}

// FindFiscalYearContaining returns the earliest-starting fiscal year covering date.
func (r *PgxFiscalYearRepository) FindFiscalYearContaining(ctx context.Context, tenantID string, date time.Time) (*domain.FiscalYear, error) {
	what := "fiscal year containing " + date.Format(time.DateOnly)
	return findOneFiscalYear(ctx, r.Pool, what, fiscalYearContainingQuery(""), tenantID, domain.TruncateToDate(date))
}

// FindFiscalYearContainingForShareInTx is FindFiscalYearContaining under FOR SHARE.
func (r *PgxFiscalYearRepository) FindFiscalYearContainingForShareInTx(ctx context.Context, tx pgx.Tx, tenantID string, date time.Time) (*domain.FiscalYear, error) {
	what := "fiscal year containing " + date.Format(time.DateOnly)
	return findOneFiscalYear(ctx, tx, what, fiscalYearContainingQuery("FOR SHARE"), tenantID, domain.TruncateToDate(date))
}

// ListFiscalYears returns all fiscal years of a tenant.
func (r *PgxFiscalYearRepository) ListFiscalYears(ctx context.Context, tenantID string) ([]domain.FiscalYear, error) {
	query := `SELECT ` + fiscalYearColumns + ` FROM fiscal_years WHERE tenant_id = $1 ORDER BY start_date, created_at;`
	rows, err := r.Pool.Query(ctx, query, tenantID)
	if err != nil {
		return nil, mapPgError(err, "failed to list fiscal years")
	}
	list, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.FiscalYear])
	if err != nil {
		return nil, mapPgError(err, "failed to scan fiscal years")
	}
	years := make([]domain.FiscalYear, len(list))
	for i, m := range list {
		years[i] = mapping.ToDomainFiscalYear(m)
	}
	return years, nil
}

// SetFiscalYearLockInTx sets the lock flag; locked_at is cleared on unlock.
func (r *PgxFiscalYearRepository) SetFiscalYearLockInTx(ctx context.Context, tx pgx.Tx, tenantID, fiscalYearID string, locked bool, userID string, now time.Time) error {
	var lockedAt *time.Time
	if locked {
		lockedAt = &now
	}
	query := `
		UPDATE fiscal_years
		SET is_locked = $1, locked_at = $2, last_updated_at = $3, last_updated_by = $4
		WHERE tenant_id = $5 AND fiscal_year_id = $6;`
	tag, err := tx.Exec(ctx, query, locked, lockedAt, now, userID, tenantID, fiscalYearID)
	if err != nil {
		return mapPgError(err, "failed to update lock of fiscal year "+fiscalYearID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: fiscal year %s", apperrors.ErrNotFound, fiscalYearID)
	}
	return nil
}
