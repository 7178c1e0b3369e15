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

const accountColumns = `account_id, tenant_id, code, name, category, parent_account_id, description, is_active,
		created_at, created_by, last_updated_at, last_updated_by`

const insertAccountSQL = `
		INSERT INTO accounts (` + accountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);`

// PgxAccountRepository implements repositories.AccountRepositoryWithTx using pgx.
type PgxAccountRepository struct {
	BaseRepository
}

// NewPgxAccountRepository creates a new repository for account data.
func NewPgxAccountRepository(pool *pgxpool.Pool) *PgxAccountRepository {
	return &PgxAccountRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ repositories.AccountRepositoryWithTx = (*PgxAccountRepository)(nil)

func accountArgs(m models.Account) []any {
	return []any{
		m.AccountID, m.TenantID, m.Code, m.Name, m.Category, m.ParentAccountID, m.Description, m.IsActive,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	}
}

// SaveAccount inserts a new account record.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	m := mapping.ToModelAccount(account)
	if _, err := r.Pool.Exec(ctx, insertAccountSQL, accountArgs(m)...); err != nil {
		return mapPgError(err, fmt.Sprintf("account code %s", account.Code))
	}
	return nil
}

// UpdateAccount updates the mutable fields of an account.
func (r *PgxAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	query := `
		UPDATE accounts
		SET name = $1, description = $2, last_updated_at = $3, last_updated_by = $4
		WHERE tenant_id = $5 AND account_id = $6;`
	tag, err := r.Pool.Exec(ctx, query,
		account.Name, account.Description, account.LastUpdatedAt, account.LastUpdatedBy,
		account.TenantID, account.AccountID)
	if err != nil {
		return mapPgError(err, "failed to update account "+account.AccountID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: account %s", apperrors.ErrNotFound, account.AccountID)
	}
	return nil
}

// DeactivateAccount marks an account inactive.
func (r *PgxAccountRepository) DeactivateAccount(ctx context.Context, tenantID, accountID, userID string, now time.Time) error {
	query := `
		UPDATE accounts
		SET is_active = FALSE, last_updated_at = $1, last_updated_by = $2
		WHERE tenant_id = $3 AND account_id = $4;`
	tag, err := r.Pool.Exec(ctx, query, now, userID, tenantID, accountID)
	if err != nil {
		return mapPgError(err, "failed to deactivate account "+accountID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: account %s", apperrors.ErrNotFound, accountID)
	}
	return nil
}

// FindAccountByID retrieves a single account.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, tenantID, accountID string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE tenant_id = $1 AND account_id = $2;`
	rows, err := r.Pool.Query(ctx, query, tenantID, accountID)
	if err != nil {
		return nil, mapPgError(err, "failed to query account "+accountID)
	}
	m, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Account])
	if err != nil {
		return nil, mapPgError(err, "account "+accountID)
	}
	account := mapping.ToDomainAccount(m)
	return &account, nil
}

// FindAccountsByIDs retrieves the accounts among accountIDs that belong to the tenant.
func (r *PgxAccountRepository) FindAccountsByIDs(ctx context.Context, tenantID string, accountIDs []string) (map[string]domain.Account, error) {
	return findAccountsByIDs(ctx, r.Pool, tenantID, accountIDs)
}

// FindAccountsByIDsInTx is FindAccountsByIDs within tx.
func (r *PgxAccountRepository) FindAccountsByIDsInTx(ctx context.Context, tx pgx.Tx, tenantID string, accountIDs []string) (map[string]domain.Account, error) {
	return findAccountsByIDs(ctx, tx, tenantID, accountIDs)
}

func findAccountsByIDs(ctx context.Context, q querier, tenantID string, accountIDs []string) (map[string]domain.Account, error) {
	result := make(map[string]domain.Account, len(accountIDs))
	if len(accountIDs) == 0 {
		return result, nil
	}
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE tenant_id = $1 AND account_id = ANY($2::uuid[]);`
	rows, err := q.Query(ctx, query, tenantID, accountIDs)
	if err != nil {
		return nil, mapPgError(err, "failed to query accounts")
	}
	list, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Account])
	if err != nil {
		return nil, mapPgError(err, "failed to scan accounts")
	}
	for _, m := range list {
		result[m.AccountID] = mapping.ToDomainAccount(m)
	}
	return result, nil
}

// ListAccounts returns the tenant's accounts ordered by code.
func (r *PgxAccountRepository) ListAccounts(ctx context.Context, tenantID string, includeInactive bool) ([]domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE tenant_id = $1 AND (is_active OR $2) ORDER BY code;`
	rows, err := r.Pool.Query(ctx, query, tenantID, includeInactive)
	if err != nil {
		return nil, mapPgError(err, "failed to list accounts")
	}
	list, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Account])
	if err != nil {
		return nil, mapPgError(err, "failed to scan accounts")
	}
	accounts := make([]domain.Account, len(list))
	for i, m := range list {
		accounts[i] = mapping.ToDomainAccount(m)
	}
	return accounts, nil
}

// LockChartInTx takes a transaction-scoped advisory lock on the tenant's chart and counts its accounts.
func (r *PgxAccountRepository) LockChartInTx(ctx context.Context, tx pgx.Tx, tenantID string) (int, error) {
	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext('chart:' || $1));`, tenantID); err != nil {
		return 0, mapPgError(err, "failed to lock chart of accounts")
	}
	var count int
	if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM accounts WHERE tenant_id = $1;`, tenantID).Scan(&count); err != nil {
		return 0, mapPgError(err, "failed to count accounts")
	}
	return count, nil
}

// SaveAccountsInTx inserts accounts in one batch, in slice order so parents precede children.
func (r *PgxAccountRepository) SaveAccountsInTx(ctx context.Context, tx pgx.Tx, accounts []domain.Account) error {
	batch := &pgx.Batch{}
	for _, a := range accounts {
		batch.Queue(insertAccountSQL, accountArgs(mapping.ToModelAccount(a))...)
	}
	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return mapPgError(err, "failed to insert accounts")
	}
	return nil
}
