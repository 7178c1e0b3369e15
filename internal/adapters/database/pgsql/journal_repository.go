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
	"github.com/SscSPs/ledger_core/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const journalEntryColumns = `journal_entry_id, tenant_id, fiscal_year_id, entry_date, reference, memo, status,
		posted_at, reversal_of_id, reversed_by_id, created_at, created_by, last_updated_at, last_updated_by`

// PgxJournalRepository implements repositories.JournalRepositoryWithTx using pgx.
type PgxJournalRepository struct {
	BaseRepository
}

// NewPgxJournalRepository creates a new repository for journal entries and their lines.
func NewPgxJournalRepository(pool *pgxpool.Pool) *PgxJournalRepository {
	return &PgxJournalRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ repositories.JournalRepositoryWithTx = (*PgxJournalRepository)(nil)

// SaveJournalEntryInTx inserts the entry header followed by a batch of its lines.
func (r *PgxJournalRepository) SaveJournalEntryInTx(ctx context.Context, tx pgx.Tx, entry domain.JournalEntry) error {
	m := mapping.ToModelJournalEntry(entry)
	headerQuery := `
		INSERT INTO journal_entries (` + journalEntryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);`
	_, err := tx.Exec(ctx, headerQuery,
		m.JournalEntryID, m.TenantID, m.FiscalYearID, m.EntryDate, m.Reference, m.Memo, m.Status,
		m.PostedAt, m.ReversalOfID, m.ReversedByID, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		return mapPgError(err, "failed to insert journal entry "+entry.JournalEntryID)
	}

	lineQuery := `
		INSERT INTO journal_lines (line_id, journal_entry_id, line_no, account_id, debit, credit, memo)
		VALUES ($1, $2, $3, $4, $5, $6, $7);`
	batch := &pgx.Batch{}
	for _, line := range entry.Lines {
		ml := mapping.ToModelJournalLine(line)
		batch.Queue(lineQuery, ml.LineID, m.JournalEntryID, ml.LineNo, ml.AccountID, ml.Debit, ml.Credit, ml.Memo)
	}
	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return mapPgError(err, "failed to insert lines of journal entry "+entry.JournalEntryID)
	}
	return nil
}

func findEntryHeader(ctx context.Context, q querier, query string, args ...any) (*domain.JournalEntry, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, mapPgError(err, "failed to query journal entry")
	}
	m, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.JournalEntry])
	if err != nil {
		return nil, mapPgError(err, "journal entry")
	}
	entry := mapping.ToDomainJournalEntry(m)
	return &entry, nil
}

func findEntryLines(ctx context.Context, q querier, entryID string) ([]domain.JournalLine, error) {
	query := `
		SELECT l.line_id, l.journal_entry_id, l.line_no, l.account_id, l.debit, l.credit, l.memo,
		       a.code AS account_code, a.name AS account_name, a.category AS account_category
		FROM journal_lines l
		JOIN accounts a ON a.account_id = l.account_id
		WHERE l.journal_entry_id = $1
		ORDER BY l.line_no;`
	rows, err := q.Query(ctx, query, entryID)
	if err != nil {
		return nil, mapPgError(err, "failed to query lines of journal entry "+entryID)
	}
	list, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.JournalLine])
	if err != nil {
		return nil, mapPgError(err, "failed to scan lines of journal entry "+entryID)
	}
	lines := make([]domain.JournalLine, len(list))
	for i, m := range list {
		lines[i] = mapping.ToDomainJournalLine(m)
	}
	return lines, nil
}

func findEntryWithLines(ctx context.Context, q querier, lockClause, tenantID, entryID string) (*domain.JournalEntry, error) {
	query := `SELECT ` + journalEntryColumns + ` FROM journal_entries
		WHERE tenant_id = $1 AND journal_entry_id = $2 ` + lockClause + `;`
	entry, err := findEntryHeader(ctx, q, query, tenantID, entryID)
	if err != nil {
		return nil, err
	}
	entry.Lines, err = findEntryLines(ctx, q, entry.JournalEntryID)
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// FindJournalEntryByID retrieves an entry and its annotated lines.
func (r *PgxJournalRepository) FindJournalEntryByID(ctx context.Context, tenantID, entryID string) (*domain.JournalEntry, error) {
	return findEntryWithLines(ctx, r.Pool, "", tenantID, entryID)
}

// FindJournalEntryForUpdateInTx retrieves an entry and its lines, locking the header row.
func (r *PgxJournalRepository) FindJournalEntryForUpdateInTx(ctx context.Context, tx pgx.Tx, tenantID, entryID string) (*domain.JournalEntry, error) {
	return findEntryWithLines(ctx, tx, "FOR UPDATE", tenantID, entryID)
}

// FindLatestJournalEntryByReference returns the newest entry with the given reference.
func (r *PgxJournalRepository) FindLatestJournalEntryByReference(ctx context.Context, tenantID, reference string) (*domain.JournalEntry, error) {
	query := `SELECT ` + journalEntryColumns + ` FROM journal_entries
		WHERE tenant_id = $1 AND reference = $2
		ORDER BY created_at DESC, journal_entry_id DESC
		LIMIT 1;`
	entry, err := findEntryHeader(ctx, r.Pool, query, tenantID, reference)
	if err != nil {
		return nil, err
	}
	entry.Lines, err = findEntryLines(ctx, r.Pool, entry.JournalEntryID)
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// ListJournalEntries returns entry headers newest first using keyset pagination.
func (r *PgxJournalRepository) ListJournalEntries(ctx context.Context, tenantID string, fiscalYearID *string, limit int, nextToken *string) ([]domain.JournalEntry, *string, error) {
	args := []any{tenantID}
	query := `SELECT ` + journalEntryColumns + ` FROM journal_entries WHERE tenant_id = $1`

	if fiscalYearID != nil {
		args = append(args, *fiscalYearID)
		query += fmt.Sprintf(" AND fiscal_year_id = $%d", len(args))
	}
	if nextToken != nil && *nextToken != "" {
		cursor, err := pagination.DecodeCursor(*nextToken)
		if err != nil {
			return nil, nil, err
		}
		args = append(args, cursor.EntryDate, cursor.CreatedAt, cursor.ID)
		n := len(args)
		query += fmt.Sprintf(" AND (entry_date, created_at, journal_entry_id) < ($%d, $%d, $%d)", n-2, n-1, n)
	}
	args = append(args, limit+1)
	query += fmt.Sprintf(" ORDER BY entry_date DESC, created_at DESC, journal_entry_id DESC LIMIT $%d;", len(args))

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, mapPgError(err, "failed to list journal entries")
	}
	list, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.JournalEntry])
	if err != nil {
		return nil, nil, mapPgError(err, "failed to scan journal entries")
	}

	var token *string
	if len(list) > limit {
		list = list[:limit]
		last := list[limit-1]
		t := pagination.EncodeCursor(pagination.Cursor{EntryDate: last.EntryDate, CreatedAt: last.CreatedAt, ID: last.JournalEntryID})
		token = &t
	}

	entries := make([]domain.JournalEntry, len(list))
	for i, m := range list {
		entries[i] = mapping.ToDomainJournalEntry(m)
	}
	return entries, token, nil
}

// ListPostedLines returns the posted lines of a fiscal year in ledger order.
func (r *PgxJournalRepository) ListPostedLines(ctx context.Context, tenantID, fiscalYearID string, accountID *string) ([]domain.PostedLine, error) {
	query := `
		SELECT e.journal_entry_id, e.entry_date, e.created_at AS entry_created_at, e.reference,
		       e.memo AS entry_memo, l.line_no, l.account_id, l.debit, l.credit, l.memo AS line_memo
		FROM journal_entries e
		JOIN journal_lines l ON l.journal_entry_id = e.journal_entry_id
		WHERE e.tenant_id = $1 AND e.fiscal_year_id = $2 AND e.status = 'POSTED'
		  AND ($3::uuid IS NULL OR l.account_id = $3::uuid)
		ORDER BY e.entry_date, e.created_at, e.journal_entry_id, l.line_no;`
	rows, err := r.Pool.Query(ctx, query, tenantID, fiscalYearID, accountID)
	if err != nil {
		return nil, mapPgError(err, "failed to query posted lines")
	}
	list, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.PostedLine])
	if err != nil {
		return nil, mapPgError(err, "failed to scan posted lines")
	}
	lines := make([]domain.PostedLine, len(list))
	for i, m := range list {
		lines[i] = mapping.ToDomainPostedLine(m)
	}
	return lines, nil
}

// MarkJournalEntryPostedInTx moves a DRAFT entry to POSTED.
func (r *PgxJournalRepository) MarkJournalEntryPostedInTx(ctx context.Context, tx pgx.Tx, tenantID, entryID, userID string, postedAt time.Time) error {
	query := `
		UPDATE journal_entries
		SET status = 'POSTED', posted_at = $1, last_updated_at = $1, last_updated_by = $2
		WHERE tenant_id = $3 AND journal_entry_id = $4 AND status = 'DRAFT';`
	tag, err := tx.Exec(ctx, query, postedAt, userID, tenantID, entryID)
	if err != nil {
		return mapPgError(err, "failed to post journal entry "+entryID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: journal entry %s is not a draft", apperrors.ErrConflict, entryID)
	}
	return nil
}

// SetReversedByInTx records which entry reversed entryID.
func (r *PgxJournalRepository) SetReversedByInTx(ctx context.Context, tx pgx.Tx, tenantID, entryID, reversingEntryID, userID string, now time.Time) error {
	query := `
		UPDATE journal_entries
		SET reversed_by_id = $1, last_updated_at = $2, last_updated_by = $3
		WHERE tenant_id = $4 AND journal_entry_id = $5 AND reversed_by_id IS NULL;`
	tag, err := tx.Exec(ctx, query, reversingEntryID, now, userID, tenantID, entryID)
	if err != nil {
		return mapPgError(err, "failed to link reversal of journal entry "+entryID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: journal entry %s is already reversed", apperrors.ErrConflict, entryID)
	}
	return nil
}

// DeleteJournalEntryInTx deletes an entry; its lines go with it via ON DELETE CASCADE.
func (r *PgxJournalRepository) DeleteJournalEntryInTx(ctx context.Context, tx pgx.Tx, tenantID, entryID string) error {
	tag, err := tx.Exec(ctx, `DELETE FROM journal_entries WHERE tenant_id = $1 AND journal_entry_id = $2;`, tenantID, entryID)
	if err != nil {
		return mapPgError(err, "failed to delete journal entry "+entryID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: journal entry %s", apperrors.ErrNotFound, entryID)
	}
	return nil
}

// CountDraftEntriesInTx counts DRAFT entries of a fiscal year.
func (r *PgxJournalRepository) CountDraftEntriesInTx(ctx context.Context, tx pgx.Tx, tenantID, fiscalYearID string) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM journal_entries WHERE tenant_id = $1 AND fiscal_year_id = $2 AND status = 'DRAFT';`
	if err := tx.QueryRow(ctx, query, tenantID, fiscalYearID).Scan(&count); err != nil {
		return 0, mapPgError(err, "failed to count draft entries")
	}
	return count, nil
}
