package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/ledger_core/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// JournalReader defines read operations for journal entries
type JournalReader interface {
	// FindJournalEntryByID retrieves an entry with its lines, each annotated with account details.
	FindJournalEntryByID(ctx context.Context, tenantID, entryID string) (*domain.JournalEntry, error)

	// FindLatestJournalEntryByReference returns the most recently created entry carrying reference.
	FindLatestJournalEntryByReference(ctx context.Context, tenantID, reference string) (*domain.JournalEntry, error)

	// ListJournalEntries returns a page of entries (without lines), newest first, and the token for the next page.
	ListJournalEntries(ctx context.Context, tenantID string, fiscalYearID *string, limit int, nextToken *string) ([]domain.JournalEntry, *string, error)
}

// LedgerReader defines the read used for ledger projection
type LedgerReader interface {
	// ListPostedLines returns posted lines of the fiscal year, optionally for one account,
	// ordered by entry date, entry creation, entry id and line number.
	ListPostedLines(ctx context.Context, tenantID, fiscalYearID string, accountID *string) ([]domain.PostedLine, error)
}

// JournalTransactionSupport defines journal operations that run inside a caller's transaction
type JournalTransactionSupport interface {
	// SaveJournalEntryInTx inserts the entry and all its lines.
	SaveJournalEntryInTx(ctx context.Context, tx pgx.Tx, entry domain.JournalEntry) error

	// FindJournalEntryForUpdateInTx reads the entry and its lines with a row lock on the entry.
	FindJournalEntryForUpdateInTx(ctx context.Context, tx pgx.Tx, tenantID, entryID string) (*domain.JournalEntry, error)

	// MarkJournalEntryPostedInTx moves a draft to POSTED.
	MarkJournalEntryPostedInTx(ctx context.Context, tx pgx.Tx, tenantID, entryID, userID string, postedAt time.Time) error

	// SetReversedByInTx links an entry to the entry that reverses it.
	SetReversedByInTx(ctx context.Context, tx pgx.Tx, tenantID, entryID, reversingEntryID, userID string, now time.Time) error

	// DeleteJournalEntryInTx removes the entry and its lines.
	DeleteJournalEntryInTx(ctx context.Context, tx pgx.Tx, tenantID, entryID string) error

	// CountDraftEntriesInTx counts unposted entries in a fiscal year.
	CountDraftEntriesInTx(ctx context.Context, tx pgx.Tx, tenantID, fiscalYearID string) (int, error)
}

// JournalRepositoryFacade combines all journal-related repository interfaces
type JournalRepositoryFacade interface {
	JournalReader
	LedgerReader
	JournalTransactionSupport
}

// JournalRepositoryWithTx extends JournalRepositoryFacade with transaction capabilities
type JournalRepositoryWithTx interface {
	JournalRepositoryFacade
	TransactionManager
}
