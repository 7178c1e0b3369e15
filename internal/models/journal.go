package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalEntry is a row of the journal_entries table.
type JournalEntry struct {
	JournalEntryID string     `db:"journal_entry_id"`
	TenantID       string     `db:"tenant_id"`
	FiscalYearID   string     `db:"fiscal_year_id"`
	EntryDate      time.Time  `db:"entry_date"`
	Reference      *string    `db:"reference"`
	Memo           *string    `db:"memo"`
	Status         string     `db:"status"`
	PostedAt       *time.Time `db:"posted_at"`
	ReversalOfID   *string    `db:"reversal_of_id"`
	ReversedByID   *string    `db:"reversed_by_id"`
	AuditFields
}

// JournalLine is a row of journal_lines, optionally joined with the account's display columns.
type JournalLine struct {
	LineID          string          `db:"line_id"`
	JournalEntryID  string          `db:"journal_entry_id"`
	LineNo          int             `db:"line_no"`
	AccountID       string          `db:"account_id"`
	Debit           decimal.Decimal `db:"debit"`
	Credit          decimal.Decimal `db:"credit"`
	Memo            *string         `db:"memo"`
	AccountCode     string          `db:"account_code"`
	AccountName     string          `db:"account_name"`
	AccountCategory string          `db:"account_category"`
}

// PostedLine is a posted journal line joined with its entry header.
type PostedLine struct {
	JournalEntryID string          `db:"journal_entry_id"`
	EntryDate      time.Time       `db:"entry_date"`
	EntryCreatedAt time.Time       `db:"entry_created_at"`
	Reference      *string         `db:"reference"`
	EntryMemo      *string         `db:"entry_memo"`
	LineNo         int             `db:"line_no"`
	AccountID      string          `db:"account_id"`
	Debit          decimal.Decimal `db:"debit"`
	Credit         decimal.Decimal `db:"credit"`
	LineMemo       *string         `db:"line_memo"`
}
