package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalStatus indicates the lifecycle state of a journal entry.
type JournalStatus string

const (
	// Draft entries are stored but invisible to ledgers and reports.
	Draft  JournalStatus = "DRAFT"
	Posted JournalStatus = "POSTED"
)

// JournalEntry is a balanced set of debit and credit lines recorded on one date.
type JournalEntry struct {
	JournalEntryID string        `json:"journalEntryID"`
	TenantID       string        `json:"tenantID"`
	FiscalYearID   string        `json:"fiscalYearID"`
	EntryDate      time.Time     `json:"entryDate"`
	Reference      *string       `json:"reference,omitempty"`
	Memo           *string       `json:"memo,omitempty"`
	Status         JournalStatus `json:"status"`
	PostedAt       *time.Time    `json:"postedAt,omitempty"`
	ReversalOfID   *string       `json:"reversalOfID,omitempty"`
	ReversedByID   *string       `json:"reversedByID,omitempty"`
	Lines          []JournalLine `json:"lines,omitempty"`
	AuditFields
}

// IsPosted reports whether the entry counts towards ledgers and reports.
func (e JournalEntry) IsPosted() bool {
	return e.Status == Posted
}

// JournalLine is one side of a journal entry against a single account.
// Account code, name and category are resolved on read for display.
type JournalLine struct {
	LineID          string          `json:"lineID"`
	JournalEntryID  string          `json:"journalEntryID"`
	LineNo          int             `json:"lineNo"`
	AccountID       string          `json:"accountID"`
	Debit           decimal.Decimal `json:"debit"`
	Credit          decimal.Decimal `json:"credit"`
	Memo            *string         `json:"memo,omitempty"`
	AccountCode     string          `json:"accountCode"`
	AccountName     string          `json:"accountName"`
	AccountCategory AccountCategory `json:"accountCategory"`
}

// JournalLineInput is a line as supplied by a caller, before ids are assigned.
type JournalLineInput struct {
	AccountID string
	Debit     decimal.Decimal
	Credit    decimal.Decimal
	Memo      *string
}
