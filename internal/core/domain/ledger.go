package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PostedLine is a posted journal line joined with its entry metadata, as read for projection.
type PostedLine struct {
	JournalEntryID string
	EntryDate      time.Time
	EntryCreatedAt time.Time
	Reference      *string
	Memo           *string
	LineNo         int
	AccountID      string
	Debit          decimal.Decimal
	Credit         decimal.Decimal
	LineMemo       *string
}

// LedgerLine is a posted line annotated with the account's debit-positive running balance.
type LedgerLine struct {
	JournalEntryID string          `json:"journalEntryID"`
	EntryDate      time.Time       `json:"entryDate"`
	Reference      *string         `json:"reference,omitempty"`
	Memo           *string         `json:"memo,omitempty"`
	LineMemo       *string         `json:"lineMemo,omitempty"`
	Debit          decimal.Decimal `json:"debit"`
	Credit         decimal.Decimal `json:"credit"`
	RunningBalance decimal.Decimal `json:"runningBalance"`
}

// AccountLedger is the period history of one account.
type AccountLedger struct {
	Account        Account         `json:"account"`
	Lines          []LedgerLine    `json:"lines"`
	TotalDebit     decimal.Decimal `json:"totalDebit"`
	TotalCredit    decimal.Decimal `json:"totalCredit"`
	ClosingBalance decimal.Decimal `json:"closingBalance"`
}

// AccountTotals holds raw posted debit and credit sums for one account in a period.
type AccountTotals struct {
	Account     Account
	TotalDebit  decimal.Decimal
	TotalCredit decimal.Decimal
}
