package dto

import (
	"github.com/SscSPs/ledger_core/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LedgerLineResponse is one posted line with the account's running balance.
type LedgerLineResponse struct {
	JournalEntryID string          `json:"journalEntryID"`
	Date           Date            `json:"date"`
	Reference      *string         `json:"reference,omitempty"`
	Memo           *string         `json:"memo,omitempty"`
	LineMemo       *string         `json:"lineMemo,omitempty"`
	Debit          decimal.Decimal `json:"debit"`
	Credit         decimal.Decimal `json:"credit"`
	RunningBalance decimal.Decimal `json:"runningBalance"`
}

// AccountLedgerResponse is the period history of one account.
type AccountLedgerResponse struct {
	AccountID      string                 `json:"accountID"`
	Code           string                 `json:"code"`
	Name           string                 `json:"name"`
	Category       domain.AccountCategory `json:"category"`
	Lines          []LedgerLineResponse   `json:"lines"`
	TotalDebit     decimal.Decimal        `json:"totalDebit"`
	TotalCredit    decimal.Decimal        `json:"totalCredit"`
	ClosingBalance decimal.Decimal        `json:"closingBalance"`
}

// LedgerResponse is the general ledger of a fiscal year.
type LedgerResponse struct {
	FiscalYearID string                  `json:"fiscalYearID"`
	Accounts     []AccountLedgerResponse `json:"accounts"`
}

// ToLedgerResponse converts projected ledgers to the DTO.
func ToLedgerResponse(fiscalYearID string, ledgers []domain.AccountLedger) LedgerResponse {
	resp := LedgerResponse{FiscalYearID: fiscalYearID, Accounts: make([]AccountLedgerResponse, len(ledgers))}
	for i, l := range ledgers {
		lines := make([]LedgerLineResponse, len(l.Lines))
		for j, ln := range l.Lines {
			lines[j] = LedgerLineResponse{
				JournalEntryID: ln.JournalEntryID,
				Date:           NewDate(ln.EntryDate),
				Reference:      ln.Reference,
				Memo:           ln.Memo,
				LineMemo:       ln.LineMemo,
				Debit:          ln.Debit,
				Credit:         ln.Credit,
				RunningBalance: ln.RunningBalance,
			}
		}
		resp.Accounts[i] = AccountLedgerResponse{
			AccountID:      l.Account.AccountID,
			Code:           l.Account.Code,
			Name:           l.Account.Name,
			Category:       l.Account.Category,
			Lines:          lines,
			TotalDebit:     l.TotalDebit,
			TotalCredit:    l.TotalCredit,
			ClosingBalance: l.ClosingBalance,
		}
	}
	return resp
}
