package accounting

import (
	"sort"

	"github.com/SscSPs/ledger_core/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SortPostedLines orders lines by entry date, then entry creation, then entry id and line number.
func SortPostedLines(lines []domain.PostedLine) {
	sort.SliceStable(lines, func(i, j int) bool {
		a, b := lines[i], lines[j]
		if !a.EntryDate.Equal(b.EntryDate) {
			return a.EntryDate.Before(b.EntryDate)
		}
		if !a.EntryCreatedAt.Equal(b.EntryCreatedAt) {
			return a.EntryCreatedAt.Before(b.EntryCreatedAt)
		}
		if a.JournalEntryID != b.JournalEntryID {
			return a.JournalEntryID < b.JournalEntryID
		}
		return a.LineNo < b.LineNo
	})
}

// ProjectLedgers groups posted lines per account and computes a debit-positive running balance
// starting from zero. The result is ordered by account code; accounts without lines are skipped
// unless listed in keep.
func ProjectLedgers(accounts map[string]domain.Account, lines []domain.PostedLine, keep ...string) []domain.AccountLedger {
	SortPostedLines(lines)

	byAccount := make(map[string]*domain.AccountLedger)
	get := func(accountID string) *domain.AccountLedger {
		l, ok := byAccount[accountID]
		if !ok {
			l = &domain.AccountLedger{
				Account:        accounts[accountID],
				Lines:          []domain.LedgerLine{},
				TotalDebit:     decimal.Zero,
				TotalCredit:    decimal.Zero,
				ClosingBalance: decimal.Zero,
			}
			byAccount[accountID] = l
		}
		return l
	}

	for _, id := range keep {
		get(id)
	}

	for _, pl := range lines {
		if _, known := accounts[pl.AccountID]; !known {
			continue
		}
		l := get(pl.AccountID)
		l.ClosingBalance = l.ClosingBalance.Add(pl.Debit).Sub(pl.Credit)
		l.TotalDebit = l.TotalDebit.Add(pl.Debit)
		l.TotalCredit = l.TotalCredit.Add(pl.Credit)
		l.Lines = append(l.Lines, domain.LedgerLine{
			JournalEntryID: pl.JournalEntryID,
			EntryDate:      pl.EntryDate,
			Reference:      pl.Reference,
			Memo:           pl.Memo,
			LineMemo:       pl.LineMemo,
			Debit:          pl.Debit,
			Credit:         pl.Credit,
			RunningBalance: l.ClosingBalance,
		})
	}

	ledgers := make([]domain.AccountLedger, 0, len(byAccount))
	for _, l := range byAccount {
		ledgers = append(ledgers, *l)
	}
	sort.Slice(ledgers, func(i, j int) bool {
		return ledgers[i].Account.Code < ledgers[j].Account.Code
	})
	return ledgers
}

// TotalsFromLedgers reduces projected ledgers to per-account totals.
func TotalsFromLedgers(ledgers []domain.AccountLedger) []domain.AccountTotals {
	totals := make([]domain.AccountTotals, 0, len(ledgers))
	for _, l := range ledgers {
		totals = append(totals, domain.AccountTotals{
			Account:     l.Account,
			TotalDebit:  l.TotalDebit,
			TotalCredit: l.TotalCredit,
		})
	}
	return totals
}
