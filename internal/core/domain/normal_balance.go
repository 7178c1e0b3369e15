package domain

import "github.com/shopspring/decimal"

// NormalBalance is the side on which an account category increases.
type NormalBalance string

const (
	DebitNormal  NormalBalance = "DEBIT"
	CreditNormal NormalBalance = "CREDIT"
)

var normalBalances = map[AccountCategory]NormalBalance{
	Asset:     DebitNormal,
	Expense:   DebitNormal,
	Liability: CreditNormal,
	Equity:    CreditNormal,
	Revenue:   CreditNormal,
}

// NormalBalanceFor returns the presentation sign convention for a category.
// Unknown categories are treated as debit-normal.
func NormalBalanceFor(c AccountCategory) NormalBalance {
	if nb, ok := normalBalances[c]; ok {
		return nb
	}
	return DebitNormal
}

// NetAmount applies the category's sign convention to raw debit/credit totals.
func (c AccountCategory) NetAmount(totalDebit, totalCredit decimal.Decimal) decimal.Decimal {
	if NormalBalanceFor(c) == CreditNormal {
		return totalCredit.Sub(totalDebit)
	}
	return totalDebit.Sub(totalCredit)
}
