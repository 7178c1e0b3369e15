package accounting

import (
	"fmt"

	"github.com/SscSPs/ledger_core/internal/apperrors"
	"github.com/SscSPs/ledger_core/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BalanceTolerance is the largest |debits - credits| still accepted as balanced.
var BalanceTolerance = decimal.RequireFromString("0.01")

// MoneyScale is the number of decimal places accepted on line amounts.
const MoneyScale = 2

var (
	ErrUnbalancedEntry   = fmt.Errorf("%w: unbalanced entry", apperrors.ErrValidation)
	ErrInsufficientLines = fmt.Errorf("%w: insufficient lines", apperrors.ErrValidation)
	ErrNegativeAmount    = fmt.Errorf("%w: debit and credit must not be negative", apperrors.ErrValidation)
	ErrAmountPrecision   = fmt.Errorf("%w: amounts allow at most 2 decimal places", apperrors.ErrValidation)
)

// WithinTolerance reports whether |d| <= BalanceTolerance.
func WithinTolerance(d decimal.Decimal) bool {
	return d.Abs().LessThanOrEqual(BalanceTolerance)
}

// ValidateAmount checks a single debit or credit value.
func ValidateAmount(d decimal.Decimal) error {
	if d.IsNegative() {
		return ErrNegativeAmount
	}
	if !d.Equal(d.Round(MoneyScale)) {
		return ErrAmountPrecision
	}
	return nil
}

// SumLines returns the total debits and credits of the given lines.
func SumLines(lines []domain.JournalLineInput) (decimal.Decimal, decimal.Decimal) {
	debit, credit := decimal.Zero, decimal.Zero
	for _, l := range lines {
		debit = debit.Add(l.Debit)
		credit = credit.Add(l.Credit)
	}
	return debit, credit
}

// ValidateEntryLines enforces the double-entry rules on a set of lines:
// non-negative cent amounts, debits equal credits within tolerance, and at least
// two lines carrying a positive amount.
func ValidateEntryLines(lines []domain.JournalLineInput) error {
	for i, l := range lines {
		if err := ValidateAmount(l.Debit); err != nil {
			return fmt.Errorf("line %d debit: %w", i+1, err)
		}
		if err := ValidateAmount(l.Credit); err != nil {
			return fmt.Errorf("line %d credit: %w", i+1, err)
		}
	}

	debit, credit := SumLines(lines)
	if !WithinTolerance(debit.Sub(credit)) {
		return fmt.Errorf("%w: debits %s, credits %s", ErrUnbalancedEntry, debit.StringFixed(MoneyScale), credit.StringFixed(MoneyScale))
	}

	positive := 0
	for _, l := range lines {
		if l.Debit.IsPositive() || l.Credit.IsPositive() {
			positive++
		}
	}
	if positive < 2 {
		return fmt.Errorf("%w: need at least 2 lines with an amount, got %d", ErrInsufficientLines, positive)
	}
	return nil
}

// LinesToInputs converts stored lines back to inputs, e.g. to re-validate a draft.
func LinesToInputs(lines []domain.JournalLine) []domain.JournalLineInput {
	inputs := make([]domain.JournalLineInput, len(lines))
	for i, l := range lines {
		inputs[i] = domain.JournalLineInput{AccountID: l.AccountID, Debit: l.Debit, Credit: l.Credit, Memo: l.Memo}
	}
	return inputs
}

// ReverseLines swaps debit and credit on every line.
func ReverseLines(lines []domain.JournalLine) []domain.JournalLineInput {
	inputs := LinesToInputs(lines)
	for i := range inputs {
		inputs[i].Debit, inputs[i].Credit = inputs[i].Credit, inputs[i].Debit
	}
	return inputs
}
