package accounting

import (
	"sort"

	"github.com/SscSPs/ledger_core/internal/core/domain"
	"github.com/shopspring/decimal"
)

func sortTotalsByCode(totals []domain.AccountTotals) []domain.AccountTotals {
	sorted := make([]domain.AccountTotals, len(totals))
	copy(sorted, totals)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Account.Code < sorted[j].Account.Code
	})
	return sorted
}

// BuildTrialBalance lists raw debit/credit totals for every account with activity.
func BuildTrialBalance(fy domain.FiscalYear, totals []domain.AccountTotals) domain.TrialBalanceReport {
	report := domain.TrialBalanceReport{
		FiscalYear:  fy,
		Rows:        []domain.TrialBalanceRow{},
		TotalDebit:  decimal.Zero,
		TotalCredit: decimal.Zero,
	}
	for _, t := range sortTotalsByCode(totals) {
		if t.TotalDebit.IsZero() && t.TotalCredit.IsZero() {
			continue
		}
		report.Rows = append(report.Rows, domain.TrialBalanceRow{
			AccountID: t.Account.AccountID,
			Code:      t.Account.Code,
			Name:      t.Account.Name,
			Category:  t.Account.Category,
			Debit:     t.TotalDebit,
			Credit:    t.TotalCredit,
		})
		report.TotalDebit = report.TotalDebit.Add(t.TotalDebit)
		report.TotalCredit = report.TotalCredit.Add(t.TotalCredit)
	}
	report.Difference = report.TotalDebit.Sub(report.TotalCredit)
	report.IsBalanced = WithinTolerance(report.Difference)
	return report
}

// netRows returns sign-adjusted rows for one category, skipping zero nets, plus their sum.
func netRows(totals []domain.AccountTotals, category domain.AccountCategory) ([]domain.AccountAmount, decimal.Decimal) {
	rows := []domain.AccountAmount{}
	sum := decimal.Zero
	for _, t := range totals {
		if t.Account.Category != category {
			continue
		}
		net := category.NetAmount(t.TotalDebit, t.TotalCredit)
		if net.IsZero() {
			continue
		}
		rows = append(rows, domain.AccountAmount{
			AccountID: t.Account.AccountID,
			Code:      t.Account.Code,
			Name:      t.Account.Name,
			NetAmount: net,
		})
		sum = sum.Add(net)
	}
	return rows, sum
}

// BuildProfitAndLoss nets revenue (credit-positive) against expenses (debit-positive).
func BuildProfitAndLoss(fy domain.FiscalYear, totals []domain.AccountTotals) domain.PAndLReport {
	sorted := sortTotalsByCode(totals)
	revenue, totalRevenue := netRows(sorted, domain.Revenue)
	expenses, totalExpenses := netRows(sorted, domain.Expense)
	return domain.PAndLReport{
		FiscalYear:    fy,
		Revenue:       revenue,
		Expenses:      expenses,
		TotalRevenue:  totalRevenue,
		TotalExpenses: totalExpenses,
		NetIncome:     totalRevenue.Sub(totalExpenses),
	}
}

// BuildBalanceSheet groups assets, liabilities and equity, folds the period's net income
// into equity as retained earnings and reports any residual as Imbalance.
func BuildBalanceSheet(fy domain.FiscalYear, totals []domain.AccountTotals) domain.BalanceSheetReport {
	sorted := sortTotalsByCode(totals)
	assets, totalAssets := netRows(sorted, domain.Asset)
	liabilities, totalLiabilities := netRows(sorted, domain.Liability)
	equity, totalEquity := netRows(sorted, domain.Equity)
	retained := BuildProfitAndLoss(fy, sorted).NetIncome

	totalEquity = totalEquity.Add(retained)
	imbalance := totalAssets.Sub(totalLiabilities.Add(totalEquity))

	return domain.BalanceSheetReport{
		FiscalYear:       fy,
		Assets:           assets,
		Liabilities:      liabilities,
		Equity:           equity,
		RetainedEarnings: retained,
		TotalAssets:      totalAssets,
		TotalLiabilities: totalLiabilities,
		TotalEquity:      totalEquity,
		Imbalance:        imbalance,
		IsBalanced:       WithinTolerance(imbalance),
	}
}
