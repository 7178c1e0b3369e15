package dto

import (
	"github.com/SscSPs/ledger_core/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReportPeriod identifies the fiscal year a report covers.
type ReportPeriod struct {
	FiscalYearID string `json:"fiscalYearID"`
	Name         string `json:"name"`
	StartDate    Date   `json:"startDate"`
	EndDate      Date   `json:"endDate"`
	IsLocked     bool   `json:"isLocked"`
}

// TrialBalanceRowResponse represents a row in the trial balance report response
type TrialBalanceRowResponse struct {
	AccountID string          `json:"accountID"`
	Code      string          `json:"code"`
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	Debit     decimal.Decimal `json:"debit"`
	Credit    decimal.Decimal `json:"credit"`
}

// TrialBalanceResponse represents the trial balance report response
type TrialBalanceResponse struct {
	Period ReportPeriod              `json:"period"`
	Rows   []TrialBalanceRowResponse `json:"rows"`
	Totals struct {
		Debit      decimal.Decimal `json:"debit"`
		Credit     decimal.Decimal `json:"credit"`
		Difference decimal.Decimal `json:"difference"`
		IsBalanced bool            `json:"isBalanced"`
	} `json:"totals"`
}

// AccountAmountResponse represents an account with its amount in a financial report
type AccountAmountResponse struct {
	AccountID string          `json:"accountID"`
	Code      string          `json:"code"`
	Name      string          `json:"name"`
	Amount    decimal.Decimal `json:"amount"`
}

// ProfitAndLossResponse represents the profit and loss report response
type ProfitAndLossResponse struct {
	Period   ReportPeriod            `json:"period"`
	Revenue  []AccountAmountResponse `json:"revenue"`
	Expenses []AccountAmountResponse `json:"expenses"`
	Summary  struct {
		TotalRevenue  decimal.Decimal `json:"totalRevenue"`
		TotalExpenses decimal.Decimal `json:"totalExpenses"`
		NetIncome     decimal.Decimal `json:"netIncome"`
	} `json:"summary"`
}

// BalanceSheetResponse represents the balance sheet report response
type BalanceSheetResponse struct {
	Period      ReportPeriod            `json:"period"`
	Assets      []AccountAmountResponse `json:"assets"`
	Liabilities []AccountAmountResponse `json:"liabilities"`
	Equity      []AccountAmountResponse `json:"equity"`
	Summary     struct {
		TotalAssets      decimal.Decimal `json:"totalAssets"`
		TotalLiabilities decimal.Decimal `json:"totalLiabilities"`
		RetainedEarnings decimal.Decimal `json:"retainedEarnings"`
		TotalEquity      decimal.Decimal `json:"totalEquity"`
		Imbalance        decimal.Decimal `json:"imbalance"`
		IsBalanced       bool            `json:"isBalanced"`
	} `json:"summary"`
}

func toReportPeriod(fy domain.FiscalYear) ReportPeriod {
	return ReportPeriod{
		FiscalYearID: fy.FiscalYearID,
		Name:         fy.Name,
		StartDate:    NewDate(fy.StartDate),
		EndDate:      NewDate(fy.EndDate),
		IsLocked:     fy.IsLocked,
	}
}

func toAccountAmounts(rows []domain.AccountAmount) []AccountAmountResponse {
	out := make([]AccountAmountResponse, len(rows))
	for i, r := range rows {
		out[i] = AccountAmountResponse{AccountID: r.AccountID, Code: r.Code, Name: r.Name, Amount: r.NetAmount}
	}
	return out
}

// ToTrialBalanceResponse converts a domain trial balance to a DTO response
func ToTrialBalanceResponse(report *domain.TrialBalanceReport) TrialBalanceResponse {
	response := TrialBalanceResponse{
		Period: toReportPeriod(report.FiscalYear),
		Rows:   make([]TrialBalanceRowResponse, len(report.Rows)),
	}
	for i, row := range report.Rows {
		response.Rows[i] = TrialBalanceRowResponse{
			AccountID: row.AccountID,
			Code:      row.Code,
			Name:      row.Name,
			Category:  string(row.Category),
			Debit:     row.Debit,
			Credit:    row.Credit,
		}
	}
	response.Totals.Debit = report.TotalDebit
	response.Totals.Credit = report.TotalCredit
	response.Totals.Difference = report.Difference
	response.Totals.IsBalanced = report.IsBalanced
	return response
}

// ToProfitAndLossResponse converts a domain P&L report to a DTO response
func ToProfitAndLossResponse(report *domain.PAndLReport) ProfitAndLossResponse {
	response := ProfitAndLossResponse{
		Period:   toReportPeriod(report.FiscalYear),
		Revenue:  toAccountAmounts(report.Revenue),
		Expenses: toAccountAmounts(report.Expenses),
	}
	response.Summary.TotalRevenue = report.TotalRevenue
	response.Summary.TotalExpenses = report.TotalExpenses
	response.Summary.NetIncome = report.NetIncome
	return response
}

// ToBalanceSheetResponse converts a domain balance sheet report to a DTO response
func ToBalanceSheetResponse(report *domain.BalanceSheetReport) BalanceSheetResponse {
	response := BalanceSheetResponse{
		Period:      toReportPeriod(report.FiscalYear),
		Assets:      toAccountAmounts(report.Assets),
		Liabilities: toAccountAmounts(report.Liabilities),
		Equity:      toAccountAmounts(report.Equity),
	}
	response.Summary.TotalAssets = report.TotalAssets
	response.Summary.TotalLiabilities = report.TotalLiabilities
	response.Summary.RetainedEarnings = report.RetainedEarnings
	response.Summary.TotalEquity = report.TotalEquity
	response.Summary.Imbalance = report.Imbalance
	response.Summary.IsBalanced = report.IsBalanced
	return response
}
