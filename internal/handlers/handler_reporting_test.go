package handlers_test

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/SscSPs/ledger_core/internal/apperrors"
	"github.com/SscSPs/ledger_core/internal/core/domain"
	"github.com/SscSPs/ledger_core/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func (suite *HandlerTestSuite) TestGetLedger_SingleAccount() {
	fy := sampleFiscalYear(false)
	cash := sampleAccount("1000", "Cash", domain.Asset)
	entryID := uuid.NewString()
	ledgers := []domain.AccountLedger{{
		Account: *cash,
		Lines: []domain.LedgerLine{
			{JournalEntryID: entryID, EntryDate: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
				Debit: decimal.NewFromInt(1000), Credit: decimal.Zero, RunningBalance: decimal.NewFromInt(1000)},
			{JournalEntryID: uuid.NewString(), EntryDate: time.Date(2024, 2, 3, 0, 0, 0, 0, time.UTC),
				Debit: decimal.Zero, Credit: decimal.NewFromInt(250), RunningBalance: decimal.NewFromInt(750)},
		},
		TotalDebit:     decimal.NewFromInt(1000),
		TotalCredit:    decimal.NewFromInt(250),
		ClosingBalance: decimal.NewFromInt(750),
	}}
	suite.mockLedgerService.On("BuildLedger", mock.Anything, testTenantID, fy.FiscalYearID,
		mock.MatchedBy(func(id *string) bool { return id != nil && *id == cash.AccountID }),
	).Return(ledgers, nil).Once()

	w := suite.doRequest(http.MethodGet, tenantPath("/fiscal-years/"+fy.FiscalYearID+"/ledger?account_id="+cash.AccountID), nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.LedgerResponse
	suite.decodeBody(w, &resp)
	suite.Equal(fy.FiscalYearID, resp.FiscalYearID)
	suite.Require().Len(resp.Accounts, 1)
	suite.Require().Len(resp.Accounts[0].Lines, 2)
	suite.Equal(entryID, resp.Accounts[0].Lines[0].JournalEntryID)
	suite.True(resp.Accounts[0].Lines[1].RunningBalance.Equal(decimal.NewFromInt(750)))
	suite.True(resp.Accounts[0].ClosingBalance.Equal(decimal.NewFromInt(750)))
}

func (suite *HandlerTestSuite) TestGetLedger_AllAccounts() {
	fiscalYearID := uuid.NewString()
	suite.mockLedgerService.On("BuildLedger", mock.Anything, testTenantID, fiscalYearID, (*string)(nil)).
		Return([]domain.AccountLedger{}, nil).Once()

	w := suite.doRequest(http.MethodGet, tenantPath("/fiscal-years/"+fiscalYearID+"/ledger"), nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.LedgerResponse
	suite.decodeBody(w, &resp)
	suite.Empty(resp.Accounts)
}

func (suite *HandlerTestSuite) TestGetTrialBalance_Success() {
	fy := sampleFiscalYear(false)
	cash := sampleAccount("1000", "Cash", domain.Asset)
	revenue := sampleAccount("4000", "Sales Revenue", domain.Revenue)
	report := &domain.TrialBalanceReport{
		FiscalYear: *fy,
		Rows: []domain.TrialBalanceRow{
			{AccountID: cash.AccountID, Code: "1000", Name: "Cash", Category: domain.Asset, Debit: decimal.NewFromInt(1000), Credit: decimal.Zero},
			{AccountID: revenue.AccountID, Code: "4000", Name: "Sales Revenue", Category: domain.Revenue, Debit: decimal.Zero, Credit: decimal.NewFromInt(1000)},
		},
		TotalDebit:  decimal.NewFromInt(1000),
		TotalCredit: decimal.NewFromInt(1000),
		Difference:  decimal.Zero,
		IsBalanced:  true,
	}
	suite.mockReportingSvc.On("TrialBalance", mock.Anything, testTenantID, fy.FiscalYearID).Return(report, nil).Once()

	w := suite.doRequest(http.MethodGet, tenantPath("/fiscal-years/"+fy.FiscalYearID+"/reports/trial-balance"), nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.TrialBalanceResponse
	suite.decodeBody(w, &resp)
	suite.Equal("FY2024", resp.Period.Name)
	suite.Require().Len(resp.Rows, 2)
	suite.Equal("ASSET", resp.Rows[0].Category)
	suite.True(resp.Totals.Debit.Equal(resp.Totals.Credit))
	suite.True(resp.Totals.IsBalanced)
}

func (suite *HandlerTestSuite) TestGetProfitAndLoss_Success() {
	fy := sampleFiscalYear(false)
	report := &domain.PAndLReport{
		FiscalYear:    *fy,
		Revenue:       []domain.AccountAmount{{AccountID: uuid.NewString(), Code: "4000", Name: "Sales Revenue", NetAmount: decimal.NewFromInt(1000)}},
		Expenses:      []domain.AccountAmount{{AccountID: uuid.NewString(), Code: "5100", Name: "Rent", NetAmount: decimal.NewFromInt(400)}},
		TotalRevenue:  decimal.NewFromInt(1000),
		TotalExpenses: decimal.NewFromInt(400),
		NetIncome:     decimal.NewFromInt(600),
	}
	suite.mockReportingSvc.On("ProfitAndLoss", mock.Anything, testTenantID, fy.FiscalYearID).Return(report, nil).Once()

	w := suite.doRequest(http.MethodGet, tenantPath("/fiscal-years/"+fy.FiscalYearID+"/reports/profit-and-loss"), nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ProfitAndLossResponse
	suite.decodeBody(w, &resp)
	suite.Len(resp.Revenue, 1)
	suite.Len(resp.Expenses, 1)
	suite.True(resp.Summary.NetIncome.Equal(decimal.NewFromInt(600)))
}

func (suite *HandlerTestSuite) TestGetBalanceSheet_ImbalanceIsReturnedAsData() {
	fy := sampleFiscalYear(true)
	report := &domain.BalanceSheetReport{
		FiscalYear:       *fy,
		Assets:           []domain.AccountAmount{{AccountID: uuid.NewString(), Code: "1000", Name: "Cash", NetAmount: decimal.NewFromInt(1000)}},
		Liabilities:      []domain.AccountAmount{},
		Equity:           []domain.AccountAmount{},
		RetainedEarnings: decimal.NewFromInt(900),
		TotalAssets:      decimal.NewFromInt(1000),
		TotalLiabilities: decimal.Zero,
		TotalEquity:      decimal.NewFromInt(900),
		Imbalance:        decimal.NewFromInt(100),
		IsBalanced:       false,
	}
	suite.mockReportingSvc.On("BalanceSheet", mock.Anything, testTenantID, fy.FiscalYearID).Return(report, nil).Once()

	w := suite.doRequest(http.MethodGet, tenantPath("/fiscal-years/"+fy.FiscalYearID+"/reports/balance-sheet"), nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.BalanceSheetResponse
	suite.decodeBody(w, &resp)
	suite.False(resp.Summary.IsBalanced)
	suite.True(resp.Summary.Imbalance.Equal(decimal.NewFromInt(100)))
	suite.True(resp.Period.IsLocked)
}

func (suite *HandlerTestSuite) TestGetBalanceSheet_FiscalYearNotFound() {
	fiscalYearID := uuid.NewString()
	suite.mockReportingSvc.On("BalanceSheet", mock.Anything, testTenantID, fiscalYearID).
		Return(nil, fmt.Errorf("%w: fiscal year %s", apperrors.ErrNotFound, fiscalYearID)).Once()

	w := suite.doRequest(http.MethodGet, tenantPath("/fiscal-years/"+fiscalYearID+"/reports/balance-sheet"), nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestGetTrialBalance_UnexpectedError() {
	fiscalYearID := uuid.NewString()
	suite.mockReportingSvc.On("TrialBalance", mock.Anything, testTenantID, fiscalYearID).
		Return(nil, errors.New("pool closed")).Once()

	w := suite.doRequest(http.MethodGet, tenantPath("/fiscal-years/"+fiscalYearID+"/reports/trial-balance"), nil)

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.Equal("Failed to generate trial balance", suite.errorMessage(w))
}

func (suite *HandlerTestSuite) TestFiscalYearScopedRoutes_MalformedFiscalYearID() {
	for _, path := range []string{
		"/fiscal-years/2024",
		"/fiscal-years/2024/lock",
		"/fiscal-years/2024/ledger",
		"/fiscal-years/2024/reports/trial-balance",
		"/fiscal-years/2024/reports/balance-sheet",
	} {
		method := http.MethodGet
		if path == "/fiscal-years/2024/lock" {
			method = http.MethodPost
		}
		w := suite.doRequest(method, tenantPath(path), nil)
		suite.Equal(http.StatusNotFound, w.Code, path)
	}
}

func (suite *HandlerTestSuite) TestGetLedger_MalformedAccountID() {
	w := suite.doRequest(http.MethodGet, tenantPath("/fiscal-years/"+uuid.NewString()+"/ledger?account_id=cash"), nil)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.Contains(suite.errorMessage(w), "account cash")
	suite.mockLedgerService.AssertNotCalled(suite.T(), "BuildLedger", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
