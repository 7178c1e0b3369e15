package handlers_test

import (
	"fmt"
	"net/http"
	"time"

	"github.com/SscSPs/ledger_core/internal/apperrors"
	"github.com/SscSPs/ledger_core/internal/core/domain"
	"github.com/SscSPs/ledger_core/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

func sampleAccount(code, name string, category domain.AccountCategory) *domain.Account {
	now := time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC)
	return &domain.Account{
		AccountID: uuid.NewString(),
		TenantID:  testTenantID,
		Code:      code,
		Name:      name,
		Category:  category,
		IsActive:  true,
		AuditFields: domain.AuditFields{
			CreatedAt: now, CreatedBy: "user", LastUpdatedAt: now, LastUpdatedBy: "user",
		},
	}
}

func (suite *HandlerTestSuite) TestCreateAccount_Success() {
	account := sampleAccount("1000", "Cash", domain.Asset)
	suite.mockAccountService.On("CreateAccount", mock.Anything, testTenantID,
		mock.MatchedBy(func(r dto.CreateAccountRequest) bool {
			return r.Code == "1000" && r.Name == "Cash" && r.Category == "asset"
		}),
		suite.userID,
	).Return(account, nil).Once()

	w := suite.doRequest(http.MethodPost, tenantPath("/accounts"), `{"code":"1000","name":"Cash","category":"asset"}`)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.AccountResponse
	suite.decodeBody(w, &resp)
	suite.Equal(account.AccountID, resp.AccountID)
	suite.Equal(domain.Asset, resp.Category)
	suite.True(resp.IsActive)
}

func (suite *HandlerTestSuite) TestCreateAccount_InvalidCategory() {
	w := suite.doRequest(http.MethodPost, tenantPath("/accounts"), `{"code":"1000","name":"Cash","category":"Gold"}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(suite.errorMessage(w), "Invalid request format")
	suite.mockAccountService.AssertNotCalled(suite.T(), "CreateAccount", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestCreateAccount_MissingName() {
	w := suite.doRequest(http.MethodPost, tenantPath("/accounts"), `{"code":"1000","category":"ASSET"}`)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestCreateAccount_DuplicateCode() {
	suite.mockAccountService.On("CreateAccount", mock.Anything, testTenantID, mock.Anything, suite.userID).
		Return(nil, fmt.Errorf("%w: account code 1000 already exists", apperrors.ErrDuplicate)).Once()

	w := suite.doRequest(http.MethodPost, tenantPath("/accounts"), `{"code":"1000","name":"Cash","category":"ASSET"}`)

	suite.Equal(http.StatusConflict, w.Code)
	suite.Contains(suite.errorMessage(w), "already exists")
}

func (suite *HandlerTestSuite) TestCreateAccount_ParentNotFound() {
	suite.mockAccountService.On("CreateAccount", mock.Anything, testTenantID, mock.Anything, suite.userID).
		Return(nil, fmt.Errorf("%w: parent account not found or inactive", apperrors.ErrNotFound)).Once()

	body := fmt.Sprintf(`{"code":"1010","name":"Petty Cash","category":"ASSET","parentAccountID":%q}`, uuid.NewString())
	w := suite.doRequest(http.MethodPost, tenantPath("/accounts"), body)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestListAccounts_Success() {
	parent := sampleAccount("1000", "Cash", domain.Asset)
	child := sampleAccount("1010", "Petty Cash", domain.Asset)
	child.ParentAccountID = &parent.AccountID
	parentRef := parent.Ref()
	summaries := []domain.AccountSummary{
		{Account: *parent, ChildCount: 1},
		{Account: *child, Parent: &parentRef},
	}
	suite.mockAccountService.On("ListAccounts", mock.Anything, testTenantID).Return(summaries, nil).Once()

	w := suite.doRequest(http.MethodGet, tenantPath("/accounts"), nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListAccountsResponse
	suite.decodeBody(w, &resp)
	suite.Require().Len(resp.Accounts, 2)
	suite.Equal(1, resp.Accounts[0].ChildCount)
	suite.Nil(resp.Accounts[0].Parent)
	suite.Require().NotNil(resp.Accounts[1].Parent)
	suite.Equal("1000", resp.Accounts[1].Parent.Code)
}

func (suite *HandlerTestSuite) TestSeedStarterChart_Created() {
	fy := &domain.FiscalYear{
		FiscalYearID: uuid.NewString(),
		Name:         "FY2024",
		StartDate:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:      time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
	}
	suite.mockAccountService.On("SeedStarterChart", mock.Anything, testTenantID, suite.userID).
		Return(&domain.SeedResult{Seeded: true, Message: "Created 14 accounts", AccountsCreated: 14, FiscalYear: fy}, nil).Once()

	w := suite.doRequest(http.MethodPost, tenantPath("/accounts/seed"), nil)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.SeedChartResponse
	suite.decodeBody(w, &resp)
	suite.True(resp.Seeded)
	suite.Equal(14, resp.AccountsCreated)
	suite.Require().NotNil(resp.FiscalYear)
	suite.Equal("2024-01-01", resp.FiscalYear.StartDate.String())
}

func (suite *HandlerTestSuite) TestSeedStarterChart_AlreadySetUp() {
	suite.mockAccountService.On("SeedStarterChart", mock.Anything, testTenantID, suite.userID).
		Return(&domain.SeedResult{Seeded: false, Message: "Chart of accounts already set up (14 accounts)"}, nil).Once()

	w := suite.doRequest(http.MethodPost, tenantPath("/accounts/seed"), nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.SeedChartResponse
	suite.decodeBody(w, &resp)
	suite.False(resp.Seeded)
	suite.Contains(resp.Message, "already set up")
	suite.Nil(resp.FiscalYear)
}

func (suite *HandlerTestSuite) TestGetAccount_NotFound() {
	accountID := uuid.NewString()
	suite.mockAccountService.On("GetAccountByID", mock.Anything, testTenantID, accountID).
		Return(nil, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, accountID)).Once()

	w := suite.doRequest(http.MethodGet, tenantPath("/accounts/"+accountID), nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestUpdateAccount_Success() {
	account := sampleAccount("1000", "Cash on Hand", domain.Asset)
	suite.mockAccountService.On("UpdateAccount", mock.Anything, testTenantID, account.AccountID,
		mock.MatchedBy(func(r dto.UpdateAccountRequest) bool {
			return r.Name != nil && *r.Name == "Cash on Hand" && r.Description == nil
		}),
		suite.userID,
	).Return(account, nil).Once()

	w := suite.doRequest(http.MethodPatch, tenantPath("/accounts/"+account.AccountID), `{"name":"Cash on Hand"}`)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.AccountResponse
	suite.decodeBody(w, &resp)
	suite.Equal("Cash on Hand", resp.Name)
}

func (suite *HandlerTestSuite) TestDeactivateAccount_NoContent() {
	accountID := uuid.NewString()
	suite.mockAccountService.On("DeactivateAccount", mock.Anything, testTenantID, accountID, suite.userID).Return(nil).Once()

	w := suite.doRequest(http.MethodDelete, tenantPath("/accounts/"+accountID), nil)

	suite.Equal(http.StatusNoContent, w.Code)
}

func (suite *HandlerTestSuite) TestDeactivateAccount_InternalError() {
	accountID := uuid.NewString()
	suite.mockAccountService.On("DeactivateAccount", mock.Anything, testTenantID, accountID, suite.userID).
		Return(apperrors.NewAppError(500, "failed to deactivate account", fmt.Errorf("connection reset"))).Once()

	w := suite.doRequest(http.MethodDelete, tenantPath("/accounts/"+accountID), nil)

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.Equal("Failed to deactivate account", suite.errorMessage(w))
}

func (suite *HandlerTestSuite) TestGetAccount_MalformedAccountID() {
	w := suite.doRequest(http.MethodGet, tenantPath("/accounts/1000"), nil)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockAccountService.AssertNotCalled(suite.T(), "GetAccountByID", mock.Anything, mock.Anything, mock.Anything)
}
