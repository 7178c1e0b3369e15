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

func sampleFiscalYear(locked bool) *domain.FiscalYear {
	fy := &domain.FiscalYear{
		FiscalYearID: uuid.NewString(),
		TenantID:     testTenantID,
		Name:         "FY2024",
		StartDate:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:      time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
		IsLocked:     locked,
	}
	if locked {
		lockedAt := time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC)
		fy.LockedAt = &lockedAt
	}
	return fy
}

func (suite *HandlerTestSuite) TestCreateFiscalYear_Success() {
	fy := sampleFiscalYear(false)
	suite.mockFiscalYearSvc.On("CreateFiscalYear", mock.Anything, testTenantID,
		mock.MatchedBy(func(r dto.CreateFiscalYearRequest) bool {
			return r.Name == "FY2024" && r.StartDate.String() == "2024-01-01" && r.EndDate.String() == "2024-12-31"
		}),
		suite.userID,
	).Return(fy, nil).Once()

	w := suite.doRequest(http.MethodPost, tenantPath("/fiscal-years"), `{"name":"FY2024","startDate":"2024-01-01","endDate":"2024-12-31"}`)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.FiscalYearResponse
	suite.decodeBody(w, &resp)
	suite.Equal(fy.FiscalYearID, resp.FiscalYearID)
	suite.False(resp.IsLocked)
}

func (suite *HandlerTestSuite) TestCreateFiscalYear_EndBeforeStart() {
	suite.mockFiscalYearSvc.On("CreateFiscalYear", mock.Anything, testTenantID, mock.Anything, suite.userID).
		Return(nil, fmt.Errorf("%w: end date must be after start date", apperrors.ErrValidation)).Once()

	w := suite.doRequest(http.MethodPost, tenantPath("/fiscal-years"), `{"name":"FY2024","startDate":"2024-12-31","endDate":"2024-01-01"}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(suite.errorMessage(w), "end date must be after start date")
}

func (suite *HandlerTestSuite) TestCreateFiscalYear_MalformedDate() {
	w := suite.doRequest(http.MethodPost, tenantPath("/fiscal-years"), `{"name":"FY2024","startDate":"01/01/2024","endDate":"2024-12-31"}`)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestListFiscalYears_Empty() {
	suite.mockFiscalYearSvc.On("ListFiscalYears", mock.Anything, testTenantID).Return([]domain.FiscalYear{}, nil).Once()

	w := suite.doRequest(http.MethodGet, tenantPath("/fiscal-years"), nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"fiscalYears":[]}`, w.Body.String())
}

func (suite *HandlerTestSuite) TestGetCurrentFiscalYear_WithDate() {
	fy := sampleFiscalYear(false)
	suite.mockFiscalYearSvc.On("FindContaining", mock.Anything, testTenantID,
		time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	).Return(fy, nil).Once()

	w := suite.doRequest(http.MethodGet, tenantPath("/fiscal-years/current?date=2024-03-01"), nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.FiscalYearResponse
	suite.decodeBody(w, &resp)
	suite.Equal(fy.FiscalYearID, resp.FiscalYearID)
}

func (suite *HandlerTestSuite) TestGetCurrentFiscalYear_NoneContainsDate() {
	suite.mockFiscalYearSvc.On("FindContaining", mock.Anything, testTenantID, mock.AnythingOfType("time.Time")).
		Return(nil, fmt.Errorf("%w: no fiscal year contains 2031-01-01", apperrors.ErrNotFound)).Once()

	w := suite.doRequest(http.MethodGet, tenantPath("/fiscal-years/current?date=2031-01-01"), nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestGetCurrentFiscalYear_InvalidDate() {
	w := suite.doRequest(http.MethodGet, tenantPath("/fiscal-years/current?date=March"), nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(suite.errorMessage(w), "YYYY-MM-DD")
}

func (suite *HandlerTestSuite) TestLockFiscalYear_Success() {
	fy := sampleFiscalYear(true)
	suite.mockFiscalYearSvc.On("LockFiscalYear", mock.Anything, testTenantID, fy.FiscalYearID, suite.userID).Return(fy, nil).Once()

	w := suite.doRequest(http.MethodPost, tenantPath("/fiscal-years/"+fy.FiscalYearID+"/lock"), nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.FiscalYearResponse
	suite.decodeBody(w, &resp)
	suite.True(resp.IsLocked)
	suite.NotNil(resp.LockedAt)
}

func (suite *HandlerTestSuite) TestLockFiscalYear_DraftsRemain() {
	fiscalYearID := uuid.NewString()
	suite.mockFiscalYearSvc.On("LockFiscalYear", mock.Anything, testTenantID, fiscalYearID, suite.userID).
		Return(nil, fmt.Errorf("%w: 2 draft entries remain in the fiscal year", apperrors.ErrConflict)).Once()

	w := suite.doRequest(http.MethodPost, tenantPath("/fiscal-years/"+fiscalYearID+"/lock"), nil)

	suite.Equal(http.StatusConflict, w.Code)
	suite.Contains(suite.errorMessage(w), "draft entries remain")
}

func (suite *HandlerTestSuite) TestUnlockFiscalYear_NotFound() {
	fiscalYearID := uuid.NewString()
	suite.mockFiscalYearSvc.On("UnlockFiscalYear", mock.Anything, testTenantID, fiscalYearID, suite.userID).
		Return(nil, fmt.Errorf("%w: fiscal year %s", apperrors.ErrNotFound, fiscalYearID)).Once()

	w := suite.doRequest(http.MethodPost, tenantPath("/fiscal-years/"+fiscalYearID+"/unlock"), nil)

	suite.Equal(http.StatusNotFound, w.Code)
}
