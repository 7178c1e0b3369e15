package handlers_test

import (
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

func strPtr(s string) *string {
	return &s
}

func samplePostedEntry(cashID, revenueID string) *domain.JournalEntry {
	entryID := uuid.NewString()
	postedAt := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	return &domain.JournalEntry{
		JournalEntryID: entryID,
		TenantID:       testTenantID,
		FiscalYearID:   uuid.NewString(),
		EntryDate:      time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		Reference:      strPtr("INV:1002"),
		Status:         domain.Posted,
		PostedAt:       &postedAt,
		Lines: []domain.JournalLine{
			{LineID: uuid.NewString(), JournalEntryID: entryID, LineNo: 1, AccountID: cashID, AccountCode: "1000", AccountName: "Cash",
				AccountCategory: domain.Asset, Debit: decimal.RequireFromString("1000.00"), Credit: decimal.Zero},
			{LineID: uuid.NewString(), JournalEntryID: entryID, LineNo: 2, AccountID: revenueID, AccountCode: "4000", AccountName: "Sales Revenue",
				AccountCategory: domain.Revenue, Debit: decimal.Zero, Credit: decimal.RequireFromString("1000.00")},
		},
		AuditFields: domain.AuditFields{CreatedAt: postedAt, CreatedBy: "user"},
	}
}

func (suite *HandlerTestSuite) TestPostJournalEntry_Success() {
	cashID, revenueID := uuid.NewString(), uuid.NewString()
	entry := samplePostedEntry(cashID, revenueID)
	body := fmt.Sprintf(`{
		"fiscalYearID": %q,
		"date": "2024-03-15",
		"reference": "INV:1002",
		"lines": [
			{"accountID": %q, "debit": "1000.00", "credit": "0"},
			{"accountID": %q, "debit": "0", "credit": "1000.00"}
		]
	}`, entry.FiscalYearID, cashID, revenueID)

	suite.mockJournalService.On("PostJournalEntry", mock.Anything, testTenantID,
		mock.MatchedBy(func(r dto.PostJournalEntryRequest) bool {
			return r.ShouldPost() &&
				len(r.Lines) == 2 &&
				r.Lines[0].Debit.Equal(decimal.NewFromInt(1000)) &&
				r.Lines[1].Credit.Equal(decimal.NewFromInt(1000)) &&
				r.Date.String() == "2024-03-15"
		}),
		suite.userID,
	).Return(entry, nil).Once()

	w := suite.doRequest(http.MethodPost, tenantPath("/journal-entries"), body)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.JournalEntryResponse
	suite.decodeBody(w, &resp)
	suite.Equal(entry.JournalEntryID, resp.JournalEntryID)
	suite.True(resp.IsPosted)
	suite.True(resp.TotalDebit.Equal(resp.TotalCredit))
	suite.Require().Len(resp.Lines, 2)
	suite.Equal("1000", resp.Lines[0].AccountCode)
}

func (suite *HandlerTestSuite) TestPostJournalEntry_DraftFlag() {
	entry := samplePostedEntry(uuid.NewString(), uuid.NewString())
	entry.Status = domain.Draft
	entry.PostedAt = nil
	body := fmt.Sprintf(`{"fiscalYearID":%q,"date":"2024-03-15","post":false,"lines":[
		{"accountID":%q,"debit":"10"},{"accountID":%q,"credit":"10"}]}`,
		entry.FiscalYearID, uuid.NewString(), uuid.NewString())

	suite.mockJournalService.On("PostJournalEntry", mock.Anything, testTenantID,
		mock.MatchedBy(func(r dto.PostJournalEntryRequest) bool { return !r.ShouldPost() }),
		suite.userID,
	).Return(entry, nil).Once()

	w := suite.doRequest(http.MethodPost, tenantPath("/journal-entries"), body)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.JournalEntryResponse
	suite.decodeBody(w, &resp)
	suite.Equal(domain.Draft, resp.Status)
	suite.False(resp.IsPosted)
}

func (suite *HandlerTestSuite) TestPostJournalEntry_RejectsSubCentAmount() {
	body := fmt.Sprintf(`{"fiscalYearID":%q,"date":"2024-03-15","lines":[
		{"accountID":%q,"debit":"10.005"},{"accountID":%q,"credit":"10.005"}]}`,
		uuid.NewString(), uuid.NewString(), uuid.NewString())

	w := suite.doRequest(http.MethodPost, tenantPath("/journal-entries"), body)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(suite.errorMessage(w), "decimal_amount")
	suite.mockJournalService.AssertNotCalled(suite.T(), "PostJournalEntry", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestPostJournalEntry_RejectsNegativeAmount() {
	body := fmt.Sprintf(`{"fiscalYearID":%q,"date":"2024-03-15","lines":[
		{"accountID":%q,"debit":"-5"},{"accountID":%q,"credit":"-5"}]}`,
		uuid.NewString(), uuid.NewString(), uuid.NewString())

	w := suite.doRequest(http.MethodPost, tenantPath("/journal-entries"), body)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestPostJournalEntry_Unbalanced() {
	suite.mockJournalService.On("PostJournalEntry", mock.Anything, testTenantID, mock.Anything, suite.userID).
		Return(nil, fmt.Errorf("%w: unbalanced entry: debits 500.00, credits 450.00", apperrors.ErrValidation)).Once()
	body := fmt.Sprintf(`{"fiscalYearID":%q,"date":"2024-03-15","lines":[
		{"accountID":%q,"debit":"500"},{"accountID":%q,"credit":"450"}]}`,
		uuid.NewString(), uuid.NewString(), uuid.NewString())

	w := suite.doRequest(http.MethodPost, tenantPath("/journal-entries"), body)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(suite.errorMessage(w), "unbalanced entry")
}

func (suite *HandlerTestSuite) TestPostJournalEntry_LockedPeriod() {
	suite.mockJournalService.On("PostJournalEntry", mock.Anything, testTenantID, mock.Anything, suite.userID).
		Return(nil, fmt.Errorf("%w: locked period FY2023", apperrors.ErrConflict)).Once()
	body := fmt.Sprintf(`{"fiscalYearID":%q,"date":"2023-06-01","lines":[
		{"accountID":%q,"debit":"10"},{"accountID":%q,"credit":"10"}]}`,
		uuid.NewString(), uuid.NewString(), uuid.NewString())

	w := suite.doRequest(http.MethodPost, tenantPath("/journal-entries"), body)

	suite.Equal(http.StatusConflict, w.Code)
	suite.Contains(suite.errorMessage(w), "locked period")
}

func (suite *HandlerTestSuite) TestListJournalEntries_PassesParams() {
	fiscalYearID := uuid.NewString()
	next := "token-abc"
	resp := &dto.ListJournalEntriesResponse{Entries: []dto.JournalEntryResponse{}, NextToken: strPtr("token-def")}
	suite.mockJournalService.On("ListJournalEntries", mock.Anything, testTenantID,
		mock.MatchedBy(func(p dto.ListJournalEntriesParams) bool {
			return p.Limit == 5 && p.FiscalYearID != nil && *p.FiscalYearID == fiscalYearID &&
				p.NextToken != nil && *p.NextToken == next
		}),
	).Return(resp, nil).Once()

	url := tenantPath(fmt.Sprintf("/journal-entries?fiscal_year_id=%s&limit=5&next_token=%s", fiscalYearID, next))
	w := suite.doRequest(http.MethodGet, url, nil)

	suite.Equal(http.StatusOK, w.Code)
	var body dto.ListJournalEntriesResponse
	suite.decodeBody(w, &body)
	suite.Require().NotNil(body.NextToken)
	suite.Equal("token-def", *body.NextToken)
}

func (suite *HandlerTestSuite) TestListJournalEntries_LimitTooLarge() {
	w := suite.doRequest(http.MethodGet, tenantPath("/journal-entries?limit=500"), nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(suite.errorMessage(w), "Invalid query parameters")
}

func (suite *HandlerTestSuite) TestGetLinkedEntry_Found() {
	entry := samplePostedEntry(uuid.NewString(), uuid.NewString())
	suite.mockJournalService.On("GetLinkedEntry", mock.Anything, testTenantID, "INV:1002").Return(entry, nil).Once()

	w := suite.doRequest(http.MethodGet, tenantPath("/journal-entries/linked?reference=INV:1002"), nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.LinkedEntryResponse
	suite.decodeBody(w, &resp)
	suite.Equal("INV:1002", resp.Reference)
	suite.Require().NotNil(resp.Entry)
	suite.Equal(entry.JournalEntryID, resp.Entry.JournalEntryID)
}

func (suite *HandlerTestSuite) TestGetLinkedEntry_NoneReturnsNull() {
	suite.mockJournalService.On("GetLinkedEntry", mock.Anything, testTenantID, "INV:9999").Return(nil, nil).Once()

	w := suite.doRequest(http.MethodGet, tenantPath("/journal-entries/linked?reference=INV:9999"), nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"reference":"INV:9999","entry":null}`, w.Body.String())
}

func (suite *HandlerTestSuite) TestGetLinkedEntry_MissingReference() {
	w := suite.doRequest(http.MethodGet, tenantPath("/journal-entries/linked"), nil)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestGetJournalEntry_NotFound() {
	entryID := uuid.NewString()
	suite.mockJournalService.On("GetJournalEntry", mock.Anything, testTenantID, entryID).
		Return(nil, fmt.Errorf("%w: journal entry %s", apperrors.ErrNotFound, entryID)).Once()

	w := suite.doRequest(http.MethodGet, tenantPath("/journal-entries/"+entryID), nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestPostDraft_AlreadyPosted() {
	entryID := uuid.NewString()
	suite.mockJournalService.On("PostDraft", mock.Anything, testTenantID, entryID, suite.userID).
		Return(nil, fmt.Errorf("%w: entry already posted", apperrors.ErrConflict)).Once()

	w := suite.doRequest(http.MethodPost, tenantPath("/journal-entries/"+entryID+"/post"), nil)

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *HandlerTestSuite) TestReverseJournalEntry_WithoutBody() {
	original := samplePostedEntry(uuid.NewString(), uuid.NewString())
	reversal := samplePostedEntry(original.Lines[1].AccountID, original.Lines[0].AccountID)
	reversal.Reference = strPtr("REV:INV:1002")
	reversal.ReversalOfID = &original.JournalEntryID

	suite.mockJournalService.On("ReverseJournalEntry", mock.Anything, testTenantID, original.JournalEntryID,
		dto.ReverseJournalEntryRequest{}, suite.userID,
	).Return(reversal, nil).Once()

	w := suite.doRequest(http.MethodPost, tenantPath("/journal-entries/"+original.JournalEntryID+"/reverse"), nil)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.JournalEntryResponse
	suite.decodeBody(w, &resp)
	suite.Require().NotNil(resp.ReversalOfID)
	suite.Equal(original.JournalEntryID, *resp.ReversalOfID)
	suite.Equal("REV:INV:1002", *resp.Reference)
}

func (suite *HandlerTestSuite) TestReverseJournalEntry_WithDate() {
	entryID := uuid.NewString()
	reversal := samplePostedEntry(uuid.NewString(), uuid.NewString())
	suite.mockJournalService.On("ReverseJournalEntry", mock.Anything, testTenantID, entryID,
		mock.MatchedBy(func(r dto.ReverseJournalEntryRequest) bool {
			return r.Date != nil && r.Date.String() == "2024-04-01" && r.Memo != nil && *r.Memo == "customer refund"
		}),
		suite.userID,
	).Return(reversal, nil).Once()

	w := suite.doRequest(http.MethodPost, tenantPath("/journal-entries/"+entryID+"/reverse"), `{"date":"2024-04-01","memo":"customer refund"}`)

	suite.Equal(http.StatusCreated, w.Code)
}

func (suite *HandlerTestSuite) TestDeleteJournalEntry_Draft() {
	entryID := uuid.NewString()
	suite.mockJournalService.On("DeleteJournalEntry", mock.Anything, testTenantID, entryID, suite.userID).Return(nil).Once()

	w := suite.doRequest(http.MethodDelete, tenantPath("/journal-entries/"+entryID), nil)

	suite.Equal(http.StatusNoContent, w.Code)
}

func (suite *HandlerTestSuite) TestDeleteJournalEntry_PostedConflict() {
	entryID := uuid.NewString()
	suite.mockJournalService.On("DeleteJournalEntry", mock.Anything, testTenantID, entryID, suite.userID).
		Return(fmt.Errorf("%w: posted entries cannot be deleted, reverse them instead", apperrors.ErrConflict)).Once()

	w := suite.doRequest(http.MethodDelete, tenantPath("/journal-entries/"+entryID), nil)

	suite.Equal(http.StatusConflict, w.Code)
	suite.Contains(suite.errorMessage(w), "reverse them instead")
}

func (suite *HandlerTestSuite) TestJournalEntryRoutes_MalformedEntryID() {
	routes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/journal-entries/not-a-uuid"},
		{http.MethodPost, "/journal-entries/not-a-uuid/post"},
		{http.MethodPost, "/journal-entries/not-a-uuid/reverse"},
		{http.MethodDelete, "/journal-entries/not-a-uuid"},
	}
	for _, r := range routes {
		w := suite.doRequest(r.method, tenantPath(r.path), nil)
		suite.Equal(http.StatusNotFound, w.Code, "%s %s", r.method, r.path)
		suite.Contains(suite.errorMessage(w), "entry_id")
	}
}
