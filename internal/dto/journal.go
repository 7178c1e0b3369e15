package dto

import (
	"time"

	"github.com/SscSPs/ledger_core/internal/core/domain"
	"github.com/shopspring/decimal"
)

// JournalLineRequest is one debit/credit line of a posting.
type JournalLineRequest struct {
	AccountID string          `json:"accountID" binding:"required,uuid"`
	Debit     decimal.Decimal `json:"debit" binding:"decimal_amount"`
	Credit    decimal.Decimal `json:"credit" binding:"decimal_amount"`
	Memo      *string         `json:"memo" binding:"omitempty,max=500"`
}

// PostJournalEntryRequest records a journal entry. Post defaults to true; false stores a draft.
type PostJournalEntryRequest struct {
	FiscalYearID string               `json:"fiscalYearID" binding:"required,uuid"`
	Date         Date                 `json:"date"`
	Lines        []JournalLineRequest `json:"lines" binding:"required,dive"`
	Reference    *string              `json:"reference" binding:"omitempty,max=128"`
	Memo         *string              `json:"memo" binding:"omitempty,max=1000"`
	Post         *bool                `json:"post"`
}

// ShouldPost reports whether the entry is posted immediately.
func (r PostJournalEntryRequest) ShouldPost() bool {
	return r.Post == nil || *r.Post
}

// LineInputs converts the request lines to domain inputs.
func (r PostJournalEntryRequest) LineInputs() []domain.JournalLineInput {
	inputs := make([]domain.JournalLineInput, len(r.Lines))
	for i, l := range r.Lines {
		inputs[i] = domain.JournalLineInput{AccountID: l.AccountID, Debit: l.Debit, Credit: l.Credit, Memo: l.Memo}
	}
	return inputs
}

// ReverseJournalEntryRequest optionally overrides the reversal date (default: the original's date) and memo.
type ReverseJournalEntryRequest struct {
	Date *Date   `json:"date"`
	Memo *string `json:"memo" binding:"omitempty,max=1000"`
}

// ListJournalEntriesParams defines query parameters for listing journal entries.
type ListJournalEntriesParams struct {
	FiscalYearID *string `form:"fiscal_year_id" binding:"omitempty,uuid"`
	Limit        int     `form:"limit" binding:"omitempty,min=1,max=100"`
	NextToken    *string `form:"next_token"`
}

// JournalLineResponse defines the data returned for a journal line.
type JournalLineResponse struct {
	LineID          string                 `json:"lineID"`
	LineNo          int                    `json:"lineNo"`
	AccountID       string                 `json:"accountID"`
	AccountCode     string                 `json:"accountCode"`
	AccountName     string                 `json:"accountName"`
	AccountCategory domain.AccountCategory `json:"accountCategory"`
	Debit           decimal.Decimal        `json:"debit"`
	Credit          decimal.Decimal        `json:"credit"`
	Memo            *string                `json:"memo,omitempty"`
}

// JournalEntryResponse defines the data returned for a journal entry.
type JournalEntryResponse struct {
	JournalEntryID string                `json:"journalEntryID"`
	FiscalYearID   string                `json:"fiscalYearID"`
	Date           Date                  `json:"date"`
	Reference      *string               `json:"reference,omitempty"`
	Memo           *string               `json:"memo,omitempty"`
	Status         domain.JournalStatus  `json:"status"`
	IsPosted       bool                  `json:"isPosted"`
	PostedAt       *time.Time            `json:"postedAt,omitempty"`
	ReversalOfID   *string               `json:"reversalOfID,omitempty"`
	ReversedByID   *string               `json:"reversedByID,omitempty"`
	Lines          []JournalLineResponse `json:"lines,omitempty"`
	TotalDebit     decimal.Decimal       `json:"totalDebit"`
	TotalCredit    decimal.Decimal       `json:"totalCredit"`
	CreatedAt      time.Time             `json:"createdAt"`
	CreatedBy      string                `json:"createdBy"`
}

// ListJournalEntriesResponse is a page of journal entries.
type ListJournalEntriesResponse struct {
	Entries   []JournalEntryResponse `json:"entries"`
	NextToken *string                `json:"nextToken,omitempty"`
}

// LinkedEntryResponse answers a reference lookup; Entry is null when nothing was posted under it.
type LinkedEntryResponse struct {
	Reference string                `json:"reference"`
	Entry     *JournalEntryResponse `json:"entry"`
}

// ToJournalEntryResponse converts a domain.JournalEntry to its DTO.
func ToJournalEntryResponse(e *domain.JournalEntry) JournalEntryResponse {
	resp := JournalEntryResponse{
		JournalEntryID: e.JournalEntryID,
		FiscalYearID:   e.FiscalYearID,
		Date:           NewDate(e.EntryDate),
		Reference:      e.Reference,
		Memo:           e.Memo,
		Status:         e.Status,
		IsPosted:       e.IsPosted(),
		PostedAt:       e.PostedAt,
		ReversalOfID:   e.ReversalOfID,
		ReversedByID:   e.ReversedByID,
		TotalDebit:     decimal.Zero,
		TotalCredit:    decimal.Zero,
		CreatedAt:      e.CreatedAt,
		CreatedBy:      e.CreatedBy,
	}
	if len(e.Lines) > 0 {
		resp.Lines = make([]JournalLineResponse, len(e.Lines))
	}
	for i, l := range e.Lines {
		resp.Lines[i] = JournalLineResponse{
			LineID:          l.LineID,
			LineNo:          l.LineNo,
			AccountID:       l.AccountID,
			AccountCode:     l.AccountCode,
			AccountName:     l.AccountName,
			AccountCategory: l.AccountCategory,
			Debit:           l.Debit,
			Credit:          l.Credit,
			Memo:            l.Memo,
		}
		resp.TotalDebit = resp.TotalDebit.Add(l.Debit)
		resp.TotalCredit = resp.TotalCredit.Add(l.Credit)
	}
	return resp
}

// ToJournalEntryResponses converts a slice of entries.
func ToJournalEntryResponses(entries []domain.JournalEntry) []JournalEntryResponse {
	out := make([]JournalEntryResponse, len(entries))
	for i := range entries {
		out[i] = ToJournalEntryResponse(&entries[i])
	}
	return out
}
