package dto

import (
	"time"

	"github.com/SscSPs/ledger_core/internal/core/domain"
)

// CreateAccountRequest defines the data needed to create a new account.
type CreateAccountRequest struct {
	Code            string  `json:"code" binding:"required,max=32"`
	Name            string  `json:"name" binding:"required,max=255"`
	Category        string  `json:"category" binding:"required,account_category"`
	ParentAccountID *string `json:"parentAccountID" binding:"omitempty,uuid"`
	Description     string  `json:"description"`
}

// UpdateAccountRequest defines the data allowed for updating an account.
// Code and category are fixed once created.
type UpdateAccountRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=255"`
	Description *string `json:"description"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID       string                 `json:"accountID"`
	Code            string                 `json:"code"`
	Name            string                 `json:"name"`
	Category        domain.AccountCategory `json:"category"`
	ParentAccountID *string                `json:"parentAccountID,omitempty"`
	Description     string                 `json:"description"`
	IsActive        bool                   `json:"isActive"`
	CreatedAt       time.Time              `json:"createdAt"`
	CreatedBy       string                 `json:"createdBy"`
	LastUpdatedAt   time.Time              `json:"lastUpdatedAt"`
	LastUpdatedBy   string                 `json:"lastUpdatedBy"`
}

// AccountSummaryResponse is an account with its parent and child count, as listed.
type AccountSummaryResponse struct {
	AccountResponse
	Parent     *domain.AccountRef `json:"parent,omitempty"`
	ChildCount int                `json:"childCount"`
}

// ListAccountsResponse wraps the chart of accounts listing.
type ListAccountsResponse struct {
	Accounts []AccountSummaryResponse `json:"accounts"`
}

// SeedChartResponse reports the outcome of seeding a starter chart.
type SeedChartResponse struct {
	Seeded          bool                `json:"seeded"`
	Message         string              `json:"message"`
	AccountsCreated int                 `json:"accountsCreated"`
	FiscalYear      *FiscalYearResponse `json:"fiscalYear,omitempty"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:       acc.AccountID,
		Code:            acc.Code,
		Name:            acc.Name,
		Category:        acc.Category,
		ParentAccountID: acc.ParentAccountID,
		Description:     acc.Description,
		IsActive:        acc.IsActive,
		CreatedAt:       acc.CreatedAt,
		CreatedBy:       acc.CreatedBy,
		LastUpdatedAt:   acc.LastUpdatedAt,
		LastUpdatedBy:   acc.LastUpdatedBy,
	}
}

// ToListAccountsResponse converts account summaries to the listing DTO.
func ToListAccountsResponse(summaries []domain.AccountSummary) ListAccountsResponse {
	resp := ListAccountsResponse{Accounts: make([]AccountSummaryResponse, len(summaries))}
	for i := range summaries {
		resp.Accounts[i] = AccountSummaryResponse{
			AccountResponse: ToAccountResponse(&summaries[i].Account),
			Parent:          summaries[i].Parent,
			ChildCount:      summaries[i].ChildCount,
		}
	}
	return resp
}

// ToSeedChartResponse converts a seed result to its DTO.
func ToSeedChartResponse(r *domain.SeedResult) SeedChartResponse {
	resp := SeedChartResponse{
		Seeded:          r.Seeded,
		Message:         r.Message,
		AccountsCreated: r.AccountsCreated,
	}
	if r.FiscalYear != nil {
		fy := ToFiscalYearResponse(r.FiscalYear)
		resp.FiscalYear = &fy
	}
	return resp
}
