package dto

import (
	"time"

	"github.com/SscSPs/ledger_core/internal/core/domain"
)

// CreateFiscalYearRequest defines the data needed to open a fiscal year.
type CreateFiscalYearRequest struct {
	Name      string `json:"name" binding:"required,max=100"`
	StartDate Date   `json:"startDate"`
	EndDate   Date   `json:"endDate"`
}

// FiscalYearResponse defines the data returned for a fiscal year.
type FiscalYearResponse struct {
	FiscalYearID string     `json:"fiscalYearID"`
	Name         string     `json:"name"`
	StartDate    Date       `json:"startDate"`
	EndDate      Date       `json:"endDate"`
	IsLocked     bool       `json:"isLocked"`
	LockedAt     *time.Time `json:"lockedAt,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	CreatedBy    string     `json:"createdBy"`
}

// ListFiscalYearsResponse wraps a list of fiscal years.
type ListFiscalYearsResponse struct {
	FiscalYears []FiscalYearResponse `json:"fiscalYears"`
}

// ToFiscalYearResponse converts a domain.FiscalYear to its DTO.
func ToFiscalYearResponse(fy *domain.FiscalYear) FiscalYearResponse {
	return FiscalYearResponse{
		FiscalYearID: fy.FiscalYearID,
		Name:         fy.Name,
		StartDate:    NewDate(fy.StartDate),
		EndDate:      NewDate(fy.EndDate),
		IsLocked:     fy.IsLocked,
		LockedAt:     fy.LockedAt,
		CreatedAt:    fy.CreatedAt,
		CreatedBy:    fy.CreatedBy,
	}
}

// ToListFiscalYearsResponse converts fiscal years to the listing DTO.
func ToListFiscalYearsResponse(years []domain.FiscalYear) ListFiscalYearsResponse {
	resp := ListFiscalYearsResponse{FiscalYears: make([]FiscalYearResponse, len(years))}
	for i := range years {
		resp.FiscalYears[i] = ToFiscalYearResponse(&years[i])
	}
	return resp
}
