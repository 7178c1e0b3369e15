package mapping

import (
	"github.com/SscSPs/ledger_core/internal/core/domain"
	"github.com/SscSPs/ledger_core/internal/models"
)

// ToModelFiscalYear converts a domain FiscalYear to a model FiscalYear
func ToModelFiscalYear(d domain.FiscalYear) models.FiscalYear {
	return models.FiscalYear{
		FiscalYearID: d.FiscalYearID,
		TenantID:     d.TenantID,
		Name:         d.Name,
		StartDate:    domain.TruncateToDate(d.StartDate),
		EndDate:      domain.TruncateToDate(d.EndDate),
		IsLocked:     d.IsLocked,
		LockedAt:     d.LockedAt,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainFiscalYear converts a model FiscalYear to a domain FiscalYear
func ToDomainFiscalYear(m models.FiscalYear) domain.FiscalYear {
	return domain.FiscalYear{
		FiscalYearID: m.FiscalYearID,
		TenantID:     m.TenantID,
		Name:         m.Name,
		StartDate:    domain.TruncateToDate(m.StartDate),
		EndDate:      domain.TruncateToDate(m.EndDate),
		IsLocked:     m.IsLocked,
		LockedAt:     m.LockedAt,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}
