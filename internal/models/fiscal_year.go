package models

import "time"

// FiscalYear is a row of the fiscal_years table.
type FiscalYear struct {
	FiscalYearID string     `db:"fiscal_year_id"`
	TenantID     string     `db:"tenant_id"`
	Name         string     `db:"name"`
	StartDate    time.Time  `db:"start_date"`
	EndDate      time.Time  `db:"end_date"`
	IsLocked     bool       `db:"is_locked"`
	LockedAt     *time.Time `db:"locked_at"`
	AuditFields
}
