package domain

import "time"

// FiscalYear is a named accounting period that can be locked against further postings.
type FiscalYear struct {
	FiscalYearID string     `json:"fiscalYearID"`
	TenantID     string     `json:"tenantID"`
	Name         string     `json:"name"`
	StartDate    time.Time  `json:"startDate"`
	EndDate      time.Time  `json:"endDate"`
	IsLocked     bool       `json:"isLocked"`
	LockedAt     *time.Time `json:"lockedAt,omitempty"`
	AuditFields
}

// Contains reports whether date falls within [StartDate, EndDate], compared by calendar day.
func (fy FiscalYear) Contains(date time.Time) bool {
	d := TruncateToDate(date)
	return !d.Before(TruncateToDate(fy.StartDate)) && !d.After(TruncateToDate(fy.EndDate))
}

// TruncateToDate drops the time of day, keeping the calendar date in UTC.
func TruncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
