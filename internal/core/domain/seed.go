package domain

// SeedResult describes what SeedStarterChart did for a tenant.
type SeedResult struct {
	Seeded          bool
	Message         string
	AccountsCreated int
	FiscalYear      *FiscalYear
}
