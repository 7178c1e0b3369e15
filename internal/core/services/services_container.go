package services

import (
	portsrepo "github.com/SscSPs/ledger_core/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledger_core/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos *portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Account = NewAccountService(repos.AccountRepo, repos.FiscalYearRepo)
	container.FiscalYear = NewFiscalYearService(repos.FiscalYearRepo, repos.JournalRepo)
	container.Journal = NewJournalService(repos.JournalRepo, repos.FiscalYearRepo, repos.AccountRepo)

	// reports are compiled from the ledger projection
	container.Ledger = NewLedgerService(repos.JournalRepo, repos.FiscalYearRepo, repos.AccountRepo)
	container.Reporting = NewReportingService(container.Ledger)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.AccountSvcFacade    = (*accountService)(nil)
	_ portssvc.FiscalYearSvcFacade = (*fiscalYearService)(nil)
	_ portssvc.JournalSvcFacade    = (*journalService)(nil)
)
