package services

// ServiceContainer holds instances of all the application services.
// Handlers receive it at route registration.
type ServiceContainer struct {
	Account    AccountSvcFacade
	FiscalYear FiscalYearSvcFacade
	Journal    JournalSvcFacade
	Ledger     LedgerService
	Reporting  ReportingService
}
