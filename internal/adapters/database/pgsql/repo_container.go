package pgsql

import (
	"github.com/SscSPs/ledger_core/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires the pgx repositories behind the service-facing interfaces.
func NewRepositoryProvider(pool *pgxpool.Pool) *repositories.RepositoryProvider {
	return &repositories.RepositoryProvider{
		AccountRepo:    NewPgxAccountRepository(pool),
		FiscalYearRepo: NewPgxFiscalYearRepository(pool),
		JournalRepo:    NewPgxJournalRepository(pool),
	}
}
