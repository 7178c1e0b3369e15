package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/ledger_core/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_core/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledger_core/internal/core/ports/services"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"
)

// --- Transaction helpers shared by the repository mocks ---

type mockTxManager struct {
	mock.Mock
}

func (m *mockTxManager) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *mockTxManager) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *mockTxManager) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

// expectTx sets up a transaction whose Begin returns a nil tx and whose Rollback may be called.
func expectTx(m *mock.Mock) {
	m.On("Begin", mock.Anything).Return(nil, nil).Once()
	m.On("Rollback", mock.Anything, mock.Anything).Return(nil).Maybe()
}

// --- MockAccountRepository ---

type MockAccountRepository struct {
	mockTxManager
}

var _ portsrepo.AccountRepositoryWithTx = (*MockAccountRepository)(nil)

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, tenantID, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, tenantID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountsByIDs(ctx context.Context, tenantID string, accountIDs []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, tenantID, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context, tenantID string, includeInactive bool) ([]domain.Account, error) {
	args := m.Called(ctx, tenantID, includeInactive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) DeactivateAccount(ctx context.Context, tenantID, accountID, userID string, now time.Time) error {
	args := m.Called(ctx, tenantID, accountID, userID, now)
	return args.Error(0)
}

func (m *MockAccountRepository) FindAccountsByIDsInTx(ctx context.Context, tx pgx.Tx, tenantID string, accountIDs []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, tx, tenantID, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) LockChartInTx(ctx context.Context, tx pgx.Tx, tenantID string) (int, error) {
	args := m.Called(ctx, tx, tenantID)
	return args.Int(0), args.Error(1)
}

func (m *MockAccountRepository) SaveAccountsInTx(ctx context.Context, tx pgx.Tx, accounts []domain.Account) error {
	args := m.Called(ctx, tx, accounts)
	return args.Error(0)
}

// --- MockFiscalYearRepository ---

type MockFiscalYearRepository struct {
	mockTxManager
}

var _ portsrepo.FiscalYearRepositoryWithTx = (*MockFiscalYearRepository)(nil)

func (m *MockFiscalYearRepository) fiscalYearResult(args mock.Arguments) (*domain.FiscalYear, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FiscalYear), args.Error(1)
}

func (m *MockFiscalYearRepository) FindFiscalYearByID(ctx context.Context, tenantID, fiscalYearID string) (*domain.FiscalYear, error) {
	return m.fiscalYearResult(m.Called(ctx, tenantID, fiscalYearID))
}

func (m *MockFiscalYearRepository) ListFiscalYears(ctx context.Context, tenantID string) ([]domain.FiscalYear, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FiscalYear), args.Error(1)
}

func (m *MockFiscalYearRepository) FindFiscalYearContaining(ctx context.Context, tenantID string, date time.Time) (*domain.FiscalYear, error) {
	return m.fiscalYearResult(m.Called(ctx, tenantID, date))
}

func (m *MockFiscalYearRepository) SaveFiscalYear(ctx context.Context, fy domain.FiscalYear) error {
	args := m.Called(ctx, fy)
	return args.Error(0)
}

func (m *MockFiscalYearRepository) SaveFiscalYearInTx(ctx context.Context, tx pgx.Tx, fy domain.FiscalYear) error {
	args := m.Called(ctx, tx, fy)
	return args.Error(0)
}

func (m *MockFiscalYearRepository) FindFiscalYearForShareInTx(ctx context.Context, tx pgx.Tx, tenantID, fiscalYearID string) (*domain.FiscalYear, error) {
	return m.fiscalYearResult(m.Called(ctx, tx, tenantID, fiscalYearID))
}

func (m *MockFiscalYearRepository) FindFiscalYearForUpdateInTx(ctx context.Context, tx pgx.Tx, tenantID, fiscalYearID string) (*domain.FiscalYear, error) {
	return m.fiscalYearResult(m.Called(ctx, tx, tenantID, fiscalYearID))
}

func (m *MockFiscalYearRepository) FindFiscalYearContainingForShareInTx(ctx context.Context, tx pgx.Tx, tenantID string, date time.Time) (*domain.FiscalYear, error) {
	return m.fiscalYearResult(m.Called(ctx, tx, tenantID, date))
}

func (m *MockFiscalYearRepository) SetFiscalYearLockInTx(ctx context.Context, tx pgx.Tx, tenantID, fiscalYearID string, locked bool, userID string, now time.Time) error {
	args := m.Called(ctx, tx, tenantID, fiscalYearID, locked, userID, now)
	return args.Error(0)
}

// --- MockJournalRepository ---

type MockJournalRepository struct {
	mockTxManager
}

var _ portsrepo.JournalRepositoryWithTx = (*MockJournalRepository)(nil)

func (m *MockJournalRepository) entryResult(args mock.Arguments) (*domain.JournalEntry, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalRepository) FindJournalEntryByID(ctx context.Context, tenantID, entryID string) (*domain.JournalEntry, error) {
	return m.entryResult(m.Called(ctx, tenantID, entryID))
}

func (m *MockJournalRepository) FindLatestJournalEntryByReference(ctx context.Context, tenantID, reference string) (*domain.JournalEntry, error) {
	return m.entryResult(m.Called(ctx, tenantID, reference))
}

func (m *MockJournalRepository) ListJournalEntries(ctx context.Context, tenantID string, fiscalYearID *string, limit int, nextToken *string) ([]domain.JournalEntry, *string, error) {
	args := m.Called(ctx, tenantID, fiscalYearID, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var returnedNextToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedNextToken = &tokenVal
	}
	return args.Get(0).([]domain.JournalEntry), returnedNextToken, args.Error(2)
}

func (m *MockJournalRepository) ListPostedLines(ctx context.Context, tenantID, fiscalYearID string, accountID *string) ([]domain.PostedLine, error) {
	args := m.Called(ctx, tenantID, fiscalYearID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PostedLine), args.Error(1)
}

func (m *MockJournalRepository) SaveJournalEntryInTx(ctx context.Context, tx pgx.Tx, entry domain.JournalEntry) error {
	args := m.Called(ctx, tx, entry)
	return args.Error(0)
}

func (m *MockJournalRepository) FindJournalEntryForUpdateInTx(ctx context.Context, tx pgx.Tx, tenantID, entryID string) (*domain.JournalEntry, error) {
	return m.entryResult(m.Called(ctx, tx, tenantID, entryID))
}

func (m *MockJournalRepository) MarkJournalEntryPostedInTx(ctx context.Context, tx pgx.Tx, tenantID, entryID, userID string, postedAt time.Time) error {
	args := m.Called(ctx, tx, tenantID, entryID, userID, postedAt)
	return args.Error(0)
}

func (m *MockJournalRepository) SetReversedByInTx(ctx context.Context, tx pgx.Tx, tenantID, entryID, reversingEntryID, userID string, now time.Time) error {
	args := m.Called(ctx, tx, tenantID, entryID, reversingEntryID, userID, now)
	return args.Error(0)
}

func (m *MockJournalRepository) DeleteJournalEntryInTx(ctx context.Context, tx pgx.Tx, tenantID, entryID string) error {
	args := m.Called(ctx, tx, tenantID, entryID)
	return args.Error(0)
}

func (m *MockJournalRepository) CountDraftEntriesInTx(ctx context.Context, tx pgx.Tx, tenantID, fiscalYearID string) (int, error) {
	args := m.Called(ctx, tx, tenantID, fiscalYearID)
	return args.Int(0), args.Error(1)
}

// --- MockLedgerService ---

type MockLedgerService struct {
	mock.Mock
}

var _ portssvc.LedgerService = (*MockLedgerService)(nil)

func (m *MockLedgerService) BuildLedger(ctx context.Context, tenantID, fiscalYearID string, accountID *string) ([]domain.AccountLedger, error) {
	args := m.Called(ctx, tenantID, fiscalYearID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AccountLedger), args.Error(1)
}

func (m *MockLedgerService) AccountTotals(ctx context.Context, tenantID, fiscalYearID string) (*domain.FiscalYear, []domain.AccountTotals, error) {
	args := m.Called(ctx, tenantID, fiscalYearID)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.FiscalYear), args.Get(1).([]domain.AccountTotals), args.Error(2)
}
