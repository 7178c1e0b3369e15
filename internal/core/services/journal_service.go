package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/ledger_core/internal/apperrors"
	"github.com/SscSPs/ledger_core/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_core/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledger_core/internal/core/ports/services"
	"github.com/SscSPs/ledger_core/internal/dto"
	"github.com/SscSPs/ledger_core/internal/utils/accounting"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const (
	defaultListLimit   = 20
	reversalPrefix     = "REV:"
	maxReferenceLength = 128
)

type journalService struct {
	BaseService
	journalRepo    portsrepo.JournalRepositoryWithTx
	fiscalYearRepo portsrepo.FiscalYearTransactionSupport
	accountRepo    portsrepo.AccountTransactionSupport
	clock          func() time.Time
}

// JournalServiceOption is a functional option for configuring the journal service
type JournalServiceOption func(*journalService)

// WithJournalClock overrides the time source used for posting timestamps and audit fields.
func WithJournalClock(clock func() time.Time) JournalServiceOption {
	return func(s *journalService) {
		s.clock = clock
	}
}

// NewJournalService creates the journal engine. All writes run in one transaction
// opened on journalRepo; the fiscal year and account repositories join it.
func NewJournalService(journalRepo portsrepo.JournalRepositoryWithTx, fiscalYearRepo portsrepo.FiscalYearTransactionSupport, accountRepo portsrepo.AccountTransactionSupport, options ...JournalServiceOption) portssvc.JournalSvcFacade {
	svc := &journalService{
		journalRepo:    journalRepo,
		fiscalYearRepo: fiscalYearRepo,
		accountRepo:    accountRepo,
		clock:          func() time.Time { return time.Now().UTC() },
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.JournalSvcFacade = (*journalService)(nil)

// uniqueAccountIDs returns the distinct account ids of lines in first-seen order.
func uniqueAccountIDs(lines []domain.JournalLineInput) []string {
	seen := make(map[string]struct{}, len(lines))
	result := make([]string, 0, len(lines))
	for _, l := range lines {
		if _, ok := seen[l.AccountID]; !ok {
			seen[l.AccountID] = struct{}{}
			result = append(result, l.AccountID)
		}
	}
	return result
}

// resolveAccounts loads every account referenced by lines and requires each to be active.
func (s *journalService) resolveAccounts(ctx context.Context, tx pgx.Tx, tenantID string, lines []domain.JournalLineInput) (map[string]domain.Account, error) {
	ids := uniqueAccountIDs(lines)
	accounts, err := s.accountRepo.FindAccountsByIDsInTx(ctx, tx, tenantID, ids)
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		acc, ok := accounts[id]
		if !ok {
			return nil, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, id)
		}
		if !acc.IsActive {
			return nil, fmt.Errorf("%w: account %s (%s) is inactive", apperrors.ErrNotFound, acc.Code, id)
		}
	}
	return accounts, nil
}

// buildLines assigns ids and line numbers and annotates each line with its account.
func buildLines(entryID string, inputs []domain.JournalLineInput, accounts map[string]domain.Account) []domain.JournalLine {
	lines := make([]domain.JournalLine, len(inputs))
	for i, in := range inputs {
		acc := accounts[in.AccountID]
		lines[i] = domain.JournalLine{
			LineID:          uuid.NewString(),
			JournalEntryID:  entryID,
			LineNo:          i + 1,
			AccountID:       in.AccountID,
			Debit:           in.Debit,
			Credit:          in.Credit,
			Memo:            in.Memo,
			AccountCode:     acc.Code,
			AccountName:     acc.Name,
			AccountCategory: acc.Category,
		}
	}
	return lines
}

func lockedPeriodError(fy *domain.FiscalYear) error {
	return fmt.Errorf("%w: locked period %s", apperrors.ErrConflict, fy.Name)
}

// PostJournalEntry validates the entry against its fiscal year and the chart, then stores
// header and lines atomically. The fiscal year row is held FOR SHARE until commit.
func (s *journalService) PostJournalEntry(ctx context.Context, tenantID string, req dto.PostJournalEntryRequest, userID string) (*domain.JournalEntry, error) {
	tx, err := s.journalRepo.Begin(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to begin journal transaction")
		return nil, err
	}
	defer s.journalRepo.Rollback(ctx, tx)

	fy, err := s.fiscalYearRepo.FindFiscalYearForShareInTx(ctx, tx, tenantID, req.FiscalYearID)
	if err != nil {
		s.LogUnexpected(ctx, err, "Failed to resolve fiscal year", slog.String("fiscal_year_id", req.FiscalYearID))
		return nil, err
	}
	if fy.IsLocked {
		return nil, lockedPeriodError(fy)
	}
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: entry date is required", apperrors.ErrValidation)
	}
	entryDate := domain.TruncateToDate(req.Date.Time)
	if !fy.Contains(entryDate) {
		return nil, fmt.Errorf("%w: date out of range: %s is outside %s (%s to %s)", apperrors.ErrValidation,
			entryDate.Format(time.DateOnly), fy.Name, fy.StartDate.Format(time.DateOnly), fy.EndDate.Format(time.DateOnly))
	}

	inputs := req.LineInputs()
	if err := accounting.ValidateEntryLines(inputs); err != nil {
		return nil, err
	}

	accounts, err := s.resolveAccounts(ctx, tx, tenantID, inputs)
	if err != nil {
		s.LogUnexpected(ctx, err, "Failed to resolve journal accounts")
		return nil, err
	}

	now := s.clock()
	entryID := uuid.NewString()
	entry := domain.JournalEntry{
		JournalEntryID: entryID,
		TenantID:       tenantID,
		FiscalYearID:   fy.FiscalYearID,
		EntryDate:      entryDate,
		Reference:      req.Reference,
		Memo:           req.Memo,
		Status:         domain.Draft,
		Lines:          buildLines(entryID, inputs, accounts),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if req.ShouldPost() {
		entry.Status = domain.Posted
		entry.PostedAt = &now
	}

	if err := s.journalRepo.SaveJournalEntryInTx(ctx, tx, entry); err != nil {
		s.LogUnexpected(ctx, err, "Failed to save journal entry", slog.String("journal_entry_id", entryID))
		return nil, err
	}
	if err := s.journalRepo.Commit(ctx, tx); err != nil {
		s.LogUnexpected(ctx, err, "Failed to commit journal entry", slog.String("journal_entry_id", entryID))
		return nil, err
	}

	s.LogInfo(ctx, "Journal entry recorded",
		slog.String("tenant_id", tenantID),
		slog.String("journal_entry_id", entryID),
		slog.String("status", string(entry.Status)),
		slog.Int("lines", len(entry.Lines)))
	return &entry, nil
}

// PostDraft re-validates a draft and moves it to POSTED.
func (s *journalService) PostDraft(ctx context.Context, tenantID, entryID, userID string) (*domain.JournalEntry, error) {
	tx, err := s.journalRepo.Begin(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to begin journal transaction")
		return nil, err
	}
	defer s.journalRepo.Rollback(ctx, tx)

	entry, err := s.journalRepo.FindJournalEntryForUpdateInTx(ctx, tx, tenantID, entryID)
	if err != nil {
		s.LogUnexpected(ctx, err, "Failed to find draft entry", slog.String("journal_entry_id", entryID))
		return nil, err
	}
	if entry.IsPosted() {
		return nil, fmt.Errorf("%w: journal entry %s is already posted", apperrors.ErrConflict, entryID)
	}

	fy, err := s.fiscalYearRepo.FindFiscalYearForShareInTx(ctx, tx, tenantID, entry.FiscalYearID)
	if err != nil {
		s.LogUnexpected(ctx, err, "Failed to resolve fiscal year of draft", slog.String("journal_entry_id", entryID))
		return nil, err
	}
	if fy.IsLocked {
		return nil, lockedPeriodError(fy)
	}

	inputs := accounting.LinesToInputs(entry.Lines)
	if err := accounting.ValidateEntryLines(inputs); err != nil {
		return nil, err
	}
	if _, err := s.resolveAccounts(ctx, tx, tenantID, inputs); err != nil {
		s.LogUnexpected(ctx, err, "Draft references an unusable account", slog.String("journal_entry_id", entryID))
		return nil, err
	}

	now := s.clock()
	if err := s.journalRepo.MarkJournalEntryPostedInTx(ctx, tx, tenantID, entryID, userID, now); err != nil {
		s.LogUnexpected(ctx, err, "Failed to post draft", slog.String("journal_entry_id", entryID))
		return nil, err
	}
	if err := s.journalRepo.Commit(ctx, tx); err != nil {
		s.LogUnexpected(ctx, err, "Failed to commit draft posting", slog.String("journal_entry_id", entryID))
		return nil, err
	}

	entry.Status = domain.Posted
	entry.PostedAt = &now
	entry.LastUpdatedAt = now
	entry.LastUpdatedBy = userID

	s.LogInfo(ctx, "Draft journal entry posted", slog.String("journal_entry_id", entryID))
	return entry, nil
}

func reversalReference(original *domain.JournalEntry) string {
	base := original.JournalEntryID
	if original.Reference != nil && *original.Reference != "" {
		base = *original.Reference
	}
	ref := []rune(reversalPrefix + base)
	if len(ref) > maxReferenceLength {
		ref = ref[:maxReferenceLength]
	}
	return string(ref)
}

// ReverseJournalEntry posts an entry with debits and credits swapped and links both entries.
// The reversal is dated req.Date, or the original's date, and lands in the fiscal year containing it.
func (s *journalService) ReverseJournalEntry(ctx context.Context, tenantID, entryID string, req dto.ReverseJournalEntryRequest, userID string) (*domain.JournalEntry, error) {
	tx, err := s.journalRepo.Begin(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to begin journal transaction")
		return nil, err
	}
	defer s.journalRepo.Rollback(ctx, tx)

	original, err := s.journalRepo.FindJournalEntryForUpdateInTx(ctx, tx, tenantID, entryID)
	if err != nil {
		s.LogUnexpected(ctx, err, "Failed to find entry to reverse", slog.String("journal_entry_id", entryID))
		return nil, err
	}
	if !original.IsPosted() {
		return nil, fmt.Errorf("%w: only posted entries can be reversed", apperrors.ErrConflict)
	}
	if original.ReversedByID != nil {
		return nil, fmt.Errorf("%w: journal entry %s is already reversed by %s", apperrors.ErrConflict, entryID, *original.ReversedByID)
	}
	if original.ReversalOfID != nil {
		return nil, fmt.Errorf("%w: journal entry %s is itself a reversal", apperrors.ErrConflict, entryID)
	}

	date := original.EntryDate
	if req.Date != nil && !req.Date.IsZero() {
		date = req.Date.Time
	}
	date = domain.TruncateToDate(date)

	fy, err := s.fiscalYearRepo.FindFiscalYearContainingForShareInTx(ctx, tx, tenantID, date)
	if err != nil {
		s.LogUnexpected(ctx, err, "No fiscal year for reversal date", slog.String("date", date.Format(time.DateOnly)))
		return nil, err
	}
	if fy.IsLocked {
		return nil, lockedPeriodError(fy)
	}

	ref := reversalReference(original)
	memo := req.Memo
	if memo == nil {
		m := "Reversal of " + original.JournalEntryID
		memo = &m
	}

	inputs := accounting.ReverseLines(original.Lines)
	accounts, err := s.resolveAccounts(ctx, tx, tenantID, inputs)
	if err != nil {
		s.LogUnexpected(ctx, err, "Reversal references an unusable account", slog.String("journal_entry_id", entryID))
		return nil, err
	}

	now := s.clock()
	reversalID := uuid.NewString()
	lines := buildLines(reversalID, inputs, accounts)
	originalID := original.JournalEntryID
	reversal := domain.JournalEntry{
		JournalEntryID: reversalID,
		TenantID:       tenantID,
		FiscalYearID:   fy.FiscalYearID,
		EntryDate:      date,
		Reference:      &ref,
		Memo:           memo,
		Status:         domain.Posted,
		PostedAt:       &now,
		ReversalOfID:   &originalID,
		Lines:          lines,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.journalRepo.SaveJournalEntryInTx(ctx, tx, reversal); err != nil {
		s.LogUnexpected(ctx, err, "Failed to save reversal entry", slog.String("journal_entry_id", entryID))
		return nil, err
	}
	if err := s.journalRepo.SetReversedByInTx(ctx, tx, tenantID, originalID, reversalID, userID, now); err != nil {
		s.LogUnexpected(ctx, err, "Failed to link reversal", slog.String("journal_entry_id", entryID))
		return nil, err
	}
	if err := s.journalRepo.Commit(ctx, tx); err != nil {
		s.LogUnexpected(ctx, err, "Failed to commit reversal", slog.String("journal_entry_id", entryID))
		return nil, err
	}

	s.LogInfo(ctx, "Journal entry reversed",
		slog.String("journal_entry_id", originalID),
		slog.String("reversal_id", reversalID))
	return &reversal, nil
}

// DeleteJournalEntry removes a draft from an unlocked fiscal year.
func (s *journalService) DeleteJournalEntry(ctx context.Context, tenantID, entryID, userID string) error {
	tx, err := s.journalRepo.Begin(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to begin journal transaction")
		return err
	}
	defer s.journalRepo.Rollback(ctx, tx)

	entry, err := s.journalRepo.FindJournalEntryForUpdateInTx(ctx, tx, tenantID, entryID)
	if err != nil {
		s.LogUnexpected(ctx, err, "Failed to find entry to delete", slog.String("journal_entry_id", entryID))
		return err
	}
	fy, err := s.fiscalYearRepo.FindFiscalYearForShareInTx(ctx, tx, tenantID, entry.FiscalYearID)
	if err != nil {
		s.LogUnexpected(ctx, err, "Failed to resolve fiscal year of entry", slog.String("journal_entry_id", entryID))
		return err
	}
	if fy.IsLocked {
		return lockedPeriodError(fy)
	}
	if entry.IsPosted() {
		return fmt.Errorf("%w: posted entries cannot be deleted, reverse them instead", apperrors.ErrConflict)
	}

	if err := s.journalRepo.DeleteJournalEntryInTx(ctx, tx, tenantID, entryID); err != nil {
		s.LogUnexpected(ctx, err, "Failed to delete journal entry", slog.String("journal_entry_id", entryID))
		return err
	}
	if err := s.journalRepo.Commit(ctx, tx); err != nil {
		s.LogUnexpected(ctx, err, "Failed to commit journal deletion", slog.String("journal_entry_id", entryID))
		return err
	}

	s.LogInfo(ctx, "Journal entry deleted",
		slog.String("journal_entry_id", entryID),
		slog.String("user_id", userID))
	return nil
}

func (s *journalService) GetJournalEntry(ctx context.Context, tenantID, entryID string) (*domain.JournalEntry, error) {
	entry, err := s.journalRepo.FindJournalEntryByID(ctx, tenantID, entryID)
	if err != nil {
		s.LogUnexpected(ctx, err, "Failed to find journal entry", slog.String("journal_entry_id", entryID))
		return nil, err
	}
	return entry, nil
}

// GetLinkedEntry returns nil without an error when no entry carries reference.
func (s *journalService) GetLinkedEntry(ctx context.Context, tenantID, reference string) (*domain.JournalEntry, error) {
	entry, err := s.journalRepo.FindLatestJournalEntryByReference(ctx, tenantID, reference)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil
		}
		s.LogError(ctx, err, "Failed to look up entry by reference", slog.String("reference", reference))
		return nil, err
	}
	return entry, nil
}

func (s *journalService) ListJournalEntries(ctx context.Context, tenantID string, params dto.ListJournalEntriesParams) (*dto.ListJournalEntriesResponse, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	entries, nextToken, err := s.journalRepo.ListJournalEntries(ctx, tenantID, params.FiscalYearID, limit, params.NextToken)
	if err != nil {
		s.LogUnexpected(ctx, err, "Failed to list journal entries")
		return nil, fmt.Errorf("failed to retrieve journal entries: %w", err)
	}

	s.LogDebug(ctx, "Journal entries listed", slog.Int("count", len(entries)))
	return &dto.ListJournalEntriesResponse{
		Entries:   dto.ToJournalEntryResponses(entries),
		NextToken: nextToken,
	}, nil
}
