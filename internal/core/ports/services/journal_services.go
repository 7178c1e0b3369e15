package services

import (
	"context"

	"github.com/SscSPs/ledger_core/internal/core/domain"
	"github.com/SscSPs/ledger_core/internal/dto"
)

// JournalReaderSvc defines read operations for journal entries
type JournalReaderSvc interface {
	// GetJournalEntry retrieves an entry with its annotated lines.
	GetJournalEntry(ctx context.Context, tenantID, entryID string) (*domain.JournalEntry, error)

	// GetLinkedEntry returns the latest entry posted under reference, or nil if there is none.
	GetLinkedEntry(ctx context.Context, tenantID, reference string) (*domain.JournalEntry, error)

	// ListJournalEntries retrieves a page of entries, newest first.
	ListJournalEntries(ctx context.Context, tenantID string, params dto.ListJournalEntriesParams) (*dto.ListJournalEntriesResponse, error)
}

// JournalWriterSvc defines write operations for journal entries
type JournalWriterSvc interface {
	// PostJournalEntry validates and atomically stores a balanced entry.
	PostJournalEntry(ctx context.Context, tenantID string, req dto.PostJournalEntryRequest, userID string) (*domain.JournalEntry, error)

	// PostDraft moves a draft entry to POSTED, making it visible to ledgers and reports.
	PostDraft(ctx context.Context, tenantID, entryID, userID string) (*domain.JournalEntry, error)

	// ReverseJournalEntry posts a mirror entry that cancels a posted one.
	ReverseJournalEntry(ctx context.Context, tenantID, entryID string, req dto.ReverseJournalEntryRequest, userID string) (*domain.JournalEntry, error)

	// DeleteJournalEntry removes an unposted entry from an unlocked fiscal year.
	DeleteJournalEntry(ctx context.Context, tenantID, entryID, userID string) error
}

// JournalSvcFacade combines all journal-related service interfaces
type JournalSvcFacade interface {
	JournalReaderSvc
	JournalWriterSvc
}
