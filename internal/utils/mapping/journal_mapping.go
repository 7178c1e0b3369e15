package mapping

import (
	"github.com/SscSPs/ledger_core/internal/core/domain"
	"github.com/SscSPs/ledger_core/internal/models"
)

// ToModelJournalEntry converts a domain JournalEntry header to a model JournalEntry
func ToModelJournalEntry(d domain.JournalEntry) models.JournalEntry {
	return models.JournalEntry{
		JournalEntryID: d.JournalEntryID,
		TenantID:       d.TenantID,
		FiscalYearID:   d.FiscalYearID,
		EntryDate:      domain.TruncateToDate(d.EntryDate),
		Reference:      d.Reference,
		Memo:           d.Memo,
		Status:         string(d.Status),
		PostedAt:       d.PostedAt,
		ReversalOfID:   d.ReversalOfID,
		ReversedByID:   d.ReversedByID,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainJournalEntry converts a model JournalEntry to a domain JournalEntry without lines
func ToDomainJournalEntry(m models.JournalEntry) domain.JournalEntry {
	return domain.JournalEntry{
		JournalEntryID: m.JournalEntryID,
		TenantID:       m.TenantID,
		FiscalYearID:   m.FiscalYearID,
		EntryDate:      domain.TruncateToDate(m.EntryDate),
		Reference:      m.Reference,
		Memo:           m.Memo,
		Status:         domain.JournalStatus(m.Status),
		PostedAt:       m.PostedAt,
		ReversalOfID:   m.ReversalOfID,
		ReversedByID:   m.ReversedByID,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelJournalLine converts a domain JournalLine to a model JournalLine
func ToModelJournalLine(d domain.JournalLine) models.JournalLine {
	return models.JournalLine{
		LineID:          d.LineID,
		JournalEntryID:  d.JournalEntryID,
		LineNo:          d.LineNo,
		AccountID:       d.AccountID,
		Debit:           d.Debit,
		Credit:          d.Credit,
		Memo:            d.Memo,
		AccountCode:     d.AccountCode,
		AccountName:     d.AccountName,
		AccountCategory: string(d.AccountCategory),
	}
}

// ToDomainJournalLine converts a model JournalLine to a domain JournalLine
func ToDomainJournalLine(m models.JournalLine) domain.JournalLine {
	return domain.JournalLine{
		LineID:          m.LineID,
		JournalEntryID:  m.JournalEntryID,
		LineNo:          m.LineNo,
		AccountID:       m.AccountID,
		Debit:           m.Debit,
		Credit:          m.Credit,
		Memo:            m.Memo,
		AccountCode:     m.AccountCode,
		AccountName:     m.AccountName,
		AccountCategory: domain.AccountCategory(m.AccountCategory),
	}
}

// ToDomainPostedLine converts a joined posted line row to its domain form
func ToDomainPostedLine(m models.PostedLine) domain.PostedLine {
	return domain.PostedLine{
		JournalEntryID: m.JournalEntryID,
		EntryDate:      domain.TruncateToDate(m.EntryDate),
		EntryCreatedAt: m.EntryCreatedAt,
		Reference:      m.Reference,
		Memo:           m.EntryMemo,
		LineNo:         m.LineNo,
		AccountID:      m.AccountID,
		Debit:          m.Debit,
		Credit:         m.Credit,
		LineMemo:       m.LineMemo,
	}
}
