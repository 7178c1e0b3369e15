package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/ledger_core/internal/core/ports/services"
	"github.com/SscSPs/ledger_core/internal/dto"
	"github.com/SscSPs/ledger_core/internal/middleware"
	"github.com/gin-gonic/gin"
)

// journalHandler handles HTTP requests related to journal entries.
type journalHandler struct {
	journalService portssvc.JournalSvcFacade
}

func newJournalHandler(js portssvc.JournalSvcFacade) *journalHandler {
	return &journalHandler{
		journalService: js,
	}
}

// registerJournalRoutes registers routes related to journal entries.
func registerJournalRoutes(rg *gin.RouterGroup, journalService portssvc.JournalSvcFacade) {
	h := newJournalHandler(journalService)

	entries := rg.Group("/journal-entries")
	{
		entries.POST("", h.postJournalEntry)
		entries.GET("", h.listJournalEntries)
		entries.GET("/linked", h.getLinkedEntry)
		entries.GET("/:entry_id", h.getJournalEntry)
		entries.POST("/:entry_id/post", h.postDraft)
		entries.POST("/:entry_id/reverse", h.reverseJournalEntry)
		entries.DELETE("/:entry_id", h.deleteJournalEntry)
	}
}

// postJournalEntry godoc
// @Summary Record a journal entry
// @Description Validates and stores a balanced entry with all its lines in one transaction. Set post=false to keep it as a draft.
// @Tags journal-entries
// @Accept  json
// @Produce  json
// @Param   tenant_id path string true "Tenant ID"
// @Param   entry body dto.PostJournalEntryRequest true "Journal entry"
// @Success 201 {object} dto.JournalEntryResponse
// @Failure 400 {object} map[string]string "Unbalanced entry, too few lines or date out of range"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Fiscal year or account not found"
// @Failure 409 {object} map[string]string "Fiscal year is locked"
// @Failure 500 {object} map[string]string "Failed to record journal entry"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/journal-entries [post]
func (h *journalHandler) postJournalEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.PostJournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "PostJournalEntry")
		return
	}

	logger.Info("Received journal entry",
		slog.String("fiscal_year_id", req.FiscalYearID),
		slog.Int("line_count", len(req.Lines)),
		slog.Bool("post", req.ShouldPost()))

	entry, err := h.journalService.PostJournalEntry(c.Request.Context(), c.Param("tenant_id"), req, actingUserID(c))
	if err != nil {
		respondWithError(c, err, "Failed to record journal entry")
		return
	}

	logger.Info("Journal entry recorded", slog.String("journal_entry_id", entry.JournalEntryID), slog.String("status", string(entry.Status)))
	c.JSON(http.StatusCreated, dto.ToJournalEntryResponse(entry))
}

// listJournalEntries godoc
// @Summary List journal entries
// @Description Lists entries newest first with token pagination
// @Tags journal-entries
// @Produce  json
// @Param   tenant_id path string true "Tenant ID"
// @Param   fiscal_year_id query string false "Restrict to a fiscal year"
// @Param   limit query int false "Page size (1-100)" default(20)
// @Param   next_token query string false "Token from the previous page"
// @Success 200 {object} dto.ListJournalEntriesResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list journal entries"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/journal-entries [get]
func (h *journalHandler) listJournalEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListJournalEntriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListJournalEntries", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.journalService.ListJournalEntries(c.Request.Context(), c.Param("tenant_id"), params)
	if err != nil {
		respondWithError(c, err, "Failed to list journal entries")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// getLinkedEntry godoc
// @Summary Find the entry posted under a reference
// @Description Returns the latest entry recorded with the given external reference, or a null entry when there is none
// @Tags journal-entries
// @Produce  json
// @Param   tenant_id path string true "Tenant ID"
// @Param   reference query string true "External reference, e.g. INV:1002"
// @Success 200 {object} dto.LinkedEntryResponse
// @Failure 400 {object} map[string]string "Reference missing"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to look up linked entry"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/journal-entries/linked [get]
func (h *journalHandler) getLinkedEntry(c *gin.Context) {
	reference := c.Query("reference")
	if reference == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "reference query parameter is required"})
		return
	}

	entry, err := h.journalService.GetLinkedEntry(c.Request.Context(), c.Param("tenant_id"), reference)
	if err != nil {
		respondWithError(c, err, "Failed to look up linked entry")
		return
	}

	resp := dto.LinkedEntryResponse{Reference: reference}
	if entry != nil {
		e := dto.ToJournalEntryResponse(entry)
		resp.Entry = &e
	}
	c.JSON(http.StatusOK, resp)
}

// getJournalEntry godoc
// @Summary Get a journal entry
// @Tags journal-entries
// @Produce  json
// @Param   tenant_id path string true "Tenant ID"
// @Param   entry_id path string true "Journal Entry ID"
// @Success 200 {object} dto.JournalEntryResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Journal entry not found"
// @Failure 500 {object} map[string]string "Failed to retrieve journal entry"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/journal-entries/{entry_id} [get]
func (h *journalHandler) getJournalEntry(c *gin.Context) {
	entry, err := h.journalService.GetJournalEntry(c.Request.Context(), c.Param("tenant_id"), c.Param("entry_id"))
	if err != nil {
		respondWithError(c, err, "Failed to retrieve journal entry")
		return
	}
	c.JSON(http.StatusOK, dto.ToJournalEntryResponse(entry))
}

// postDraft godoc
// @Summary Post a draft entry
// @Description Re-validates a draft and marks it posted so it shows up in ledgers and reports
// @Tags journal-entries
// @Produce  json
// @Param   tenant_id path string true "Tenant ID"
// @Param   entry_id path string true "Journal Entry ID"
// @Success 200 {object} dto.JournalEntryResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Journal entry not found"
// @Failure 409 {object} map[string]string "Already posted or fiscal year locked"
// @Failure 500 {object} map[string]string "Failed to post journal entry"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/journal-entries/{entry_id}/post [post]
func (h *journalHandler) postDraft(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entry, err := h.journalService.PostDraft(c.Request.Context(), c.Param("tenant_id"), c.Param("entry_id"), actingUserID(c))
	if err != nil {
		respondWithError(c, err, "Failed to post journal entry")
		return
	}
	logger.Info("Draft posted", slog.String("journal_entry_id", entry.JournalEntryID))
	c.JSON(http.StatusOK, dto.ToJournalEntryResponse(entry))
}

// reverseJournalEntry godoc
// @Summary Reverse a posted entry
// @Description Posts a mirror entry with debits and credits swapped. The body is optional.
// @Tags journal-entries
// @Accept  json
// @Produce  json
// @Param   tenant_id path string true "Tenant ID"
// @Param   entry_id path string true "Journal Entry ID"
// @Param   reversal body dto.ReverseJournalEntryRequest false "Reversal date and memo overrides"
// @Success 201 {object} dto.JournalEntryResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Journal entry or fiscal year not found"
// @Failure 409 {object} map[string]string "Entry not posted, already reversed or period locked"
// @Failure 500 {object} map[string]string "Failed to reverse journal entry"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/journal-entries/{entry_id}/reverse [post]
func (h *journalHandler) reverseJournalEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ReverseJournalEntryRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			respondBindError(c, err, "ReverseJournalEntry")
			return
		}
	}

	entryID := c.Param("entry_id")
	reversal, err := h.journalService.ReverseJournalEntry(c.Request.Context(), c.Param("tenant_id"), entryID, req, actingUserID(c))
	if err != nil {
		respondWithError(c, err, "Failed to reverse journal entry")
		return
	}

	logger.Info("Journal entry reversed", slog.String("journal_entry_id", entryID), slog.String("reversal_id", reversal.JournalEntryID))
	c.JSON(http.StatusCreated, dto.ToJournalEntryResponse(reversal))
}

// deleteJournalEntry godoc
// @Summary Delete a draft entry
// @Description Removes an unposted entry and its lines. The fiscal year must be unlocked.
// @Tags journal-entries
// @Param   tenant_id path string true "Tenant ID"
// @Param   entry_id path string true "Journal Entry ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Journal entry not found"
// @Failure 409 {object} map[string]string "Entry posted or fiscal year locked"
// @Failure 500 {object} map[string]string "Failed to delete journal entry"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/journal-entries/{entry_id} [delete]
func (h *journalHandler) deleteJournalEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID := c.Param("entry_id")
	if err := h.journalService.DeleteJournalEntry(c.Request.Context(), c.Param("tenant_id"), entryID, actingUserID(c)); err != nil {
		respondWithError(c, err, "Failed to delete journal entry")
		return
	}
	logger.Info("Journal entry deleted", slog.String("journal_entry_id", entryID))
	c.Status(http.StatusNoContent)
}
