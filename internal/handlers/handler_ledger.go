package handlers

import (
	"fmt"
	"net/http"

	"github.com/SscSPs/ledger_core/internal/apperrors"
	portssvc "github.com/SscSPs/ledger_core/internal/core/ports/services"
	"github.com/SscSPs/ledger_core/internal/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ledgerHandler struct {
	ledgerService portssvc.LedgerService
}

func newLedgerHandler(ls portssvc.LedgerService) *ledgerHandler {
	return &ledgerHandler{ledgerService: ls}
}

// registerLedgerRoutes registers the general ledger route on a fiscal year group.
func registerLedgerRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerService) {
	h := newLedgerHandler(ledgerService)
	rg.GET("/ledger", h.getLedger)
}

// getLedger godoc
// @Summary General ledger for a fiscal year
// @Description Posted lines per account in date order with a debit-positive running balance
// @Tags reports
// @Produce json
// @Param tenant_id path string true "Tenant ID"
// @Param fiscal_year_id path string true "Fiscal Year ID"
// @Param account_id query string false "Restrict to one account"
// @Success 200 {object} dto.LedgerResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Fiscal year or account not found"
// @Failure 500 {object} map[string]string "Failed to build ledger"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/fiscal-years/{fiscal_year_id}/ledger [get]
func (h *ledgerHandler) getLedger(c *gin.Context) {
	fiscalYearID := c.Param("fiscal_year_id")
	var accountID *string
	if id := c.Query("account_id"); id != "" {
		if _, err := uuid.Parse(id); err != nil {
			respondWithError(c, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, id), "Failed to build ledger")
			return
		}
		accountID = &id
	}

	ledgers, err := h.ledgerService.BuildLedger(c.Request.Context(), c.Param("tenant_id"), fiscalYearID, accountID)
	if err != nil {
		respondWithError(c, err, "Failed to build ledger")
		return
	}
	c.JSON(http.StatusOK, dto.ToLedgerResponse(fiscalYearID, ledgers))
}
