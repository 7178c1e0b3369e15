package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/ledger_core/internal/core/ports/services"
	"github.com/SscSPs/ledger_core/internal/dto"
	"github.com/SscSPs/ledger_core/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests related to financial reports
type reportingHandler struct {
	reportingService portssvc.ReportingService
}

// newReportingHandler creates a new reportingHandler
func newReportingHandler(rs portssvc.ReportingService) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
	}
}

// registerReportingRoutes registers report routes on a fiscal year group
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/trial-balance", h.getTrialBalance)
		reports.GET("/profit-and-loss", h.getProfitAndLoss)
		reports.GET("/balance-sheet", h.getBalanceSheet)
	}
}

// getTrialBalance godoc
// @Summary Trial balance
// @Description Raw debit and credit totals for every account with posted activity in the fiscal year
// @Tags reports
// @Produce json
// @Param tenant_id path string true "Tenant ID"
// @Param fiscal_year_id path string true "Fiscal Year ID"
// @Success 200 {object} dto.TrialBalanceResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Fiscal year not found"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/fiscal-years/{fiscal_year_id}/reports/trial-balance [get]
func (h *reportingHandler) getTrialBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	fiscalYearID := c.Param("fiscal_year_id")

	report, err := h.reportingService.TrialBalance(c.Request.Context(), c.Param("tenant_id"), fiscalYearID)
	if err != nil {
		respondWithError(c, err, "Failed to generate trial balance")
		return
	}

	logger.Info("Trial balance generated", slog.String("fiscal_year_id", fiscalYearID), slog.Int("rows", len(report.Rows)))
	c.JSON(http.StatusOK, dto.ToTrialBalanceResponse(report))
}

// getProfitAndLoss godoc
// @Summary Profit and loss
// @Description Revenue and expense nets for the fiscal year with net income
// @Tags reports
// @Produce json
// @Param tenant_id path string true "Tenant ID"
// @Param fiscal_year_id path string true "Fiscal Year ID"
// @Success 200 {object} dto.ProfitAndLossResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Fiscal year not found"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/fiscal-years/{fiscal_year_id}/reports/profit-and-loss [get]
func (h *reportingHandler) getProfitAndLoss(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	fiscalYearID := c.Param("fiscal_year_id")

	report, err := h.reportingService.ProfitAndLoss(c.Request.Context(), c.Param("tenant_id"), fiscalYearID)
	if err != nil {
		respondWithError(c, err, "Failed to generate profit and loss report")
		return
	}

	logger.Info("Profit and loss generated", slog.String("fiscal_year_id", fiscalYearID), slog.String("net_income", report.NetIncome.String()))
	c.JSON(http.StatusOK, dto.ToProfitAndLossResponse(report))
}

// getBalanceSheet godoc
// @Summary Balance sheet
// @Description Assets, liabilities and equity with retained earnings folded in. Any residual is reported as imbalance.
// @Tags reports
// @Produce json
// @Param tenant_id path string true "Tenant ID"
// @Param fiscal_year_id path string true "Fiscal Year ID"
// @Success 200 {object} dto.BalanceSheetResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Fiscal year not found"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/fiscal-years/{fiscal_year_id}/reports/balance-sheet [get]
func (h *reportingHandler) getBalanceSheet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	fiscalYearID := c.Param("fiscal_year_id")

	report, err := h.reportingService.BalanceSheet(c.Request.Context(), c.Param("tenant_id"), fiscalYearID)
	if err != nil {
		respondWithError(c, err, "Failed to generate balance sheet")
		return
	}

	logger.Info("Balance sheet generated", slog.String("fiscal_year_id", fiscalYearID), slog.Bool("is_balanced", report.IsBalanced))
	c.JSON(http.StatusOK, dto.ToBalanceSheetResponse(report))
}
