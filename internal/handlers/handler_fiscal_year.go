package handlers

import (
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/SscSPs/ledger_core/internal/core/ports/services"
	"github.com/SscSPs/ledger_core/internal/dto"
	"github.com/SscSPs/ledger_core/internal/middleware"
	"github.com/gin-gonic/gin"
)

// fiscalYearHandler handles HTTP requests related to fiscal years.
type fiscalYearHandler struct {
	fiscalYearService portssvc.FiscalYearSvcFacade
	now               func() time.Time
}

func newFiscalYearHandler(fs portssvc.FiscalYearSvcFacade) *fiscalYearHandler {
	return &fiscalYearHandler{
		fiscalYearService: fs,
		now:               time.Now,
	}
}

// registerFiscalYearRoutes registers fiscal year routes plus the ledger and report
// routes nested under a single fiscal year.
func registerFiscalYearRoutes(
	rg *gin.RouterGroup,
	fiscalYearService portssvc.FiscalYearSvcFacade,
	ledgerService portssvc.LedgerService,
	reportingService portssvc.ReportingService,
) {
	h := newFiscalYearHandler(fiscalYearService)

	fiscalYears := rg.Group("/fiscal-years")
	{
		fiscalYears.POST("", h.createFiscalYear)
		fiscalYears.GET("", h.listFiscalYears)
		fiscalYears.GET("/current", h.getCurrentFiscalYear)
		fiscalYears.GET("/:fiscal_year_id", h.getFiscalYear)
		fiscalYears.POST("/:fiscal_year_id/lock", h.lockFiscalYear)
		fiscalYears.POST("/:fiscal_year_id/unlock", h.unlockFiscalYear)

		fiscalYear := fiscalYears.Group("/:fiscal_year_id")
		registerLedgerRoutes(fiscalYear, ledgerService)
		registerReportingRoutes(fiscalYear, reportingService)
	}
}

// createFiscalYear godoc
// @Summary Open a fiscal year
// @Tags fiscal-years
// @Accept  json
// @Produce  json
// @Param   tenant_id path string true "Tenant ID"
// @Param   fiscalYear body dto.CreateFiscalYearRequest true "Fiscal year details"
// @Success 201 {object} dto.FiscalYearResponse
// @Failure 400 {object} map[string]string "Invalid input or end date not after start date"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create fiscal year"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/fiscal-years [post]
func (h *fiscalYearHandler) createFiscalYear(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateFiscalYearRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "CreateFiscalYear")
		return
	}

	fy, err := h.fiscalYearService.CreateFiscalYear(c.Request.Context(), c.Param("tenant_id"), req, actingUserID(c))
	if err != nil {
		respondWithError(c, err, "Failed to create fiscal year")
		return
	}

	logger.Info("Fiscal year created", slog.String("fiscal_year_id", fy.FiscalYearID), slog.String("name", fy.Name))
	c.JSON(http.StatusCreated, dto.ToFiscalYearResponse(fy))
}

// listFiscalYears godoc
// @Summary List fiscal years
// @Description Lists the tenant's fiscal years ordered by start date
// @Tags fiscal-years
// @Produce  json
// @Param   tenant_id path string true "Tenant ID"
// @Success 200 {object} dto.ListFiscalYearsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list fiscal years"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/fiscal-years [get]
func (h *fiscalYearHandler) listFiscalYears(c *gin.Context) {
	years, err := h.fiscalYearService.ListFiscalYears(c.Request.Context(), c.Param("tenant_id"))
	if err != nil {
		respondWithError(c, err, "Failed to list fiscal years")
		return
	}
	c.JSON(http.StatusOK, dto.ToListFiscalYearsResponse(years))
}

// getCurrentFiscalYear godoc
// @Summary Find the fiscal year containing a date
// @Description Returns the fiscal year whose range contains date. With overlapping years the earliest start wins.
// @Tags fiscal-years
// @Produce  json
// @Param   tenant_id path string true "Tenant ID"
// @Param   date query string false "Date (YYYY-MM-DD)" default(today)
// @Success 200 {object} dto.FiscalYearResponse
// @Failure 400 {object} map[string]string "Invalid date"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "No fiscal year contains the date"
// @Failure 500 {object} map[string]string "Failed to find fiscal year"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/fiscal-years/current [get]
func (h *fiscalYearHandler) getCurrentFiscalYear(c *gin.Context) {
	date := dto.NewDate(h.now())
	if raw := c.Query("date"); raw != "" {
		parsed, err := dto.ParseDate(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		date = parsed
	}

	fy, err := h.fiscalYearService.FindContaining(c.Request.Context(), c.Param("tenant_id"), date.Time)
	if err != nil {
		respondWithError(c, err, "Failed to find fiscal year")
		return
	}
	c.JSON(http.StatusOK, dto.ToFiscalYearResponse(fy))
}

// getFiscalYear godoc
// @Summary Get a fiscal year by ID
// @Tags fiscal-years
// @Produce  json
// @Param   tenant_id path string true "Tenant ID"
// @Param   fiscal_year_id path string true "Fiscal Year ID"
// @Success 200 {object} dto.FiscalYearResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Fiscal year not found"
// @Failure 500 {object} map[string]string "Failed to retrieve fiscal year"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/fiscal-years/{fiscal_year_id} [get]
func (h *fiscalYearHandler) getFiscalYear(c *gin.Context) {
	fy, err := h.fiscalYearService.GetFiscalYearByID(c.Request.Context(), c.Param("tenant_id"), c.Param("fiscal_year_id"))
	if err != nil {
		respondWithError(c, err, "Failed to retrieve fiscal year")
		return
	}
	c.JSON(http.StatusOK, dto.ToFiscalYearResponse(fy))
}

// lockFiscalYear godoc
// @Summary Lock a fiscal year
// @Description Closes the period against postings and deletions. Fails while draft entries remain in it.
// @Tags fiscal-years
// @Produce  json
// @Param   tenant_id path string true "Tenant ID"
// @Param   fiscal_year_id path string true "Fiscal Year ID"
// @Success 200 {object} dto.FiscalYearResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Fiscal year not found"
// @Failure 409 {object} map[string]string "Draft entries remain"
// @Failure 500 {object} map[string]string "Failed to lock fiscal year"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/fiscal-years/{fiscal_year_id}/lock [post]
func (h *fiscalYearHandler) lockFiscalYear(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	fy, err := h.fiscalYearService.LockFiscalYear(c.Request.Context(), c.Param("tenant_id"), c.Param("fiscal_year_id"), actingUserID(c))
	if err != nil {
		respondWithError(c, err, "Failed to lock fiscal year")
		return
	}
	logger.Info("Fiscal year locked", slog.String("fiscal_year_id", fy.FiscalYearID))
	c.JSON(http.StatusOK, dto.ToFiscalYearResponse(fy))
}

// unlockFiscalYear godoc
// @Summary Unlock a fiscal year
// @Tags fiscal-years
// @Produce  json
// @Param   tenant_id path string true "Tenant ID"
// @Param   fiscal_year_id path string true "Fiscal Year ID"
// @Success 200 {object} dto.FiscalYearResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Fiscal year not found"
// @Failure 500 {object} map[string]string "Failed to unlock fiscal year"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/fiscal-years/{fiscal_year_id}/unlock [post]
func (h *fiscalYearHandler) unlockFiscalYear(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	fy, err := h.fiscalYearService.UnlockFiscalYear(c.Request.Context(), c.Param("tenant_id"), c.Param("fiscal_year_id"), actingUserID(c))
	if err != nil {
		respondWithError(c, err, "Failed to unlock fiscal year")
		return
	}
	logger.Info("Fiscal year unlocked", slog.String("fiscal_year_id", fy.FiscalYearID))
	c.JSON(http.StatusOK, dto.ToFiscalYearResponse(fy))
}
