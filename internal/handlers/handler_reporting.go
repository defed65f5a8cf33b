package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/paisatrack/pft_backend/internal/apperrors"
	portssvc "github.com/paisatrack/pft_backend/internal/core/ports/services"
	"github.com/paisatrack/pft_backend/internal/dto"
	"github.com/paisatrack/pft_backend/internal/middleware"
	"github.com/paisatrack/pft_backend/internal/utils/financetime"
)

// reportingHandler handles HTTP requests related to financial reports
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

// newReportingHandler creates a new reportingHandler
func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
	}
}

// RegisterReportingRoutes registers routes related to financial reports
func RegisterReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	reportingGroup := rg.Group("/reports")
	{
		reportingGroup.GET("", h.getReport)
		reportingGroup.GET("/monthly", h.getMonthlyStats)
		reportingGroup.GET("/categories", h.getCategoryStats)
		reportingGroup.GET("/export", h.exportCSV)
		reportingGroup.GET("/summary", h.getSummary)
	}
}

// parseRangeBounds parses required startDate/endDate query parameters into
// inclusive nanosecond bounds, expanding endDate to the end of its day.
func parseRangeBounds(c *gin.Context) (startNanos, endNanos int64, ok bool) {
	startStr := c.Query("startDate")
	endStr := c.Query("endDate")
	if startStr == "" || endStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "startDate and endDate are required (YYYY-MM-DD)"})
		return 0, 0, false
	}

	startNanos, err := financetime.ParseDate(startStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid startDate format. Use YYYY-MM-DD"})
		return 0, 0, false
	}
	parsedEnd, err := financetime.ParseDate(endStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid endDate format. Use YYYY-MM-DD"})
		return 0, 0, false
	}
	endNanos = financetime.EndOfDayNanos(parsedEnd)
	if endNanos < startNanos {
		c.JSON(http.StatusBadRequest, gin.H{"error": "endDate must not be before startDate"})
		return 0, 0, false
	}
	return startNanos, endNanos, true
}

// getReport godoc
// @Summary Generate a date-range report
// @Description Generates monthly income/expense summaries, the expense category breakdown, and totals over an inclusive date range.
// @Tags reports
// @Produce json
// @Param startDate query string true "Inclusive start date (YYYY-MM-DD)"
// @Param endDate query string true "Inclusive end date (YYYY-MM-DD)"
// @Success 200 {object} dto.ReportResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /reports [get]
func (h *reportingHandler) getReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	startNanos, endNanos, ok := parseRangeBounds(c)
	if !ok {
		return
	}

	report, err := h.reportingService.GenerateReport(c.Request.Context(), userID, startNanos, endNanos)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to generate report", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate report"})
		}
		return
	}

	response := dto.ToReportResponse(report, financetime.FormatDate(startNanos), financetime.FormatDate(endNanos))
	logger.Info("Report generated successfully", slog.Int("month_count", len(report.MonthlySummaries)))
	c.JSON(http.StatusOK, response)
}

// getMonthlyStats godoc
// @Summary Get one calendar month's totals
// @Description Aggregates income and expense sums for a single calendar month. Defaults to the current UTC month.
// @Tags reports
// @Produce json
// @Param month query int false "Month (1-12)" default(current month)
// @Param year query int false "Year" default(current year)
// @Success 200 {object} dto.MonthlySummaryResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to generate monthly stats"
// @Security BearerAuth
// @Router /reports/monthly [get]
func (h *reportingHandler) getMonthlyStats(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	now := time.Now().UTC()
	monthStr := c.DefaultQuery("month", strconv.Itoa(int(now.Month())))
	yearStr := c.DefaultQuery("year", strconv.Itoa(now.Year()))

	month, err := strconv.Atoi(monthStr)
	if err != nil || month < 1 || month > 12 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "month must be between 1 and 12"})
		return
	}
	year, err := strconv.Atoi(yearStr)
	if err != nil || year < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid year"})
		return
	}

	summary, err := h.reportingService.MonthlyStats(c.Request.Context(), userID, time.Month(month), year)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to generate monthly stats", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate monthly stats"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToMonthlySummaryResponse(*summary))
}

// getCategoryStats godoc
// @Summary Get the expense category breakdown
// @Description Aggregates expense sums per category over an inclusive date range, with percentage shares sorted descending by amount.
// @Tags reports
// @Produce json
// @Param startDate query string true "Inclusive start date (YYYY-MM-DD)"
// @Param endDate query string true "Inclusive end date (YYYY-MM-DD)"
// @Success 200 {object} dto.CategoryStatsResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to generate category stats"
// @Security BearerAuth
// @Router /reports/categories [get]
func (h *reportingHandler) getCategoryStats(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	startNanos, endNanos, ok := parseRangeBounds(c)
	if !ok {
		return
	}

	breakdown, shares, err := h.reportingService.CategoryStats(c.Request.Context(), userID, startNanos, endNanos)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to generate category stats", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate category stats"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToCategoryStatsResponse(breakdown, shares))
}

// exportCSV godoc
// @Summary Export transactions as CSV
// @Description Renders the user's transactions in range as a CSV document, newest first, and returns it as a file download.
// @Tags reports
// @Produce text/csv
// @Param startDate query string true "Inclusive start date (YYYY-MM-DD)"
// @Param endDate query string true "Inclusive end date (YYYY-MM-DD)"
// @Success 200 {string} string "CSV document"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to export transactions"
// @Security BearerAuth
// @Router /reports/export [get]
func (h *reportingHandler) exportCSV(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	startNanos, endNanos, ok := parseRangeBounds(c)
	if !ok {
		return
	}

	filename, csvBody, err := h.reportingService.ExportCSV(c.Request.Context(), userID, startNanos, endNanos)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to export transactions", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export transactions"})
		}
		return
	}

	logger.Info("Transactions exported successfully", slog.String("filename", filename))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(csvBody))
}

// getSummary godoc
// @Summary Get the printable range summary
// @Description Builds the printable report for an inclusive date range: per-transaction rows newest first with signed display amounts, plus totals.
// @Tags reports
// @Produce json
// @Param startDate query string true "Inclusive start date (YYYY-MM-DD)"
// @Param endDate query string true "Inclusive end date (YYYY-MM-DD)"
// @Success 200 {object} dto.SummaryResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to generate summary"
// @Security BearerAuth
// @Router /reports/summary [get]
func (h *reportingHandler) getSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	startNanos, endNanos, ok := parseRangeBounds(c)
	if !ok {
		return
	}

	summary, err := h.reportingService.PrintableSummary(c.Request.Context(), userID, startNanos, endNanos)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to generate summary", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate summary"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToSummaryResponse(summary))
}
