package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/expense_tracker/internal/core/ports/services"
	"github.com/SscSPs/expense_tracker/internal/dto"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests related to transaction reports
type reportingHandler struct {
	reportingService portssvc.ReportingService
}

// newReportingHandler creates a new reportingHandler
func newReportingHandler(rs portssvc.ReportingService) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
	}
}

// registerReportingRoutes registers the report routes on the transactions group
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := newReportingHandler(reportingService)

	rg.GET("/summary", h.getSummary)
	rg.GET("/by-category", h.getByCategory)
	rg.GET("/trend", h.getTrend)
}

// getSummary godoc
// @Summary Income and expense summary
// @Description Totals income and expense for a period in one currency
// @Tags reports
// @Produce json
// @Param startDate query string false "YYYY-MM-DD"
// @Param endDate query string false "YYYY-MM-DD"
// @Param currency query string false "Currency code" default(LAK)
// @Success 200 {object} domain.Summary
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/summary [get]
func (h *reportingHandler) getSummary(c *gin.Context) {
	var params dto.ReportParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	summary, err := h.reportingService.Summary(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "Failed to generate summary")
		return
	}
	c.JSON(http.StatusOK, summary)
}

// getByCategory godoc
// @Summary Totals by category
// @Description Totals per category with display fields, largest first
// @Tags reports
// @Produce json
// @Param type query string false "income or expense"
// @Param startDate query string false "YYYY-MM-DD"
// @Param endDate query string false "YYYY-MM-DD"
// @Param currency query string false "Currency code" default(LAK)
// @Success 200 {array} dto.CategoryTotalResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/by-category [get]
func (h *reportingHandler) getByCategory(c *gin.Context) {
	var params dto.ReportParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	totals, err := h.reportingService.ByCategory(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "Failed to generate category report")
		return
	}
	c.JSON(http.StatusOK, dto.ToCategoryTotalResponses(totals))
}

// getTrend godoc
// @Summary Totals over time
// @Description Totals grouped by period bucket and type
// @Tags reports
// @Produce json
// @Param period query string false "daily, weekly or monthly" default(daily)
// @Param startDate query string false "YYYY-MM-DD"
// @Param endDate query string false "YYYY-MM-DD"
// @Param currency query string false "Currency code" default(LAK)
// @Success 200 {array} dto.TrendPointResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/trend [get]
func (h *reportingHandler) getTrend(c *gin.Context) {
	var params dto.TrendParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	points, err := h.reportingService.Trend(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "Failed to generate trend report")
		return
	}
	c.JSON(http.StatusOK, dto.ToTrendResponses(points))
}
