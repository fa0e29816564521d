package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/SscSPs/expense_tracker/internal/core/ports/services"
	"github.com/SscSPs/expense_tracker/internal/dto"
	"github.com/SscSPs/expense_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

// recurringHandler handles HTTP requests related to recurring schedules.
type recurringHandler struct {
	recurringService portssvc.RecurringSvcFacade
	now              func() time.Time
}

// newRecurringHandler creates a new recurringHandler.
func newRecurringHandler(rs portssvc.RecurringSvcFacade) *recurringHandler {
	return &recurringHandler{
		recurringService: rs,
		now:              time.Now,
	}
}

// registerRecurringRoutes registers routes related to recurring schedules.
func registerRecurringRoutes(rg *gin.RouterGroup, recurringService portssvc.RecurringSvcFacade) {
	h := newRecurringHandler(recurringService)

	recurring := rg.Group("/recurring")
	{
		recurring.GET("", h.listSchedules)
		recurring.POST("", h.createSchedule)
		recurring.GET("/upcoming", h.listUpcoming)
		recurring.POST("/process", h.processDue)
		recurring.GET("/:scheduleID", h.getSchedule)
		recurring.PUT("/:scheduleID", h.updateSchedule)
		recurring.DELETE("/:scheduleID", h.deleteSchedule)
		recurring.PATCH("/:scheduleID/toggle", h.toggleSchedule)
	}
}

// listSchedules godoc
// @Summary List recurring schedules
// @Description Lists schedules ordered by next due date.
// @Tags recurring
// @Produce json
// @Param type query string false "income or expense"
// @Param isActive query bool false "Filter by active state"
// @Success 200 {object} dto.ListRecurringResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /recurring [get]
func (h *recurringHandler) listSchedules(c *gin.Context) {
	var params dto.ListRecurringParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	schedules, err := h.recurringService.ListSchedules(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "Failed to list recurring schedules")
		return
	}
	c.JSON(http.StatusOK, dto.ToListRecurringResponse(schedules))
}

// getSchedule godoc
// @Summary Get a recurring schedule
// @Tags recurring
// @Produce json
// @Param scheduleID path string true "Schedule ID"
// @Success 200 {object} dto.RecurringResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /recurring/{scheduleID} [get]
func (h *recurringHandler) getSchedule(c *gin.Context) {
	schedule, err := h.recurringService.GetScheduleByID(c.Request.Context(), c.Param("scheduleID"))
	if err != nil {
		respondError(c, err, "Failed to get recurring schedule")
		return
	}
	c.JSON(http.StatusOK, dto.ToRecurringResponse(schedule))
}

// listUpcoming godoc
// @Summary Upcoming recurring schedules
// @Description Active schedules whose next due date falls within the coming days.
// @Tags recurring
// @Produce json
// @Param days query int false "Window in days" default(7)
// @Success 200 {object} dto.ListRecurringResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /recurring/upcoming [get]
func (h *recurringHandler) listUpcoming(c *gin.Context) {
	var params dto.UpcomingRecurringParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	schedules, err := h.recurringService.ListUpcoming(c.Request.Context(), params.Days)
	if err != nil {
		respondError(c, err, "Failed to list upcoming schedules")
		return
	}
	c.JSON(http.StatusOK, dto.ToListRecurringResponse(schedules))
}

// createSchedule godoc
// @Summary Create a recurring schedule
// @Description Creates a schedule and computes its first due date.
// @Tags recurring
// @Accept json
// @Produce json
// @Param schedule body dto.CreateRecurringRequest true "Schedule details"
// @Success 201 {object} dto.RecurringResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Unknown category"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /recurring [post]
func (h *recurringHandler) createSchedule(c *gin.Context) {
	var req dto.CreateRecurringRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	schedule, err := h.recurringService.CreateSchedule(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to create recurring schedule")
		return
	}
	c.JSON(http.StatusCreated, dto.ToRecurringResponse(schedule))
}

// updateSchedule godoc
// @Summary Update a recurring schedule
// @Description Patches a schedule. The next due date only changes when supplied.
// @Tags recurring
// @Accept json
// @Produce json
// @Param scheduleID path string true "Schedule ID"
// @Param schedule body dto.UpdateRecurringRequest true "Fields to change"
// @Success 200 {object} dto.RecurringResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Schedule changed concurrently"
// @Security BearerAuth
// @Router /recurring/{scheduleID} [put]
func (h *recurringHandler) updateSchedule(c *gin.Context) {
	var req dto.UpdateRecurringRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	schedule, err := h.recurringService.UpdateSchedule(c.Request.Context(), c.Param("scheduleID"), req)
	if err != nil {
		respondError(c, err, "Failed to update recurring schedule")
		return
	}
	c.JSON(http.StatusOK, dto.ToRecurringResponse(schedule))
}

// deleteSchedule godoc
// @Summary Delete a recurring schedule
// @Description Transactions already created by the schedule are kept.
// @Tags recurring
// @Param scheduleID path string true "Schedule ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /recurring/{scheduleID} [delete]
func (h *recurringHandler) deleteSchedule(c *gin.Context) {
	if err := h.recurringService.DeleteSchedule(c.Request.Context(), c.Param("scheduleID")); err != nil {
		respondError(c, err, "Failed to delete recurring schedule")
		return
	}
	c.Status(http.StatusNoContent)
}

// toggleSchedule godoc
// @Summary Pause or resume a recurring schedule
// @Tags recurring
// @Produce json
// @Param scheduleID path string true "Schedule ID"
// @Success 200 {object} dto.RecurringResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /recurring/{scheduleID}/toggle [patch]
func (h *recurringHandler) toggleSchedule(c *gin.Context) {
	schedule, err := h.recurringService.ToggleSchedule(c.Request.Context(), c.Param("scheduleID"))
	if err != nil {
		respondError(c, err, "Failed to toggle recurring schedule")
		return
	}
	c.JSON(http.StatusOK, dto.ToRecurringResponse(schedule))
}

// processDue godoc
// @Summary Process due recurring schedules
// @Description Creates one transaction for every due schedule and advances it past today.
// @Tags recurring
// @Produce json
// @Success 200 {object} dto.ProcessRecurringResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /recurring/process [post]
func (h *recurringHandler) processDue(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Info("Received request to process due recurring schedules")

	result, err := h.recurringService.ProcessDue(c.Request.Context(), h.now())
	if err != nil {
		respondError(c, err, "Failed to process recurring schedules")
		return
	}

	logger.Info("Recurring schedules processed",
		slog.Int("processed", result.Processed),
		slog.Int("failed", len(result.Errors)))
	c.JSON(http.StatusOK, dto.ProcessRecurringResponse{
		Message: fmt.Sprintf("Processed %d recurring transactions", result.Processed),
		Result:  result,
	})
}
