package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hhtransportationtx/dispatch/internal/utils"
	"github.com/hhtransportationtx/dispatch/services/dispatch"
	"github.com/hhtransportationtx/dispatch/services/dispatch/usecase"
)

// DispatchHandler handles HTTP requests for dispatch operations
type DispatchHandler struct {
	dispatchUC dispatch.DispatchUC
	scheduler  *usecase.Scheduler
}

// NewDispatchHandler creates a new dispatch HTTP handler
func NewDispatchHandler(dispatchUC dispatch.DispatchUC, scheduler *usecase.Scheduler) *DispatchHandler {
	return &DispatchHandler{
		dispatchUC: dispatchUC,
		scheduler:  scheduler,
	}
}

// RegisterRoutes registers the dispatch handler routes
func (h *DispatchHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/trips/:tripID/assign", h.AssignTrip)
	g.POST("/run", h.RunPass)
	g.GET("/scheduler", h.SchedulerStatus)
	g.POST("/scheduler/start", h.StartScheduler)
	g.POST("/scheduler/stop", h.StopScheduler)
}

// AssignTrip assigns the best available driver to a single trip
func (h *DispatchHandler) AssignTrip(c echo.Context) error {
	tripID := c.Param("tripID")
	if tripID == "" {
		return utils.BadRequestResponse(c, "Trip ID is required")
	}

	result, err := h.dispatchUC.AssignTripByID(c.Request().Context(), tripID)
	if err != nil {
		switch {
		case errors.Is(err, dispatch.ErrTripNotFound):
			return utils.NotFoundResponse(c, "Trip not found")
		case errors.Is(err, dispatch.ErrTripNotUnassigned):
			return utils.BadRequestResponse(c, "Trip is not unassigned")
		default:
			return utils.InternalServerErrorResponse(c, "Failed to assign trip")
		}
	}

	return utils.SuccessResponse(c, http.StatusOK, "Assignment processed", result)
}

// RunPass triggers a manual assignment pass over all unassigned trips
func (h *DispatchHandler) RunPass(c echo.Context) error {
	results, err := h.dispatchUC.AssignUnassigned(c.Request().Context())
	if err != nil {
		return utils.InternalServerErrorResponse(c, "Assignment pass failed")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Assignment pass completed", results)
}

// SchedulerStatusResponse reports the periodic scheduler state
type SchedulerStatusResponse struct {
	Running         bool `json:"running"`
	IntervalSeconds int  `json:"interval_seconds"`
}

// SchedulerStatus returns the periodic scheduler state
func (h *DispatchHandler) SchedulerStatus(c echo.Context) error {
	return utils.SuccessResponse(c, http.StatusOK, "", SchedulerStatusResponse{
		Running:         h.scheduler.Running(),
		IntervalSeconds: int(h.scheduler.Interval().Seconds()),
	})
}

// StartScheduler enables periodic assignment passes
func (h *DispatchHandler) StartScheduler(c echo.Context) error {
	h.scheduler.Start()
	return utils.SuccessResponse(c, http.StatusOK, "Scheduler started", nil)
}

// StopScheduler disables periodic assignment passes
func (h *DispatchHandler) StopScheduler(c echo.Context) error {
	h.scheduler.Stop()
	return utils.SuccessResponse(c, http.StatusOK, "Scheduler stopped", nil)
}
