package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/hhtransportationtx/dispatch/internal/pkg/models"
	"github.com/hhtransportationtx/dispatch/internal/utils"
	"github.com/hhtransportationtx/dispatch/services/tracking"
)

// TrackingHandler serves the dashboard map queries
type TrackingHandler struct {
	trackingUC tracking.TrackingUC
}

// NewTrackingHandler creates a new tracking HTTP handler
func NewTrackingHandler(trackingUC tracking.TrackingUC) *TrackingHandler {
	return &TrackingHandler{trackingUC: trackingUC}
}

// RegisterRoutes registers tracking endpoints on the given group
func (h *TrackingHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/drivers/nearby", h.GetNearbyDrivers)
	g.GET("/cells/summary", h.GetCellSummary)
}

// GetNearbyDrivers handles GET /tracking/drivers/nearby
func (h *TrackingHandler) GetNearbyDrivers(c echo.Context) error {
	location, err := parsePoint(c)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	radiusMiles, _ := strconv.ParseFloat(c.QueryParam("radius_miles"), 64)

	drivers, err := h.trackingUC.GetNearbyDrivers(c.Request().Context(), location, radiusMiles)
	if err != nil {
		if errors.Is(err, tracking.ErrInvalidLocation) {
			return utils.BadRequestResponse(c, err.Error())
		}
		return utils.InternalServerErrorResponse(c, "failed to query nearby drivers")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Nearby drivers retrieved", drivers)
}

// GetCellSummary handles GET /tracking/cells/summary
func (h *TrackingHandler) GetCellSummary(c echo.Context) error {
	location, err := parsePoint(c)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	summary, err := h.trackingUC.GetCellSummary(c.Request().Context(), location)
	if err != nil {
		if errors.Is(err, tracking.ErrInvalidLocation) {
			return utils.BadRequestResponse(c, err.Error())
		}
		return utils.InternalServerErrorResponse(c, "failed to build cell summary")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Cell summary retrieved", summary)
}

// parsePoint reads lat/lng query parameters
func parsePoint(c echo.Context) (models.Location, error) {
	lat, err := strconv.ParseFloat(c.QueryParam("lat"), 64)
	if err != nil {
		return models.Location{}, errors.New("lat is required")
	}
	lng, err := strconv.ParseFloat(c.QueryParam("lng"), 64)
	if err != nil {
		return models.Location{}, errors.New("lng is required")
	}
	return models.Location{Latitude: lat, Longitude: lng}, nil
}
