package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hhtransportationtx/dispatch/internal/pkg/models"
	"github.com/hhtransportationtx/dispatch/internal/utils"
	"github.com/hhtransportationtx/dispatch/services/geofence"
)

// AreaHandler serves the service-area management API
type AreaHandler struct {
	geofenceUC geofence.GeofenceUC
}

// NewAreaHandler creates a new service-area HTTP handler
func NewAreaHandler(geofenceUC geofence.GeofenceUC) *AreaHandler {
	return &AreaHandler{geofenceUC: geofenceUC}
}

// RegisterRoutes registers service-area endpoints on the given group
func (h *AreaHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/areas", h.CreateArea)
	g.GET("/areas", h.ListAreas)
	g.GET("/areas/:areaID", h.GetArea)
	g.PUT("/areas/:areaID", h.UpdateArea)
	g.DELETE("/areas/:areaID", h.DeactivateArea)
}

// CreateArea handles POST /geofence/areas
func (h *AreaHandler) CreateArea(c echo.Context) error {
	var area models.ServiceArea
	if err := c.Bind(&area); err != nil {
		return utils.BadRequestResponse(c, "invalid request payload")
	}

	if err := h.geofenceUC.CreateArea(c.Request().Context(), &area); err != nil {
		if errors.Is(err, geofence.ErrInvalidBoundary) {
			return utils.BadRequestResponse(c, err.Error())
		}
		return utils.InternalServerErrorResponse(c, "failed to create service area")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Service area created", area)
}

// ListAreas handles GET /geofence/areas
func (h *AreaHandler) ListAreas(c echo.Context) error {
	areas, err := h.geofenceUC.ListAreas(c.Request().Context())
	if err != nil {
		return utils.InternalServerErrorResponse(c, "failed to list service areas")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Service areas retrieved", areas)
}

// GetArea handles GET /geofence/areas/:areaID
func (h *AreaHandler) GetArea(c echo.Context) error {
	area, err := h.geofenceUC.GetArea(c.Request().Context(), c.Param("areaID"))
	if err != nil {
		if errors.Is(err, geofence.ErrAreaNotFound) {
			return utils.NotFoundResponse(c, err.Error())
		}
		return utils.InternalServerErrorResponse(c, "failed to get service area")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Service area retrieved", area)
}

// UpdateArea handles PUT /geofence/areas/:areaID
func (h *AreaHandler) UpdateArea(c echo.Context) error {
	var area models.ServiceArea
	if err := c.Bind(&area); err != nil {
		return utils.BadRequestResponse(c, "invalid request payload")
	}
	area.ID = c.Param("areaID")

	if err := h.geofenceUC.UpdateArea(c.Request().Context(), &area); err != nil {
		switch {
		case errors.Is(err, geofence.ErrInvalidBoundary):
			return utils.BadRequestResponse(c, err.Error())
		case errors.Is(err, geofence.ErrAreaNotFound):
			return utils.NotFoundResponse(c, err.Error())
		default:
			return utils.InternalServerErrorResponse(c, "failed to update service area")
		}
	}

	return utils.SuccessResponse(c, http.StatusOK, "Service area updated", area)
}

// DeactivateArea handles DELETE /geofence/areas/:areaID
func (h *AreaHandler) DeactivateArea(c echo.Context) error {
	if err := h.geofenceUC.DeactivateArea(c.Request().Context(), c.Param("areaID")); err != nil {
		if errors.Is(err, geofence.ErrAreaNotFound) {
			return utils.NotFoundResponse(c, err.Error())
		}
		return utils.InternalServerErrorResponse(c, "failed to deactivate service area")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Service area deactivated", nil)
}
