package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/hhtransportationtx/dispatch/internal/pkg/logger"
	"github.com/hhtransportationtx/dispatch/internal/pkg/models"
	"github.com/hhtransportationtx/dispatch/internal/utils"
	"github.com/hhtransportationtx/dispatch/services/geofence"
)

// CreateArea validates and stores a new service area. Boundary rings are
// rejected here so the monitor only ever sees well-formed areas.
func (uc *GeofenceUC) CreateArea(ctx context.Context, area *models.ServiceArea) error {
	if err := validateBoundary(area.Boundary); err != nil {
		return err
	}
	if area.ID == "" {
		area.ID = uuid.NewString()
	}

	if err := uc.geofenceRepo.CreateArea(ctx, area); err != nil {
		return err
	}

	logger.Info("Service area created",
		logger.String("area_id", area.ID),
		logger.String("name", area.Name))
	return nil
}

// UpdateArea validates and stores changes to an existing area
func (uc *GeofenceUC) UpdateArea(ctx context.Context, area *models.ServiceArea) error {
	if err := validateBoundary(area.Boundary); err != nil {
		return err
	}
	return uc.geofenceRepo.UpdateArea(ctx, area)
}

// GetArea returns an area by ID
func (uc *GeofenceUC) GetArea(ctx context.Context, areaID string) (*models.ServiceArea, error) {
	return uc.geofenceRepo.GetArea(ctx, areaID)
}

// ListAreas returns all service areas
func (uc *GeofenceUC) ListAreas(ctx context.Context) ([]*models.ServiceArea, error) {
	return uc.geofenceRepo.ListAreas(ctx)
}

// DeactivateArea takes an area out of monitoring. Alert history for the
// area is kept.
func (uc *GeofenceUC) DeactivateArea(ctx context.Context, areaID string) error {
	if err := uc.geofenceRepo.DeactivateArea(ctx, areaID); err != nil {
		return err
	}

	logger.Info("Service area deactivated", logger.String("area_id", areaID))
	return nil
}

// validateBoundary checks that a ring has at least three vertices and
// every vertex is a usable coordinate pair
func validateBoundary(boundary []models.Location) error {
	if len(boundary) < 3 {
		return geofence.ErrInvalidBoundary
	}
	for _, vertex := range boundary {
		if !utils.GeoPointFromLocation(vertex).Valid() {
			return geofence.ErrInvalidBoundary
		}
	}
	return nil
}
