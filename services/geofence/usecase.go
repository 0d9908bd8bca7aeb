package geofence

import (
	"context"

	"github.com/hhtransportationtx/dispatch/internal/pkg/models"
)

// GeofenceUC defines the geofence use case interface
type GeofenceUC interface {
	// ProcessLocationUpdate evaluates a driver position against every
	// active service area and emits boundary-transition alerts. The
	// returned slice holds the alerts recorded for this update.
	ProcessLocationUpdate(ctx context.Context, update models.LocationUpdate) ([]models.GeofenceAlert, error)

	// CreateArea validates and stores a new service area
	CreateArea(ctx context.Context, area *models.ServiceArea) error

	// UpdateArea validates and stores changes to an existing area
	UpdateArea(ctx context.Context, area *models.ServiceArea) error

	// GetArea returns an area by ID
	GetArea(ctx context.Context, areaID string) (*models.ServiceArea, error)

	// ListAreas returns all service areas, active and inactive
	ListAreas(ctx context.Context) ([]*models.ServiceArea, error)

	// DeactivateArea takes an area out of monitoring without deleting
	// its alert history
	DeactivateArea(ctx context.Context, areaID string) error
}
