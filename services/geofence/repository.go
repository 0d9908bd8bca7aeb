package geofence

import (
	"context"

	"github.com/hhtransportationtx/dispatch/internal/pkg/models"
)

// GeofenceRepo defines the geofence repository interface
type GeofenceRepo interface {
	// CreateArea stores a new service area
	CreateArea(ctx context.Context, area *models.ServiceArea) error

	// UpdateArea stores changes to an existing area
	UpdateArea(ctx context.Context, area *models.ServiceArea) error

	// GetArea returns an area by ID
	GetArea(ctx context.Context, areaID string) (*models.ServiceArea, error)

	// ListAreas returns all service areas
	ListAreas(ctx context.Context) ([]*models.ServiceArea, error)

	// ListActiveAreas returns the areas currently being monitored
	ListActiveAreas(ctx context.Context) ([]*models.ServiceArea, error)

	// DeactivateArea marks an area inactive
	DeactivateArea(ctx context.Context, areaID string) error

	// LastAlert returns the most recent alert for a (driver, area) pair,
	// or nil when the pair has no alert history.
	LastAlert(ctx context.Context, driverID, areaID string) (*models.GeofenceAlert, error)

	// AppendAlert stores a boundary-transition alert
	AppendAlert(ctx context.Context, alert *models.GeofenceAlert) error
}
