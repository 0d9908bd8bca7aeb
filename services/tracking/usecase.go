package tracking

import (
	"context"

	"github.com/hhtransportationtx/dispatch/internal/pkg/models"
)

// TrackingUC defines the tracking use case interface
type TrackingUC interface {
	// ProcessLocationUpdate ingests a driver position report from the
	// live feed into the snapshot store.
	ProcessLocationUpdate(ctx context.Context, update models.LocationUpdate) error

	// ProcessStatusUpdate records a driver's activity status change. An
	// inactive driver is withdrawn from the position indexes.
	ProcessStatusUpdate(ctx context.Context, update models.StatusUpdate) error

	// GetNearbyDrivers returns drivers within radiusMiles of a point,
	// nearest first.
	GetNearbyDrivers(ctx context.Context, location models.Location, radiusMiles float64) ([]models.NearbyDriver, error)

	// GetCellSummary aggregates driver presence for the geohash cell
	// containing the point and its neighbor cells.
	GetCellSummary(ctx context.Context, location models.Location) (*models.CellSummary, error)
}
