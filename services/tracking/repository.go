package tracking

import (
	"context"

	"github.com/hhtransportationtx/dispatch/internal/pkg/models"
)

// TrackingRepo defines the tracking repository interface
type TrackingRepo interface {
	// StoreSnapshot writes a driver's position report to the snapshot
	// hash, the GEO index and the geohash cell set for cell.
	StoreSnapshot(ctx context.Context, update models.LocationUpdate, cell string) error

	// SetDriverStatus updates the status field on a driver's snapshot
	SetDriverStatus(ctx context.Context, driverID string, status models.DriverStatus) error

	// RemoveDriver withdraws a driver from the GEO index and their
	// current cell set. The snapshot hash is kept for last-known reads.
	RemoveDriver(ctx context.Context, driverID string) error

	// GetNearbyDrivers returns drivers within radiusMiles of a point,
	// nearest first.
	GetNearbyDrivers(ctx context.Context, location models.Location, radiusMiles float64) ([]models.NearbyDriver, error)

	// GetCellDrivers returns the driver IDs currently tagged with cell
	GetCellDrivers(ctx context.Context, cell string) ([]string, error)
}
