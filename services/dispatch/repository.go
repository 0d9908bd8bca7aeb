package dispatch

import (
	"context"

	"github.com/hhtransportationtx/dispatch/internal/pkg/models"
)

// DispatchRepo defines the interface for dispatch data access operations
type DispatchRepo interface {
	// GetTrip returns a trip by ID
	GetTrip(ctx context.Context, tripID string) (*models.Trip, error)

	// ListUnassignedTrips returns up to limit unassigned trips ordered by
	// scheduled pickup time
	ListUnassignedTrips(ctx context.Context, limit int) ([]*models.Trip, error)

	// GetDriverSnapshots returns all drivers with their committed-trip
	// counts and last reported positions
	GetDriverSnapshots(ctx context.Context) ([]models.DriverSnapshot, error)

	// AssignDriver commits a driver to a trip, conditioned on the trip
	// still being unassigned. Returns ErrTripTaken when the trip's state
	// changed since it was read.
	AssignDriver(ctx context.Context, tripID, driverID string) error

	// SavePickupLocation persists geocoded pickup coordinates for a trip
	SavePickupLocation(ctx context.Context, tripID string, location models.Location) error
}
