package dispatch

import (
	"context"

	"github.com/hhtransportationtx/dispatch/internal/pkg/models"
)

// DispatchGW defines the dispatch gateways interface
type DispatchGW interface {
	// GeocodeAddress resolves a street address to coordinates via the
	// mapping provider. Returns ErrGeocodeUnavailable when the address
	// cannot be resolved.
	GeocodeAddress(ctx context.Context, address string) (*models.Location, error)

	// PublishTripAssigned publishes an assignment outcome event
	PublishTripAssigned(ctx context.Context, event models.AssignedEvent) error
}
