package gateway

import (
	"context"

	"github.com/hhtransportationtx/dispatch/internal/pkg/models"
	natspkg "github.com/hhtransportationtx/dispatch/internal/pkg/nats"
)

// DispatchGW composes the maps and NATS gateways behind the dispatch
// gateway interface
type DispatchGW struct {
	mapsGateway *MapsGateway
	natsGateway *NATSGateway
}

// NewDispatchGW creates a new dispatch gateway
func NewDispatchGW(natsClient *natspkg.Client, mapsAPIKey string) (*DispatchGW, error) {
	mapsGW, err := NewMapsGateway(mapsAPIKey)
	if err != nil {
		return nil, err
	}

	return &DispatchGW{
		mapsGateway: mapsGW,
		natsGateway: NewNATSGateway(natsClient),
	}, nil
}

// GeocodeAddress forwards to the maps gateway implementation
func (g *DispatchGW) GeocodeAddress(ctx context.Context, address string) (*models.Location, error) {
	return g.mapsGateway.GeocodeAddress(ctx, address)
}

// PublishTripAssigned forwards to the NATS gateway implementation
func (g *DispatchGW) PublishTripAssigned(ctx context.Context, event models.AssignedEvent) error {
	return g.natsGateway.PublishTripAssigned(ctx, event)
}
