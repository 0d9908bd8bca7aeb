package gateway

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hhtransportationtx/dispatch/internal/pkg/constants"
	"github.com/hhtransportationtx/dispatch/internal/pkg/logger"
	"github.com/hhtransportationtx/dispatch/internal/pkg/models"
	natspkg "github.com/hhtransportationtx/dispatch/internal/pkg/nats"
)

// NATSGateway publishes dispatch events to NATS
type NATSGateway struct {
	natsClient *natspkg.Client
}

// NewNATSGateway creates a new NATS gateway instance
func NewNATSGateway(client *natspkg.Client) *NATSGateway {
	return &NATSGateway{natsClient: client}
}

// PublishTripAssigned publishes an assignment outcome event
func (g *NATSGateway) PublishTripAssigned(ctx context.Context, event models.AssignedEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal assigned event: %w", err)
	}

	if err := g.natsClient.Publish(constants.SubjectTripAssigned, data); err != nil {
		logger.Error("Failed to publish trip assigned event",
			logger.String("trip_id", event.TripID),
			logger.String("driver_id", event.DriverID),
			logger.Err(err))
		return fmt.Errorf("failed to publish trip assigned event: %w", err)
	}

	return nil
}
