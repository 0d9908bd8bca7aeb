package nats

import (
	"context"
	"encoding/json"

	"github.com/nats-io/nats.go"

	"github.com/hhtransportationtx/dispatch/internal/pkg/constants"
	"github.com/hhtransportationtx/dispatch/internal/pkg/logger"
	"github.com/hhtransportationtx/dispatch/internal/pkg/models"
	natspkg "github.com/hhtransportationtx/dispatch/internal/pkg/nats"
	"github.com/hhtransportationtx/dispatch/services/geofence"
)

// GeofenceHandler consumes the live driver feed and runs the monitor
// for each position report
type GeofenceHandler struct {
	geofenceUC geofence.GeofenceUC
	natsClient *natspkg.Client
	subs       []*nats.Subscription
}

// NewGeofenceHandler creates a new geofence NATS handler
func NewGeofenceHandler(geofenceUC geofence.GeofenceUC, natsClient *natspkg.Client) *GeofenceHandler {
	return &GeofenceHandler{
		geofenceUC: geofenceUC,
		natsClient: natsClient,
		subs:       make([]*nats.Subscription, 0),
	}
}

// InitConsumers subscribes to the driver location subject
func (h *GeofenceHandler) InitConsumers() error {
	sub, err := h.natsClient.Subscribe(constants.SubjectDriverLocation, h.handleLocationUpdate)
	if err != nil {
		return err
	}
	h.subs = append(h.subs, sub)

	logger.Info("Geofence consumer started",
		logger.String("subject", constants.SubjectDriverLocation))
	return nil
}

// Close drains all subscriptions
func (h *GeofenceHandler) Close() {
	for _, sub := range h.subs {
		if err := sub.Unsubscribe(); err != nil {
			logger.Warn("Failed to unsubscribe", logger.Err(err))
		}
	}
	h.subs = nil
}

func (h *GeofenceHandler) handleLocationUpdate(msg *nats.Msg) {
	var update models.LocationUpdate
	if err := json.Unmarshal(msg.Data, &update); err != nil {
		logger.Error("Failed to unmarshal location update", logger.Err(err))
		return
	}

	if _, err := h.geofenceUC.ProcessLocationUpdate(context.Background(), update); err != nil {
		logger.Error("Failed to evaluate position against service areas",
			logger.String("driver_id", update.DriverID),
			logger.Err(err))
	}
}
