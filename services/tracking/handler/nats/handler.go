package nats

import (
	"context"
	"encoding/json"

	"github.com/nats-io/nats.go"

	"github.com/hhtransportationtx/dispatch/internal/pkg/constants"
	"github.com/hhtransportationtx/dispatch/internal/pkg/logger"
	"github.com/hhtransportationtx/dispatch/internal/pkg/models"
	natspkg "github.com/hhtransportationtx/dispatch/internal/pkg/nats"
	"github.com/hhtransportationtx/dispatch/services/tracking"
)

// TrackingHandler consumes the live driver feed and forwards events to
// the tracking use case
type TrackingHandler struct {
	trackingUC tracking.TrackingUC
	natsClient *natspkg.Client
	subs       []*nats.Subscription
}

// NewTrackingHandler creates a new tracking NATS handler
func NewTrackingHandler(trackingUC tracking.TrackingUC, natsClient *natspkg.Client) *TrackingHandler {
	return &TrackingHandler{
		trackingUC: trackingUC,
		natsClient: natsClient,
		subs:       make([]*nats.Subscription, 0),
	}
}

// InitConsumers subscribes to the driver location and status subjects
func (h *TrackingHandler) InitConsumers() error {
	locationSub, err := h.natsClient.Subscribe(constants.SubjectDriverLocation, h.handleLocationUpdate)
	if err != nil {
		return err
	}
	h.subs = append(h.subs, locationSub)

	statusSub, err := h.natsClient.Subscribe(constants.SubjectDriverStatus, h.handleStatusUpdate)
	if err != nil {
		return err
	}
	h.subs = append(h.subs, statusSub)

	logger.Info("Tracking consumers started",
		logger.String("subjects", constants.SubjectDriverLocation+", "+constants.SubjectDriverStatus))
	return nil
}

// Close drains all subscriptions
func (h *TrackingHandler) Close() {
	for _, sub := range h.subs {
		if err := sub.Unsubscribe(); err != nil {
			logger.Warn("Failed to unsubscribe", logger.Err(err))
		}
	}
	h.subs = nil
}

func (h *TrackingHandler) handleLocationUpdate(msg *nats.Msg) {
	var update models.LocationUpdate
	if err := json.Unmarshal(msg.Data, &update); err != nil {
		logger.Error("Failed to unmarshal location update", logger.Err(err))
		return
	}

	if err := h.trackingUC.ProcessLocationUpdate(context.Background(), update); err != nil {
		logger.Error("Failed to process location update",
			logger.String("driver_id", update.DriverID),
			logger.Err(err))
	}
}

func (h *TrackingHandler) handleStatusUpdate(msg *nats.Msg) {
	var update models.StatusUpdate
	if err := json.Unmarshal(msg.Data, &update); err != nil {
		logger.Error("Failed to unmarshal status update", logger.Err(err))
		return
	}

	if err := h.trackingUC.ProcessStatusUpdate(context.Background(), update); err != nil {
		logger.Error("Failed to process status update",
			logger.String("driver_id", update.DriverID),
			logger.Err(err))
	}
}
