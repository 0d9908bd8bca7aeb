package gateway

import (
	"context"
	"fmt"

	"github.com/hhtransportationtx/dispatch/internal/pkg/models"
	"github.com/hhtransportationtx/dispatch/internal/pkg/nsq"
)

// GeofenceGW publishes geofence alerts to downstream notifiers over NSQ
type GeofenceGW struct {
	cfg      *models.Config
	producer *nsq.Producer
}

// NewGeofenceGW creates a new geofence gateway
func NewGeofenceGW(cfg *models.Config, producer *nsq.Producer) *GeofenceGW {
	return &GeofenceGW{
		cfg:      cfg,
		producer: producer,
	}
}

// PublishAlert fans a boundary-transition alert out on the alert topic
func (g *GeofenceGW) PublishAlert(ctx context.Context, alert *models.GeofenceAlert) error {
	if err := g.producer.PublishJSON(g.cfg.NSQ.AlertTopic, alert); err != nil {
		return fmt.Errorf("failed to publish geofence alert: %w", err)
	}
	return nil
}
