package geofence

import (
	"context"

	"github.com/hhtransportationtx/dispatch/internal/pkg/models"
)

// GeofenceGW defines the geofence gateway interface
type GeofenceGW interface {
	// PublishAlert fans a boundary-transition alert out to downstream
	// notifiers
	PublishAlert(ctx context.Context, alert *models.GeofenceAlert) error
}
