package usecase

import (
	"github.com/hhtransportationtx/dispatch/internal/pkg/models"
	"github.com/hhtransportationtx/dispatch/services/geofence"
)

// GeofenceUC implements the geofence use case interface
type GeofenceUC struct {
	cfg          *models.Config
	geofenceRepo geofence.GeofenceRepo
	geofenceGW   geofence.GeofenceGW
}

// NewGeofenceUC creates a new geofence use case
func NewGeofenceUC(
	cfg *models.Config,
	geofenceRepo geofence.GeofenceRepo,
	geofenceGW geofence.GeofenceGW,
) *GeofenceUC {
	return &GeofenceUC{
		cfg:          cfg,
		geofenceRepo: geofenceRepo,
		geofenceGW:   geofenceGW,
	}
}
