package usecase

import (
	"github.com/hhtransportationtx/dispatch/internal/pkg/models"
	"github.com/hhtransportationtx/dispatch/services/tracking"
)

// CellPrecision is the geohash length used to tag driver snapshots.
// Six characters gives cells of roughly three quarters of a mile,
// fine enough for the dashboard coverage map.
const CellPrecision = 6

// TrackingUC implements the tracking use case interface
type TrackingUC struct {
	cfg          *models.Config
	trackingRepo tracking.TrackingRepo
}

// NewTrackingUC creates a new tracking use case
func NewTrackingUC(cfg *models.Config, trackingRepo tracking.TrackingRepo) *TrackingUC {
	return &TrackingUC{
		cfg:          cfg,
		trackingRepo: trackingRepo,
	}
}
