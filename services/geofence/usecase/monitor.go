package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/hhtransportationtx/dispatch/internal/pkg/logger"
	"github.com/hhtransportationtx/dispatch/internal/pkg/models"
	"github.com/hhtransportationtx/dispatch/internal/utils"
	"github.com/hhtransportationtx/dispatch/services/geofence"
)

// ProcessLocationUpdate evaluates a driver position against every active
// service area. A transition is detected by comparing the position's
// containment against the pair's most recent recorded alert, so the
// monitor needs no in-memory state and replays of the same position are
// idempotent.
func (uc *GeofenceUC) ProcessLocationUpdate(ctx context.Context, update models.LocationUpdate) ([]models.GeofenceAlert, error) {
	point := utils.GeoPointFromLocation(update.Location)
	if !point.Valid() {
		return nil, geofence.ErrInvalidLocation
	}

	areas, err := uc.geofenceRepo.ListActiveAreas(ctx)
	if err != nil {
		return nil, err
	}

	var recorded []models.GeofenceAlert
	for _, area := range areas {
		alert, err := uc.evaluateArea(ctx, update, area, point)
		if err != nil {
			logger.Error("Failed to evaluate service area",
				logger.String("driver_id", update.DriverID),
				logger.String("area_id", area.ID),
				logger.Err(err))
			continue
		}
		if alert != nil {
			recorded = append(recorded, *alert)
		}
	}
	return recorded, nil
}

// evaluateArea checks one (driver, area) pair for a boundary transition
// and records the alert when the area's flag for that transition is set.
func (uc *GeofenceUC) evaluateArea(ctx context.Context, update models.LocationUpdate, area *models.ServiceArea, point utils.GeoPoint) (*models.GeofenceAlert, error) {
	ring := utils.RingFromBoundary(area.Boundary)
	isInside := utils.PointInPolygon(point, ring)

	last, err := uc.geofenceRepo.LastAlert(ctx, update.DriverID, area.ID)
	if err != nil {
		return nil, err
	}
	wasInside := last != nil && last.Kind == models.AlertKindEntry

	var kind models.AlertKind
	switch {
	case isInside && !wasInside && area.AlertOnEntry:
		kind = models.AlertKindEntry
	case !isInside && wasInside && area.AlertOnExit:
		kind = models.AlertKindExit
	default:
		return nil, nil
	}

	alert := &models.GeofenceAlert{
		ID:        uuid.NewString(),
		DriverID:  update.DriverID,
		AreaID:    area.ID,
		Kind:      kind,
		Location:  update.Location,
		CreatedAt: time.Now(),
	}

	if err := uc.geofenceRepo.AppendAlert(ctx, alert); err != nil {
		return nil, err
	}

	if err := uc.geofenceGW.PublishAlert(ctx, alert); err != nil {
		logger.Warn("Failed to publish geofence alert",
			logger.String("alert_id", alert.ID),
			logger.Err(err))
	}

	logger.Info("Geofence transition",
		logger.String("driver_id", update.DriverID),
		logger.String("area", area.Name),
		logger.String("kind", string(kind)))
	return alert, nil
}
