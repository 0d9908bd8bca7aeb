package usecase

import (
	"context"
	"time"

	"github.com/hhtransportationtx/dispatch/internal/pkg/logger"
	"github.com/hhtransportationtx/dispatch/internal/pkg/models"
	"github.com/hhtransportationtx/dispatch/internal/utils"
	"github.com/hhtransportationtx/dispatch/services/tracking"
)

// ProcessLocationUpdate ingests a driver position report. Reports with
// out-of-range coordinates are rejected so that bad data never reaches
// the ranking path.
func (uc *TrackingUC) ProcessLocationUpdate(ctx context.Context, update models.LocationUpdate) error {
	if update.DriverID == "" {
		return tracking.ErrMissingDriverID
	}
	if !utils.GeoPointFromLocation(update.Location).Valid() {
		return tracking.ErrInvalidLocation
	}

	if update.Location.Timestamp.IsZero() {
		update.Location.Timestamp = time.Now()
	}

	cell := utils.EncodeLocation(update.Location, CellPrecision)
	if err := uc.trackingRepo.StoreSnapshot(ctx, update, cell); err != nil {
		return err
	}

	logger.Debug("Stored driver position",
		logger.String("driver_id", update.DriverID),
		logger.String("cell", cell))
	return nil
}

// ProcessStatusUpdate records a driver's activity status change. A driver
// going inactive is withdrawn from the position indexes so radius queries
// stop returning them; the snapshot hash keeps the last known position.
func (uc *TrackingUC) ProcessStatusUpdate(ctx context.Context, update models.StatusUpdate) error {
	if update.DriverID == "" {
		return tracking.ErrMissingDriverID
	}

	if err := uc.trackingRepo.SetDriverStatus(ctx, update.DriverID, update.Status); err != nil {
		return err
	}

	if update.Status == models.DriverStatusInactive {
		if err := uc.trackingRepo.RemoveDriver(ctx, update.DriverID); err != nil {
			return err
		}
	}

	logger.Info("Driver status changed",
		logger.String("driver_id", update.DriverID),
		logger.String("status", string(update.Status)))
	return nil
}

// GetNearbyDrivers returns drivers within radiusMiles of a point, nearest
// first
func (uc *TrackingUC) GetNearbyDrivers(ctx context.Context, location models.Location, radiusMiles float64) ([]models.NearbyDriver, error) {
	if !utils.GeoPointFromLocation(location).Valid() {
		return nil, tracking.ErrInvalidLocation
	}
	if radiusMiles <= 0 {
		radiusMiles = uc.cfg.Dispatch.NearbyRadiusMiles
	}

	return uc.trackingRepo.GetNearbyDrivers(ctx, location, radiusMiles)
}

// GetCellSummary aggregates driver presence for the geohash cell
// containing the point and its neighbor cells
func (uc *TrackingUC) GetCellSummary(ctx context.Context, location models.Location) (*models.CellSummary, error) {
	if !utils.GeoPointFromLocation(location).Valid() {
		return nil, tracking.ErrInvalidLocation
	}

	cell := utils.EncodeLocation(location, CellPrecision)
	driverIDs, err := uc.trackingRepo.GetCellDrivers(ctx, cell)
	if err != nil {
		return nil, err
	}

	neighbors := make(map[string]int)
	for _, neighbor := range utils.GetNeighbors(cell) {
		ids, err := uc.trackingRepo.GetCellDrivers(ctx, neighbor)
		if err != nil {
			return nil, err
		}
		if len(ids) > 0 {
			neighbors[neighbor] = len(ids)
		}
	}

	return &models.CellSummary{
		Cell:      cell,
		DriverIDs: driverIDs,
		Count:     len(driverIDs),
		Neighbors: neighbors,
	}, nil
}
