package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/hhtransportationtx/dispatch/internal/pkg/constants"
	"github.com/hhtransportationtx/dispatch/internal/pkg/database"
	"github.com/hhtransportationtx/dispatch/internal/pkg/models"
)

// SnapshotTTL is how long a driver snapshot survives without a fresh
// report. Drivers report every few seconds while on shift, so an expired
// snapshot means the driver has dropped off the feed.
const SnapshotTTL = 30 * time.Minute

// TrackingRepo implements the tracking repository over Redis
type TrackingRepo struct {
	redisClient *database.RedisClient
}

// NewTrackingRepository creates a new tracking repository
func NewTrackingRepository(redisClient *database.RedisClient) *TrackingRepo {
	return &TrackingRepo{redisClient: redisClient}
}

// StoreSnapshot writes a driver's position report to the snapshot hash,
// the GEO index and the geohash cell set. When the driver moved to a new
// cell, their membership in the previous cell set is dropped.
func (r *TrackingRepo) StoreSnapshot(ctx context.Context, update models.LocationUpdate, cell string) error {
	snapshotKey := fmt.Sprintf(constants.KeyDriverSnapshot, update.DriverID)

	previousCell, err := r.currentCell(ctx, snapshotKey)
	if err != nil {
		return err
	}

	snapshotData := map[string]interface{}{
		constants.FieldLatitude:  strconv.FormatFloat(update.Location.Latitude, 'f', -1, 64),
		constants.FieldLongitude: strconv.FormatFloat(update.Location.Longitude, 'f', -1, 64),
		constants.FieldTimestamp: strconv.FormatInt(update.Location.Timestamp.Unix(), 10),
		constants.FieldGeohash:   cell,
	}
	if update.Status != "" {
		snapshotData[constants.FieldStatus] = update.Status
	}

	if err := r.redisClient.HMSet(ctx, snapshotKey, snapshotData); err != nil {
		return fmt.Errorf("failed to store driver snapshot: %w", err)
	}
	if err := r.redisClient.Expire(ctx, snapshotKey, SnapshotTTL); err != nil {
		return fmt.Errorf("failed to set snapshot TTL: %w", err)
	}

	if err := r.redisClient.GeoAdd(ctx, constants.KeyDriverGeo,
		update.Location.Longitude, update.Location.Latitude, update.DriverID); err != nil {
		return fmt.Errorf("failed to update geo index: %w", err)
	}

	if previousCell != "" && previousCell != cell {
		cellKey := fmt.Sprintf(constants.KeyDriverCell, previousCell)
		if err := r.redisClient.SRem(ctx, cellKey, update.DriverID); err != nil {
			return fmt.Errorf("failed to leave previous cell: %w", err)
		}
	}

	cellKey := fmt.Sprintf(constants.KeyDriverCell, cell)
	if err := r.redisClient.SAdd(ctx, cellKey, update.DriverID); err != nil {
		return fmt.Errorf("failed to join cell: %w", err)
	}

	return nil
}

// SetDriverStatus updates the status field on a driver's snapshot
func (r *TrackingRepo) SetDriverStatus(ctx context.Context, driverID string, status models.DriverStatus) error {
	snapshotKey := fmt.Sprintf(constants.KeyDriverSnapshot, driverID)

	data := map[string]interface{}{
		constants.FieldStatus: string(status),
	}
	if err := r.redisClient.HMSet(ctx, snapshotKey, data); err != nil {
		return fmt.Errorf("failed to update driver status: %w", err)
	}
	return nil
}

// RemoveDriver withdraws a driver from the GEO index and their current
// cell set. The snapshot hash is kept for last-known reads.
func (r *TrackingRepo) RemoveDriver(ctx context.Context, driverID string) error {
	snapshotKey := fmt.Sprintf(constants.KeyDriverSnapshot, driverID)

	cell, err := r.currentCell(ctx, snapshotKey)
	if err != nil {
		return err
	}

	if err := r.redisClient.ZRem(ctx, constants.KeyDriverGeo, driverID); err != nil {
		return fmt.Errorf("failed to remove from geo index: %w", err)
	}

	if cell != "" {
		cellKey := fmt.Sprintf(constants.KeyDriverCell, cell)
		if err := r.redisClient.SRem(ctx, cellKey, driverID); err != nil {
			return fmt.Errorf("failed to leave cell: %w", err)
		}
	}

	return nil
}

// GetNearbyDrivers returns drivers within radiusMiles of a point, nearest
// first
func (r *TrackingRepo) GetNearbyDrivers(ctx context.Context, location models.Location, radiusMiles float64) ([]models.NearbyDriver, error) {
	results, err := r.redisClient.GeoRadius(ctx, constants.KeyDriverGeo,
		location.Longitude, location.Latitude, radiusMiles, "mi")
	if err != nil {
		return nil, fmt.Errorf("failed to query nearby drivers: %w", err)
	}

	drivers := make([]models.NearbyDriver, 0, len(results))
	for _, result := range results {
		drivers = append(drivers, models.NearbyDriver{
			ID: result.Name,
			Location: models.Location{
				Latitude:  result.Latitude,
				Longitude: result.Longitude,
			},
			DistanceMiles: result.Dist,
		})
	}
	return drivers, nil
}

// GetCellDrivers returns the driver IDs currently tagged with cell
func (r *TrackingRepo) GetCellDrivers(ctx context.Context, cell string) ([]string, error) {
	cellKey := fmt.Sprintf(constants.KeyDriverCell, cell)

	ids, err := r.redisClient.SMembers(ctx, cellKey)
	if err != nil {
		return nil, fmt.Errorf("failed to read cell members: %w", err)
	}
	return ids, nil
}

// currentCell reads the cell tag from a driver's snapshot hash
func (r *TrackingRepo) currentCell(ctx context.Context, snapshotKey string) (string, error) {
	values, err := r.redisClient.HMGet(ctx, snapshotKey, constants.FieldGeohash)
	if err != nil {
		return "", fmt.Errorf("failed to read driver cell: %w", err)
	}
	return values[0], nil
}
