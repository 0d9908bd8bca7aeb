package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/hhtransportationtx/dispatch/internal/pkg/constants"
	"github.com/hhtransportationtx/dispatch/internal/pkg/database"
	"github.com/hhtransportationtx/dispatch/internal/pkg/logger"
	"github.com/hhtransportationtx/dispatch/internal/pkg/models"
	"github.com/hhtransportationtx/dispatch/services/dispatch"
)

// Trip statuses that count toward a driver's workload
const activeTripStatuses = "('assigned', 'en_route', 'in_progress')"

// DispatchRepo implements the dispatch repository interface
type DispatchRepo struct {
	cfg         *models.Config
	db          *sqlx.DB
	redisClient *database.RedisClient
}

// NewDispatchRepository creates a new dispatch repository
func NewDispatchRepository(
	cfg *models.Config,
	db *sqlx.DB,
	redisClient *database.RedisClient,
) *DispatchRepo {
	return &DispatchRepo{
		cfg:         cfg,
		db:          db,
		redisClient: redisClient,
	}
}

// GetTrip returns a trip by ID
func (r *DispatchRepo) GetTrip(ctx context.Context, tripID string) (*models.Trip, error) {
	query := `
		SELECT id, patient_name, pickup_address, dropoff_address,
			pickup_lat, pickup_lng, dropoff_lat, dropoff_lng,
			pickup_time, status, driver_id, created_at, updated_at
		FROM trips
		WHERE id = $1
	`

	var dto models.TripDTO
	if err := r.db.GetContext(ctx, &dto, query, tripID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, dispatch.ErrTripNotFound
		}
		return nil, fmt.Errorf("failed to get trip: %w", err)
	}

	return dto.ToTrip(), nil
}

// ListUnassignedTrips returns up to limit unassigned trips ordered by
// scheduled pickup time
func (r *DispatchRepo) ListUnassignedTrips(ctx context.Context, limit int) ([]*models.Trip, error) {
	query := `
		SELECT id, patient_name, pickup_address, dropoff_address,
			pickup_lat, pickup_lng, dropoff_lat, dropoff_lng,
			pickup_time, status, driver_id, created_at, updated_at
		FROM trips
		WHERE status = $1
		ORDER BY pickup_time ASC
		LIMIT $2
	`

	var dtos []models.TripDTO
	if err := r.db.SelectContext(ctx, &dtos, query, models.TripStatusUnassigned, limit); err != nil {
		return nil, fmt.Errorf("failed to list unassigned trips: %w", err)
	}

	trips := make([]*models.Trip, len(dtos))
	for i := range dtos {
		trips[i] = dtos[i].ToTrip()
	}
	return trips, nil
}

// driverWorkloadRow is the flat row for the snapshot query
type driverWorkloadRow struct {
	ID          string              `db:"id"`
	Name        string              `db:"name"`
	Status      models.DriverStatus `db:"status"`
	ActiveTrips int                 `db:"active_trips"`
}

// GetDriverSnapshots returns all drivers with their committed-trip counts
// from Postgres, enriched with last reported positions from Redis. A
// driver without a recent location report gets a nil position; position
// staleness up to one update interval is acceptable.
func (r *DispatchRepo) GetDriverSnapshots(ctx context.Context) ([]models.DriverSnapshot, error) {
	query := `
		SELECT d.id, d.name, d.status, COUNT(t.id) AS active_trips
		FROM drivers d
		LEFT JOIN trips t
			ON t.driver_id = d.id
			AND t.status IN ` + activeTripStatuses + `
		GROUP BY d.id
		ORDER BY d.created_at ASC
	`

	var rows []driverWorkloadRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to query driver workloads: %w", err)
	}

	snapshots := make([]models.DriverSnapshot, len(rows))
	for i, row := range rows {
		snapshots[i] = models.DriverSnapshot{
			ID:          row.ID,
			Name:        row.Name,
			Status:      row.Status,
			ActiveTrips: row.ActiveTrips,
			Location:    r.lastKnownLocation(ctx, row.ID),
		}
	}
	return snapshots, nil
}

// lastKnownLocation reads a driver's last reported position from the
// snapshot hash. Missing or unreadable data means no position.
func (r *DispatchRepo) lastKnownLocation(ctx context.Context, driverID string) *models.Location {
	key := fmt.Sprintf(constants.KeyDriverSnapshot, driverID)

	values, err := r.redisClient.HMGet(ctx, key,
		constants.FieldLatitude, constants.FieldLongitude, constants.FieldTimestamp)
	if err != nil {
		logger.Warn("Failed to read driver position",
			logger.String("driver_id", driverID),
			logger.Err(err))
		return nil
	}

	if values[0] == "" || values[1] == "" {
		return nil
	}

	lat, err := strconv.ParseFloat(values[0], 64)
	if err != nil {
		return nil
	}
	lng, err := strconv.ParseFloat(values[1], 64)
	if err != nil {
		return nil
	}

	location := &models.Location{Latitude: lat, Longitude: lng}
	if ts, err := strconv.ParseInt(values[2], 10, 64); err == nil {
		location.Timestamp = time.Unix(ts, 0)
	}
	return location
}

// AssignDriver commits a driver to a trip. The write is conditioned on
// the trip still being unassigned so that overlapping passes cannot
// double-assign; a lost race surfaces as ErrTripTaken.
func (r *DispatchRepo) AssignDriver(ctx context.Context, tripID, driverID string) error {
	query := `
		UPDATE trips
		SET driver_id = $1, status = $2, updated_at = NOW()
		WHERE id = $3 AND status = $4
	`

	result, err := r.db.ExecContext(ctx, query,
		driverID, models.TripStatusAssigned, tripID, models.TripStatusUnassigned)
	if err != nil {
		return fmt.Errorf("failed to assign driver: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read assignment result: %w", err)
	}
	if affected == 0 {
		return dispatch.ErrTripTaken
	}

	return nil
}

// SavePickupLocation persists geocoded pickup coordinates for a trip
func (r *DispatchRepo) SavePickupLocation(ctx context.Context, tripID string, location models.Location) error {
	query := `
		UPDATE trips
		SET pickup_lat = $1, pickup_lng = $2, updated_at = NOW()
		WHERE id = $3
	`

	if _, err := r.db.ExecContext(ctx, query, location.Latitude, location.Longitude, tripID); err != nil {
		return fmt.Errorf("failed to save pickup location: %w", err)
	}
	return nil
}
