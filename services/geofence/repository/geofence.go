package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/hhtransportationtx/dispatch/internal/pkg/models"
	"github.com/hhtransportationtx/dispatch/services/geofence"
)

// GeofenceRepo implements the geofence repository over Postgres
type GeofenceRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewGeofenceRepository creates a new geofence repository
func NewGeofenceRepository(cfg *models.Config, db *sqlx.DB) *GeofenceRepo {
	return &GeofenceRepo{
		cfg: cfg,
		db:  db,
	}
}

// serviceAreaRow carries a service area with its boundary ring as JSONB
type serviceAreaRow struct {
	ID           string    `db:"id"`
	Name         string    `db:"name"`
	Boundary     []byte    `db:"boundary"`
	Active       bool      `db:"active"`
	AlertOnEntry bool      `db:"alert_on_entry"`
	AlertOnExit  bool      `db:"alert_on_exit"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

func (row *serviceAreaRow) toArea() (*models.ServiceArea, error) {
	var boundary []models.Location
	if err := json.Unmarshal(row.Boundary, &boundary); err != nil {
		return nil, fmt.Errorf("failed to decode boundary ring: %w", err)
	}

	return &models.ServiceArea{
		ID:           row.ID,
		Name:         row.Name,
		Boundary:     boundary,
		Active:       row.Active,
		AlertOnEntry: row.AlertOnEntry,
		AlertOnExit:  row.AlertOnExit,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}, nil
}

// CreateArea stores a new service area
func (r *GeofenceRepo) CreateArea(ctx context.Context, area *models.ServiceArea) error {
	boundary, err := json.Marshal(area.Boundary)
	if err != nil {
		return fmt.Errorf("failed to encode boundary ring: %w", err)
	}

	query := `
		INSERT INTO service_areas (id, name, boundary, active, alert_on_entry, alert_on_exit, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
	`

	if _, err := r.db.ExecContext(ctx, query,
		area.ID, area.Name, boundary, area.Active, area.AlertOnEntry, area.AlertOnExit); err != nil {
		return fmt.Errorf("failed to create service area: %w", err)
	}
	return nil
}

// UpdateArea stores changes to an existing area
func (r *GeofenceRepo) UpdateArea(ctx context.Context, area *models.ServiceArea) error {
	boundary, err := json.Marshal(area.Boundary)
	if err != nil {
		return fmt.Errorf("failed to encode boundary ring: %w", err)
	}

	query := `
		UPDATE service_areas
		SET name = $1, boundary = $2, active = $3, alert_on_entry = $4, alert_on_exit = $5, updated_at = NOW()
		WHERE id = $6
	`

	result, err := r.db.ExecContext(ctx, query,
		area.Name, boundary, area.Active, area.AlertOnEntry, area.AlertOnExit, area.ID)
	if err != nil {
		return fmt.Errorf("failed to update service area: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if affected == 0 {
		return geofence.ErrAreaNotFound
	}
	return nil
}

// GetArea returns an area by ID
func (r *GeofenceRepo) GetArea(ctx context.Context, areaID string) (*models.ServiceArea, error) {
	query := `
		SELECT id, name, boundary, active, alert_on_entry, alert_on_exit, created_at, updated_at
		FROM service_areas
		WHERE id = $1
	`

	var row serviceAreaRow
	if err := r.db.GetContext(ctx, &row, query, areaID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, geofence.ErrAreaNotFound
		}
		return nil, fmt.Errorf("failed to get service area: %w", err)
	}
	return row.toArea()
}

// ListAreas returns all service areas
func (r *GeofenceRepo) ListAreas(ctx context.Context) ([]*models.ServiceArea, error) {
	query := `
		SELECT id, name, boundary, active, alert_on_entry, alert_on_exit, created_at, updated_at
		FROM service_areas
		ORDER BY created_at ASC
	`
	return r.listAreas(ctx, query)
}

// ListActiveAreas returns the areas currently being monitored
func (r *GeofenceRepo) ListActiveAreas(ctx context.Context) ([]*models.ServiceArea, error) {
	query := `
		SELECT id, name, boundary, active, alert_on_entry, alert_on_exit, created_at, updated_at
		FROM service_areas
		WHERE active = TRUE
		ORDER BY created_at ASC
	`
	return r.listAreas(ctx, query)
}

func (r *GeofenceRepo) listAreas(ctx context.Context, query string) ([]*models.ServiceArea, error) {
	var rows []serviceAreaRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to list service areas: %w", err)
	}

	areas := make([]*models.ServiceArea, 0, len(rows))
	for i := range rows {
		area, err := rows[i].toArea()
		if err != nil {
			return nil, err
		}
		areas = append(areas, area)
	}
	return areas, nil
}

// DeactivateArea marks an area inactive
func (r *GeofenceRepo) DeactivateArea(ctx context.Context, areaID string) error {
	query := `
		UPDATE service_areas
		SET active = FALSE, updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query, areaID)
	if err != nil {
		return fmt.Errorf("failed to deactivate service area: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read deactivation result: %w", err)
	}
	if affected == 0 {
		return geofence.ErrAreaNotFound
	}
	return nil
}

// alertRow is the flat row for the geofence_alerts table
type alertRow struct {
	ID        string           `db:"id"`
	DriverID  string           `db:"driver_id"`
	AreaID    string           `db:"area_id"`
	Kind      models.AlertKind `db:"kind"`
	Latitude  float64          `db:"latitude"`
	Longitude float64          `db:"longitude"`
	CreatedAt time.Time        `db:"created_at"`
}

// LastAlert returns the most recent alert for a (driver, area) pair, or
// nil when the pair has no alert history
func (r *GeofenceRepo) LastAlert(ctx context.Context, driverID, areaID string) (*models.GeofenceAlert, error) {
	query := `
		SELECT id, driver_id, area_id, kind, latitude, longitude, created_at
		FROM geofence_alerts
		WHERE driver_id = $1 AND area_id = $2
		ORDER BY created_at DESC
		LIMIT 1
	`

	var row alertRow
	if err := r.db.GetContext(ctx, &row, query, driverID, areaID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get last alert: %w", err)
	}

	return &models.GeofenceAlert{
		ID:       row.ID,
		DriverID: row.DriverID,
		AreaID:   row.AreaID,
		Kind:     row.Kind,
		Location: models.Location{
			Latitude:  row.Latitude,
			Longitude: row.Longitude,
		},
		CreatedAt: row.CreatedAt,
	}, nil
}

// AppendAlert stores a boundary-transition alert
func (r *GeofenceRepo) AppendAlert(ctx context.Context, alert *models.GeofenceAlert) error {
	query := `
		INSERT INTO geofence_alerts (id, driver_id, area_id, kind, latitude, longitude, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	if _, err := r.db.ExecContext(ctx, query,
		alert.ID, alert.DriverID, alert.AreaID, alert.Kind,
		alert.Location.Latitude, alert.Location.Longitude, alert.CreatedAt); err != nil {
		return fmt.Errorf("failed to append alert: %w", err)
	}
	return nil
}
