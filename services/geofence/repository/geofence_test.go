package repository

import (
	"context"
	"encoding/json"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hhtransportationtx/dispatch/internal/pkg/models"
	"github.com/hhtransportationtx/dispatch/services/geofence"
)

func setupMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	db := sqlx.NewDb(mockDB, "sqlmock")
	return db, mock
}

func areaColumns() []string {
	return []string{"id", "name", "boundary", "active", "alert_on_entry", "alert_on_exit", "created_at", "updated_at"}
}

func boundaryJSON(t *testing.T) []byte {
	boundary := []models.Location{
		{Latitude: 34.00, Longitude: -118.30},
		{Latitude: 34.10, Longitude: -118.30},
		{Latitude: 34.05, Longitude: -118.20},
	}
	data, err := json.Marshal(boundary)
	require.NoError(t, err)
	return data
}

func TestCreateArea(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewGeofenceRepository(&models.Config{}, db)

	area := &models.ServiceArea{
		ID:   "area-1",
		Name: "Downtown",
		Boundary: []models.Location{
			{Latitude: 34.00, Longitude: -118.30},
			{Latitude: 34.10, Longitude: -118.30},
			{Latitude: 34.05, Longitude: -118.20},
		},
		Active:       true,
		AlertOnEntry: true,
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO service_areas")).
		WithArgs(area.ID, area.Name, sqlmock.AnyArg(), true, true, false).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.CreateArea(context.Background(), area)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetArea_DecodesBoundary(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewGeofenceRepository(&models.Config{}, db)

	now := time.Now()
	rows := sqlmock.NewRows(areaColumns()).
		AddRow("area-1", "Downtown", boundaryJSON(t), true, true, false, now, now)

	mock.ExpectQuery(regexp.QuoteMeta("FROM service_areas")).
		WithArgs("area-1").
		WillReturnRows(rows)

	area, err := repo.GetArea(context.Background(), "area-1")
	require.NoError(t, err)
	assert.Equal(t, "Downtown", area.Name)
	require.Len(t, area.Boundary, 3)
	assert.InDelta(t, 34.10, area.Boundary[1].Latitude, 1e-9)
}

func TestGetArea_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewGeofenceRepository(&models.Config{}, db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM service_areas")).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(areaColumns()))

	_, err := repo.GetArea(context.Background(), "missing")
	assert.ErrorIs(t, err, geofence.ErrAreaNotFound)
}

func TestListActiveAreas(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewGeofenceRepository(&models.Config{}, db)

	now := time.Now()
	rows := sqlmock.NewRows(areaColumns()).
		AddRow("area-1", "Downtown", boundaryJSON(t), true, true, true, now, now).
		AddRow("area-2", "Airport", boundaryJSON(t), true, false, true, now, now)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE active = TRUE")).
		WillReturnRows(rows)

	areas, err := repo.ListActiveAreas(context.Background())
	require.NoError(t, err)
	assert.Len(t, areas, 2)
}

func TestUpdateArea_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewGeofenceRepository(&models.Config{}, db)

	area := &models.ServiceArea{
		ID:       "missing",
		Name:     "Downtown",
		Boundary: []models.Location{{Latitude: 34, Longitude: -118}},
	}

	mock.ExpectExec(regexp.QuoteMeta("UPDATE service_areas")).
		WithArgs(area.Name, sqlmock.AnyArg(), false, false, false, area.ID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateArea(context.Background(), area)
	assert.ErrorIs(t, err, geofence.ErrAreaNotFound)
}

func TestDeactivateArea(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewGeofenceRepository(&models.Config{}, db)

	mock.ExpectExec(regexp.QuoteMeta("SET active = FALSE")).
		WithArgs("area-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.DeactivateArea(context.Background(), "area-1")
	assert.NoError(t, err)
}

func TestLastAlert(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewGeofenceRepository(&models.Config{}, db)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "driver_id", "area_id", "kind", "latitude", "longitude", "created_at"}).
		AddRow("alert-1", "d1", "area-1", "entry", 34.05, -118.28, now)

	mock.ExpectQuery(regexp.QuoteMeta("FROM geofence_alerts")).
		WithArgs("d1", "area-1").
		WillReturnRows(rows)

	alert, err := repo.LastAlert(context.Background(), "d1", "area-1")
	require.NoError(t, err)
	require.NotNil(t, alert)
	assert.Equal(t, models.AlertKindEntry, alert.Kind)
	assert.InDelta(t, 34.05, alert.Location.Latitude, 1e-9)
}

func TestLastAlert_NoHistory(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewGeofenceRepository(&models.Config{}, db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM geofence_alerts")).
		WithArgs("d1", "area-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "driver_id", "area_id", "kind", "latitude", "longitude", "created_at"}))

	alert, err := repo.LastAlert(context.Background(), "d1", "area-1")
	assert.NoError(t, err)
	assert.Nil(t, alert)
}

func TestAppendAlert(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewGeofenceRepository(&models.Config{}, db)

	alert := &models.GeofenceAlert{
		ID:        "alert-1",
		DriverID:  "d1",
		AreaID:    "area-1",
		Kind:      models.AlertKindExit,
		Location:  models.Location{Latitude: 34.20, Longitude: -118.30},
		CreatedAt: time.Now(),
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO geofence_alerts")).
		WithArgs(alert.ID, alert.DriverID, alert.AreaID, alert.Kind,
			alert.Location.Latitude, alert.Location.Longitude, alert.CreatedAt).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.AppendAlert(context.Background(), alert)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
