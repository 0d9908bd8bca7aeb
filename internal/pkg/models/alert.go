package models

import "time"

// AlertKind represents a geofence transition kind
type AlertKind string

const (
	AlertKindEntry AlertKind = "entry"
	AlertKindExit  AlertKind = "exit"
)

// GeofenceAlert records a single boundary transition for a
// (driver, service area) pair. Alerts are append-only; the most recent
// alert per pair is the authority for the pair's last known containment
// state.
type GeofenceAlert struct {
	ID        string    `json:"id" db:"id"`
	DriverID  string    `json:"driver_id" db:"driver_id"`
	AreaID    string    `json:"area_id" db:"area_id"`
	Kind      AlertKind `json:"kind" db:"kind"`
	Location  Location  `json:"location"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
