package models

import "time"

// DriverStatus represents a driver's activity status
type DriverStatus string

const (
	DriverStatusActive   DriverStatus = "active"
	DriverStatusInactive DriverStatus = "inactive"
)

// Driver represents a driver record
type Driver struct {
	ID        string       `json:"id" db:"id"`
	Name      string       `json:"name" db:"name"`
	Phone     string       `json:"phone,omitempty" db:"phone"`
	Status    DriverStatus `json:"status" db:"status"`
	CreatedAt time.Time    `json:"created_at" db:"created_at"`
	UpdatedAt time.Time    `json:"updated_at" db:"updated_at"`
}

// DriverSnapshot is the read-only view of a driver used for candidate
// ranking: identity, last reported position (nil if the driver has never
// reported one), activity status and current committed-trip count.
type DriverSnapshot struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Status      DriverStatus `json:"status"`
	Location    *Location    `json:"location,omitempty"`
	ActiveTrips int          `json:"active_trips"`
}

// HasLocation reports whether the driver has a usable position
func (d *DriverSnapshot) HasLocation() bool {
	return d.Location != nil
}

// StatusUpdate represents a driver status change from the live feed
type StatusUpdate struct {
	DriverID  string       `json:"driver_id"`
	Status    DriverStatus `json:"status"`
	CreatedAt time.Time    `json:"created_at"`
}
