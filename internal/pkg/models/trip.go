package models

import "time"

// TripStatus represents the current status of a trip
type TripStatus string

const (
	TripStatusUnassigned TripStatus = "unassigned"
	TripStatusAssigned   TripStatus = "assigned"
	TripStatusEnRoute    TripStatus = "en_route"
	TripStatusInProgress TripStatus = "in_progress"
	TripStatusCompleted  TripStatus = "completed"
	TripStatusCancelled  TripStatus = "cancelled"
)

// Trip represents a patient transportation trip.
//
// The dispatch engine only ever moves a trip from unassigned to assigned;
// all other transitions belong to downstream surfaces.
type Trip struct {
	ID             string     `json:"id" db:"id"`
	PatientName    string     `json:"patient_name" db:"patient_name"`
	PickupAddress  string     `json:"pickup_address" db:"pickup_address"`
	DropoffAddress string     `json:"dropoff_address" db:"dropoff_address"`
	PickupLocation *Location  `json:"pickup_location,omitempty"`
	DropoffLoc     *Location  `json:"dropoff_location,omitempty"`
	PickupTime     time.Time  `json:"pickup_time" db:"pickup_time"`
	Status         TripStatus `json:"status" db:"status"`
	DriverID       *string    `json:"driver_id,omitempty" db:"driver_id"`
	CreatedAt      time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at" db:"updated_at"`
}

// TripDTO flattens the nested Location structs for database operations
type TripDTO struct {
	ID             string     `db:"id"`
	PatientName    string     `db:"patient_name"`
	PickupAddress  string     `db:"pickup_address"`
	DropoffAddress string     `db:"dropoff_address"`
	PickupLat      *float64   `db:"pickup_lat"`
	PickupLng      *float64   `db:"pickup_lng"`
	DropoffLat     *float64   `db:"dropoff_lat"`
	DropoffLng     *float64   `db:"dropoff_lng"`
	PickupTime     time.Time  `db:"pickup_time"`
	Status         TripStatus `db:"status"`
	DriverID       *string    `db:"driver_id"`
	CreatedAt      time.Time  `db:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at"`
}

// ToTrip converts a TripDTO to a Trip
func (dto *TripDTO) ToTrip() *Trip {
	trip := &Trip{
		ID:             dto.ID,
		PatientName:    dto.PatientName,
		PickupAddress:  dto.PickupAddress,
		DropoffAddress: dto.DropoffAddress,
		PickupTime:     dto.PickupTime,
		Status:         dto.Status,
		DriverID:       dto.DriverID,
		CreatedAt:      dto.CreatedAt,
		UpdatedAt:      dto.UpdatedAt,
	}
	if dto.PickupLat != nil && dto.PickupLng != nil {
		trip.PickupLocation = &Location{Latitude: *dto.PickupLat, Longitude: *dto.PickupLng}
	}
	if dto.DropoffLat != nil && dto.DropoffLng != nil {
		trip.DropoffLoc = &Location{Latitude: *dto.DropoffLat, Longitude: *dto.DropoffLng}
	}
	return trip
}
