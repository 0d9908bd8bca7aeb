package dispatch

import "errors"

var (
	// ErrTripNotFound is returned when a trip does not exist
	ErrTripNotFound = errors.New("trip not found")

	// ErrTripNotUnassigned is returned when assignment is requested for a
	// trip that already left the unassigned state
	ErrTripNotUnassigned = errors.New("trip is not unassigned")

	// ErrTripTaken is returned when the conditional assignment write
	// found the trip already transitioned by a concurrent pass
	ErrTripTaken = errors.New("trip already assigned")

	// ErrGeocodeUnavailable is returned when the mapping provider cannot
	// resolve an address to coordinates
	ErrGeocodeUnavailable = errors.New("geocode unavailable")
)

// Per-trip failure reasons surfaced in assignment results
const (
	ReasonNoDrivers    = "no available drivers"
	ReasonAssignFailed = "failed to assign"
)
