package geofence

import "errors"

// Geofence service errors
var (
	// ErrAreaNotFound is returned when a service area ID has no record
	ErrAreaNotFound = errors.New("service area not found")

	// ErrInvalidBoundary is returned when a boundary ring has fewer than
	// three vertices or a vertex with out-of-range coordinates.
	ErrInvalidBoundary = errors.New("invalid boundary ring")

	// ErrInvalidLocation is returned when a position report carries
	// coordinates outside the valid range.
	ErrInvalidLocation = errors.New("invalid location")
)
