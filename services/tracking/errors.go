package tracking

import "errors"

// Tracking service errors
var (
	// ErrInvalidLocation is returned when a position report carries
	// coordinates outside the valid range.
	ErrInvalidLocation = errors.New("invalid location")

	// ErrMissingDriverID is returned when a feed event has no driver ID
	ErrMissingDriverID = errors.New("missing driver ID")
)
