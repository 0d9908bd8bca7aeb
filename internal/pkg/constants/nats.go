package constants

// NATS Subjects
const (
	// Live driver feed
	SubjectDriverLocation = "driver.location"
	SubjectDriverStatus   = "driver.status"

	// Dispatch events
	SubjectTripAssigned = "dispatch.trip.assigned"
)
