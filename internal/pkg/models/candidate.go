package models

// Candidate is an ephemeral per-ranking-pass score for one driver.
// DistanceMiles is negative when the distance to pickup is unknown.
type Candidate struct {
	Driver        DriverSnapshot `json:"driver"`
	DistanceMiles float64        `json:"distance_miles"`
	DistanceScore float64        `json:"distance_score"`
	WorkloadScore float64        `json:"workload_score"`
	Score         float64        `json:"score"`
}

// AssignmentResult reports the outcome of assigning a single trip
type AssignmentResult struct {
	TripID     string `json:"trip_id"`
	DriverID   string `json:"driver_id,omitempty"`
	DriverName string `json:"driver_name,omitempty"`
	Assigned   bool   `json:"assigned"`
	Reason     string `json:"reason,omitempty"`
}

// AssignedEvent is published when a trip is committed to a driver
type AssignedEvent struct {
	TripID     string `json:"trip_id"`
	DriverID   string `json:"driver_id"`
	DriverName string `json:"driver_name"`
}
