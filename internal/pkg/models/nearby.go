package models

// NearbyDriver is a driver position returned by a radius query
type NearbyDriver struct {
	ID            string   `json:"id"`
	Location      Location `json:"location"`
	DistanceMiles float64  `json:"distance_miles"`
}

// CellSummary aggregates driver presence for a geohash cell and its
// neighbors, used by the dashboard map to shade coverage.
type CellSummary struct {
	Cell      string         `json:"cell"`
	DriverIDs []string       `json:"driver_ids"`
	Count     int            `json:"count"`
	Neighbors map[string]int `json:"neighbors"`
}
