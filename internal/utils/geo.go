package utils

import (
	"errors"
	"math"

	"github.com/mmcloughlin/geohash"

	"github.com/hhtransportationtx/dispatch/internal/pkg/models"
)

// ErrInvalidCoordinate is returned when a latitude/longitude pair is NaN
// or outside the valid range.
var ErrInvalidCoordinate = errors.New("invalid coordinate")

// GeoPoint represents a geographical point with latitude and longitude
type GeoPoint struct {
	Latitude  float64
	Longitude float64
}

// earthRadiusMiles is the Earth radius in statute miles
const earthRadiusMiles = 3959.0

// Valid reports whether the point holds a usable coordinate pair
func (p GeoPoint) Valid() bool {
	if math.IsNaN(p.Latitude) || math.IsNaN(p.Longitude) {
		return false
	}
	return p.Latitude >= -90 && p.Latitude <= 90 && p.Longitude >= -180 && p.Longitude <= 180
}

// DistanceMiles calculates the great-circle distance between two points in
// statute miles using the Haversine formula.
func DistanceMiles(point1, point2 GeoPoint) (float64, error) {
	if !point1.Valid() || !point2.Valid() {
		return 0, ErrInvalidCoordinate
	}

	lat1 := point1.Latitude * math.Pi / 180.0
	lon1 := point1.Longitude * math.Pi / 180.0
	lat2 := point2.Latitude * math.Pi / 180.0
	lon2 := point2.Longitude * math.Pi / 180.0

	dLat := lat2 - lat1
	dLon := lon2 - lon1
	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMiles * c, nil
}

// PointInPolygon reports whether the point lies inside the closed ring
// using an even-odd ray cast. The ring does not need to repeat its first
// vertex; the closing edge is implied.
func PointInPolygon(point GeoPoint, ring []GeoPoint) bool {
	if len(ring) < 3 {
		return false
	}

	inside := false
	j := len(ring) - 1
	for i := 0; i < len(ring); i++ {
		vi, vj := ring[i], ring[j]
		if (vi.Latitude > point.Latitude) != (vj.Latitude > point.Latitude) {
			cross := (vj.Longitude-vi.Longitude)*(point.Latitude-vi.Latitude)/(vj.Latitude-vi.Latitude) + vi.Longitude
			if point.Longitude < cross {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}

// EncodeLocation converts a location to a geohash string
func EncodeLocation(location models.Location, precision uint) string {
	return geohash.EncodeWithPrecision(location.Latitude, location.Longitude, precision)
}

// GetNeighbors returns the neighboring geohashes of a given geohash
func GetNeighbors(hash string) []string {
	return geohash.Neighbors(hash)
}

// GeoPointFromLocation converts a Location model to a GeoPoint
func GeoPointFromLocation(location models.Location) GeoPoint {
	return GeoPoint{
		Latitude:  location.Latitude,
		Longitude: location.Longitude,
	}
}

// RingFromBoundary converts a service-area boundary to a GeoPoint ring
func RingFromBoundary(boundary []models.Location) []GeoPoint {
	ring := make([]GeoPoint, len(boundary))
	for i, v := range boundary {
		ring[i] = GeoPoint{Latitude: v.Latitude, Longitude: v.Longitude}
	}
	return ring
}
