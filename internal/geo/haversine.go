// Package geo provides great-circle helpers used by route planning.
package geo

import (
	"math"

	"mission-route-service/internal/domain"
)

// EarthRadiusKm is the mean radius of Earth in kilometers.
const EarthRadiusKm = 6371.0

// DistanceKm returns the Haversine distance between a and b in kilometers.
func DistanceKm(a, b domain.Coordinates) float64 {
	dLat := radians(b.Lat - a.Lat)
	dLon := radians(b.Lon - a.Lon)

	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)

	h := sinLat*sinLat + math.Cos(radians(a.Lat))*math.Cos(radians(b.Lat))*sinLon*sinLon
	// Rounding can push h a hair past 1 for antipodal points.
	h = math.Min(1, math.Max(0, h))

	return 2 * EarthRadiusKm * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// TravelMinutes estimates travel time at the mode's average speed, rounded to the minute.
func TravelMinutes(distanceKm float64, mode domain.TransportMode) int {
	return int(math.Round(distanceKm / mode.AverageSpeedKmh() * 60))
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
