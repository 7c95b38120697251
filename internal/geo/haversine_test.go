package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"mission-route-service/internal/domain"
)

var (
	depot  = domain.Coordinates{Lat: 48.9733, Lon: 1.7075}
	paris  = domain.Coordinates{Lat: 48.8566, Lon: 2.3522}
	sydney = domain.Coordinates{Lat: -33.8688, Lon: 151.2093}
)

func TestDistanceKmKnownPair(t *testing.T) {
	assert.InDelta(t, 48.866, DistanceKm(depot, paris), 0.01)
}

func TestDistanceKmSymmetricAndZero(t *testing.T) {
	pairs := [][2]domain.Coordinates{
		{depot, paris},
		{paris, sydney},
		{{Lat: 0, Lon: 179.9}, {Lat: 0, Lon: -179.9}},
		{{Lat: 90, Lon: 0}, {Lat: -90, Lon: 0}},
	}
	for _, p := range pairs {
		ab := DistanceKm(p[0], p[1])
		ba := DistanceKm(p[1], p[0])
		assert.InDelta(t, ab, ba, 1e-9, "symmetry for %v", p)
		assert.GreaterOrEqual(t, ab, 0.0)
		assert.Equal(t, 0.0, DistanceKm(p[0], p[0]))
	}
}

func TestDistanceKmAntipodal(t *testing.T) {
	got := DistanceKm(domain.Coordinates{Lat: 90}, domain.Coordinates{Lat: -90})
	assert.InDelta(t, 20015.09, got, 0.1)
}

func TestTravelMinutes(t *testing.T) {
	assert.Equal(t, 60, TravelMinutes(50, domain.ModeDriving))
	assert.Equal(t, 120, TravelMinutes(10, domain.ModeWalking))
	assert.Equal(t, 40, TravelMinutes(10, domain.ModeBicycling))
	assert.Equal(t, 24, TravelMinutes(10, domain.ModeTransit))
	assert.Equal(t, 12, TravelMinutes(10, domain.TransportMode("hovercraft")))
	assert.Equal(t, 0, TravelMinutes(0, domain.ModeDriving))
}
