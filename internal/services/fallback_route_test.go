package services

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mission-route-service/internal/domain"
)

func TestBuildFallbackRoute_SingleStopRoundTrip(t *testing.T) {
	stops := []domain.MissionStop{stop("m1", "Paris job", coords(paris))}

	r := BuildFallbackRoute(stops, domain.DefaultDepot, domain.ModeDriving)

	require.Len(t, r.Legs, 2)
	assert.Equal(t, "Main depot", r.Legs[0].From)
	assert.Equal(t, "Paris job", r.Legs[0].To)
	assert.Equal(t, "Paris job", r.Legs[1].From)
	assert.Equal(t, "Main depot", r.Legs[1].To)

	assert.InDelta(t, 48.866, r.Legs[0].DistanceKm, 0.01)
	assert.InDelta(t, r.Legs[0].DistanceKm, r.Legs[1].DistanceKm, 1e-9)
	assert.Equal(t, 59, r.Legs[0].TimeMinutes)

	assert.InDelta(t, 97.731, r.TotalDistanceKm, 0.02)
	assert.Equal(t, 118, r.TotalTimeMinutes)
	assert.InDelta(t, 14.66, r.FuelCost, 0.01)
	assert.Equal(t, []string{"Paris job"}, r.StopOrder)
	assert.Equal(t, domain.SourceFallback, r.Source)
	assert.Equal(t, domain.ModeDriving, r.Mode)
}

func TestBuildFallbackRoute_TotalsAreLegSums(t *testing.T) {
	stops := []domain.MissionStop{
		stop("m1", "Paris job", coords(paris)),
		stop("m2", "Versailles job", coords(versailles)),
	}

	r := BuildFallbackRoute(stops, domain.DefaultDepot, domain.ModeBicycling)

	require.Len(t, r.Legs, len(stops)+1)
	var dist float64
	var minutes int
	for _, l := range r.Legs {
		dist += l.DistanceKm
		minutes += l.TimeMinutes
		assert.Equal(t, domain.ModeBicycling, l.Mode)
	}
	assert.InDelta(t, dist, r.TotalDistanceKm, 1e-9)
	assert.Equal(t, minutes, r.TotalTimeMinutes)
	assert.Equal(t, 0.0, r.FuelCost)
}

func TestBuildFallbackRoute_KeepsInputOrder(t *testing.T) {
	// Versailles is closer to the depot but is given last.
	stops := []domain.MissionStop{
		stop("m1", "Paris job", coords(paris)),
		stop("m2", "Versailles job", coords(versailles)),
	}

	r := BuildFallbackRoute(stops, domain.DefaultDepot, domain.ModeDriving)

	if diff := cmp.Diff([]string{"Paris job", "Versailles job"}, r.StopOrder); diff != "" {
		t.Fatalf("stop order mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "Versailles job", r.Legs[1].To)
	assert.InDelta(t, 17.91, r.Legs[1].DistanceKm, 0.01)
}

func TestBuildFallbackRoute_NoStops(t *testing.T) {
	for _, stops := range [][]domain.MissionStop{
		nil,
		{},
		{stop("m1", "No coords", nil)},
	} {
		r := BuildFallbackRoute(stops, domain.DefaultDepot, domain.ModeWalking)

		assert.Equal(t, 0.0, r.TotalDistanceKm)
		assert.Equal(t, 0, r.TotalTimeMinutes)
		assert.Equal(t, 0.0, r.FuelCost)
		assert.NotNil(t, r.Legs)
		assert.Empty(t, r.Legs)
		assert.NotNil(t, r.StopOrder)
		assert.Empty(t, r.StopOrder)
		assert.Equal(t, domain.SourceFallback, r.Source)
		assert.Equal(t, domain.ModeWalking, r.Mode)
	}
}

func TestBuildFallbackRoute_SkipsUnroutable(t *testing.T) {
	stops := []domain.MissionStop{
		stop("m1", "No coords", nil),
		stop("m2", "Paris job", coords(paris)),
	}

	r := BuildFallbackRoute(stops, domain.DefaultDepot, domain.ModeDriving)

	assert.Len(t, r.Legs, 2)
	assert.Equal(t, []string{"Paris job"}, r.StopOrder)
}

func TestBuildFallbackRoute_FuelOnlyForMotorizedModes(t *testing.T) {
	stops := []domain.MissionStop{stop("m1", "Paris job", coords(paris))}

	cases := []struct {
		mode     domain.TransportMode
		wantFuel bool
	}{
		{domain.ModeDriving, true},
		{domain.ModeTransit, false},
		{domain.ModeWalking, false},
		{domain.ModeBicycling, false},
	}
	for _, tc := range cases {
		t.Run(string(tc.mode), func(t *testing.T) {
			r := BuildFallbackRoute(stops, domain.DefaultDepot, tc.mode)
			if tc.wantFuel {
				assert.InDelta(t, r.TotalDistanceKm*domain.FuelCostPerKm, r.FuelCost, 1e-9)
			} else {
				assert.Equal(t, 0.0, r.FuelCost)
			}
		})
	}
}

func TestBuildLocalRoute_NearestNeighbor(t *testing.T) {
	stops := []domain.MissionStop{
		stop("m1", "Paris job", coords(paris)),
		stop("m2", "Versailles job", coords(versailles)),
	}

	in := BuildLocalRoute(stops, domain.DefaultDepot, domain.ModeDriving, SequenceInput)
	nn := BuildLocalRoute(stops, domain.DefaultDepot, domain.ModeDriving, SequenceNearestNeighbor)

	assert.Equal(t, []string{"Paris job", "Versailles job"}, in.StopOrder)
	assert.Equal(t, []string{"Versailles job", "Paris job"}, nn.StopOrder)
	assert.Less(t, nn.TotalDistanceKm, in.TotalDistanceKm+1e-9)
}

func TestParseSequencing(t *testing.T) {
	s, err := ParseSequencing("")
	require.NoError(t, err)
	assert.Equal(t, SequenceInput, s)

	s, err = ParseSequencing(" Nearest_Neighbor ")
	require.NoError(t, err)
	assert.Equal(t, SequenceNearestNeighbor, s)

	_, err = ParseSequencing("2opt")
	assert.Error(t, err)
}
