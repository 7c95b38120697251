package domain

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownMode = errors.New("unknown transport mode")

type TransportMode string

const (
	ModeDriving   TransportMode = "driving"
	ModeWalking   TransportMode = "walking"
	ModeBicycling TransportMode = "bicycling"
	ModeTransit   TransportMode = "transit"
)

// FuelCostPerKm is the flat euro rate applied to motorized distance.
const FuelCostPerKm = 0.15

// DefaultSpeedKmh applies to any mode without an entry in the speed table.
const DefaultSpeedKmh = 50.0

var averageSpeedKmh = map[TransportMode]float64{
	ModeDriving:   50,
	ModeWalking:   5,
	ModeBicycling: 15,
	ModeTransit:   25,
}

// ParseTransportMode accepts the four known modes case-insensitively.
// An empty value means driving.
func ParseTransportMode(s string) (TransportMode, error) {
	m := TransportMode(strings.ToLower(strings.TrimSpace(s)))
	if m == "" {
		return ModeDriving, nil
	}
	if _, ok := averageSpeedKmh[m]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
	return m, nil
}

// AverageSpeedKmh returns the planning speed for the mode.
func (m TransportMode) AverageSpeedKmh() float64 {
	if v, ok := averageSpeedKmh[m]; ok {
		return v
	}
	return DefaultSpeedKmh
}

// Motorized reports whether the mode burns fuel.
func (m TransportMode) Motorized() bool { return m == ModeDriving }

// LegCost returns the fuel cost for distanceKm, zero for non-motorized modes.
func (m TransportMode) LegCost(distanceKm float64) float64 {
	if !m.Motorized() {
		return 0
	}
	return distanceKm * FuelCostPerKm
}
