package services

import (
	"fmt"
	"strings"

	"mission-route-service/internal/domain"
	"mission-route-service/internal/geo"
)

// Sequencing selects how the local builder orders stops before walking them.
type Sequencing string

const (
	// SequenceInput visits stops in the order they were given.
	SequenceInput Sequencing = "input"
	// SequenceNearestNeighbor greedily visits the closest remaining stop first.
	SequenceNearestNeighbor Sequencing = "nearest_neighbor"
)

func ParseSequencing(s string) (Sequencing, error) {
	switch v := Sequencing(strings.ToLower(strings.TrimSpace(s))); v {
	case "":
		return SequenceInput, nil
	case SequenceInput, SequenceNearestNeighbor:
		return v, nil
	default:
		return "", fmt.Errorf("parse sequencing: unknown value %q", s)
	}
}

// BuildFallbackRoute walks the routable stops in input order, starting and
// ending at the depot. Stops without coordinates are skipped. No reordering
// happens here: StopOrder mirrors the input titles.
//
// It cannot fail. With nothing to visit it returns the empty depot-only route.
func BuildFallbackRoute(
	stops []domain.MissionStop,
	depot domain.Depot,
	mode domain.TransportMode,
) domain.OptimizedRoute {
	routable, _ := domain.SplitRoutable(stops)
	if len(routable) == 0 {
		return domain.EmptyRoute(mode, domain.SourceFallback)
	}

	legs := make([]domain.RouteLeg, 0, len(routable)+1)
	order := make([]string, 0, len(routable))

	currentLabel := depot.Name
	current := depot.Coordinates

	for _, s := range routable {
		legs = append(legs, newLeg(currentLabel, s.Title, current, *s.Coordinates, mode))
		order = append(order, s.Title)

		currentLabel = s.Title
		current = *s.Coordinates
	}

	// Close the round trip.
	legs = append(legs, newLeg(currentLabel, depot.Name, current, depot.Coordinates, mode))

	totalDistance := 0.0
	totalTime := 0
	for _, l := range legs {
		totalDistance += l.DistanceKm
		totalTime += l.TimeMinutes
	}

	return domain.OptimizedRoute{
		TotalDistanceKm:  totalDistance,
		TotalTimeMinutes: totalTime,
		FuelCost:         mode.LegCost(totalDistance),
		Legs:             legs,
		StopOrder:        order,
		Mode:             mode,
		Source:           domain.SourceFallback,
	}
}

// BuildLocalRoute applies the sequencing strategy and then the fallback builder.
func BuildLocalRoute(
	stops []domain.MissionStop,
	depot domain.Depot,
	mode domain.TransportMode,
	sequencing Sequencing,
) domain.OptimizedRoute {
	if sequencing == SequenceNearestNeighbor {
		stops = NearestNeighborOrder(stops, depot)
	}
	return BuildFallbackRoute(stops, depot, mode)
}

func newLeg(from, to string, a, b domain.Coordinates, mode domain.TransportMode) domain.RouteLeg {
	d := geo.DistanceKm(a, b)
	return domain.RouteLeg{
		From:        from,
		To:          to,
		DistanceKm:  d,
		TimeMinutes: geo.TravelMinutes(d, mode),
		Mode:        mode,
	}
}
