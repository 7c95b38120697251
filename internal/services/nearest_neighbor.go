package services

import (
	"math"

	"mission-route-service/internal/domain"
	"mission-route-service/internal/geo"
)

// Order routable stops with a greedy nearest-neighbor pass from the depot.
//
// At each step the closest remaining stop by great-circle distance is chosen.
// It does not attempt global optimization (2-opt, VRP solvers).
// Unroutable stops are kept, in input order, after the sequenced ones.
func NearestNeighborOrder(stops []domain.MissionStop, depot domain.Depot) []domain.MissionStop {
	routable, unroutable := domain.SplitRoutable(stops)

	remaining := make(map[int]struct{}, len(routable))
	for i := range routable {
		remaining[i] = struct{}{}
	}

	current := depot.Coordinates
	out := make([]domain.MissionStop, 0, len(stops))

	for len(remaining) > 0 {
		best := -1
		minDistance := math.MaxFloat64

		for i := range routable {
			if _, ok := remaining[i]; !ok {
				continue
			}
			d := geo.DistanceKm(current, *routable[i].Coordinates)
			// Tie-breaker keeps the ordering deterministic: title, then input position.
			if best < 0 || d < minDistance || (d == minDistance && tieBefore(routable[i], i, routable[best], best)) {
				minDistance = d
				best = i
			}
		}

		out = append(out, routable[best])
		current = *routable[best].Coordinates
		delete(remaining, best)
	}

	return append(out, unroutable...)
}

func tieBefore(a domain.MissionStop, ai int, b domain.MissionStop, bi int) bool {
	if a.Title != b.Title {
		return a.Title < b.Title
	}
	return ai < bi
}
