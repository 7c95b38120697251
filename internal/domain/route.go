package domain

// RouteSource tells which path produced a route.
type RouteSource string

const (
	SourceExternal RouteSource = "external"
	SourceFallback RouteSource = "fallback"
)

// Represents one directed segment between two consecutive points (depot or stop).
type RouteLeg struct {
	From        string
	To          string
	DistanceKm  float64
	TimeMinutes int
	Mode        TransportMode
}

// Represents a depot-anchored round trip over a technician's missions.
// When stops are present, Legs holds one more entry than StopOrder
// (depot -> stop1 -> ... -> stopN -> depot). It is computed per request
// and never persisted.
type OptimizedRoute struct {
	TotalDistanceKm  float64
	TotalTimeMinutes int
	FuelCost         float64
	Legs             []RouteLeg
	StopOrder        []string
	Mode             TransportMode
	Source           RouteSource
}

// EmptyRoute is the depot-only route produced when nothing can be visited.
func EmptyRoute(mode TransportMode, source RouteSource) OptimizedRoute {
	return OptimizedRoute{
		Legs:      []RouteLeg{},
		StopOrder: []string{},
		Mode:      mode,
		Source:    source,
	}
}
