package services

import (
	"fmt"
	"strings"

	"mission-route-service/internal/domain"
)

// buildOptimizerPrompt describes the depot, the mode and the numbered stops,
// and pins down the JSON shape the reply must contain.
func buildOptimizerPrompt(stops []domain.MissionStop, depot domain.Depot, mode domain.TransportMode) string {
	var b strings.Builder

	b.WriteString("You plan daily routes for field-service technicians.\n")
	b.WriteString("Find the shortest round trip that leaves the depot, visits every mission exactly once and returns to the depot.\n\n")

	fmt.Fprintf(&b, "Depot: %s, %s (lat %.6f, lon %.6f)\n", depot.Name, depot.Address, depot.Coordinates.Lat, depot.Coordinates.Lon)
	fmt.Fprintf(&b, "Transport mode: %s\n\n", mode)

	b.WriteString("Missions:\n")
	for i, s := range stops {
		fmt.Fprintf(&b, "%d. %s (lat %.6f, lon %.6f)\n", i+1, s.Title, s.Coordinates.Lat, s.Coordinates.Lon)
	}

	b.WriteString("\nReply with one JSON object using exactly these keys:\n")
	b.WriteString(`{"totalDistance": <km>, "estimatedTime": <minutes>, "fuelCost": <euros>, `)
	b.WriteString(`"route": [{"from": "<label>", "to": "<label>", "distance": <km>, "time": <minutes>, "mode": "<mode>"}], `)
	b.WriteString(`"optimizedOrder": ["<mission title>", ...]}` + "\n")
	fmt.Fprintf(&b, "Use %q as the label of the depot. ", depot.Name)
	fmt.Fprintf(&b, "The route has one leg per mission plus the return leg. Fuel costs %.2f euros per km when driving and nothing otherwise.\n", domain.FuelCostPerKm)

	return b.String()
}
