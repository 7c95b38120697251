package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"

	"mission-route-service/internal/domain"
)

var (
	errNoJSONBlock  = errors.New("optimizer reply: no JSON object found")
	errReplyDecode  = errors.New("optimizer reply: invalid JSON")
	errReplyInvalid = errors.New("optimizer reply: failed validation")
)

// Greedy on purpose: spans from the first '{' to the last '}' of the reply.
var jsonBlockPattern = regexp.MustCompile(`(?s)\{.*\}`)

type optimizerReply struct {
	TotalDistance  *float64   `json:"totalDistance"`
	EstimatedTime  *float64   `json:"estimatedTime"`
	FuelCost       *float64   `json:"fuelCost"`
	Route          []replyLeg `json:"route"`
	OptimizedOrder []string   `json:"optimizedOrder"`
}

type replyLeg struct {
	From     string   `json:"from"`
	To       string   `json:"to"`
	Distance *float64 `json:"distance"`
	Time     *float64 `json:"time"`
	Mode     string   `json:"mode"`
}

// parseOptimizerReply extracts, decodes and validates a free-text optimizer reply
// against the stops that were sent. Any problem is reported as an error so the
// caller can fall back.
func parseOptimizerReply(
	text string,
	stops []domain.MissionStop,
	mode domain.TransportMode,
) (domain.OptimizedRoute, error) {
	block := jsonBlockPattern.FindString(text)
	if block == "" {
		return domain.OptimizedRoute{}, errNoJSONBlock
	}

	var reply optimizerReply
	if err := json.Unmarshal([]byte(block), &reply); err != nil {
		return domain.OptimizedRoute{}, fmt.Errorf("%w: %v", errReplyDecode, err)
	}

	if err := reply.validate(stops); err != nil {
		return domain.OptimizedRoute{}, fmt.Errorf("%w: %v", errReplyInvalid, err)
	}

	legs := make([]domain.RouteLeg, 0, len(reply.Route))
	for _, l := range reply.Route {
		legs = append(legs, domain.RouteLeg{
			From:        strings.TrimSpace(l.From),
			To:          strings.TrimSpace(l.To),
			DistanceKm:  *l.Distance,
			TimeMinutes: int(math.Round(*l.Time)),
			Mode:        mode,
		})
	}

	// Only driving burns fuel, whatever the reply claims.
	fuelCost := *reply.FuelCost
	if !mode.Motorized() {
		fuelCost = 0
	}

	order := make([]string, len(reply.OptimizedOrder))
	copy(order, reply.OptimizedOrder)

	return domain.OptimizedRoute{
		TotalDistanceKm:  *reply.TotalDistance,
		TotalTimeMinutes: int(math.Round(*reply.EstimatedTime)),
		FuelCost:         fuelCost,
		Legs:             legs,
		StopOrder:        order,
		Mode:             mode,
		Source:           domain.SourceExternal,
	}, nil
}

func (r *optimizerReply) validate(stops []domain.MissionStop) error {
	if err := requireAmount("totalDistance", r.TotalDistance); err != nil {
		return err
	}
	if err := requireMinutes("estimatedTime", r.EstimatedTime); err != nil {
		return err
	}
	if err := requireAmount("fuelCost", r.FuelCost); err != nil {
		return err
	}

	if len(r.Route) != len(stops)+1 {
		return fmt.Errorf("route has %d legs, want %d", len(r.Route), len(stops)+1)
	}
	for i, l := range r.Route {
		if strings.TrimSpace(l.From) == "" || strings.TrimSpace(l.To) == "" {
			return fmt.Errorf("route[%d]: from and to must be non-empty", i)
		}
		if err := requireAmount(fmt.Sprintf("route[%d].distance", i), l.Distance); err != nil {
			return err
		}
		if err := requireMinutes(fmt.Sprintf("route[%d].time", i), l.Time); err != nil {
			return err
		}
	}

	// optimizedOrder must be a permutation of the submitted titles.
	if len(r.OptimizedOrder) != len(stops) {
		return fmt.Errorf("optimizedOrder has %d entries, want %d", len(r.OptimizedOrder), len(stops))
	}
	want := make(map[string]int, len(stops))
	for _, s := range stops {
		want[s.Title]++
	}
	for _, title := range r.OptimizedOrder {
		if want[title] == 0 {
			return fmt.Errorf("optimizedOrder: unexpected or repeated title %q", title)
		}
		want[title]--
	}

	return nil
}

func requireAmount(name string, v *float64) error {
	if v == nil {
		return fmt.Errorf("%s is missing", name)
	}
	if math.IsNaN(*v) || math.IsInf(*v, 0) || *v < 0 {
		return fmt.Errorf("%s must be a finite non-negative number, got %v", name, *v)
	}
	return nil
}

// Upper bound for minute counts so they convert to int without overflow.
const maxReplyMinutes = math.MaxInt32

func requireMinutes(name string, v *float64) error {
	if err := requireAmount(name, v); err != nil {
		return err
	}
	if *v > maxReplyMinutes {
		return fmt.Errorf("%s must be at most %d minutes, got %v", name, maxReplyMinutes, *v)
	}
	return nil
}
