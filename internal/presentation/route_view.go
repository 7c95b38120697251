// Package presentation derives display fields from a computed route.
// Everything here is a pure function of its inputs.
package presentation

import (
	"mission-route-service/internal/domain"
	"mission-route-service/internal/geo"
)

const dateLayout = "2006-01-02"

type RouteView struct {
	Source           domain.RouteSource `json:"source"`
	Mode             string             `json:"mode"`
	TotalDistanceKm  float64            `json:"total_distance_km"`
	TotalDistance    string             `json:"total_distance"`
	TotalTimeMinutes int                `json:"total_time_minutes"`
	TotalTime        string             `json:"total_time"`
	FuelCost         float64            `json:"fuel_cost"`
	Cost             string             `json:"cost"`
	Legs             []LegView          `json:"legs"`
	Stops            []StopView         `json:"stops"`
	Unroutable       []UnroutableView   `json:"unroutable"`
}

type LegView struct {
	From        string  `json:"from"`
	To          string  `json:"to"`
	DistanceKm  float64 `json:"distance_km"`
	Distance    string  `json:"distance"`
	TimeMinutes int     `json:"time_minutes"`
	Time        string  `json:"time"`
	Cost        string  `json:"cost"`
}

type StopView struct {
	Position               int     `json:"position"`
	MissionID              string  `json:"mission_id"`
	Title                  string  `json:"title"`
	Location               string  `json:"location"`
	Date                   string  `json:"date"`
	ForfeitAmount          float64 `json:"forfeit_amount"`
	Forfeit                string  `json:"forfeit"`
	DistanceFromPreviousKm float64 `json:"distance_from_previous_km"`
	DistanceFromPrevious   string  `json:"distance_from_previous"`
}

type UnroutableView struct {
	MissionID string `json:"mission_id"`
	Title     string `json:"title"`
	Location  string `json:"location"`
}

// Present builds the display model for route.
//
// Stops follow route.StopOrder and are matched to missions by title; titles
// with no matching mission are skipped. The distance from the previous point
// is recomputed from coordinates, independently of the route legs.
func Present(route domain.OptimizedRoute, missions []*domain.Mission, depot domain.Depot) RouteView {
	v := RouteView{
		Source:           route.Source,
		Mode:             string(route.Mode),
		TotalDistanceKm:  route.TotalDistanceKm,
		TotalDistance:    FormatDistance(route.TotalDistanceKm),
		TotalTimeMinutes: route.TotalTimeMinutes,
		TotalTime:        FormatDuration(route.TotalTimeMinutes),
		FuelCost:         route.FuelCost,
		Cost:             FormatCost(route.FuelCost),
		Legs:             make([]LegView, 0, len(route.Legs)),
		Stops:            make([]StopView, 0, len(route.StopOrder)),
		Unroutable:       make([]UnroutableView, 0),
	}

	for _, l := range route.Legs {
		v.Legs = append(v.Legs, LegView{
			From:        l.From,
			To:          l.To,
			DistanceKm:  l.DistanceKm,
			Distance:    FormatDistance(l.DistanceKm),
			TimeMinutes: l.TimeMinutes,
			Time:        FormatDuration(l.TimeMinutes),
			Cost:        FormatLegCost(route.Mode, l.DistanceKm),
		})
	}

	// Titles may repeat; each occurrence consumes the next mission with that title.
	byTitle := make(map[string][]*domain.Mission)
	for _, m := range missions {
		if m == nil {
			continue
		}
		if m.Coordinates == nil {
			v.Unroutable = append(v.Unroutable, UnroutableView{
				MissionID: m.ID,
				Title:     m.Title,
				Location:  m.Location,
			})
			continue
		}
		byTitle[m.Title] = append(byTitle[m.Title], m)
	}

	prev := depot.Coordinates
	for _, title := range route.StopOrder {
		queue := byTitle[title]
		if len(queue) == 0 {
			continue
		}
		m := queue[0]
		byTitle[title] = queue[1:]

		d := geo.DistanceKm(prev, *m.Coordinates)
		prev = *m.Coordinates

		sv := StopView{
			Position:               len(v.Stops) + 1,
			MissionID:              m.ID,
			Title:                  m.Title,
			Location:               m.Location,
			ForfeitAmount:          m.ForfeitAmount,
			Forfeit:                formatAmount(m.ForfeitAmount),
			DistanceFromPreviousKm: d,
			DistanceFromPrevious:   FormatDistance(d),
		}
		if !m.ScheduledAt.IsZero() {
			sv.Date = m.ScheduledAt.Format(dateLayout)
		}
		v.Stops = append(v.Stops, sv)
	}

	return v
}
