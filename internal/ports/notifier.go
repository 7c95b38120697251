package ports

import (
	"context"

	"mission-route-service/internal/domain"
)

// RouteReady is the payload sent once a technician route has been computed.
type RouteReady struct {
	TechnicianID     string             `json:"technician_id"`
	Mode             string             `json:"mode"`
	Source           domain.RouteSource `json:"source"`
	TotalDistanceKm  float64            `json:"total_distance_km"`
	TotalTimeMinutes int                `json:"total_time_minutes"`
	StopOrder        []string           `json:"stop_order"`
}

// Contract for pushing routing and assignment events to technicians.
type Notifier interface {
	NotifyRouteReady(ctx context.Context, evt RouteReady) error
	NotifyAssignment(ctx context.Context, mission *domain.Mission) error
}
