package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"mission-route-service/internal/domain"
	"mission-route-service/internal/platform/obs"
	"mission-route-service/internal/ports"
	"mission-route-service/internal/presentation"
)

// Optimizer is the routing entry point used by the planner.
type Optimizer interface {
	Optimize(ctx context.Context, stops []domain.MissionStop, depot domain.Depot, mode domain.TransportMode) domain.OptimizedRoute
}

// RoutePlan is the result handed back to the dashboard: the raw route and its display model.
type RoutePlan struct {
	TechnicianID string
	Route        domain.OptimizedRoute
	View         presentation.RouteView
}

// RoutePlanner coordinates repository access, route optimization and
// technician notifications. Collaborators are injected; none are globals.
type RoutePlanner struct {
	repo      ports.MissionRepository
	optimizer Optimizer
	notifier  ports.Notifier
	depot     domain.Depot
	log       *zap.Logger
}

func NewRoutePlanner(
	repo ports.MissionRepository,
	optimizer Optimizer,
	notifier ports.Notifier,
	depot domain.Depot,
	log *zap.Logger,
) *RoutePlanner {
	if log == nil {
		log = zap.NewNop()
	}
	return &RoutePlanner{
		repo:      repo,
		optimizer: optimizer,
		notifier:  notifier,
		depot:     depot,
		log:       log,
	}
}

// PlanTechnicianRoute computes the itinerary over a technician's accepted missions.
//
// Missions without coordinates are reported as unroutable rather than failing
// the plan. Only repository errors are returned; the optimizer always yields
// a route and notification failures are logged.
func (p *RoutePlanner) PlanTechnicianRoute(
	ctx context.Context,
	technicianID string,
	mode domain.TransportMode,
) (_ *RoutePlan, err error) {
	defer obs.Time(ctx, p.log, "planner.PlanTechnicianRoute")(&err)

	technicianID = strings.TrimSpace(technicianID)
	if technicianID == "" {
		return nil, errors.New("plan technician route: technician id must be non-empty")
	}

	missions, err := p.repo.ListAcceptedMissions(ctx, technicianID)
	if err != nil {
		return nil, fmt.Errorf("plan technician route: list accepted missions: %w", err)
	}

	stops := make([]domain.MissionStop, 0, len(missions))
	for _, m := range missions {
		stops = append(stops, m.Stop())
	}

	route := p.optimizer.Optimize(ctx, stops, p.depot, mode)
	view := presentation.Present(route, missions, p.depot)

	if p.notifier != nil {
		evt := ports.RouteReady{
			TechnicianID:     technicianID,
			Mode:             string(mode),
			Source:           route.Source,
			TotalDistanceKm:  route.TotalDistanceKm,
			TotalTimeMinutes: route.TotalTimeMinutes,
			StopOrder:        route.StopOrder,
		}
		if nerr := p.notifier.NotifyRouteReady(ctx, evt); nerr != nil {
			p.log.Warn("route ready notification failed",
				zap.String("req_id", obs.RequestID(ctx)),
				zap.String("technician_id", technicianID),
				zap.Error(nerr),
			)
		}
	}

	return &RoutePlan{
		TechnicianID: technicianID,
		Route:        route,
		View:         view,
	}, nil
}

// ListAcceptedMissions exposes the technician's accepted missions unchanged.
func (p *RoutePlanner) ListAcceptedMissions(ctx context.Context, technicianID string) ([]*domain.Mission, error) {
	technicianID = strings.TrimSpace(technicianID)
	if technicianID == "" {
		return nil, errors.New("list accepted missions: technician id must be non-empty")
	}

	missions, err := p.repo.ListAcceptedMissions(ctx, technicianID)
	if err != nil {
		return nil, fmt.Errorf("list accepted missions: %w", err)
	}
	return missions, nil
}

// GetMission returns one mission by id.
func (p *RoutePlanner) GetMission(ctx context.Context, missionID string) (*domain.Mission, error) {
	missionID = strings.TrimSpace(missionID)
	if missionID == "" {
		return nil, errors.New("get mission: mission id must be non-empty")
	}
	return p.repo.GetMission(ctx, missionID)
}
