package ports

import (
	"context"

	"mission-route-service/internal/domain"
)

// Port: a boundary for reading and assigning Mission records.
type MissionRepository interface {
	// Retrieve the missions a technician has accepted, in visiting order as stored.
	ListAcceptedMissions(ctx context.Context, technicianID string) ([]*domain.Mission, error)
	// Retrieve one mission; domain.ErrMissionNotFound when absent.
	GetMission(ctx context.Context, missionID string) (*domain.Mission, error)
	// Persist the assignment of a mission to a technician.
	AssignMission(ctx context.Context, missionID string, technicianID string) (*domain.Mission, error)
}
