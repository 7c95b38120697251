package repositories

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"mission-route-service/internal/domain"
)

// In-memory implementation of the MissionRepository port, used for local runs
// without a database and in tests. Missions are copied in and out.
type MemoryMissionRepository struct {
	mu       sync.RWMutex
	missions map[string]*domain.Mission
}

func NewMemoryMissionRepository(missions ...*domain.Mission) *MemoryMissionRepository {
	r := &MemoryMissionRepository{missions: make(map[string]*domain.Mission, len(missions))}
	for _, m := range missions {
		r.missions[m.ID] = cloneMission(m)
	}
	return r
}

func (r *MemoryMissionRepository) ListAcceptedMissions(
	_ context.Context,
	technicianID string,
) ([]*domain.Mission, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Mission, 0)
	for _, m := range r.missions {
		if m.TechnicianID == technicianID && m.Status == domain.MissionAccepted {
			out = append(out, cloneMission(m))
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].ScheduledAt.Equal(out[j].ScheduledAt) {
			return out[i].ScheduledAt.Before(out[j].ScheduledAt)
		}
		return out[i].ID < out[j].ID
	})

	return out, nil
}

func (r *MemoryMissionRepository) GetMission(_ context.Context, id string) (*domain.Mission, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.missions[id]
	if !ok {
		return nil, fmt.Errorf("get mission %s: %w", id, domain.ErrMissionNotFound)
	}
	return cloneMission(m), nil
}

func (r *MemoryMissionRepository) AssignMission(
	_ context.Context,
	missionID string,
	technicianID string,
) (*domain.Mission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.missions[missionID]
	if !ok {
		return nil, fmt.Errorf("assign mission %s: %w", missionID, domain.ErrMissionNotFound)
	}

	updated := cloneMission(m)
	if err := updated.AssignTo(technicianID); err != nil {
		return nil, err
	}
	r.missions[missionID] = updated

	return cloneMission(updated), nil
}

func cloneMission(m *domain.Mission) *domain.Mission {
	c := *m
	if m.Coordinates != nil {
		coords := *m.Coordinates
		c.Coordinates = &coords
	}
	return &c
}
