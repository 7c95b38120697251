package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"mission-route-service/internal/domain"
	"mission-route-service/internal/platform/obs"
)

// AssignMission persists the assignment of a mission to a technician and
// notifies them. The notification is best-effort.
func (p *RoutePlanner) AssignMission(
	ctx context.Context,
	missionID string,
	technicianID string,
) (_ *domain.Mission, err error) {
	defer obs.Time(ctx, p.log, "planner.AssignMission")(&err)

	missionID = strings.TrimSpace(missionID)
	technicianID = strings.TrimSpace(technicianID)
	if missionID == "" || technicianID == "" {
		return nil, errors.New("assign mission: mission id and technician id must be non-empty")
	}

	m, err := p.repo.AssignMission(ctx, missionID, technicianID)
	if err != nil {
		return nil, fmt.Errorf("assign mission %s: %w", missionID, err)
	}

	if p.notifier != nil {
		if nerr := p.notifier.NotifyAssignment(ctx, m); nerr != nil {
			p.log.Warn("assignment notification failed",
				zap.String("req_id", obs.RequestID(ctx)),
				zap.String("mission_id", m.ID),
				zap.Error(nerr),
			)
		}
	}

	return m, nil
}
