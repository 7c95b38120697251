package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrMissionNotFound = errors.New("mission not found")
	ErrMissionClosed   = errors.New("mission is closed")
)

type MissionStatus string

const (
	MissionPending    MissionStatus = "pending"
	MissionAccepted   MissionStatus = "accepted"
	MissionInProgress MissionStatus = "in_progress"
	MissionCompleted  MissionStatus = "completed"
	MissionCancelled  MissionStatus = "cancelled"
)

// Represents a field-service intervention as stored by the dashboard.
// Coordinates are optional; a mission without them cannot be routed.
type Mission struct {
	ID            string
	Title         string
	Location      string
	ScheduledAt   time.Time
	ForfeitAmount float64
	Coordinates   *Coordinates
	Status        MissionStatus
	TechnicianID  string
}

// AssignTo hands the mission to a technician and marks it accepted.
func (m *Mission) AssignTo(technicianID string) error {
	if technicianID == "" {
		return errors.New("assign mission: technician id must be non-empty")
	}
	if m.Status == MissionCompleted || m.Status == MissionCancelled {
		return fmt.Errorf("assign mission %s: %w (status=%s)", m.ID, ErrMissionClosed, m.Status)
	}
	m.TechnicianID = technicianID
	m.Status = MissionAccepted
	return nil
}

// Stop projects the routing view of the mission.
func (m *Mission) Stop() MissionStop {
	return MissionStop{
		ID:            m.ID,
		Title:         m.Title,
		Coordinates:   m.Coordinates,
		ForfeitAmount: m.ForfeitAmount,
	}
}

// A place to visit on a route. A nil Coordinates marks the stop unroutable.
type MissionStop struct {
	ID            string
	Title         string
	Coordinates   *Coordinates
	ForfeitAmount float64
}

// Routable reports whether the stop carries usable coordinates.
func (s MissionStop) Routable() bool { return s.Coordinates != nil }

// SplitRoutable partitions stops by coordinate presence, keeping input order on both sides.
func SplitRoutable(stops []MissionStop) (routable, unroutable []MissionStop) {
	routable = make([]MissionStop, 0, len(stops))
	unroutable = make([]MissionStop, 0)
	for _, s := range stops {
		if s.Routable() {
			routable = append(routable, s)
		} else {
			unroutable = append(unroutable, s)
		}
	}
	return routable, unroutable
}
