package notifier

import (
	"time"

	"mission-route-service/internal/domain"
	"mission-route-service/internal/ports"
)

const (
	EventRouteReady = "route_ready"
	EventAssignment = "mission_assigned"
)

// Event is the envelope published to a technician channel.
type Event struct {
	Type         string    `json:"type"`
	TechnicianID string    `json:"technician_id"`
	SentAt       time.Time `json:"sent_at"`
	Data         any       `json:"data"`
}

// AssignmentData describes a newly assigned mission.
type AssignmentData struct {
	MissionID   string    `json:"mission_id"`
	Title       string    `json:"title"`
	Location    string    `json:"location"`
	ScheduledAt time.Time `json:"scheduled_at"`
}

// ChannelName is the pub/sub channel of one technician.
func ChannelName(technicianID string) string { return "technician:" + technicianID }

func routeReadyEvent(evt ports.RouteReady, now time.Time) Event {
	return Event{Type: EventRouteReady, TechnicianID: evt.TechnicianID, SentAt: now, Data: evt}
}

func assignmentEvent(m *domain.Mission, now time.Time) Event {
	return Event{
		Type:         EventAssignment,
		TechnicianID: m.TechnicianID,
		SentAt:       now,
		Data: AssignmentData{
			MissionID:   m.ID,
			Title:       m.Title,
			Location:    m.Location,
			ScheduledAt: m.ScheduledAt,
		},
	}
}
