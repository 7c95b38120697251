package dto

import (
	"time"

	"mission-route-service/internal/domain"
)

type MissionResponse struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Location      string    `json:"location"`
	ScheduledAt   time.Time `json:"scheduled_at"`
	ForfeitAmount float64   `json:"forfeit_amount"`
	Latitude      *float64  `json:"latitude"`
	Longitude     *float64  `json:"longitude"`
	Status        string    `json:"status"`
	TechnicianID  string    `json:"technician_id,omitempty"`
}

type ListMissionsResponse struct {
	Missions []MissionResponse `json:"missions"`
}

type AssignRequest struct {
	TechnicianID string `json:"technician_id"`
}

func NewMissionResponse(m *domain.Mission) MissionResponse {
	res := MissionResponse{
		ID:            m.ID,
		Title:         m.Title,
		Location:      m.Location,
		ScheduledAt:   m.ScheduledAt,
		ForfeitAmount: m.ForfeitAmount,
		Status:        string(m.Status),
		TechnicianID:  m.TechnicianID,
	}
	if m.Coordinates != nil {
		lat, lon := m.Coordinates.Lat, m.Coordinates.Lon
		res.Latitude = &lat
		res.Longitude = &lon
	}
	return res
}
