package repositories

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"mission-route-service/internal/domain"
)

// MissionSeed is one entry of a JSON seed file.
type MissionSeed struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Location      string   `json:"location"`
	ScheduledAt   string   `json:"scheduled_at"`
	ForfeitAmount float64  `json:"forfeit_amount"`
	Latitude      *float64 `json:"latitude"`
	Longitude     *float64 `json:"longitude"`
	Status        string   `json:"status"`
	TechnicianID  string   `json:"technician_id"`
}

// LoadSeedFile reads and validates a JSON array of missions.
func LoadSeedFile(path string) ([]*domain.Mission, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("seed missions: read %q: %w", path, err)
	}
	return ParseSeed(bytes)
}

// ParseSeed validates seed entries and converts them to missions.
// Entries without an id get a random one.
func ParseSeed(data []byte) ([]*domain.Mission, error) {
	var seeds []MissionSeed
	if err := json.Unmarshal(data, &seeds); err != nil {
		return nil, fmt.Errorf("seed missions: parse json: %w", err)
	}

	out := make([]*domain.Mission, 0, len(seeds))
	for i, s := range seeds {
		m, err := s.toMission()
		if err != nil {
			return nil, fmt.Errorf("seed missions: item at index %d: %w", i+1, err)
		}
		out = append(out, m)
	}
	return out, nil
}

func (s MissionSeed) toMission() (*domain.Mission, error) {
	title := strings.TrimSpace(s.Title)
	if title == "" {
		return nil, fmt.Errorf("title cannot be empty")
	}
	if s.ForfeitAmount < 0 {
		return nil, fmt.Errorf("forfeit_amount must be non-negative, got %v", s.ForfeitAmount)
	}

	id := strings.TrimSpace(s.ID)
	if id == "" {
		id = uuid.NewString()
	}

	scheduled, err := parseSchedule(s.ScheduledAt)
	if err != nil {
		return nil, err
	}

	coords := domain.NewCoordinates(s.Latitude, s.Longitude)
	if coords != nil {
		if err := coords.Validate(); err != nil {
			return nil, err
		}
	}

	status := domain.MissionStatus(strings.TrimSpace(s.Status))
	if status == "" {
		status = domain.MissionPending
	}
	switch status {
	case domain.MissionPending, domain.MissionAccepted, domain.MissionInProgress,
		domain.MissionCompleted, domain.MissionCancelled:
	default:
		return nil, fmt.Errorf("unknown status %q", s.Status)
	}

	return &domain.Mission{
		ID:            id,
		Title:         title,
		Location:      strings.TrimSpace(s.Location),
		ScheduledAt:   scheduled,
		ForfeitAmount: s.ForfeitAmount,
		Coordinates:   coords,
		Status:        status,
		TechnicianID:  strings.TrimSpace(s.TechnicianID),
	}, nil
}

// Accepts RFC 3339 timestamps or plain dates.
func parseSchedule(v string) (time.Time, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return time.Time{}, fmt.Errorf("scheduled_at cannot be empty")
	}
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t, nil
	}
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return time.Time{}, fmt.Errorf("scheduled_at %q: want RFC 3339 or YYYY-MM-DD", v)
	}
	return t, nil
}
