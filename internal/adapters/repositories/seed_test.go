package repositories

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mission-route-service/internal/domain"
)

func TestParseSeed(t *testing.T) {
	data := []byte(`[
		{"id": "m1", "title": " Boiler ", "scheduled_at": "2026-10-20T08:30:00Z", "forfeit_amount": 120,
		 "latitude": 48.8566, "longitude": 2.3522, "status": "accepted", "technician_id": "t1"},
		{"title": "No coords", "scheduled_at": "2026-10-21", "latitude": 48.1}
	]`)

	missions, err := ParseSeed(data)
	require.NoError(t, err)
	require.Len(t, missions, 2)

	first := missions[0]
	assert.Equal(t, "m1", first.ID)
	assert.Equal(t, "Boiler", first.Title)
	assert.Equal(t, domain.MissionAccepted, first.Status)
	require.NotNil(t, first.Coordinates)
	assert.Equal(t, 2.3522, first.Coordinates.Lon)

	second := missions[1]
	_, err = uuid.Parse(second.ID)
	assert.NoError(t, err, "missing ids are generated")
	assert.Nil(t, second.Coordinates, "a lone latitude is not a location")
	assert.Equal(t, domain.MissionPending, second.Status)
	assert.Equal(t, 21, second.ScheduledAt.Day())
}

func TestParseSeed_Rejects(t *testing.T) {
	cases := map[string]string{
		"not json":       `{`,
		"empty title":    `[{"title": " ", "scheduled_at": "2026-10-20"}]`,
		"bad date":       `[{"title": "x", "scheduled_at": "tomorrow"}]`,
		"missing date":   `[{"title": "x"}]`,
		"bad status":     `[{"title": "x", "scheduled_at": "2026-10-20", "status": "lost"}]`,
		"bad latitude":   `[{"title": "x", "scheduled_at": "2026-10-20", "latitude": 91, "longitude": 0}]`,
		"negative price": `[{"title": "x", "scheduled_at": "2026-10-20", "forfeit_amount": -1}]`,
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseSeed([]byte(in))
			assert.Error(t, err)
		})
	}
}

func TestLoadSeedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missions.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"id":"m1","title":"x","scheduled_at":"2026-10-20"}]`), 0o600))

	missions, err := LoadSeedFile(path)
	require.NoError(t, err)
	assert.Len(t, missions, 1)

	_, err = LoadSeedFile(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestLoadSeedFile_ShippedSeed(t *testing.T) {
	missions, err := LoadSeedFile(filepath.Join("..", "..", "..", "data", "seeds", "missions.json"))
	require.NoError(t, err)
	assert.Len(t, missions, 4)
}
