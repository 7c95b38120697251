package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mission-route-service/internal/domain"
	"mission-route-service/internal/presentation"
)

func runRoutectl(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("OPTIMIZER_PROVIDER", "")
	t.Setenv("ROUTE_SEQUENCING", "")

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func decodeView(t *testing.T, out string) presentation.RouteView {
	t.Helper()
	var v presentation.RouteView
	require.NoError(t, json.Unmarshal([]byte(out), &v))
	return v
}

func TestPlan_LocalText(t *testing.T) {
	out, err := runRoutectl(t, "plan", "--stops", "testdata/stops.json")
	require.NoError(t, err)
	assert.Contains(t, out, "Paris job")
	assert.Contains(t, out, "Missing coordinates:")
	assert.Contains(t, out, "Poissy job")
}

func TestPlan_LocalJSONNearestNeighbor(t *testing.T) {
	out, err := runRoutectl(t, "plan", "--stops", "testdata/stops.json", "--json", "--sequencing", "nearest_neighbor")
	require.NoError(t, err)

	v := decodeView(t, out)
	assert.Equal(t, domain.SourceFallback, v.Source)
	require.Len(t, v.Stops, 2)
	assert.Equal(t, "Versailles job", v.Stops[0].Title)
	assert.Len(t, v.Legs, 3)
}

func TestPlan_ReplayedReply(t *testing.T) {
	out, err := runRoutectl(t, "plan", "--stops", "testdata/stops.json", "--reply", "testdata/reply.txt", "--json")
	require.NoError(t, err)

	v := decodeView(t, out)
	assert.Equal(t, domain.SourceExternal, v.Source)
	assert.Equal(t, 110, v.TotalTimeMinutes)
	require.Len(t, v.Stops, 2)
	assert.Equal(t, "Versailles job", v.Stops[0].Title)
}

func TestPlan_Errors(t *testing.T) {
	_, err := runRoutectl(t, "plan")
	assert.Error(t, err, "--stops is required")

	_, err = runRoutectl(t, "plan", "--stops", "testdata/stops.json", "--mode", "teleport")
	assert.Error(t, err)

	_, err = runRoutectl(t, "plan", "--stops", "testdata/stops.json", "--external", "--reply", "testdata/reply.txt")
	assert.Error(t, err)

	_, err = runRoutectl(t, "plan", "--stops", "testdata/stops.json", "--external")
	assert.Error(t, err, "no provider configured")
}
