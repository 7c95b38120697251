package services

import (
	"context"
	"sync"

	"mission-route-service/internal/domain"
)

var (
	paris      = domain.Coordinates{Lat: 48.8566, Lon: 2.3522}
	versailles = domain.Coordinates{Lat: 48.8049, Lon: 2.1204}
)

func stop(id, title string, c *domain.Coordinates) domain.MissionStop {
	return domain.MissionStop{ID: id, Title: title, Coordinates: c}
}

func coords(c domain.Coordinates) *domain.Coordinates { return &c }

// fakeGenerator records prompts and replays a canned answer.
type fakeGenerator struct {
	mu      sync.Mutex
	reply   string
	err     error
	prompts []string
}

func (g *fakeGenerator) Generate(_ context.Context, prompt string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.prompts = append(g.prompts, prompt)
	return g.reply, g.err
}

func (g *fakeGenerator) calls() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.prompts)
}
