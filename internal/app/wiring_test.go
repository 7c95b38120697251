package app

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"mission-route-service/internal/adapters/generator"
	"mission-route-service/internal/adapters/notifier"
	"mission-route-service/internal/adapters/repositories"
	"mission-route-service/internal/config"
)

func TestNewGenerator(t *testing.T) {
	ctx := context.Background()
	cfg := config.Default()

	gen, err := NewGenerator(ctx, cfg, zap.NewNop())
	require.NoError(t, err)
	assert.Nil(t, gen)

	cfg.Optimizer.Provider = config.ProviderHTTP
	cfg.Optimizer.Endpoint = "http://localhost:9999/generate"
	gen, err = NewGenerator(ctx, cfg, zap.NewNop())
	require.NoError(t, err)
	assert.IsType(t, &generator.HTTPGenerator{}, gen)
}

func TestNewOptimizer(t *testing.T) {
	cfg := config.Default()
	cfg.RouteSequencer = "nearest_neighbor"

	o, err := NewOptimizer(cfg, nil, zap.NewNop())
	require.NoError(t, err)
	assert.NotNil(t, o)

	cfg.RouteSequencer = "random"
	_, err = NewOptimizer(cfg, nil, zap.NewNop())
	assert.Error(t, err)
}

func TestNewRepository_MemoryFromSeed(t *testing.T) {
	cfg := config.Default()
	cfg.SeedPath = filepath.Join("..", "..", "data", "seeds", "missions.json")

	repo, closeFn, err := NewRepository(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = closeFn() })
	assert.IsType(t, &repositories.MemoryMissionRepository{}, repo)

	missions, err := repo.ListAcceptedMissions(context.Background(), "tech-42")
	require.NoError(t, err)
	assert.Len(t, missions, 3)
}

func TestNewNotifier(t *testing.T) {
	ctx := context.Background()
	cfg := config.Default()

	n, closeFn, err := NewNotifier(ctx, cfg, zap.NewNop())
	require.NoError(t, err)
	assert.IsType(t, &notifier.LogNotifier{}, n)
	require.NoError(t, closeFn())

	mr := miniredis.RunT(t)
	cfg.RedisURL = "redis://" + mr.Addr()
	n, closeFn, err = NewNotifier(ctx, cfg, zap.NewNop())
	require.NoError(t, err)
	assert.IsType(t, &notifier.RedisNotifier{}, n)
	require.NoError(t, closeFn())
}

func TestOpenDB_RequiresURL(t *testing.T) {
	_, err := OpenDB(context.Background(), config.Default())
	assert.Error(t, err)
}
