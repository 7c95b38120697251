// Package app assembles adapters from configuration for the binaries.
package app

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"mission-route-service/internal/adapters/generator"
	"mission-route-service/internal/adapters/notifier"
	"mission-route-service/internal/adapters/repositories"
	"mission-route-service/internal/config"
	"mission-route-service/internal/platform/db"
	"mission-route-service/internal/ports"
	"mission-route-service/internal/services"
)

// NewGenerator returns the text generator selected by cfg, or nil when the
// external optimizer is disabled.
func NewGenerator(ctx context.Context, cfg config.Config, log *zap.Logger) (ports.TextGenerator, error) {
	switch cfg.Optimizer.Provider {
	case config.ProviderHTTP:
		g, err := generator.NewHTTPGenerator(cfg.Optimizer.Endpoint, cfg.Optimizer.APIKey, cfg.Optimizer.Timeout, log)
		if err != nil {
			return nil, err
		}
		return g, nil
	case config.ProviderGenAI:
		g, err := generator.NewGenAIGenerator(ctx, cfg.Optimizer.APIKey, cfg.Optimizer.Model, cfg.Optimizer.Timeout, log)
		if err != nil {
			return nil, err
		}
		return g, nil
	default:
		return nil, nil
	}
}

// NewOptimizer builds the route optimizer around gen.
func NewOptimizer(cfg config.Config, gen ports.TextGenerator, log *zap.Logger) (*services.RouteOptimizer, error) {
	seq, err := services.ParseSequencing(cfg.RouteSequencer)
	if err != nil {
		return nil, err
	}
	return services.NewRouteOptimizer(gen, services.OptimizerConfig{
		Enabled:       cfg.OptimizerEnabled() && gen != nil,
		Sequencing:    seq,
		RatePerMinute: cfg.Optimizer.RatePerMinute,
	}, log), nil
}

// NewRepository opens Postgres when DATABASE_URL is set and otherwise serves
// the seed file from memory. The returned close func is never nil.
func NewRepository(ctx context.Context, cfg config.Config, log *zap.Logger) (ports.MissionRepository, func() error, error) {
	if cfg.DatabaseURL == "" {
		missions, err := repositories.LoadSeedFile(cfg.SeedPath)
		if err != nil {
			return nil, nil, fmt.Errorf("memory repository: %w", err)
		}
		log.Info("using in-memory mission repository", zap.Int("missions", len(missions)), zap.String("seed", cfg.SeedPath))
		return repositories.NewMemoryMissionRepository(missions...), func() error { return nil }, nil
	}

	conn, err := db.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}
	log.Info("using postgres mission repository")
	return repositories.NewPostgresMissionRepository(conn), conn.Close, nil
}

// NewNotifier publishes to Redis when REDIS_URL is set and logs otherwise.
func NewNotifier(ctx context.Context, cfg config.Config, log *zap.Logger) (ports.Notifier, func() error, error) {
	if cfg.RedisURL == "" {
		return notifier.NewLogNotifier(log), func() error { return nil }, nil
	}

	n, err := notifier.NewRedisNotifier(cfg.RedisURL)
	if err != nil {
		return nil, nil, err
	}
	if err := n.Ping(ctx); err != nil {
		_ = n.Close()
		return nil, nil, fmt.Errorf("redis notifier: ping: %w", err)
	}
	return n, n.Close, nil
}

// OpenDB is shared by the tools that need a raw connection.
func OpenDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	return db.Open(ctx, cfg.DatabaseURL)
}
