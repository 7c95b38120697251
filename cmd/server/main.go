package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"mission-route-service/internal/api"
	"mission-route-service/internal/app"
	"mission-route-service/internal/config"
	"mission-route-service/internal/domain"
	"mission-route-service/internal/platform/metrics"
	"mission-route-service/internal/platform/obs"
	"mission-route-service/internal/services"
)

// main is the application composition root.
// It wires concrete adapters (Postgres or memory, optimizer, notifier) behind ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	cfg, err := config.Load("")
	if err != nil {
		log.Fatal(err)
	}

	logger, err := obs.NewLogger(cfg.Log.Level, cfg.Log.Development)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg config.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	metrics.Register()

	repo, closeRepo, err := app.NewRepository(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() { _ = closeRepo() }()

	notifier, closeNotifier, err := app.NewNotifier(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() { _ = closeNotifier() }()

	gen, err := app.NewGenerator(ctx, cfg, logger)
	if err != nil {
		return err
	}
	optimizer, err := app.NewOptimizer(cfg, gen, logger)
	if err != nil {
		return err
	}

	planner := services.NewRoutePlanner(repo, optimizer, notifier, domain.DefaultDepot, logger)
	router := api.NewRouter(planner, logger)

	// Write timeout leaves room for a slow external optimizer before the fallback kicks in.
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      cfg.Optimizer.Timeout + 30*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("server listening",
			zap.String("addr", srv.Addr),
			zap.String("optimizer", cfg.Optimizer.Provider),
			zap.String("sequencing", cfg.RouteSequencer),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
