package api

import (
	"net/http"

	"go.uber.org/zap"

	"mission-route-service/internal/api/handlers"
	"mission-route-service/internal/platform/metrics"
	"mission-route-service/internal/services"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(planner *services.RoutePlanner, log *zap.Logger) http.Handler {
	if log == nil {
		log = zap.NewNop()
	}

	mux := http.NewServeMux()

	missionHandler := &handlers.MissionHandler{Planner: planner, Log: log}
	routeHandler := &handlers.RouteHandler{Planner: planner, Log: log}

	mux.HandleFunc("/health", handlers.Health(log))
	mux.Handle("/metrics", metrics.Handler())
	mux.HandleFunc("/technicians/{id}/missions", missionHandler.List)
	mux.HandleFunc("/technicians/{id}/route", routeHandler.Plan)
	mux.HandleFunc("/missions/{id}", missionHandler.Get)
	mux.HandleFunc("/missions/{id}/assign", missionHandler.Assign)

	return requestIDMiddleware(loggingMiddleware(log, mux))
}
