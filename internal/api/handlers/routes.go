package handlers

import (
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"mission-route-service/internal/api/dto"
	"mission-route-service/internal/domain"
	"mission-route-service/internal/platform/obs"
	"mission-route-service/internal/services"
)

type RouteHandler struct {
	Planner *services.RoutePlanner
	Log     *zap.Logger
}

// Plan computes the technician's route for the requested transport mode.
// An empty body plans a driving route.
func (h *RouteHandler) Plan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, r, h.Log, http.MethodPost)
		return
	}

	technicianID := strings.TrimSpace(r.PathValue("id"))
	if technicianID == "" {
		writeError(w, r, h.Log, http.StatusBadRequest, "technician id is required")
		return
	}

	var req dto.RouteRequest
	if err := decodeBody(w, r, &req); err != nil && !errors.Is(err, errEmptyBody) {
		writeError(w, r, h.Log, http.StatusBadRequest, err.Error())
		return
	}

	mode, err := domain.ParseTransportMode(req.Mode)
	if err != nil {
		writeError(w, r, h.Log, http.StatusBadRequest, "mode must be one of driving, walking, bicycling, transit")
		return
	}

	plan, err := h.Planner.PlanTechnicianRoute(r.Context(), technicianID, mode)
	if err != nil {
		h.Log.Error("plan route failed", zap.String("req_id", obs.RequestID(r.Context())), zap.Error(err))
		writeError(w, r, h.Log, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, h.Log, http.StatusOK, dto.RouteResponse{
		TechnicianID: plan.TechnicianID,
		StopOrder:    plan.Route.StopOrder,
		Route:        plan.View,
	})
}
