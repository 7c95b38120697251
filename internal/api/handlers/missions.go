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

// MissionHandler exposes a technician's missions and mission assignment.
type MissionHandler struct {
	Planner *services.RoutePlanner
	Log     *zap.Logger
}

// List returns the accepted missions of the technician in the path.
func (h *MissionHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, r, h.Log, http.MethodGet)
		return
	}

	technicianID := strings.TrimSpace(r.PathValue("id"))
	if technicianID == "" {
		writeError(w, r, h.Log, http.StatusBadRequest, "technician id is required")
		return
	}

	missions, err := h.Planner.ListAcceptedMissions(r.Context(), technicianID)
	if err != nil {
		h.Log.Error("list missions failed", zap.String("req_id", obs.RequestID(r.Context())), zap.Error(err))
		writeError(w, r, h.Log, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListMissionsResponse{Missions: make([]dto.MissionResponse, 0, len(missions))}
	for _, m := range missions {
		res.Missions = append(res.Missions, dto.NewMissionResponse(m))
	}

	writeJSON(w, r, h.Log, http.StatusOK, res)
}

// Get returns a single mission.
func (h *MissionHandler) Get(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, r, h.Log, http.MethodGet)
		return
	}

	m, err := h.Planner.GetMission(r.Context(), r.PathValue("id"))
	switch {
	case err == nil:
		writeJSON(w, r, h.Log, http.StatusOK, dto.NewMissionResponse(m))
	case errors.Is(err, domain.ErrMissionNotFound):
		writeError(w, r, h.Log, http.StatusNotFound, "mission not found")
	default:
		h.Log.Error("get mission failed", zap.String("req_id", obs.RequestID(r.Context())), zap.Error(err))
		writeError(w, r, h.Log, http.StatusInternalServerError, "internal server error")
	}
}

// Assign hands the mission in the path to the technician named in the body.
func (h *MissionHandler) Assign(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, r, h.Log, http.MethodPost)
		return
	}

	missionID := strings.TrimSpace(r.PathValue("id"))
	if missionID == "" {
		writeError(w, r, h.Log, http.StatusBadRequest, "mission id is required")
		return
	}

	var req dto.AssignRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, r, h.Log, http.StatusBadRequest, err.Error())
		return
	}
	if strings.TrimSpace(req.TechnicianID) == "" {
		writeError(w, r, h.Log, http.StatusBadRequest, "technician_id is required")
		return
	}

	_, err := h.Planner.AssignMission(r.Context(), missionID, req.TechnicianID)
	switch {
	case err == nil:
		w.WriteHeader(http.StatusNoContent)
	case errors.Is(err, domain.ErrMissionNotFound):
		writeError(w, r, h.Log, http.StatusNotFound, "mission not found")
	case errors.Is(err, domain.ErrMissionClosed):
		writeError(w, r, h.Log, http.StatusConflict, "mission is closed")
	default:
		h.Log.Error("assign mission failed", zap.String("req_id", obs.RequestID(r.Context())), zap.Error(err))
		writeError(w, r, h.Log, http.StatusInternalServerError, "internal server error")
	}
}
