package dto

import "mission-route-service/internal/presentation"

type RouteRequest struct {
	Mode string `json:"mode"`
}

type RouteResponse struct {
	TechnicianID string                 `json:"technician_id"`
	StopOrder    []string               `json:"stop_order"`
	Route        presentation.RouteView `json:"route"`
}
