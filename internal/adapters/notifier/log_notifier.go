package notifier

import (
	"context"

	"go.uber.org/zap"

	"mission-route-service/internal/domain"
	"mission-route-service/internal/platform/obs"
	"mission-route-service/internal/ports"
)

// LogNotifier writes events to the log. It is used when no Redis is configured.
type LogNotifier struct {
	log *zap.Logger
}

func NewLogNotifier(log *zap.Logger) *LogNotifier {
	if log == nil {
		log = zap.NewNop()
	}
	return &LogNotifier{log: log}
}

func (n *LogNotifier) NotifyRouteReady(ctx context.Context, evt ports.RouteReady) error {
	n.log.Info("route ready",
		zap.String("req_id", obs.RequestID(ctx)),
		zap.String("channel", ChannelName(evt.TechnicianID)),
		zap.String("source", string(evt.Source)),
		zap.Float64("total_distance_km", evt.TotalDistanceKm),
		zap.Int("total_time_minutes", evt.TotalTimeMinutes),
		zap.Strings("stop_order", evt.StopOrder),
	)
	return nil
}

func (n *LogNotifier) NotifyAssignment(ctx context.Context, m *domain.Mission) error {
	n.log.Info("mission assigned",
		zap.String("req_id", obs.RequestID(ctx)),
		zap.String("channel", ChannelName(m.TechnicianID)),
		zap.String("mission_id", m.ID),
		zap.String("title", m.Title),
	)
	return nil
}
