package services

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"mission-route-service/internal/domain"
	"mission-route-service/internal/platform/metrics"
	"mission-route-service/internal/platform/obs"
	"mission-route-service/internal/ports"
)

// Outcome labels recorded for every computed route.
const (
	reasonOK             = "ok"
	reasonNoStops        = "no_stops"
	reasonDisabled       = "disabled"
	reasonRateLimited    = "rate_limited"
	reasonGeneratorError = "generator_error"
	reasonNoJSON         = "no_json"
	reasonInvalidJSON    = "invalid_json"
	reasonInvalidReply   = "invalid_reply"
)

// OptimizerConfig is passed explicitly at construction; the optimizer never
// reads the environment.
type OptimizerConfig struct {
	// Enabled turns the external call on. When false every route is built locally.
	Enabled bool
	// Sequencing is applied by the local builder.
	Sequencing Sequencing
	// RatePerMinute caps external calls; 0 means unlimited. Calls over budget
	// are served by the local builder.
	RatePerMinute float64
}

// RouteOptimizer asks an external text generator for an itinerary and
// guarantees a result: every failure is answered by the local builder with the
// same inputs. There is exactly one external attempt per call.
//
// The optimizer keeps no route state and is safe for concurrent use.
type RouteOptimizer struct {
	generator ports.TextGenerator
	cfg       OptimizerConfig
	limiter   *rate.Limiter
	log       *zap.Logger
}

func NewRouteOptimizer(generator ports.TextGenerator, cfg OptimizerConfig, log *zap.Logger) *RouteOptimizer {
	if log == nil {
		log = zap.NewNop()
	}
	if cfg.Sequencing == "" {
		cfg.Sequencing = SequenceInput
	}

	o := &RouteOptimizer{
		generator: generator,
		cfg:       cfg,
		log:       log,
	}

	if cfg.RatePerMinute > 0 {
		burst := int(cfg.RatePerMinute)
		if burst < 1 {
			burst = 1
		}
		o.limiter = rate.NewLimiter(rate.Limit(cfg.RatePerMinute/60), burst)
	}

	return o
}

// Optimize returns the external optimizer's itinerary when it is usable,
// otherwise the locally built route.
func (o *RouteOptimizer) Optimize(
	ctx context.Context,
	stops []domain.MissionStop,
	depot domain.Depot,
	mode domain.TransportMode,
) domain.OptimizedRoute {
	routable, _ := domain.SplitRoutable(stops)

	// Nothing to route: answer before touching the network.
	if len(routable) == 0 {
		return o.fallback(ctx, routable, depot, mode, reasonNoStops, nil)
	}

	if !o.cfg.Enabled || o.generator == nil {
		return o.fallback(ctx, routable, depot, mode, reasonDisabled, nil)
	}

	if o.limiter != nil && !o.limiter.Allow() {
		return o.fallback(ctx, routable, depot, mode, reasonRateLimited, nil)
	}

	route, reason, err := o.callExternal(ctx, routable, depot, mode)
	if err != nil {
		return o.fallback(ctx, routable, depot, mode, reason, err)
	}

	metrics.RouteOptimizations.WithLabelValues(string(domain.SourceExternal), reasonOK).Inc()
	o.log.Info("route optimized externally",
		zap.String("req_id", obs.RequestID(ctx)),
		zap.Int("stops", len(routable)),
		zap.String("mode", string(mode)),
		zap.Float64("total_distance_km", route.TotalDistanceKm),
	)

	return route
}

func (o *RouteOptimizer) callExternal(
	ctx context.Context,
	stops []domain.MissionStop,
	depot domain.Depot,
	mode domain.TransportMode,
) (_ domain.OptimizedRoute, reason string, err error) {
	defer obs.Time(ctx, o.log, "optimizer.external")(&err)

	prompt := buildOptimizerPrompt(stops, depot, mode)

	start := time.Now()
	text, err := o.generator.Generate(ctx, prompt)
	metrics.OptimizerLatency.Observe(time.Since(start).Seconds())
	if err != nil {
		return domain.OptimizedRoute{}, reasonGeneratorError, err
	}

	route, err := parseOptimizerReply(text, stops, mode)
	switch {
	case err == nil:
		return route, reasonOK, nil
	case errors.Is(err, errNoJSONBlock):
		return domain.OptimizedRoute{}, reasonNoJSON, err
	case errors.Is(err, errReplyDecode):
		return domain.OptimizedRoute{}, reasonInvalidJSON, err
	default:
		return domain.OptimizedRoute{}, reasonInvalidReply, err
	}
}

func (o *RouteOptimizer) fallback(
	ctx context.Context,
	stops []domain.MissionStop,
	depot domain.Depot,
	mode domain.TransportMode,
	reason string,
	cause error,
) domain.OptimizedRoute {
	metrics.RouteOptimizations.WithLabelValues(string(domain.SourceFallback), reason).Inc()

	fields := []zap.Field{
		zap.String("req_id", obs.RequestID(ctx)),
		zap.String("reason", reason),
		zap.Int("stops", len(stops)),
		zap.String("mode", string(mode)),
	}
	if cause != nil {
		o.log.Warn("external optimizer unusable, building route locally", append(fields, zap.Error(cause))...)
	} else {
		o.log.Debug("building route locally", fields...)
	}

	return BuildLocalRoute(stops, depot, mode, o.cfg.Sequencing)
}
