package notifier

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	redis "github.com/redis/go-redis/v9"

	"mission-route-service/internal/domain"
	"mission-route-service/internal/ports"
)

const publishTimeout = 2 * time.Second

// RedisNotifier publishes technician events over Redis pub/sub.
type RedisNotifier struct {
	rdb *redis.Client
	now func() time.Time
}

// NewRedisNotifier connects to the Redis instance at url (redis://...).
func NewRedisNotifier(url string) (*RedisNotifier, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("redis notifier: parse url: %w", err)
	}
	return NewRedisNotifierFromClient(redis.NewClient(opt)), nil
}

func NewRedisNotifierFromClient(rdb *redis.Client) *RedisNotifier {
	return &RedisNotifier{rdb: rdb, now: time.Now}
}

// Ping checks connectivity.
func (n *RedisNotifier) Ping(ctx context.Context) error {
	return n.rdb.Ping(ctx).Err()
}

func (n *RedisNotifier) Close() error { return n.rdb.Close() }

func (n *RedisNotifier) NotifyRouteReady(ctx context.Context, evt ports.RouteReady) error {
	if evt.TechnicianID == "" {
		return errors.New("notify route ready: technician id is empty")
	}
	return n.publish(ctx, routeReadyEvent(evt, n.now()))
}

func (n *RedisNotifier) NotifyAssignment(ctx context.Context, m *domain.Mission) error {
	if m == nil || m.TechnicianID == "" {
		return errors.New("notify assignment: mission has no technician")
	}
	return n.publish(ctx, assignmentEvent(m, n.now()))
}

func (n *RedisNotifier) publish(ctx context.Context, evt Event) error {
	data, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("publish %s: marshal: %w", evt.Type, err)
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	if err := n.rdb.Publish(ctx, ChannelName(evt.TechnicianID), data).Err(); err != nil {
		return fmt.Errorf("publish %s: %w", evt.Type, err)
	}
	return nil
}
