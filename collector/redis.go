package collector

import (
	"context"
	"fmt"
	"time"

	goMetrics "github.com/MrEthical07/goMetrics"
	"github.com/redis/go-redis/v9"
)

const defaultInterval = 30 * time.Second

// Redis polls key-count statistics from a Redis database and publishes them
// as gauges:
//
//	redis_keys_total                — DBSIZE of the connected database
//	redis_prefix_keys{prefix="..."} — keys under each configured prefix
//	redis_collector_errors_total{op="..."} — failed collection attempts
//
// Redis instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Redis struct {
	client   redis.UniversalClient
	total    *goMetrics.Gauge
	prefixed *goMetrics.Gauge
	errors   *goMetrics.Counter
	prefixes []string
	interval time.Duration
}

// NewRedis returns a collector bound to client and registry. A non-positive
// interval falls back to 30s. Prefixes are counted with SCAN, one pass per
// prefix per tick.
func NewRedis(client redis.UniversalClient, registry *goMetrics.Registry, interval time.Duration, prefixes ...string) *Redis {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Redis{
		client:   client,
		total:    registry.Gauge("redis_keys_total", "Total keys in the Redis database."),
		prefixed: registry.Gauge("redis_prefix_keys", "Keys under a configured key prefix.", "prefix"),
		errors:   registry.Counter("redis_collector_errors_total", "Redis statistics collection failures.", "op"),
		prefixes: append([]string(nil), prefixes...),
		interval: interval,
	}
}

// Collect performs one collection pass. On failure the error counter is
// incremented and the gauges keep their previous values.
func (c *Redis) Collect(ctx context.Context) error {
	size, err := c.client.DBSize(ctx).Result()
	if err != nil {
		c.errors.Inc(map[string]string{"op": "dbsize"})
		return fmt.Errorf("dbsize: %w", err)
	}
	c.total.Set(nil, float64(size))

	for _, prefix := range c.prefixes {
		count, err := c.countPrefix(ctx, prefix)
		if err != nil {
			c.errors.Inc(map[string]string{"op": "scan"})
			return fmt.Errorf("scan %s: %w", prefix, err)
		}
		c.prefixed.Set(map[string]string{"prefix": prefix}, float64(count))
	}
	return nil
}

// Run collects immediately, then on every interval tick until ctx is done.
// Individual pass failures are counted and do not stop the loop.
func (c *Redis) Run(ctx context.Context) {
	_ = c.Collect(ctx)

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			_ = c.Collect(ctx)
		}
	}
}

func (c *Redis) countPrefix(ctx context.Context, prefix string) (int64, error) {
	var count int64
	iter := c.client.Scan(ctx, 0, prefix+"*", 512).Iterator()
	for iter.Next(ctx) {
		count++
	}
	if err := iter.Err(); err != nil {
		return 0, err
	}
	return count, nil
}
