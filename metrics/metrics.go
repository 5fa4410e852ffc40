package metrics

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/automoto/stork/metrics"

// Counters tracks world streaming and crash totals.
type Counters struct {
	tilesSpawned     metric.Int64Counter
	tilesDespawned   metric.Int64Counter
	obstaclesSpawned metric.Int64Counter
	crashes          metric.Int64Counter
}

// New registers the counters on the global meter provider.
func New() (*Counters, error) {
	return NewWithMeter(otel.Meter(instrumentationName))
}

// NewWithMeter registers the counters on m.
func NewWithMeter(m metric.Meter) (*Counters, error) {
	c := &Counters{}
	var err error

	c.tilesSpawned, err = m.Int64Counter(
		"stork.tiles.spawned",
		metric.WithDescription("Total terrain tiles streamed in"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create tiles spawned counter: %w", err)
	}

	c.tilesDespawned, err = m.Int64Counter(
		"stork.tiles.despawned",
		metric.WithDescription("Total terrain tiles evicted"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create tiles despawned counter: %w", err)
	}

	c.obstaclesSpawned, err = m.Int64Counter(
		"stork.obstacles.spawned",
		metric.WithDescription("Total obstacles placed"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create obstacles counter: %w", err)
	}

	c.crashes, err = m.Int64Counter(
		"stork.crashes",
		metric.WithDescription("Total crashes into obstacles"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create crashes counter: %w", err)
	}

	return c, nil
}

// Streamed records one streaming update.
func (c *Counters) Streamed(spawned, despawned, obstacles int) {
	if c == nil {
		return
	}
	ctx := context.Background()
	if spawned > 0 {
		c.tilesSpawned.Add(ctx, int64(spawned))
	}
	if despawned > 0 {
		c.tilesDespawned.Add(ctx, int64(despawned))
	}
	if obstacles > 0 {
		c.obstaclesSpawned.Add(ctx, int64(obstacles))
	}
}

// Crashed records a crash into an obstacle of the given kind.
func (c *Counters) Crashed(kind string) {
	if c == nil {
		return
	}
	c.crashes.Add(context.Background(), 1, metric.WithAttributes(attribute.String("kind", kind)))
}
