package metrics

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	RequestsTotal   = "dispatch_requests_total"
	RequestDuration = "dispatch_request_duration_seconds"

	// UnmatchedRoute is the route label used for requests with no registered route.
	UnmatchedRoute = "unmatched"
)

// Collector holds the dispatch instruments.
type Collector struct {
	requests metric.Int64Counter
	duration metric.Float64Histogram
}

// New creates the dispatch instruments on meter.
func New(meter metric.Meter) (*Collector, error) {
	requests, err := meter.Int64Counter(
		RequestsTotal,
		metric.WithDescription("Total number of dispatched requests"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s counter: %w", RequestsTotal, err)
	}

	duration, err := meter.Float64Histogram(
		RequestDuration,
		metric.WithDescription("Dispatch duration in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s histogram: %w", RequestDuration, err)
	}

	return &Collector{requests: requests, duration: duration}, nil
}

// Observe records one finished dispatch. A nil Collector is a no-op.
func (c *Collector) Observe(ctx context.Context, method, route string, status int, outcome string, d time.Duration) {
	if c == nil {
		return
	}
	if route == "" {
		route = UnmatchedRoute
	}

	c.requests.Add(ctx, 1, metric.WithAttributes(
		attribute.String("method", method),
		attribute.String("route", route),
		attribute.Int("status", status),
		attribute.String("outcome", outcome),
	))
	c.duration.Record(ctx, d.Seconds(), metric.WithAttributes(
		attribute.String("method", method),
		attribute.String("outcome", outcome),
	))
}
