package dispatcher

import (
	"log/slog"

	"github.com/dmitrymomot/dispatch/core/metrics"
)

// Option configures a Dispatcher during creation.
type Option func(*Dispatcher)

// WithLogger sets a custom logger for the dispatcher.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Dispatcher) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// WithMetrics records every dispatch on c.
func WithMetrics(c *metrics.Collector) Option {
	return func(d *Dispatcher) {
		d.metrics = c
	}
}

// WithRequestIDHeader sets the header used to read and echo request ids over
// HTTP. Defaults to "X-Request-ID".
func WithRequestIDHeader(name string) Option {
	return func(d *Dispatcher) {
		if name != "" {
			d.requestIDHeader = name
		}
	}
}
