// Package metrics records dispatch outcomes through the OpenTelemetry metric
// API. Any MeterProvider works; cmd/dispatchd wires the Prometheus exporter.
//
//	m, err := metrics.New(otel.GetMeterProvider().Meter("dispatch"))
//	d := dispatcher.New(reg, dispatcher.WithMetrics(m))
//
// Two instruments are created:
//
//	dispatch_requests_total            counter, by method, route, status and outcome
//	dispatch_request_duration_seconds  histogram, by method and outcome
//
// Requests that match no route are recorded with the route label
// "unmatched" to keep label cardinality bounded.
package metrics
