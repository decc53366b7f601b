// Package health provides HTTP handlers for liveness and readiness checks.
//
// Handlers:
//   - Liveness: process is running (no dependency checks)
//   - Readiness: all dependency checks pass
//
// Usage:
//
//	mux.Handle("GET /health/live", health.Liveness())
//	mux.Handle("GET /health/ready", health.Readiness(logger, srvReady))
//
// Dependency checks must follow the func(context.Context) error signature.
package health
