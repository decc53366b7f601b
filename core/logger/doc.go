// Package logger provides structured logging utilities built on Go's standard slog package.
//
// # Basic Usage
//
//	import "github.com/dmitrymomot/dispatch/core/logger"
//
//	// Development: text format, debug level
//	log := logger.New(logger.WithDevelopment("dispatchd"))
//
//	// Production: JSON format, info level
//	log := logger.New(logger.WithProduction("dispatchd"))
//
//	// Custom configuration
//	log := logger.New(
//		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
//		logger.WithJSONFormatter(),
//		logger.WithOutput(os.Stderr),
//	)
//
// # Attribute Helpers
//
// Helpers return slog.Attr values with consistent keys. Helpers taking values
// that may be absent (errors, ids, route names) return an empty Attr, which
// slog omits:
//
//	log.LogAttrs(ctx, slog.LevelInfo, "request dispatched",
//		logger.Method(method),
//		logger.Route(route),
//		logger.StatusCode(status),
//		logger.Latency(time.Since(start)),
//		logger.Error(err),
//	)
package logger
