package logger

import (
	"log/slog"
	"runtime/debug"
	"time"
)

// Attribute helpers use the empty Attr pattern for nil safety.
// slog drops empty attrs, so log.Info("msg", logger.Error(err)) needs no nil check.

// Group creates a group of attributes under a single key.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error creates an attribute for a single error under the key "error".
// Returns empty Attr for nil errors.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Latency creates an attribute for request processing time.
func Latency(d time.Duration) slog.Attr {
	return slog.Duration("latency", d)
}

// RequestID creates a request_id attribute. Returns empty Attr for "".
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// ============================================================================
// Dispatch
// ============================================================================

// Method creates an attribute for an HTTP method.
func Method(method string) slog.Attr {
	return slog.String("method", method)
}

// Path creates an attribute for a request path.
func Path(path string) slog.Attr {
	return slog.String("path", path)
}

// Route creates an attribute for a resolved route name. Returns empty Attr for "".
func Route(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("route", name)
}

// Query creates an attribute for a raw query string. Returns empty Attr for "".
func Query(raw string) slog.Attr {
	if raw == "" {
		return slog.Attr{}
	}
	return slog.String("query", raw)
}

// StatusCode creates an attribute for an HTTP status code.
func StatusCode(code int) slog.Attr {
	return slog.Int("status_code", code)
}

// Outcome creates an attribute describing how a dispatch ended.
func Outcome(outcome string) slog.Attr {
	return slog.String("outcome", outcome)
}

// BytesOut creates an attribute for the response body size.
func BytesOut(n int) slog.Attr {
	return slog.Int("bytes_out", n)
}

// ============================================================================
// Generic Metadata
// ============================================================================

// Component creates an attribute naming the emitting component.
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Count creates an integer attribute under a custom key.
func Count(key string, n int) slog.Attr {
	return slog.Int(key, n)
}

// Stack captures the current goroutine's stack trace.
func Stack() slog.Attr {
	return slog.String("stack", string(debug.Stack()))
}
