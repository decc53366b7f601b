package health

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/dispatch/core/logger"
)

// Check reports whether a dependency is usable.
type Check func(context.Context) error

// Readiness responds "READY" when every check passes and 503 Service
// Unavailable on the first failure.
func Readiness(log *slog.Logger, checks ...Check) http.Handler {
	if log == nil {
		log = logger.Discard()
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for _, check := range checks {
			if err := check(r.Context()); err != nil {
				log.ErrorContext(r.Context(), "readiness check failed", logger.Error(err))
				writeText(w, http.StatusServiceUnavailable, http.StatusText(http.StatusServiceUnavailable))
				return
			}
		}
		writeText(w, http.StatusOK, "READY")
	})
}
