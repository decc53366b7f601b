package registry

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/dmitrymomot/dispatch/core/handler"
)

// Option configures a Registry during creation.
type Option func(*builder) error

type builder struct {
	entries map[key]Entry
	logger  *slog.Logger
}

// WithLogger sets a logger that reports skipped and invalid slots.
func WithLogger(logger *slog.Logger) Option {
	return func(b *builder) error {
		if logger != nil {
			b.logger = logger
		}
		return nil
	}
}

// WithRoutable registers every handler in r's slot table.
func WithRoutable(r Routable) Option {
	return func(b *builder) error {
		if r == nil {
			return ErrNilRoutable
		}
		for name, v := range r.Slots() {
			method, route, ok := parseSlotName(name)
			if !ok {
				b.logger.Debug("ignoring slot", "slot", name)
				continue
			}
			e := classify(method, v)
			e.Name = route
			if !e.Valid() {
				b.logger.Warn("slot has no valid handler signature",
					"slot", name, "method", method, "route", route)
			}
			if err := b.add(e); err != nil {
				return err
			}
		}
		return nil
	}
}

// WithQuery registers a query-only handler.
func WithQuery(method, route string, fn handler.QueryFunc) Option {
	return func(b *builder) error {
		if fn == nil {
			return fmt.Errorf("%w: %s %s", ErrNilHandler, method, route)
		}
		return b.addExplicit(method, route, fn)
	}
}

// WithBody registers a handler for query and body parameters. method must be
// POST, PUT or PATCH.
func WithBody(method, route string, fn handler.BodyFunc) Option {
	return func(b *builder) error {
		if fn == nil {
			return fmt.Errorf("%w: %s %s", ErrNilHandler, method, route)
		}
		if !handler.BodyBearing(strings.ToUpper(method)) {
			return fmt.Errorf("%w: %s cannot carry a body", ErrInvalidMethod, method)
		}
		return b.addExplicit(method, route, fn)
	}
}

func (b *builder) addExplicit(method, route string, fn any) error {
	m, ok := methods[strings.ToLower(method)]
	if !ok {
		return fmt.Errorf("%w: %s", ErrInvalidMethod, method)
	}
	if !validRoute(route) {
		return fmt.Errorf("%w: %q", ErrInvalidRoute, route)
	}
	e := classify(m, fn)
	e.Name = route
	return b.add(e)
}

func (b *builder) add(e Entry) error {
	k := key{method: e.Method, route: e.Name}
	if _, exists := b.entries[k]; exists {
		return fmt.Errorf("%w: %s %s", ErrDuplicateRoute, e.Method, e.Name)
	}
	b.entries[k] = e
	return nil
}
