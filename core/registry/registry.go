package registry

import (
	"cmp"
	"slices"
	"strings"

	"github.com/dmitrymomot/dispatch/core/logger"
)

// Routable is a routing object exposing handlers by slot name
// "<lowercaseMethod>_<routeName>", for example "get_users" or "post_users".
// Values should be handler.QueryFunc or handler.BodyFunc, or plain funcs
// with the same signatures.
type Routable interface {
	Slots() map[string]any
}

// methods maps the lowercase slot prefix to the canonical HTTP method.
var methods = map[string]string{
	"get":     "GET",
	"head":    "HEAD",
	"post":    "POST",
	"put":     "PUT",
	"patch":   "PATCH",
	"delete":  "DELETE",
	"options": "OPTIONS",
	"connect": "CONNECT",
	"trace":   "TRACE",
}

type key struct {
	method string
	route  string
}

// Registry maps (method, route) to handler entries.
type Registry struct {
	entries map[key]Entry
	routes  []Route
}

// New builds a Registry from the given options. It fails on conflicting or
// malformed explicit registrations; unmatched slot names never fail.
func New(opts ...Option) (*Registry, error) {
	b := &builder{
		entries: make(map[key]Entry),
		logger:  logger.Discard(),
	}

	for _, opt := range opts {
		if err := opt(b); err != nil {
			return nil, err
		}
	}

	r := &Registry{
		entries: b.entries,
		routes:  make([]Route, 0, len(b.entries)),
	}
	for _, e := range b.entries {
		r.routes = append(r.routes, e.Route)
	}
	slices.SortFunc(r.routes, func(a, b Route) int {
		return cmp.Or(cmp.Compare(a.Name, b.Name), cmp.Compare(a.Method, b.Method))
	})

	return r, nil
}

// MustNew is like New but panics on error.
func MustNew(opts ...Option) *Registry {
	r, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return r
}

// Lookup returns the entry registered for method and route. The entry may be
// invalid; check Entry.Valid before calling it.
func (r *Registry) Lookup(method, route string) (Entry, bool) {
	e, ok := r.entries[key{method: method, route: route}]
	return e, ok
}

// Routes returns all registered routes sorted by name, then method,
// including invalid ones.
func (r *Registry) Routes() []Route {
	return slices.Clone(r.routes)
}

// Len returns the number of registered entries.
func (r *Registry) Len() int { return len(r.entries) }

// parseSlotName splits "get_users" into ("GET", "users").
func parseSlotName(name string) (method, route string, ok bool) {
	prefix, route, found := strings.Cut(name, "_")
	if !found {
		return "", "", false
	}
	method, ok = methods[prefix]
	if !ok || !validRoute(route) {
		return "", "", false
	}
	return method, route, true
}

func validRoute(route string) bool {
	return route != "" && !strings.ContainsAny(route, "/?")
}
