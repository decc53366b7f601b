package main

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/dmitrymomot/dispatch/core/handler"
	"github.com/dmitrymomot/dispatch/core/params"
	"github.com/dmitrymomot/dispatch/core/registry"
)

// service is the demo routing object served by dispatchd.
type service struct {
	routes func() []registry.Route
}

func (s *service) Slots() map[string]any {
	return map[string]any{
		"get_echo":       s.echo,
		"post_echo":      s.echoBody,
		"get_greet":      s.greet,
		"get_status":     s.status,
		"delete_session": s.logout,
		"get_routes":     s.listRoutes,
	}
}

func (s *service) echo(_ *handler.Context, query params.Map) params.Map {
	return query
}

func (s *service) echoBody(_ *handler.Context, query, body params.Map) params.Map {
	out := params.NewMap(2)
	out.Set("query", params.Object(query))
	out.Set("body", params.Object(body))
	return out
}

func (s *service) greet(_ *handler.Context, query params.Map) params.Map {
	name := "world"
	if v, ok := query.Get("name"); ok && strings.TrimSpace(v.Str()) != "" {
		name = strings.TrimSpace(v.Str())
	}
	out := params.NewMap(1)
	out.Set("message", params.String("hello, "+name))
	return out
}

// status responds with the status code given in the "code" query parameter.
func (s *service) status(ctx *handler.Context, query params.Map) params.Map {
	out := params.NewMap(1)
	v, ok := query.Get("code")
	if !ok {
		out.Set("error", params.String("code is required"))
		ctx.SetStatusCode(http.StatusBadRequest)
		return out
	}
	code, err := strconv.Atoi(v.Str())
	if err != nil || code < 200 || code > 599 {
		out.Set("error", params.String("code must be an HTTP status between 200 and 599"))
		ctx.SetStatusCode(http.StatusBadRequest)
		return out
	}
	ctx.SetStatusCode(code)
	out.Set("status", params.Int(int64(code)))
	out.Set("text", params.String(http.StatusText(code)))
	return out
}

func (s *service) logout(ctx *handler.Context, _ params.Map) params.Map {
	ctx.Header().Set("Clear-Site-Data", `"cookies"`)
	ctx.SetStatusCode(http.StatusNoContent)
	return params.Map{}
}

func (s *service) listRoutes(_ *handler.Context, _ params.Map) params.Map {
	var routes []registry.Route
	if s.routes != nil {
		routes = s.routes()
	}
	items := make([]params.Value, 0, len(routes))
	for _, r := range routes {
		item := params.NewMap(3)
		item.Set("method", params.String(r.Method))
		item.Set("route", params.String(r.Name))
		item.Set("shape", params.String(r.Shape.String()))
		items = append(items, params.Object(item))
	}
	out := params.NewMap(1)
	out.Set("routes", params.List(items...))
	return out
}
