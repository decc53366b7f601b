package registry

import (
	"github.com/dmitrymomot/dispatch/core/handler"
	"github.com/dmitrymomot/dispatch/core/params"
)

// Route describes a registered route for introspection.
type Route struct {
	Method string
	Name   string
	Shape  handler.Shape
}

// Entry is one resolved handler.
type Entry struct {
	Route
	query handler.QueryFunc
	body  handler.BodyFunc
}

// Valid reports whether the entry can be invoked.
func (e Entry) Valid() bool {
	switch e.Shape {
	case handler.ShapeQuery:
		return e.query != nil
	case handler.ShapeBody:
		return e.body != nil
	}
	return false
}

// AcceptsBody reports whether the handler takes a decoded body.
func (e Entry) AcceptsBody() bool {
	return e.Shape == handler.ShapeBody
}

// Call invokes the handler with the arguments its shape takes. body is
// ignored for query-only handlers. Calling an invalid entry returns an empty map.
func (e Entry) Call(ctx *handler.Context, query, body params.Map) params.Map {
	switch {
	case e.Shape == handler.ShapeQuery && e.query != nil:
		return e.query(ctx, query)
	case e.Shape == handler.ShapeBody && e.body != nil:
		return e.body(ctx, query, body)
	}
	return params.Map{}
}

// classify resolves a slot value to its shape for the given method.
func classify(method string, v any) Entry {
	e := Entry{Route: Route{Method: method, Shape: handler.ShapeInvalid}}

	switch fn := v.(type) {
	case handler.QueryFunc:
		e.query = fn
	case func(*handler.Context, params.Map) params.Map:
		e.query = fn
	case handler.BodyFunc:
		e.body = fn
	case func(*handler.Context, params.Map, params.Map) params.Map:
		e.body = fn
	}

	switch {
	case e.query != nil:
		e.Shape = handler.ShapeQuery
	case e.body != nil && handler.BodyBearing(method):
		e.Shape = handler.ShapeBody
	default:
		e.query, e.body = nil, nil
	}
	return e
}
