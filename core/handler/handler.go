package handler

import (
	"net/http"

	"github.com/dmitrymomot/dispatch/core/params"
)

// QueryFunc handles a request using its query parameters only.
type QueryFunc func(ctx *Context, query params.Map) params.Map

// BodyFunc handles a request using its query parameters and decoded JSON body.
type BodyFunc func(ctx *Context, query, body params.Map) params.Map

// Shape identifies which call shape a handler was registered with.
type Shape uint8

const (
	// ShapeInvalid marks a handler whose signature matched no accepted shape.
	ShapeInvalid Shape = iota
	// ShapeQuery marks a QueryFunc.
	ShapeQuery
	// ShapeBody marks a BodyFunc.
	ShapeBody
)

// String returns a human-readable shape name.
func (s Shape) String() string {
	switch s {
	case ShapeQuery:
		return "query"
	case ShapeBody:
		return "query+body"
	default:
		return "invalid"
	}
}

// BodyBearing reports whether requests with the given method may carry a
// body that is bound to a BodyFunc.
func BodyBearing(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch:
		return true
	}
	return false
}
