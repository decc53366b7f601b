package registry

import "errors"

var (
	// ErrDuplicateRoute indicates two handlers registered for the same method and route.
	ErrDuplicateRoute = errors.New("duplicate route")

	// ErrInvalidMethod indicates an unknown HTTP method in explicit registration.
	ErrInvalidMethod = errors.New("invalid http method")

	// ErrInvalidRoute indicates an empty route name, or one containing '/' or '?'.
	ErrInvalidRoute = errors.New("invalid route name")

	// ErrNilHandler indicates a nil handler func in explicit registration.
	ErrNilHandler = errors.New("nil handler")

	// ErrNilRoutable indicates a nil routing object.
	ErrNilRoutable = errors.New("nil routable")
)
