package dispatcher

import (
	"context"
	"net/http"
	"strings"
)

// Conn is the connection a request arrived on. It supplies the parsed
// request line and body, and accepts the response.
//
// The dispatcher calls SetStatusCode, then WriteHeaders once, then
// WriteBody at most once.
type Conn interface {
	// Context returns the request's context.
	Context() context.Context
	// Method returns the request method, e.g. "GET".
	Method() string
	// Path returns the request target as received, including any query string.
	Path() string
	// Body returns the complete request body.
	Body() ([]byte, error)
	// SetStatusCode sets the response status.
	SetStatusCode(code int)
	// WriteHeaders writes the status line and the given headers.
	WriteHeaders(h http.Header)
	// WriteBody writes the response body.
	WriteBody(b []byte) error
}

// SplitPath separates a request target into the route name and the raw
// query string. One leading '/' is dropped; the route name is everything
// before the first '?'.
func SplitPath(path string) (route, rawQuery string) {
	path = strings.TrimPrefix(path, "/")
	route, rawQuery, _ = strings.Cut(path, "?")
	return route, rawQuery
}
