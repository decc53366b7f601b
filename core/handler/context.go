package handler

import (
	"context"
	"net/http"
	"time"
)

// Context carries per-request state to a handler: the resolved method and
// route, the raw query string, and the status override.
// A Context belongs to a single request and is not safe for concurrent use.
type Context struct {
	ctx      context.Context
	method   string
	route    string
	rawQuery string
	status   int
	header   http.Header
}

// NewContext creates a Context for one request. A nil parent is replaced with
// context.Background().
func NewContext(parent context.Context, method, route, rawQuery string) *Context {
	if parent == nil {
		parent = context.Background()
	}
	return &Context{
		ctx:      parent,
		method:   method,
		route:    route,
		rawQuery: rawQuery,
	}
}

// Deadline returns the time when work done on behalf of this context should be canceled.
func (c *Context) Deadline() (deadline time.Time, ok bool) {
	return c.ctx.Deadline()
}

// Done returns a channel that's closed when work done on behalf of this context should be canceled.
func (c *Context) Done() <-chan struct{} {
	return c.ctx.Done()
}

// Err returns a non-nil error value after Done is closed.
func (c *Context) Err() error {
	return c.ctx.Err()
}

// Value returns the value associated with this context for key, or nil if no value is associated with key.
func (c *Context) Value(key any) any {
	return c.ctx.Value(key)
}

// Method returns the HTTP method of the request.
func (c *Context) Method() string { return c.method }

// Route returns the route name the request was dispatched to.
func (c *Context) Route() string { return c.route }

// RawQuery returns the undecoded query string, without the leading '?'.
func (c *Context) RawQuery() string { return c.rawQuery }

// SetStatusCode overrides the response status. The last call wins.
// Codes outside 200-599 are ignored; informational responses are not
// something a handler can finish a request with.
func (c *Context) SetStatusCode(code int) {
	if code < 200 || code > 599 {
		return
	}
	c.status = code
}

// StatusCode returns the override status and whether one was set.
func (c *Context) StatusCode() (int, bool) {
	return c.status, c.status != 0
}

// Header returns response headers the handler wants sent, such as Location
// alongside a redirect status. Content-Type and Content-Length are always
// set by the dispatcher and cannot be overridden here.
func (c *Context) Header() http.Header {
	if c.header == nil {
		c.header = make(http.Header)
	}
	return c.header
}
