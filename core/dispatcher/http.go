package dispatcher

import (
	"context"
	"maps"
	"net/http"

	"github.com/google/uuid"

	"github.com/dmitrymomot/dispatch/core/binder"
)

type requestIDContextKey struct{}

// WithRequestID returns a copy of ctx carrying the request id.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDContextKey{}, id)
}

// RequestIDFromContext returns the request id stored in ctx, or "".
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDContextKey{}).(string)
	return id
}

// ServeHTTP implements http.Handler. The request id is taken from the
// request id header when present, otherwise generated, and echoed back.
func (d *Dispatcher) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	requestID := r.Header.Get(d.requestIDHeader)
	if requestID == "" {
		requestID = uuid.New().String()
	}
	w.Header().Set(d.requestIDHeader, requestID)

	r = r.WithContext(WithRequestID(r.Context(), requestID))
	_ = d.Dispatch(newHTTPConn(w, r))
}

// httpConn adapts a net/http exchange to Conn.
type httpConn struct {
	w       http.ResponseWriter
	r       *http.Request
	status  int
	written bool
}

func newHTTPConn(w http.ResponseWriter, r *http.Request) *httpConn {
	return &httpConn{w: w, r: r}
}

func (c *httpConn) Context() context.Context { return c.r.Context() }

func (c *httpConn) Method() string { return c.r.Method }

func (c *httpConn) Path() string {
	// Use RawPath if available to preserve URL encoding
	path := c.r.URL.Path
	if c.r.URL.RawPath != "" {
		path = c.r.URL.RawPath
	}
	if c.r.URL.RawQuery != "" || c.r.URL.ForceQuery {
		path += "?" + c.r.URL.RawQuery
	}
	return path
}

func (c *httpConn) Body() ([]byte, error) {
	return binder.ReadBody(c.r.Body)
}

func (c *httpConn) SetStatusCode(code int) {
	c.status = code
}

func (c *httpConn) WriteHeaders(h http.Header) {
	// Prevent double-writing responses which causes HTTP protocol errors
	if c.written {
		return
	}
	maps.Copy(c.w.Header(), h)

	status := c.status
	if status == 0 {
		status = http.StatusOK
	}
	c.written = true
	c.w.WriteHeader(status)
}

func (c *httpConn) WriteBody(b []byte) error {
	if !c.written {
		c.WriteHeaders(nil)
	}
	_, err := c.w.Write(b)
	return err
}
