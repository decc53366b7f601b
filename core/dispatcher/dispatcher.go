package dispatcher

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"strconv"
	"time"

	"github.com/dmitrymomot/dispatch/core/binder"
	"github.com/dmitrymomot/dispatch/core/handler"
	"github.com/dmitrymomot/dispatch/core/logger"
	"github.com/dmitrymomot/dispatch/core/metrics"
	"github.com/dmitrymomot/dispatch/core/params"
	"github.com/dmitrymomot/dispatch/core/registry"
)

// ContentTypeJSON is the Content-Type of every successful response.
const ContentTypeJSON = "application/json"

// Outcome classifies how a dispatch ended, for logs and metrics.
type Outcome string

const (
	OutcomeOK               Outcome = "ok"
	OutcomeNotFound         Outcome = "not_found"
	OutcomeInvalidSignature Outcome = "invalid_signature"
	OutcomeMalformedBody    Outcome = "malformed_body"
	OutcomePanic            Outcome = "panic"
	OutcomeWriteFailed      Outcome = "write_failed"
)

// Dispatcher routes requests to the handlers of a registry.
type Dispatcher struct {
	registry        *registry.Registry
	logger          *slog.Logger
	metrics         *metrics.Collector
	requestIDHeader string
}

// New creates a Dispatcher over reg. It panics if reg is nil.
func New(reg *registry.Registry, opts ...Option) *Dispatcher {
	if reg == nil {
		panic(ErrNilRegistry)
	}

	d := &Dispatcher{
		registry:        reg,
		logger:          logger.Discard(),
		requestIDHeader: "X-Request-ID",
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Registry returns the registry the dispatcher resolves against.
func (d *Dispatcher) Registry() *registry.Registry {
	return d.registry
}

// Dispatch handles one request on conn and always writes a response.
// The returned error describes why a request did not reach a handler
// (ErrRouteNotFound, ErrRouteSignatureInvalid, ErrMalformedRequestBody),
// a recovered handler panic (PanicError), or a failed body write.
// It is nil when the handler ran and its response was written, whatever
// status the handler chose.
func (d *Dispatcher) Dispatch(conn Conn) (err error) {
	start := time.Now()
	ctx := conn.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	method := conn.Method()
	route, rawQuery := SplitPath(conn.Path())

	w := &responseWriter{conn: conn}
	outcome := OutcomeOK
	matched := ""

	defer func() {
		if p := recover(); p != nil {
			panicErr := &panicError{value: p, stack: debug.Stack()}
			err = panicErr
			outcome = OutcomePanic

			// Can't replace a response that is already on the wire
			if w.Written() {
				d.logger.ErrorContext(ctx, "panic after response written",
					logger.Method(method),
					logger.Route(route),
					logger.StatusCode(w.Status()),
					slog.Any("value", panicErr.value),
					slog.String("stack", string(panicErr.stack)),
				)
			} else {
				d.logger.ErrorContext(ctx, "handler panicked",
					logger.Method(method),
					logger.Route(route),
					slog.Any("value", panicErr.value),
					slog.String("stack", string(panicErr.stack)),
				)
				w.empty(http.StatusInternalServerError)
			}
		}
		d.observe(ctx, method, route, matched, rawQuery, w, outcome, err, time.Since(start))
	}()

	entry, ok := d.registry.Lookup(method, route)
	if !ok {
		outcome = OutcomeNotFound
		return w.fail(ErrRouteNotFound)
	}
	matched = route

	if !entry.Valid() {
		outcome = OutcomeInvalidSignature
		return w.fail(ErrRouteSignatureInvalid)
	}

	query := binder.DecodeQuery(rawQuery)

	var body params.Map
	if entry.AcceptsBody() && handler.BodyBearing(method) {
		body, err = readBody(conn)
		if err != nil {
			outcome = OutcomeMalformedBody
			return w.fail(err)
		}
	}

	hctx := handler.NewContext(ctx, method, route, rawQuery)
	result := entry.Call(hctx, query, body)

	status := http.StatusOK
	if code, ok := hctx.StatusCode(); ok {
		status = code
	}

	if err := w.json(status, hctx.Header(), result); err != nil {
		outcome = OutcomeWriteFailed
		return err
	}
	return nil
}

// readBody fetches and decodes the body for a handler that requires one.
// An empty body is malformed here: the handler expects a JSON object.
func readBody(conn Conn) (params.Map, error) {
	raw, err := conn.Body()
	if err != nil {
		return params.Map{}, fmt.Errorf("%w: %w", ErrMalformedRequestBody, err)
	}
	if len(raw) == 0 {
		return params.Map{}, fmt.Errorf("%w: empty body", ErrMalformedRequestBody)
	}

	m, err := binder.DecodeBody(raw)
	if err != nil {
		return params.Map{}, fmt.Errorf("%w: %w", ErrMalformedRequestBody, err)
	}
	return m, nil
}

func (d *Dispatcher) observe(
	ctx context.Context,
	method, route, matched, rawQuery string,
	w *responseWriter,
	outcome Outcome,
	err error,
	elapsed time.Duration,
) {
	d.metrics.Observe(ctx, method, matched, w.Status(), string(outcome), elapsed)

	level := slog.LevelInfo
	switch {
	case w.Status() >= 500:
		level = slog.LevelError
	case w.Status() >= 400:
		level = slog.LevelWarn
	}

	attrs := []slog.Attr{
		logger.Component("dispatcher"),
		logger.RequestID(RequestIDFromContext(ctx)),
		logger.Method(method),
		logger.Route(route),
		logger.StatusCode(w.Status()),
		logger.Outcome(string(outcome)),
		logger.BytesOut(w.Size()),
		logger.Latency(elapsed),
		logger.Error(err),
	}
	// Query strings may carry credentials
	if d.logger.Enabled(ctx, slog.LevelDebug) {
		attrs = append(attrs, logger.Query(rawQuery))
	}
	d.logger.LogAttrs(ctx, level, "request dispatched", attrs...)
}

// responseWriter drives a Conn and tracks what has been written.
type responseWriter struct {
	conn    Conn
	status  int
	size    int
	written bool
}

func (w *responseWriter) writeHeader(status int, h http.Header) {
	if w.written {
		return
	}
	w.status = status
	w.written = true
	w.conn.SetStatusCode(status)
	w.conn.WriteHeaders(h)
}

// empty writes a status with no body.
func (w *responseWriter) empty(status int) {
	h := make(http.Header, 1)
	h.Set("Content-Length", "0")
	w.writeHeader(status, h)
}

// fail answers err with its status code and an empty body, then returns err.
func (w *responseWriter) fail(err error) error {
	w.empty(StatusCode(err))
	return err
}

// json writes result as a JSON object with exact framing headers.
// 204 and 304 responses carry no body.
func (w *responseWriter) json(status int, extra http.Header, result params.Map) error {
	h := extra.Clone()
	if h == nil {
		h = make(http.Header, 2)
	}

	if !bodyAllowed(status) {
		h.Del("Content-Type")
		h.Del("Content-Length")
		w.writeHeader(status, h)
		return nil
	}

	payload := result.AppendJSON(nil)
	h.Set("Content-Type", ContentTypeJSON)
	h.Set("Content-Length", strconv.Itoa(len(payload)))
	w.writeHeader(status, h)

	if err := w.conn.WriteBody(payload); err != nil {
		return fmt.Errorf("failed to write response body: %w", err)
	}
	w.size = len(payload)
	return nil
}

// Written returns true once the status line has been written.
func (w *responseWriter) Written() bool {
	return w.written
}

// Status returns the HTTP status code written, or 0.
func (w *responseWriter) Status() int {
	return w.status
}

// Size returns the number of body bytes written.
func (w *responseWriter) Size() int {
	return w.size
}

func bodyAllowed(status int) bool {
	return status != http.StatusNoContent && status != http.StatusNotModified
}
