package dispatcher_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/dmitrymomot/dispatch/core/dispatcher"
	"github.com/dmitrymomot/dispatch/core/handler"
	"github.com/dmitrymomot/dispatch/core/logger"
	"github.com/dmitrymomot/dispatch/core/metrics"
	"github.com/dmitrymomot/dispatch/core/params"
	"github.com/dmitrymomot/dispatch/core/registry"
)

type dummyHandler struct {
	invalidCalls int
}

func (h *dummyHandler) Slots() map[string]any {
	return map[string]any{
		"get_invalidSignature": func(params.Map) { h.invalidCalls++ },
		"get_validSlot":        h.getValidSlot,
		"get_statusCode":       h.getStatusCode,
		"post_validSlot":       h.postValidSlot,
		"put_validSlot":        h.postValidSlot,
		"get_redirect":         h.getRedirect,
		"delete_item":          h.deleteItem,
		"get_panic":            h.getPanic,
		"post_query":           h.getValidSlot,
	}
}

func (h *dummyHandler) getValidSlot(_ *handler.Context, query params.Map) params.Map {
	return query
}

func (h *dummyHandler) getStatusCode(ctx *handler.Context, _ params.Map) params.Map {
	ctx.SetStatusCode(http.StatusFound)
	return params.Map{}
}

func (h *dummyHandler) postValidSlot(_ *handler.Context, _, body params.Map) params.Map {
	return body
}

func (h *dummyHandler) getRedirect(ctx *handler.Context, query params.Map) params.Map {
	to, _ := query.Get("to")
	ctx.Header().Set("Location", to.Str())
	ctx.SetStatusCode(http.StatusSeeOther)
	var m params.Map
	m.Set("location", to)
	return m
}

func (h *dummyHandler) deleteItem(ctx *handler.Context, _ params.Map) params.Map {
	ctx.SetStatusCode(http.StatusNoContent)
	var m params.Map
	m.Set("ignored", params.Bool(true))
	return m
}

func (h *dummyHandler) getPanic(*handler.Context, params.Map) params.Map {
	panic(errors.New("handler exploded"))
}

func newDispatcher(t *testing.T, opts ...dispatcher.Option) (*dispatcher.Dispatcher, *dummyHandler) {
	t.Helper()
	h := &dummyHandler{}
	reg, err := registry.New(registry.WithRoutable(h))
	require.NoError(t, err)
	return dispatcher.New(reg, opts...), h
}

func TestDispatch(t *testing.T) {
	t.Parallel()

	data, err := json.MarshalIndent(map[string]int{"param1": 1, "param2": 2}, "", "    ")
	require.NoError(t, err)

	tests := []struct {
		name       string
		method     string
		path       string
		data       []byte
		response   string
		statusCode int
		err        error
	}{
		{"nonexistent slot", http.MethodGet, "nonexistent", nil, "", http.StatusNotFound, dispatcher.ErrRouteNotFound},
		{"nonexistent slot with query", http.MethodGet, "/nonexistent?param=value", nil, "", http.StatusNotFound, dispatcher.ErrRouteNotFound},
		{"invalid signature", http.MethodGet, "invalidSignature", nil, "", http.StatusInternalServerError, dispatcher.ErrRouteSignatureInvalid},
		{"query string", http.MethodGet, "validSlot?param=value", nil, `{"param":"value"}`, http.StatusOK, nil},
		{"leading slash", http.MethodGet, "/validSlot?param=value", nil, `{"param":"value"}`, http.StatusOK, nil},
		{"no query string", http.MethodGet, "validSlot", nil, `{}`, http.StatusOK, nil},
		{"status code", http.MethodGet, "statusCode", nil, `{}`, http.StatusFound, nil},
		{"malformed JSON", http.MethodPost, "validSlot", []byte(""), "", http.StatusBadRequest, dispatcher.ErrMalformedRequestBody},
		{"syntax error", http.MethodPost, "validSlot", []byte(`{"param1":`), "", http.StatusBadRequest, dispatcher.ErrMalformedRequestBody},
		{"array body", http.MethodPut, "validSlot", []byte(`[1,2]`), "", http.StatusBadRequest, dispatcher.ErrMalformedRequestBody},
		{"valid JSON", http.MethodPost, "validSlot", data, `{"param1":1,"param2":2}`, http.StatusOK, nil},
		{"valid JSON via PUT", http.MethodPut, "validSlot", []byte(`{"a":{"b":[true,null]}}`), `{"a":{"b":[true,null]}}`, http.StatusOK, nil},
		{"query-only handler ignores body", http.MethodPost, "query?x=1", []byte(`not json`), `{"x":"1"}`, http.StatusOK, nil},
		{"method mismatch", http.MethodDelete, "validSlot", nil, "", http.StatusNotFound, dispatcher.ErrRouteNotFound},
		{"route is case sensitive", http.MethodGet, "validslot", nil, "", http.StatusNotFound, dispatcher.ErrRouteNotFound},
		{"nested path segment", http.MethodGet, "validSlot/extra", nil, "", http.StatusNotFound, dispatcher.ErrRouteNotFound},
		{"empty path", http.MethodGet, "/", nil, "", http.StatusNotFound, dispatcher.ErrRouteNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d, _ := newDispatcher(t)
			conn := dispatcher.NewRecorder(tt.method, tt.path, tt.data)

			err := d.Dispatch(conn)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
			} else {
				assert.NoError(t, err)
			}

			require.True(t, conn.Written())
			assert.Equal(t, tt.statusCode, conn.Code())
			assert.Equal(t, tt.response, string(conn.ResponseBody()))
			assert.Equal(t, strconv.Itoa(len(conn.ResponseBody())), conn.Header().Get("Content-Length"))

			if tt.err == nil {
				assert.Equal(t, dispatcher.ContentTypeJSON, conn.Header().Get("Content-Type"))
				assert.JSONEq(t, tt.response, string(conn.ResponseBody()))
			} else {
				assert.Empty(t, conn.Header().Get("Content-Type"))
				assert.Equal(t, tt.statusCode, dispatcher.StatusCode(err))
			}
		})
	}
}

func TestDispatchNeverInvokesInvalidHandler(t *testing.T) {
	t.Parallel()

	d, h := newDispatcher(t)
	for range 3 {
		conn := dispatcher.NewRecorder(http.MethodGet, "invalidSignature", nil)
		_ = d.Dispatch(conn)
		assert.Equal(t, http.StatusInternalServerError, conn.Code())
	}
	assert.Zero(t, h.invalidCalls)
}

func TestDispatchHandlerHeaders(t *testing.T) {
	t.Parallel()

	d, _ := newDispatcher(t)
	conn := dispatcher.NewRecorder(http.MethodGet, "redirect?to=%2Fhome", nil)
	require.NoError(t, d.Dispatch(conn))

	assert.Equal(t, http.StatusSeeOther, conn.Code())
	assert.Equal(t, "/home", conn.Header().Get("Location"))
	assert.Equal(t, `{"location":"/home"}`, string(conn.ResponseBody()))
}

func TestDispatchNoContentHasNoBody(t *testing.T) {
	t.Parallel()

	d, _ := newDispatcher(t)
	conn := dispatcher.NewRecorder(http.MethodDelete, "item", nil)
	require.NoError(t, d.Dispatch(conn))

	assert.Equal(t, http.StatusNoContent, conn.Code())
	assert.Empty(t, conn.ResponseBody())
	assert.Empty(t, conn.Header().Get("Content-Length"))
	assert.Empty(t, conn.Header().Get("Content-Type"))
}

func TestDispatchBodyReadError(t *testing.T) {
	t.Parallel()

	d, _ := newDispatcher(t)
	readErr := errors.New("connection reset")
	conn := dispatcher.NewRecorder(http.MethodPost, "validSlot", nil).WithBodyError(readErr)

	err := d.Dispatch(conn)
	assert.ErrorIs(t, err, dispatcher.ErrMalformedRequestBody)
	assert.ErrorIs(t, err, readErr)
	assert.Equal(t, http.StatusBadRequest, conn.Code())
}

func TestDispatchRecoversPanic(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	d, _ := newDispatcher(t, dispatcher.WithLogger(logger.New(logger.WithOutput(&buf))))
	conn := dispatcher.NewRecorder(http.MethodGet, "panic", nil)

	var err error
	require.NotPanics(t, func() { err = d.Dispatch(conn) })

	var panicErr dispatcher.PanicError
	require.ErrorAs(t, err, &panicErr)
	assert.EqualError(t, errors.Unwrap(err), "handler exploded")
	assert.NotEmpty(t, panicErr.Stack())
	assert.Equal(t, http.StatusInternalServerError, dispatcher.StatusCode(err))

	assert.Equal(t, http.StatusInternalServerError, conn.Code())
	assert.Empty(t, conn.ResponseBody())
	assert.Contains(t, buf.String(), "handler panicked")
	assert.Contains(t, buf.String(), "outcome=panic")
}

func TestDispatchLogsOutcome(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	d, _ := newDispatcher(t, dispatcher.WithLogger(logger.New(logger.WithJSONFormatter(), logger.WithOutput(&buf))))

	ctx := dispatcher.WithRequestID(context.Background(), "req-42")
	require.Error(t, d.Dispatch(dispatcher.NewRecorder(http.MethodGet, "nonexistent", nil).WithContext(ctx)))

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "request dispatched", rec["msg"])
	assert.Equal(t, "WARN", rec["level"])
	assert.Equal(t, "req-42", rec["request_id"])
	assert.Equal(t, "nonexistent", rec["route"])
	assert.Equal(t, "not_found", rec["outcome"])
	assert.EqualValues(t, http.StatusNotFound, rec["status_code"])
}

func TestDispatchLogsQueryOnlyAtDebug(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		level     slog.Level
		wantQuery bool
	}{
		{name: "info", level: slog.LevelInfo, wantQuery: false},
		{name: "debug", level: slog.LevelDebug, wantQuery: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			log := logger.New(logger.WithJSONFormatter(), logger.WithLevel(tt.level), logger.WithOutput(&buf))
			d, _ := newDispatcher(t, dispatcher.WithLogger(log))

			require.NoError(t, d.Dispatch(dispatcher.NewRecorder(http.MethodGet, "validSlot?token=secret", nil)))

			var rec map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
			assert.Equal(t, "validSlot", rec["route"])
			if tt.wantQuery {
				assert.Equal(t, "token=secret", rec["query"])
			} else {
				assert.NotContains(t, rec, "query")
				assert.NotContains(t, buf.String(), "secret")
			}
		})
	}
}

func TestDispatchRecordsMetrics(t *testing.T) {
	t.Parallel()

	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	collector, err := metrics.New(provider.Meter("test"))
	require.NoError(t, err)

	d, _ := newDispatcher(t, dispatcher.WithMetrics(collector))
	_ = d.Dispatch(dispatcher.NewRecorder(http.MethodGet, "validSlot", nil))
	_ = d.Dispatch(dispatcher.NewRecorder(http.MethodGet, "missing", nil))
	_ = d.Dispatch(dispatcher.NewRecorder(http.MethodPost, "validSlot", nil))

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	outcomes := map[string]int64{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != metrics.RequestsTotal {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			require.True(t, ok)
			for _, dp := range sum.DataPoints {
				v, _ := dp.Attributes.Value("outcome")
				outcomes[v.AsString()] += dp.Value
			}
		}
	}
	assert.Equal(t, map[string]int64{
		string(dispatcher.OutcomeOK):            1,
		string(dispatcher.OutcomeNotFound):      1,
		string(dispatcher.OutcomeMalformedBody): 1,
	}, outcomes)
}

func TestNewPanicsOnNilRegistry(t *testing.T) {
	t.Parallel()

	assert.PanicsWithValue(t, dispatcher.ErrNilRegistry, func() {
		dispatcher.New(nil)
	})
}

func TestSplitPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path, route, query string
	}{
		{"validSlot", "validSlot", ""},
		{"/validSlot", "validSlot", ""},
		{"validSlot?param=value", "validSlot", "param=value"},
		{"/validSlot?a=1?b=2", "validSlot", "a=1?b=2"},
		{"?x=1", "", "x=1"},
		{"", "", ""},
		{"//double", "/double", ""},
	}
	for _, tt := range tests {
		route, query := dispatcher.SplitPath(tt.path)
		assert.Equal(t, tt.route, route, tt.path)
		assert.Equal(t, tt.query, query, tt.path)
	}
}

func TestStatusCode(t *testing.T) {
	t.Parallel()

	assert.Equal(t, http.StatusOK, dispatcher.StatusCode(nil))
	assert.Equal(t, http.StatusInternalServerError, dispatcher.StatusCode(errors.New("x")))
	assert.Equal(t, http.StatusNotFound, dispatcher.StatusCode(dispatcher.ErrRouteNotFound))
	assert.Equal(t, http.StatusBadRequest, dispatcher.StatusCode(
		errors.Join(errors.New("ctx"), dispatcher.ErrMalformedRequestBody)))
}
