package dispatcher

import (
	"bytes"
	"context"
	"maps"
	"net/http"
)

// Recorder is an in-memory Conn. It serves a fixed request and records the
// response, much like httptest.ResponseRecorder.
type Recorder struct {
	ctx     context.Context
	method  string
	target  string
	body    []byte
	bodyErr error

	status  int
	header  http.Header
	written bool
	out     bytes.Buffer
}

// NewRecorder creates a Recorder for a request with the given method,
// target (path plus optional query string) and body.
func NewRecorder(method, target string, body []byte) *Recorder {
	return &Recorder{
		ctx:    context.Background(),
		method: method,
		target: target,
		body:   body,
		header: make(http.Header),
	}
}

// WithContext sets the request context.
func (r *Recorder) WithContext(ctx context.Context) *Recorder {
	r.ctx = ctx
	return r
}

// WithBodyError makes Body fail with err.
func (r *Recorder) WithBodyError(err error) *Recorder {
	r.bodyErr = err
	return r
}

func (r *Recorder) Context() context.Context { return r.ctx }

func (r *Recorder) Method() string { return r.method }

func (r *Recorder) Path() string { return r.target }

func (r *Recorder) Body() ([]byte, error) {
	if r.bodyErr != nil {
		return nil, r.bodyErr
	}
	return r.body, nil
}

func (r *Recorder) SetStatusCode(code int) { r.status = code }

func (r *Recorder) WriteHeaders(h http.Header) {
	if r.written {
		return
	}
	maps.Copy(r.header, h)
	r.written = true
}

func (r *Recorder) WriteBody(b []byte) error {
	_, err := r.out.Write(b)
	return err
}

// Code returns the recorded status code.
func (r *Recorder) Code() int { return r.status }

// Header returns the recorded response headers.
func (r *Recorder) Header() http.Header { return r.header }

// Written reports whether headers were written.
func (r *Recorder) Written() bool { return r.written }

// ResponseBody returns the recorded response body.
func (r *Recorder) ResponseBody() []byte { return r.out.Bytes() }
