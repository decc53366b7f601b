package dispatcher

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrRouteNotFound indicates no handler is registered for the method and route.
	ErrRouteNotFound = newStatusError("route not found", http.StatusNotFound)

	// ErrRouteSignatureInvalid indicates the route exists but its handler has no valid shape.
	ErrRouteSignatureInvalid = newStatusError("route handler signature invalid", http.StatusInternalServerError)

	// ErrMalformedRequestBody indicates a body was expected but is empty,
	// not valid JSON, or not a JSON object.
	ErrMalformedRequestBody = newStatusError("malformed request body", http.StatusBadRequest)

	// ErrNilRegistry indicates New was called without a registry.
	ErrNilRegistry = errors.New("nil registry")
)

// statusCode is an unexported interface that errors can implement
// to provide a custom HTTP status code.
type statusCode interface {
	StatusCode() int
}

type statusError struct {
	msg    string
	status int
}

func newStatusError(msg string, status int) *statusError {
	return &statusError{msg: msg, status: status}
}

// Error implements the error interface.
func (e *statusError) Error() string { return e.msg }

// StatusCode returns the HTTP status the error is answered with.
func (e *statusError) StatusCode() int { return e.status }

// StatusCode returns the HTTP status associated with err, or 500 when err
// carries none. A nil error yields 200.
func StatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}
	var sc statusCode
	if errors.As(err, &sc) {
		return sc.StatusCode()
	}
	return http.StatusInternalServerError
}

// PanicError is returned by Dispatch when a handler panicked. It gives access
// to the original panic value and the stack captured at the panic point.
type PanicError interface {
	error
	// Value returns the original panic value.
	Value() any
	// Stack returns the stack trace captured at the panic point.
	Stack() []byte
}

// panicError is the private implementation of PanicError interface.
type panicError struct {
	value any
	stack []byte
}

// Error implements the error interface.
func (e *panicError) Error() string {
	return fmt.Sprintf("panic: %v", e.value)
}

// Value returns the original panic value.
func (e *panicError) Value() any {
	return e.value
}

// Stack returns the stack trace.
func (e *panicError) Stack() []byte {
	return e.stack
}

// StatusCode reports 500 for every recovered panic.
func (e *panicError) StatusCode() int {
	return http.StatusInternalServerError
}

// Unwrap allows errors.Is/As to work with wrapped panics.
func (e *panicError) Unwrap() error {
	if err, ok := e.value.(error); ok {
		return err
	}
	return nil
}
