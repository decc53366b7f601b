package binder

import "errors"

var (
	// ErrMalformedBody indicates a non-empty request body that is not valid JSON,
	// or whose top-level value is not an object.
	ErrMalformedBody = errors.New("malformed request body")

	// ErrBodyTooLarge indicates the request body exceeds DefaultMaxJSONSize.
	// It always wraps ErrMalformedBody.
	ErrBodyTooLarge = errors.New("request body too large")

	// ErrReadBody indicates the request body could not be read.
	ErrReadBody = errors.New("failed to read request body")
)
