package binder

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/dmitrymomot/dispatch/core/params"
)

// DefaultMaxJSONSize is the default maximum size for JSON request bodies (1MB).
const DefaultMaxJSONSize = 1 << 20 // 1 MB

// DecodeBody parses a raw request body. An empty body yields an empty map.
// Anything else must be a JSON object, otherwise ErrMalformedBody is returned.
func DecodeBody(raw []byte) (params.Map, error) {
	if len(raw) == 0 {
		return params.NewMap(0), nil
	}

	m, err := params.Parse(raw)
	if err != nil {
		return params.Map{}, fmt.Errorf("%w: %w", ErrMalformedBody, err)
	}
	return m, nil
}

// ReadBody reads at most DefaultMaxJSONSize bytes from body.
func ReadBody(body io.Reader) ([]byte, error) {
	if body == nil {
		return nil, nil
	}

	// Read one extra byte to detect oversized bodies without buffering them
	data, err := io.ReadAll(io.LimitReader(body, DefaultMaxJSONSize+1))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadBody, err)
	}
	if len(data) > DefaultMaxJSONSize {
		return nil, fmt.Errorf("%w: %w (max %d bytes)", ErrMalformedBody, ErrBodyTooLarge, DefaultMaxJSONSize)
	}
	return data, nil
}

// JSON creates a JSON body binder function.
//
// Example:
//
//	func createHandler(w http.ResponseWriter, r *http.Request) {
//		var body params.Map
//		if err := binder.JSON()(r, &body); err != nil {
//			http.Error(w, err.Error(), http.StatusBadRequest)
//			return
//		}
//		// body holds the decoded JSON object
//	}
func JSON() Binder {
	return func(r *http.Request, p *params.Map) error {
		// Fail fast if request context is already cancelled to avoid processing doomed requests
		if ctx := r.Context(); ctx != nil {
			select {
			case <-ctx.Done():
				return fmt.Errorf("%w: %v", ErrReadBody, ctx.Err())
			default:
			}
		}

		data, err := ReadBody(r.Body)
		if err != nil {
			return err
		}

		m, err := DecodeBody(data)
		if err != nil {
			return err
		}
		*p = m
		return nil
	}
}

// IsMalformed reports whether err was caused by an unusable request body.
func IsMalformed(err error) bool {
	return errors.Is(err, ErrMalformedBody) || errors.Is(err, ErrReadBody)
}
