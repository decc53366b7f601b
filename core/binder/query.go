package binder

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/dmitrymomot/dispatch/core/params"
)

// DecodeQuery parses a raw query string into a map of string values.
//
// Pairs are separated by '&' and split at the first '='. Keys and values are
// percent-decoded, with '+' meaning space. A key without '=' maps to the empty
// string. Empty keys are dropped, and an undecodable escape leaves the raw
// text in place. When a key repeats, the last value wins.
func DecodeQuery(raw string) params.Map {
	raw = strings.TrimPrefix(raw, "?")
	m := params.NewMap(strings.Count(raw, "&") + 1)
	if raw == "" {
		return m
	}

	for pair := range strings.SplitSeq(raw, "&") {
		if pair == "" {
			continue
		}
		key, value, _ := strings.Cut(pair, "=")
		key = unescape(key)
		if key == "" {
			continue
		}
		m.Set(key, params.String(unescape(value)))
	}
	return m
}

func unescape(s string) string {
	if u, err := url.QueryUnescape(s); err == nil {
		return u
	}
	return s
}

// Query creates a query parameter binder function.
//
// Example:
//
//	func searchHandler(w http.ResponseWriter, r *http.Request) {
//		var q params.Map
//		_ = binder.Query()(r, &q)
//		term, _ := q.Get("q")
//		// ...
//	}
func Query() Binder {
	return func(r *http.Request, p *params.Map) error {
		*p = DecodeQuery(r.URL.RawQuery)
		return nil
	}
}
