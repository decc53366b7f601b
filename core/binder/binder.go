package binder

import (
	"net/http"

	"github.com/dmitrymomot/dispatch/core/params"
)

// Binder represents a function that binds HTTP request data to a parameter map.
type Binder func(r *http.Request, p *params.Map) error
