// Package handler defines the handler call shapes the dispatcher invokes and
// the per-request Context they receive.
//
// Two shapes exist:
//
//	// Query-only: valid for every HTTP method.
//	type QueryFunc func(ctx *Context, query params.Map) params.Map
//
//	// Query and body: valid for POST, PUT and PATCH.
//	type BodyFunc func(ctx *Context, query, body params.Map) params.Map
//
// A handler's returned map becomes the JSON response body. A handler reports
// anything other than success by overriding the status code on its Context
// before returning:
//
//	func login(ctx *handler.Context, query params.Map) params.Map {
//		if _, ok := query.Get("token"); !ok {
//			ctx.SetStatusCode(http.StatusUnauthorized)
//			return params.Map{}
//		}
//		// ...
//	}
//
// Context implements context.Context by delegating to the context of the
// inbound request, so it can be passed to any blocking call the handler makes.
package handler
