// Package dispatcher resolves a request to a registered handler, binds its
// parameters, invokes it and writes the JSON response.
//
// A request is identified by its method and the first path segment, the
// route name. For "GET /validSlot?param=value" the dispatcher looks up
// (GET, "validSlot") in the registry, decodes the query string, and calls the
// handler. Handlers registered with the body shape additionally receive the
// decoded JSON body, for POST, PUT and PATCH requests.
//
// Outcomes:
//
//	no route for (method, route)         404, empty body
//	route present, unusable signature    500, empty body
//	body expected but empty or malformed 400, empty body
//	handler panicked                     500, empty body
//	handler returned                     200 or the handler's override,
//	                                     JSON object body with exact Content-Length
//
// # Usage
//
//	reg, err := registry.New(registry.WithRoutable(&api{}))
//	if err != nil {
//		return err
//	}
//	d := dispatcher.New(reg, dispatcher.WithLogger(log))
//	http.ListenAndServe(":8080", d)
//
// Dispatcher implements http.Handler. Dispatch works against any Conn, so
// other transports can drive it directly. A Dispatcher is safe for concurrent
// use; each call handles one request synchronously.
package dispatcher
