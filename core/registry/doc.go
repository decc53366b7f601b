// Package registry builds the immutable lookup table from (method, route) to
// handler that the dispatcher resolves requests against.
//
// Handlers come from routing objects implementing Routable, which expose a
// slot table keyed by "<lowercaseMethod>_<routeName>":
//
//	type Greeter struct{}
//
//	func (g *Greeter) Slots() map[string]any {
//		return map[string]any{
//			"get_hello":  g.hello,        // handler.QueryFunc shape
//			"post_hello": g.hello,        // also fine for POST
//			"put_hello":  g.replaceHello, // handler.BodyFunc shape
//		}
//	}
//
//	reg, err := registry.New(registry.WithRoutable(&Greeter{}))
//
// or from explicit registration:
//
//	reg, err := registry.New(
//		registry.WithQuery(http.MethodGet, "hello", hello),
//		registry.WithBody(http.MethodPost, "hello", createHello),
//	)
//
// Slot names that do not follow the naming pattern are ignored. A name that
// follows the pattern but whose value matches neither accepted shape is kept
// as an invalid entry, so dispatch can tell "no such route" from "route
// exists but cannot be invoked". The body shape is only accepted for POST,
// PUT and PATCH. Registering the same (method, route) twice is an error.
//
// A Registry is read-only after New returns and safe for concurrent lookups.
package registry
