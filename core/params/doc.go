// Package params provides the JSON-shaped parameter container used on both
// sides of a dispatch: decoded query and body parameters going into a handler,
// and the handler's result going back out as a response body.
//
// A Map is an ordered mapping from string keys to Values. A Value is a tagged
// union over the JSON types: null, boolean, number, string, list and object.
// Numbers keep their JSON literal, so decoding and re-encoding a document never
// changes how a number is written.
//
// # Building values
//
//	var m params.Map
//	m.Set("name", params.String("gopher"))
//	m.Set("age", params.Int(13))
//	m.Set("tags", params.List(params.String("a"), params.String("b")))
//
//	data, _ := m.MarshalJSON() // {"name":"gopher","age":13,"tags":["a","b"]}
//
// # Decoding
//
//	m, err := params.Parse([]byte(`{"param1":1,"param2":2}`))
//	if errors.Is(err, params.ErrNotObject) {
//		// valid JSON, but not an object
//	}
//
// The zero Map is empty and ready to use. Maps share their storage when copied
// by assignment; use Clone for an independent copy.
package params
