// Package binder turns raw request data into params.Map values.
//
// Two decoders cover the two places a request carries parameters:
//
//	query := binder.DecodeQuery("param=value&flag")
//	// {"param":"value","flag":""}
//
//	body, err := binder.DecodeBody([]byte(`{"param1":1}`))
//	if errors.Is(err, binder.ErrMalformedBody) {
//		// respond with 400
//	}
//
// DecodeQuery never fails: pairs it cannot make sense of are dropped or kept
// with their raw text. DecodeBody accepts an empty body as an empty map, and
// otherwise requires a JSON object.
//
// # net/http
//
// Query and JSON return Binder functions that read the same data from an
// *http.Request. JSON limits the body to DefaultMaxJSONSize bytes:
//
//	var body params.Map
//	if err := binder.JSON()(r, &body); err != nil {
//		http.Error(w, err.Error(), http.StatusBadRequest)
//		return
//	}
package binder
