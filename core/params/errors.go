package params

import "errors"

var (
	// ErrInvalidJSON indicates the input is not syntactically valid JSON.
	ErrInvalidJSON = errors.New("invalid JSON")

	// ErrNotObject indicates valid JSON whose top-level value is not an object.
	ErrNotObject = errors.New("top-level JSON value is not an object")

	// ErrTooDeep indicates JSON nested deeper than MaxDepth.
	ErrTooDeep = errors.New("JSON nesting too deep")

	// ErrInvalidNumber indicates a string that is not a JSON number literal.
	ErrInvalidNumber = errors.New("invalid JSON number literal")
)
