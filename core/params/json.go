package params

import (
	"github.com/tidwall/gjson"
)

// MaxDepth is the deepest nesting of arrays and objects Parse and ParseValue accept.
const MaxDepth = 512

// Parse decodes a JSON document whose top-level value is an object.
// Duplicate keys keep the position of their first occurrence and the value
// of their last.
func Parse(data []byte) (Map, error) {
	if err := validate(data); err != nil {
		return Map{}, err
	}
	res := gjson.ParseBytes(data)
	if !res.IsObject() {
		return Map{}, ErrNotObject
	}
	return objectFrom(res), nil
}

// ParseValue decodes any JSON document into a Value.
func ParseValue(data []byte) (Value, error) {
	if err := validate(data); err != nil {
		return Null(), err
	}
	return valueFrom(gjson.ParseBytes(data)), nil
}

func validate(data []byte) error {
	if !gjson.ValidBytes(data) {
		return ErrInvalidJSON
	}
	if depth(data) > MaxDepth {
		return ErrTooDeep
	}
	return nil
}

// depth returns the maximum nesting of arrays and objects in valid JSON.
// Decoding cost grows with depth times size, so it is bounded before decoding.
func depth(data []byte) int {
	var cur, deepest int
	inString, escaped := false, false
	for _, c := range data {
		switch {
		case inString:
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
		case c == '"':
			inString = true
		case c == '[' || c == '{':
			cur++
			deepest = max(deepest, cur)
		case c == ']' || c == '}':
			cur--
		}
	}
	return deepest
}

func objectFrom(res gjson.Result) Map {
	m := NewMap(0)
	res.ForEach(func(key, val gjson.Result) bool {
		m.Set(key.Str, valueFrom(val))
		return true
	})
	return m
}

func valueFrom(res gjson.Result) Value {
	switch res.Type {
	case gjson.False:
		return Bool(false)
	case gjson.True:
		return Bool(true)
	case gjson.Number:
		return Value{kind: KindNumber, str: res.Raw}
	case gjson.String:
		return String(res.Str)
	case gjson.JSON:
		if res.IsArray() {
			items := make([]Value, 0)
			res.ForEach(func(_, val gjson.Result) bool {
				items = append(items, valueFrom(val))
				return true
			})
			return Value{kind: KindList, list: items}
		}
		return Object(objectFrom(res))
	default:
		return Null()
	}
}

// MarshalJSON encodes m as a compact JSON object with keys in insertion order.
func (m Map) MarshalJSON() ([]byte, error) {
	return m.AppendJSON(nil), nil
}

// UnmarshalJSON decodes a JSON object into m, replacing its contents.
func (m *Map) UnmarshalJSON(data []byte) error {
	parsed, err := Parse(data)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// AppendJSON appends the compact JSON encoding of m to dst.
func (m Map) AppendJSON(dst []byte) []byte {
	dst = append(dst, '{')
	first := true
	m.Range(func(k string, v Value) bool {
		if !first {
			dst = append(dst, ',')
		}
		first = false
		dst = gjson.AppendJSONString(dst, k)
		dst = append(dst, ':')
		dst = v.AppendJSON(dst)
		return true
	})
	return append(dst, '}')
}

// MarshalJSON encodes v as compact JSON.
func (v Value) MarshalJSON() ([]byte, error) {
	return v.AppendJSON(nil), nil
}

// UnmarshalJSON decodes any JSON value into v.
func (v *Value) UnmarshalJSON(data []byte) error {
	parsed, err := ParseValue(data)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// AppendJSON appends the compact JSON encoding of v to dst.
func (v Value) AppendJSON(dst []byte) []byte {
	switch v.kind {
	case KindBool:
		if v.b {
			return append(dst, "true"...)
		}
		return append(dst, "false"...)
	case KindNumber:
		return append(dst, v.str...)
	case KindString:
		return gjson.AppendJSONString(dst, v.str)
	case KindList:
		dst = append(dst, '[')
		for i, it := range v.list {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = it.AppendJSON(dst)
		}
		return append(dst, ']')
	case KindObject:
		return v.obj.AppendJSON(dst)
	default:
		return append(dst, "null"...)
	}
}
