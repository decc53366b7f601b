package params

import (
	"math"
	"math/big"
	"strconv"

	"github.com/tidwall/gjson"
)

// Kind identifies which JSON type a Value holds.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindList
	KindObject
)

// String returns the JSON name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindList:
		return "list"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Value is a single JSON-shaped value. The zero Value is null.
type Value struct {
	kind Kind
	str  string // string content, or the literal of a number
	b    bool
	list []Value
	obj  Map
}

// Null returns the null value.
func Null() Value { return Value{} }

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// String returns a string value.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Int returns a number value holding an integer.
func Int(n int64) Value {
	return Value{kind: KindNumber, str: strconv.FormatInt(n, 10)}
}

// Float returns a number value. NaN and infinities have no JSON form and
// become null.
func Float(f float64) Value {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Null()
	}
	return Value{kind: KindNumber, str: strconv.FormatFloat(f, 'g', -1, 64)}
}

// Number returns a number value holding the given JSON literal verbatim.
func Number(literal string) (Value, error) {
	if !gjson.Valid(literal) || gjson.Parse(literal).Type != gjson.Number {
		return Null(), ErrInvalidNumber
	}
	return Value{kind: KindNumber, str: literal}, nil
}

// List returns a list value. The items slice is copied.
func List(items ...Value) Value {
	return Value{kind: KindList, list: append([]Value(nil), items...)}
}

// Object returns an object value wrapping m.
func Object(m Map) Value { return Value{kind: KindObject, obj: m} }

// Kind reports the JSON type held by v.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// Str returns the string content of a string value, or the literal of a
// number value. Other kinds return "".
func (v Value) Str() string {
	if v.kind == KindString || v.kind == KindNumber {
		return v.str
	}
	return ""
}

// BoolValue returns the boolean held by v and whether v is a boolean.
func (v Value) BoolValue() (bool, bool) {
	return v.b, v.kind == KindBool
}

// Float64 returns the number held by v as float64.
func (v Value) Float64() (float64, bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	f, err := strconv.ParseFloat(v.str, 64)
	return f, err == nil
}

// Int64 returns the number held by v as int64. Numbers with a fraction or
// exponent, and integers outside the int64 range, report false.
func (v Value) Int64() (int64, bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	n, err := strconv.ParseInt(v.str, 10, 64)
	return n, err == nil
}

// Items returns the elements of a list value. The slice must not be modified.
func (v Value) Items() []Value {
	if v.kind != KindList {
		return nil
	}
	return v.list
}

// Fields returns the map of an object value.
func (v Value) Fields() (Map, bool) {
	return v.obj, v.kind == KindObject
}

// Equal reports whether v and o hold the same JSON value. Numbers compare by
// numeric value, exactly for integers; objects compare without regard to key
// order.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.b == o.b
	case KindString:
		return v.str == o.str
	case KindNumber:
		if v.str == o.str {
			return true
		}
		if a, ok := v.Int64(); ok {
			if b, ok := o.Int64(); ok {
				return a == b
			}
		}
		return numbersEqual(v.str, o.str)
	case KindList:
		if len(v.list) != len(o.list) {
			return false
		}
		for i := range v.list {
			if !v.list[i].Equal(o.list[i]) {
				return false
			}
		}
		return true
	case KindObject:
		return v.obj.Equal(o.obj)
	}
	return false
}

// Clone returns a deep copy of v.
func (v Value) Clone() Value {
	switch v.kind {
	case KindList:
		items := make([]Value, len(v.list))
		for i, it := range v.list {
			items[i] = it.Clone()
		}
		return Value{kind: KindList, list: items}
	case KindObject:
		return Value{kind: KindObject, obj: v.obj.Clone()}
	}
	return v
}

// numberPrecision covers every JSON integer literal up to 77 digits exactly.
const numberPrecision = 256

func numbersEqual(a, b string) bool {
	x, _, errA := big.ParseFloat(a, 10, numberPrecision, big.ToNearestEven)
	y, _, errB := big.ParseFloat(b, 10, numberPrecision, big.ToNearestEven)
	return errA == nil && errB == nil && x.Cmp(y) == 0
}
