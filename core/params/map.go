package params

// Map is an ordered mapping from string keys to Values. Keys are unique and
// iterate in insertion order. The zero Map is empty and ready to use.
//
// Like a Go map, a Map is a reference: copies made after the first Set share
// its entries, so a mutation through one copy is seen by all. Use Clone for an
// independent copy.
type Map struct {
	p *mapData
}

type mapData struct {
	keys []string
	vals map[string]Value
}

// NewMap returns an empty Map with room for size entries.
func NewMap(size int) Map {
	return Map{p: &mapData{
		keys: make([]string, 0, size),
		vals: make(map[string]Value, size),
	}}
}

// Len returns the number of entries.
func (m Map) Len() int {
	if m.p == nil {
		return 0
	}
	return len(m.p.keys)
}

// Keys returns a copy of the keys in insertion order.
func (m Map) Keys() []string {
	if m.p == nil {
		return []string{}
	}
	return append([]string(nil), m.p.keys...)
}

// Get returns the value stored under key.
func (m Map) Get(key string) (Value, bool) {
	if m.p == nil {
		return Value{}, false
	}
	v, ok := m.p.vals[key]
	return v, ok
}

// Has reports whether key is present.
func (m Map) Has(key string) bool {
	_, ok := m.Get(key)
	return ok
}

// Set stores v under key. Replacing an existing key keeps its position.
func (m *Map) Set(key string, v Value) {
	if m.p == nil {
		*m = NewMap(1)
	}
	if _, ok := m.p.vals[key]; !ok {
		m.p.keys = append(m.p.keys, key)
	}
	m.p.vals[key] = v
}

// Delete removes key if present.
func (m *Map) Delete(key string) {
	if !m.Has(key) {
		return
	}
	delete(m.p.vals, key)
	for i, k := range m.p.keys {
		if k == key {
			m.p.keys = append(m.p.keys[:i], m.p.keys[i+1:]...)
			break
		}
	}
}

// Range calls fn for each entry in order until fn returns false.
func (m Map) Range(fn func(key string, v Value) bool) {
	if m.p == nil {
		return
	}
	for _, k := range m.p.keys {
		if !fn(k, m.p.vals[k]) {
			return
		}
	}
}

// Equal reports whether both maps hold the same keys with equal values.
// Key order is not significant, matching JSON object semantics.
func (m Map) Equal(o Map) bool {
	if m.Len() != o.Len() {
		return false
	}
	equal := true
	m.Range(func(k string, v Value) bool {
		ov, ok := o.Get(k)
		equal = ok && v.Equal(ov)
		return equal
	})
	return equal
}

// Clone returns a deep copy of m.
func (m Map) Clone() Map {
	c := NewMap(m.Len())
	m.Range(func(k string, v Value) bool {
		c.Set(k, v.Clone())
		return true
	})
	return c
}
