package camara

import "sort"

// Extras holds object keys a record schema did not declare. Records keep them
// so that newer server fields survive a coerce/dump round trip.
//
// Extras is treated as immutable: With returns a modified copy.
type Extras map[string]any

// Get returns the raw wire value stored under key.
func (e Extras) Get(key string) (any, bool) {
	v, ok := e[key]
	return v, ok
}

// Keys returns the stored keys in ascending order.
func (e Extras) Keys() []string {
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of retained keys.
func (e Extras) Len() int { return len(e) }

// Clone returns a shallow copy, or nil for an empty set.
func (e Extras) Clone() Extras {
	if len(e) == 0 {
		return nil
	}
	out := make(Extras, len(e))
	for k, v := range e {
		out[k] = v
	}
	return out
}

// With returns a copy of e with key set to v.
func (e Extras) With(key string, v any) Extras {
	out := make(Extras, len(e)+1)
	for k, vv := range e {
		out[k] = vv
	}
	out[key] = v
	return out
}
