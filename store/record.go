package store

import (
	"maps"
	"slices"

	"github.com/odvcencio/furry-store/state"
)

// Record is the flat set of named fields a Store manages.
// Records handed out by a Store are read-only; mutate through the Store.
type Record map[string]any

// Get returns the value for key, or nil when the field is absent.
func (r Record) Get(key string) any {
	return r[key]
}

// Keys returns the field names in sorted order.
func (r Record) Keys() []string {
	return slices.Sorted(maps.Keys(r))
}

// Clone returns a shallow copy. A nil Record clones to an empty one.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	maps.Copy(out, r)
	return out
}

// Equal reports whether both records hold the same fields with Same values.
func (r Record) Equal(other Record) bool {
	if len(r) != len(other) {
		return false
	}
	for k, v := range r {
		ov, ok := other[k]
		if !ok || !state.Same(v, ov) {
			return false
		}
	}
	return true
}
