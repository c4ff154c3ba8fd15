// Package bind connects a store.Store to view components.
//
// A binding reads the current value during render, subscribes on mount, and
// pushes every notification into component state. Because the store drops
// no-op writes before notifying, a bound component re-renders exactly when
// the store reports a change for its key.
package bind

import (
	"github.com/odvcencio/furry-store/state"
	"github.com/odvcencio/furry-store/store"
	"github.com/odvcencio/furry-store/view"
)

// Setter writes through to the store. For a field key it behaves like
// store.Store.Set; for store.All it behaves like store.Store.Merge.
//
// A component receives the same *Setter on every render while its store and
// key stay the same.
type Setter struct {
	store *store.Store
	key   store.Key
}

// Key returns the key the setter writes.
func (s *Setter) Key() store.Key {
	return s.key
}

// Set writes value and reports whether the store accepted it. A whole-record
// setter takes a store.Record or map[string]any; other values are ignored.
func (s *Setter) Set(value any) bool {
	if s == nil || s.store == nil {
		return false
	}
	if !s.key.IsAll() {
		return s.store.Set(s.key.Name(), value)
	}
	switch partial := value.(type) {
	case store.Record:
		return s.store.Merge(partial)
	case map[string]any:
		return s.store.Merge(partial)
	}
	return false
}

// Use binds the component being rendered to key. It returns the field value,
// or the whole record for store.All, with a stable setter.
//
// Every store notification re-renders, whatever equality rule the store was
// built with.
func Use(f *view.Frame, s *store.Store, key store.Key) (any, *Setter) {
	current := view.UseCell(f, read(s, key))
	current.SetEqualFunc(nil)
	setter := view.UseMemo(f, []any{s, key}, func() *Setter {
		return &Setter{store: s, key: key}
	})
	view.UseEffect(f, []any{s, key}, func() func() {
		if s == nil {
			return nil
		}
		unsub := s.Subscribe(key, func(v any) {
			current.Set(v)
		})
		if v := read(s, key); !state.Same(current.Get(), v) {
			current.Set(v)
		}
		return unsub
	})
	return current.Get(), setter
}

// Field binds to one field.
func Field(f *view.Frame, s *store.Store, name string) (any, *Setter) {
	return Use(f, s, store.Field(name))
}

// FieldOf binds to one field holding a V. A missing or mistyped field reads
// as V's zero value.
func FieldOf[V any](f *view.Frame, s *store.Store, name string) (V, *Setter) {
	v, setter := Use(f, s, store.Field(name))
	typed, _ := v.(V)
	return typed, setter
}

// Record binds to the whole record.
func Record(f *view.Frame, s *store.Store) (store.Record, *Setter) {
	v, setter := Use(f, s, store.All)
	rec, _ := v.(store.Record)
	return rec, setter
}

func read(s *store.Store, key store.Key) any {
	if s == nil {
		return nil
	}
	if key.IsAll() {
		return s.Record()
	}
	return s.Get(key.Name())
}
