// Package store implements an observable key-value record.
//
// A Store owns one Record and a registry of listeners. Writes that do not
// change a field under shallow identity (see [state.Same]) are dropped before
// anything is notified. Accepted writes replace the Record with a new map and
// then notify, synchronously and in registration order, the listeners of each
// changed field followed by the listeners on [All].
//
// Listeners run after the store lock is released, so they may read or write
// the store. Registry changes made by a listener take effect from the next
// write; the pass in flight keeps the listeners it started with.
package store

import (
	"context"
	"log/slog"
	"maps"
	"slices"
	"sync"

	"github.com/odvcencio/furry-store/state"
)

// Store is an observable record. Create one with New.
type Store struct {
	mu        sync.Mutex
	record    Record
	listeners registry
	equal     func(a, b any) bool
	logger    *slog.Logger
}

// New creates a store holding a shallow copy of initial.
func New(initial Record, opts ...Option) *Store {
	cfg := config{
		logger: slog.Default(),
		equal:  state.Same,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return &Store{
		record: initial.Clone(),
		equal:  cfg.equal,
		logger: cfg.logger,
	}
}

// Get returns the value of a field, or nil when it is absent.
func (s *Store) Get(key string) any {
	v, _ := s.Lookup(key)
	return v
}

// Lookup returns the value of a field and whether it is present.
func (s *Store) Lookup(key string) (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.record[key]
	return v, ok
}

// Has reports whether the field is present.
func (s *Store) Has(key string) bool {
	_, ok := s.Lookup(key)
	return ok
}

// Len returns the number of fields.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.record)
}

// Record returns the current record. The same map is returned until the
// next accepted write, so callers may cache by reference.
func (s *Store) Record() Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.record
}

// Value returns a field converted to V. ok is false when the field is absent
// or holds another type.
func Value[V any](s *Store, key string) (V, bool) {
	v, present := s.Lookup(key)
	typed, ok := v.(V)
	return typed, present && ok
}

// Set writes one field. It reports whether the write was accepted.
func (s *Store) Set(key string, value any) bool {
	s.mu.Lock()
	current, present := s.record[key]
	if unchanged(present, current, value, s.equal) {
		s.mu.Unlock()
		s.logWrite("write", key, nil, nil)
		return false
	}
	next := s.record.Clone()
	next[key] = value
	s.record = next
	batches := []batch{
		{key: key, value: value, listeners: s.listeners.snapshot(Field(key))},
		{key: "*", value: next, listeners: s.listeners.snapshot(All)},
	}
	s.mu.Unlock()

	s.logWrite("write", key, []string{key}, batches)
	s.notify(batches)
	return true
}

// Merge shallowly merges partial into the record. Fields of partial that are
// the same as the stored values are not reported as changed. It reports
// whether any field changed; when none did nothing is written or notified.
func (s *Store) Merge(partial Record) bool {
	s.mu.Lock()
	changed := s.diff(partial)
	if len(changed) == 0 {
		s.mu.Unlock()
		s.logWrite("merge", "*", nil, nil)
		return false
	}
	next := s.record.Clone()
	for k, v := range partial {
		next[k] = v
	}
	s.record = next
	var batches []batch
	for _, k := range s.listeners.fieldKeys(changed) {
		batches = append(batches, batch{key: k.name, value: next[k.name], listeners: s.listeners.snapshot(k)})
	}
	batches = append(batches, batch{key: "*", value: next, listeners: s.listeners.snapshot(All)})
	s.mu.Unlock()

	s.logWrite("merge", "*", slices.Sorted(maps.Keys(changed)), batches)
	s.notify(batches)
	return true
}

// Delete removes a field. Removing a present field is a change: its
// listeners receive nil and listeners on All the updated record.
func (s *Store) Delete(key string) bool {
	s.mu.Lock()
	if _, ok := s.record[key]; !ok {
		s.mu.Unlock()
		s.logWrite("delete", key, nil, nil)
		return false
	}
	next := s.record.Clone()
	delete(next, key)
	s.record = next
	batches := []batch{
		{key: key, value: nil, listeners: s.listeners.snapshot(Field(key))},
		{key: "*", value: next, listeners: s.listeners.snapshot(All)},
	}
	s.mu.Unlock()

	s.logWrite("delete", key, []string{key}, batches)
	s.notify(batches)
	return true
}

// On registers l for key. Registering the same listener again, under the
// same or another key, adds an independent registration. A nil l is ignored.
func (s *Store) On(key Key, l *Listener) {
	if l == nil {
		return
	}
	s.mu.Lock()
	s.listeners.add(key, l)
	s.mu.Unlock()
}

// Off removes one registration of l under key. Unknown pairs are ignored.
func (s *Store) Off(key Key, l *Listener) {
	if l == nil {
		return
	}
	s.mu.Lock()
	s.listeners.remove(key, l)
	s.mu.Unlock()
}

// Subscribe registers fn for key and returns a func that removes it.
// The returned func is safe to call more than once.
func (s *Store) Subscribe(key Key, fn func(any)) func() {
	l := NewListener(fn)
	s.On(key, l)
	var once sync.Once
	return func() {
		once.Do(func() { s.Off(key, l) })
	}
}

// Listeners returns the number of registrations under key.
func (s *Store) Listeners(key Key) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listeners.count(key)
}

// diff returns the names of fields in partial that differ from the record.
// A field absent from the record differs unless the new value is nil.
func (s *Store) diff(partial Record) map[string]struct{} {
	var changed map[string]struct{}
	for k, v := range partial {
		current, present := s.record[k]
		if unchanged(present, current, v, s.equal) {
			continue
		}
		if changed == nil {
			changed = make(map[string]struct{}, len(partial))
		}
		changed[k] = struct{}{}
	}
	return changed
}

// batch is the listeners of one key, snapshotted under the lock, and the
// value they receive. Key "*" stands for All in logs.
type batch struct {
	key       string
	value     any
	listeners []*Listener
}

func (s *Store) debugEnabled() bool {
	return s.logger != nil && s.logger.Enabled(context.Background(), slog.LevelDebug)
}

// logWrite records the outcome of a mutation. A nil changed means the
// mutation was suppressed.
func (s *Store) logWrite(op, key string, changed []string, batches []batch) {
	if !s.debugEnabled() {
		return
	}
	outcome := "accepted"
	if changed == nil {
		outcome = "suppressed"
		changed = []string{}
	}
	n := 0
	for _, b := range batches {
		n += len(b.listeners)
	}
	s.logger.LogAttrs(context.Background(), slog.LevelDebug, "store: "+op+" "+outcome,
		slog.String("key", key),
		slog.Any("changed", changed),
		slog.Int("listeners", n))
}

// notify calls every listener of batches in order, logging each call when
// debug output is enabled.
func (s *Store) notify(batches []batch) {
	debug := s.debugEnabled()
	for _, b := range batches {
		for _, l := range b.listeners {
			if debug {
				s.logger.LogAttrs(context.Background(), slog.LevelDebug, "store: notify",
					slog.String("listener", l.ID()),
					slog.String("key", b.key))
			}
			l.call(b.value)
		}
	}
}

// unchanged reports whether writing value over current is a no-op. Writing
// nil to an absent field is a no-op because reads already return nil.
func unchanged(present bool, current, value any, equal func(a, b any) bool) bool {
	if !present {
		return value == nil
	}
	if equal == nil {
		return state.Same(current, value)
	}
	return equal(current, value)
}
