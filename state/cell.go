package state

import "sync"

// Subscribable emits change notifications.
type Subscribable interface {
	Subscribe(fn func()) func()
}

type cellSubscriber struct {
	id int
	fn func()
}

// Cell holds a value and notifies subscribers when it changes.
// Subscribers run in registration order, outside the cell lock.
type Cell[T any] struct {
	mu    sync.Mutex
	value T
	subs  []cellSubscriber
	next  int
	equal EqualFunc[T]
}

// NewCell creates a cell with an initial value.
// Redundant sets are suppressed using Same until SetEqualFunc replaces it.
func NewCell[T any](initial T) *Cell[T] {
	return &Cell[T]{value: initial, equal: EqualSame[T]}
}

// SetEqualFunc configures the equality check used to suppress redundant updates.
// A nil fn disables suppression.
func (c *Cell[T]) SetEqualFunc(fn EqualFunc[T]) {
	if c == nil {
		return
	}
	c.mu.Lock()
	c.equal = fn
	c.mu.Unlock()
}

// Get returns the current value.
func (c *Cell[T]) Get() T {
	if c == nil {
		var zero T
		return zero
	}
	c.mu.Lock()
	value := c.value
	c.mu.Unlock()
	return value
}

// Set updates the value and notifies subscribers if it changed.
func (c *Cell[T]) Set(value T) bool {
	if c == nil {
		return false
	}
	c.mu.Lock()
	if c.equal != nil && c.equal(c.value, value) {
		c.mu.Unlock()
		return false
	}
	c.value = value
	subs := make([]cellSubscriber, len(c.subs))
	copy(subs, c.subs)
	c.mu.Unlock()

	for _, sub := range subs {
		sub.fn()
	}
	return true
}

// Update replaces the value using fn.
// fn runs outside the cell lock; Update is not atomic across goroutines.
func (c *Cell[T]) Update(fn func(T) T) bool {
	if c == nil || fn == nil {
		return false
	}
	return c.Set(fn(c.Get()))
}

// Subscribe registers a listener for change notifications.
// The returned func removes it and is safe to call more than once.
func (c *Cell[T]) Subscribe(fn func()) func() {
	if c == nil || fn == nil {
		return func() {}
	}
	c.mu.Lock()
	id := c.next
	c.next++
	c.subs = append(c.subs, cellSubscriber{id: id, fn: fn})
	c.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			c.mu.Lock()
			for i, sub := range c.subs {
				if sub.id == id {
					c.subs = append(c.subs[:i:i], c.subs[i+1:]...)
					break
				}
			}
			c.mu.Unlock()
		})
	}
}
