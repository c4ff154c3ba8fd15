package view

import (
	"fmt"
	"slices"

	"github.com/odvcencio/furry-store/state"
)

// Frame carries hook state for one render pass.
type Frame struct {
	component *Component
	cursor    int
	effects   []*effectSlot
}

// Component returns the component being rendered.
func (f *Frame) Component() *Component {
	return f.component
}

type memoSlot[T any] struct {
	deps  []any
	value T
}

type effectSlot struct {
	deps    []any
	ran     bool
	run     func() func()
	release func()
}

func (e *effectSlot) cleanup() {
	if e.release != nil {
		release := e.release
		e.release = nil
		release()
	}
}

// slot returns the hook state at the cursor, creating it with init on the
// first render.
func slot[T any](f *Frame, init func() T) T {
	c := f.component
	i := f.cursor
	f.cursor++
	if i == len(c.slots) {
		v := init()
		c.slots = append(c.slots, v)
		return v
	}
	v, ok := c.slots[i].(T)
	if !ok {
		panic(fmt.Sprintf("view: hook %d changed type from %T to %T between renders", i, c.slots[i], v))
	}
	return v
}

// finish runs effects queued by the render, in hook order.
func (f *Frame) finish() {
	for _, e := range f.effects {
		if !f.component.mounted {
			return
		}
		e.cleanup()
		e.release = e.run()
		e.ran = true
	}
}

// UseCell returns the component's local reactive cell, created with initial
// on the first render. Changing the cell invalidates the component.
func UseCell[T any](f *Frame, initial T) *state.Cell[T] {
	c := f.component
	return slot(f, func() *state.Cell[T] {
		cell := state.NewCell(initial)
		c.subs.Subscribe(cell, c.Invalidate)
		return cell
	})
}

// UseMemo returns the value built by fn, rebuilding it only when deps differ
// from the previous render. Dependencies compare with state.Same.
func UseMemo[T any](f *Frame, deps []any, fn func() T) T {
	m := slot(f, func() *memoSlot[T] {
		return &memoSlot[T]{deps: slices.Clone(deps), value: fn()}
	})
	if !depsSame(m.deps, deps) {
		m.deps = slices.Clone(deps)
		m.value = fn()
	}
	return m.value
}

// UseEffect runs fn after the render in which the component mounts and after
// any render whose deps differ from the previous ones. A nil deps runs fn
// after every render. The func returned by fn, if any, runs before the next
// run and on unmount.
func UseEffect(f *Frame, deps []any, fn func() func()) {
	c := f.component
	e := slot(f, func() *effectSlot {
		e := &effectSlot{}
		c.effects = append(c.effects, e)
		return e
	})
	if e.ran && deps != nil && depsSame(e.deps, deps) {
		return
	}
	e.deps = slices.Clone(deps)
	e.run = func() func() {
		if fn == nil {
			return nil
		}
		return fn()
	}
	f.effects = append(f.effects, e)
}

func depsSame(a, b []any) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !state.Same(a[i], b[i]) {
			return false
		}
	}
	return true
}
