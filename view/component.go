// Package view is a minimal hook-based view host.
//
// A Component owns a render function and the hook slots it uses. Mount runs
// the first render and its effects; Unmount runs effect cleanups and stops
// reacting to state. Local state created with UseCell re-renders the
// component when it changes.
//
// Components are not safe for concurrent use. Drive them from one goroutine,
// or route renders through a state.Queue flushed by that goroutine.
package view

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/oklog/ulid/v2"

	"github.com/odvcencio/furry-store/state"
)

// maxRenderPasses bounds re-renders requested while a render is running.
const maxRenderPasses = 32

// RenderFunc draws a component. It must call the same hooks in the same
// order on every render.
type RenderFunc func(f *Frame)

// Component is a mounted unit of rendering with hook state.
type Component struct {
	id        ulid.ULID
	name      string
	render    RenderFunc
	scheduler state.Scheduler
	logger    *slog.Logger

	slots   []any
	effects []*effectSlot
	subs    state.Subscriptions

	mounted   bool
	rendering bool
	dirty     bool
	renders   int
	pending   atomic.Bool
}

// New creates an unmounted component.
func New(render RenderFunc, opts ...Option) *Component {
	c := &Component{
		id:     ulid.Make(),
		render: render,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

// ID returns the component's unique identifier.
func (c *Component) ID() string {
	return c.id.String()
}

// Name returns the label set by WithName.
func (c *Component) Name() string {
	return c.name
}

// Renders returns how many times the render function has run.
func (c *Component) Renders() int {
	return c.renders
}

// Mounted reports whether the component is mounted.
func (c *Component) Mounted() bool {
	return c.mounted
}

// Mount renders the component for the first time and runs its effects.
// Mounting a mounted component does nothing.
func (c *Component) Mount() {
	if c == nil || c.mounted {
		return
	}
	c.mounted = true
	c.renderNow()
}

// Unmount runs effect cleanups in reverse order and drops hook state.
// A later Mount starts from fresh state.
func (c *Component) Unmount() {
	if c == nil || !c.mounted {
		return
	}
	c.mounted = false
	for i := len(c.effects) - 1; i >= 0; i-- {
		c.effects[i].cleanup()
	}
	c.subs.Clear()
	c.slots = nil
	c.effects = nil
	c.pending.Store(false)
}

// Invalidate requests a render pass.
func (c *Component) Invalidate() {
	if c == nil || !c.mounted {
		return
	}
	if c.rendering {
		c.dirty = true
		return
	}
	if c.scheduler == nil {
		c.renderNow()
		return
	}
	if c.pending.CompareAndSwap(false, true) {
		c.scheduler.Schedule(func() {
			c.pending.Store(false)
			if c.mounted {
				c.renderNow()
			}
		})
	}
}

func (c *Component) renderNow() {
	if c.rendering {
		c.dirty = true
		return
	}
	c.rendering = true
	defer func() { c.rendering = false }()

	for pass := 0; pass < maxRenderPasses; pass++ {
		c.dirty = false
		f := &Frame{component: c}
		if c.render != nil {
			c.render(f)
		}
		c.renders++
		f.finish()
		if !c.mounted || !c.dirty {
			return
		}
	}
	c.logger.LogAttrs(context.Background(), slog.LevelWarn, "view: render loop cut short",
		slog.String("component", c.label()),
		slog.Int("passes", maxRenderPasses))
}

func (c *Component) label() string {
	if c.name != "" {
		return c.name
	}
	return c.ID()
}
