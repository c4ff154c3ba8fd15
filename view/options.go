package view

import (
	"log/slog"

	"github.com/odvcencio/furry-store/state"
)

// Option configures a Component.
type Option func(*Component)

// WithScheduler routes re-renders through scheduler. Invalidations are
// coalesced until the scheduled render runs. A nil scheduler renders
// synchronously.
func WithScheduler(scheduler state.Scheduler) Option {
	return func(c *Component) {
		c.scheduler = scheduler
	}
}

// WithName labels the component in logs.
func WithName(name string) Option {
	return func(c *Component) {
		c.name = name
	}
}

// WithLogger sets the logger for render diagnostics. A nil logger is ignored.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Component) {
		if logger != nil {
			c.logger = logger
		}
	}
}
