package store

import "github.com/oklog/ulid/v2"

// Listener wraps a change callback. Registrations are matched by the
// *Listener pointer, so keep the handle passed to On to later call Off.
//
// A field listener receives the new field value. A listener on All
// receives the updated Record.
type Listener struct {
	id ulid.ULID
	fn func(any)
}

// NewListener wraps fn. A nil fn yields a listener that does nothing.
func NewListener(fn func(any)) *Listener {
	return &Listener{id: ulid.Make(), fn: fn}
}

// ListenerFunc wraps a typed callback. Values that are not a V, including
// nil, arrive as V's zero value.
func ListenerFunc[V any](fn func(V)) *Listener {
	if fn == nil {
		return NewListener(nil)
	}
	return NewListener(func(value any) {
		v, _ := value.(V)
		fn(v)
	})
}

// ID returns a unique identifier for logging.
func (l *Listener) ID() string {
	if l == nil {
		return ""
	}
	return l.id.String()
}

func (l *Listener) call(value any) {
	if l.fn != nil {
		l.fn(value)
	}
}
