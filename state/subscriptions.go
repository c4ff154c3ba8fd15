package state

import "sync"

// Subscriptions tracks and clears multiple unsubscribe callbacks.
// The zero value is ready to use.
type Subscriptions struct {
	mu     sync.Mutex
	unsubs []func()
}

// Add registers an unsubscribe callback.
func (s *Subscriptions) Add(unsub func()) {
	if s == nil || unsub == nil {
		return
	}
	s.mu.Lock()
	s.unsubs = append(s.unsubs, unsub)
	s.mu.Unlock()
}

// Subscribe registers fn on sub and tracks the unsubscribe.
func (s *Subscriptions) Subscribe(sub Subscribable, fn func()) {
	if s == nil || sub == nil || fn == nil {
		return
	}
	s.Add(sub.Subscribe(fn))
}

// Len returns the number of tracked callbacks.
func (s *Subscriptions) Len() int {
	if s == nil {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.unsubs)
}

// Clear unsubscribes all tracked callbacks, most recent first.
func (s *Subscriptions) Clear() {
	if s == nil {
		return
	}
	s.mu.Lock()
	unsubs := s.unsubs
	s.unsubs = nil
	s.mu.Unlock()
	for i := len(unsubs) - 1; i >= 0; i-- {
		unsubs[i]()
	}
}
