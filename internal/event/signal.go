// Package event provides zero-argument multicast notifications.
//
// A Signal keeps an ordered list of handlers. Publish calls them
// synchronously, in subscription order, on the caller's goroutine; the
// runner is single-threaded so no locking is done.
package event

// Handler is a callback invoked when a signal is published.
type Handler func()

type subscription struct {
	id      uint64
	handler Handler
}

// Signal is a named notification other systems may subscribe to.
// The zero value is ready to use.
type Signal struct {
	name   string
	subs   []subscription
	nextID uint64
}

// NewSignal creates a signal with a name used in logs and String.
func NewSignal(name string) *Signal {
	return &Signal{name: name}
}

// Name returns the signal name.
func (s *Signal) Name() string {
	return s.name
}

// String implements fmt.Stringer.
func (s *Signal) String() string {
	if s.name == "" {
		return "signal"
	}
	return s.name
}

// Subscribe registers h and returns a function that removes it again.
// Calling the returned function more than once is harmless.
func (s *Signal) Subscribe(h Handler) (unsubscribe func()) {
	if h == nil {
		return func() {}
	}
	s.nextID++
	id := s.nextID
	s.subs = append(s.subs, subscription{id: id, handler: h})

	return func() {
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

// Publish invokes every handler in subscription order.
// Handlers added or removed during Publish take effect on the next call.
func (s *Signal) Publish() {
	if len(s.subs) == 0 {
		return
	}
	subs := s.subs
	for _, sub := range subs {
		sub.handler()
	}
}

// Len returns the number of current subscribers.
func (s *Signal) Len() int {
	return len(s.subs)
}
