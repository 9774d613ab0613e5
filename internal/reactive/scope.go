package reactive

// Scope collects subscriptions and releases them together.
type Scope struct {
	subs   []Subscription
	closed bool
}

// Add registers sub with the scope. Adding to a closed scope releases sub
// immediately.
func (s *Scope) Add(sub Subscription) {
	if sub == nil {
		return
	}
	if s.closed {
		sub.Unsubscribe()
		return
	}
	s.subs = append(s.subs, sub)
}

// Close releases every subscription in reverse order of registration.
// Closing twice is a no-op.
func (s *Scope) Close() {
	if s.closed {
		return
	}
	s.closed = true
	for i := len(s.subs) - 1; i >= 0; i-- {
		s.subs[i].Unsubscribe()
	}
	s.subs = nil
}

// Closed reports whether Close has run.
func (s *Scope) Closed() bool {
	return s.closed
}
