// Package reactive provides observable value cells and the bidirectional
// links that keep pairs of them consistent.
package reactive

// Subscription releases a listener registration.
type Subscription interface {
	Unsubscribe()
}

// Listener is called synchronously with the new value after a change.
type Listener[T any] func(T)

// Value is an observable cell. Listeners run synchronously, in registration
// order, before Set returns. It is not safe for concurrent use.
type Value[T any] struct {
	current T
	equal   func(a, b T) bool
	subs    []listenerEntry[T]
	nextID  int
}

type listenerEntry[T any] struct {
	id int
	fn Listener[T]
}

// NewValue creates a cell holding initial. equal decides whether a Set is a
// change; nil means every Set notifies.
func NewValue[T any](initial T, equal func(a, b T) bool) *Value[T] {
	return &Value[T]{current: initial, equal: equal}
}

// NewComparable creates a cell for comparable types using ==.
func NewComparable[T comparable](initial T) *Value[T] {
	return NewValue(initial, func(a, b T) bool { return a == b })
}

// Get returns the current value.
func (v *Value[T]) Get() T {
	return v.current
}

// Set stores next and notifies listeners when it differs from the current
// value.
func (v *Value[T]) Set(next T) {
	if v.equal != nil && v.equal(v.current, next) {
		return
	}
	v.current = next
	v.notify(next)
}

// SetSilently stores next without notifying anyone.
func (v *Value[T]) SetSilently(next T) {
	v.current = next
}

// Subscribe registers fn for change notifications.
func (v *Value[T]) Subscribe(fn Listener[T]) Subscription {
	if fn == nil {
		return noopSubscription{}
	}
	v.nextID++
	id := v.nextID
	v.subs = append(v.subs, listenerEntry[T]{id: id, fn: fn})

	return subscription{
		cancel: func() {
			for i, entry := range v.subs {
				if entry.id == id {
					v.subs = append(v.subs[:i:i], v.subs[i+1:]...)
					return
				}
			}
		},
	}
}

// Listeners reports how many listeners are registered.
func (v *Value[T]) Listeners() int {
	return len(v.subs)
}

func (v *Value[T]) notify(next T) {
	handlers := append([]listenerEntry[T](nil), v.subs...)
	for _, entry := range handlers {
		entry.fn(next)
	}
}

type noopSubscription struct{}

func (noopSubscription) Unsubscribe() {}

type subscription struct {
	cancel func()
}

func (s subscription) Unsubscribe() {
	if s.cancel != nil {
		s.cancel()
	}
}
