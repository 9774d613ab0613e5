package reactive

// Link keeps two cells consistent. A change on either side is mapped and
// written to the other; the write does not bounce back.
type Link struct {
	busy       bool
	suppressed bool
	subs       []Subscription
}

// Connect links primary and secondary. The secondary is seeded silently from
// the primary. forward maps primary values to the secondary and backward
// maps them the other way.
func Connect[A, B any](primary *Value[A], secondary *Value[B], forward func(A) B, backward func(B) A) *Link {
	l := &Link{}
	secondary.SetSilently(forward(primary.Get()))

	l.subs = append(l.subs,
		primary.Subscribe(func(a A) {
			l.propagate(func() { secondary.Set(forward(a)) })
		}),
		secondary.Subscribe(func(b B) {
			l.propagate(func() { primary.Set(backward(b)) })
		}),
	)
	return l
}

// Passthrough links two cells of the same type without mapping.
func Passthrough[T any](primary, secondary *Value[T]) *Link {
	identity := func(v T) T { return v }
	return Connect(primary, secondary, identity, identity)
}

// Suppress runs fn with propagation through this link disabled.
func (l *Link) Suppress(fn func()) {
	prev := l.suppressed
	l.suppressed = true
	defer func() { l.suppressed = prev }()
	fn()
}

// Unsubscribe detaches the link from both cells.
func (l *Link) Unsubscribe() {
	for _, sub := range l.subs {
		sub.Unsubscribe()
	}
	l.subs = nil
}

func (l *Link) propagate(write func()) {
	if l.busy || l.suppressed {
		return
	}
	l.busy = true
	defer func() { l.busy = false }()
	write()
}
