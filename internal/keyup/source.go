package keyup

// Listener receives events from a Source. Sources identify listeners by
// pointer, so the *Listener passed to AddListener must be the one passed to
// RemoveListener.
type Listener struct {
	handle func(Event)
}

// NewListener wraps fn in a Listener
func NewListener(fn func(Event)) *Listener {
	return &Listener{handle: fn}
}

// Handle delivers ev to the listener.
func (l *Listener) Handle(ev Event) {
	if l == nil || l.handle == nil {
		return
	}
	l.handle(ev)
}

// Source is a shared, externally owned stream of input events.
type Source interface {
	AddListener(kind EventKind, l *Listener)
	RemoveListener(kind EventKind, l *Listener)
}
