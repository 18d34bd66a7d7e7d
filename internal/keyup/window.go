package keyup

import (
	"slices"
	"sync"
)

// Window is an in-process Source. Events passed to Dispatch are delivered
// synchronously, one at a time, to the listeners attached for their kind.
type Window struct {
	deliver   sync.Mutex // serializes Dispatch
	listeners map[EventKind][]*Listener
	mu        sync.Mutex // guards listeners
}

// NewWindow creates a Window with no listeners.
func NewWindow() *Window {
	return &Window{
		listeners: make(map[EventKind][]*Listener),
	}
}

// AddListener attaches l for kind. Attaching the same listener twice is a no-op.
func (w *Window) AddListener(kind EventKind, l *Listener) {
	if l == nil {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if slices.Contains(w.listeners[kind], l) {
		return
	}
	w.listeners[kind] = append(w.listeners[kind], l)
}

// RemoveListener detaches l for kind. Unknown listeners are ignored.
func (w *Window) RemoveListener(kind EventKind, l *Listener) {
	w.mu.Lock()
	defer w.mu.Unlock()

	current := w.listeners[kind]
	i := slices.Index(current, l)
	if i < 0 {
		return
	}

	// Build a new slice so a snapshot taken by Dispatch stays intact
	next := make([]*Listener, 0, len(current)-1)
	next = append(next, current[:i]...)
	next = append(next, current[i+1:]...)
	if len(next) == 0 {
		delete(w.listeners, kind)
		return
	}
	w.listeners[kind] = next
}

// Dispatch delivers ev to every listener attached for kind, in attachment
// order. Listeners attached during delivery see the next event; listeners
// removed during delivery are skipped. A panic in a listener propagates to
// the caller. Dispatch must not be called from inside a listener.
func (w *Window) Dispatch(kind EventKind, ev Event) {
	w.deliver.Lock()
	defer w.deliver.Unlock()

	w.mu.Lock()
	snapshot := w.listeners[kind]
	w.mu.Unlock()

	for _, l := range snapshot {
		if !w.attached(kind, l) {
			continue
		}
		l.Handle(ev)
	}
}

// Len returns the number of listeners attached for kind
func (w *Window) Len(kind EventKind) int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.listeners[kind])
}

func (w *Window) attached(kind EventKind, l *Listener) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return slices.Contains(w.listeners[kind], l)
}
