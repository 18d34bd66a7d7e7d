package keyup

// EventKind names a class of events a Source delivers.
type EventKind string

const (
	KeyDown EventKind = "keydown"
	KeyUp   EventKind = "keyup"
)

// Event is the part of a platform key event the dispatcher reads.
type Event interface {
	Key() string
}

// KeyEvent is an Event carrying only its key identifier.
type KeyEvent string

// Key returns the key identifier
func (e KeyEvent) Key() string {
	return string(e)
}
