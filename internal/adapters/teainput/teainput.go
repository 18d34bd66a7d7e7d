// Package teainput feeds Bubble Tea key messages into a keyup.Window.
package teainput

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/keyup/internal/keyup"
)

// Event adapts a tea.KeyMsg to keyup.Event.
// Key identifiers follow Bubble Tea naming: "enter", "esc", "a", "ctrl+c".
type Event tea.KeyMsg

// Key returns the Bubble Tea name of the keystroke
func (e Event) Key() string {
	return tea.KeyMsg(e).String()
}

// Feed dispatches msg to w if it is a key message and reports whether it was.
// Terminals report a keystroke once it is complete, so it is delivered as a
// key-down followed by a key-up. A nil Window consumes nothing.
func Feed(w *keyup.Window, msg tea.Msg) bool {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || w == nil {
		return false
	}

	ev := Event(keyMsg)
	w.Dispatch(keyup.KeyDown, ev)
	w.Dispatch(keyup.KeyUp, ev)
	return true
}
