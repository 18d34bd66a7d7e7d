package teainput

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/keyup/internal/keyup"
)

func TestEvent_Key(t *testing.T) {
	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected string
	}{
		{name: "enter", msg: tea.KeyMsg{Type: tea.KeyEnter}, expected: "enter"},
		{name: "escape", msg: tea.KeyMsg{Type: tea.KeyEsc}, expected: "esc"},
		{name: "rune", msg: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}, expected: "q"},
		{name: "upper rune", msg: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("Q")}, expected: "Q"},
		{name: "ctrl+c", msg: tea.KeyMsg{Type: tea.KeyCtrlC}, expected: "ctrl+c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Event(tt.msg).Key())
		})
	}
}

func TestFeed_DispatchesDownThenUp(t *testing.T) {
	w := keyup.NewWindow()
	var got []string

	w.AddListener(keyup.KeyDown, keyup.NewListener(func(ev keyup.Event) { got = append(got, "down:"+ev.Key()) }))
	w.AddListener(keyup.KeyUp, keyup.NewListener(func(ev keyup.Event) { got = append(got, "up:"+ev.Key()) }))

	handled := Feed(w, tea.KeyMsg{Type: tea.KeyEnter})

	assert.True(t, handled)
	assert.Equal(t, []string{"down:enter", "up:enter"}, got)
}

func TestFeed_IgnoresOtherMessages(t *testing.T) {
	w := keyup.NewWindow()
	calls := 0
	w.AddListener(keyup.KeyUp, keyup.NewListener(func(keyup.Event) { calls++ }))

	assert.False(t, Feed(w, tea.WindowSizeMsg{Width: 80, Height: 24}))
	assert.Equal(t, 0, calls)
}

func TestFeed_RunsFirstMatchingBinding(t *testing.T) {
	w := keyup.NewWindow()
	var got []string

	_, err := keyup.Register(w, []keyup.Binding{
		{Key: "esc", Fn: func() { got = append(got, "closeModal") }},
		{Key: "enter", Fn: func() { got = append(got, "submit") }},
	})
	require.NoError(t, err)

	Feed(w, tea.KeyMsg{Type: tea.KeyEsc})
	Feed(w, tea.KeyMsg{Type: tea.KeyTab})

	assert.Equal(t, []string{"closeModal"}, got)
}

func TestFeed_NilWindow(t *testing.T) {
	assert.NotPanics(t, func() {
		assert.False(t, Feed(nil, tea.KeyMsg{Type: tea.KeyEnter}))
	})
}
