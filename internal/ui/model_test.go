package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/keyup/internal/config"
	"github.com/renato0307/keyup/internal/keyup"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestModel(t *testing.T, keysConfig config.KeyBindingsConfig) (*Model, *keyup.Window, *keyup.Lifetime) {
	t.Helper()
	window := keyup.NewWindow()
	lifetime := keyup.NewLifetime()
	t.Cleanup(lifetime.Close)

	m, err := NewModel(window, lifetime, keysConfig, false)
	require.NoError(t, err)
	return m, window, lifetime
}

func TestModel_RegistersOnCreation(t *testing.T) {
	_, window, _ := newTestModel(t, nil)

	assert.Equal(t, 1, window.Len(keyup.KeyUp))
}

func TestModel_CounterKeys(t *testing.T) {
	m, _, _ := newTestModel(t, nil)

	m.Update(runeKey("+"))
	m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m.Update(runeKey("k"))
	m.Update(runeKey("-"))
	m.Update(runeKey("K")) // case-sensitive, unbound

	assert.Equal(t, 2, m.Counter())
}

func TestModel_DialogSubmitResetsCounter(t *testing.T) {
	m, window, _ := newTestModel(t, nil)

	m.Update(runeKey("+"))
	m.Update(runeKey("+"))
	m.Update(runeKey("r"))

	require.True(t, m.Dialog().IsOpen())
	assert.Equal(t, 2, window.Len(keyup.KeyUp))
	assert.Contains(t, m.View(), "Reset counter?")

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.True(t, m.Dialog().IsOpen())

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, 0, m.Counter())
	assert.False(t, m.Dialog().IsOpen())
	assert.Equal(t, 1, window.Len(keyup.KeyUp))
	assert.NotContains(t, m.View(), "Reset counter?")
}

func TestModel_DialogEscapeKeepsCounter(t *testing.T) {
	m, window, _ := newTestModel(t, nil)

	m.Update(runeKey("+"))
	m.Update(runeKey("r"))
	m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	assert.Equal(t, 1, m.Counter())
	assert.False(t, m.Dialog().IsOpen())
	assert.Equal(t, 1, window.Len(keyup.KeyUp))

	// dialog bindings are gone once it is closed
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, 1, m.Counter())
}

func TestModel_QuitReleasesEverything(t *testing.T) {
	m, window, lifetime := newTestModel(t, nil)

	m.Update(runeKey("r"))
	require.Equal(t, 2, window.Len(keyup.KeyUp))

	_, cmd := m.Update(runeKey("q"))

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, lifetime.Closed())
	assert.Equal(t, 0, window.Len(keyup.KeyUp))
	assert.False(t, m.Dialog().IsOpen())
	assert.Empty(t, m.View())
}

func TestModel_ForcedTeardownReleasesBindings(t *testing.T) {
	m, window, lifetime := newTestModel(t, nil)
	m.Update(runeKey("r"))

	lifetime.Close()

	assert.Equal(t, 0, window.Len(keyup.KeyUp))
	assert.False(t, m.Dialog().IsOpen())

	m.Update(runeKey("+"))
	assert.Equal(t, 0, m.Counter())
}

func TestModel_CustomKeys(t *testing.T) {
	m, _, _ := newTestModel(t, config.KeyBindingsConfig{
		"increment": {"i"},
	})

	m.Update(runeKey("+"))
	m.Update(runeKey("i"))

	assert.Equal(t, 1, m.Counter())
}

func TestModel_ToggleHelp(t *testing.T) {
	m, _, _ := newTestModel(t, nil)
	assert.NotContains(t, m.View(), "confirm")

	m.Update(runeKey("?"))

	assert.Contains(t, m.View(), "confirm")
}

func TestModel_NonKeyMessages(t *testing.T) {
	m, _, _ := newTestModel(t, nil)

	_, cmd := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	assert.Nil(t, cmd)
	assert.Nil(t, m.Init())
}
