package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/keyup/internal/adapters/teainput"
	"github.com/renato0307/keyup/internal/config"
	"github.com/renato0307/keyup/internal/keyup"
	"github.com/renato0307/keyup/internal/logging"
	"github.com/renato0307/keyup/internal/theme"
)

// Model is the root component of the demo. Its key bindings live as long as
// its lifetime; quitting closes the lifetime before the program exits.
type Model struct {
	counter  int
	dialog   *Dialog
	help     help.Model
	keys     KeyMap
	lifetime *keyup.Lifetime
	quitting bool
	window   *keyup.Window
}

// NewModel creates the root model and registers its bindings on window.
// The caller owns lifetime and must close it if the program never runs.
func NewModel(window *keyup.Window, lifetime *keyup.Lifetime, keysConfig config.KeyBindingsConfig, showHelp bool) (*Model, error) {
	m := &Model{
		help:     help.New(),
		keys:     NewKeyMap(keysConfig),
		lifetime: lifetime,
		window:   window,
	}
	m.help.ShowAll = showHelp
	m.dialog = NewDialog(window, m.keys, "Reset counter?", "The counter goes back to zero.", m.reset)

	if _, err := keyup.Use(lifetime, window, m.bindings(), keyup.WithLogger(logging.Logger)); err != nil {
		return nil, fmt.Errorf("failed to register key bindings: %w", err)
	}
	return m, nil
}

// bindings returns the app-level bindings in priority order
func (m *Model) bindings() []keyup.Binding {
	var bindings []keyup.Binding
	bindings = append(bindings, keyup.FromKeyBinding(m.keys.Quit, m.quit)...)
	bindings = append(bindings, keyup.FromKeyBinding(m.keys.Help, m.toggleHelp)...)
	bindings = append(bindings, keyup.FromKeyBinding(m.keys.OpenDialog, m.openDialog)...)
	bindings = append(bindings, keyup.FromKeyBinding(m.keys.Increment, func() { m.counter++ })...)
	bindings = append(bindings, keyup.FromKeyBinding(m.keys.Decrement, func() { m.counter-- })...)
	return bindings
}

func (m *Model) quit() {
	m.quitting = true
}

func (m *Model) toggleHelp() {
	m.help.ShowAll = !m.help.ShowAll
}

func (m *Model) openDialog() {
	if err := m.dialog.Open(m.lifetime); err != nil {
		logging.Logger.Error("Failed to open dialog", "error", err)
	}
}

func (m *Model) reset() {
	logging.Logger.Info("Counter reset", "previous", m.counter)
	m.counter = 0
}

// Counter returns the current counter value
func (m *Model) Counter() int {
	return m.counter
}

// Dialog returns the confirmation dialog
func (m *Model) Dialog() *Dialog {
	return m.dialog
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	case tea.KeyMsg:
		teainput.Feed(m.window, msg)
		if m.quitting {
			m.lifetime.Close()
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(theme.TitleStyle.Render("keyup"))
	b.WriteString("\n")
	b.WriteString(theme.MutedStyle.Render("counter: "))
	b.WriteString(theme.CounterStyle.Render(fmt.Sprintf("%d", m.counter)))
	b.WriteString("\n")

	if m.dialog.IsOpen() {
		b.WriteString("\n")
		b.WriteString(m.dialog.View())
		b.WriteString("\n")
	}

	b.WriteString(theme.HelpStyle.Render(m.help.View(m.keys)))
	return b.String()
}
