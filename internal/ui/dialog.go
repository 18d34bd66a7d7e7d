package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"

	"github.com/renato0307/keyup/internal/keyup"
	"github.com/renato0307/keyup/internal/logging"
	"github.com/renato0307/keyup/internal/theme"
)

// Dialog is a confirmation box. While open it owns a child lifetime holding
// its close and submit bindings; closing the dialog tears that lifetime down.
type Dialog struct {
	body     string
	help     help.Model
	keys     KeyMap
	lifetime *keyup.Lifetime
	onSubmit func()
	title    string
	window   *keyup.Window
}

// NewDialog creates a closed dialog. onSubmit runs when the user confirms.
func NewDialog(window *keyup.Window, keys KeyMap, title, body string, onSubmit func()) *Dialog {
	return &Dialog{
		body:     body,
		help:     help.New(),
		keys:     keys,
		onSubmit: onSubmit,
		title:    title,
		window:   window,
	}
}

// Open shows the dialog and registers its bindings under parent.
func (d *Dialog) Open(parent *keyup.Lifetime) error {
	if d.IsOpen() {
		return nil
	}

	life := parent.Child()
	bindings := append(
		keyup.FromKeyBinding(d.keys.DialogClose, d.Close),
		keyup.FromKeyBinding(d.keys.DialogSubmit, d.submit)...,
	)
	if _, err := keyup.Use(life, d.window, bindings, keyup.WithLogger(logging.Logger)); err != nil {
		life.Close()
		return err
	}

	d.lifetime = life
	logging.Logger.Debug("Dialog opened", "title", d.title)
	return nil
}

// Close hides the dialog and releases its bindings.
func (d *Dialog) Close() {
	if !d.IsOpen() {
		return
	}
	life := d.lifetime
	d.lifetime = nil
	life.Close()
	logging.Logger.Debug("Dialog closed", "title", d.title)
}

// IsOpen reports whether the dialog is showing. A dialog whose parent
// lifetime ended is closed.
func (d *Dialog) IsOpen() bool {
	return d.lifetime != nil && !d.lifetime.Closed()
}

func (d *Dialog) submit() {
	if d.onSubmit != nil {
		d.onSubmit()
	}
	d.Close()
}

// View renders the dialog box
func (d *Dialog) View() string {
	var b strings.Builder
	b.WriteString(theme.DialogTitleStyle.Render(d.title))
	b.WriteString("\n\n")
	b.WriteString(theme.NormalStyle.Render(d.body))
	b.WriteString("\n\n")
	b.WriteString(d.help.ShortHelpView(d.keys.DialogHelp()))
	return theme.DialogStyle.Render(b.String())
}
