package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/renato0307/keyup/internal/config"
)

// KeyMap contains all keyboard shortcuts, grouped by the component that
// registers them.
type KeyMap struct {
	Decrement  key.Binding
	Help       key.Binding
	Increment  key.Binding
	OpenDialog key.Binding
	Quit       key.Binding

	DialogClose  key.Binding
	DialogSubmit key.Binding
}

// NewKeyMap creates a new KeyMap with all key bindings initialized.
// Pass nil for keysConfig to use default bindings.
func NewKeyMap(keysConfig config.KeyBindingsConfig) KeyMap {
	defaults := GetDefaultKeyBindings()
	return KeyMap{
		Decrement:    buildBinding("decrement", defaults, keysConfig),
		Help:         buildBinding("help", defaults, keysConfig),
		Increment:    buildBinding("increment", defaults, keysConfig),
		OpenDialog:   buildBinding("open_dialog", defaults, keysConfig),
		Quit:         buildBinding("quit", defaults, keysConfig),
		DialogClose:  buildBinding("dialog_close", defaults, keysConfig),
		DialogSubmit: buildBinding("dialog_submit", defaults, keysConfig),
	}
}

// ValidateKeyBindings checks custom overrides and the effective key set they
// produce. The app listener stays attached while the dialog is open and it is
// attached first, so a key may belong to one action only, across components.
func ValidateKeyBindings(customKeys config.KeyBindingsConfig) error {
	if err := customKeys.Validate(GetValidKeyNames()); err != nil {
		return err
	}

	owner := make(map[string]string)
	for _, def := range AllKeyDefinitions {
		keys := def.Defaults
		if custom, ok := customKeys[def.Name]; ok && len(custom) > 0 {
			keys = custom
		}
		for _, k := range keys {
			existing, found := owner[k]
			if found && existing != def.Name {
				return fmt.Errorf("key '%s' is assigned to both '%s' and '%s'", k, existing, def.Name)
			}
			owner[k] = def.Name
		}
	}
	return nil
}

// buildBinding creates a key.Binding from its definition, preferring custom keys
func buildBinding(name string, defaults map[string][]string, customKeys config.KeyBindingsConfig) key.Binding {
	def := GetKeyDefinition(name)
	if def == nil {
		panic("unknown key definition: " + name)
	}

	keys := defaults[name]
	if custom, ok := customKeys[name]; ok && len(custom) > 0 {
		keys = custom
	}

	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(keys, "/"), def.Help),
	)
}

// ShortHelp returns the bindings shown in the bottom bar
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Increment, k.Decrement, k.OpenDialog, k.Help, k.Quit}
}

// FullHelp returns all bindings, one column per component
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Increment, k.Decrement, k.OpenDialog},
		{k.Help, k.Quit},
		{k.DialogSubmit, k.DialogClose},
	}
}

// DialogHelp returns the bindings active while the dialog is open
func (k KeyMap) DialogHelp() []key.Binding {
	return []key.Binding{k.DialogSubmit, k.DialogClose}
}
