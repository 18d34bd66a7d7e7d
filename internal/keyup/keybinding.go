package keyup

import "github.com/charmbracelet/bubbles/key"

// FromKeyBinding expands b into one Binding per key, in the order b lists
// them. A disabled binding yields none.
func FromKeyBinding(b key.Binding, fn func()) []Binding {
	if !b.Enabled() {
		return nil
	}

	keys := b.Keys()
	bindings := make([]Binding, 0, len(keys))
	for _, k := range keys {
		bindings = append(bindings, Binding{Key: k, Fn: fn})
	}
	return bindings
}
