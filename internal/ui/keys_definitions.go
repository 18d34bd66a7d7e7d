package ui

import (
	"sort"
	"sync"
)

// KeyDefinition defines the metadata for a configurable key binding.
// All key bindings are defined here as the single source of truth.
type KeyDefinition struct {
	Defaults []string
	Help     string
	Name     string
	Scope    string // "app" or "dialog": which component registers it
}

const (
	scopeApp    = "app"
	scopeDialog = "dialog"
)

// AllKeyDefinitions contains all configurable key bindings. Order matters:
// within a component, earlier definitions win when two share a key.
var AllKeyDefinitions = []KeyDefinition{
	// Application keys
	{Name: "quit", Defaults: []string{"q", "ctrl+c"}, Help: "quit", Scope: scopeApp},
	{Name: "help", Defaults: []string{"?"}, Help: "toggle help", Scope: scopeApp},
	{Name: "open_dialog", Defaults: []string{"r"}, Help: "reset counter", Scope: scopeApp},
	{Name: "increment", Defaults: []string{"+", "up", "k"}, Help: "increment", Scope: scopeApp},
	{Name: "decrement", Defaults: []string{"-", "down", "j"}, Help: "decrement", Scope: scopeApp},

	// Dialog keys
	{Name: "dialog_close", Defaults: []string{"esc"}, Help: "cancel", Scope: scopeDialog},
	{Name: "dialog_submit", Defaults: []string{"enter"}, Help: "confirm", Scope: scopeDialog},
}

var (
	defaultBindingsCache map[string][]string
	defaultBindingsOnce  sync.Once

	keyDefinitionsMap     map[string]KeyDefinition
	keyDefinitionsMapOnce sync.Once

	validKeyNames     []string
	validKeyNamesOnce sync.Once
)

// GetDefaultKeyBindings returns the default key bindings as a map.
// The result is cached after the first call.
func GetDefaultKeyBindings() map[string][]string {
	defaultBindingsOnce.Do(func() {
		defaultBindingsCache = make(map[string][]string, len(AllKeyDefinitions))
		for _, def := range AllKeyDefinitions {
			defaultBindingsCache[def.Name] = def.Defaults
		}
	})
	return defaultBindingsCache
}

// GetKeyDefinition returns the definition for a key by name.
// Returns nil if not found.
func GetKeyDefinition(name string) *KeyDefinition {
	keyDefinitionsMapOnce.Do(func() {
		keyDefinitionsMap = make(map[string]KeyDefinition, len(AllKeyDefinitions))
		for _, def := range AllKeyDefinitions {
			keyDefinitionsMap[def.Name] = def
		}
	})
	if def, ok := keyDefinitionsMap[name]; ok {
		return &def
	}
	return nil
}

// GetValidKeyNames returns all valid key binding names in sorted order.
// The result is cached after the first call.
func GetValidKeyNames() []string {
	validKeyNamesOnce.Do(func() {
		validKeyNames = make([]string, len(AllKeyDefinitions))
		for i, def := range AllKeyDefinitions {
			validKeyNames[i] = def.Name
		}
		sort.Strings(validKeyNames)
	})
	return validKeyNames
}

// IsValidKeyName checks if a name is a valid key binding name.
func IsValidKeyName(name string) bool {
	return GetKeyDefinition(name) != nil
}
