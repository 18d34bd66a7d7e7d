package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/huh"

	"github.com/renato0307/keyup/internal/config"
	"github.com/renato0307/keyup/internal/logging"
	"github.com/renato0307/keyup/internal/ui"
)

// KeysCmd manages keyboard shortcuts
type KeysCmd struct {
	List KeysListCmd `cmd:"list" help:"List all key bindings (defaults and custom)" default:"1"`
	Set  KeysSetCmd  `cmd:"set" help:"Set a key binding"`
}

// KeysListCmd lists all key bindings
type KeysListCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// KeysSetCmd sets a key binding
type KeysSetCmd struct {
	Key   string `arg:"" help:"Key name (e.g., quit, help, open_dialog)"`
	Value string `arg:"" optional:"" help:"Key identifier(s), comma-separated for multiple (e.g., up,k). Prompts when omitted"`
}

// Run executes the list command
func (s *KeysListCmd) Run(cli *CLI) error {
	var customKeys config.KeyBindingsConfig
	if cli.settings != nil {
		customKeys = cli.settings.Keys
	}

	if s.Format == "json" {
		return writeKeysJSON(os.Stdout, customKeys)
	}
	return writeKeysTable(os.Stdout, config.GetSettingsPath(), customKeys)
}

func writeKeysJSON(w io.Writer, customKeys config.KeyBindingsConfig) error {
	defaults := ui.GetDefaultKeyBindings()
	result := make(map[string]map[string]any)

	for _, name := range ui.GetValidKeyNames() {
		entry := map[string]any{
			"default": defaults[name],
			"scope":   ui.GetKeyDefinition(name).Scope,
		}
		if custom, ok := customKeys[name]; ok && len(custom) > 0 {
			entry["custom"] = []string(custom)
		}
		result[name] = entry
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Fprintln(w, string(data))
	return nil
}

func writeKeysTable(w io.Writer, settingsFile string, customKeys config.KeyBindingsConfig) error {
	defaults := ui.GetDefaultKeyBindings()
	fmt.Fprintf(w, "Key Bindings (settings file: %s)\n\n", settingsFile)

	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	fmt.Fprintln(tw, "Name\tScope\tDefault\tCustom")
	fmt.Fprintln(tw, "────\t─────\t───────\t──────")

	for _, name := range ui.GetValidKeyNames() {
		customStr := "-"
		if custom, ok := customKeys[name]; ok && len(custom) > 0 {
			customStr = strings.Join(custom, ", ")
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			name, ui.GetKeyDefinition(name).Scope, strings.Join(defaults[name], ", "), customStr)
	}

	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Use 'keyup keys set <name> <value>' to customize.")
	return nil
}

// Run executes the set command
func (s *KeysSetCmd) Run(cli *CLI) error {
	if !ui.IsValidKeyName(s.Key) {
		return fmt.Errorf("unknown key '%s'. Valid keys: %s",
			s.Key, strings.Join(ui.GetValidKeyNames(), ", "))
	}

	if s.Value == "" {
		value, err := promptKeyValue(s.Key)
		if err != nil {
			return err
		}
		s.Value = value
	}

	values := config.ParseKeyValues(s.Value)
	if len(values) == 0 {
		return fmt.Errorf("value cannot be empty")
	}

	logging.Logger.Debug("Setting key binding", "key", s.Key, "values", values)

	settings, err := config.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	if err := setKeyBinding(settings, s.Key, values); err != nil {
		return err
	}

	if err := config.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	fmt.Printf("Set '%s' to: %s\n", s.Key, strings.Join(values, ", "))
	return nil
}

// setKeyBinding stores values for name and checks the result for conflicts
func setKeyBinding(settings *config.Settings, name string, values []string) error {
	if settings.Keys == nil {
		settings.Keys = make(config.KeyBindingsConfig)
	}
	settings.Keys[name] = values

	if err := ui.ValidateKeyBindings(settings.Keys); err != nil {
		return fmt.Errorf("conflict: %w", err)
	}
	return nil
}

// promptKeyValue asks for the key identifiers interactively
func promptKeyValue(name string) (string, error) {
	def := ui.GetKeyDefinition(name)
	var value string

	err := huh.NewInput().
		Title(fmt.Sprintf("Keys for '%s'", name)).
		Description(fmt.Sprintf("%s (default: %s)", def.Help, strings.Join(def.Defaults, ", "))).
		Placeholder(strings.Join(def.Defaults, ",")).
		Value(&value).
		Validate(func(s string) error {
			if len(config.ParseKeyValues(s)) == 0 {
				return fmt.Errorf("at least one key required")
			}
			return nil
		}).
		Run()
	if err != nil {
		return "", fmt.Errorf("prompt cancelled: %w", err)
	}
	return value, nil
}
