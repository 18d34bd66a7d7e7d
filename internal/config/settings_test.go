package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyBindingValue_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected KeyBindingValue
		wantErr  bool
	}{
		{name: "single string", input: `"q"`, expected: KeyBindingValue{"q"}},
		{name: "array", input: `["up", "k"]`, expected: KeyBindingValue{"up", "k"}},
		{name: "empty string", input: `""`, expected: nil},
		{name: "number", input: `42`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var kv KeyBindingValue
			err := json.Unmarshal([]byte(tt.input), &kv)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, kv)
		})
	}
}

func TestKeyBindingValue_MarshalJSON(t *testing.T) {
	single, err := json.Marshal(KeyBindingValue{"q"})
	require.NoError(t, err)
	assert.JSONEq(t, `"q"`, string(single))

	multi, err := json.Marshal(KeyBindingValue{"up", "k"})
	require.NoError(t, err)
	assert.JSONEq(t, `["up","k"]`, string(multi))
}

func TestKeyBindingsConfig_Validate(t *testing.T) {
	validNames := []string{"quit", "help", "open_dialog"}

	tests := []struct {
		name    string
		config  KeyBindingsConfig
		wantErr string
	}{
		{name: "nil config", config: nil},
		{name: "valid overrides", config: KeyBindingsConfig{"quit": {"x"}, "help": {"?", "h"}}},
		{name: "empty value uses default", config: KeyBindingsConfig{"quit": {}}},
		{name: "unknown name", config: KeyBindingsConfig{"nope": {"n"}}, wantErr: "unknown key binding 'nope'"},
		{name: "empty key", config: KeyBindingsConfig{"quit": {""}}, wantErr: "contains empty value"},
		{name: "duplicate key", config: KeyBindingsConfig{"quit": {"x"}, "help": {"x"}}, wantErr: "is assigned to both"},
		{name: "same key twice for one action", config: KeyBindingsConfig{"quit": {"x", "x"}}},
		{name: "conflict reported in name order", config: KeyBindingsConfig{"quit": {"x"}, "help": {"x"}, "open_dialog": {"x"}}, wantErr: "key 'x' is assigned to both 'help' and 'open_dialog'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate(validNames)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParseKeyValues(t *testing.T) {
	assert.Equal(t, []string{"up", "k"}, ParseKeyValues(" up , k ,"))
	assert.Equal(t, []string{}, ParseKeyValues(""))
}

func TestLoadSettings_MissingFile(t *testing.T) {
	settings, err := LoadSettingsFrom(filepath.Join(t.TempDir(), "settings.json"))

	require.NoError(t, err)
	assert.Equal(t, &Settings{}, settings)
}

func TestLoadSettings_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := LoadSettingsFrom(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid settings.json")
}

func TestSaveAndLoadSettings(t *testing.T) {
	t.Setenv("KEYUP_HOME", filepath.Join(t.TempDir(), "home"))

	debug := true
	require.NoError(t, SaveSettings(&Settings{
		Debug: &debug,
		Keys:  KeyBindingsConfig{"quit": {"x"}},
	}))

	data, err := os.ReadFile(GetSettingsPath())
	require.NoError(t, err)
	assert.Contains(t, string(data), `"quit": "x"`)

	loaded, err := LoadSettings()
	require.NoError(t, err)
	require.NotNil(t, loaded.Debug)
	assert.True(t, *loaded.Debug)
	assert.Equal(t, KeyBindingValue{"x"}, loaded.Keys["quit"])
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, home, ExpandPath("~"))
	assert.Equal(t, filepath.Join(home, "keys"), ExpandPath("~/keys"))
	assert.Equal(t, "/abs/path", ExpandPath("/abs/path"))
}
