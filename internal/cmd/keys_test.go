package cmd

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/keyup/internal/config"
)

func TestWriteKeysTable(t *testing.T) {
	var buf bytes.Buffer

	err := writeKeysTable(&buf, "/tmp/settings.json", config.KeyBindingsConfig{"quit": {"x", "ctrl+q"}})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "settings file: /tmp/settings.json")
	assert.Contains(t, out, "dialog_submit")
	assert.Contains(t, out, "x, ctrl+q")
	assert.Contains(t, out, "q, ctrl+c")
}

func TestWriteKeysJSON(t *testing.T) {
	var buf bytes.Buffer

	err := writeKeysJSON(&buf, config.KeyBindingsConfig{"help": {"h"}})
	require.NoError(t, err)

	var result map[string]struct {
		Custom  []string `json:"custom"`
		Default []string `json:"default"`
		Scope   string   `json:"scope"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))

	assert.Equal(t, []string{"h"}, result["help"].Custom)
	assert.Equal(t, []string{"?"}, result["help"].Default)
	assert.Equal(t, "dialog", result["dialog_close"].Scope)
	assert.Nil(t, result["quit"].Custom)
}

func TestSetKeyBinding(t *testing.T) {
	settings := &config.Settings{}

	require.NoError(t, setKeyBinding(settings, "quit", []string{"x"}))
	assert.Equal(t, config.KeyBindingValue{"x"}, settings.Keys["quit"])

	err := setKeyBinding(settings, "help", []string{"x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "conflict")
}

func TestSetKeyBinding_RejectsKeysShadowedByDefaults(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		values  []string
		wantErr string
	}{
		{name: "default of another app key", key: "increment", values: []string{"r"}, wantErr: "key 'r' is assigned to both 'open_dialog' and 'increment'"},
		{name: "app default wins over dialog key", key: "dialog_submit", values: []string{"q"}, wantErr: "key 'q' is assigned to both 'quit' and 'dialog_submit'"},
		{name: "dialog default taken by app key", key: "help", values: []string{"esc"}, wantErr: "key 'esc' is assigned to both 'help' and 'dialog_close'"},
		{name: "own default kept", key: "increment", values: []string{"+", "i"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := &config.Settings{}

			err := setKeyBinding(settings, tt.key, tt.values)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestSetKeyBinding_FreesDefaultWhenOwnerOverridden(t *testing.T) {
	settings := &config.Settings{}

	require.NoError(t, setKeyBinding(settings, "open_dialog", []string{"o"}))
	require.NoError(t, setKeyBinding(settings, "increment", []string{"r"}))
}

func TestCLI_KeyBindings(t *testing.T) {
	cli := &CLI{}
	keys, err := cli.keyBindings()
	require.NoError(t, err)
	assert.Nil(t, keys)

	cli.SetSettings(&config.Settings{Keys: config.KeyBindingsConfig{"bogus": {"b"}}})
	_, err = cli.keyBindings()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid key bindings")

	cli.SetSettings(&config.Settings{Keys: config.KeyBindingsConfig{"decrement": {"q"}}})
	_, err = cli.keyBindings()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "key 'q' is assigned to both 'quit' and 'decrement'")
}

func TestCLI_AfterApplyUsesSettings(t *testing.T) {
	t.Setenv("KEYUP_DEBUG", "")
	t.Setenv("KEYUP_DEBUG_FILE", "")
	maxLogFiles := 3

	cli := &CLI{MaxLogFiles: 1000}
	cli.SetSettings(&config.Settings{MaxLogFiles: &maxLogFiles})

	require.NoError(t, cli.AfterApply())
	assert.Equal(t, 3, cli.MaxLogFiles)
	assert.False(t, cli.Debug)
}
