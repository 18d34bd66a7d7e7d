package harness

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestEnvironment provides an isolated test environment with its own KEYUP_HOME.
type TestEnvironment struct {
	KeyupHome string
	extraEnv  map[string]string
}

// NewTestEnvironment creates an isolated test environment with a temp KEYUP_HOME.
// The temp directory is automatically cleaned up when the test completes.
func NewTestEnvironment(tb testing.TB) *TestEnvironment {
	tb.Helper()

	return &TestEnvironment{
		KeyupHome: tb.TempDir(),
		extraEnv:  make(map[string]string),
	}
}

// Environ returns environment variables configured for test isolation.
// It filters out KEYUP_* variables and sets KEYUP_HOME to the temp directory
// with debug logging disabled.
func (e *TestEnvironment) Environ() []string {
	env := make([]string, 0, len(os.Environ())+2+len(e.extraEnv))

	for _, kv := range os.Environ() {
		key, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(key, "KEYUP_") || e.extraEnv[key] != "" {
			continue
		}
		env = append(env, kv)
	}

	env = append(env,
		"KEYUP_HOME="+e.KeyupHome,
		"KEYUP_DEBUG=",
	)

	for k, v := range e.extraEnv {
		env = append(env, k+"="+v)
	}

	return env
}

// SettingsPath returns the path to the test settings file.
func (e *TestEnvironment) SettingsPath() string {
	return filepath.Join(e.KeyupHome, "settings.json")
}

// WriteSettings writes raw settings.json content into the test home.
func (e *TestEnvironment) WriteSettings(tb testing.TB, content string) {
	tb.Helper()
	if err := os.WriteFile(e.SettingsPath(), []byte(content), 0644); err != nil {
		tb.Fatalf("Failed to write settings: %v", err)
	}
}

// SetEnv sets an additional environment variable for this test environment.
func (e *TestEnvironment) SetEnv(key, value string) {
	if e.extraEnv == nil {
		e.extraEnv = make(map[string]string)
	}
	e.extraEnv[key] = value
}
