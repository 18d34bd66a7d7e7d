package config

import (
	"os"
	"path/filepath"
)

// GetKeyupHome returns KEYUP_HOME or ~/.keyup default
func GetKeyupHome() string {
	home := os.Getenv("KEYUP_HOME")
	if home == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".keyup"
		}
		return filepath.Join(homeDir, ".keyup")
	}
	return ExpandPath(home)
}

// GetSettingsPath returns $KEYUP_HOME/settings.json
func GetSettingsPath() string {
	return filepath.Join(GetKeyupHome(), "settings.json")
}

// GetSSHDir returns $KEYUP_HOME/ssh, where the server keeps its host key
func GetSSHDir() string {
	return filepath.Join(GetKeyupHome(), "ssh")
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}
