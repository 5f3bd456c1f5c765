package config

import (
	"os"
	"path/filepath"
)

// BlizheHome returns the application home directory: $BLIZHE_HOME if
// set, ~/.blizhe otherwise.
func BlizheHome() string {
	if envHome := os.Getenv("BLIZHE_HOME"); envHome != "" {
		return ExpandPath(envHome)
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".blizhe"
	}
	return filepath.Join(homeDir, ".blizhe")
}

// DataDir returns the directory scanned for external question/tip
// catalogs (questions.json, tips.json).
func DataDir() string {
	return filepath.Join(BlizheHome(), "data")
}

// GetSettingsPath returns the path to settings.json
func GetSettingsPath() string {
	return filepath.Join(BlizheHome(), "settings.json")
}

// ExpandPath expands a leading ~ to the user's home directory
func ExpandPath(path string) string {
	if len(path) == 0 || path[0] != '~' {
		return path
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(homeDir, path[1:])
}
