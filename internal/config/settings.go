package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Valid theme names
const (
	ThemeBlue    = "blue"
	ThemeWarm    = "warm"
	ThemeNeutral = "neutral"
)

// DefaultTheme is used when settings.json sets no theme
const DefaultTheme = ThemeBlue

// Settings represents the structure of ~/.blizhe/settings.json.
// Pointer fields distinguish "unset" from an explicit false/zero so
// CLI flags and env vars can take precedence.
type Settings struct {
	AutoHints    *bool  `json:"auto_hints,omitempty"`
	Debug        *bool  `json:"debug,omitempty"`
	DefaultCount *int   `json:"default_count,omitempty"`
	MaxLogFiles  *int   `json:"max_log_files,omitempty"`
	Sound        *bool  `json:"sound,omitempty"`
	Theme        string `json:"theme,omitempty"`
}

// Validate checks for configuration errors
func (s *Settings) Validate() error {
	switch s.Theme {
	case "", ThemeBlue, ThemeWarm, ThemeNeutral:
	default:
		return fmt.Errorf("unknown theme '%s' (valid: blue, warm, neutral)", s.Theme)
	}
	if s.DefaultCount != nil && *s.DefaultCount <= 0 {
		return fmt.Errorf("default_count must be positive, got %d", *s.DefaultCount)
	}
	return nil
}

// AutoHintsEnabled returns the auto-hints setting with its default
func (s *Settings) AutoHintsEnabled() bool {
	return s.AutoHints != nil && *s.AutoHints
}

// SoundEnabled returns the sound setting, on by default
func (s *Settings) SoundEnabled() bool {
	return s.Sound == nil || *s.Sound
}

// QuestionCount returns the default question count per session
func (s *Settings) QuestionCount() int {
	if s.DefaultCount != nil {
		return *s.DefaultCount
	}
	return 5
}

// ThemeName returns the configured theme with its default
func (s *Settings) ThemeName() string {
	if s.Theme == "" {
		return DefaultTheme
	}
	return s.Theme
}

// LoadSettings loads settings from $BLIZHE_HOME/settings.json (or
// ~/.blizhe/settings.json if not set). Returns empty Settings if the
// file doesn't exist (not an error).
func LoadSettings() (*Settings, error) {
	path := GetSettingsPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil // Not an error, use defaults
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}

	return &settings, nil
}

// SaveSettings saves settings to $BLIZHE_HOME/settings.json
func SaveSettings(settings *Settings) error {
	path := GetSettingsPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}
