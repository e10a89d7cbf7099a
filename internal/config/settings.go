package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Settings are optional user defaults loaded from $WORKSPACE_HOME/settings.json.
// Pointer fields distinguish "not configured" from an explicit zero value;
// precedence is CLI flag > environment variable > settings.json > default.
type Settings struct {
	Debug         *bool `json:"debug,omitempty"`
	MaxLogFiles   *int  `json:"max_log_files,omitempty"`
	WatchInterval *int  `json:"watch_interval,omitempty"`
}

// SettingsPath returns $WORKSPACE_HOME/settings.json
func SettingsPath() string {
	return filepath.Join(Home(), "settings.json")
}

// LoadSettings loads settings from $WORKSPACE_HOME/settings.json.
// A missing file is not an error, defaults apply.
func LoadSettings() (*Settings, error) {
	data, err := os.ReadFile(SettingsPath())
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	return &settings, nil
}

// SaveSettings writes settings to $WORKSPACE_HOME/settings.json
func SaveSettings(settings *Settings) error {
	if err := os.MkdirAll(Home(), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.WriteFile(SettingsPath(), data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}
