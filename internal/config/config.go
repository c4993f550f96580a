// Package config loads client settings from ~/.subwoofer/settings.yaml,
// falling back to defaults when the file is absent.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Settings holds user-editable client configuration.
type Settings struct {
	// Endpoint is the base URL of the practice-tracker backend.
	Endpoint string `yaml:"endpoint"`

	// DailyTargetMinutes is the local fallback for the daily gauge target
	// when the backend omits one.
	DailyTargetMinutes int `yaml:"daily_target_minutes"`

	// DefaultInstrument pre-selects the instrument in the log form.
	DefaultInstrument string `yaml:"default_instrument"`

	// LogCalls enables transport diagnostics on stderr.
	LogCalls bool `yaml:"log_calls"`
}

// DefaultSettings returns the settings used when no file exists.
func DefaultSettings() *Settings {
	return &Settings{
		Endpoint:           "http://localhost:5000",
		DailyTargetMinutes: 60,
		DefaultInstrument:  "piano",
	}
}

// Dir returns the client's state directory (~/.subwoofer), honoring the
// SUBWOOFER_HOME override.
func Dir() (string, error) {
	if dir := os.Getenv("SUBWOOFER_HOME"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".subwoofer"), nil
}

// SettingsPath returns the settings file location.
func SettingsPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "settings.yaml"), nil
}

// Load reads settings from path, or returns defaults when the file does
// not exist. The SUBWOOFER_ENDPOINT env var overrides the file value.
func Load(path string) (*Settings, error) {
	s := DefaultSettings()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// defaults
	case err != nil:
		return nil, fmt.Errorf("reading %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, s); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	}

	if ep := os.Getenv("SUBWOOFER_ENDPOINT"); ep != "" {
		s.Endpoint = ep
	}
	return s, nil
}

// Save writes settings to path, creating the parent directory if needed.
func Save(path string, s *Settings) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshaling settings: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
