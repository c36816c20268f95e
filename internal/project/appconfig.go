package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/piwi3910/ToolbarPad/internal/model"
)

// DefaultConfigDir returns ~/.toolbarpad, or .toolbarpad in the working
// directory when the home directory is unknown.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".toolbarpad")
}

// DefaultConfigPath returns the path of the preferences file.
func DefaultConfigPath() string {
	return filepath.Join(DefaultConfigDir(), "config.json")
}

// SaveAppConfig writes config to path, creating parent directories. A config
// with an unusable font size range is refused.
func SaveAppConfig(path string, config model.AppConfig) error {
	if _, _, err := config.SizeRange(); err != nil {
		return fmt.Errorf("refusing to save config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// LoadAppConfig reads the preferences at path. A missing file yields the
// defaults. Fields absent from the file keep their defaults, and values the
// editor cannot use are repaired by normalizeConfig.
func LoadAppConfig(path string) (model.AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return model.DefaultAppConfig(), nil
		}
		return model.AppConfig{}, fmt.Errorf("failed to read config: %w", err)
	}
	config := model.DefaultAppConfig()
	if err := json.Unmarshal(data, &config); err != nil {
		return model.AppConfig{}, fmt.Errorf("failed to parse config: %w", err)
	}
	return normalizeConfig(config), nil
}

// normalizeConfig falls back to the default size range when the stored one
// is invalid, keeps the default font size inside the range and maps unknown
// themes to "system".
func normalizeConfig(config model.AppConfig) model.AppConfig {
	defaults := model.DefaultAppConfig()
	min, max, err := config.SizeRange()
	if err != nil {
		config.MinFontSize, config.MaxFontSize = defaults.MinFontSize, defaults.MaxFontSize
		min, max = defaults.MinFontSize, defaults.MaxFontSize
	}
	switch {
	case config.DefaultFontSize <= 0:
		config.DefaultFontSize = defaults.DefaultFontSize
	case config.DefaultFontSize < min:
		config.DefaultFontSize = min
	case config.DefaultFontSize > max:
		config.DefaultFontSize = max
	}
	switch config.Theme {
	case "light", "dark", "system":
	default:
		config.Theme = defaults.Theme
	}
	if config.RecentDocuments == nil {
		config.RecentDocuments = []string{}
	}
	return config
}
