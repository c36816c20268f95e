package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/piwi3910/ToolbarPad/internal/model"
)

const settingsBackupVersion = "1.0.0"

// SettingsBackup is the file format used to move preferences between machines.
type SettingsBackup struct {
	Version   string          `json:"version"`
	CreatedAt string          `json:"created_at"`
	Config    model.AppConfig `json:"config"`
}

// ExportSettings writes config to exportPath as a settings backup.
func ExportSettings(exportPath string, config model.AppConfig) error {
	backup := SettingsBackup{
		Version:   settingsBackupVersion,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
		Config:    config,
	}
	data, err := json.MarshalIndent(backup, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(exportPath), 0755); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}
	if err := os.WriteFile(exportPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}
	return nil
}

// ImportSettings reads a settings backup. Fields missing from the file keep
// their defaults, and an unusable size range is rejected.
func ImportSettings(importPath string) (SettingsBackup, error) {
	data, err := os.ReadFile(importPath)
	if err != nil {
		return SettingsBackup{}, fmt.Errorf("failed to read settings file: %w", err)
	}
	backup := SettingsBackup{Config: model.DefaultAppConfig()}
	if err := json.Unmarshal(data, &backup); err != nil {
		return SettingsBackup{}, fmt.Errorf("failed to parse settings file: %w", err)
	}
	if backup.Version == "" {
		return SettingsBackup{}, fmt.Errorf("invalid settings file: missing version field")
	}
	if _, _, err := backup.Config.SizeRange(); err != nil {
		return SettingsBackup{}, fmt.Errorf("invalid settings file: %w", err)
	}
	if backup.Config.RecentDocuments == nil {
		backup.Config.RecentDocuments = []string{}
	}
	return backup, nil
}
