package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/ToolbarPad/internal/model"
)

func TestSaveAndLoadAppConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	cfg := model.DefaultAppConfig()
	cfg.DefaultFontSize = 24
	cfg.Theme = "dark"
	cfg.ShowControlStrip = false
	cfg.RecentDocuments = []string{"/tmp/a.tbpad", "/tmp/b.tbpad"}

	if err := SaveAppConfig(path, cfg); err != nil {
		t.Fatalf("SaveAppConfig failed: %v", err)
	}

	loaded, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("LoadAppConfig failed: %v", err)
	}

	if loaded.DefaultFontSize != 24 {
		t.Errorf("expected DefaultFontSize=24, got %f", loaded.DefaultFontSize)
	}
	if loaded.Theme != "dark" {
		t.Errorf("expected Theme=dark, got %s", loaded.Theme)
	}
	if loaded.ShowControlStrip {
		t.Error("expected ShowControlStrip=false")
	}
	if len(loaded.RecentDocuments) != 2 {
		t.Errorf("expected 2 recent documents, got %d", len(loaded.RecentDocuments))
	}
}

func TestLoadAppConfigMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nonexistent", "config.json")

	cfg, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("expected no error for missing file, got: %v", err)
	}

	defaults := model.DefaultAppConfig()
	if cfg.DefaultFontSize != defaults.DefaultFontSize {
		t.Errorf("expected default font size %f, got %f", defaults.DefaultFontSize, cfg.DefaultFontSize)
	}
	if cfg.Theme != "system" {
		t.Errorf("expected theme=system, got %s", cfg.Theme)
	}
}

func TestLoadAppConfigInvalidJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	if err := os.WriteFile(path, []byte("not valid json{{{"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadAppConfig(path)
	if err == nil {
		t.Fatal("expected error for invalid JSON, got nil")
	}
}

func TestSaveAppConfigCreatesDirectories(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sub", "dir", "config.json")

	cfg := model.DefaultAppConfig()
	if err := SaveAppConfig(path, cfg); err != nil {
		t.Fatalf("SaveAppConfig should create parent dirs: %v", err)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Fatal("config file was not created")
	}
}

func TestLoadAppConfigPartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	// Older config without a size range and with null recent_documents
	data := []byte(`{"default_font_size":14,"theme":"light","recent_documents":null}`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("LoadAppConfig failed: %v", err)
	}
	if cfg.RecentDocuments == nil {
		t.Error("RecentDocuments should not be nil after loading")
	}
	if cfg.DefaultFontSize != 14 {
		t.Errorf("expected font size 14, got %f", cfg.DefaultFontSize)
	}
	if cfg.MinFontSize != model.MinFontSize || cfg.MaxFontSize != model.MaxFontSize {
		t.Errorf("missing range should keep defaults, got %.1f-%.1f", cfg.MinFontSize, cfg.MaxFontSize)
	}
}

func TestLoadAppConfigRepairsUnusableValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	data := []byte(`{"min_font_size":80,"max_font_size":20,"default_font_size":200,"theme":"neon"}`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("LoadAppConfig failed: %v", err)
	}
	if cfg.MinFontSize != model.MinFontSize || cfg.MaxFontSize != model.MaxFontSize {
		t.Errorf("inverted range should fall back to defaults, got %.1f-%.1f", cfg.MinFontSize, cfg.MaxFontSize)
	}
	if cfg.DefaultFontSize != model.MaxFontSize {
		t.Errorf("default size should be clamped to %.1f, got %.1f", model.MaxFontSize, cfg.DefaultFontSize)
	}
	if cfg.Theme != "system" {
		t.Errorf("unknown theme should become system, got %s", cfg.Theme)
	}
}

func TestSaveAppConfigRejectsBadRange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	cfg := model.DefaultAppConfig()
	cfg.MinFontSize = 0
	if err := SaveAppConfig(path, cfg); err == nil {
		t.Fatal("expected an error for an unusable size range")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("no file should be written for a rejected config")
	}
}
