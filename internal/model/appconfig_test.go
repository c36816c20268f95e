package model

import "testing"

func TestDefaultAppConfigMatchesDefaultStyle(t *testing.T) {
	cfg := DefaultAppConfig()
	defaults := DefaultStyle()

	if cfg.DefaultFontFamily != defaults.Family {
		t.Errorf("Family mismatch: config=%s style=%s", cfg.DefaultFontFamily, defaults.Family)
	}
	if cfg.DefaultFontSize != defaults.Size {
		t.Errorf("Size mismatch: config=%f style=%f", cfg.DefaultFontSize, defaults.Size)
	}
	if cfg.Theme != "system" {
		t.Errorf("expected default theme=system, got %s", cfg.Theme)
	}
	if !cfg.ShowControlStrip {
		t.Error("control strip should be shown by default")
	}
	if cfg.RecentDocuments == nil {
		t.Error("RecentDocuments should not be nil")
	}
}

func TestSizeRange(t *testing.T) {
	cfg := DefaultAppConfig()
	min, max, err := cfg.SizeRange()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if min != 6.0 || max != 100.0 {
		t.Errorf("expected 6-100, got %.1f-%.1f", min, max)
	}

	cfg.MinFontSize = 50
	cfg.MaxFontSize = 20
	if _, _, err := cfg.SizeRange(); err == nil {
		t.Error("inverted range should be rejected")
	}
}

func TestConfigDefaultStyle(t *testing.T) {
	cfg := DefaultAppConfig()
	cfg.DefaultFontFamily = "Courier"
	cfg.DefaultFontSize = 12

	s := cfg.DefaultStyle()
	if s.Family != "Courier" || s.Size != 12 {
		t.Errorf("expected Courier 12, got %s", s)
	}

	cfg.DefaultFontFamily = ""
	cfg.DefaultFontSize = 0
	s = cfg.DefaultStyle()
	if s != DefaultStyle() {
		t.Errorf("blank config should fall back to defaults, got %s", s)
	}
}

func TestAddRecent(t *testing.T) {
	cfg := DefaultAppConfig()
	cfg.AddRecent("a")
	cfg.AddRecent("b")
	cfg.AddRecent("a")

	if len(cfg.RecentDocuments) != 2 || cfg.RecentDocuments[0] != "a" || cfg.RecentDocuments[1] != "b" {
		t.Errorf("unexpected recent list %v", cfg.RecentDocuments)
	}

	for i := 0; i < 20; i++ {
		cfg.AddRecent(string(rune('c' + i)))
	}
	if len(cfg.RecentDocuments) != 10 {
		t.Errorf("expected 10 recent documents, got %d", len(cfg.RecentDocuments))
	}
}
