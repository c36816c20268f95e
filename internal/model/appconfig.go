package model

import "fmt"

// AppConfig holds application-wide preferences and default settings.
type AppConfig struct {
	// Default text attributes applied to new documents
	DefaultFontFamily string  `json:"default_font_family"`
	DefaultFontSize   float64 `json:"default_font_size"`
	MinFontSize       float64 `json:"min_font_size"`
	MaxFontSize       float64 `json:"max_font_size"`

	// Application preferences
	ShowControlStrip bool     `json:"show_control_strip"`
	PrintQRStamp     bool     `json:"print_qr_stamp"`
	RecentDocuments  []string `json:"recent_documents"`
	Theme            string   `json:"theme"` // "light", "dark", "system"
}

// DefaultAppConfig returns an AppConfig populated with the Helvetica 18pt
// defaults and the 6–100pt size range.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		DefaultFontFamily: DefaultFontFamily,
		DefaultFontSize:   DefaultFontSize,
		MinFontSize:       MinFontSize,
		MaxFontSize:       MaxFontSize,
		ShowControlStrip:  true,
		RecentDocuments:   []string{},
		Theme:             "system",
	}
}

// SizeRange returns the configured font size bounds.
func (c AppConfig) SizeRange() (min, max float64, err error) {
	if c.MinFontSize <= 0 || c.MaxFontSize <= c.MinFontSize {
		return 0, 0, fmt.Errorf("font size range %.1f-%.1f is not valid", c.MinFontSize, c.MaxFontSize)
	}
	return c.MinFontSize, c.MaxFontSize, nil
}

// DefaultStyle returns the typing attributes for a new document.
func (c AppConfig) DefaultStyle() StyleState {
	s := DefaultStyle()
	if c.DefaultFontFamily != "" {
		s.Family = c.DefaultFontFamily
	}
	if c.DefaultFontSize > 0 {
		s.Size = c.DefaultFontSize
	}
	return s
}

// AddRecent puts path at the front of the recent documents list, keeping at
// most ten entries.
func (c *AppConfig) AddRecent(path string) {
	list := []string{path}
	for _, p := range c.RecentDocuments {
		if p != path && len(list) < 10 {
			list = append(list, p)
		}
	}
	c.RecentDocuments = list
}
