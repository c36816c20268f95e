// Package ui provides the ToolbarPad application UI components.
//
// This file defines the compact Fyne theme and the size and colour names
// used to render styled runs in the preview.

package ui

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

const (
	textSizePrefix = "toolbarpad-text-"
	colorPrefix    = "toolbarpad-color-"
)

// TextSizeName returns a theme size name that resolves to size points.
func TextSizeName(size float64) fyne.ThemeSizeName {
	return fyne.ThemeSizeName(textSizePrefix + strconv.FormatFloat(size, 'f', -1, 64))
}

// ColorName returns a theme colour name that resolves to the "#rrggbb" colour.
// An empty colour maps to the default foreground.
func ColorName(hex string) fyne.ThemeColorName {
	if hex == "" {
		return theme.ColorNameForeground
	}
	return fyne.ThemeColorName(colorPrefix + strings.TrimPrefix(hex, "#"))
}

// HexColor formats c as "#rrggbb".
func HexColor(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}

func parseTextSize(name fyne.ThemeSizeName) (float32, bool) {
	s, ok := strings.CutPrefix(string(name), textSizePrefix)
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 32)
	if err != nil || v <= 0 {
		return 0, false
	}
	return float32(v), true
}

func parseColor(name fyne.ThemeColorName) (color.Color, bool) {
	s, ok := strings.CutPrefix(string(name), colorPrefix)
	if !ok || len(s) != 6 {
		return nil, false
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return nil, false
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, true
}

// PadTheme wraps the default Fyne theme with compact sizing overrides and
// resolves the per-run text size and colour names.
type PadTheme struct {
	base    fyne.Theme
	variant *fyne.ThemeVariant
}

// NewPadTheme creates a PadTheme following the system light/dark variant.
func NewPadTheme() *PadTheme {
	return &PadTheme{base: theme.DefaultTheme()}
}

// NewPadThemeWithVariant creates a PadTheme fixed to a light or dark variant.
func NewPadThemeWithVariant(variant fyne.ThemeVariant) *PadTheme {
	return &PadTheme{base: theme.DefaultTheme(), variant: &variant}
}

// ThemeFor returns the theme for a config value of "light", "dark" or "system".
func ThemeFor(name string) *PadTheme {
	switch name {
	case "light":
		return NewPadThemeWithVariant(theme.VariantLight)
	case "dark":
		return NewPadThemeWithVariant(theme.VariantDark)
	default:
		return NewPadTheme()
	}
}

// Color resolves run colours, then delegates to the base theme.
func (t *PadTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	if c, ok := parseColor(name); ok {
		return c
	}
	if t.variant != nil {
		variant = *t.variant
	}
	return t.base.Color(name, variant)
}

// Font delegates to the base theme.
func (t *PadTheme) Font(style fyne.TextStyle) fyne.Resource {
	return t.base.Font(style)
}

// Icon delegates to the base theme.
func (t *PadTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.base.Icon(name)
}

// Size resolves run text sizes and returns compact sizing for the chrome.
func (t *PadTheme) Size(name fyne.ThemeSizeName) float32 {
	if s, ok := parseTextSize(name); ok {
		return s
	}
	switch name {
	case theme.SizeNameText:
		return 13
	case theme.SizeNameCaptionText:
		return 10
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameInlineIcon:
		return 18
	default:
		return t.base.Size(name)
	}
}
