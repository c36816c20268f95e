package model

import (
	"errors"
	"fmt"
)

// Default font settings applied to a new document.
const (
	DefaultFontFamily = "Helvetica"
	DefaultFontSize   = 18.0
	MinFontSize       = 6.0
	MaxFontSize       = 100.0
)

var (
	// ErrInvalidStyleSelection is returned for a style index outside Plain/Bold/Italic.
	ErrInvalidStyleSelection = errors.New("invalid style selection")
	// ErrMissingFontAttribute is returned when the typing attributes carry no font.
	ErrMissingFontAttribute = errors.New("typing attributes have no font")
)

// StyleState is the set of text attributes applied to a range or to future typing.
type StyleState struct {
	Family    string  `json:"family"`
	Size      float64 `json:"size"` // points
	Bold      bool    `json:"bold,omitempty"`
	Italic    bool    `json:"italic,omitempty"`
	Underline bool    `json:"underline,omitempty"`
	Color     string  `json:"color,omitempty"` // foreground override, "" = theme default
}

// DefaultStyle returns the Helvetica 18pt plain style used for new documents.
func DefaultStyle() StyleState {
	return StyleState{Family: DefaultFontFamily, Size: DefaultFontSize}
}

// HasFont reports whether the state references a font at all.
func (s StyleState) HasFont() bool {
	return s.Family != "" && s.Size > 0
}

// Traits returns the fpdf-style trait string ("", "B", "I", "BIU", ...).
func (s StyleState) Traits() string {
	t := ""
	if s.Bold {
		t += "B"
	}
	if s.Italic {
		t += "I"
	}
	if s.Underline {
		t += "U"
	}
	return t
}

func (s StyleState) String() string {
	return fmt.Sprintf("%s %.1fpt %s", s.Family, s.Size, s.Traits())
}

// StyleVariant is the segment chosen in a font style selector.
type StyleVariant int

const (
	StylePlain  StyleVariant = iota // Clears bold and italic
	StyleBold                       // Bold, not italic
	StyleItalic                     // Italic, not bold
)

// StyleVariantLabels are the segment labels in selector order.
var StyleVariantLabels = []string{"Plain", "Bold", "Italic"}

// Valid reports whether v names a known style.
func (v StyleVariant) Valid() bool {
	return v >= StylePlain && v <= StyleItalic
}

func (v StyleVariant) String() string {
	if !v.Valid() {
		return fmt.Sprintf("StyleVariant(%d)", int(v))
	}
	return StyleVariantLabels[v]
}

// Selection is a span of runes within a document. Length 0 is a caret.
type Selection struct {
	Start  int `json:"start"`
	Length int `json:"length"`
}

// End returns the exclusive end offset.
func (s Selection) End() int {
	return s.Start + s.Length
}

// Empty reports whether the selection is an insertion point.
func (s Selection) Empty() bool {
	return s.Length <= 0
}

// CommandKind tags a StyleCommand.
type CommandKind int

const (
	CommandSetSize CommandKind = iota
	CommandSetStyle
	CommandToggleUnderline
)

// StyleCommand is a single requested style change built from a UI event.
type StyleCommand struct {
	Kind    CommandKind
	Size    float64      // CommandSetSize
	Variant StyleVariant // CommandSetStyle
}

// SetSize builds a size command.
func SetSize(size float64) StyleCommand {
	return StyleCommand{Kind: CommandSetSize, Size: size}
}

// SetStyle builds a style command.
func SetStyle(v StyleVariant) StyleCommand {
	return StyleCommand{Kind: CommandSetStyle, Variant: v}
}

// ToggleUnderline builds an underline toggle command.
func ToggleUnderline() StyleCommand {
	return StyleCommand{Kind: CommandToggleUnderline}
}
