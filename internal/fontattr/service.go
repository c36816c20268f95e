// Package fontattr turns toolbar and control-strip style commands into
// attribute changes on a text surface.
package fontattr

import "github.com/piwi3910/ToolbarPad/internal/model"

// TextSurface is the editable text the controller styles. The controller
// never touches the text itself, only its attributes.
type TextSurface interface {
	Selection() model.Selection
	// StyleAt returns the style of the character at offset.
	StyleAt(offset int) model.StyleState
	TypingAttributes() model.StyleState
	SetTypingAttributes(model.StyleState)
	SetRangeStyle(model.Selection, model.StyleState)
	ClearRangeColor(model.Selection)
}

// Trait is a font trait that can be added or removed.
type Trait int

const (
	TraitBold Trait = iota
	TraitItalic
)

// FontAttributeService converts fonts between sizes and traits.
type FontAttributeService interface {
	ConvertSize(font model.StyleState, size float64) model.StyleState
	ConvertTrait(font model.StyleState, trait Trait, on bool) model.StyleState
}

// Manager is the default FontAttributeService. Every family is assumed to
// have bold and italic faces.
type Manager struct{}

// ConvertSize returns font at the given point size.
func (Manager) ConvertSize(font model.StyleState, size float64) model.StyleState {
	font.Size = size
	return font
}

// ConvertTrait returns font with trait switched on or off.
func (Manager) ConvertTrait(font model.StyleState, trait Trait, on bool) model.StyleState {
	switch trait {
	case TraitBold:
		font.Bold = on
	case TraitItalic:
		font.Italic = on
	}
	return font
}
