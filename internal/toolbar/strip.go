package toolbar

// StripItemID identifies a control strip item.
type StripItemID string

const (
	StripFontStyle       StripItemID = "com.toolbarpad.strip.fontStyle"
	StripFontSizePopover StripItemID = "com.toolbarpad.strip.popover"
	StripFontSizeSlider  StripItemID = "com.toolbarpad.strip.popover.slider"
)

// StripItem describes a control strip item.
type StripItem struct {
	ID                 StripItemID
	CustomizationLabel string
	// Label is shown next to the control, or on the collapsed popover button.
	Label string
}

var stripItems = map[StripItemID]StripItem{
	StripFontStyle:       {ID: StripFontStyle, CustomizationLabel: "Font Style"},
	StripFontSizePopover: {ID: StripFontSizePopover, CustomizationLabel: "Font Size", Label: "Font Size"},
	StripFontSizeSlider:  {ID: StripFontSizeSlider, CustomizationLabel: "Font Size", Label: "Size"},
}

// LookupStrip returns the description of id.
func LookupStrip(id StripItemID) (StripItem, bool) {
	it, ok := stripItems[id]
	return it, ok
}

// DefaultStripItems returns the items shown on the control strip.
func DefaultStripItems() []StripItemID {
	return []StripItemID{StripFontStyle, StripFontSizePopover}
}

// PopoverItems returns the items inside the font size popover.
func PopoverItems() []StripItemID {
	return []StripItemID{StripFontSizeSlider}
}

// SliderWidth is the popover slider width in device-independent pixels.
const SliderWidth = 250
