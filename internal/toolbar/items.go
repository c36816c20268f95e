// Package toolbar describes the window toolbar and control strip items
// independently of the widget toolkit that draws them.
package toolbar

import (
	"errors"
	"fmt"
)

// ErrUnknownItem is returned for identifiers outside the allowed set.
var ErrUnknownItem = errors.New("unknown toolbar item")

// ItemID identifies a toolbar item.
type ItemID string

const (
	FontStyle     ItemID = "FontStyle"
	FontSize      ItemID = "FontSize"
	Space         ItemID = "Space"
	FlexibleSpace ItemID = "FlexibleSpace"
	Print         ItemID = "Print"
)

// Item describes how a toolbar item is labelled.
type Item struct {
	ID           ItemID
	Label        string
	PaletteLabel string
	ToolTip      string
	// Repeatable items may appear more than once in a layout.
	Repeatable bool
}

var items = map[ItemID]Item{
	FontStyle: {
		ID:           FontStyle,
		Label:        "Font Style",
		PaletteLabel: "Font Style",
		ToolTip:      "Change your font style",
	},
	FontSize: {
		ID:           FontSize,
		Label:        "Font Size",
		PaletteLabel: "Font Size",
		ToolTip:      "Grow or shrink the size of your font",
	},
	Space: {
		ID:           Space,
		PaletteLabel: "Space",
		Repeatable:   true,
	},
	FlexibleSpace: {
		ID:           FlexibleSpace,
		PaletteLabel: "Flexible Space",
		Repeatable:   true,
	},
	Print: {
		ID:           Print,
		Label:        "Print",
		PaletteLabel: "Print",
		ToolTip:      "Print your document",
	},
}

// Lookup returns the description of id.
func Lookup(id ItemID) (Item, error) {
	it, ok := items[id]
	if !ok {
		return Item{}, fmt.Errorf("%q: %w", string(id), ErrUnknownItem)
	}
	return it, nil
}

// DefaultItems returns the items shown in a fresh toolbar.
func DefaultItems() []ItemID {
	return []ItemID{FontStyle, FontSize}
}

// AllowedItems returns every item the customization palette offers, in
// palette order.
func AllowedItems() []ItemID {
	return []ItemID{FontStyle, FontSize, Space, FlexibleSpace, Print}
}

// Dispatcher maps item identifiers to factories producing toolkit objects.
type Dispatcher[T any] struct {
	factories map[ItemID]func(Item) T
}

// NewDispatcher creates an empty dispatch table.
func NewDispatcher[T any]() *Dispatcher[T] {
	return &Dispatcher[T]{factories: make(map[ItemID]func(Item) T)}
}

// Handle registers the factory for id.
func (d *Dispatcher[T]) Handle(id ItemID, factory func(Item) T) {
	d.factories[id] = factory
}

// Make builds the object for id.
func (d *Dispatcher[T]) Make(id ItemID) (T, error) {
	var zero T
	it, err := Lookup(id)
	if err != nil {
		return zero, err
	}
	f, ok := d.factories[id]
	if !ok {
		return zero, fmt.Errorf("no factory for %q: %w", string(id), ErrUnknownItem)
	}
	return f(it), nil
}

// MakeAll builds objects for every id in order, stopping at the first error.
func (d *Dispatcher[T]) MakeAll(ids []ItemID) ([]T, error) {
	out := make([]T, 0, len(ids))
	for _, id := range ids {
		obj, err := d.Make(id)
		if err != nil {
			return nil, err
		}
		out = append(out, obj)
	}
	return out, nil
}
