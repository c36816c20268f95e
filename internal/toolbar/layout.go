package toolbar

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateItem is returned when a non-repeatable item is added twice.
	ErrDuplicateItem = errors.New("item already in toolbar")
	// ErrIndexOutOfRange is returned for positions outside the layout.
	ErrIndexOutOfRange = errors.New("index out of range")
)

// Layout is the ordered list of visible toolbar items, edited through the
// customization palette. It lives for the session only.
type Layout struct {
	items []ItemID
}

// NewLayout returns a layout showing the default items.
func NewLayout() *Layout {
	return &Layout{items: DefaultItems()}
}

// Items returns a copy of the visible items.
func (l *Layout) Items() []ItemID {
	return append([]ItemID(nil), l.items...)
}

// Contains reports whether id is visible.
func (l *Layout) Contains(id ItemID) bool {
	for _, it := range l.items {
		if it == id {
			return true
		}
	}
	return false
}

// Insert adds id at index. Index len(Items()) appends.
func (l *Layout) Insert(id ItemID, index int) error {
	it, err := Lookup(id)
	if err != nil {
		return err
	}
	if index < 0 || index > len(l.items) {
		return fmt.Errorf("insert at %d: %w", index, ErrIndexOutOfRange)
	}
	if !it.Repeatable && l.Contains(id) {
		return fmt.Errorf("%s: %w", it.PaletteLabel, ErrDuplicateItem)
	}
	l.items = append(l.items, "")
	copy(l.items[index+1:], l.items[index:])
	l.items[index] = id
	return nil
}

// Append adds id at the end.
func (l *Layout) Append(id ItemID) error {
	return l.Insert(id, len(l.items))
}

// Remove drops the item at index.
func (l *Layout) Remove(index int) error {
	if index < 0 || index >= len(l.items) {
		return fmt.Errorf("remove at %d: %w", index, ErrIndexOutOfRange)
	}
	l.items = append(l.items[:index], l.items[index+1:]...)
	return nil
}

// Move relocates the item at from so that it ends up at to.
func (l *Layout) Move(from, to int) error {
	if from < 0 || from >= len(l.items) || to < 0 || to >= len(l.items) {
		return fmt.Errorf("move %d to %d: %w", from, to, ErrIndexOutOfRange)
	}
	id := l.items[from]
	l.items = append(l.items[:from], l.items[from+1:]...)
	l.items = append(l.items, "")
	copy(l.items[to+1:], l.items[to:])
	l.items[to] = id
	return nil
}

// Reset restores the default items.
func (l *Layout) Reset() {
	l.items = DefaultItems()
}
