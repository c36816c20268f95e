package toolbar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultAndAllowedItems(t *testing.T) {
	assert.Equal(t, []ItemID{FontStyle, FontSize}, DefaultItems())
	assert.Equal(t, []ItemID{FontStyle, FontSize, Space, FlexibleSpace, Print}, AllowedItems())

	for _, id := range AllowedItems() {
		it, err := Lookup(id)
		require.NoError(t, err)
		assert.Equal(t, id, it.ID)
		assert.NotEmpty(t, it.PaletteLabel, "%s needs a palette label", id)
	}
}

func TestLookupToolTips(t *testing.T) {
	it, err := Lookup(Print)
	require.NoError(t, err)
	assert.Equal(t, "Print your document", it.ToolTip)

	it, err = Lookup(FontSize)
	require.NoError(t, err)
	assert.Equal(t, "Grow or shrink the size of your font", it.ToolTip)

	_, err = Lookup("Customize")
	assert.ErrorIs(t, err, ErrUnknownItem)
}

func TestDispatcher(t *testing.T) {
	d := NewDispatcher[string]()
	d.Handle(FontStyle, func(it Item) string { return "style:" + it.Label })
	d.Handle(FontSize, func(it Item) string { return "size:" + it.Label })

	objs, err := d.MakeAll(DefaultItems())
	require.NoError(t, err)
	assert.Equal(t, []string{"style:Font Style", "size:Font Size"}, objs)

	_, err = d.Make(Print)
	assert.ErrorIs(t, err, ErrUnknownItem, "allowed but unregistered")

	_, err = d.Make("Bogus")
	assert.ErrorIs(t, err, ErrUnknownItem)

	_, err = d.MakeAll([]ItemID{FontStyle, "Bogus"})
	assert.ErrorIs(t, err, ErrUnknownItem)
}

func TestLayoutInsertRejectsDuplicates(t *testing.T) {
	l := NewLayout()
	assert.ErrorIs(t, l.Append(FontStyle), ErrDuplicateItem)

	require.NoError(t, l.Append(Space))
	require.NoError(t, l.Append(Space), "spaces may repeat")
	require.NoError(t, l.Insert(Print, 0))
	assert.ErrorIs(t, l.Append(Print), ErrDuplicateItem)

	assert.Equal(t, []ItemID{Print, FontStyle, FontSize, Space, Space}, l.Items())
}

func TestLayoutInsertErrors(t *testing.T) {
	l := NewLayout()
	assert.ErrorIs(t, l.Insert("Bogus", 0), ErrUnknownItem)
	assert.ErrorIs(t, l.Insert(Print, 5), ErrIndexOutOfRange)
	assert.ErrorIs(t, l.Insert(Print, -1), ErrIndexOutOfRange)
	assert.Equal(t, DefaultItems(), l.Items())
}

func TestLayoutRemoveMoveReset(t *testing.T) {
	l := NewLayout()
	require.NoError(t, l.Append(FlexibleSpace))
	require.NoError(t, l.Append(Print))

	require.NoError(t, l.Move(3, 0))
	assert.Equal(t, []ItemID{Print, FontStyle, FontSize, FlexibleSpace}, l.Items())

	require.NoError(t, l.Move(0, 3))
	assert.Equal(t, []ItemID{FontStyle, FontSize, FlexibleSpace, Print}, l.Items())

	require.NoError(t, l.Remove(1))
	assert.False(t, l.Contains(FontSize))
	assert.ErrorIs(t, l.Remove(10), ErrIndexOutOfRange)
	assert.ErrorIs(t, l.Move(0, 10), ErrIndexOutOfRange)

	l.Reset()
	assert.Equal(t, DefaultItems(), l.Items())
}

func TestLayoutItemsIsCopy(t *testing.T) {
	l := NewLayout()
	items := l.Items()
	items[0] = Print
	assert.Equal(t, FontStyle, l.Items()[0])
}

func TestStripItems(t *testing.T) {
	assert.Equal(t, []StripItemID{StripFontStyle, StripFontSizePopover}, DefaultStripItems())
	assert.Equal(t, []StripItemID{StripFontSizeSlider}, PopoverItems())

	it, ok := LookupStrip(StripFontSizeSlider)
	require.True(t, ok)
	assert.Equal(t, "Size", it.Label)

	_, ok = LookupStrip("other")
	assert.False(t, ok)
}
