package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/ToolbarPad/internal/toolbar"
)

// showCustomizeToolbarDialog lets the user add, remove and reorder toolbar
// items. Changes apply to the toolbar immediately.
func (a *App) showCustomizeToolbarDialog() {
	selected := -1

	paletteLabel := func(id toolbar.ItemID) string {
		if it, err := toolbar.Lookup(id); err == nil {
			return it.PaletteLabel
		}
		return string(id)
	}

	current := widget.NewList(
		func() int { return len(a.layout.Items()) },
		func() fyne.CanvasObject { return widget.NewLabel("Flexible Space") },
		func(i widget.ListItemID, obj fyne.CanvasObject) {
			items := a.layout.Items()
			if i < len(items) {
				obj.(*widget.Label).SetText(paletteLabel(items[i]))
			}
		},
	)
	current.OnSelected = func(id widget.ListItemID) { selected = id }
	current.OnUnselected = func(widget.ListItemID) { selected = -1 }

	changed := func(err error) {
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		current.UnselectAll()
		current.Refresh()
		a.rebuildToolbar()
	}

	palette := container.NewVBox(widget.NewLabelWithStyle("Palette", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}))
	for _, id := range toolbar.AllowedItems() {
		id := id
		palette.Add(widget.NewButtonWithIcon(paletteLabel(id), theme.ContentAddIcon(), func() {
			changed(a.layout.Append(id))
		}))
	}

	removeBtn := newIconButtonWithTooltip(theme.ContentRemoveIcon(), "Remove the selected item", func() {
		if selected >= 0 {
			changed(a.layout.Remove(selected))
		}
	})
	upBtn := newIconButtonWithTooltip(theme.MoveUpIcon(), "Move the selected item left", func() {
		if selected > 0 {
			changed(a.layout.Move(selected, selected-1))
		}
	})
	downBtn := newIconButtonWithTooltip(theme.MoveDownIcon(), "Move the selected item right", func() {
		if selected >= 0 && selected < len(a.layout.Items())-1 {
			changed(a.layout.Move(selected, selected+1))
		}
	})
	resetBtn := widget.NewButton("Default Set", func() {
		a.layout.Reset()
		changed(nil)
	})

	visible := container.NewBorder(
		widget.NewLabelWithStyle("Toolbar", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(removeBtn, upBtn, downBtn, resetBtn),
		nil, nil,
		current,
	)

	content := container.NewGridWithColumns(2, visible, palette)
	d := dialog.NewCustom("Customize Toolbar", "Done", content, a.window)
	d.Resize(fyne.NewSize(460, 360))
	d.Show()
}
