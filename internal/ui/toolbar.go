package ui

import (
	"image/color"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/ToolbarPad/internal/toolbar"
)

// toolbarObject adapts an arbitrary canvas object to a toolbar item.
type toolbarObject struct {
	obj fyne.CanvasObject
}

func (t *toolbarObject) ToolbarObject() fyne.CanvasObject {
	return t.obj
}

// labelled stacks a caption under a toolbar control.
func labelled(obj fyne.CanvasObject, label string) fyne.CanvasObject {
	if label == "" {
		return obj
	}
	caption := widget.NewLabelWithStyle(label, fyne.TextAlignCenter, fyne.TextStyle{})
	caption.SizeName = theme.SizeNameCaptionText
	return container.NewVBox(obj, caption)
}

// newToolbarDispatcher registers a factory for every item the palette offers.
func (a *App) newToolbarDispatcher() *toolbar.Dispatcher[widget.ToolbarItem] {
	d := toolbar.NewDispatcher[widget.ToolbarItem]()

	d.Handle(toolbar.FontStyle, func(it toolbar.Item) widget.ToolbarItem {
		seg, buttons := a.newStyleSegment(it.ToolTip)
		a.toolbarStyle = buttons
		return &toolbarObject{obj: labelled(seg, it.Label)}
	})

	d.Handle(toolbar.FontSize, func(it toolbar.Item) widget.ToolbarItem {
		a.sizeEntry = widget.NewEntry()
		a.sizeEntry.SetText(strconv.Itoa(a.fonts.DisplayedSize()))
		a.sizeEntry.OnSubmitted = func(text string) {
			v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
			if err != nil {
				a.sizeEntry.SetText(strconv.Itoa(a.fonts.DisplayedSize()))
				return
			}
			a.applySize(v)
		}
		field := container.NewGridWrap(fyne.NewSize(56, a.sizeEntry.MinSize().Height), a.sizeEntry)
		smaller := newIconButtonWithTooltip(theme.ContentRemoveIcon(), it.ToolTip, func() { a.stepSize(-1) })
		bigger := newIconButtonWithTooltip(theme.ContentAddIcon(), it.ToolTip, func() { a.stepSize(1) })
		return &toolbarObject{obj: labelled(container.NewHBox(smaller, field, bigger), it.Label)}
	})

	d.Handle(toolbar.Space, func(toolbar.Item) widget.ToolbarItem {
		gap := canvas.NewRectangle(color.Transparent)
		gap.SetMinSize(fyne.NewSize(theme.Padding()*8, 1))
		return &toolbarObject{obj: gap}
	})

	d.Handle(toolbar.FlexibleSpace, func(toolbar.Item) widget.ToolbarItem {
		return widget.NewToolbarSpacer()
	})

	d.Handle(toolbar.Print, func(it toolbar.Item) widget.ToolbarItem {
		btn := newIconButtonWithTooltip(theme.DocumentPrintIcon(), it.ToolTip, func() { a.printDocument() })
		return &toolbarObject{obj: labelled(btn, it.Label)}
	})

	return d
}

// rebuildToolbar recreates the window toolbar from the current layout.
func (a *App) rebuildToolbar() {
	if a.toolbarHost == nil {
		return
	}
	a.toolbarStyle = nil
	a.sizeEntry = nil
	items, err := a.newToolbarDispatcher().MakeAll(a.layout.Items())
	if err != nil {
		a.log.Error("build toolbar", "err", err)
		return
	}
	a.toolbarHost.Objects = []fyne.CanvasObject{widget.NewToolbar(items...)}
	a.toolbarHost.Refresh()
}
