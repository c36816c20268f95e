package ui

import (
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/ToolbarPad/internal/toolbar"
)

// refreshStrip shows or hides the control strip along the bottom of the
// window.
func (a *App) refreshStrip() {
	if a.stripHost == nil {
		return
	}
	a.stripStyle = nil
	if !a.config.ShowControlStrip {
		a.stripHost.Objects = nil
		a.stripHost.Refresh()
		return
	}

	row := container.NewHBox()
	for _, id := range toolbar.DefaultStripItems() {
		it, ok := toolbar.LookupStrip(id)
		if !ok {
			continue
		}
		switch id {
		case toolbar.StripFontStyle:
			seg, buttons := a.newStyleSegment("")
			a.stripStyle = buttons
			row.Add(seg)
		case toolbar.StripFontSizePopover:
			var btn *widget.Button
			btn = widget.NewButton(it.Label, func() { a.showSizePopover(btn) })
			row.Add(btn)
		}
	}
	a.stripHost.Objects = []fyne.CanvasObject{container.NewVBox(widget.NewSeparator(), row)}
	a.stripHost.Refresh()
}

// toggleControlStrip flips the control strip and keeps the View menu check
// mark in step.
func (a *App) toggleControlStrip() {
	a.config.ShowControlStrip = !a.config.ShowControlStrip
	a.refreshStrip()
	if a.stripItem != nil {
		a.stripItem.Checked = a.config.ShowControlStrip
	}
	if menu := a.window.MainMenu(); menu != nil {
		menu.Refresh()
	}
}

// showSizePopover opens the size slider above anchor.
func (a *App) showSizePopover(anchor fyne.CanvasObject) {
	var content []fyne.CanvasObject
	for _, id := range toolbar.PopoverItems() {
		it, ok := toolbar.LookupStrip(id)
		if !ok || id != toolbar.StripFontSizeSlider {
			continue
		}
		min, max := a.fonts.SizeRange()
		slider := widget.NewSliderWithData(min, max, a.sizeValue)
		slider.Step = 0.5
		track := container.NewGridWrap(fyne.NewSize(toolbar.SliderWidth, slider.MinSize().Height), slider)
		content = append(content, container.NewBorder(nil, nil, widget.NewLabel(it.Label), nil, track))
	}
	if len(content) == 0 {
		return
	}

	pop := widget.NewPopUp(container.NewVBox(content...), a.window.Canvas())
	pos := fyne.CurrentApp().Driver().AbsolutePositionForObject(anchor)
	pop.ShowAtPosition(pos.SubtractXY(0, pop.MinSize().Height))
}

// bindSizeSlider applies slider moves to the font size. Values already in
// effect are ignored so that mirrored updates do not loop back.
func (a *App) bindSizeSlider() {
	a.sizeValue.AddListener(binding.NewDataListener(func() {
		v, err := a.sizeValue.Get()
		if err != nil || a.syncing {
			return
		}
		if math.Abs(v-a.fonts.CurrentAttributes().Size) < 0.01 {
			return
		}
		a.applySize(v)
	}))
}
