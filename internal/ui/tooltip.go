package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	ttwidget "github.com/dweymouth/fyne-tooltip/widget"

	"github.com/piwi3910/ToolbarPad/internal/model"
)

// newIconButtonWithTooltip creates an icon-only button with a tooltip that appears on hover.
func newIconButtonWithTooltip(icon fyne.Resource, tooltip string, tapped func()) *ttwidget.Button {
	btn := ttwidget.NewButtonWithIcon("", icon, tapped)
	btn.SetToolTip(tooltip)
	return btn
}

// newButtonWithTooltip creates a text button with a hover tooltip.
func newButtonWithTooltip(label, tooltip string, tapped func()) *ttwidget.Button {
	btn := ttwidget.NewButton(label, tapped)
	if tooltip != "" {
		btn.SetToolTip(tooltip)
	}
	return btn
}

// newStyleSegment builds the Plain / Bold / Italic segmented control and
// returns its buttons in variant order.
func (a *App) newStyleSegment(tooltip string) (fyne.CanvasObject, []*ttwidget.Button) {
	seg := container.NewHBox()
	buttons := make([]*ttwidget.Button, 0, len(model.StyleVariantLabels))
	for i, label := range model.StyleVariantLabels {
		v := model.StyleVariant(i)
		btn := newButtonWithTooltip(label, tooltip, func() {
			a.execute(model.SetStyle(v))
		})
		buttons = append(buttons, btn)
		seg.Add(btn)
	}
	highlightVariant(buttons, a.fonts.CurrentAttributes())
	return seg, buttons
}

// refreshStyleButtons highlights the segment matching state on the toolbar
// and on the control strip.
func (a *App) refreshStyleButtons(state model.StyleState) {
	highlightVariant(a.toolbarStyle, state)
	highlightVariant(a.stripStyle, state)
}

func highlightVariant(buttons []*ttwidget.Button, state model.StyleState) {
	active := model.StylePlain
	switch {
	case state.Bold:
		active = model.StyleBold
	case state.Italic:
		active = model.StyleItalic
	}
	for i, btn := range buttons {
		want := widget.MediumImportance
		if model.StyleVariant(i) == active {
			want = widget.HighImportance
		}
		if btn.Importance != want {
			btn.Importance = want
			btn.Refresh()
		}
	}
}
