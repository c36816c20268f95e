package ui

import (
	"fmt"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/ToolbarPad/internal/model"
	"github.com/piwi3910/ToolbarPad/internal/project"
)

var fontFamilies = []string{"Helvetica", "Times", "Courier"}

// showSettingsDialog displays the preferences editor.
func (a *App) showSettingsDialog() {
	cfg := a.config

	floatEntry := func(val *float64) *widget.Entry {
		e := widget.NewEntry()
		e.SetText(strconv.FormatFloat(*val, 'f', -1, 64))
		e.OnChanged = func(text string) {
			if v, err := strconv.ParseFloat(text, 64); err == nil {
				*val = v
			}
		}
		return e
	}

	familySelect := widget.NewSelect(fontFamilies, func(selected string) {
		cfg.DefaultFontFamily = selected
	})
	familySelect.SetSelected(cfg.DefaultFontFamily)

	themeSelect := widget.NewSelect([]string{"system", "light", "dark"}, func(selected string) {
		cfg.Theme = selected
	})
	themeSelect.SetSelected(cfg.Theme)

	stripCheck := widget.NewCheck("", func(on bool) { cfg.ShowControlStrip = on })
	stripCheck.SetChecked(cfg.ShowControlStrip)
	stampCheck := widget.NewCheck("", func(on bool) { cfg.PrintQRStamp = on })
	stampCheck.SetChecked(cfg.PrintQRStamp)

	formItems := []*widget.FormItem{
		widget.NewFormItem("Theme", themeSelect),
		widget.NewFormItem("Show Control Strip", stripCheck),
		widget.NewFormItem("QR Stamp on Printouts", stampCheck),
		widget.NewFormItem("", widget.NewSeparator()),
		widget.NewFormItem("Default Font", familySelect),
		widget.NewFormItem("Default Size (pt)", floatEntry(&cfg.DefaultFontSize)),
		widget.NewFormItem("Smallest Size (pt)", floatEntry(&cfg.MinFontSize)),
		widget.NewFormItem("Largest Size (pt)", floatEntry(&cfg.MaxFontSize)),
	}

	d := dialog.NewForm("Preferences", "Save", "Cancel", formItems,
		func(ok bool) {
			if !ok {
				return
			}
			if _, _, err := cfg.SizeRange(); err != nil {
				dialog.ShowError(err, a.window)
				return
			}
			a.applyConfig(cfg)
			if err := a.saveConfig(); err != nil {
				dialog.ShowError(fmt.Errorf("failed to save settings: %w", err), a.window)
			}
		},
		a.window,
	)
	d.Resize(fyne.NewSize(420, 380))
	d.Show()
}

// showImportExportDialog displays the settings import/export dialog.
func (a *App) showImportExportDialog() {
	exportBtn := widget.NewButton("Export Settings...", func() {
		d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
			if err != nil || writer == nil {
				return
			}
			defer writer.Close()
			path := writer.URI().Path()
			if err := project.ExportSettings(path, a.config); err != nil {
				dialog.ShowError(err, a.window)
			} else {
				dialog.ShowInformation("Export Complete",
					fmt.Sprintf("Settings exported to:\n%s", path), a.window)
			}
		}, a.window)
		d.SetFileName("toolbarpad-settings.json")
		d.Show()
	})

	importBtn := widget.NewButton("Import Settings...", func() {
		dialog.ShowConfirm("Import Settings",
			"Importing will replace your current preferences.\n\nAre you sure you want to continue?",
			func(ok bool) {
				if !ok {
					return
				}
				d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
					if err != nil || reader == nil {
						return
					}
					defer reader.Close()
					backup, err := project.ImportSettings(reader.URI().Path())
					if err != nil {
						dialog.ShowError(err, a.window)
						return
					}
					a.applyConfig(backup.Config)
					if err := a.saveConfig(); err != nil {
						dialog.ShowError(fmt.Errorf("failed to save imported settings: %w", err), a.window)
						return
					}
					dialog.ShowInformation("Import Complete",
						fmt.Sprintf("Settings imported from backup created at %s.", backup.CreatedAt), a.window)
				}, a.window)
				d.Show()
			},
			a.window,
		)
	})

	content := container.NewVBox(
		widget.NewLabel("Export your preferences to a file,\nor import them from a previous export."),
		widget.NewSeparator(),
		exportBtn,
		importBtn,
	)

	d := dialog.NewCustom("Import / Export Settings", "Close", content, a.window)
	d.Resize(fyne.NewSize(400, 220))
	d.Show()
}

// applyConfig makes cfg current. The size range of the open document's
// controller follows the new bounds.
func (a *App) applyConfig(cfg model.AppConfig) {
	a.config = cfg
	if min, max, err := cfg.SizeRange(); err == nil {
		a.fonts.SetSizeRange(min, max)
	}
	a.app.Settings().SetTheme(ThemeFor(cfg.Theme))
	if a.stripItem != nil {
		a.stripItem.Checked = cfg.ShowControlStrip
	}
	a.refreshStrip()
	a.rebuildToolbar()
}

// saveConfig persists the current app config to disk.
func (a *App) saveConfig() error {
	return project.SaveAppConfig(project.DefaultConfigPath(), a.config)
}
