package ui

import (
	"errors"
	"fmt"
	"image/color"
	"log/slog"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	fynetooltip "github.com/dweymouth/fyne-tooltip"
	ttwidget "github.com/dweymouth/fyne-tooltip/widget"

	"github.com/piwi3910/ToolbarPad/internal/export"
	"github.com/piwi3910/ToolbarPad/internal/fontattr"
	"github.com/piwi3910/ToolbarPad/internal/model"
	"github.com/piwi3910/ToolbarPad/internal/project"
	"github.com/piwi3910/ToolbarPad/internal/toolbar"
)

// App holds all application state and UI references.
type App struct {
	app     fyne.App
	window  fyne.Window
	config  model.AppConfig
	log     *slog.Logger
	doc     *model.Document
	docPath string
	fonts   *fontattr.Controller
	history *History
	layout  *toolbar.Layout

	cancelSize func()
	syncing    bool
	// anchor is the caret offset before the current Entry selection began.
	anchor int

	// UI references for dynamic updates
	entry        *widget.Entry
	preview      *widget.RichText
	sizeEntry    *widget.Entry
	sizeValue    binding.Float
	toolbarHost  *fyne.Container
	stripHost    *fyne.Container
	toolbarStyle []*ttwidget.Button
	stripStyle   []*ttwidget.Button
	status       *widget.Label
	undoItem     *fyne.MenuItem
	redoItem     *fyne.MenuItem
	stripItem    *fyne.MenuItem
}

// NewApp creates the application UI for window using config.
func NewApp(application fyne.App, window fyne.Window, config model.AppConfig) *App {
	a := &App{
		app:       application,
		window:    window,
		config:    config,
		log:       slog.Default().With("component", "ui"),
		history:   NewHistory(),
		layout:    toolbar.NewLayout(),
		sizeValue: binding.NewFloat(),
		status:    widget.NewLabel("Ready"),
	}
	a.setDocument(model.NewDocument("Untitled", config.DefaultStyle()), "")
	return a
}

// setDocument makes doc the edited document and rebinds the font controller.
func (a *App) setDocument(doc *model.Document, path string) {
	if a.cancelSize != nil {
		a.cancelSize()
	}
	a.doc = doc
	a.docPath = path
	a.anchor = 0

	opts := []fontattr.Option{fontattr.WithLogger(slog.Default().With("component", "fontattr"))}
	if min, max, err := a.config.SizeRange(); err == nil {
		opts = append(opts, fontattr.WithSizeRange(min, max))
	} else {
		a.log.Warn("ignoring configured size range", "err", err)
	}
	a.fonts = fontattr.New(doc, opts...)
	a.cancelSize = a.fonts.OnSizeChange(a.showSize)
	a.history.Clear()

	if a.entry != nil {
		a.syncing = true
		a.entry.SetText(doc.Text())
		a.syncing = false
		a.refreshPreview()
		a.refreshHistoryMenu()
	}
	a.fonts.Sync()
	a.window.SetTitle(fmt.Sprintf("ToolbarPad - %s", doc.Title))
}

// SetupMenus creates the native menu bar for the application.
func (a *App) SetupMenus() {
	// File Menu
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("New", func() {
			a.setDocument(model.NewDocument("Untitled", a.config.DefaultStyle()), "")
		}),
		fyne.NewMenuItem("Open...", func() {
			a.openDocument()
		}),
		a.recentMenuItem(),
		fyne.NewMenuItem("Save...", func() {
			a.saveDocument()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Print...", func() {
			a.printDocument()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() {
			a.window.Close()
		}),
	)

	// Edit Menu
	a.undoItem = fyne.NewMenuItem("Undo", func() { a.undo() })
	a.redoItem = fyne.NewMenuItem("Redo", func() { a.redo() })
	editMenu := fyne.NewMenu("Edit", a.undoItem, a.redoItem)

	// Format Menu
	formatMenu := fyne.NewMenu("Format",
		fyne.NewMenuItem("Plain", func() { a.execute(model.SetStyle(model.StylePlain)) }),
		fyne.NewMenuItem("Bold", func() { a.execute(model.SetStyle(model.StyleBold)) }),
		fyne.NewMenuItem("Italic", func() { a.execute(model.SetStyle(model.StyleItalic)) }),
		fyne.NewMenuItem("Underline", func() { a.execute(model.ToggleUnderline()) }),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Bigger", func() { a.stepSize(1) }),
		fyne.NewMenuItem("Smaller", func() { a.stepSize(-1) }),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Text Color...", func() { a.showColorDialog() }),
	)

	// View Menu
	a.stripItem = fyne.NewMenuItem("Show Control Strip", func() {
		a.toggleControlStrip()
		if err := a.saveConfig(); err != nil {
			a.log.Error("save config", "err", err)
		}
	})
	a.stripItem.Checked = a.config.ShowControlStrip
	viewMenu := fyne.NewMenu("View",
		fyne.NewMenuItem("Customize Toolbar...", func() { a.showCustomizeToolbarDialog() }),
		a.stripItem,
	)

	// Settings Menu
	settingsMenu := fyne.NewMenu("Settings",
		fyne.NewMenuItem("Preferences...", func() { a.showSettingsDialog() }),
		fyne.NewMenuItem("Import / Export Settings...", func() { a.showImportExportDialog() }),
	)

	// Help Menu
	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", func() {
			a.showAboutDialog()
		}),
	)

	a.window.SetMainMenu(fyne.NewMainMenu(fileMenu, editMenu, formatMenu, viewMenu, settingsMenu, helpMenu))
	a.refreshHistoryMenu()
}

func (a *App) showAboutDialog() {
	dialog.ShowInformation(
		"About ToolbarPad",
		"ToolbarPad: toolbar and control strip sample\n\n"+
			"A small rich text editor whose toolbar and control strip\n"+
			"change the font style and size of the text.\n\n"+
			"Version 1.0.0",
		a.window,
	)
}

// Build constructs the full UI and returns the root container.
func (a *App) Build() fyne.CanvasObject {
	a.entry = widget.NewMultiLineEntry()
	a.entry.Wrapping = fyne.TextWrapWord
	a.entry.SetPlaceHolder("Type here. Select text to restyle it.")
	a.entry.SetText(a.doc.Text())
	a.entry.OnChanged = a.onTextChanged
	a.entry.OnCursorChanged = a.onCursorChanged

	a.preview = widget.NewRichText()
	a.preview.Wrapping = fyne.TextWrapWord
	a.refreshPreview()

	a.toolbarHost = container.NewStack()
	a.rebuildToolbar()
	a.stripHost = container.NewStack()
	a.refreshStrip()
	a.bindSizeSlider()

	split := container.NewHSplit(a.entry, container.NewVScroll(a.preview))
	split.SetOffset(0.5)

	content := container.NewBorder(
		a.toolbarHost,
		container.NewVBox(a.stripHost, a.status),
		nil, nil,
		split,
	)
	a.window.Canvas().Focus(a.entry)
	return fynetooltip.AddWindowToolTipLayer(content, a.window.Canvas())
}

// ─── Editing ───────────────────────────────────────────────

func (a *App) onTextChanged(text string) {
	if a.syncing {
		return
	}
	a.doc.ReplaceText(text)
	// Earlier snapshots no longer match the text.
	a.history.Clear()
	a.refreshHistoryMenu()
	a.syncSelection()
	a.refreshPreview()
}

func (a *App) onCursorChanged() {
	if a.syncing {
		return
	}
	a.syncSelection()
}

// syncSelection copies the Entry selection into the document and reloads
// the controller's state from the new typing attributes.
func (a *App) syncSelection() {
	if a.entry == nil {
		return
	}
	before := a.doc.Selection()
	selected := a.entry.SelectedText()
	sel := selectionFromCursor(a.entry.Text, a.entry.CursorRow, a.entry.CursorColumn, selected, a.anchor)
	if selected == "" {
		a.anchor = sel.Start
	}
	a.doc.SetSelection(sel)
	if a.doc.Selection() != before {
		a.fonts.Sync()
	}
}

// execute runs a style command against the current selection. Rejected
// commands are logged by the controller and leave the document unchanged.
func (a *App) execute(cmd model.StyleCommand) {
	a.syncSelection()
	snap := MakeSnapshot(a.doc, commandLabel(cmd))
	state, err := a.fonts.Execute(cmd)
	if err != nil {
		if errors.Is(err, model.ErrMissingFontAttribute) || errors.Is(err, model.ErrInvalidStyleSelection) {
			a.status.SetText("Style unchanged")
			return
		}
		a.log.Error("style command failed", "err", err)
		return
	}
	a.history.Push(snap)
	a.refreshHistoryMenu()
	a.refreshPreview()
	a.refreshStyleButtons(state)
	a.status.SetText(fmt.Sprintf("%s %.0fpt %s", state.Family, state.Size, describeTraits(state)))
}

// applySize is the handler shared by the stepper, size field and slider.
func (a *App) applySize(size float64) {
	if a.syncing {
		return
	}
	a.execute(model.SetSize(size))
}

func (a *App) stepSize(delta int) {
	a.applySize(float64(a.fonts.DisplayedSize() + delta))
}

// showSize mirrors a size change into the size field and the slider binding.
func (a *App) showSize(ch fontattr.SizeChange) {
	a.syncing = true
	defer func() { a.syncing = false }()
	if a.sizeEntry != nil {
		a.sizeEntry.SetText(fmt.Sprintf("%d", ch.Displayed))
	}
	if err := a.sizeValue.Set(ch.Size); err != nil {
		a.log.Warn("size binding", "err", err)
	}
	a.refreshStyleButtons(a.fonts.CurrentAttributes())
}

func (a *App) showColorDialog() {
	d := dialog.NewColorPicker("Text Color", "Choose a colour for the selected text", func(c color.Color) {
		a.syncSelection()
		sel := a.doc.Selection()
		if sel.Empty() {
			typing := a.doc.TypingAttributes()
			typing.Color = HexColor(c)
			a.doc.SetTypingAttributes(typing)
			return
		}
		a.history.Push(MakeSnapshot(a.doc, "Text Color"))
		a.doc.SetRangeColor(sel, HexColor(c))
		a.refreshHistoryMenu()
		a.refreshPreview()
	}, a.window)
	d.Advanced = true
	d.Show()
}

func (a *App) refreshPreview() {
	if a.preview == nil {
		return
	}
	a.preview.Segments = richSegments(a.doc)
	a.preview.Refresh()
}

// ─── Undo / Redo ───────────────────────────────────────────

func (a *App) undo() {
	snap, ok := a.history.Undo(MakeSnapshot(a.doc, ""))
	if !ok {
		return
	}
	a.restore(snap)
}

func (a *App) redo() {
	snap, ok := a.history.Redo(MakeSnapshot(a.doc, ""))
	if !ok {
		return
	}
	a.restore(snap)
}

func (a *App) restore(snap Snapshot) {
	a.doc.Restore(snap.State)
	a.fonts.Sync()
	a.refreshPreview()
	a.refreshHistoryMenu()
	a.status.SetText("Restored " + snap.Label)
}

func (a *App) refreshHistoryMenu() {
	if a.undoItem == nil {
		return
	}
	a.undoItem.Disabled = !a.history.CanUndo()
	a.undoItem.Label = "Undo"
	if l := a.history.UndoLabel(); l != "" {
		a.undoItem.Label = "Undo " + l
	}
	a.redoItem.Disabled = !a.history.CanRedo()
	if menu := a.window.MainMenu(); menu != nil {
		menu.Refresh()
	}
}

// ─── Files ─────────────────────────────────────────────────

func (a *App) saveDocument() {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		defer writer.Close()
		path := writer.URI().Path()
		if err := project.SaveDocument(path, a.doc); err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		a.docPath = path
		a.rememberRecent(path)
		a.status.SetText("Saved " + filepath.Base(path))
	}, a.window)
	if a.docPath != "" {
		d.SetFileName(filepath.Base(a.docPath))
	} else {
		d.SetFileName(a.doc.Title + project.DocumentExtension)
	}
	d.Show()
}

func (a *App) openDocument() {
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()
		path := reader.URI().Path()
		doc, err := project.LoadDocument(path, a.config.DefaultStyle())
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		a.setDocument(doc, path)
		a.rememberRecent(path)
	}, a.window)
	d.Show()
}

// printDocument renders the document to a PDF chosen by the user.
func (a *App) printDocument() {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		defer writer.Close()
		opts := export.PrintOptions{QRStamp: a.config.PrintQRStamp, PageNumbers: true}
		if err := export.PrintPDFTo(writer, a.doc, opts); err != nil {
			a.log.Error("print failed", "err", err)
			dialog.ShowError(fmt.Errorf("failed to print: %w", err), a.window)
			return
		}
		a.status.SetText("Printed to " + filepath.Base(writer.URI().Path()))
	}, a.window)
	d.SetFileName(a.doc.Title + ".pdf")
	d.Show()
}

// recentMenuItem lists the recently used documents.
func (a *App) recentMenuItem() *fyne.MenuItem {
	item := fyne.NewMenuItem("Open Recent", nil)
	var entries []*fyne.MenuItem
	for _, path := range a.config.RecentDocuments {
		path := path
		entries = append(entries, fyne.NewMenuItem(filepath.Base(path), func() {
			doc, err := project.LoadDocument(path, a.config.DefaultStyle())
			if err != nil {
				dialog.ShowError(err, a.window)
				return
			}
			a.setDocument(doc, path)
			a.rememberRecent(path)
		}))
	}
	if len(entries) == 0 {
		item.Disabled = true
		return item
	}
	item.ChildMenu = fyne.NewMenu("", entries...)
	return item
}

func (a *App) rememberRecent(path string) {
	a.config.AddRecent(path)
	if err := a.saveConfig(); err != nil {
		a.log.Error("save config", "err", err)
	}
	if a.undoItem != nil {
		a.SetupMenus()
	}
}

// ─── Helpers ───────────────────────────────────────────────

func commandLabel(cmd model.StyleCommand) string {
	switch cmd.Kind {
	case model.CommandSetSize:
		return "Font Size"
	case model.CommandSetStyle:
		return cmd.Variant.String()
	case model.CommandToggleUnderline:
		return "Underline"
	default:
		return "Style"
	}
}

func describeTraits(s model.StyleState) string {
	switch {
	case s.Bold && s.Italic:
		return "bold italic"
	case s.Bold:
		return "bold"
	case s.Italic:
		return "italic"
	default:
		return "plain"
	}
}
