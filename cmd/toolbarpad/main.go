// ToolbarPad - a small rich text editor driven by a customizable toolbar
// and a control strip.
//
// Build:
//   go build -o toolbarpad ./cmd/toolbarpad
//
// Using fyne-cross for packaging:
//   go install github.com/fyne-io/fyne-cross@latest
//   fyne-cross darwin -arch=amd64,arm64

package main

import (
	"log/slog"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/piwi3910/ToolbarPad/internal/model"
	"github.com/piwi3910/ToolbarPad/internal/project"
	"github.com/piwi3910/ToolbarPad/internal/ui"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})))

	config, err := project.LoadAppConfig(project.DefaultConfigPath())
	if err != nil {
		slog.Error("loading config, using defaults", "err", err)
		config = model.DefaultAppConfig()
	}

	application := app.NewWithID("com.piwi3910.toolbarpad")
	application.Settings().SetTheme(ui.ThemeFor(config.Theme))

	window := application.NewWindow("ToolbarPad")

	appUI := ui.NewApp(application, window, config)
	appUI.SetupMenus()
	window.SetContent(appUI.Build())
	window.Resize(fyne.NewSize(960, 640))
	window.CenterOnScreen()
	window.ShowAndRun()
}
