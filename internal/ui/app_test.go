package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/ToolbarPad/internal/model"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	application := test.NewApp()
	t.Cleanup(application.Quit)
	window := application.NewWindow("test")
	a := NewApp(application, window, model.DefaultAppConfig())
	a.SetupMenus()
	window.SetContent(a.Build())
	return a
}

func TestToggleControlStripUpdatesMenu(t *testing.T) {
	a := newTestApp(t)
	require.True(t, a.stripItem.Checked)
	require.NotEmpty(t, a.stripHost.Objects)

	a.toggleControlStrip()
	assert.False(t, a.config.ShowControlStrip)
	assert.False(t, a.stripItem.Checked)
	assert.Empty(t, a.stripHost.Objects)

	a.toggleControlStrip()
	assert.True(t, a.stripItem.Checked)
	assert.NotEmpty(t, a.stripHost.Objects)
}
