package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/ToolbarPad/internal/model"
)

func TestExportAndImportSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "settings.json")

	cfg := model.DefaultAppConfig()
	cfg.DefaultFontSize = 24
	cfg.Theme = "dark"
	cfg.PrintQRStamp = true

	require.NoError(t, ExportSettings(path, cfg))

	backup, err := ImportSettings(path)
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", backup.Version)
	assert.NotEmpty(t, backup.CreatedAt)
	assert.Equal(t, 24.0, backup.Config.DefaultFontSize)
	assert.Equal(t, "dark", backup.Config.Theme)
	assert.True(t, backup.Config.PrintQRStamp)
}

func TestImportSettingsMissingFile(t *testing.T) {
	_, err := ImportSettings(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestImportSettingsInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json}"), 0644))

	_, err := ImportSettings(path)
	assert.Error(t, err)
}

func TestImportSettingsMissingVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "old.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"config":{"theme":"dark"}}`), 0644))

	_, err := ImportSettings(path)
	assert.ErrorContains(t, err, "missing version")
}

func TestImportSettingsKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"version":"1.0.0","config":{"theme":"light","recent_documents":null}}`), 0644))

	backup, err := ImportSettings(path)
	require.NoError(t, err)
	assert.Equal(t, "light", backup.Config.Theme)
	assert.Equal(t, model.MaxFontSize, backup.Config.MaxFontSize)
	assert.NotNil(t, backup.Config.RecentDocuments)
}

func TestImportSettingsRejectsBadRange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "range.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"version":"1.0.0","config":{"min_font_size":50,"max_font_size":10}}`), 0644))

	_, err := ImportSettings(path)
	assert.Error(t, err)
}
