package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/ToolbarPad/internal/model"
)

func TestSaveAndLoadDocument(t *testing.T) {
	doc := model.NewDocument("Notes", model.DefaultStyle())
	doc.ReplaceText("plain bold")
	doc.SetRangeStyle(model.Selection{Start: 6, Length: 4}, model.StyleState{Family: "Helvetica", Size: 30, Bold: true})
	doc.SetTypingAttributes(model.StyleState{Family: "Courier", Size: 12, Italic: true})

	path := filepath.Join(t.TempDir(), "docs", "notes"+DocumentExtension)
	require.NoError(t, SaveDocument(path, doc))

	loaded, err := LoadDocument(path, model.DefaultStyle())
	require.NoError(t, err)
	assert.Equal(t, doc.ID, loaded.ID)
	assert.Equal(t, "Notes", loaded.Title)
	assert.Equal(t, doc.Text(), loaded.Text())
	assert.Equal(t, doc.Runs(), loaded.Runs())
	assert.Equal(t, doc.TypingAttributes(), loaded.TypingAttributes())
}

func TestLoadDocument_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadDocument(filepath.Join(dir, "missing.tbpad"), model.DefaultStyle())
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.tbpad")
	require.NoError(t, os.WriteFile(bad, []byte("{not json"), 0644))
	_, err = LoadDocument(bad, model.DefaultStyle())
	assert.ErrorContains(t, err, "failed to parse document")

	noVersion := filepath.Join(dir, "old.tbpad")
	require.NoError(t, os.WriteFile(noVersion, []byte(`{"runs":[]}`), 0644))
	_, err = LoadDocument(noVersion, model.DefaultStyle())
	assert.ErrorContains(t, err, "missing version")
}

func TestLoadDocument_Fallbacks(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Shopping List.tbpad")
	data := []byte(`{"version":"1.0.0","runs":[{"text":"milk","style":{"family":"Helvetica","size":18}}]}`)
	require.NoError(t, os.WriteFile(path, data, 0644))

	doc, err := LoadDocument(path, model.DefaultStyle())
	require.NoError(t, err)
	assert.Equal(t, "Shopping List", doc.Title)
	assert.Equal(t, model.DefaultStyle(), doc.TypingAttributes())
	assert.NotEmpty(t, doc.ID)
	assert.Equal(t, "milk", doc.Text())
}
