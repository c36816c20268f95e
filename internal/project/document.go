package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/piwi3910/ToolbarPad/internal/model"
)

// DocumentExtension is the file extension for saved documents.
const DocumentExtension = ".tbpad"

const documentVersion = "1.0.0"

// DocumentFile is the on-disk form of a document.
type DocumentFile struct {
	Version string           `json:"version"`
	SavedAt string           `json:"saved_at"`
	ID      string           `json:"id"`
	Title   string           `json:"title"`
	Typing  model.StyleState `json:"typing_attributes"`
	Runs    []model.Run      `json:"runs"`
}

// SaveDocument writes doc to path as JSON.
func SaveDocument(path string, doc *model.Document) error {
	file := DocumentFile{
		Version: documentVersion,
		SavedAt: time.Now().UTC().Format(time.RFC3339),
		ID:      doc.ID,
		Title:   doc.Title,
		Typing:  doc.TypingAttributes(),
		Runs:    doc.Runs(),
	}
	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create document directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}
	return nil
}

// LoadDocument reads a document saved by SaveDocument. A document whose
// typing attributes carry no font falls back to fallback.
func LoadDocument(path string, fallback model.StyleState) (*model.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}
	var file DocumentFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}
	if file.Version == "" {
		return nil, fmt.Errorf("invalid document file: missing version field")
	}
	if !file.Typing.HasFont() {
		file.Typing = fallback
	}
	if file.Title == "" {
		file.Title = titleFromPath(path)
	}
	return model.NewDocumentFromRuns(file.ID, file.Title, file.Runs, file.Typing), nil
}

func titleFromPath(path string) string {
	base := filepath.Base(path)
	return base[:len(base)-len(filepath.Ext(base))]
}
