package export

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/piwi3910/ToolbarPad/internal/model"
)

func buildTestDocument() *model.Document {
	doc := model.NewDocument("Letter", model.DefaultStyle())
	doc.ReplaceText("Dear reader,\nThis line is bold and this is italic.\n\nRegards")
	doc.SetRangeStyle(model.Selection{Start: 26, Length: 4}, model.StyleState{Family: "Helvetica", Size: 18, Bold: true})
	doc.SetRangeStyle(model.Selection{Start: 43, Length: 6}, model.StyleState{Family: "Times", Size: 24, Italic: true, Underline: true})
	doc.SetRangeColor(model.Selection{Start: 0, Length: 4}, "#cc0000")
	return doc
}

func TestPrintPDF_CreatesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "letter.pdf")

	err := PrintPDF(path, buildTestDocument(), PrintOptions{PageNumbers: true})
	if err != nil {
		t.Fatalf("PrintPDF returned error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("PDF file was not created: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Errorf("output does not look like a PDF: %q", data[:min(len(data), 8)])
	}
	if len(data) < 500 {
		t.Errorf("PDF file seems too small: %d bytes", len(data))
	}
}

func TestPrintPDFTo_EmptyDocument(t *testing.T) {
	var buf bytes.Buffer
	doc := model.NewDocument("Empty", model.DefaultStyle())
	if err := PrintPDFTo(&buf, doc, PrintOptions{}); err != nil {
		t.Fatalf("empty document should still print a blank page: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Error("expected PDF header")
	}
}

func TestPrintPDFTo_QRStampAddsImage(t *testing.T) {
	var plain, stamped bytes.Buffer
	doc := buildTestDocument()

	if err := PrintPDFTo(&plain, doc, PrintOptions{}); err != nil {
		t.Fatalf("plain print failed: %v", err)
	}
	if err := PrintPDFTo(&stamped, doc, PrintOptions{QRStamp: true}); err != nil {
		t.Fatalf("stamped print failed: %v", err)
	}
	if !strings.Contains(stamped.String(), "/Subtype /Image") {
		t.Error("stamped PDF should embed an image")
	}
	if stamped.Len() <= plain.Len() {
		t.Errorf("stamped PDF (%d bytes) should be larger than plain (%d bytes)", stamped.Len(), plain.Len())
	}
}

func TestPrintPDFTo_ManyPages(t *testing.T) {
	doc := model.NewDocument("Long", model.DefaultStyle())
	doc.ReplaceText(strings.Repeat("A fairly long line of text for pagination.\n", 300))

	var buf bytes.Buffer
	if err := PrintPDFTo(&buf, doc, PrintOptions{PageNumbers: true}); err != nil {
		t.Fatalf("PrintPDFTo returned error: %v", err)
	}
	if strings.Count(buf.String(), "/Type /Page\n") < 2 {
		t.Error("expected more than one page")
	}
}

func TestPdfFamily(t *testing.T) {
	tests := map[string]string{
		"Helvetica":        "Helvetica",
		"":                 "Helvetica",
		"Courier New":      "Courier",
		"DejaVu Sans Mono": "Courier",
		"Times New Roman":  "Times",
		"Noto Serif":       "Times",
		"Noto Sans":        "Helvetica",
	}
	for in, want := range tests {
		if got := pdfFamily(in); got != want {
			t.Errorf("pdfFamily(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestHexColor(t *testing.T) {
	r, g, b := hexColor("#cc8001")
	if r != 0xcc || g != 0x80 || b != 0x01 {
		t.Errorf("unexpected colour %d,%d,%d", r, g, b)
	}
	for _, bad := range []string{"", "red", "#12345", "#gggggg"} {
		if r, g, b := hexColor(bad); r != 0 || g != 0 || b != 0 {
			t.Errorf("hexColor(%q) should be black", bad)
		}
	}
}
