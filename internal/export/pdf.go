// Package export renders documents for printing.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-pdf/fpdf"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/piwi3910/ToolbarPad/internal/model"
)

// Page layout constants (A4 portrait in mm).
const (
	pageWidth    = 210.0
	marginLeft   = 20.0
	marginRight  = 20.0
	marginTop    = 20.0
	marginBottom = 25.0
	footerY      = -18.0
	qrSize       = 14.0

	pointToMM   = 25.4 / 72.0
	lineSpacing = 1.2
)

// PrintOptions controls the printed output.
type PrintOptions struct {
	// QRStamp adds a QR code with the document id and title to each footer.
	QRStamp bool
	// PageNumbers adds "Page n of m" to each footer.
	PageNumbers bool
}

// StampInfo is the data encoded in the footer QR code.
type StampInfo struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Chars int    `json:"chars"`
}

// PrintPDF renders doc as an A4 PDF at path, creating parent directories.
func PrintPDF(path string, doc *model.Document, opts PrintOptions) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create print directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create print file: %w", err)
	}
	if err := PrintPDFTo(f, doc, opts); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// PrintPDFTo renders doc as an A4 PDF into w. Each run keeps its family,
// size, bold, italic, underline and colour.
func PrintPDFTo(w io.Writer, doc *model.Document, opts PrintOptions) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(marginLeft, marginTop, marginRight)
	pdf.SetAutoPageBreak(true, marginBottom)
	pdf.SetTitle(doc.Title, true)
	pdf.AliasNbPages("")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	if opts.QRStamp {
		if err := registerStamp(pdf, doc); err != nil {
			return err
		}
	}
	pdf.SetFooterFunc(func() {
		if opts.QRStamp {
			_, pageHeight := pdf.GetPageSize()
			pdf.ImageOptions("stamp", pageWidth-marginRight-qrSize, pageHeight+footerY-4,
				qrSize, qrSize, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")
		}
		if opts.PageNumbers {
			pdf.SetY(footerY)
			pdf.SetFont("Helvetica", "", 8)
			pdf.SetTextColor(120, 120, 120)
			pdf.CellFormat(0, 5, fmt.Sprintf("Page %d of {nb}", pdf.PageNo()), "", 0, "C", false, 0, "")
		}
	})

	pdf.AddPage()
	for _, run := range doc.Runs() {
		writeRun(pdf, tr, run)
	}

	if err := pdf.Error(); err != nil {
		return fmt.Errorf("failed to render document: %w", err)
	}
	return pdf.Output(w)
}

// writeRun flows one styled run into the page, honouring embedded newlines.
func writeRun(pdf *fpdf.Fpdf, tr func(string) string, run model.Run) {
	s := run.Style
	size := s.Size
	if size <= 0 {
		size = model.DefaultFontSize
	}
	pdf.SetFont(pdfFamily(s.Family), s.Traits(), size)
	r, g, b := hexColor(s.Color)
	pdf.SetTextColor(r, g, b)

	h := size * pointToMM * lineSpacing
	for i, line := range strings.Split(run.Text, "\n") {
		if i > 0 {
			pdf.Ln(h)
		}
		if line != "" {
			pdf.Write(h, tr(line))
		}
	}
}

func registerStamp(pdf *fpdf.Fpdf, doc *model.Document) error {
	data, err := json.Marshal(StampInfo{ID: doc.ID, Title: doc.Title, Chars: doc.Len()})
	if err != nil {
		return fmt.Errorf("failed to marshal stamp: %w", err)
	}
	png, err := qrcode.Encode(string(data), qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("failed to generate QR code: %w", err)
	}
	pdf.RegisterImageOptionsReader("stamp", fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(png))
	return nil
}

// pdfFamily maps a font family onto one of the PDF core fonts.
func pdfFamily(family string) string {
	f := strings.ToLower(family)
	switch {
	case strings.Contains(f, "courier"), strings.Contains(f, "mono"):
		return "Courier"
	case strings.Contains(f, "times"), strings.Contains(f, "serif") && !strings.Contains(f, "sans"):
		return "Times"
	default:
		return "Helvetica"
	}
}

// hexColor parses "#rrggbb"; anything else is black.
func hexColor(c string) (r, g, b int) {
	c = strings.TrimPrefix(c, "#")
	if len(c) != 6 {
		return 0, 0, 0
	}
	v, err := strconv.ParseUint(c, 16, 32)
	if err != nil {
		return 0, 0, 0
	}
	return int(v>>16&0xff), int(v>>8&0xff), int(v&0xff)
}
