package ui

import (
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/ToolbarPad/internal/model"
)

// cursorOffset converts an Entry row/column into a rune offset in text.
func cursorOffset(text string, row, col int) int {
	lines := strings.Split(text, "\n")
	if row >= len(lines) {
		row = len(lines) - 1
		col = len([]rune(lines[row]))
	}
	offset := 0
	for i := 0; i < row; i++ {
		offset += len([]rune(lines[i])) + 1
	}
	if n := len([]rune(lines[row])); col > n {
		col = n
	}
	return offset + col
}

// selectionFromCursor rebuilds the selection span from the Entry's cursor
// and selected text. The Entry only exposes the moving end of a selection;
// anchor is the caret offset recorded before the selection started and fixes
// the other end. When the anchor does not fit, the selected text is matched
// before the cursor first, then after it.
func selectionFromCursor(text string, row, col int, selected string, anchor int) model.Selection {
	offset := cursorOffset(text, row, col)
	n := len([]rune(selected))
	if n == 0 {
		return model.Selection{Start: offset}
	}
	runes := []rune(text)
	matches := func(start int) bool {
		return start >= 0 && start+n <= len(runes) && string(runes[start:start+n]) == selected
	}
	switch {
	case anchor == offset-n && matches(anchor):
		return model.Selection{Start: anchor, Length: n}
	case anchor == offset+n && matches(offset):
		return model.Selection{Start: offset, Length: n}
	case matches(offset - n):
		return model.Selection{Start: offset - n, Length: n}
	case matches(offset):
		return model.Selection{Start: offset, Length: n}
	}
	return model.Selection{Start: offset}
}

// richSegments renders the document runs as preview segments.
func richSegments(doc *model.Document) []widget.RichTextSegment {
	runs := doc.Runs()
	segs := make([]widget.RichTextSegment, 0, len(runs))
	for _, r := range runs {
		segs = append(segs, &widget.TextSegment{
			Text: r.Text,
			Style: widget.RichTextStyle{
				Inline:    true,
				SizeName:  TextSizeName(r.Style.Size),
				ColorName: ColorName(r.Style.Color),
				TextStyle: fyne.TextStyle{
					Bold:      r.Style.Bold,
					Italic:    r.Style.Italic,
					Underline: r.Style.Underline,
					Monospace: isMonospace(r.Style.Family),
				},
			},
		})
	}
	return segs
}

func isMonospace(family string) bool {
	f := strings.ToLower(family)
	return strings.Contains(f, "courier") || strings.Contains(f, "mono")
}
