package model

import (
	"strings"

	"github.com/google/uuid"
)

// Run is a stretch of text sharing one style.
type Run struct {
	Text  string     `json:"text"`
	Style StyleState `json:"style"`
}

// Document is an in-memory rich text buffer. Offsets are in runes.
// It owns the per-character attributes; callers mutate them only through
// the range and typing-attribute methods.
type Document struct {
	ID    string
	Title string

	text      []rune
	attrs     []StyleState
	selection Selection
	typing    StyleState
}

// NewDocument creates an empty document whose typing attributes are style.
func NewDocument(title string, style StyleState) *Document {
	return &Document{
		ID:     uuid.New().String()[:8],
		Title:  title,
		typing: style,
	}
}

// NewDocumentFromRuns rebuilds a document from saved runs.
func NewDocumentFromRuns(id, title string, runs []Run, typing StyleState) *Document {
	d := &Document{ID: id, Title: title, typing: typing}
	if d.ID == "" {
		d.ID = uuid.New().String()[:8]
	}
	for _, r := range runs {
		for _, ch := range r.Text {
			d.text = append(d.text, ch)
			d.attrs = append(d.attrs, r.Style)
		}
	}
	return d
}

// Text returns the plain text content.
func (d *Document) Text() string {
	return string(d.text)
}

// Len returns the length in runes.
func (d *Document) Len() int {
	return len(d.text)
}

// Runs returns the text split into maximal runs of equal style.
func (d *Document) Runs() []Run {
	var runs []Run
	var sb strings.Builder
	for i, ch := range d.text {
		if i > 0 && d.attrs[i] != d.attrs[i-1] {
			runs = append(runs, Run{Text: sb.String(), Style: d.attrs[i-1]})
			sb.Reset()
		}
		sb.WriteRune(ch)
	}
	if sb.Len() > 0 {
		runs = append(runs, Run{Text: sb.String(), Style: d.attrs[len(d.attrs)-1]})
	}
	return runs
}

// StyleAt returns the style of the character at offset, or the typing
// attributes when offset is outside the text.
func (d *Document) StyleAt(offset int) StyleState {
	if offset < 0 || offset >= len(d.attrs) {
		return d.typing
	}
	return d.attrs[offset]
}

// Selection returns the current selection.
func (d *Document) Selection() Selection {
	return d.selection
}

// SetSelection moves the selection, clamped to the text. When the selection
// actually changes, the typing attributes are taken from the text: the first
// selected character, or the character before a caret.
func (d *Document) SetSelection(sel Selection) {
	sel = d.clamp(sel)
	if sel == d.selection {
		return
	}
	d.selection = sel
	switch {
	case !sel.Empty():
		d.typing = d.attrs[sel.Start]
	case sel.Start > 0:
		d.typing = d.attrs[sel.Start-1]
	case len(d.attrs) > 0:
		d.typing = d.attrs[0]
	}
}

func (d *Document) clamp(sel Selection) Selection {
	n := len(d.text)
	if sel.Start < 0 {
		sel.Start = 0
	}
	if sel.Start > n {
		sel.Start = n
	}
	if sel.Length < 0 {
		sel.Length = 0
	}
	if sel.End() > n {
		sel.Length = n - sel.Start
	}
	return sel
}

// TypingAttributes returns the style applied to the next inserted text.
func (d *Document) TypingAttributes() StyleState {
	return d.typing
}

// SetTypingAttributes replaces the style applied to the next inserted text.
func (d *Document) SetTypingAttributes(s StyleState) {
	d.typing = s
}

// SetRangeStyle applies the font and underline of s to every character in sel.
// The foreground colour of each character is kept; see ClearRangeColor.
func (d *Document) SetRangeStyle(sel Selection, s StyleState) {
	sel = d.clamp(sel)
	for i := sel.Start; i < sel.End(); i++ {
		color := d.attrs[i].Color
		d.attrs[i] = s
		d.attrs[i].Color = color
	}
}

// ClearRangeColor removes the foreground colour override in sel.
func (d *Document) ClearRangeColor(sel Selection) {
	sel = d.clamp(sel)
	for i := sel.Start; i < sel.End(); i++ {
		d.attrs[i].Color = ""
	}
}

// SetRangeColor sets a foreground colour override in sel.
func (d *Document) SetRangeColor(sel Selection, color string) {
	sel = d.clamp(sel)
	for i := sel.Start; i < sel.End(); i++ {
		d.attrs[i].Color = color
	}
}

// ReplaceText makes newText the document content. Only the span that differs
// from the current text is replaced; inserted characters take the typing
// attributes and the caret is left after them.
func (d *Document) ReplaceText(newText string) {
	next := []rune(newText)
	prefix := 0
	for prefix < len(d.text) && prefix < len(next) && d.text[prefix] == next[prefix] {
		prefix++
	}
	suffix := 0
	for suffix < len(d.text)-prefix && suffix < len(next)-prefix &&
		d.text[len(d.text)-1-suffix] == next[len(next)-1-suffix] {
		suffix++
	}

	inserted := next[prefix : len(next)-suffix]
	attrs := make([]StyleState, 0, len(next))
	attrs = append(attrs, d.attrs[:prefix]...)
	for range inserted {
		attrs = append(attrs, d.typing)
	}
	attrs = append(attrs, d.attrs[len(d.attrs)-suffix:]...)

	d.text = next
	d.attrs = attrs
	d.selection = Selection{Start: prefix + len(inserted)}
}

// Snapshot returns a copy of the text and attributes for undo.
func (d *Document) Snapshot() DocumentState {
	return DocumentState{
		Text:      append([]rune(nil), d.text...),
		Attrs:     append([]StyleState(nil), d.attrs...),
		Selection: d.selection,
		Typing:    d.typing,
	}
}

// Restore replaces the content with a previous snapshot.
func (d *Document) Restore(s DocumentState) {
	d.text = append([]rune(nil), s.Text...)
	d.attrs = append([]StyleState(nil), s.Attrs...)
	d.selection = d.clamp(s.Selection)
	d.typing = s.Typing
}

// DocumentState is a point-in-time copy of a document's content.
type DocumentState struct {
	Text      []rune
	Attrs     []StyleState
	Selection Selection
	Typing    StyleState
}
