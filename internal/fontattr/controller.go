package fontattr

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sync"

	"github.com/piwi3910/ToolbarPad/internal/model"
)

// ErrUnknownCommand is returned by Execute for a command kind with no handler.
var ErrUnknownCommand = errors.New("unknown style command")

// SizeChange is published to size observers whenever the size control moves.
type SizeChange struct {
	Size      float64 // value applied to the font
	Displayed int     // rounded value shown in size fields
}

// Controller holds the current style state and applies style commands to a
// text surface. A non-empty selection is restyled in place; with a caret
// only the typing attributes change.
type Controller struct {
	mu        sync.Mutex
	surface   TextSurface
	fonts     FontAttributeService
	log       *slog.Logger
	minSize   float64
	maxSize   float64
	current   model.StyleState
	displayed int

	observers map[int]func(SizeChange)
	nextObs   int
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger used for rejected commands.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) { c.log = l }
}

// WithFontService replaces the default Manager.
func WithFontService(s FontAttributeService) Option {
	return func(c *Controller) { c.fonts = s }
}

// WithSizeRange sets the clamp bounds for ApplySize. Invalid ranges are ignored.
func WithSizeRange(min, max float64) Option {
	return func(c *Controller) {
		if min > 0 && max > min {
			c.minSize, c.maxSize = min, max
		}
	}
}

// New creates a controller over surface, starting from the surface's typing
// attributes.
func New(surface TextSurface, opts ...Option) *Controller {
	c := &Controller{
		surface:   surface,
		fonts:     Manager{},
		log:       slog.Default(),
		minSize:   model.MinFontSize,
		maxSize:   model.MaxFontSize,
		observers: make(map[int]func(SizeChange)),
	}
	for _, o := range opts {
		o(c)
	}
	c.current = surface.TypingAttributes()
	c.displayed = int(math.Round(c.current.Size))
	return c
}

// SizeRange returns the clamp bounds.
func (c *Controller) SizeRange() (min, max float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.minSize, c.maxSize
}

// SetSizeRange changes the clamp bounds. Invalid ranges are ignored. The
// current size is left alone until the next ApplySize.
func (c *Controller) SetSizeRange(min, max float64) {
	if min <= 0 || max <= min {
		return
	}
	c.mu.Lock()
	c.minSize, c.maxSize = min, max
	c.mu.Unlock()
}

// CurrentAttributes returns a snapshot of the current style state.
func (c *Controller) CurrentAttributes() model.StyleState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// DisplayedSize returns the rounded size shown in size indicators.
func (c *Controller) DisplayedSize() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.displayed
}

// OnSizeChange registers fn for size changes and returns a function that
// removes it.
func (c *Controller) OnSizeChange(fn func(SizeChange)) (cancel func()) {
	c.mu.Lock()
	id := c.nextObs
	c.nextObs++
	c.observers[id] = fn
	c.mu.Unlock()
	return func() {
		c.mu.Lock()
		delete(c.observers, id)
		c.mu.Unlock()
	}
}

// ApplySize clamps size to the configured range and applies it. The attribute
// keeps the unrounded value; only the displayed size is rounded. Size
// observers see the change even when the typing attributes have no font.
func (c *Controller) ApplySize(size float64) (model.StyleState, error) {
	c.mu.Lock()
	size = math.Min(math.Max(size, c.minSize), c.maxSize)
	c.displayed = int(math.Round(size))
	change := SizeChange{Size: size, Displayed: c.displayed}
	font := c.base()
	var err error
	if font.HasFont() {
		c.commit(c.fonts.ConvertSize(font, size))
	} else {
		err = fmt.Errorf("set size %.1f: %w", size, model.ErrMissingFontAttribute)
	}
	state := c.current
	observers := c.observerList()
	c.mu.Unlock()

	for _, fn := range observers {
		fn(change)
	}
	if err != nil {
		c.log.Warn("font size not applied", "size", size, "err", err)
	}
	return state, err
}

// ApplyStyle applies one of the Plain, Bold or Italic variants. Bold and
// Italic exclude each other. Plain also removes the foreground colour from
// the selected range and turns underline off.
func (c *Controller) ApplyStyle(v model.StyleVariant) (model.StyleState, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !v.Valid() {
		err := fmt.Errorf("style index %d: %w", int(v), model.ErrInvalidStyleSelection)
		c.log.Error("invalid selection", "index", int(v))
		return c.current, err
	}
	font := c.base()
	if !font.HasFont() {
		c.log.Warn("font style not applied", "style", v.String())
		return c.current, fmt.Errorf("set style %s: %w", v, model.ErrMissingFontAttribute)
	}

	switch v {
	case model.StylePlain:
		font = c.fonts.ConvertTrait(font, TraitItalic, false)
		font = c.fonts.ConvertTrait(font, TraitBold, false)
		// Plain also strips colour and underline, which Bold and Italic leave alone.
		c.surface.ClearRangeColor(c.surface.Selection())
		font.Color = ""
		font.Underline = false
	case model.StyleBold:
		font = c.fonts.ConvertTrait(font, TraitItalic, false)
		font = c.fonts.ConvertTrait(font, TraitBold, true)
	case model.StyleItalic:
		font = c.fonts.ConvertTrait(font, TraitBold, false)
		font = c.fonts.ConvertTrait(font, TraitItalic, true)
	}
	c.commit(font)
	return c.current, nil
}

// ToggleUnderline flips the underline attribute.
func (c *Controller) ToggleUnderline() (model.StyleState, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	font := c.base()
	if !font.HasFont() {
		c.log.Warn("underline not applied")
		return c.current, fmt.Errorf("toggle underline: %w", model.ErrMissingFontAttribute)
	}
	font.Underline = !font.Underline
	c.commit(font)
	return c.current, nil
}

var handlers = map[model.CommandKind]func(*Controller, model.StyleCommand) (model.StyleState, error){
	model.CommandSetSize: func(c *Controller, cmd model.StyleCommand) (model.StyleState, error) {
		return c.ApplySize(cmd.Size)
	},
	model.CommandSetStyle: func(c *Controller, cmd model.StyleCommand) (model.StyleState, error) {
		return c.ApplyStyle(cmd.Variant)
	},
	model.CommandToggleUnderline: func(c *Controller, _ model.StyleCommand) (model.StyleState, error) {
		return c.ToggleUnderline()
	},
}

// Execute dispatches a style command to its operation.
func (c *Controller) Execute(cmd model.StyleCommand) (model.StyleState, error) {
	h, ok := handlers[cmd.Kind]
	if !ok {
		c.log.Error("unknown style command", "kind", int(cmd.Kind))
		return c.CurrentAttributes(), fmt.Errorf("command %d: %w", int(cmd.Kind), ErrUnknownCommand)
	}
	return h(c, cmd)
}

// Sync reloads the current state from the selected text or, at a caret, the
// typing attributes, for use after the selection moves. Size observers are told about the new size.
func (c *Controller) Sync() model.StyleState {
	c.mu.Lock()
	font := c.base()
	if font.HasFont() {
		c.current = font
		c.displayed = int(math.Round(font.Size))
	}
	state := c.current
	change := SizeChange{Size: state.Size, Displayed: c.displayed}
	observers := c.observerList()
	c.mu.Unlock()

	for _, fn := range observers {
		fn(change)
	}
	return state
}

// base returns the style the next command starts from: the style of the
// selected text, or the typing attributes at a caret. Callers hold c.mu.
func (c *Controller) base() model.StyleState {
	if sel := c.surface.Selection(); !sel.Empty() {
		return c.surface.StyleAt(sel.Start)
	}
	return c.surface.TypingAttributes()
}

// commit stores next and writes it to the selected range or, with a caret,
// to the typing attributes. Callers hold c.mu.
func (c *Controller) commit(next model.StyleState) {
	sel := c.surface.Selection()
	if sel.Empty() {
		c.surface.SetTypingAttributes(next)
	} else {
		c.surface.SetRangeStyle(sel, next)
	}
	c.current = next
}

func (c *Controller) observerList() []func(SizeChange) {
	list := make([]func(SizeChange), 0, len(c.observers))
	for i := 0; i < c.nextObs; i++ {
		if fn, ok := c.observers[i]; ok {
			list = append(list, fn)
		}
	}
	return list
}
