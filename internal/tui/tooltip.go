package tui

import (
	"github.com/muesli/reflow/wordwrap"
)

// Tooltips holds help text per widget id. It satisfies
// tuning.TooltipRegistry.
type Tooltips struct {
	texts map[string]string
}

// NewTooltips creates an empty registry.
func NewTooltips() *Tooltips {
	return &Tooltips{texts: make(map[string]string)}
}

// Register associates text with id. Empty text registers nothing.
func (t *Tooltips) Register(id, text string) {
	if text == "" {
		return
	}
	t.texts[id] = text
}

// Has reports whether id has help text.
func (t *Tooltips) Has(id string) bool {
	_, ok := t.texts[id]
	return ok
}

// Text returns the help text for id.
func (t *Tooltips) Text(id string) (string, bool) {
	text, ok := t.texts[id]
	return text, ok
}

// Render draws the tooltip for id wrapped to width cells, or "" when id
// has no help text.
func (t *Tooltips) Render(id string, width int) string {
	text, ok := t.texts[id]
	if !ok {
		return ""
	}
	// Border and padding take four cells
	inner := width - 4
	if inner < 10 {
		inner = 10
	}
	return TooltipStyle.Render(wordwrap.String(text, inner))
}
