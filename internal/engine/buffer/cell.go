package buffer

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Whitespace placeholders shown in place of literal whitespace.
const (
	SpacePlaceholder = "␣"
	TabPlaceholder   = "␣␣␣␣"

	// TabWidth is the column count of a tab cell.
	TabWidth = 4
)

// Cell is one grapheme cluster and the number of terminal columns it takes.
// Cells are immutable; edits replace them.
type Cell struct {
	content string
	width   int
	saved   string
}

// NewCell creates a cell for a single grapheme cluster.
// A space or tab becomes its placeholder; anything else is kept as is.
func NewCell(grapheme string) Cell {
	switch grapheme {
	case " ":
		return Cell{content: SpacePlaceholder, width: 1, saved: grapheme}
	case "\t":
		return Cell{content: TabPlaceholder, width: TabWidth, saved: grapheme}
	}
	return Cell{content: grapheme, width: StringWidth(grapheme), saved: grapheme}
}

// Segment splits text into cells, one per grapheme cluster.
func Segment(text string) []Cell {
	if text == "" {
		return nil
	}
	cells := make([]Cell, 0, len(text))
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		cells = append(cells, NewCell(g.Str()))
	}
	return cells
}

// StringWidth returns the display width of text.
// Clusters that go-runewidth cannot measure fall back to uniseg.
func StringWidth(text string) int {
	w := runewidth.StringWidth(text)
	if w < 0 {
		w = 0
	}
	if w == 0 {
		if fallback := uniseg.StringWidth(text); fallback > w {
			w = fallback
		}
	}
	return w
}

// Content returns the text painted for the cell.
func (c Cell) Content() string { return c.content }

// Width returns the number of terminal columns the cell occupies.
func (c Cell) Width() int { return c.width }

// Saved returns the text written to disk for the cell.
func (c Cell) Saved() string { return c.saved }
