package buffer

// Document is a non-empty sequence of lines, a caret and a modified flag.
// Every mutator leaves the caret clamped to a valid position.
type Document struct {
	lines    []Line
	caret    Position
	modified bool
}

// NewDocument creates a document from raw text lines.
// With no lines the document holds a single empty line.
func NewDocument(lines ...string) *Document {
	d := &Document{}
	d.Reset(lines)
	return d
}

// Reset replaces the content with lines, moves the caret to the start and
// clears the modified flag.
func (d *Document) Reset(lines []string) {
	d.lines = make([]Line, 0, max(len(lines), 1))
	for _, s := range lines {
		d.lines = append(d.lines, NewLine(s))
	}
	if len(d.lines) == 0 {
		d.lines = append(d.lines, Line{})
	}
	d.caret = Position{}
	d.modified = false
}

// LinesLen returns the number of lines. It is always at least 1.
func (d *Document) LinesLen() int { return len(d.lines) }

// Line returns line i. It panics if i is out of range.
// The returned value shares no mutable state with the document.
func (d *Document) Line(i int) Line { return d.lines[i] }

// CurrentLine returns the line holding the caret.
func (d *Document) CurrentLine() Line { return d.lines[d.caret.Line] }

// Caret returns the caret position.
func (d *Document) Caret() Position { return d.caret }

// SetCaret moves the caret to p after clamping it.
func (d *Document) SetCaret(p Position) {
	d.caret = d.Clamp(p)
}

// Clamp limits p to a valid position: the line to [0, LinesLen()-1] and the
// cell to [0, cell count of that line].
func (d *Document) Clamp(p Position) Position {
	if p.Line < 0 {
		p.Line = 0
	}
	if p.Line >= len(d.lines) {
		p.Line = len(d.lines) - 1
	}
	p.Cell = d.lines[p.Line].clampIdx(p.Cell)
	return p
}

// IsModified reports whether the document changed since load or save.
func (d *Document) IsModified() bool { return d.modified }

// SetModified sets the modified flag.
func (d *Document) SetModified(modified bool) { d.modified = modified }

// Lines returns the saved form of every line.
func (d *Document) Lines() []string {
	out := make([]string, len(d.lines))
	for i, l := range d.lines {
		out[i] = l.String()
	}
	return out
}

// CaretColumn returns the display column of the caret within its line.
func (d *Document) CaretColumn() int {
	return d.lines[d.caret.Line].WidthUntil(d.caret.Cell)
}
