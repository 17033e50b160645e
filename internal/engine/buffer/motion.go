package buffer

// Caret motions. Each one reports whether the caret moved.

func (d *Document) moveTo(p Position) bool {
	p = d.Clamp(p)
	if p == d.caret {
		return false
	}
	d.caret = p
	return true
}

// MoveUp moves the caret one line up, keeping the cell index when the line
// is long enough.
func (d *Document) MoveUp() bool {
	return d.moveTo(Position{Line: d.caret.Line - 1, Cell: d.caret.Cell})
}

// MoveDown moves the caret one line down.
func (d *Document) MoveDown() bool {
	return d.moveTo(Position{Line: d.caret.Line + 1, Cell: d.caret.Cell})
}

// MoveLeft moves the caret one cell left. At the start of a line it moves
// to the end of the previous line.
func (d *Document) MoveLeft() bool {
	if d.caret.Cell > 0 {
		return d.moveTo(Position{Line: d.caret.Line, Cell: d.caret.Cell - 1})
	}
	if d.caret.Line == 0 {
		return false
	}
	prev := d.caret.Line - 1
	return d.moveTo(Position{Line: prev, Cell: d.lines[prev].CellCount()})
}

// MoveRight moves the caret one cell right. At the end of a line it moves
// to the start of the next line.
func (d *Document) MoveRight() bool {
	if d.caret.Cell < d.lines[d.caret.Line].CellCount() {
		return d.moveTo(Position{Line: d.caret.Line, Cell: d.caret.Cell + 1})
	}
	if d.caret.Line+1 >= len(d.lines) {
		return false
	}
	return d.moveTo(Position{Line: d.caret.Line + 1})
}

// MoveLineStart moves the caret to the start of the current line.
func (d *Document) MoveLineStart() bool {
	return d.moveTo(Position{Line: d.caret.Line})
}

// MoveLineEnd moves the caret to the end of the current line.
func (d *Document) MoveLineEnd() bool {
	return d.moveTo(Position{Line: d.caret.Line, Cell: d.lines[d.caret.Line].CellCount()})
}

// MoveLines moves the caret n lines down, or up when n is negative.
func (d *Document) MoveLines(n int) bool {
	return d.moveTo(Position{Line: d.caret.Line + n, Cell: d.caret.Cell})
}

// MoveDocumentStart moves the caret to the first cell of the document.
func (d *Document) MoveDocumentStart() bool {
	return d.moveTo(Position{})
}

// MoveDocumentEnd moves the caret to the end of the last line.
func (d *Document) MoveDocumentEnd() bool {
	last := len(d.lines) - 1
	return d.moveTo(Position{Line: last, Cell: d.lines[last].CellCount()})
}
