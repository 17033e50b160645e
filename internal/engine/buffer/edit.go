package buffer

// InsertCell inserts c at the caret and moves the caret right by one.
func (d *Document) InsertCell(c Cell) {
	line := &d.lines[d.caret.Line]
	line.InsertCell(c, d.caret.Cell)
	d.caret.Cell++
	d.modified = true
}

// Enter splits the current line at the caret and moves the caret to the
// start of the new next line.
func (d *Document) Enter() {
	head, tail := d.lines[d.caret.Line].Split(d.caret.Cell)

	lines := make([]Line, 0, len(d.lines)+1)
	lines = append(lines, d.lines[:d.caret.Line]...)
	lines = append(lines, head, tail)
	lines = append(lines, d.lines[d.caret.Line+1:]...)
	d.lines = lines

	d.caret = Position{Line: d.caret.Line + 1}
	d.modified = true
}

// Delete removes the cell under the caret. At the end of a line it joins
// the next line onto the current one. At the end of the document it does
// nothing. The caret does not move. It reports whether anything changed and
// whether lines were joined.
func (d *Document) Delete() (changed, joined bool) {
	cur := d.caret.Line
	if d.caret.Cell < d.lines[cur].CellCount() {
		d.lines[cur].DeleteCell(d.caret.Cell)
		d.modified = true
		return true, false
	}
	if cur+1 >= len(d.lines) {
		return false, false
	}

	d.lines[cur].Merge(d.lines[cur+1])
	lines := make([]Line, 0, len(d.lines)-1)
	lines = append(lines, d.lines[:cur+1]...)
	lines = append(lines, d.lines[cur+2:]...)
	d.lines = lines
	d.modified = true
	return true, true
}

// Backspace removes the cell before the caret. At the start of a line it
// moves to the end of the previous line and joins the two. At the start of
// the document it does nothing. It reports whether anything changed and
// whether lines were joined.
func (d *Document) Backspace() (changed, joined bool) {
	if d.caret.Line == 0 && d.caret.Cell == 0 {
		return false, false
	}
	if d.caret.Cell == 0 {
		prev := d.caret.Line - 1
		d.caret = Position{Line: prev, Cell: d.lines[prev].CellCount()}
		return d.Delete()
	}
	d.lines[d.caret.Line].DeleteCell(d.caret.Cell - 1)
	d.caret.Cell--
	d.modified = true
	return true, false
}
