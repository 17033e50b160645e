package buffer

import "strings"

// Line is an ordered sequence of cells forming one document row.
type Line struct {
	cells []Cell
}

// NewLine segments text into a line.
func NewLine(text string) Line {
	return Line{cells: Segment(text)}
}

// LineFromCells creates a line holding a copy of cells.
func LineFromCells(cells []Cell) Line {
	if len(cells) == 0 {
		return Line{}
	}
	return Line{cells: append([]Cell(nil), cells...)}
}

// CellCount returns the number of cells in the line.
func (l Line) CellCount() int { return len(l.cells) }

// Cell returns the cell at idx. It panics if idx is out of range.
func (l Line) Cell(idx int) Cell { return l.cells[idx] }

// Cells returns a copy of the line's cells.
func (l Line) Cells() []Cell {
	return append([]Cell(nil), l.cells...)
}

// IsEmpty reports whether the line has no cells.
func (l Line) IsEmpty() bool { return len(l.cells) == 0 }

// clampIdx limits idx to [0, CellCount()].
func (l Line) clampIdx(idx int) int {
	if idx < 0 {
		return 0
	}
	if idx > len(l.cells) {
		return len(l.cells)
	}
	return idx
}

// WidthUntil returns the total width of the cells before idx.
// idx is clamped to the line so it never indexes out of range.
func (l Line) WidthUntil(idx int) int {
	idx = l.clampIdx(idx)
	w := 0
	for _, c := range l.cells[:idx] {
		w += c.width
	}
	return w
}

// Width returns the total display width of the line.
func (l Line) Width() int {
	return l.WidthUntil(len(l.cells))
}

// VisibleCells returns the cells whose column span overlaps
// [colStart, colEnd) and the column the first of them starts at. Cells are
// never clipped: a wide cell only partly inside the range is returned whole.
// Zero-width cells travel with the cell before them; leading ones belong to
// column 0.
func (l Line) VisibleCells(colStart, colEnd int) (cells []Cell, firstCol int) {
	colStart = max(colStart, 0)
	if colStart >= colEnd || (colStart > 0 && colStart >= l.Width()) {
		return nil, colStart
	}

	i, x := 0, 0
	for ; i < len(l.cells); i++ {
		c := l.cells[i]
		if c.width > 0 && x+c.width > colStart {
			break
		}
		if c.width == 0 && x == 0 && colStart == 0 {
			break
		}
		x += c.width
	}
	lo := i
	firstCol = x

	for ; i < len(l.cells); i++ {
		c := l.cells[i]
		if c.width > 0 && x >= colEnd {
			break
		}
		x += c.width
	}
	if lo == i {
		return nil, firstCol
	}
	return append([]Cell(nil), l.cells[lo:i]...), firstCol
}

// VisibleSubstring returns the painted text of VisibleCells.
func (l Line) VisibleSubstring(colStart, colEnd int) string {
	cells, _ := l.VisibleCells(colStart, colEnd)
	var sb strings.Builder
	for _, c := range cells {
		sb.WriteString(c.content)
	}
	return sb.String()
}

// InsertCell inserts c before idx. idx is clamped to [0, CellCount()].
func (l *Line) InsertCell(c Cell, idx int) {
	idx = l.clampIdx(idx)
	cells := make([]Cell, 0, len(l.cells)+1)
	cells = append(cells, l.cells[:idx]...)
	cells = append(cells, c)
	cells = append(cells, l.cells[idx:]...)
	l.cells = cells
}

// DeleteCell removes the cell at idx and reports whether one was removed.
func (l *Line) DeleteCell(idx int) bool {
	if idx < 0 || idx >= len(l.cells) {
		return false
	}
	cells := make([]Cell, 0, len(l.cells)-1)
	cells = append(cells, l.cells[:idx]...)
	cells = append(cells, l.cells[idx+1:]...)
	l.cells = cells
	return true
}

// Split partitions the line at cell index at into two new lines.
func (l Line) Split(at int) (head, tail Line) {
	at = l.clampIdx(at)
	return LineFromCells(l.cells[:at]), LineFromCells(l.cells[at:])
}

// Merge appends other's cells to l.
func (l *Line) Merge(other Line) {
	if len(other.cells) == 0 {
		return
	}
	cells := make([]Cell, 0, len(l.cells)+len(other.cells))
	cells = append(cells, l.cells...)
	cells = append(cells, other.cells...)
	l.cells = cells
}

// String returns the saved form of the line, with whitespace placeholders
// turned back into spaces and tabs.
func (l Line) String() string {
	var sb strings.Builder
	for _, c := range l.cells {
		sb.WriteString(c.saved)
	}
	return sb.String()
}

// Render returns the painted form of the line, placeholders included.
func (l Line) Render() string {
	var sb strings.Builder
	for _, c := range l.cells {
		sb.WriteString(c.content)
	}
	return sb.String()
}

// Equal reports whether two lines hold the same cells.
func (l Line) Equal(other Line) bool {
	if len(l.cells) != len(other.cells) {
		return false
	}
	for i := range l.cells {
		if l.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}
