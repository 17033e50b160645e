// Package viewport maps document positions to terminal cells and keeps the
// caret on screen by scrolling.
package viewport

import "github.com/dshills/cellpad/internal/engine/buffer"

// Caret is what the viewport needs from a document to place the caret.
type Caret interface {
	Caret() buffer.Position
	CaretColumn() int
}

// Viewport represents the visible portion of the document.
// Offsets are in terminal cells: rows are lines, columns are display columns.
type Viewport struct {
	topLine    int
	leftColumn int

	width  int
	height int
}

// NewViewport creates a viewport with the given size.
// Width and height are clamped to a minimum of 1.
func NewViewport(width, height int) *Viewport {
	v := &Viewport{}
	v.Resize(width, height)
	return v
}

// Width returns the viewport width.
func (v *Viewport) Width() int { return v.width }

// Height returns the viewport height.
func (v *Viewport) Height() int { return v.height }

// TopLine returns the first visible line.
func (v *Viewport) TopLine() int { return v.topLine }

// LeftColumn returns the first visible column.
func (v *Viewport) LeftColumn() int { return v.leftColumn }

// Offset returns the scroll offset as (row, col).
func (v *Viewport) Offset() (row, col int) { return v.topLine, v.leftColumn }

// SetOffset sets the scroll offset. Negative values are clamped to 0.
func (v *Viewport) SetOffset(row, col int) {
	v.topLine = max(row, 0)
	v.leftColumn = max(col, 0)
}

// Resize updates the viewport size.
// Width and height are clamped to a minimum of 1.
func (v *Viewport) Resize(width, height int) {
	v.width = max(width, 1)
	v.height = max(height, 1)
}

// VisibleLineRange returns the half-open range of visible lines.
func (v *Viewport) VisibleLineRange() (start, end int) {
	return v.topLine, v.topLine + v.height
}

// IsLineVisible returns true if the line is within the viewport.
func (v *Viewport) IsLineVisible(line int) bool {
	return line >= v.topLine && line < v.topLine+v.height
}

// LineToScreenRow converts a document line to a screen row.
// The result may be outside [0, Height()).
func (v *Viewport) LineToScreenRow(line int) int {
	return line - v.topLine
}

// CaretToTerminal returns the terminal (row, col) of the document caret.
// It does not scroll.
func (v *Viewport) CaretToTerminal(doc Caret) (row, col int) {
	return doc.Caret().Line - v.topLine, doc.CaretColumn() - v.leftColumn
}

// Follow scrolls so the caret of doc is visible and reports which axes
// changed. Call it after every caret move.
func (v *Viewport) Follow(doc Caret) (rowChanged, colChanged bool) {
	rowChanged = v.ScrollVertically(doc.Caret().Line)
	colChanged = v.ScrollHorizontally(doc.CaretColumn())
	return rowChanged, colChanged
}

// ScrollVertically brings document line into view and reports whether the
// top line changed.
func (v *Viewport) ScrollVertically(line int) bool {
	top := v.topLine
	switch {
	case line < top:
		top = line
	case line > top+v.height-1:
		top = line - v.height + 1
	}
	if top == v.topLine {
		return false
	}
	v.topLine = top
	return true
}

// ScrollHorizontally brings display column col into view and reports
// whether the left column changed. A caret sitting exactly on the right
// edge is past the last visible column, so it scrolls too.
func (v *Viewport) ScrollHorizontally(col int) bool {
	left := v.leftColumn
	switch {
	case col < left:
		left = col
	case col >= left+v.width:
		left = col - v.width + 1
	}
	if left == v.leftColumn {
		return false
	}
	v.leftColumn = left
	return true
}
