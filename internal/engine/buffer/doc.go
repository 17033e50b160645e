// Package buffer provides the cell-addressed text model the editor edits.
//
// Text is split into grapheme clusters and each cluster becomes a Cell that
// knows how many terminal columns it occupies. A Line is an ordered slice of
// cells and a Document is a non-empty slice of lines plus a caret.
//
// Positions:
//
//   - Position.Line indexes Document lines and is always < LinesLen().
//   - Position.Cell indexes cells in that line and may equal the line's
//     cell count, meaning "after the last cell".
//
// Whitespace is made visible while editing. A space is stored as a one
// column placeholder and a tab as a four column placeholder; the original
// character is restored when a line is serialized with Line.String.
//
// Basic usage:
//
//	doc := buffer.NewDocument("hello", "world")
//	doc.SetCaret(buffer.Position{Line: 0, Cell: 5})
//	doc.Enter()                         // "hello", "", "world"
//	doc.InsertCell(buffer.NewCell("x")) // "hello", "x", "world"
//	lines := doc.Lines()                // saved form, ready for a file
//
// Document is not safe for concurrent use. The editor owns one document and
// mutates it from its event loop only.
package buffer
