// Package renderer paints the editor on a terminal backend.
//
// The screen is split into the edit area, which shows the document through
// a viewport, and two bar rows below it: the status bar and the command
// line. A frame repaints dirty edit rows, both bars and the caret, then
// flushes the backend once.
//
// Usage:
//
//	term := backend.NewTerminal(backend.DefaultTheme())
//	r := renderer.New(term, renderer.DefaultOptions())
//	r.Apply(result.ViewUpdate)
//	r.Render(frame)
package renderer
