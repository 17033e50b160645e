// Package editor provides the text editing family: inserting characters,
// breaking lines and deleting.
package editor

import (
	"github.com/dshills/cellpad/internal/dispatcher/execctx"
	"github.com/dshills/cellpad/internal/dispatcher/handler"
	"github.com/dshills/cellpad/internal/engine/buffer"
	"github.com/dshills/cellpad/internal/input/key"
)

// Action names for edits.
const (
	ActionInsertChar = "editor.insertChar"
	ActionInsertTab  = "editor.insertTab"
	ActionNewline    = "editor.newline"
	ActionBackspace  = "editor.backspace"
	ActionDelete     = "editor.delete"
)

// Family is the edit family. Characters are carried in the command, so it
// does not use an action table.
type Family struct{}

// NewFamily creates the edit family.
func NewFamily() Family { return Family{} }

// Name implements handler.Family.
func (Family) Name() string { return "editor" }

// Parse implements handler.Family.
func (Family) Parse(ev key.Event, _ *execctx.Session) (handler.Command, bool) {
	switch {
	case ev.IsPrintable():
		return insertCommand{action: ActionInsertChar, cell: buffer.NewCell(string(ev.Rune))}, true
	case ev.Is(key.KeyTab):
		return insertCommand{action: ActionInsertTab, cell: buffer.NewCell("\t")}, true
	case ev.Is(key.KeyEnter):
		return handler.NewCommandFunc(ActionNewline, newline), true
	case ev.Is(key.KeyBackspace):
		return handler.NewCommandFunc(ActionBackspace, backspace), true
	case ev.Is(key.KeyDelete):
		return handler.NewCommandFunc(ActionDelete, deleteChar), true
	}
	return nil, false
}

type insertCommand struct {
	action string
	cell   buffer.Cell
}

func (c insertCommand) Name() string { return c.action }

func (c insertCommand) Apply(s *execctx.Session) handler.Result {
	s.Document.InsertCell(c.cell)
	return handler.Success().WithRedrawLines(s.Document.Caret().Line)
}

func newline(s *execctx.Session) handler.Result {
	s.Document.Enter()
	return handler.Success().WithRedraw()
}

func backspace(s *execctx.Session) handler.Result {
	line := s.Document.Caret().Line
	changed, joined := s.Document.Backspace()
	return editResult(line, changed, joined)
}

func deleteChar(s *execctx.Session) handler.Result {
	line := s.Document.Caret().Line
	changed, joined := s.Document.Delete()
	return editResult(line, changed, joined)
}

// editResult maps a delete outcome to a result. A join shifts every line
// below, so it redraws the whole edit area.
func editResult(line int, changed, joined bool) handler.Result {
	switch {
	case !changed:
		return handler.NoOp()
	case joined:
		return handler.Success().WithRedraw()
	}
	return handler.Success().WithRedrawLines(line)
}
