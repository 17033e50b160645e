// Package cursor provides the caret movement family used while editing.
package cursor

import (
	"github.com/dshills/cellpad/internal/dispatcher/execctx"
	"github.com/dshills/cellpad/internal/dispatcher/handler"
	"github.com/dshills/cellpad/internal/input/key"
)

// Action names for cursor movements.
const (
	ActionMoveLeft      = "cursor.moveLeft"
	ActionMoveRight     = "cursor.moveRight"
	ActionMoveUp        = "cursor.moveUp"
	ActionMoveDown      = "cursor.moveDown"
	ActionMoveLineStart = "cursor.moveLineStart"
	ActionMoveLineEnd   = "cursor.moveLineEnd"
	ActionPageUp        = "cursor.pageUp"
	ActionPageDown      = "cursor.pageDown"
	ActionMoveFirstLine = "cursor.moveFirstLine"
	ActionMoveLastLine  = "cursor.moveLastLine"
)

var plainKeys = map[key.Key]string{
	key.KeyLeft:     ActionMoveLeft,
	key.KeyRight:    ActionMoveRight,
	key.KeyUp:       ActionMoveUp,
	key.KeyDown:     ActionMoveDown,
	key.KeyHome:     ActionMoveLineStart,
	key.KeyEnd:      ActionMoveLineEnd,
	key.KeyPageUp:   ActionPageUp,
	key.KeyPageDown: ActionPageDown,
}

var ctrlKeys = map[key.Key]string{
	key.KeyHome: ActionMoveFirstLine,
	key.KeyEnd:  ActionMoveLastLine,
}

// NewFamily creates the movement family.
func NewFamily() *handler.ActionTable {
	t := handler.NewActionTable("cursor", resolve)
	t.Register(ActionMoveLeft, func(s *execctx.Session) handler.Result {
		return handler.Moved(s.Document.MoveLeft())
	})
	t.Register(ActionMoveRight, func(s *execctx.Session) handler.Result {
		return handler.Moved(s.Document.MoveRight())
	})
	t.Register(ActionMoveUp, func(s *execctx.Session) handler.Result {
		return handler.Moved(s.Document.MoveUp())
	})
	t.Register(ActionMoveDown, func(s *execctx.Session) handler.Result {
		return handler.Moved(s.Document.MoveDown())
	})
	t.Register(ActionMoveLineStart, func(s *execctx.Session) handler.Result {
		return handler.Moved(s.Document.MoveLineStart())
	})
	t.Register(ActionMoveLineEnd, func(s *execctx.Session) handler.Result {
		return handler.Moved(s.Document.MoveLineEnd())
	})
	t.Register(ActionPageUp, func(s *execctx.Session) handler.Result {
		return handler.Moved(s.Document.MoveLines(-s.PageSize()))
	})
	t.Register(ActionPageDown, func(s *execctx.Session) handler.Result {
		return handler.Moved(s.Document.MoveLines(s.PageSize()))
	})
	t.Register(ActionMoveFirstLine, func(s *execctx.Session) handler.Result {
		return handler.Moved(s.Document.MoveDocumentStart())
	})
	t.Register(ActionMoveLastLine, func(s *execctx.Session) handler.Result {
		return handler.Moved(s.Document.MoveDocumentEnd())
	})
	return t
}

func resolve(ev key.Event, _ *execctx.Session) (string, bool) {
	var action string
	var ok bool
	switch ev.Modifiers {
	case key.ModNone, key.ModShift:
		action, ok = plainKeys[ev.Key]
	case key.ModCtrl:
		action, ok = ctrlKeys[ev.Key]
	}
	return action, ok
}
