// Package prompt provides the family that edits command-line input while a
// delayed command is waiting for it.
package prompt

import (
	"github.com/dshills/cellpad/internal/dispatcher/execctx"
	"github.com/dshills/cellpad/internal/dispatcher/handler"
	"github.com/dshills/cellpad/internal/engine/buffer"
	"github.com/dshills/cellpad/internal/input/key"
	"github.com/dshills/cellpad/internal/input/mode"
)

// Action names for prompt editing.
const (
	ActionInsert      = "prompt.insert"
	ActionBackspace   = "prompt.backspace"
	ActionDelete      = "prompt.delete"
	ActionMoveLeft    = "prompt.moveLeft"
	ActionMoveRight   = "prompt.moveRight"
	ActionMoveHome    = "prompt.moveHome"
	ActionMoveEnd     = "prompt.moveEnd"
	ActionHistoryPrev = "prompt.historyPrev"
	ActionHistoryNext = "prompt.historyNext"
	ActionConfirm     = "prompt.confirm"
)

var editKeys = map[key.Key]string{
	key.KeyBackspace: ActionBackspace,
	key.KeyDelete:    ActionDelete,
	key.KeyLeft:      ActionMoveLeft,
	key.KeyRight:     ActionMoveRight,
	key.KeyHome:      ActionMoveHome,
	key.KeyEnd:       ActionMoveEnd,
	key.KeyUp:        ActionHistoryPrev,
	key.KeyDown:      ActionHistoryNext,
	key.KeyEnter:     ActionConfirm,
}

var editFuncs = map[string]func(p *mode.Prompt) bool{
	ActionBackspace:   (*mode.Prompt).Backspace,
	ActionDelete:      (*mode.Prompt).Delete,
	ActionMoveLeft:    (*mode.Prompt).MoveLeft,
	ActionMoveRight:   (*mode.Prompt).MoveRight,
	ActionMoveHome:    (*mode.Prompt).MoveHome,
	ActionMoveEnd:     (*mode.Prompt).MoveEnd,
	ActionHistoryPrev: (*mode.Prompt).HistoryPrev,
	ActionHistoryNext: (*mode.Prompt).HistoryNext,
}

// Family edits the prompt input and hands Enter to the armed command.
type Family struct {
	confirmers map[mode.DelayKind]handler.Confirmer
}

// NewFamily creates the prompt family with the confirm handler of each
// delayed command.
func NewFamily(confirmers map[mode.DelayKind]handler.Confirmer) *Family {
	return &Family{confirmers: confirmers}
}

// Name implements handler.Family.
func (f *Family) Name() string { return "prompt" }

// Parse implements handler.Family.
func (f *Family) Parse(ev key.Event, s *execctx.Session) (handler.Command, bool) {
	if !s.Mode.IsPromptActive() {
		return nil, false
	}
	switch {
	case ev.IsPrintable():
		return insertCommand{cell: buffer.NewCell(string(ev.Rune))}, true
	case ev.Is(key.KeyTab):
		return insertCommand{cell: buffer.NewCell("\t")}, true
	case ev.Modifiers != key.ModNone:
		return nil, false
	}

	action, ok := editKeys[ev.Key]
	if !ok {
		return nil, false
	}
	if action == ActionConfirm {
		c, ok := f.confirmers[s.Mode.Armed]
		if !ok {
			return nil, false
		}
		return handler.NewCommandFunc(ActionConfirm, c.Confirm), true
	}
	edit := editFuncs[action]
	return handler.NewCommandFunc(action, func(s *execctx.Session) handler.Result {
		return handler.Moved(edit(s.Prompt))
	}), true
}

type insertCommand struct {
	cell buffer.Cell
}

func (insertCommand) Name() string { return ActionInsert }

func (c insertCommand) Apply(s *execctx.Session) handler.Result {
	s.Prompt.Insert(c.cell)
	return handler.Success()
}
