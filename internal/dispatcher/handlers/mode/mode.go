// Package mode provides the escape command that abandons the command line.
package mode

import (
	"github.com/dshills/cellpad/internal/dispatcher/execctx"
	"github.com/dshills/cellpad/internal/dispatcher/handler"
	"github.com/dshills/cellpad/internal/input/key"
)

// ActionEscape disarms any delayed command and returns to editing.
const ActionEscape = "mode.escape"

// NewFamily creates the escape family. Esc is only consumed while the
// command line is open; in editing mode it is dropped.
func NewFamily() *handler.ActionTable {
	t := handler.NewActionTable("mode", func(ev key.Event, s *execctx.Session) (string, bool) {
		if ev.Is(key.KeyEscape) && !s.Mode.IsEditing() {
			return ActionEscape, true
		}
		return "", false
	})
	t.Register(ActionEscape, escape)
	return t
}

func escape(s *execctx.Session) handler.Result {
	s.Mode.Disarm()
	s.Prompt.Clear()
	s.Find.Reset()
	return handler.Success()
}
