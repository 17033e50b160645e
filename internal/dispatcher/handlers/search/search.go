// Package search provides the find delayed command.
//
// Find is armed from editing mode with the find key. The query is typed on
// the command line and confirmed with Enter, which moves the caret to the
// first match at or after it. After confirming, Up/Left jump to the
// previous match, Down/Right to the next one, Enter keeps the caret where
// it is and returns to editing, and the find key edits the query again.
package search

import (
	"fmt"

	"github.com/dshills/cellpad/internal/dispatcher/execctx"
	"github.com/dshills/cellpad/internal/dispatcher/handler"
	"github.com/dshills/cellpad/internal/engine/buffer"
	"github.com/dshills/cellpad/internal/input/key"
	"github.com/dshills/cellpad/internal/input/mode"
)

// Action names for find.
const (
	ActionFind      = "search.find"
	ActionEditQuery = "search.editQuery"
	ActionNext      = "search.next"
	ActionPrev      = "search.prev"
	ActionAccept    = "search.accept"
)

// Prompt is the command-line label for the query.
const Prompt = "find: "

// Find is the find delayed command. It implements handler.Family for the
// trigger and post-confirm keys, and handler.Confirmer for the query.
type Find struct {
	table *handler.ActionTable
}

// New creates the find command.
func New() *Find {
	f := &Find{}
	f.table = handler.NewActionTable("search", resolve)
	f.table.Register(ActionFind, arm)
	f.table.Register(ActionEditQuery, editQuery)
	f.table.Register(ActionNext, func(s *execctx.Session) handler.Result {
		return jump(s, buffer.NextMatch(s.Find.Matches, s.Document.Caret()))
	})
	f.table.Register(ActionPrev, func(s *execctx.Session) handler.Result {
		return jump(s, buffer.PrevMatch(s.Find.Matches, s.Document.Caret()))
	})
	f.table.Register(ActionAccept, accept)
	return f
}

// Name implements handler.Family.
func (f *Find) Name() string { return f.table.Name() }

// Parse implements handler.Family.
func (f *Find) Parse(ev key.Event, s *execctx.Session) (handler.Command, bool) {
	return f.table.Parse(ev, s)
}

func resolve(ev key.Event, s *execctx.Session) (string, bool) {
	if s.Mode.IsEditing() {
		return ActionFind, ev.Matches(s.Keymap.Find)
	}
	if !s.Mode.IsPostConfirm() || s.Mode.Armed != mode.DelayFind {
		return "", false
	}
	switch {
	case ev.Matches(s.Keymap.Find):
		return ActionEditQuery, true
	case ev.Is(key.KeyUp), ev.Is(key.KeyLeft):
		return ActionPrev, true
	case ev.Is(key.KeyDown), ev.Is(key.KeyRight):
		return ActionNext, true
	case ev.Is(key.KeyEnter):
		return ActionAccept, true
	}
	return "", false
}

func arm(s *execctx.Session) handler.Result {
	s.Mode.Arm(mode.DelayFind)
	s.Prompt.SetPrompt(Prompt)
	s.Find.Reset()
	return handler.Success()
}

func editQuery(s *execctx.Session) handler.Result {
	s.Mode.Resume()
	s.Prompt.MoveEnd()
	return handler.Success()
}

func accept(s *execctx.Session) handler.Result {
	s.Mode.Disarm()
	s.Prompt.Clear()
	s.Find.Reset()
	return handler.Success()
}

// Confirm implements handler.Confirmer. An empty query returns to editing.
func (f *Find) Confirm(s *execctx.Session) handler.Result {
	query := s.Prompt.Input()
	if query == "" {
		return accept(s)
	}
	s.Prompt.Commit()
	s.Mode.Confirm()
	s.Find = execctx.FindState{
		Query:   query,
		Matches: s.Document.FindAll(query),
		Current: -1,
	}
	if len(s.Find.Matches) == 0 {
		return handler.NoOpWithMessage(fmt.Sprintf("no matches for %q", query))
	}
	return jump(s, buffer.FirstMatchFrom(s.Find.Matches, s.Document.Caret()))
}

func jump(s *execctx.Session, idx int) handler.Result {
	if idx < 0 {
		return handler.NoOpWithMessage(fmt.Sprintf("no matches for %q", s.Find.Query))
	}
	s.Find.Current = idx
	s.Document.SetCaret(s.Find.Matches[idx])
	return handler.SuccessWithMessage(fmt.Sprintf("match %d of %d", idx+1, len(s.Find.Matches)))
}
