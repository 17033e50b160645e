// Package file provides the quit and save commands and the save-as delayed
// command.
package file

import (
	"fmt"

	"github.com/dshills/cellpad/internal/dispatcher/execctx"
	"github.com/dshills/cellpad/internal/dispatcher/handler"
	"github.com/dshills/cellpad/internal/input/key"
	"github.com/dshills/cellpad/internal/input/mode"
)

// Action names for file operations.
const (
	ActionQuit   = "file.quit"
	ActionSave   = "file.save"
	ActionSaveAs = "file.saveAs"
)

// SaveAsPrompt is the command-line label shown when asking for a file name.
const SaveAsPrompt = "save as: "

// NewInstantFamily creates the family for quit and save. Its keys come
// from the session keymap and work in every mode.
func NewInstantFamily() *handler.ActionTable {
	t := handler.NewActionTable("file", func(ev key.Event, s *execctx.Session) (string, bool) {
		switch {
		case ev.Matches(s.Keymap.Quit):
			return ActionQuit, true
		case ev.Matches(s.Keymap.Save):
			return ActionSave, true
		}
		return "", false
	})
	t.Register(ActionQuit, quit)
	t.Register(ActionSave, save)
	return t
}

func quit(s *execctx.Session) handler.Result {
	remaining := s.RequestQuit(s.LastCommand == ActionQuit)
	if remaining == 0 {
		return handler.Success()
	}
	return handler.NoOpWithMessage(fmt.Sprintf(
		"unsaved changes: press %s %d more time(s) to quit", s.Keymap.Quit, remaining))
}

func save(s *execctx.Session) handler.Result {
	if s.FilePath == "" {
		if s.Mode.Armed == mode.DelaySaveAs && s.Mode.IsPromptActive() {
			return SaveAs{}.Confirm(s)
		}
		s.Mode.Arm(mode.DelaySaveAs)
		s.Prompt.SetPrompt(SaveAsPrompt)
		return handler.Success()
	}
	return writeTo(s, s.FilePath)
}

// writeTo saves the document to path. The modified flag is only cleared
// when the write succeeds.
func writeTo(s *execctx.Session, path string) handler.Result {
	if s.Store == nil {
		return handler.Error(execctx.ErrMissingStore)
	}
	lines := s.Document.Lines()
	if err := s.Store.Save(s.Context(), path, lines); err != nil {
		s.Logger.Error("save %s failed: %v", path, err)
		return handler.Error(fmt.Errorf("save failed: %w", err))
	}
	s.Document.SetModified(false)
	s.Logger.Info("saved %d lines to %s", len(lines), path)
	return handler.SuccessWithMessage(fmt.Sprintf("saved %d lines to %s", len(lines), path))
}

// SaveAs is the delayed command that asks for a file name before saving.
// It has no post-confirm phase: a successful save returns to editing.
type SaveAs struct{}

// Confirm implements handler.Confirmer.
func (SaveAs) Confirm(s *execctx.Session) handler.Result {
	path := s.Prompt.Input()
	if path == "" {
		return handler.NoOpWithMessage("file name required")
	}
	r := writeTo(s, path)
	if r.IsError() {
		return r
	}
	s.Prompt.Commit()
	s.FilePath = path
	s.Mode.Disarm()
	s.Prompt.Clear()
	return r
}
