package dispatcher

import (
	"github.com/dshills/cellpad/internal/dispatcher/handler"
	"github.com/dshills/cellpad/internal/dispatcher/handlers/cursor"
	"github.com/dshills/cellpad/internal/dispatcher/handlers/editor"
	"github.com/dshills/cellpad/internal/dispatcher/handlers/file"
	modehandler "github.com/dshills/cellpad/internal/dispatcher/handlers/mode"
	"github.com/dshills/cellpad/internal/dispatcher/handlers/prompt"
	"github.com/dshills/cellpad/internal/dispatcher/handlers/search"
	"github.com/dshills/cellpad/internal/input/mode"
)

// DefaultRoutes returns the editor's standard families:
//
//	instant:      file (quit, save), mode (escape)
//	editing:      search (find trigger), editor, cursor
//	prompt:       prompt, confirming find or save-as
//	post-confirm: search for find
func DefaultRoutes() Routes {
	find := search.New()
	return Routes{
		Instant: []handler.Family{file.NewInstantFamily(), modehandler.NewFamily()},
		Editing: []handler.Family{find, editor.NewFamily(), cursor.NewFamily()},
		Prompt: []handler.Family{prompt.NewFamily(map[mode.DelayKind]handler.Confirmer{
			mode.DelayFind:   find,
			mode.DelaySaveAs: file.SaveAs{},
		})},
		PostConfirm: map[mode.DelayKind][]handler.Family{
			mode.DelayFind: {find},
		},
	}
}

// NewDefault creates a dispatcher with DefaultRoutes.
func NewDefault(config Config) *Dispatcher {
	return New(DefaultRoutes(), config)
}
