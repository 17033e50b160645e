package cursor

import (
	"testing"

	"github.com/dshills/cellpad/internal/dispatcher/execctx"
	"github.com/dshills/cellpad/internal/engine/buffer"
	"github.com/dshills/cellpad/internal/input/key"
	"github.com/dshills/cellpad/internal/renderer/viewport"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		spec   string
		action string
		ok     bool
	}{
		{"Left", ActionMoveLeft, true},
		{"Right", ActionMoveRight, true},
		{"Up", ActionMoveUp, true},
		{"Down", ActionMoveDown, true},
		{"Home", ActionMoveLineStart, true},
		{"End", ActionMoveLineEnd, true},
		{"PageUp", ActionPageUp, true},
		{"PageDown", ActionPageDown, true},
		{"Ctrl+Home", ActionMoveFirstLine, true},
		{"Ctrl+End", ActionMoveLastLine, true},
		{"Alt+Left", "", false},
		{"Ctrl+Left", "", false},
		{"a", "", false},
		{"Enter", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			action, ok := resolve(key.MustParse(tt.spec), nil)
			if action != tt.action || ok != tt.ok {
				t.Errorf("resolve(%s) = %q, %v, want %q, %v", tt.spec, action, ok, tt.action, tt.ok)
			}
		})
	}
}

func TestPageMovesByViewportHeight(t *testing.T) {
	doc := buffer.NewDocument("0", "1", "2", "3", "4", "5", "6", "7", "8", "9")
	s := execctx.New(doc, viewport.NewViewport(10, 3))
	f := NewFamily()

	page := func(spec string) {
		cmd, ok := f.Parse(key.MustParse(spec), s)
		if !ok {
			t.Fatalf("Parse(%s) not recognised", spec)
		}
		cmd.Apply(s)
	}

	page("PageDown")
	if got := doc.Caret().Line; got != 3 {
		t.Errorf("after PageDown line = %d, want 3", got)
	}
	page("PageDown")
	page("PageDown")
	page("PageDown")
	if got := doc.Caret().Line; got != 9 {
		t.Errorf("PageDown past the end line = %d, want 9", got)
	}
	page("PageUp")
	if got := doc.Caret().Line; got != 6 {
		t.Errorf("after PageUp line = %d, want 6", got)
	}
}

func TestMoveAtBoundaryIsNoOp(t *testing.T) {
	s := execctx.New(buffer.NewDocument("ab"), viewport.NewViewport(10, 3))
	cmd, _ := NewFamily().Parse(key.MustParse("Up"), s)
	if r := cmd.Apply(s); r.IsOK() {
		t.Errorf("Up on the first line status = %v, want no-op", r.Status)
	}
}
