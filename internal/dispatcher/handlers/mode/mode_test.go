package mode

import (
	"testing"

	"github.com/dshills/cellpad/internal/dispatcher/execctx"
	"github.com/dshills/cellpad/internal/engine/buffer"
	"github.com/dshills/cellpad/internal/input/key"
	inputmode "github.com/dshills/cellpad/internal/input/mode"
	"github.com/dshills/cellpad/internal/renderer/viewport"
)

func TestEscapeDroppedWhileEditing(t *testing.T) {
	s := execctx.New(buffer.NewDocument("a"), viewport.NewViewport(10, 3))
	if _, ok := NewFamily().Parse(key.MustParse("Escape"), s); ok {
		t.Error("Escape recognised in editing mode")
	}
}

func TestEscapeLeavesCommandLine(t *testing.T) {
	tests := []struct {
		name    string
		confirm bool
	}{
		{"while typing", false},
		{"after confirm", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := execctx.New(buffer.NewDocument("abc"), viewport.NewViewport(10, 3))
			s.Mode.Arm(inputmode.DelayFind)
			s.Prompt.SetPrompt("find: ")
			s.Prompt.SetInput("b")
			s.Find.Query = "b"
			s.Find.Current = 0
			if tt.confirm {
				s.Mode.Confirm()
			}

			cmd, ok := NewFamily().Parse(key.MustParse("Escape"), s)
			if !ok {
				t.Fatal("Escape not recognised on the command line")
			}
			cmd.Apply(s)

			if !s.Mode.IsEditing() {
				t.Errorf("Mode = %v, want editing", s.Mode)
			}
			if s.Prompt.Input() != "" || s.Prompt.Label() != "" {
				t.Errorf("prompt = %q/%q, want cleared", s.Prompt.Label(), s.Prompt.Input())
			}
			if s.Find.Current != -1 || s.Find.Query != "" {
				t.Errorf("Find = %+v, want reset", s.Find)
			}
		})
	}
}

func TestOtherKeysNotRecognised(t *testing.T) {
	s := execctx.New(buffer.NewDocument("a"), viewport.NewViewport(10, 3))
	s.Mode.Arm(inputmode.DelayFind)
	if _, ok := NewFamily().Parse(key.MustParse("a"), s); ok {
		t.Error("rune recognised by escape family")
	}
}
