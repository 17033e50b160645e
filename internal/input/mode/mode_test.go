package mode

import "testing"

func TestModeTransitions(t *testing.T) {
	var m Mode
	if !m.IsEditing() {
		t.Fatal("zero Mode should be Editing")
	}

	m.Arm(DelayFind)
	if !m.IsPromptActive() || m.Armed != DelayFind {
		t.Errorf("after Arm: %v, want prompt active with find armed", m)
	}

	m.Confirm()
	if !m.IsPostConfirm() || m.Armed != DelayFind {
		t.Errorf("after Confirm: %v, want post-confirm find", m)
	}

	m.Resume()
	if !m.IsPromptActive() {
		t.Errorf("after Resume: %v, want prompt active", m)
	}

	m.Disarm()
	if !m.IsEditing() || m.Armed != DelayNone {
		t.Errorf("after Disarm: %v, want Editing", m)
	}
}

func TestConfirmInEditingIsNoop(t *testing.T) {
	var m Mode
	m.Confirm()
	m.Resume()
	if m != (Mode{}) {
		t.Errorf("Confirm/Resume changed Editing mode to %v", m)
	}
}

func TestModeString(t *testing.T) {
	tests := []struct {
		m    Mode
		want string
	}{
		{Mode{}, "EDIT"},
		{Mode{Kind: CommandLine, Armed: DelayFind, InputActive: true}, "COMMAND(find)"},
		{Mode{Kind: CommandLine, Armed: DelayFind}, "COMMAND(find, confirmed)"},
		{Mode{Kind: CommandLine, Armed: DelaySaveAs, InputActive: true}, "COMMAND(save-as)"},
	}
	for _, tt := range tests {
		if got := tt.m.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
