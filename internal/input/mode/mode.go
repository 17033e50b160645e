// Package mode holds the editor's input mode and the command-line prompt.
//
// The editor is either editing the document or using the command line. The
// command line is always opened by a delayed command (find, save as) that
// stays armed until it finishes or Esc disarms it:
//
//	Editing --arm--> CommandLine{armed, editing}
//	CommandLine{editing} --Enter--> CommandLine{armed, post-confirm} or Editing
//	CommandLine{*} --Esc--> Editing
package mode

// Kind is the top-level input mode.
type Kind uint8

const (
	// Editing routes keys to the document.
	Editing Kind = iota
	// CommandLine routes keys to the prompt or the armed command.
	CommandLine
)

// String returns the display name of the kind.
func (k Kind) String() string {
	if k == CommandLine {
		return "COMMAND"
	}
	return "EDIT"
}

// DelayKind identifies a delayed command.
type DelayKind uint8

const (
	DelayNone DelayKind = iota
	DelayFind
	DelaySaveAs
)

// String returns the name of the delayed command.
func (k DelayKind) String() string {
	switch k {
	case DelayFind:
		return "find"
	case DelaySaveAs:
		return "save-as"
	default:
		return "none"
	}
}

// Mode is the editor's current input state. The zero value is Editing.
//
// Armed and InputActive are only meaningful when Kind is CommandLine.
// InputActive is true while the prompt accepts text and false after the
// armed command confirmed its input.
type Mode struct {
	Kind        Kind
	Armed       DelayKind
	InputActive bool
}

// IsEditing reports whether keys go to the document.
func (m Mode) IsEditing() bool { return m.Kind == Editing }

// IsPromptActive reports whether keys go to the prompt input.
func (m Mode) IsPromptActive() bool {
	return m.Kind == CommandLine && m.InputActive
}

// IsPostConfirm reports whether an armed command has confirmed its input
// and now handles keys itself.
func (m Mode) IsPostConfirm() bool {
	return m.Kind == CommandLine && !m.InputActive
}

// Arm opens the command line for kind with the prompt accepting input.
func (m *Mode) Arm(kind DelayKind) {
	*m = Mode{Kind: CommandLine, Armed: kind, InputActive: true}
}

// Confirm leaves prompt input while keeping the command armed.
func (m *Mode) Confirm() {
	if m.Kind == CommandLine {
		m.InputActive = false
	}
}

// Resume re-enables prompt input for the armed command.
func (m *Mode) Resume() {
	if m.Kind == CommandLine {
		m.InputActive = true
	}
}

// Disarm returns to Editing.
func (m *Mode) Disarm() {
	*m = Mode{}
}

// String returns a short description such as "EDIT" or "COMMAND(find)".
func (m Mode) String() string {
	if m.Kind == Editing {
		return m.Kind.String()
	}
	s := m.Kind.String() + "(" + m.Armed.String()
	if !m.InputActive {
		s += ", confirmed"
	}
	return s + ")"
}
