package mode

import "github.com/dshills/cellpad/internal/engine/buffer"

const maxHistory = 50

// Prompt is the command-line input: a label such as "find: " followed by an
// editable line with its own caret. Input shares the document's cell model,
// so spaces and tabs show as placeholders here too.
type Prompt struct {
	label string
	input buffer.Line
	caret int

	// history holds previously committed inputs, oldest first.
	history []string
	// histIdx is the position in history while browsing; -1 is live input.
	histIdx int
	// saved holds the live input while browsing history.
	saved string
}

// NewPrompt creates an empty prompt.
func NewPrompt() *Prompt {
	return &Prompt{histIdx: -1}
}

// SetPrompt sets the label and clears the input.
func (p *Prompt) SetPrompt(label string) {
	p.label = label
	p.SetInput("")
}

// Label returns the prompt label.
func (p *Prompt) Label() string { return p.label }

// Clear removes the label and the input.
func (p *Prompt) Clear() {
	p.SetPrompt("")
}

// Input returns the saved form of the input text.
func (p *Prompt) Input() string { return p.input.String() }

// SetInput replaces the input and puts the caret at its end.
func (p *Prompt) SetInput(text string) {
	p.input = buffer.NewLine(text)
	p.caret = p.input.CellCount()
	p.histIdx = -1
}

// Caret returns the caret's cell index within the input.
func (p *Prompt) Caret() int { return p.caret }

// CaretColumn returns the display column of the caret, label included.
func (p *Prompt) CaretColumn() int {
	return buffer.StringWidth(p.label) + p.input.WidthUntil(p.caret)
}

// Render returns the label followed by the painted input.
func (p *Prompt) Render() string {
	return p.label + p.input.Render()
}

// Insert inserts a cell at the caret.
func (p *Prompt) Insert(c buffer.Cell) {
	p.input.InsertCell(c, p.caret)
	p.caret++
}

// Backspace deletes the cell before the caret.
func (p *Prompt) Backspace() bool {
	if p.caret == 0 {
		return false
	}
	p.input.DeleteCell(p.caret - 1)
	p.caret--
	return true
}

// Delete deletes the cell under the caret.
func (p *Prompt) Delete() bool {
	return p.input.DeleteCell(p.caret)
}

// MoveLeft moves the caret one cell left.
func (p *Prompt) MoveLeft() bool {
	if p.caret == 0 {
		return false
	}
	p.caret--
	return true
}

// MoveRight moves the caret one cell right.
func (p *Prompt) MoveRight() bool {
	if p.caret >= p.input.CellCount() {
		return false
	}
	p.caret++
	return true
}

// MoveHome moves the caret to the start of the input.
func (p *Prompt) MoveHome() bool {
	moved := p.caret != 0
	p.caret = 0
	return moved
}

// MoveEnd moves the caret to the end of the input.
func (p *Prompt) MoveEnd() bool {
	end := p.input.CellCount()
	moved := p.caret != end
	p.caret = end
	return moved
}

// Commit records the current input in the history.
// Empty input and repeats of the latest entry are skipped.
func (p *Prompt) Commit() {
	text := p.input.String()
	p.histIdx = -1
	if text == "" || (len(p.history) > 0 && p.history[len(p.history)-1] == text) {
		return
	}
	p.history = append(p.history, text)
	if len(p.history) > maxHistory {
		p.history = p.history[len(p.history)-maxHistory:]
	}
}

// HistoryPrev replaces the input with the previous history entry.
func (p *Prompt) HistoryPrev() bool {
	if len(p.history) == 0 {
		return false
	}
	switch {
	case p.histIdx == -1:
		p.saved = p.input.String()
		p.histIdx = len(p.history) - 1
	case p.histIdx > 0:
		p.histIdx--
	default:
		return false
	}
	p.load(p.history[p.histIdx])
	return true
}

// HistoryNext moves forward through the history, ending at the live input.
func (p *Prompt) HistoryNext() bool {
	if p.histIdx == -1 {
		return false
	}
	if p.histIdx < len(p.history)-1 {
		p.histIdx++
		p.load(p.history[p.histIdx])
		return true
	}
	p.histIdx = -1
	p.load(p.saved)
	return true
}

func (p *Prompt) load(text string) {
	p.input = buffer.NewLine(text)
	p.caret = p.input.CellCount()
}
