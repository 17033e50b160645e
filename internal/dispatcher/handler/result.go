package handler

import "fmt"

// ResultStatus is how a command ended.
type ResultStatus uint8

const (
	StatusOK ResultStatus = iota
	// StatusNoOp means the command was recognised but changed nothing, such
	// as moving left at the start of the document.
	StatusNoOp
	StatusError
)

var statusNames = [...]string{"ok", "no-op", "error"}

func (s ResultStatus) String() string {
	if int(s) < len(statusNames) {
		return statusNames[s]
	}
	return "unknown"
}

// ViewUpdate tells the renderer what part of the edit area a command
// invalidated. Caret moves need nothing: the renderer always repaints the
// chrome and places the caret, and a scroll is detected from the viewport.
type ViewUpdate struct {
	// Redraw repaints every row, for edits that shift lines.
	Redraw bool
	// RedrawLines are document line indexes to repaint.
	RedrawLines []int
}

// Result is what applying a command produced.
type Result struct {
	Status ResultStatus
	Error  error

	// Message replaces the command line message. Empty clears it.
	Message string

	ViewUpdate ViewUpdate

	// Consumed and Command are filled in by the dispatcher: whether a
	// family took the event, and which command ran.
	Consumed bool
	Command  string
}

func (r Result) IsOK() bool    { return r.Status == StatusOK }
func (r Result) IsError() bool { return r.Status == StatusError }

// NeedsRedraw reports whether any edit area row is invalid.
func (r Result) NeedsRedraw() bool {
	return r.ViewUpdate.Redraw || len(r.ViewUpdate.RedrawLines) > 0
}

func Success() Result { return Result{Status: StatusOK} }

func SuccessWithMessage(msg string) Result { return Success().WithMessage(msg) }

func NoOp() Result { return Result{Status: StatusNoOp} }

func NoOpWithMessage(msg string) Result { return NoOp().WithMessage(msg) }

// Error returns a failed result whose message is err's text.
func Error(err error) Result {
	r := Result{Status: StatusError, Error: err}
	if err != nil {
		r.Message = err.Error()
	}
	return r
}

func Errorf(format string, args ...any) Result {
	return Error(fmt.Errorf(format, args...))
}

// Moved is the result of a caret motion: OK when the caret moved, a no-op
// when it was already at the boundary.
func Moved(moved bool) Result {
	if moved {
		return Success()
	}
	return NoOp()
}

func (r Result) WithMessage(msg string) Result {
	r.Message = msg
	return r
}

func (r Result) WithRedraw() Result {
	r.ViewUpdate.Redraw = true
	return r
}

// WithRedrawLines adds lines to the set to repaint.
func (r Result) WithRedrawLines(lines ...int) Result {
	r.ViewUpdate.RedrawLines = append(r.ViewUpdate.RedrawLines, lines...)
	return r
}
