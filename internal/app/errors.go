package app

import (
	"errors"
	"fmt"
)

var (
	// ErrQuit ends the event loop normally.
	ErrQuit = errors.New("quit requested")

	ErrAlreadyRunning = errors.New("application already running")

	// ErrNotTerminal is returned by the command when stdin or stdout is
	// redirected.
	ErrNotTerminal = errors.New("not a terminal")
)

// DegradedError is a failure the editor recovered from by falling back to
// something less useful. It is logged and shown on the command line.
type DegradedError struct {
	Err      error
	Fallback string
}

func (e *DegradedError) Error() string {
	return fmt.Sprintf("%v; %s", e.Err, e.Fallback)
}

func (e *DegradedError) Unwrap() error { return e.Err }

// InitError is a startup failure of one component.
type InitError struct {
	Component string
	Err       error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("starting %s: %v", e.Component, e.Err)
}

func (e *InitError) Unwrap() error { return e.Err }

// RecoveredPanicError carries a panic caught in Run to the log. Its message
// includes the stack, so it never goes on screen.
type RecoveredPanicError struct {
	Value any
	Stack []byte
}

func (e *RecoveredPanicError) Error() string {
	if len(e.Stack) == 0 {
		return fmt.Sprintf("panic: %v", e.Value)
	}
	return fmt.Sprintf("panic: %v\n%s", e.Value, e.Stack)
}
