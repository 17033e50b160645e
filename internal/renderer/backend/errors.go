package backend

import "errors"

var (
	// ErrEventQueueFull is returned by PostEvent when the queue is full.
	ErrEventQueueFull = errors.New("event queue full")

	// ErrNotInitialized is returned when the terminal is used before Init.
	ErrNotInitialized = errors.New("terminal not initialized")
)
