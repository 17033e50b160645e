package execctx

import "errors"

// Session validation errors.
var (
	// ErrMissingDocument indicates the document is required but not set.
	ErrMissingDocument = errors.New("session: document is required")

	// ErrMissingViewport indicates the viewport is required but not set.
	ErrMissingViewport = errors.New("session: viewport is required")

	// ErrMissingPrompt indicates the prompt is required but not set.
	ErrMissingPrompt = errors.New("session: prompt is required")

	// ErrMissingStore indicates a file operation ran without a store.
	ErrMissingStore = errors.New("session: file store is required")

	// ErrNoPath indicates a save was requested for an unnamed document.
	ErrNoPath = errors.New("session: document has no file name")
)
