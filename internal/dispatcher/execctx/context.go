// Package execctx provides the editor session that commands execute against.
package execctx

import (
	"context"

	"github.com/dshills/cellpad/internal/engine/buffer"
	"github.com/dshills/cellpad/internal/input/key"
	"github.com/dshills/cellpad/internal/input/mode"
	"github.com/dshills/cellpad/internal/renderer/viewport"
)

// FileStore loads and saves documents as lines of text.
type FileStore interface {
	Load(ctx context.Context, path string) ([]string, error)
	Save(ctx context.Context, path string, lines []string) error
}

// Logger is the logging surface commands use.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// Keymap holds the configurable bindings for instant and delayed commands.
type Keymap struct {
	Quit key.Event
	Save key.Event
	Find key.Event
}

// DefaultKeymap returns the built-in bindings.
func DefaultKeymap() Keymap {
	return Keymap{
		Quit: key.MustParse("Ctrl+Q"),
		Save: key.MustParse("Ctrl+S"),
		Find: key.MustParse("Ctrl+F"),
	}
}

// FindState holds the confirmed find query and its matches.
type FindState struct {
	Query   string
	Matches []buffer.Position
	// Current is the index of the match at the caret, or -1.
	Current int
}

// Reset clears the find state.
func (f *FindState) Reset() {
	*f = FindState{Current: -1}
}

// Session is the state every command executes against. It is owned by the
// event loop and accessed by one command at a time.
type Session struct {
	Document *buffer.Document
	Viewport *viewport.Viewport
	Mode     mode.Mode
	Prompt   *mode.Prompt
	Find     FindState

	// FilePath is the document's file, empty for a new unnamed document.
	FilePath string
	Store    FileStore
	Keymap   Keymap
	Logger   Logger

	// QuitConfirmations is how many extra quit presses a modified document
	// needs before the editor exits.
	QuitConfirmations int

	// Message is shown on the command line until the next command.
	Message string

	// LastCommand is the name of the previously applied command, empty
	// when the previous event was dropped.
	LastCommand string

	ctx         context.Context
	quit        bool
	quitPresses int
}

// New creates a session for doc displayed in vp.
func New(doc *buffer.Document, vp *viewport.Viewport) *Session {
	s := &Session{
		Document: doc,
		Viewport: vp,
		Prompt:   mode.NewPrompt(),
		Keymap:   DefaultKeymap(),
		Logger:   nopLogger{},
		ctx:      context.Background(),

		QuitConfirmations: 1,
	}
	s.Find.Reset()
	return s
}

// WithContext returns the session with ctx used for blocking operations.
func (s *Session) WithContext(ctx context.Context) *Session {
	if ctx != nil {
		s.ctx = ctx
	}
	return s
}

// WithStore returns the session with the file store set.
func (s *Session) WithStore(store FileStore) *Session {
	s.Store = store
	return s
}

// WithLogger returns the session with the logger set.
func (s *Session) WithLogger(l Logger) *Session {
	if l != nil {
		s.Logger = l
	}
	return s
}

// Context returns the context for blocking operations such as saving.
func (s *Session) Context() context.Context { return s.ctx }

// Validate checks that the session has what commands need.
func (s *Session) Validate() error {
	switch {
	case s.Document == nil:
		return ErrMissingDocument
	case s.Viewport == nil:
		return ErrMissingViewport
	case s.Prompt == nil:
		return ErrMissingPrompt
	}
	return nil
}

// RequestQuit asks the editor to exit. A modified document needs
// QuitConfirmations further consecutive requests. It returns how many more
// requests are needed; 0 means the quit flag is now set.
func (s *Session) RequestQuit(consecutive bool) int {
	if !s.Document.IsModified() {
		s.quit = true
		return 0
	}
	if consecutive {
		s.quitPresses++
	} else {
		s.quitPresses = 1
	}
	remaining := s.QuitConfirmations + 1 - s.quitPresses
	if remaining <= 0 {
		s.quit = true
		return 0
	}
	return remaining
}

// ShouldQuit reports whether a quit was requested and confirmed.
func (s *Session) ShouldQuit() bool { return s.quit }

// PageSize returns the number of lines a page motion moves.
func (s *Session) PageSize() int {
	return max(s.Viewport.Height(), 1)
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}
