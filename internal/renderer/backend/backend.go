// Package backend provides the terminal surface the renderer paints on.
package backend

import (
	"strings"
	"sync"

	"github.com/rivo/uniseg"

	"github.com/dshills/cellpad/internal/engine/buffer"
	"github.com/dshills/cellpad/internal/input/key"
)

// EventType identifies the type of terminal event.
type EventType int

const (
	EventNone EventType = iota
	EventKey
	EventResize
	// EventInterrupt carries a Payload posted from another goroutine.
	EventInterrupt
	// EventClosed is returned once the backend has shut down.
	EventClosed
)

// Event represents a terminal event.
type Event struct {
	Type EventType

	// Key is set for EventKey.
	Key key.Event

	// Width and Height are set for EventResize.
	Width, Height int

	// Payload is set for EventInterrupt.
	Payload any
}

// RowStyle selects how a painted row looks.
type RowStyle int

const (
	// RowText is document text.
	RowText RowStyle = iota
	// RowFiller marks rows past the end of the document.
	RowFiller
	// RowBar is the status and command line style.
	RowBar
)

// Backend is the terminal surface. Rows are painted whole: SetRow draws
// text from the left edge and clears the rest of the row.
type Backend interface {
	// Init acquires the terminal: raw mode and the alternate screen.
	// Must be called before any other methods.
	Init() error

	// Shutdown restores the terminal. It is safe to call more than once.
	Shutdown()

	// Size returns the current terminal dimensions.
	Size() (width, height int)

	// SetRow paints text on row y. Text wider than the terminal is cut at
	// a grapheme boundary.
	SetRow(y int, text string, style RowStyle)

	// Clear clears the entire screen.
	Clear()

	// Show flushes painted rows to the display.
	Show()

	// ShowCursor positions and displays the cursor.
	ShowCursor(x, y int)

	// HideCursor hides the cursor.
	HideCursor()

	// PollEvent waits for and returns the next terminal event.
	PollEvent() Event

	// PostEvent queues a synthetic event. It may be called from any
	// goroutine.
	PostEvent(ev Event) error
}

// Graphemes splits text into grapheme clusters with their display widths,
// measured the way the document measures cells.
func Graphemes(text string) (clusters []string, widths []int) {
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		s := g.Str()
		clusters = append(clusters, s)
		widths = append(widths, buffer.StringWidth(s))
	}
	return clusters, widths
}

// Fit cuts text to at most width columns without splitting a grapheme.
func Fit(text string, width int) string {
	if width <= 0 {
		return ""
	}
	clusters, widths := Graphemes(text)
	var sb strings.Builder
	x := 0
	for i, c := range clusters {
		if x+widths[i] > width {
			break
		}
		sb.WriteString(c)
		x += widths[i]
	}
	return sb.String()
}

// NullBackend is an in-memory backend for tests. It records the text and
// style of every row.
type NullBackend struct {
	mu sync.Mutex

	width, height int
	rows          []string
	styles        []RowStyle
	paints        []int
	cursorX       int
	cursorY       int
	cursorVisible bool
	shows         int
	initialized   bool
	shutdown      bool
	events        chan Event
}

// NewNullBackend creates a null backend with the given dimensions.
func NewNullBackend(width, height int) *NullBackend {
	b := &NullBackend{events: make(chan Event, 100)}
	b.setSize(width, height)
	return b
}

func (b *NullBackend) setSize(width, height int) {
	b.width, b.height = width, height
	b.rows = make([]string, height)
	b.styles = make([]RowStyle, height)
	b.paints = make([]int, height)
}

func (b *NullBackend) Init() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.initialized = true
	return nil
}

func (b *NullBackend) Shutdown() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.shutdown = true
}

func (b *NullBackend) Size() (int, int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.width, b.height
}

func (b *NullBackend) SetRow(y int, text string, style RowStyle) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if y >= 0 && y < b.height {
		b.rows[y] = Fit(text, b.width)
		b.styles[y] = style
		b.paints[y]++
	}
}

func (b *NullBackend) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	for y := range b.rows {
		b.rows[y] = ""
		b.styles[y] = RowText
	}
}

func (b *NullBackend) Show() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.shows++
}

func (b *NullBackend) ShowCursor(x, y int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.cursorX, b.cursorY, b.cursorVisible = x, y, true
}

func (b *NullBackend) HideCursor() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.cursorVisible = false
}

// PollEvent returns the next posted event, or EventClosed once the backend
// is shut down and the queue is empty.
func (b *NullBackend) PollEvent() Event {
	select {
	case ev := <-b.events:
		return ev
	default:
	}
	b.mu.Lock()
	closed := b.shutdown
	b.mu.Unlock()
	if closed {
		return Event{Type: EventClosed}
	}
	return <-b.events
}

func (b *NullBackend) PostEvent(ev Event) error {
	select {
	case b.events <- ev:
		return nil
	default:
		return ErrEventQueueFull
	}
}

// Row returns the text painted on row y.
func (b *NullBackend) Row(y int) string {
	b.mu.Lock()
	defer b.mu.Unlock()
	if y < 0 || y >= b.height {
		return ""
	}
	return b.rows[y]
}

// RowStyleAt returns the style row y was painted with.
func (b *NullBackend) RowStyleAt(y int) RowStyle {
	b.mu.Lock()
	defer b.mu.Unlock()
	if y < 0 || y >= b.height {
		return RowText
	}
	return b.styles[y]
}

// Paints returns how many times row y was painted since the last resize.
func (b *NullBackend) Paints(y int) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	if y < 0 || y >= b.height {
		return 0
	}
	return b.paints[y]
}

// CursorPosition returns the current cursor position for testing.
func (b *NullBackend) CursorPosition() (x, y int, visible bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.cursorX, b.cursorY, b.cursorVisible
}

// Shows returns how many times Show was called.
func (b *NullBackend) Shows() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.shows
}

// IsShutdown reports whether Shutdown was called.
func (b *NullBackend) IsShutdown() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.shutdown
}

// Resize simulates a terminal resize: rows are cleared and an EventResize
// is queued.
func (b *NullBackend) Resize(width, height int) {
	b.mu.Lock()
	b.setSize(width, height)
	b.mu.Unlock()
	_ = b.PostEvent(Event{Type: EventResize, Width: width, Height: height})
}
