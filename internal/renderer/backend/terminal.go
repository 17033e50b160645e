package backend

import (
	"sync"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/cellpad/internal/input/key"
)

// Terminal implements Backend using tcell.
type Terminal struct {
	mu          sync.Mutex
	screen      tcell.Screen
	theme       Theme
	initialized bool
	finished    bool
}

// NewTerminal creates a terminal backend on the process's terminal.
func NewTerminal(theme Theme) (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewTerminalWithScreen(screen, theme), nil
}

// NewTerminalWithScreen creates a terminal backend on screen, such as a
// tcell.SimulationScreen.
func NewTerminalWithScreen(screen tcell.Screen, theme Theme) *Terminal {
	return &Terminal{screen: screen, theme: theme}
}

func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.screen.Init(); err != nil {
		return err
	}
	t.initialized = true
	t.screen.SetStyle(tcell.StyleDefault)
	t.screen.Clear()
	return nil
}

// Shutdown restores the terminal. Calls after the first, or before Init,
// do nothing.
func (t *Terminal) Shutdown() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finished {
		return
	}
	t.finished = true
	t.screen.Fini()
}

func (t *Terminal) Size() (int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.screen.Size()
}

func (t *Terminal) SetRow(y int, text string, style RowStyle) {
	t.mu.Lock()
	defer t.mu.Unlock()

	width, height := t.screen.Size()
	if y < 0 || y >= height {
		return
	}
	st := t.theme.Style(style)

	// A cell is held back until the next one starts so that zero-width
	// clusters after it can join its combining runes. Marks with no cell
	// before them go on the first one.
	var (
		x, cellX int
		main     rune
		combc    []rune
		held     bool
	)
	flush := func() {
		if held {
			t.screen.SetContent(cellX, y, main, combc, st)
		}
	}

	clusters, widths := Graphemes(text)
	for i, c := range clusters {
		runes := []rune(c)
		w := widths[i]
		if w == 0 {
			combc = append(combc, runes...)
			continue
		}
		if x+w > width {
			break
		}
		flush()
		lead := combc
		if held {
			lead = nil
		}
		cellX, main, held = x, runes[0], true
		combc = append(runes[1:], lead...)
		x += w
	}
	if !held && len(combc) > 0 && width > 0 {
		cellX, main, held = 0, ' ', true
		x = 1
	}
	flush()
	for ; x < width; x++ {
		t.screen.SetContent(x, y, ' ', nil, st)
	}
}

func (t *Terminal) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.screen.Clear()
}

func (t *Terminal) Show() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.screen.Show()
}

func (t *Terminal) ShowCursor(x, y int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.screen.ShowCursor(x, y)
}

func (t *Terminal) HideCursor() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.screen.HideCursor()
}

// PollEvent blocks until the next event. It returns EventClosed after
// Shutdown.
func (t *Terminal) PollEvent() Event {
	ev := t.screen.PollEvent()
	if ev == nil {
		return Event{Type: EventClosed}
	}
	return convertEvent(ev)
}

func (t *Terminal) PostEvent(ev Event) error {
	var tev tcell.Event
	switch ev.Type {
	case EventKey:
		k, r, mod := toTcellKey(ev.Key)
		tev = tcell.NewEventKey(k, r, mod)
	case EventResize:
		tev = tcell.NewEventResize(ev.Width, ev.Height)
	default:
		tev = tcell.NewEventInterrupt(ev.Payload)
	}
	if err := t.screen.PostEvent(tev); err != nil {
		return ErrEventQueueFull
	}
	return nil
}

func convertEvent(ev tcell.Event) Event {
	switch e := ev.(type) {
	case *tcell.EventKey:
		return Event{Type: EventKey, Key: convertKey(e)}
	case *tcell.EventResize:
		w, h := e.Size()
		return Event{Type: EventResize, Width: w, Height: h}
	case *tcell.EventInterrupt:
		return Event{Type: EventInterrupt, Payload: e.Data()}
	default:
		return Event{Type: EventNone}
	}
}

var specialKeys = map[tcell.Key]key.Key{
	tcell.KeyEscape:     key.KeyEscape,
	tcell.KeyEnter:      key.KeyEnter,
	tcell.KeyTab:        key.KeyTab,
	tcell.KeyBackspace:  key.KeyBackspace,
	tcell.KeyBackspace2: key.KeyBackspace,
	tcell.KeyDelete:     key.KeyDelete,
	tcell.KeyInsert:     key.KeyInsert,
	tcell.KeyHome:       key.KeyHome,
	tcell.KeyEnd:        key.KeyEnd,
	tcell.KeyPgUp:       key.KeyPageUp,
	tcell.KeyPgDn:       key.KeyPageDown,
	tcell.KeyUp:         key.KeyUp,
	tcell.KeyDown:       key.KeyDown,
	tcell.KeyLeft:       key.KeyLeft,
	tcell.KeyRight:      key.KeyRight,
	tcell.KeyF1:         key.KeyF1,
	tcell.KeyF2:         key.KeyF2,
	tcell.KeyF3:         key.KeyF3,
	tcell.KeyF4:         key.KeyF4,
	tcell.KeyF5:         key.KeyF5,
	tcell.KeyF6:         key.KeyF6,
	tcell.KeyF7:         key.KeyF7,
	tcell.KeyF8:         key.KeyF8,
	tcell.KeyF9:         key.KeyF9,
	tcell.KeyF10:        key.KeyF10,
	tcell.KeyF11:        key.KeyF11,
	tcell.KeyF12:        key.KeyF12,
}

// convertKey converts a tcell key event. Control characters arrive as
// their own tcell keys and become Ctrl plus a lowercase letter; Backspace,
// Tab and Enter share codes with Ctrl+H, Ctrl+I and Ctrl+M and win.
func convertKey(e *tcell.EventKey) key.Event {
	mods := convertMod(e.Modifiers())
	k := e.Key()

	if k == tcell.KeyRune {
		r := e.Rune()
		if mods.Has(key.ModCtrl) {
			r = unicode.ToLower(r)
		}
		return key.NewRuneEvent(r, mods)
	}
	if k == tcell.KeyBacktab {
		return key.NewSpecialEvent(key.KeyTab, mods.With(key.ModShift))
	}
	if sk, ok := specialKeys[k]; ok {
		switch sk {
		case key.KeyEnter, key.KeyTab, key.KeyBackspace, key.KeyEscape:
			mods &^= key.ModCtrl
		}
		return key.NewSpecialEvent(sk, mods)
	}
	if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		return key.NewRuneEvent(rune('a'+int(k-tcell.KeyCtrlA)), mods.With(key.ModCtrl))
	}
	if k == tcell.KeyCtrlSpace {
		return key.NewRuneEvent(' ', mods.With(key.ModCtrl))
	}
	return key.Event{}
}

// toTcellKey is the inverse of convertKey, used for posting key events.
func toTcellKey(ev key.Event) (tcell.Key, rune, tcell.ModMask) {
	mod := toTcellMod(ev.Modifiers)
	if ev.Key == key.KeyRune {
		return tcell.KeyRune, ev.Rune, mod
	}
	for tk, k := range specialKeys {
		if k == ev.Key && tk != tcell.KeyBackspace {
			return tk, 0, mod
		}
	}
	return tcell.KeyRune, 0, mod
}

func convertMod(m tcell.ModMask) key.Modifier {
	var result key.Modifier
	if m&tcell.ModShift != 0 {
		result |= key.ModShift
	}
	if m&tcell.ModCtrl != 0 {
		result |= key.ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		result |= key.ModAlt
	}
	if m&tcell.ModMeta != 0 {
		result |= key.ModMeta
	}
	return result
}

func toTcellMod(m key.Modifier) tcell.ModMask {
	var result tcell.ModMask
	if m.Has(key.ModShift) {
		result |= tcell.ModShift
	}
	if m.Has(key.ModCtrl) {
		result |= tcell.ModCtrl
	}
	if m.Has(key.ModAlt) {
		result |= tcell.ModAlt
	}
	if m.Has(key.ModMeta) {
		result |= tcell.ModMeta
	}
	return result
}
