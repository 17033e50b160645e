package renderer

import (
	"strings"
	"sync"

	"github.com/dshills/cellpad/internal/dispatcher/handler"
	"github.com/dshills/cellpad/internal/engine/buffer"
	"github.com/dshills/cellpad/internal/input/mode"
	"github.com/dshills/cellpad/internal/renderer/backend"
	"github.com/dshills/cellpad/internal/renderer/dirty"
	"github.com/dshills/cellpad/internal/renderer/statusline"
	"github.com/dshills/cellpad/internal/renderer/viewport"
)

// ChromeRows is the number of rows below the edit area: the status bar and
// the command line.
const ChromeRows = 2

// Options configures the renderer.
type Options struct {
	// EmptyRow is painted on rows past the end of the document.
	EmptyRow string

	// DirtyThreshold is the fraction of dirty edit rows that turns an
	// incremental frame into a full redraw. Zero disables it.
	DirtyThreshold float64
}

// DefaultOptions returns the default renderer options.
func DefaultOptions() Options {
	return Options{
		EmptyRow:       "~",
		DirtyThreshold: 0.5,
	}
}

// Frame is everything one paint needs.
type Frame struct {
	Document *buffer.Document

	// Viewport is expected to match the edit area, see EditHeight.
	Viewport *viewport.Viewport

	// Prompt is shown on the command line when PromptActive is set.
	Prompt       *mode.Prompt
	PromptActive bool

	Message  string
	FileName string
	FileType string
}

// Renderer paints frames on a backend. Edit rows are repainted only when
// their document line is dirty or the viewport scrolled; the status bar and
// command line are painted every frame.
type Renderer struct {
	mu sync.Mutex

	backend backend.Backend
	opts    Options
	dirty   *dirty.Tracker
	status  *statusline.StatusLine

	width, height int

	lastTop, lastLeft int
	painted           bool
}

// New creates a renderer for b sized to the backend.
func New(b backend.Backend, opts Options) *Renderer {
	w, h := b.Size()
	r := &Renderer{
		backend: b,
		opts:    opts,
		status:  statusline.New(),
	}
	r.width, r.height = max(w, 0), max(h, 0)
	r.dirty = dirty.NewTracker(r.EditHeight())
	r.dirty.SetThreshold(opts.DirtyThreshold)
	return r
}

// Size returns the terminal size the renderer paints.
func (r *Renderer) Size() (width, height int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.width, r.height
}

// EditHeight returns the number of rows available to the document.
func (r *Renderer) EditHeight() int {
	return max(r.height-ChromeRows, 0)
}

// Resize updates the terminal size and schedules a full redraw.
func (r *Renderer) Resize(width, height int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.width, r.height = max(width, 0), max(height, 0)
	r.dirty.SetHeight(r.EditHeight())
	r.backend.Clear()
}

// MarkFullRedraw schedules every edit row for repainting.
func (r *Renderer) MarkFullRedraw() {
	r.dirty.MarkFullRedraw()
}

// InvalidateLine schedules document line for repainting.
func (r *Renderer) InvalidateLine(line int) {
	r.dirty.MarkLine(line)
}

// Apply schedules the repaint a command asked for.
func (r *Renderer) Apply(u handler.ViewUpdate) {
	if u.Redraw {
		r.dirty.MarkFullRedraw()
		return
	}
	for _, line := range u.RedrawLines {
		r.InvalidateLine(line)
	}
}

// NeedsRedraw reports whether any edit row is scheduled for repainting.
func (r *Renderer) NeedsRedraw() bool {
	return r.dirty.IsDirty()
}

// Render paints f and flushes the backend once.
func (r *Renderer) Render(f Frame) {
	r.mu.Lock()
	defer r.mu.Unlock()

	top, left := f.Viewport.Offset()
	full := !r.painted || top != r.lastTop || left != r.lastLeft || r.dirty.NeedsFullRedraw()

	editRows := r.EditHeight()
	if full {
		start, end := f.Viewport.VisibleLineRange()
		for line := start; line < min(end, start+editRows); line++ {
			r.paintLine(f, line, editRows)
		}
	} else {
		for _, line := range r.dirty.DirtyLines() {
			if f.Viewport.IsLineVisible(line) {
				r.paintLine(f, line, editRows)
			}
		}
	}

	r.renderChrome(f)
	r.placeCaret(f, editRows)

	r.backend.Show()
	r.dirty.Clear()
	r.lastTop, r.lastLeft = top, left
	r.painted = true
}

// paintLine paints document line on its edit row. Lines past the end of the
// document get the filler.
func (r *Renderer) paintLine(f Frame, line, editRows int) {
	row := f.Viewport.LineToScreenRow(line)
	if row < 0 || row >= editRows {
		return
	}
	if line < f.Document.LinesLen() {
		r.backend.SetRow(row, ClipLine(f.Document.Line(line), f.Viewport.LeftColumn(), r.width), backend.RowText)
	} else {
		r.backend.SetRow(row, r.opts.EmptyRow, backend.RowFiller)
	}
}

func (r *Renderer) renderChrome(f Frame) {
	caret := f.Document.Caret()
	r.status.SetFilename(f.FileName)
	r.status.SetFileType(f.FileType)
	r.status.SetModified(f.Document.IsModified())
	r.status.SetTotalLines(f.Document.LinesLen())
	r.status.SetPosition(caret.Line+1, caret.Cell+1)

	promptText := ""
	if f.PromptActive && f.Prompt != nil {
		promptText = f.Prompt.Render()
	}
	r.status.SetPrompt(f.PromptActive, promptText)
	r.status.SetMessage(f.Message)

	if r.height >= ChromeRows {
		r.backend.SetRow(r.height-2, r.status.Bar(r.width), backend.RowBar)
	}
	if r.height >= 1 {
		r.backend.SetRow(r.height-1, r.status.CommandLine(r.width), backend.RowBar)
	}
}

func (r *Renderer) placeCaret(f Frame, editRows int) {
	if r.width <= 0 || r.height <= 0 {
		r.backend.HideCursor()
		return
	}
	if f.PromptActive && f.Prompt != nil {
		r.backend.ShowCursor(min(f.Prompt.CaretColumn(), r.width-1), r.height-1)
		return
	}
	row, col := f.Viewport.CaretToTerminal(f.Document)
	if row < 0 || row >= editRows || col < 0 || col >= r.width {
		r.backend.HideCursor()
		return
	}
	r.backend.ShowCursor(col, row)
}

// ClipLine returns the part of line between display columns left and
// left+width, built from Line.VisibleCells. A wide cell cut by either edge
// is replaced by spaces for its visible columns so that everything after it
// stays in its column. Combining marks of a cut cell are dropped.
func ClipLine(line buffer.Line, left, width int) string {
	if width <= 0 {
		return ""
	}
	right := left + width
	cells, x := line.VisibleCells(left, right)

	var sb strings.Builder
	cut := false
	for _, c := range cells {
		start := x
		x += c.Width()
		switch {
		case c.Width() == 0:
			if !cut {
				sb.WriteString(c.Content())
			}
		case start < left:
			sb.WriteString(strings.Repeat(" ", min(x, right)-left))
			cut = true
		case x > right:
			sb.WriteString(strings.Repeat(" ", right-start))
			cut = true
		default:
			sb.WriteString(c.Content())
			cut = false
		}
	}
	return sb.String()
}
