// Package dirty tracks which document lines need repainting between frames.
package dirty

import (
	"sort"
	"sync"
)

// Tracker records dirty document lines. Once more lines than a fraction of
// the edit area are dirty, it switches to a full redraw.
type Tracker struct {
	mu sync.Mutex

	lines      map[int]struct{}
	fullRedraw bool

	// height is the number of edit rows.
	height int

	// threshold is the fraction of height that triggers a full redraw.
	threshold float64
}

// NewTracker creates a tracker for an edit area of height rows.
// The first frame is always a full redraw.
func NewTracker(height int) *Tracker {
	return &Tracker{
		lines:      make(map[int]struct{}),
		fullRedraw: true,
		height:     max(height, 0),
		threshold:  0.5,
	}
}

// SetHeight updates the edit area height and forces a full redraw.
func (t *Tracker) SetHeight(height int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.height = max(height, 0)
	t.markFull()
}

// SetThreshold sets the fraction of the edit area that, once dirty, turns
// into a full redraw. Values outside (0, 1] disable the switch.
func (t *Tracker) SetThreshold(threshold float64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.threshold = threshold
}

// MarkFullRedraw marks the whole edit area dirty.
func (t *Tracker) MarkFullRedraw() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.markFull()
}

func (t *Tracker) markFull() {
	t.fullRedraw = true
	clear(t.lines)
}

// MarkLine marks a single document line dirty. Negative lines are ignored.
func (t *Tracker) MarkLine(line int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.add(line)
}

func (t *Tracker) add(line int) {
	if t.fullRedraw || line < 0 {
		return
	}
	t.lines[line] = struct{}{}
	if t.threshold > 0 && t.threshold <= 1 && t.height > 0 &&
		float64(len(t.lines)) > float64(t.height)*t.threshold {
		t.markFull()
	}
}

// IsDirty reports whether anything needs repainting.
func (t *Tracker) IsDirty() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.fullRedraw || len(t.lines) > 0
}

// NeedsFullRedraw reports whether the whole edit area needs repainting.
func (t *Tracker) NeedsFullRedraw() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.fullRedraw
}

// IsLineDirty reports whether line needs repainting.
func (t *Tracker) IsLineDirty(line int) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.fullRedraw {
		return true
	}
	_, ok := t.lines[line]
	return ok
}

// DirtyLines returns the dirty lines in ascending order. It is empty during
// a full redraw.
func (t *Tracker) DirtyLines() []int {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]int, 0, len(t.lines))
	for line := range t.lines {
		out = append(out, line)
	}
	sort.Ints(out)
	return out
}

// Clear resets the tracker after a frame was painted.
func (t *Tracker) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.fullRedraw = false
	clear(t.lines)
}
