package dirty

import (
	"reflect"
	"sync"
	"testing"
)

func cleared(height int) *Tracker {
	t := NewTracker(height)
	t.Clear()
	return t
}

func TestNewTrackerStartsFull(t *testing.T) {
	tracker := NewTracker(10)
	if !tracker.NeedsFullRedraw() {
		t.Error("NeedsFullRedraw() = false, want true for a new tracker")
	}
	tracker.Clear()
	if tracker.IsDirty() {
		t.Error("IsDirty() = true after Clear")
	}
}

func TestTrackerMarkLine(t *testing.T) {
	tracker := cleared(10)
	tracker.MarkLine(3)
	tracker.MarkLine(1)
	tracker.MarkLine(3)
	tracker.MarkLine(-1)

	if !tracker.IsDirty() {
		t.Fatal("IsDirty() = false, want true")
	}
	if tracker.NeedsFullRedraw() {
		t.Error("NeedsFullRedraw() = true, want false")
	}
	if got, want := tracker.DirtyLines(), []int{1, 3}; !reflect.DeepEqual(got, want) {
		t.Errorf("DirtyLines() = %v, want %v", got, want)
	}
	if !tracker.IsLineDirty(1) || tracker.IsLineDirty(2) {
		t.Error("IsLineDirty reports the wrong lines")
	}
}

func TestTrackerThreshold(t *testing.T) {
	tests := []struct {
		name      string
		threshold float64
		marks     int
		wantFull  bool
	}{
		{"below", 0.5, 5, false},
		{"above", 0.5, 6, true},
		{"disabled", 0, 10, false},
		{"out of range", 2, 10, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tracker := cleared(10)
			tracker.SetThreshold(tt.threshold)
			for i := 0; i < tt.marks; i++ {
				tracker.MarkLine(i)
			}
			if got := tracker.NeedsFullRedraw(); got != tt.wantFull {
				t.Errorf("NeedsFullRedraw() = %v, want %v", got, tt.wantFull)
			}
		})
	}
}

func TestTrackerFullRedraw(t *testing.T) {
	tracker := cleared(10)
	tracker.MarkLine(2)
	tracker.MarkFullRedraw()

	if len(tracker.DirtyLines()) != 0 {
		t.Errorf("DirtyLines() = %v, want empty during a full redraw", tracker.DirtyLines())
	}
	if !tracker.IsLineDirty(7) {
		t.Error("IsLineDirty(7) = false during a full redraw")
	}
	tracker.MarkLine(4)
	if len(tracker.DirtyLines()) != 0 {
		t.Error("MarkLine during a full redraw should not record lines")
	}
}

func TestTrackerSetHeight(t *testing.T) {
	tracker := cleared(10)
	tracker.SetHeight(20)
	if !tracker.NeedsFullRedraw() {
		t.Error("NeedsFullRedraw() = false after SetHeight")
	}
}

func TestTrackerConcurrent(t *testing.T) {
	tracker := cleared(1000)
	tracker.SetThreshold(0)
	var wg sync.WaitGroup
	for g := 0; g < 4; g++ {
		wg.Add(1)
		go func(base int) {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				tracker.MarkLine(base*50 + i)
			}
		}(g)
	}
	wg.Wait()
	if got := len(tracker.DirtyLines()); got != 200 {
		t.Errorf("len(DirtyLines()) = %d, want 200", got)
	}
}
