package viewport

import (
	"math/rand/v2"
	"testing"

	"github.com/dshills/cellpad/internal/engine/buffer"
)

func TestNewViewport(t *testing.T) {
	v := NewViewport(80, 24)

	if v.Width() != 80 {
		t.Errorf("expected width 80, got %d", v.Width())
	}
	if v.Height() != 24 {
		t.Errorf("expected height 24, got %d", v.Height())
	}
	if row, col := v.Offset(); row != 0 || col != 0 {
		t.Errorf("expected offset (0, 0), got (%d, %d)", row, col)
	}
}

func TestViewportMinimumSize(t *testing.T) {
	v := NewViewport(0, -3)
	if v.Width() != 1 || v.Height() != 1 {
		t.Errorf("expected size clamped to 1x1, got %dx%d", v.Width(), v.Height())
	}
}

func TestVisibleLines(t *testing.T) {
	v := NewViewport(80, 3)
	v.SetOffset(4, 0)

	if start, end := v.VisibleLineRange(); start != 4 || end != 7 {
		t.Errorf("VisibleLineRange() = [%d, %d), want [4, 7)", start, end)
	}
	for line, want := range map[int]bool{3: false, 4: true, 6: true, 7: false} {
		if got := v.IsLineVisible(line); got != want {
			t.Errorf("IsLineVisible(%d) = %v, want %v", line, got, want)
		}
	}
	if row := v.LineToScreenRow(5); row != 1 {
		t.Errorf("LineToScreenRow(5) = %d, want 1", row)
	}
}

func TestScrollDownToCaret(t *testing.T) {
	v := NewViewport(80, 3)

	if !v.ScrollVertically(10) {
		t.Fatal("ScrollVertically(10) = false, want true")
	}
	if v.TopLine() != 8 {
		t.Errorf("TopLine() = %d, want 8", v.TopLine())
	}
	if v.ScrollVertically(9) {
		t.Error("ScrollVertically(9) changed a viewport already showing line 9")
	}
}

func TestScrollVertically(t *testing.T) {
	tests := []struct {
		name    string
		top     int
		line    int
		want    int
		changed bool
	}{
		{"inside", 5, 7, 5, false},
		{"last row", 5, 14, 5, false},
		{"one below", 5, 15, 6, true},
		{"above", 5, 2, 2, true},
		{"first row", 5, 5, 5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewViewport(80, 10)
			v.SetOffset(tt.top, 0)
			changed := v.ScrollVertically(tt.line)
			if changed != tt.changed {
				t.Errorf("ScrollVertically(%d) = %v, want %v", tt.line, changed, tt.changed)
			}
			if v.TopLine() != tt.want {
				t.Errorf("TopLine() = %d, want %d", v.TopLine(), tt.want)
			}
		})
	}
}

func TestScrollHorizontally(t *testing.T) {
	tests := []struct {
		name    string
		left    int
		col     int
		want    int
		changed bool
	}{
		{"inside", 0, 5, 0, false},
		{"last column", 0, 9, 0, false},
		{"right edge", 0, 10, 1, true},
		{"far right", 0, 25, 16, true},
		{"left of view", 12, 3, 3, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewViewport(10, 5)
			v.SetOffset(0, tt.left)
			changed := v.ScrollHorizontally(tt.col)
			if changed != tt.changed {
				t.Errorf("ScrollHorizontally(%d) = %v, want %v", tt.col, changed, tt.changed)
			}
			if v.LeftColumn() != tt.want {
				t.Errorf("LeftColumn() = %d, want %d", v.LeftColumn(), tt.want)
			}
		})
	}
}

func TestCaretToTerminal(t *testing.T) {
	doc := buffer.NewDocument("a", "b", "\t世x")
	doc.SetCaret(buffer.Position{Line: 2, Cell: 2})

	v := NewViewport(10, 2)
	v.SetOffset(1, 3)

	row, col := v.CaretToTerminal(doc)
	if row != 1 || col != 3 {
		t.Errorf("CaretToTerminal() = (%d, %d), want (1, 3)", row, col)
	}
}

func TestFollowKeepsCaretOnScreen(t *testing.T) {
	lines := make([]string, 200)
	for i := range lines {
		lines[i] = "the quick 世界 brown\tfox jumps over the lazy dog " + string(rune('a'+i%26))
	}
	doc := buffer.NewDocument(lines...)
	v := NewViewport(13, 7)
	rng := rand.New(rand.NewPCG(3, 5))

	for i := 0; i < 3000; i++ {
		switch rng.IntN(7) {
		case 0:
			doc.MoveUp()
		case 1:
			doc.MoveDown()
		case 2:
			doc.MoveLeft()
		case 3:
			doc.MoveRight()
		case 4:
			doc.MoveLineEnd()
		case 5:
			doc.MoveLines(rng.IntN(41) - 20)
		case 6:
			doc.SetCaret(buffer.Position{Line: rng.IntN(220), Cell: rng.IntN(60)})
		}
		v.Follow(doc)

		row, col := v.CaretToTerminal(doc)
		if row < 0 || row >= v.Height() {
			t.Fatalf("step %d: caret row %d outside [0, %d)", i, row, v.Height())
		}
		if col < 0 || col >= v.Width() {
			t.Fatalf("step %d: caret col %d outside [0, %d)", i, col, v.Width())
		}
	}
}

func TestFollowReportsAxes(t *testing.T) {
	doc := buffer.NewDocument("0123456789abcdef", "x", "y", "z")
	v := NewViewport(8, 2)

	doc.SetCaret(buffer.Position{Line: 0, Cell: 12})
	rowChanged, colChanged := v.Follow(doc)
	if rowChanged || !colChanged {
		t.Errorf("Follow() = (%v, %v), want (false, true)", rowChanged, colChanged)
	}

	doc.SetCaret(buffer.Position{Line: 3, Cell: 0})
	rowChanged, colChanged = v.Follow(doc)
	if !rowChanged || !colChanged {
		t.Errorf("Follow() = (%v, %v), want (true, true)", rowChanged, colChanged)
	}
	if v.TopLine() != 2 || v.LeftColumn() != 0 {
		t.Errorf("offset = (%d, %d), want (2, 0)", v.TopLine(), v.LeftColumn())
	}

	if rowChanged, colChanged = v.Follow(doc); rowChanged || colChanged {
		t.Error("Follow() without a caret move reported a change")
	}
}
