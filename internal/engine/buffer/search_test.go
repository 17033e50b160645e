package buffer

import (
	"slices"
	"testing"
)

func TestFindAll(t *testing.T) {
	d := NewDocument("foo bar foo", "", "xfoo", "Foo")

	got := d.FindAll("foo")
	want := []Position{{0, 0}, {0, 8}, {2, 1}}
	if !slices.Equal(got, want) {
		t.Errorf("FindAll(foo) = %v, want %v", got, want)
	}

	if got := d.FindAll("o b"); !slices.Equal(got, []Position{{0, 2}}) {
		t.Errorf("FindAll(\"o b\") = %v, want [(0:2)]", got)
	}

	if got := d.FindAll(""); got != nil {
		t.Errorf("FindAll(\"\") = %v, want nil", got)
	}

	if got := d.FindAll("zzz"); len(got) != 0 {
		t.Errorf("FindAll(zzz) = %v, want none", got)
	}
}

func TestFindAllOverlapping(t *testing.T) {
	d := NewDocument("aaa")
	want := []Position{{0, 0}, {0, 1}}
	if got := d.FindAll("aa"); !slices.Equal(got, want) {
		t.Errorf("FindAll(aa) = %v, want %v", got, want)
	}
}

func TestMatchNavigation(t *testing.T) {
	matches := []Position{{0, 2}, {3, 0}, {5, 4}}

	tests := []struct {
		name string
		fn   func([]Position, Position) int
		from Position
		want int
	}{
		{"next from start", NextMatch, Position{0, 0}, 0},
		{"next skips current", NextMatch, Position{0, 2}, 1},
		{"next wraps", NextMatch, Position{5, 4}, 0},
		{"prev from middle", PrevMatch, Position{3, 0}, 0},
		{"prev wraps", PrevMatch, Position{0, 2}, 2},
		{"first at caret", FirstMatchFrom, Position{3, 0}, 1},
		{"first after caret", FirstMatchFrom, Position{3, 1}, 2},
		{"first wraps", FirstMatchFrom, Position{9, 0}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn(matches, tt.from); got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}

	if NextMatch(nil, Position{}) != -1 || PrevMatch(nil, Position{}) != -1 || FirstMatchFrom(nil, Position{}) != -1 {
		t.Error("navigation over no matches should return -1")
	}
}
