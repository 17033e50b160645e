package backend

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Theme holds the colours of the status and command lines.
type Theme struct {
	BarFG colorful.Color
	BarBG colorful.Color

	// Inverse ignores the colours and paints bars in reverse video.
	Inverse bool
}

// DefaultTheme paints bars in the terminal's reverse video.
func DefaultTheme() Theme {
	return Theme{Inverse: true}
}

// NewTheme returns a theme with the given bar colours.
func NewTheme(fg, bg colorful.Color) Theme {
	return Theme{BarFG: fg, BarBG: bg}
}

// FillerColor is the colour of the empty-row filler: the bar background
// darkened toward black.
func (t Theme) FillerColor() colorful.Color {
	return t.BarBG.BlendLab(colorful.Color{}, 0.35).Clamped()
}

// Style returns the tcell style for a row style.
func (t Theme) Style(s RowStyle) tcell.Style {
	switch s {
	case RowBar:
		if t.Inverse {
			return tcell.StyleDefault.Reverse(true)
		}
		return tcell.StyleDefault.Foreground(toTcell(t.BarFG)).Background(toTcell(t.BarBG))
	case RowFiller:
		if t.Inverse {
			return tcell.StyleDefault.Dim(true)
		}
		return tcell.StyleDefault.Foreground(toTcell(t.FillerColor()))
	default:
		return tcell.StyleDefault
	}
}

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
