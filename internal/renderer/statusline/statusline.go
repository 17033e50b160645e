// Package statusline formats the status bar and command line rows.
package statusline

import (
	"fmt"
	"strings"

	"github.com/dshills/cellpad/internal/engine/buffer"
	"github.com/dshills/cellpad/internal/renderer/backend"
)

// NoName is shown for a document without a file.
const NoName = "[No Name]"

// StatusLine holds the state shown on the bottom two rows.
type StatusLine struct {
	filename   string
	fileType   string
	modified   bool
	line       int // 1-indexed
	col        int // 1-indexed
	totalLines int

	promptActive bool
	prompt       string
	message      string
}

// New creates an empty status line.
func New() *StatusLine {
	return &StatusLine{line: 1, col: 1}
}

// SetFilename updates the displayed file name. Empty means unnamed.
func (s *StatusLine) SetFilename(filename string) {
	s.filename = filename
}

// SetFileType updates the displayed file type.
func (s *StatusLine) SetFileType(fileType string) {
	s.fileType = fileType
}

// SetModified updates the modified indicator.
func (s *StatusLine) SetModified(modified bool) {
	s.modified = modified
}

// SetPosition updates the caret position (1-indexed).
func (s *StatusLine) SetPosition(line, col int) {
	s.line = line
	s.col = col
}

// SetTotalLines updates the line count.
func (s *StatusLine) SetTotalLines(total int) {
	s.totalLines = total
}

// SetPrompt shows text, the prompt label and input, on the command line.
func (s *StatusLine) SetPrompt(active bool, text string) {
	s.promptActive = active
	s.prompt = text
	if !active {
		s.prompt = ""
	}
}

// SetMessage displays a status message on the command line.
func (s *StatusLine) SetMessage(msg string) {
	s.message = msg
}

// ClearMessage clears the status message.
func (s *StatusLine) ClearMessage() {
	s.message = ""
}

// Bar returns the status bar text for a row of width columns: file name,
// line count and modified flag on the left, position and file type on the
// right.
func (s *StatusLine) Bar(width int) string {
	name := s.filename
	if name == "" {
		name = NoName
	}
	left := fmt.Sprintf("%s - %d lines", name, s.totalLines)
	if s.modified {
		left += " (modified)"
	}
	right := fmt.Sprintf("%d:%d", s.line, s.col)
	if s.fileType != "" {
		right += " | " + s.fileType
	}
	return justify(left, right, width)
}

// CommandLine returns the command line text: the prompt while one is
// active, followed by any message, otherwise just the message.
func (s *StatusLine) CommandLine(width int) string {
	text := s.message
	if s.promptActive {
		text = s.prompt
		if s.message != "" {
			text += "  " + s.message
		}
	}
	return backend.Fit(text, width)
}

// justify places left and right at the edges of width columns. The right
// part is dropped first when both do not fit.
func justify(left, right string, width int) string {
	if width <= 0 {
		return ""
	}
	lw, rw := buffer.StringWidth(left), buffer.StringWidth(right)
	if lw+1+rw > width {
		return backend.Fit(left, width)
	}
	return left + strings.Repeat(" ", width-lw-rw) + right
}
