package nestscroll

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Buffer is the pre-rendered content of a Layer: one string per row, each
// fitted to the buffer width in terminal cells.
type Buffer struct {
	lines []string
	width int
}

// NewBuffer creates an empty buffer whose rows are clipped to width cells.
func NewBuffer(width int) *Buffer {
	return &Buffer{width: width}
}

// NewBufferFromLines creates a buffer holding lines.
func NewBufferFromLines(width int, lines []string) *Buffer {
	b := NewBuffer(width)
	for _, line := range lines {
		b.AppendLine(line)
	}
	return b
}

// Width returns the buffer width.
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the number of rows.
func (b *Buffer) Height() int {
	return len(b.lines)
}

// AppendLine adds a row at the bottom.
func (b *Buffer) AppendLine(s string) {
	b.lines = append(b.lines, b.fit(s))
}

// SetLine replaces row y, growing the buffer with blank rows if needed.
func (b *Buffer) SetLine(y int, s string) {
	if y < 0 {
		return
	}
	for len(b.lines) <= y {
		b.lines = append(b.lines, "")
	}
	b.lines[y] = b.fit(s)
}

// GetLine returns row y without trailing spaces, or "" out of bounds.
func (b *Buffer) GetLine(y int) string {
	if y < 0 || y >= len(b.lines) {
		return ""
	}
	return strings.TrimRight(b.lines[y], " ")
}

// String returns all rows separated by newlines (for testing/debugging).
func (b *Buffer) String() string {
	return strings.Join(b.lines, "\n")
}

// fit clips s to the buffer width. Wide runes that would straddle the edge
// are dropped rather than split.
func (b *Buffer) fit(s string) string {
	if b.width <= 0 || runewidth.StringWidth(s) <= b.width {
		return s
	}
	return runewidth.Truncate(s, b.width, "")
}

// padLine fits s to exactly width cells.
func padLine(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = runewidth.Truncate(s, width, "")
	return runewidth.FillRight(s, width)
}
