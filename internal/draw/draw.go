// Package draw renders monochrome character cells: multi-line frames,
// emphasised text, a bordered playfield, and the terminal backends behind it.
package draw

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Emphasis is the brightness attribute of a cell.
type Emphasis uint8

const (
	Normal Emphasis = iota
	Dim
	Bold
)

// Surface is a rectangular area that can be written cell by cell.
// Coordinates are 0-based and relative to the surface; writes outside the
// surface are dropped.
type Surface interface {
	Put(row, col int, ch rune, em Emphasis)
	Size() (rows, cols int)
}

// Beeper rings the bell.
type Beeper interface {
	Beep() error
}

// Screen is a whole terminal.
type Screen interface {
	Surface
	Beeper
	// Show flushes everything written since the last Show.
	Show() error
	// Close restores the terminal.
	Close() error
}

// Text writes a single-line string starting at (row, col).
func Text(s Surface, row, col int, text string, em Emphasis) {
	for i, ch := range []rune(text) {
		s.Put(row, col+i, ch, em)
	}
}

// Frame draws a multi-line frame with its top-left corner at (row, col).
// Spaces in the frame are transparent. With negative set, every visible
// glyph is overwritten by a space, which erases a frame drawn earlier at the
// same position.
func Frame(s Surface, row, col float64, frame string, negative bool) {
	rows, cols := s.Size()
	startRow := int(math.Round(row))
	startCol := int(math.Round(col))

	for i, line := range strings.Split(frame, "\n") {
		r := startRow + i
		if r < 0 {
			continue
		}
		if r >= rows {
			break
		}
		for j, ch := range []rune(line) {
			c := startCol + j
			if c < 0 {
				continue
			}
			if c >= cols {
				break
			}
			if ch == ' ' {
				continue
			}
			if negative {
				ch = ' '
			}
			s.Put(r, c, ch, Normal)
		}
	}
}

// FrameSize returns the width (longest line) and height (line count) of a frame.
func FrameSize(frame string) (width, height int) {
	lines := strings.Split(frame, "\n")
	for _, line := range lines {
		if n := len([]rune(line)); n > width {
			width = n
		}
	}
	return width, len(lines)
}

// Region is a clipped sub-area of a screen.
type Region struct {
	screen   Surface
	row, col int
	rows     int
	cols     int
}

// NewRegion creates a region of the given size with its origin at (row, col)
// on the parent surface.
func NewRegion(parent Surface, row, col, rows, cols int) *Region {
	return &Region{screen: parent, row: row, col: col, rows: rows, cols: cols}
}

// Put writes a cell if it lies inside the region.
func (r *Region) Put(row, col int, ch rune, em Emphasis) {
	if row < 0 || row >= r.rows || col < 0 || col >= r.cols {
		return
	}
	r.screen.Put(r.row+row, r.col+col, ch, em)
}

// Size returns the region dimensions.
func (r *Region) Size() (int, int) {
	return r.rows, r.cols
}

// Box-drawing glyphs for the playfield border.
const (
	BoxHorizontal  = '─'
	BoxVertical    = '│'
	BoxTopLeft     = '┌'
	BoxTopRight    = '┐'
	BoxBottomLeft  = '└'
	BoxBottomRight = '┘'
	BoxTeeLeft     = '├'
	BoxTeeRight    = '┤'
)

// Minimum terminal size that leaves room for the playfield and the footer.
const (
	MinRows = 8
	MinCols = 20
)

// ErrTooSmall is returned when the terminal cannot fit the layout.
var ErrTooSmall = errors.New("draw: terminal too small")

// Layout is the game screen: a bordered playfield canvas and a one-line
// footer beneath a divider.
type Layout struct {
	Canvas *Region
	Footer *Region
}

// NewLayout draws the border and divider on the screen and returns the
// canvas and footer regions inside them.
func NewLayout(s Surface) (Layout, error) {
	rows, cols := s.Size()
	if rows < MinRows || cols < MinCols {
		return Layout{}, fmt.Errorf("%w: %dx%d, need at least %dx%d", ErrTooSmall, cols, rows, MinCols, MinRows)
	}

	divider := rows - 3
	for c := 1; c < cols-1; c++ {
		s.Put(0, c, BoxHorizontal, Normal)
		s.Put(divider, c, BoxHorizontal, Normal)
		s.Put(rows-1, c, BoxHorizontal, Normal)
	}
	for r := 1; r < rows-1; r++ {
		s.Put(r, 0, BoxVertical, Normal)
		s.Put(r, cols-1, BoxVertical, Normal)
	}
	s.Put(0, 0, BoxTopLeft, Normal)
	s.Put(0, cols-1, BoxTopRight, Normal)
	s.Put(rows-1, 0, BoxBottomLeft, Normal)
	s.Put(rows-1, cols-1, BoxBottomRight, Normal)
	s.Put(divider, 0, BoxTeeLeft, Normal)
	s.Put(divider, cols-1, BoxTeeRight, Normal)

	return Layout{
		Canvas: NewRegion(s, 1, 1, rows-4, cols-2),
		Footer: NewRegion(s, rows-2, 1, 1, cols-2),
	}, nil
}
