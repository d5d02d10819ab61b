package draw

import "strings"

// Cell is one character cell.
type Cell struct {
	Ch rune
	Em Emphasis
}

var blank = Cell{Ch: ' '}

// Buffer is an in-memory screen. The ANSI backend renders from it, and it
// doubles as a headless screen.
type Buffer struct {
	rows, cols int
	cells      []Cell
	shows      int
	beeps      int
}

// NewBuffer creates a blank buffer.
func NewBuffer(rows, cols int) *Buffer {
	b := &Buffer{rows: rows, cols: cols, cells: make([]Cell, rows*cols)}
	b.Clear()
	return b
}

// Put sets a cell; writes outside the buffer are dropped.
func (b *Buffer) Put(row, col int, ch rune, em Emphasis) {
	if row < 0 || row >= b.rows || col < 0 || col >= b.cols {
		return
	}
	b.cells[row*b.cols+col] = Cell{Ch: ch, Em: em}
}

// At returns the cell at (row, col), or a blank cell outside the buffer.
func (b *Buffer) At(row, col int) Cell {
	if row < 0 || row >= b.rows || col < 0 || col >= b.cols {
		return blank
	}
	return b.cells[row*b.cols+col]
}

// Row returns the text of one row.
func (b *Buffer) Row(row int) string {
	var sb strings.Builder
	for c := 0; c < b.cols; c++ {
		sb.WriteRune(b.At(row, c).Ch)
	}
	return sb.String()
}

// String returns all rows joined by newlines.
func (b *Buffer) String() string {
	lines := make([]string, b.rows)
	for r := range lines {
		lines[r] = b.Row(r)
	}
	return strings.Join(lines, "\n")
}

// Clear blanks every cell.
func (b *Buffer) Clear() {
	for i := range b.cells {
		b.cells[i] = blank
	}
}

// Size returns the buffer dimensions.
func (b *Buffer) Size() (int, int) {
	return b.rows, b.cols
}

// Show counts frames.
func (b *Buffer) Show() error {
	b.shows++
	return nil
}

// Beep counts bells.
func (b *Buffer) Beep() error {
	b.beeps++
	return nil
}

// Close is a no-op.
func (b *Buffer) Close() error {
	return nil
}

// Shows returns how many times Show was called.
func (b *Buffer) Shows() int { return b.shows }

// Beeps returns how many times Beep was called.
func (b *Buffer) Beeps() int { return b.beeps }
