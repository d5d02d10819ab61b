package draw

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// maxChunkSize bounds a single write to the terminal.
const maxChunkSize = 4096

// SGR sequences for the three emphasis levels.
const (
	sgrNormal = "\033[0m"
	sgrDim    = "\033[0;2m"
	sgrBold   = "\033[0;1m"
)

// ChunkWriter accumulates text for terminal output and writes in chunks.
// Use MoveCursor, WriteString, WriteRune to accumulate, then Flush to write
// to the underlying writer.
type ChunkWriter struct {
	buf    strings.Builder
	bufw   *bufio.Writer // Buffers writes to underlying writer for fewer syscalls
	numBuf [20]byte      // Scratch buffer for allocation-free integer formatting
	offCol int
	offRow int
}

// NewChunkWriter creates a ChunkWriter that writes to w. offsetCol and offsetRow
// are added to all MoveCursor coordinates.
func NewChunkWriter(w io.Writer, offsetCol, offsetRow int) *ChunkWriter {
	return &ChunkWriter{
		bufw:   bufio.NewWriterSize(w, 8192),
		offCol: offsetCol,
		offRow: offsetRow,
	}
}

// MoveCursor appends an ANSI cursor position sequence. col and row are
// 1-based; the offset is applied automatically.
func (cw *ChunkWriter) MoveCursor(col, row int) {
	cw.buf.WriteString("\033[")
	cw.buf.Write(strconv.AppendInt(cw.numBuf[:0], int64(row+cw.offRow), 10))
	cw.buf.WriteByte(';')
	cw.buf.Write(strconv.AppendInt(cw.numBuf[:0], int64(col+cw.offCol), 10))
	cw.buf.WriteByte('H')
}

// Write implements io.Writer.
func (cw *ChunkWriter) Write(p []byte) (n int, err error) {
	return cw.buf.Write(p)
}

// WriteString appends a string to the buffer.
func (cw *ChunkWriter) WriteString(s string) {
	cw.buf.WriteString(s)
}

// WriteRune appends a rune to the buffer.
func (cw *ChunkWriter) WriteRune(r rune) {
	cw.buf.WriteRune(r)
}

// Pending reports whether anything is waiting to be flushed.
func (cw *ChunkWriter) Pending() bool {
	return cw.buf.Len() > 0
}

// Flush writes the accumulated buffer to the underlying writer in chunks,
// then resets the buffer.
func (cw *ChunkWriter) Flush() error {
	data := cw.buf.String()
	cw.buf.Reset()
	for len(data) > 0 {
		chunk := data
		if len(chunk) > maxChunkSize {
			chunk = data[:maxChunkSize]
		}
		if _, err := cw.bufw.WriteString(chunk); err != nil {
			return err
		}
		data = data[len(chunk):]
	}
	return cw.bufw.Flush()
}

// TermSizeFunc is a function that returns the terminal dimensions.
type TermSizeFunc func() (width, height int, err error)

// DefaultTermSizeFunc returns terminal size from os.Stdout.
var DefaultTermSizeFunc TermSizeFunc = func() (int, int, error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// ClearScreen clears the terminal and moves cursor to top-left.
func ClearScreen(w io.Writer) {
	fmt.Fprint(w, "\033[H\033[2J")
}

// HideCursor hides the terminal cursor.
func HideCursor(w io.Writer) {
	fmt.Fprint(w, "\033[?25l")
}

// ShowCursor shows the terminal cursor.
func ShowCursor(w io.Writer) {
	fmt.Fprint(w, "\033[?25h")
}

// AnsiScreen drives a raw-mode terminal with plain ANSI sequences. Cells are
// written to a back buffer and Show sends only the cells that changed since
// the previous Show.
type AnsiScreen struct {
	out     io.Writer
	cw      *ChunkWriter
	back    *Buffer
	front   *Buffer
	restore func() error
}

// NewAnsiScreen puts the terminal on in into raw mode and renders to out.
func NewAnsiScreen(in *os.File, out *os.File) (*AnsiScreen, error) {
	fd := int(in.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("draw: enable raw mode: %w", err)
	}
	width, height, err := DefaultTermSizeFunc()
	if err != nil {
		_ = term.Restore(fd, oldState)
		return nil, fmt.Errorf("draw: terminal size: %w", err)
	}

	s := newAnsiScreen(out, height, width)
	s.restore = func() error { return term.Restore(fd, oldState) }
	HideCursor(out)
	ClearScreen(out)
	return s, nil
}

func newAnsiScreen(out io.Writer, rows, cols int) *AnsiScreen {
	return &AnsiScreen{
		out:   out,
		cw:    NewChunkWriter(out, 1, 1),
		back:  NewBuffer(rows, cols),
		front: NewBuffer(rows, cols),
	}
}

// Put writes a cell to the back buffer.
func (s *AnsiScreen) Put(row, col int, ch rune, em Emphasis) {
	s.back.Put(row, col, ch, em)
}

// Size returns the terminal dimensions captured at start.
func (s *AnsiScreen) Size() (int, int) {
	return s.back.Size()
}

// Show sends the changed cells to the terminal.
func (s *AnsiScreen) Show() error {
	rows, cols := s.back.Size()
	current := Emphasis(255)
	for r := 0; r < rows; r++ {
		lastCol := -2
		for c := 0; c < cols; c++ {
			cell := s.back.At(r, c)
			if cell == s.front.At(r, c) {
				continue
			}
			s.front.Put(r, c, cell.Ch, cell.Em)
			if c != lastCol+1 {
				s.cw.MoveCursor(c, r)
			}
			lastCol = c
			if cell.Em != current {
				s.cw.WriteString(sgr(cell.Em))
				current = cell.Em
			}
			s.cw.WriteRune(cell.Ch)
		}
	}
	if !s.cw.Pending() {
		return nil
	}
	s.cw.WriteString(sgrNormal)
	return s.cw.Flush()
}

// Beep writes the BEL control character.
func (s *AnsiScreen) Beep() error {
	_, err := io.WriteString(s.out, "\a")
	return err
}

// Close resets attributes, shows the cursor and leaves raw mode.
func (s *AnsiScreen) Close() error {
	fmt.Fprint(s.out, sgrNormal)
	ClearScreen(s.out)
	ShowCursor(s.out)
	if s.restore != nil {
		return s.restore()
	}
	return nil
}

func sgr(em Emphasis) string {
	switch em {
	case Dim:
		return sgrDim
	case Bold:
		return sgrBold
	default:
		return sgrNormal
	}
}
