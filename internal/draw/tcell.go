package draw

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// TcellScreen is the default backend.
type TcellScreen struct {
	screen tcell.Screen
	styles [3]tcell.Style
}

// NewTcellScreen initialises the terminal through tcell.
func NewTcellScreen() (*TcellScreen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("draw: create screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("draw: init screen: %w", err)
	}
	return WrapTcell(s), nil
}

// WrapTcell adapts an initialised tcell screen.
func WrapTcell(s tcell.Screen) *TcellScreen {
	s.HideCursor()
	s.Clear()
	return &TcellScreen{
		screen: s,
		styles: [3]tcell.Style{
			Normal: tcell.StyleDefault,
			Dim:    tcell.StyleDefault.Dim(true),
			Bold:   tcell.StyleDefault.Bold(true),
		},
	}
}

// Tcell exposes the underlying screen for event polling.
func (t *TcellScreen) Tcell() tcell.Screen {
	return t.screen
}

// Put writes a cell.
func (t *TcellScreen) Put(row, col int, ch rune, em Emphasis) {
	style := t.styles[Normal]
	if int(em) < len(t.styles) {
		style = t.styles[em]
	}
	t.screen.SetContent(col, row, ch, nil, style)
}

// Size returns rows and columns.
func (t *TcellScreen) Size() (int, int) {
	w, h := t.screen.Size()
	return h, w
}

// Show flushes pending changes.
func (t *TcellScreen) Show() error {
	t.screen.Show()
	return nil
}

// Beep rings the terminal bell.
func (t *TcellScreen) Beep() error {
	return t.screen.Beep()
}

// Close restores the terminal.
func (t *TcellScreen) Close() error {
	t.screen.Fini()
	return nil
}
