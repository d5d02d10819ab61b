package input

import "github.com/gdamore/tcell/v2"

// FromTcell pumps key events from a tcell screen. onQuit is called for q,
// Esc and Ctrl-C. The channel is closed when the screen is finalised.
func FromTcell(screen tcell.Screen, onQuit func()) <-chan Key {
	keys := make(chan Key, keyBuffer)
	go func() {
		defer close(keys)
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				k, quit := tcellKey(ev.Key(), ev.Rune())
				if quit && onQuit != nil {
					onQuit()
				}
				if k != 0 {
					send(keys, k)
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		}
	}()
	return keys
}

func tcellKey(key tcell.Key, r rune) (Key, bool) {
	switch key {
	case tcell.KeyUp:
		return KeyUp, false
	case tcell.KeyDown:
		return KeyDown, false
	case tcell.KeyLeft:
		return KeyLeft, false
	case tcell.KeyRight:
		return KeyRight, false
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return 0, true
	case tcell.KeyRune:
		if r > 0x7f {
			return 0, false
		}
		var d decoder
		return d.feed(byte(r))
	}
	return 0, false
}
