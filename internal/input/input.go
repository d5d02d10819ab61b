// Package input turns terminal key presses into the ship's control snapshot.
package input

import (
	"bufio"
	"io"
)

// Key is a game key decoded from the terminal.
type Key uint8

const (
	KeyUp Key = iota + 1
	KeyDown
	KeyLeft
	KeyRight
	KeyFire
)

// keyBuffer is the capacity of a key channel; presses beyond it are dropped.
const keyBuffer = 128

// Controls is the control snapshot read once per ship update.
type Controls struct {
	Rows int  // -1 up, 1 down, 0 none
	Cols int  // -1 left, 1 right, 0 none
	Fire bool // Fire button pressed
}

// Source is polled once per tick for the current controls.
type Source interface {
	Read() Controls
}

// apply folds a key into the controls. A later key on the same axis wins.
func (c *Controls) apply(k Key) {
	switch k {
	case KeyUp:
		c.Rows = -1
	case KeyDown:
		c.Rows = 1
	case KeyLeft:
		c.Cols = -1
	case KeyRight:
		c.Cols = 1
	case KeyFire:
		c.Fire = true
	}
}

// FromReader decodes raw terminal bytes from r into keys. onQuit is called
// for q and Ctrl-C. The returned channel is closed when r is exhausted.
func FromReader(r io.Reader, onQuit func()) <-chan Key {
	keys := make(chan Key, keyBuffer)
	br := bufio.NewReader(r)
	go func() {
		defer close(keys)
		var d decoder
		for {
			b, err := br.ReadByte()
			if err != nil {
				return
			}
			k, quit := d.feed(b)
			if quit && onQuit != nil {
				onQuit()
			}
			if k != 0 {
				send(keys, k)
			}
		}
	}()
	return keys
}

// Decode converts a byte sequence into keys; it reports whether a quit key
// was seen.
func Decode(buf []byte) (keys []Key, quit bool) {
	var d decoder
	for _, b := range buf {
		k, q := d.feed(b)
		quit = quit || q
		if k != 0 {
			keys = append(keys, k)
		}
	}
	return keys, quit
}

// decoder recognises the ESC [ A..D arrow sequences across byte boundaries.
type decoder struct {
	state int // 0 plain, 1 after ESC, 2 after ESC [
}

func (d *decoder) feed(b byte) (Key, bool) {
	switch d.state {
	case 1:
		if b == '[' {
			d.state = 2
			return 0, false
		}
		d.state = 0
	case 2:
		d.state = 0
		switch b {
		case 'A':
			return KeyUp, false
		case 'B':
			return KeyDown, false
		case 'C':
			return KeyRight, false
		case 'D':
			return KeyLeft, false
		}
		return 0, false
	}

	switch b {
	case '\x1b':
		d.state = 1
	case 'q', 'Q', '\x03':
		return 0, true
	case 'w', 'W':
		return KeyUp, false
	case 's', 'S':
		return KeyDown, false
	case 'a', 'A':
		return KeyLeft, false
	case 'd', 'D':
		return KeyRight, false
	case ' ':
		return KeyFire, false
	}
	return 0, false
}

func send(keys chan<- Key, k Key) {
	select {
	case keys <- k:
	default:
	}
}

// Poller reports the keys pressed since the previous Read.
type Poller struct {
	keys <-chan Key
}

// NewPoller creates the basic input source.
func NewPoller(keys <-chan Key) *Poller {
	return &Poller{keys: keys}
}

// Read drains all pending keys without blocking.
func (p *Poller) Read() Controls {
	var c Controls
	for {
		select {
		case k, ok := <-p.keys:
			if !ok {
				return c
			}
			c.apply(k)
		default:
			return c
		}
	}
}
