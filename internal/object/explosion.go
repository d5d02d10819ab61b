package object

import "github.com/tomz197/spacegarbage/internal/draw"

// Explosion plays a fixed sequence of frames centred on a point, erasing
// each frame before drawing the next, and then finishes.
type Explosion struct {
	Row, Col float64 // Top-left corner of the frames

	frames []string
	hold   int // Ticks each frame and each blank stays on screen
	step   int
	sleep  Sleep
}

// NewExplosion creates an explosion centred on (row, col).
func NewExplosion(row, col float64, frames []string, hold int) *Explosion {
	e := &Explosion{Row: row, Col: col, frames: frames, hold: max(1, hold)}
	if len(frames) > 0 {
		w, h := draw.FrameSize(frames[0])
		e.Row -= float64(h) / 2
		e.Col -= float64(w) / 2
	}
	return e
}

// Update shows or erases the current frame.
func (e *Explosion) Update(ctx UpdateContext) (bool, error) {
	if e.sleep.Pending() {
		return false, nil
	}
	if e.step >= 2*len(e.frames) {
		return true, nil
	}
	draw.Frame(ctx.Canvas, e.Row, e.Col, e.frames[e.step/2], e.step%2 == 1)
	e.step++
	e.sleep.Start(e.hold)
	return false, nil
}
