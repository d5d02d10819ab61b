package object

import (
	"github.com/tomz197/spacegarbage/internal/config"
	"github.com/tomz197/spacegarbage/internal/draw"
)

type blinkPhase struct {
	em    draw.Emphasis
	ticks int
}

// Star blinks a single glyph forever: dim, normal, bold, normal.
type Star struct {
	Row, Col int
	Symbol   string

	cycle [4]blinkPhase
	step  int // -1 before the initial delay has been served
	delay int
	sleep Sleep
}

// NewStar creates a star that first stays dim for delay ticks, so that stars
// created together do not blink in unison.
func NewStar(row, col int, symbol rune, delay int, s config.Settings) *Star {
	return &Star{
		Row:    row,
		Col:    col,
		Symbol: string(symbol),
		cycle: [4]blinkPhase{
			{draw.Dim, s.Ticks(s.BlinkDim)},
			{draw.Normal, s.Ticks(s.BlinkNormal)},
			{draw.Bold, s.Ticks(s.BlinkBold)},
			{draw.Normal, s.Ticks(s.BlinkNormal)},
		},
		step:  -1,
		delay: delay,
	}
}

// Update draws the current phase and waits out its hold.
func (s *Star) Update(ctx UpdateContext) (bool, error) {
	if s.sleep.Pending() {
		return false, nil
	}
	for {
		ph := blinkPhase{draw.Dim, s.delay}
		if s.step >= 0 {
			ph = s.cycle[s.step]
		}
		s.step = (s.step + 1) % len(s.cycle)

		draw.Text(ctx.Canvas, s.Row, s.Col, s.Symbol, ph.em)
		if ph.ticks > 0 {
			s.sleep.Start(ph.ticks)
			return false, nil
		}
	}
}

// SpawnStars scatters n stars over the inside of the canvas.
func SpawnStars(w *World, sp Spawner, n int) {
	rows, cols := w.Canvas.Size()
	if rows < 3 || cols < 3 {
		return
	}
	symbols := []rune(w.Settings.StarSymbols)
	maxDelay := w.Settings.Ticks(w.Settings.StarDelay)
	for range n {
		sp.Spawn(NewStar(
			1+w.Rand.Intn(rows-2),
			1+w.Rand.Intn(cols-2),
			symbols[w.Rand.Intn(len(symbols))],
			w.Rand.Intn(maxDelay+1),
			w.Settings,
		))
	}
}
