package object

import (
	"math"

	"github.com/tomz197/spacegarbage/internal/draw"
	"github.com/tomz197/spacegarbage/internal/physics"
)

const (
	shotFlash      = "*"
	shotCharge     = "O"
	shotVertical   = "|"
	shotHorizontal = "-"
)

// Shot is a plasma projectile. It flashes at the muzzle for two ticks, then
// flies straight until it leaves the canvas or hits an obstacle.
type Shot struct {
	Row, Col           float64
	RowSpeed, ColSpeed float64

	symbol string
	step   int  // 0 flash, 1 charge, 2 leaving the muzzle, 3 flying
	drawn  bool // symbol on screen at the rounded position
}

// NewShot creates a shot at the muzzle position.
func NewShot(row, col, rowSpeed, colSpeed float64) *Shot {
	symbol := shotHorizontal
	if rowSpeed != 0 {
		symbol = shotVertical
	}
	return &Shot{Row: row, Col: col, RowSpeed: rowSpeed, ColSpeed: colSpeed, symbol: symbol}
}

// Update advances the shot by one tick.
func (s *Shot) Update(ctx UpdateContext) (bool, error) {
	r, c := s.cell()
	switch s.step {
	case 0:
		if err := ctx.Bell.Beep(); err != nil {
			ctx.Log.Warn("bell failed", "err", err)
		}
		draw.Text(ctx.Canvas, r, c, shotFlash, draw.Normal)
		s.step++
		return false, nil
	case 1:
		draw.Text(ctx.Canvas, r, c, shotCharge, draw.Normal)
		s.step++
		return false, nil
	case 2:
		draw.Text(ctx.Canvas, r, c, " ", draw.Normal)
		s.move()
		s.step++
	default:
		if s.drawn {
			draw.Text(ctx.Canvas, r, c, " ", draw.Normal)
			s.drawn = false
			s.move()
		}
	}

	rows, cols := ctx.Canvas.Size()
	if s.Row <= 0 || s.Row >= float64(rows-1) || s.Col <= 0 || s.Col >= float64(cols-1) {
		return true, nil
	}

	r, c = s.cell()
	if ob := ctx.Obstacles.FindColliding(float64(r), float64(c), 1, 1); ob != nil {
		ctx.Hits.Record(ob, physics.ObstacleExplodes)
		return true, nil
	}

	draw.Text(ctx.Canvas, r, c, s.symbol, draw.Normal)
	s.drawn = true
	return false, nil
}

func (s *Shot) move() {
	s.Row += s.RowSpeed
	s.Col += s.ColSpeed
}

func (s *Shot) cell() (int, int) {
	return int(math.Round(s.Row)), int(math.Round(s.Col))
}
