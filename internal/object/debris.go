package object

import (
	"github.com/tomz197/spacegarbage/internal/draw"
	"github.com/tomz197/spacegarbage/internal/physics"
)

// Debris is a piece of space garbage falling down the canvas. It owns one
// obstacle for its whole lifetime.
type Debris struct {
	Row, Col float64
	Speed    float64 // Rows per tick

	frame    string
	obstacle *physics.Obstacle
	drawn    bool
}

// NewDebris creates debris above the top edge and registers its obstacle
// right away, so it can be hit from the tick it is spawned on.
func NewDebris(w *World, col float64, frame string, speed float64) *Debris {
	_, cols := w.Canvas.Size()
	col = max(0, min(col, float64(cols-1)))
	width, height := draw.FrameSize(frame)

	d := &Debris{Col: col, Speed: speed, frame: frame}
	d.obstacle = physics.NewObstacle(d.Row, d.Col, float64(height), float64(width), d)
	w.Obstacles.Add(d.obstacle)
	return d
}

// Obstacle returns the debris' collision box.
func (d *Debris) Obstacle() *physics.Obstacle {
	return d.obstacle
}

// Update falls one step, and explodes if something shot it.
func (d *Debris) Update(ctx UpdateContext) (bool, error) {
	if d.drawn {
		draw.Frame(ctx.Canvas, d.Row, d.Col, d.frame, true)
		d.drawn = false
		d.Row += d.Speed
		d.obstacle.Row = d.Row
	}

	rows, _ := ctx.Canvas.Size()
	if d.Row >= float64(rows) {
		d.retire(ctx)
		return true, nil
	}

	if hit, ok := ctx.Hits.Take(d.obstacle); ok {
		d.retire(ctx)
		if hit.Blast == physics.ObstacleExplodes {
			row, col := d.obstacle.Center()
			ctx.Spawner.Spawn(NewExplosion(row, col, ctx.Frames.Explosion, ctx.Settings.ExplosionFrameTicks))
			ctx.Log.Debug("debris shot down", "tick", ctx.Tick, "id", d.obstacle.ID)
		}
		return true, nil
	}

	draw.Frame(ctx.Canvas, d.Row, d.Col, d.frame, false)
	d.drawn = true
	return false, nil
}

func (d *Debris) retire(ctx UpdateContext) {
	ctx.Obstacles.Remove(d.obstacle)
	ctx.Hits.Take(d.obstacle)
}
