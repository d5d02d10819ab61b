package object

import (
	"strings"

	"github.com/tomz197/spacegarbage/internal/draw"
	"github.com/tomz197/spacegarbage/internal/physics"
)

// ObstacleOverlay outlines every registered obstacle. It is a debugging aid
// for collision boxes.
type ObstacleOverlay struct {
	boxes []physics.Rect
}

// NewObstacleOverlay creates the overlay task.
func NewObstacleOverlay() *ObstacleOverlay {
	return &ObstacleOverlay{}
}

// Update erases last tick's outlines and draws the current ones.
func (o *ObstacleOverlay) Update(ctx UpdateContext) (bool, error) {
	for _, r := range o.boxes {
		draw.Frame(ctx.Canvas, r.Row-1, r.Col-1, outline(r), true)
	}
	o.boxes = o.boxes[:0]
	for _, ob := range ctx.Obstacles.All() {
		draw.Frame(ctx.Canvas, ob.Row-1, ob.Col-1, outline(ob.Rect), false)
		o.boxes = append(o.boxes, ob.Rect)
	}
	return false, nil
}

// outline returns a frame tracing the cells around r.
func outline(r physics.Rect) string {
	rows, cols := int(r.Rows), int(r.Cols)
	edge := "+" + strings.Repeat("-", cols) + "+"
	side := "|" + strings.Repeat(" ", cols) + "|"

	lines := make([]string, 0, rows+2)
	lines = append(lines, edge)
	for range rows {
		lines = append(lines, side)
	}
	lines = append(lines, edge)
	return strings.Join(lines, "\n")
}
