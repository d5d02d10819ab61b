package object

import (
	"fmt"

	"github.com/tomz197/spacegarbage/internal/draw"
)

// DebrisSpawner drops a random piece of garbage at a random column, with a
// delay that shrinks as the years go by.
type DebrisSpawner struct {
	waiting bool
	sleep   Sleep
}

// NewDebrisSpawner creates a debris spawner.
func NewDebrisSpawner() *DebrisSpawner {
	return &DebrisSpawner{}
}

// Update spawns one piece of debris every delay ticks. A year missing from
// the delay table is fatal.
func (s *DebrisSpawner) Update(ctx UpdateContext) (bool, error) {
	if s.sleep.Pending() {
		return false, nil
	}
	if s.waiting {
		s.spawn(ctx)
	}

	delay, err := ctx.Table.Delay(ctx.Timeline.Year)
	if err != nil {
		return false, fmt.Errorf("debris spawner: %w", err)
	}
	s.sleep.Start(delay)
	s.waiting = true
	return false, nil
}

func (s *DebrisSpawner) spawn(ctx UpdateContext) {
	garbage := ctx.Frames.Garbage
	if len(garbage) == 0 {
		return
	}
	frame := garbage[ctx.Rand.Intn(len(garbage))]
	width, _ := draw.FrameSize(frame)
	_, cols := ctx.Canvas.Size()
	col := ctx.Rand.Intn(max(0, cols-width) + 1)

	d := NewDebris(ctx.World, float64(col), frame, ctx.Settings.DebrisSpeed)
	ctx.Spawner.Spawn(d)
	ctx.Log.Debug("debris spawned", "tick", ctx.Tick, "col", col, "id", d.Obstacle().ID)
}
