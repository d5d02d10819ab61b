package loop

import (
	"github.com/tomz197/spacegarbage/internal/draw"
	"github.com/tomz197/spacegarbage/internal/object"
)

// Options toggles optional tasks.
type Options struct {
	ShowObstacles bool // Outline collision boxes
}

// NewGame creates a scheduler with the starting tasks: the star field, the
// ship in the middle of the canvas and the scenario clock.
func NewGame(world *object.World, screen draw.Screen, opts Options) *Scheduler {
	s := NewScheduler(world, screen)

	object.SpawnStars(world, s, world.Settings.Stars)

	rows, cols := world.Canvas.Size()
	s.Register(object.NewShip(float64(rows/2), float64(cols/2), world.Frames.Rocket, world.Settings))
	s.Register(object.NewScenario())

	if opts.ShowObstacles {
		s.Register(object.NewObstacleOverlay())
	}

	world.Log.Debug("game assembled", "tasks", s.Len(), "rows", rows, "cols", cols)
	return s
}
