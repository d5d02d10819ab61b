package object

import (
	"fmt"

	"github.com/tomz197/spacegarbage/internal/config"
	"github.com/tomz197/spacegarbage/internal/draw"
	"github.com/tomz197/spacegarbage/internal/physics"
)

// Ship is the player-controlled rocket.
type Ship struct {
	Row, Col           float64 // Top-left corner on the canvas
	RowSpeed, ColSpeed float64 // Cells per tick

	Law physics.SpeedLaw

	frames        []string // Each animation frame repeated FrameRepeat times
	frame         int
	width, height int

	drawn              string // Frame on screen, empty if none
	drawnRow, drawnCol float64

	hit bool
}

// NewShip creates a ship at the given position. All frames must share the
// size of the first one.
func NewShip(row, col float64, frames []string, s config.Settings) *Ship {
	var cycle []string
	for _, f := range frames {
		for range s.FrameRepeat {
			cycle = append(cycle, f)
		}
	}
	w, h := draw.FrameSize(frames[0])
	return &Ship{
		Row: row,
		Col: col,
		Law: physics.SpeedLaw{
			Limit:  s.ShipMaxSpeed,
			Accel:  s.ShipAccel,
			Fading: s.ShipFading,
		},
		frames: cycle,
		width:  w,
		height: h,
	}
}

// Size returns the ship's height and width in cells.
func (s *Ship) Size() (rows, cols int) {
	return s.height, s.width
}

// Update moves the ship by the player's controls, fires when the weapon is
// unlocked and blows up on contact with debris.
func (s *Ship) Update(ctx UpdateContext) (bool, error) {
	if s.hit {
		row, col := s.Row+float64(s.height)/2, s.Col+float64(s.width)/2
		ctx.Spawner.Spawn(NewExplosion(row, col, ctx.Frames.Explosion, ctx.Settings.ExplosionFrameTicks))
		ctx.Spawner.Spawn(NewGameOver(ctx.Frames.GameOver))
		ctx.Log.Info("ship destroyed", "tick", ctx.Tick, "year", ctx.Timeline.Year)
		return true, nil
	}

	if s.drawn != "" {
		draw.Frame(ctx.Canvas, s.drawnRow, s.drawnCol, s.drawn, true)
		s.drawn = ""
	}
	frame := s.frames[s.frame]
	s.frame = (s.frame + 1) % len(s.frames)

	c := ctx.Input.Read()
	var err error
	s.RowSpeed, s.ColSpeed, err = s.Law.UpdateSpeed(s.RowSpeed, s.ColSpeed, c.Rows, c.Cols)
	if err != nil {
		return false, fmt.Errorf("ship: %w", err)
	}

	rows, cols := ctx.Canvas.Size()
	s.Row, s.Col, s.RowSpeed, s.ColSpeed = physics.BoundMove(
		s.Row+s.RowSpeed, s.Col+s.ColSpeed,
		s.RowSpeed, s.ColSpeed,
		float64(rows-s.height), float64(cols-s.width),
	)

	if ob := ctx.Obstacles.FindColliding(s.Row, s.Col, float64(s.height), float64(s.width)); ob != nil {
		ctx.Hits.Record(ob, physics.StrikerExploded)
		// Stay off screen for one tick before exploding.
		s.hit = true
		return false, nil
	}

	draw.Frame(ctx.Canvas, s.Row, s.Col, frame, false)
	s.drawn, s.drawnRow, s.drawnCol = frame, s.Row, s.Col

	if c.Fire && ctx.Timeline.WeaponUnlocked {
		ctx.Spawner.Spawn(NewShot(s.Row, s.Col+float64(s.width/2), ctx.Settings.ShotSpeed, 0))
	}
	return false, nil
}
