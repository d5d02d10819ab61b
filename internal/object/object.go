package object

import (
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/spacegarbage/internal/asset"
	"github.com/tomz197/spacegarbage/internal/config"
	"github.com/tomz197/spacegarbage/internal/draw"
	"github.com/tomz197/spacegarbage/internal/input"
	"github.com/tomz197/spacegarbage/internal/physics"
	"github.com/tomz197/spacegarbage/internal/scenario"
)

// Task is one resumable game behavior: a star, the ship, a piece of debris,
// a shot, an explosion, a banner, the scenario clock.
type Task interface {
	// Update runs the task up to its next yield point. It returns done when
	// the task has finished and must be dropped. Update must always return;
	// a task that never yields stalls the whole game.
	Update(ctx UpdateContext) (done bool, err error)
}

// Spawner allows tasks to start new tasks during update. Spawned tasks first
// run on the next tick.
type Spawner interface {
	Spawn(t Task)
}

// UpdateContext provides all the information a task needs during update.
type UpdateContext struct {
	*World
	Spawner Spawner
	Tick    uint64
}

// World is the state shared by every task of one game. Tasks only touch it
// on their own turn, so it needs no locking.
type World struct {
	Settings config.Settings
	Table    *scenario.Table
	Timeline *scenario.Timeline // written by the scenario clock only

	Canvas draw.Surface // playfield
	Footer draw.Surface // status line
	Input  input.Source
	Bell   draw.Beeper
	Frames *asset.Frames

	Obstacles *physics.Registry
	Hits      *physics.HitSet
	Banners   *BannerSlot

	Rand *rand.Rand
	Log  *log.Logger

	overOnce sync.Once
	over     chan struct{}
}

// WorldOptions configures a new world. Zero fields get defaults where one
// makes sense.
type WorldOptions struct {
	Settings config.Settings
	Table    *scenario.Table
	Canvas   draw.Surface
	Footer   draw.Surface
	Input    input.Source
	Bell     draw.Beeper
	Frames   *asset.Frames
	Rand     *rand.Rand
	Log      *log.Logger
}

// NewWorld creates the shared state for one game.
func NewWorld(o WorldOptions) *World {
	if o.Table == nil {
		o.Table = scenario.Default()
	}
	if o.Input == nil {
		o.Input = idle{}
	}
	if o.Bell == nil {
		o.Bell = idle{}
	}
	if o.Rand == nil {
		o.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if o.Log == nil {
		o.Log = log.New(io.Discard)
	}
	return &World{
		Settings:  o.Settings,
		Table:     o.Table,
		Timeline:  scenario.NewTimeline(o.Table),
		Canvas:    o.Canvas,
		Footer:    o.Footer,
		Input:     o.Input,
		Bell:      o.Bell,
		Frames:    o.Frames,
		Obstacles: physics.NewRegistry(),
		Hits:      physics.NewHitSet(),
		Banners:   &BannerSlot{},
		Rand:      o.Rand,
		Log:       o.Log,
		over:      make(chan struct{}),
	}
}

// Over is closed once the game-over screen is up.
func (w *World) Over() <-chan struct{} {
	return w.over
}

func (w *World) markOver() {
	w.overOnce.Do(func() { close(w.over) })
}

// idle is the input source and bell used when none is configured.
type idle struct{}

func (idle) Read() input.Controls { return input.Controls{} }
func (idle) Beep() error          { return nil }

// Sleep is an explicit tick countdown. Start(n) is called at a yield point,
// which counts as the first of the n ticks; Pending then swallows the
// remaining n-1 updates.
type Sleep struct {
	left int
}

// Start begins a wait of n ticks.
func (s *Sleep) Start(n int) {
	s.left = n - 1
}

// Pending consumes one tick of the wait and reports whether it did.
func (s *Sleep) Pending() bool {
	if s.left > 0 {
		s.left--
		return true
	}
	return false
}
