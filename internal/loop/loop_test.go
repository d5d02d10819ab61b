package loop

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomz197/spacegarbage/internal/asset"
	"github.com/tomz197/spacegarbage/internal/config"
	"github.com/tomz197/spacegarbage/internal/draw"
	"github.com/tomz197/spacegarbage/internal/object"
	"github.com/tomz197/spacegarbage/internal/physics"
	"github.com/tomz197/spacegarbage/internal/scenario"
)

// probe records every resume and finishes after a fixed number of them.
type probe struct {
	name  string
	runs  int
	limit int // 0 runs forever
	log   *[]string
	spawn object.Task
	err   error
}

func (p *probe) Update(ctx object.UpdateContext) (bool, error) {
	p.runs++
	*p.log = append(*p.log, p.name)
	if p.err != nil {
		return false, p.err
	}
	if p.spawn != nil {
		ctx.Spawner.Spawn(p.spawn)
		p.spawn = nil
	}
	return p.limit > 0 && p.runs >= p.limit, nil
}

func newWorld(t *testing.T, screen *draw.Buffer) *object.World {
	t.Helper()
	layout, err := draw.NewLayout(screen)
	require.NoError(t, err)
	frames, err := asset.Load(asset.Embedded())
	require.NoError(t, err)

	settings := config.Default()
	settings.Stars = 5
	settings.Tick = time.Millisecond
	return object.NewWorld(object.WorldOptions{
		Settings: settings,
		Canvas:   layout.Canvas,
		Footer:   layout.Footer,
		Bell:     screen,
		Frames:   frames,
		Rand:     rand.New(rand.NewSource(7)),
	})
}

func count[T object.Task](tasks []object.Task) int {
	n := 0
	for _, t := range tasks {
		if _, ok := t.(T); ok {
			n++
		}
	}
	return n
}

func TestStepOrderAndSpawnTiming(t *testing.T) {
	var log []string
	screen := draw.NewBuffer(24, 80)
	s := NewScheduler(newWorld(t, screen), screen)

	child := &probe{name: "child", log: &log}
	s.Register(&probe{name: "a", log: &log, spawn: child})
	s.Register(&probe{name: "b", log: &log, limit: 1})

	require.NoError(t, s.Step())
	assert.Equal(t, []string{"a", "b"}, log, "spawned tasks wait for the next cycle")
	assert.Equal(t, 2, s.Len(), "b finished, child joined")

	log = nil
	require.NoError(t, s.Step())
	assert.Equal(t, []string{"a", "child"}, log)
	assert.Equal(t, uint64(2), s.Tick())
}

func TestStepWrapsTaskError(t *testing.T) {
	var log []string
	screen := draw.NewBuffer(24, 80)
	s := NewScheduler(newWorld(t, screen), screen)
	boom := errors.New("boom")
	s.Register(&probe{name: "bad", log: &log, err: boom})
	s.Register(&probe{name: "after", log: &log})

	err := s.Step()
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "*loop.probe")
	assert.Equal(t, []string{"bad"}, log, "the cycle stops at the failing task")
	assert.Equal(t, 2, s.Len())
}

func TestRunStopsWhenTasksFinish(t *testing.T) {
	var log []string
	screen := draw.NewBuffer(24, 80)
	s := NewScheduler(newWorld(t, screen), screen)
	s.Register(&probe{name: "p", log: &log, limit: 3})

	require.NoError(t, s.Run(context.Background()))
	assert.Len(t, log, 3)
	assert.Equal(t, 2, screen.Shows(), "one render per cycle that leaves tasks alive")
}

func TestRunCancelled(t *testing.T) {
	var log []string
	screen := draw.NewBuffer(24, 80)
	s := NewScheduler(newWorld(t, screen), screen)
	s.Register(&probe{name: "forever", log: &log})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()
	err := s.Run(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.NotEmpty(t, log)
}

func TestRunReturnsTaskError(t *testing.T) {
	var log []string
	screen := draw.NewBuffer(24, 80)
	s := NewScheduler(newWorld(t, screen), screen)
	boom := errors.New("boom")
	s.Register(&probe{name: "bad", log: &log, err: boom})

	assert.ErrorIs(t, s.Run(context.Background()), boom)
}

func TestNewGameStartingTasks(t *testing.T) {
	screen := draw.NewBuffer(24, 80)
	world := newWorld(t, screen)
	s := NewGame(world, screen, Options{})
	require.NoError(t, s.Step())

	tasks := s.Tasks()
	assert.Equal(t, 5, count[*object.Star](tasks))
	assert.Equal(t, 1, count[*object.Ship](tasks))
	assert.Equal(t, 1, count[*object.Scenario](tasks))

	withOverlay := NewGame(newWorld(t, draw.NewBuffer(24, 80)), screen, Options{ShowObstacles: true})
	require.NoError(t, withOverlay.Step())
	assert.Equal(t, 1, count[*object.ObstacleOverlay](withOverlay.Tasks()))
}

func TestGameStartsDebrisInHazardYear(t *testing.T) {
	screen := draw.NewBuffer(24, 80)
	world := newWorld(t, screen)
	s := NewGame(world, screen, Options{})

	for range 40 {
		require.NoError(t, s.Step())
		assert.Zero(t, count[*object.DebrisSpawner](s.Tasks()), "year %d", world.Timeline.Year)
	}
	require.NoError(t, s.Step())
	assert.Equal(t, 1961, world.Timeline.Year)
	assert.Equal(t, 1, count[*object.DebrisSpawner](s.Tasks()))

	for range 59 {
		require.NoError(t, s.Step())
	}
	assert.Equal(t, 1966, world.Timeline.Year, "one year per ten ticks")
	assert.Contains(t, screen.Row(22), "Year: 1966")
}

func TestShipHitEndsWithOneExplosion(t *testing.T) {
	screen := draw.NewBuffer(24, 80)
	world := newWorld(t, screen)
	rows, cols := world.Canvas.Size()
	world.Obstacles.Add(physics.NewObstacle(float64(rows/2), float64(cols/2), 1, 1, nil))
	s := NewGame(world, screen, Options{})

	require.NoError(t, s.Step())
	assert.Equal(t, 1, count[*object.Ship](s.Tasks()))

	require.NoError(t, s.Step())
	tasks := s.Tasks()
	assert.Zero(t, count[*object.Ship](tasks), "ship is gone within two ticks")
	assert.Equal(t, 1, count[*object.Explosion](tasks))
	assert.Equal(t, 1, count[*object.GameOver](tasks))

	require.NoError(t, s.Step())
	select {
	case <-world.Over():
	default:
		t.Fatal("game over not signalled")
	}
}

// explosions counts distinct explosions seen over n cycles.
func explosions(t *testing.T, s *Scheduler, n int) int {
	t.Helper()
	seen := make(map[object.Task]bool)
	for range n {
		require.NoError(t, s.Step())
		for _, task := range s.Tasks() {
			if _, ok := task.(*object.Explosion); ok {
				seen[task] = true
			}
		}
	}
	return len(seen)
}

func TestShotDestroysDebris(t *testing.T) {
	screen := draw.NewBuffer(20, 30)
	world := newWorld(t, screen)
	world.Canvas = screen

	// Debris falls one row per tick; the shot climbs two and meets it on row 4.
	debris := object.NewDebris(world, 10, "##", 1)
	s := NewScheduler(world, screen)
	s.Register(debris)
	s.Register(object.NewShot(10, 10, -2, 0))

	assert.Equal(t, 1, explosions(t, s, 20))
	assert.Zero(t, world.Obstacles.Len())
	assert.Zero(t, world.Hits.Len())
	assert.Zero(t, s.Len())
	assert.Equal(t, 1, screen.Beeps())
}

func TestShipRamsDebris(t *testing.T) {
	screen := draw.NewBuffer(20, 30)
	world := newWorld(t, screen)
	world.Canvas = screen

	debris := object.NewDebris(world, 10, "##", 0)
	s := NewScheduler(world, screen)
	s.Register(debris)
	s.Register(object.NewShip(0, 10, world.Frames.Rocket, world.Settings))

	assert.Equal(t, 1, explosions(t, s, 12), "the ship explodes, the debris just vanishes")
	assert.Zero(t, world.Obstacles.Len())
	assert.Equal(t, 1, count[*object.GameOver](s.Tasks()))
	assert.Zero(t, count[*object.Debris](s.Tasks()))
}

func TestBannersNeverOverlap(t *testing.T) {
	screen := draw.NewBuffer(24, 64)
	world := newWorld(t, screen)
	world.Table = &scenario.Table{
		StartYear:  2000,
		HazardYear: 2005,
		WeaponYear: 2010,
		WeaponText: "gun",
		Steps:      []scenario.Step{{Year: 2000, Delay: 50}},
		Phrases:    map[int]string{2000: "alpha", 2001: "beta"},
	}
	world.Timeline = scenario.NewTimeline(world.Table)
	world.Settings.TicsPerYear = 3

	s := NewScheduler(world, screen)
	s.Register(object.NewScenario())

	footer := func() string { return screen.Row(22) }
	for i := range 12 {
		require.NoError(t, s.Step())
		both := strings.Contains(footer(), "alpha") && strings.Contains(footer(), "beta")
		assert.False(t, both, "tick %d: %q", i, footer())
	}
	assert.Contains(t, footer(), "beta")
	assert.NotContains(t, footer(), "alpha")
}
