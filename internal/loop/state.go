package loop

import (
	"github.com/tomz197/spacegarbage/internal/draw"
	"github.com/tomz197/spacegarbage/internal/object"
)

// Scheduler owns the live task list and runs one cycle per tick. Tasks are
// resumed one at a time in registration order.
type Scheduler struct {
	world   *object.World
	screen  draw.Screen
	tasks   []object.Task
	toSpawn []object.Task // Tasks to add after the current cycle
	tick    uint64
}

// Compile-time check that Scheduler implements object.Spawner.
var _ object.Spawner = (*Scheduler)(nil)

// NewScheduler creates an empty scheduler rendering to screen.
func NewScheduler(world *object.World, screen draw.Screen) *Scheduler {
	return &Scheduler{world: world, screen: screen}
}

// Register queues a task before or during the run. It first runs on the
// next cycle.
func (s *Scheduler) Register(t object.Task) {
	s.toSpawn = append(s.toSpawn, t)
}

// Spawn queues a task to be added after the current cycle.
// Implements object.Spawner interface.
func (s *Scheduler) Spawn(t object.Task) {
	s.Register(t)
}

// FlushSpawned adds all queued tasks to the live list and clears the queue.
func (s *Scheduler) FlushSpawned() {
	s.tasks = append(s.tasks, s.toSpawn...)
	clear(s.toSpawn)
	s.toSpawn = s.toSpawn[:0]
}

// Len returns the number of live and queued tasks.
func (s *Scheduler) Len() int {
	return len(s.tasks) + len(s.toSpawn)
}

// Tasks returns a copy of the live tasks in resume order.
func (s *Scheduler) Tasks() []object.Task {
	out := make([]object.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Tick returns the number of completed cycles.
func (s *Scheduler) Tick() uint64 {
	return s.tick
}

// World returns the shared state the tasks run against.
func (s *Scheduler) World() *object.World {
	return s.world
}
