// Package loop provides the tick scheduler and assembles a game.
package loop

import (
	"context"
	"fmt"
	"time"

	"github.com/tomz197/spacegarbage/internal/object"
)

// Step runs one cycle: every live task is resumed once, finished tasks are
// dropped and tasks spawned during the cycle join the live list for the next
// one. A task error aborts the cycle and is returned.
func (s *Scheduler) Step() error {
	s.FlushSpawned()

	ctx := object.UpdateContext{
		World:   s.world,
		Spawner: s,
		Tick:    s.tick,
	}

	// Update tasks and collect ones to keep
	kept := s.tasks[:0] // reuse backing array
	for i, t := range s.tasks {
		done, err := t.Update(ctx)
		if err != nil {
			// Keep the unvisited tail so the list stays consistent.
			s.tasks = append(kept, s.tasks[i:]...)
			return fmt.Errorf("loop: tick %d: %T: %w", s.tick, t, err)
		}
		if !done {
			kept = append(kept, t)
		}
	}
	clear(s.tasks[len(kept):])
	s.tasks = kept

	s.FlushSpawned()
	s.tick++
	return nil
}

// Run drives the scheduler at the configured tick rate, rendering once per
// cycle, until no task is left, a task fails or ctx is cancelled.
func (s *Scheduler) Run(ctx context.Context) error {
	tick := s.world.Settings.Tick
	timer := time.NewTimer(0)
	defer timer.Stop()
	<-timer.C

	for {
		frameStart := time.Now()
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := s.Step(); err != nil {
			s.world.Log.Error("task failed", "err", err)
			return err
		}
		if s.Len() == 0 {
			s.world.Log.Info("all tasks finished", "tick", s.tick)
			return nil
		}

		if err := s.screen.Show(); err != nil {
			return fmt.Errorf("loop: render: %w", err)
		}

		// ===== FRAME TIMING =====
		elapsed := time.Since(frameStart)
		if elapsed >= tick {
			continue
		}
		timer.Reset(tick - elapsed)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}
}
