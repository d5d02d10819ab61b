package object

import (
	"fmt"

	"github.com/tomz197/spacegarbage/internal/draw"
)

// yearLabelWidth is the space reserved at the right of the footer for the
// year display.
const yearLabelWidth = 12

// Scenario is the game clock. It advances the year, shows the year and the
// scripted phrases, starts the debris spawner and unlocks the weapon.
type Scenario struct {
	started bool
	sleep   Sleep
}

// NewScenario creates the scenario clock.
func NewScenario() *Scenario {
	return &Scenario{}
}

// Update handles one year boundary, then waits out the year.
func (s *Scenario) Update(ctx UpdateContext) (bool, error) {
	if s.sleep.Pending() {
		return false, nil
	}
	tl, table := ctx.Timeline, ctx.Table
	if s.started {
		tl.Year++
	}
	s.started = true

	_, cols := ctx.Footer.Size()
	draw.Text(ctx.Footer, 0, cols-yearLabelWidth, fmt.Sprintf("Year: %d", tl.Year), draw.Normal)

	if phrase, ok := table.Phrase(tl.Year); ok {
		ctx.Banners.Show(ctx.Spawner, NewBanner(phrase, ctx.Settings.PhraseTicks))
	}
	if !tl.HazardsStarted && tl.Year >= table.HazardYear {
		tl.HazardsStarted = true
		ctx.Spawner.Spawn(NewDebrisSpawner())
		ctx.Log.Info("debris started", "year", tl.Year)
	}
	if !tl.WeaponUnlocked && tl.Year >= table.WeaponYear {
		tl.WeaponUnlocked = true
		ctx.Banners.Show(ctx.Spawner, NewBanner(table.WeaponText, Permanent))
		ctx.Log.Info("weapon unlocked", "year", tl.Year)
	}

	s.sleep.Start(ctx.Settings.TicsPerYear)
	return false, nil
}
