package config

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// Environment variables that override the defaults.
const (
	EnvTickMillis  = "GARBAGE_TICK_MS"
	EnvStars       = "GARBAGE_STARS"
	EnvTicsPerYear = "GARBAGE_TICS_PER_YEAR"
	EnvGraceMillis = "GARBAGE_GRACE_MS"
	EnvLogPath     = "GARBAGE_LOG"
)

// Settings holds every tunable game parameter.
type Settings struct {
	Tick        time.Duration // Duration of one scheduler cycle
	TicsPerYear int           // Ticks per simulated year

	// Stars
	Stars       int
	StarSymbols string
	BlinkDim    time.Duration // Hold in dim state
	BlinkNormal time.Duration // Hold in normal state (both normal phases)
	BlinkBold   time.Duration // Hold in bold state
	StarDelay   time.Duration // Upper bound of the random initial delay

	// Ship
	ShipMaxSpeed float64 // Per-axis speed limit, cells per tick
	ShipAccel    float64 // Speed added per tick of held input
	ShipFading   float64 // Speed multiplier applied every tick
	FrameRepeat  int     // Ticks each rocket frame is shown

	// Projectiles and hazards
	ShotSpeed   float64 // Rows per tick, negative is up
	DebrisSpeed float64 // Rows per tick

	// Effects
	ExplosionFrameTicks int
	PhraseTicks         int // How long a scripted phrase stays on screen
	BannerStep          int // Columns a banner slides per tick

	// Process
	GameOverGrace    time.Duration // Time the game-over screen stays up before exit
	MonitorHold      time.Duration // How long the advanced monitor treats a key as held
	MonitorStopGrace time.Duration // Time the advanced monitor gets to stop
}

// Default returns the stock settings.
func Default() Settings {
	return Settings{
		Tick:        100 * time.Millisecond,
		TicsPerYear: 10,

		Stars:       100,
		StarSymbols: "+*.:",
		BlinkDim:    2 * time.Second,
		BlinkNormal: 300 * time.Millisecond,
		BlinkBold:   500 * time.Millisecond,
		StarDelay:   time.Second,

		ShipMaxSpeed: 2,
		ShipAccel:    1,
		ShipFading:   0.8,
		FrameRepeat:  2,

		ShotSpeed:   -2,
		DebrisSpeed: 0.5,

		ExplosionFrameTicks: 1,
		PhraseTicks:         40,
		BannerStep:          6,

		GameOverGrace:    5 * time.Second,
		MonitorHold:      150 * time.Millisecond,
		MonitorStopGrace: time.Second,
	}
}

// FromEnv returns the defaults with environment overrides applied.
func FromEnv() (Settings, error) {
	s := Default()
	var err error
	if s.Tick, err = GetEnvMillis(EnvTickMillis, s.Tick); err != nil {
		return s, err
	}
	if s.Stars, err = GetEnvInt(EnvStars, s.Stars); err != nil {
		return s, err
	}
	if s.TicsPerYear, err = GetEnvInt(EnvTicsPerYear, s.TicsPerYear); err != nil {
		return s, err
	}
	if s.GameOverGrace, err = GetEnvMillis(EnvGraceMillis, s.GameOverGrace); err != nil {
		return s, err
	}
	return s, s.Validate()
}

// Validate rejects settings that would stall or break the scheduler.
func (s Settings) Validate() error {
	var errs []error
	if s.Tick <= 0 {
		errs = append(errs, fmt.Errorf("tick must be positive, got %v", s.Tick))
	}
	if s.TicsPerYear < 1 {
		errs = append(errs, fmt.Errorf("tics per year must be at least 1, got %d", s.TicsPerYear))
	}
	if s.Stars < 0 {
		errs = append(errs, fmt.Errorf("star count must not be negative, got %d", s.Stars))
	}
	if s.StarSymbols == "" {
		errs = append(errs, errors.New("star symbols must not be empty"))
	}
	if s.ShipFading < 0 || s.ShipFading > 1 {
		errs = append(errs, fmt.Errorf("ship fading must be within [0, 1], got %v", s.ShipFading))
	}
	if s.FrameRepeat < 1 || s.ExplosionFrameTicks < 1 || s.BannerStep < 1 {
		errs = append(errs, errors.New("frame repeat, explosion frame ticks and banner step must be at least 1"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}

// Ticks converts a wall-clock duration to a whole number of ticks, rounding
// to nearest and never returning less than one.
func (s Settings) Ticks(d time.Duration) int {
	n := int(math.Round(float64(d) / float64(s.Tick)))
	if n < 1 {
		return 1
	}
	return n
}
