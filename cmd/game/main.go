package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"math/rand"
	"os"
	"os/signal"
	"runtime/debug"
	"sync"
	"syscall"
	"time"

	"github.com/tomz197/spacegarbage/internal/asset"
	"github.com/tomz197/spacegarbage/internal/audio"
	"github.com/tomz197/spacegarbage/internal/config"
	"github.com/tomz197/spacegarbage/internal/draw"
	"github.com/tomz197/spacegarbage/internal/input"
	"github.com/tomz197/spacegarbage/internal/loop"
	"github.com/tomz197/spacegarbage/internal/object"
	"github.com/tomz197/spacegarbage/internal/scenario"
)

type options struct {
	advanced  bool
	backend   string
	sound     bool
	scenario  string
	frames    string
	seed      int64
	debug     bool
	obstacles bool
}

func parseFlags() options {
	var o options
	flag.BoolVar(&o.advanced, "a", false, "advanced control: keys stay held until released")
	flag.BoolVar(&o.advanced, "advanced-control", false, "same as -a")
	flag.StringVar(&o.backend, "backend", "tcell", "terminal backend: tcell or ansi")
	flag.BoolVar(&o.sound, "sound", false, "play a tone through the speaker instead of the terminal bell")
	flag.StringVar(&o.scenario, "scenario", "", "YAML file overriding the scenario timeline")
	flag.StringVar(&o.frames, "frames", "", "directory with frame files replacing the built-in ones")
	flag.Int64Var(&o.seed, "seed", 0, "random seed, 0 picks one from the clock")
	flag.BoolVar(&o.debug, "debug", false, "write a debug log")
	flag.BoolVar(&o.obstacles, "obstacles", false, "outline collision boxes")
	flag.Parse()
	return o
}

func main() {
	os.Exit(run(parseFlags()))
}

func run(opts options) (code int) {
	logger, closeLog, err := setupLogging(opts.debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open log: %v\n", err)
		return 1
	}
	defer closeLog()

	settings, err := config.FromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid settings: %v\n", err)
		return 1
	}
	table := scenario.Default()
	if opts.scenario != "" {
		if table, err = scenario.Load(opts.scenario); err != nil {
			fmt.Fprintf(os.Stderr, "invalid scenario: %v\n", err)
			return 1
		}
	}
	var fsys fs.FS = asset.Embedded()
	if opts.frames != "" {
		fsys = os.DirFS(opts.frames)
	}
	frames, err := asset.Load(fsys)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load frames: %v\n", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	screen, keys, err := openBackend(opts.backend, cancel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize terminal: %v\n", err)
		return 1
	}
	closeScreen := sync.OnceFunc(func() {
		if err := screen.Close(); err != nil {
			logger.Warn("terminal restore failed", "err", err)
		}
	})
	defer closeScreen()

	// Panic recovery: restore the terminal so the trace is readable
	defer func() {
		if r := recover(); r != nil {
			closeScreen()
			fmt.Fprintf(os.Stderr, "game crashed: %v\nStack Trace:\n%s\n", r, debug.Stack())
			code = 1
		}
	}()

	layout, err := draw.NewLayout(screen)
	if err != nil {
		closeScreen()
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		return 1
	}

	var source input.Source
	if opts.advanced {
		monitor := input.NewMonitor(keys, settings.MonitorHold, logger)
		monitor.Start(ctx)
		defer func() {
			if err := monitor.Stop(settings.MonitorStopGrace); err != nil {
				logger.Error("input monitor", "err", err)
			}
		}()
		source = monitor
	} else {
		source = input.NewPoller(keys)
	}

	var bell draw.Beeper = screen
	if opts.sound {
		tone, err := audio.NewToneBell()
		if err != nil {
			logger.Warn("speaker unavailable, continuing with terminal bell", "err", err)
		} else {
			defer tone.Close()
			bell = tone
		}
	}

	seed := opts.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	world := object.NewWorld(object.WorldOptions{
		Settings: settings,
		Table:    table,
		Canvas:   layout.Canvas,
		Footer:   layout.Footer,
		Input:    source,
		Bell:     bell,
		Frames:   frames,
		Rand:     rand.New(rand.NewSource(seed)),
		Log:      logger,
	})
	game := loop.NewGame(world, screen, loop.Options{ShowObstacles: opts.obstacles})
	logger.Info("game started", "backend", opts.backend, "advanced", opts.advanced, "seed", seed)

	go exitAfterGameOver(ctx, world, settings.GameOverGrace, cancel)

	err = game.Run(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		closeScreen()
		logger.Error("game stopped", "err", err)
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		return 1
	}
	logger.Info("game finished", "tick", game.Tick(), "year", world.Timeline.Year)
	return 0
}

// exitAfterGameOver cancels the game once the game-over screen has been up
// for the grace period.
func exitAfterGameOver(ctx context.Context, world *object.World, grace time.Duration, cancel context.CancelFunc) {
	select {
	case <-ctx.Done():
		return
	case <-world.Over():
	}
	select {
	case <-ctx.Done():
	case <-time.After(grace):
		cancel()
	}
}

// openBackend initialises the terminal and its key source. onQuit is called
// when the player presses a quit key.
func openBackend(name string, onQuit func()) (draw.Screen, <-chan input.Key, error) {
	switch name {
	case "tcell":
		screen, err := draw.NewTcellScreen()
		if err != nil {
			return nil, nil, err
		}
		return screen, input.FromTcell(screen.Tcell(), onQuit), nil
	case "ansi":
		screen, err := draw.NewAnsiScreen(os.Stdin, os.Stdout)
		if err != nil {
			return nil, nil, err
		}
		return screen, input.FromReader(os.Stdin, onQuit), nil
	}
	return nil, nil, fmt.Errorf("unknown backend %q", name)
}
