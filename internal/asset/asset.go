// Package asset loads the text frames the game draws.
package asset

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
)

//go:embed frames
var embedded embed.FS

// Directory layout inside a frames tree.
const (
	RocketDir    = "rocket"
	GarbageDir   = "garbage"
	ExplosionDir = "explosion"
	GameOverFile = "game_over/game_over.txt"
)

// ErrNoFrames is returned when a frame directory holds no usable frames.
var ErrNoFrames = errors.New("asset: no frames")

// Frames holds every frame the game needs.
type Frames struct {
	Rocket    []string // Animation frames, in file name order
	Garbage   []string // Debris variants
	Explosion []string // Explosion stages, in file name order
	GameOver  string
}

// Embedded returns the root of the frames compiled into the binary.
func Embedded() fs.FS {
	sub, err := fs.Sub(embedded, "frames")
	if err != nil {
		panic(err) // embedded tree is fixed at build time
	}
	return sub
}

// Load reads all frames from fsys. Missing or empty frames are an error.
func Load(fsys fs.FS) (*Frames, error) {
	rocket, err := readDir(fsys, RocketDir)
	if err != nil {
		return nil, err
	}
	garbage, err := readDir(fsys, GarbageDir)
	if err != nil {
		return nil, err
	}
	explosion, err := readDir(fsys, ExplosionDir)
	if err != nil {
		return nil, err
	}
	gameOver, err := readFrame(fsys, GameOverFile)
	if err != nil {
		return nil, err
	}
	return &Frames{
		Rocket:    rocket,
		Garbage:   garbage,
		Explosion: explosion,
		GameOver:  gameOver,
	}, nil
}

func readDir(fsys fs.FS, dir string) ([]string, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("asset: read %s: %w", dir, err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".txt") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	if len(names) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoFrames, dir)
	}

	frames := make([]string, 0, len(names))
	for _, name := range names {
		frame, err := readFrame(fsys, path.Join(dir, name))
		if err != nil {
			return nil, err
		}
		frames = append(frames, frame)
	}
	return frames, nil
}

func readFrame(fsys fs.FS, name string) (string, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return "", fmt.Errorf("asset: read %s: %w", name, err)
	}
	frame := strings.TrimSuffix(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")
	if strings.TrimSpace(frame) == "" {
		return "", fmt.Errorf("%w: %s is blank", ErrNoFrames, name)
	}
	return frame, nil
}
