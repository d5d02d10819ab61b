// Package physics provides collision detection and motion utilities.
package physics

import (
	"errors"
	"fmt"
	"math"
)

// Rect is an axis-aligned box in canvas cells. It covers the half-open
// ranges [Row, Row+Rows) and [Col, Col+Cols).
type Rect struct {
	Row, Col   float64
	Rows, Cols float64
}

// Bottom returns the first row below the rectangle.
func (r Rect) Bottom() float64 {
	return r.Row + r.Rows
}

// Right returns the first column right of the rectangle.
func (r Rect) Right() float64 {
	return r.Col + r.Cols
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (row, col float64) {
	return r.Row + r.Rows/2, r.Col + r.Cols/2
}

// Overlaps reports whether two rectangles share a strictly positive area.
// Rectangles that only touch at an edge or corner do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	if r.Row >= o.Bottom() || o.Row >= r.Bottom() {
		return false
	}
	if r.Col >= o.Right() || o.Col >= r.Right() {
		return false
	}
	return true
}

// ErrDirection is returned for control directions outside {-1, 0, 1}.
var ErrDirection = errors.New("physics: direction must be -1, 0 or 1")

// SpeedLaw describes how control input changes velocity each tick.
type SpeedLaw struct {
	Limit  float64 // Absolute per-axis limit
	Accel  float64 // Added per tick in the input direction
	Fading float64 // Multiplier applied before acceleration
}

// UpdateSpeed applies one tick of the speed law to both axes.
func (l SpeedLaw) UpdateSpeed(rowSpeed, colSpeed float64, rowDir, colDir int) (float64, float64, error) {
	if !validDirection(rowDir) || !validDirection(colDir) {
		return rowSpeed, colSpeed, fmt.Errorf("%w: got (%d, %d)", ErrDirection, rowDir, colDir)
	}
	return l.apply(rowSpeed, rowDir), l.apply(colSpeed, colDir), nil
}

func (l SpeedLaw) apply(speed float64, dir int) float64 {
	speed *= l.Fading
	if dir != 0 {
		limit := math.Abs(l.Limit)
		speed = clamp(speed+float64(dir)*l.Accel, -limit, limit)
	}
	// Snap residual drift so the ship actually comes to rest
	if math.Abs(speed) < 0.1 {
		speed = 0
	}
	return speed
}

// BoundMove clamps a position to [0, rowMax] x [0, colMax] and zeroes the
// speed component of every clamped axis.
func BoundMove(row, col, rowSpeed, colSpeed, rowMax, colMax float64) (float64, float64, float64, float64) {
	if row <= 0 {
		row, rowSpeed = 0, 0
	}
	if row >= rowMax {
		row, rowSpeed = rowMax, 0
	}
	if col <= 0 {
		col, colSpeed = 0, 0
	}
	if col >= colMax {
		col, colSpeed = colMax, 0
	}
	return row, col, rowSpeed, colSpeed
}

func validDirection(d int) bool {
	return d >= -1 && d <= 1
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
