package core

import "math"

// Size describes the dimensions of a level grid.
type Size struct {
	W int
	H int
}

// Cell is an integer grid coordinate.
type Cell struct {
	X, Y int
}

// Vec2 is a point or direction in grid-cell units.
type Vec2 struct {
	X, Y float64
}

// Add returns v+o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{X: v.X + o.X, Y: v.Y + o.Y} }

// Sub returns v-o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{X: v.X - o.X, Y: v.Y - o.Y} }

// Scale returns v multiplied by s.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{X: v.X * s, Y: v.Y * s} }

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// Perp returns v rotated a quarter turn: (-y, x).
func (v Vec2) Perp() Vec2 { return Vec2{X: -v.Y, Y: v.X} }

// Rotate returns v rotated by angle radians.
func (v Vec2) Rotate(angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// Cell returns the grid coordinate containing v. Negative coordinates fall
// into negative cells.
func (v Vec2) Cell() Cell { return Cell{X: int(math.Floor(v.X)), Y: int(math.Floor(v.Y))} }
