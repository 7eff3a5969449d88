// Package motion moves a first-person pose through a level grid. Movement is
// resolved one axis at a time so the player slides along walls instead of
// sticking to them.
package motion

import (
	"math"

	"gridcaster/internal/core"
)

const (
	// MoveSpeed is the walking speed in cells per second.
	MoveSpeed = 2.5
	// DefaultRadius is the clearance kept between the player and solid cells.
	DefaultRadius = 0.2
	// DefaultPlaneScale is |Plane|/|Dir| for a new pose, roughly a 66° field of view.
	DefaultPlaneScale = 0.66
)

// World answers solidity queries. Coordinates outside the level must report
// solid.
type World interface {
	IsSolid(x, y int) bool
}

// Pose is the player's position and view. Dir and Plane only ever change
// together through Rotate, so their length ratio (the field of view) is fixed
// for the life of the pose.
type Pose struct {
	Pos    core.Vec2
	Dir    core.Vec2
	Plane  core.Vec2
	Radius float64
}

// NewPose returns a pose at (x, y) facing +x with the default field of view.
func NewPose(x, y float64) Pose {
	return Pose{
		Pos:    core.Vec2{X: x, Y: y},
		Dir:    core.Vec2{X: 1, Y: 0},
		Plane:  core.Vec2{X: 0, Y: DefaultPlaneScale},
		Radius: DefaultRadius,
	}
}

// Rotate turns the view by angle radians. No normalization is applied.
func (p *Pose) Rotate(angle float64) {
	if angle == 0 {
		return
	}
	p.Dir = p.Dir.Rotate(angle)
	p.Plane = p.Plane.Rotate(angle)
}

// Step walks the pose for dt seconds. forward and strafe are intents in
// [-1, 1]; positive strafe moves along Dir.Perp().
func (p *Pose) Step(w World, forward, strafe, dt float64) {
	f := p.Dir.Scale(forward * MoveSpeed * dt)
	s := p.Dir.Perp().Scale(strafe * MoveSpeed * dt)
	p.Pos = AttemptMove(w, p.Pos, f.Add(s), p.Radius)
}

// Cell returns the grid cell containing the pose.
func (p Pose) Cell() core.Cell { return p.Pos.Cell() }

// FOVRatio returns |Plane|/|Dir|.
func (p Pose) FOVRatio() float64 {
	d := p.Dir.Len()
	if d == 0 {
		return 0
	}
	return p.Plane.Len() / d
}

// AttemptMove applies delta to pos against w. The x and y components are
// checked independently, each probing the cell radius ahead of the candidate
// position on the pre-move row or column, so a diagonal push into a wall keeps
// the free component.
func AttemptMove(w World, pos, delta core.Vec2, radius float64) core.Vec2 {
	out := pos

	nextX := pos.X + delta.X
	if !w.IsSolid(floor(nextX+sign(delta.X)*radius), floor(pos.Y)) {
		out.X = nextX
	}

	nextY := pos.Y + delta.Y
	if !w.IsSolid(floor(pos.X), floor(nextY+sign(delta.Y)*radius)) {
		out.Y = nextY
	}
	return out
}

// floor maps a coordinate to its cell index; -0.45 is in cell -1, not 0.
func floor(v float64) int { return int(math.Floor(v)) }

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
