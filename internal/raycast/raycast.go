// Package raycast turns a pose and a level grid into one wall hit per screen
// column using DDA grid traversal.
package raycast

import (
	"math"

	"gridcaster/internal/core"
	"gridcaster/internal/motion"
)

// MinPerp is the smallest perpendicular distance a hit reports.
const MinPerp = 1e-4

const (
	// SideX marks a hit on a vertical cell boundary (the ray stepped along x).
	SideX uint8 = 0
	// SideY marks a hit on a horizontal cell boundary (the ray stepped along y).
	SideY uint8 = 1
)

// World answers identifier queries. It must return a nonzero value for every
// coordinate outside the level so traversal always terminates.
type World interface {
	Get(x, y int) uint8
}

// ColumnHit is the wall a single screen column sees.
type ColumnHit struct {
	X    int
	Y0   int // first row to paint, inclusive
	Y1   int // last row to paint, inclusive
	Wall uint8
	Perp float64 // distance from the camera plane, never below MinPerp
	TexU float64 // position along the wall face in [0, 1)
	Side uint8
}

// CastFrame casts one ray per column of a w×h frame and returns the hits in
// column order.
func CastFrame(w, h int, pose motion.Pose, world World) []ColumnHit {
	if w <= 0 {
		return nil
	}
	return CastFrameInto(make([]ColumnHit, 0, w), w, h, pose, world)
}

// CastFrameInto is CastFrame appending into dst[:0], reusing its storage.
func CastFrameInto(dst []ColumnHit, w, h int, pose motion.Pose, world World) []ColumnHit {
	dst = dst[:0]
	if w <= 0 || h <= 0 {
		return dst
	}
	for x := 0; x < w; x++ {
		dst = append(dst, CastColumn(x, w, h, pose, world))
	}
	return dst
}

// CastColumn casts the ray for screen column x of a w×h frame.
func CastColumn(x, w, h int, pose motion.Pose, world World) ColumnHit {
	pos := pose.Pos
	cameraX := 2*float64(x)/float64(w) - 1
	rayX := pose.Dir.X + pose.Plane.X*cameraX
	rayY := pose.Dir.Y + pose.Plane.Y*cameraX
	if rayX == 0 && rayY == 0 {
		// A degenerate view axis sees nothing; report the horizon.
		return ColumnHit{X: x, Y0: h / 2, Y1: h / 2, Wall: core.OutOfBounds, Perp: math.MaxFloat64}
	}

	mapX := int(math.Floor(pos.X))
	mapY := int(math.Floor(pos.Y))

	deltaX := math.Inf(1)
	if rayX != 0 {
		deltaX = math.Abs(1 / rayX)
	}
	deltaY := math.Inf(1)
	if rayY != 0 {
		deltaY = math.Abs(1 / rayY)
	}

	var stepX, stepY int
	var sideX, sideY float64
	if rayX < 0 {
		stepX = -1
		sideX = (pos.X - float64(mapX)) * deltaX
	} else {
		stepX = 1
		sideX = (float64(mapX) + 1 - pos.X) * deltaX
	}
	if rayY < 0 {
		stepY = -1
		sideY = (pos.Y - float64(mapY)) * deltaY
	} else {
		stepY = 1
		sideY = (float64(mapY) + 1 - pos.Y) * deltaY
	}

	// Ties step along y so identical inputs always produce identical frames.
	var wall, side uint8
	for wall == 0 {
		if sideX < sideY {
			sideX += deltaX
			mapX += stepX
			side = SideX
		} else {
			sideY += deltaY
			mapY += stepY
			side = SideY
		}
		wall = world.Get(mapX, mapY)
	}

	var perp float64
	if side == SideX {
		perp = (float64(mapX) - pos.X + float64(1-stepX)/2) / rayX
	} else {
		perp = (float64(mapY) - pos.Y + float64(1-stepY)/2) / rayY
	}
	perp = math.Max(math.Abs(perp), MinPerp)

	lineH := int(float64(h) / perp)
	y0 := clamp((h-lineH)/2, 0, h-1)
	y1 := clamp((h+lineH)/2, 0, h-1)

	var along float64
	if side == SideX {
		along = pos.Y + perp*rayY
	} else {
		along = pos.X + perp*rayX
	}

	// along - floor(along) rounds up to 1 for tiny negative values.
	u := along - math.Floor(along)
	if u >= 1 || math.IsNaN(u) {
		u = 0
	}

	return ColumnHit{
		X:    x,
		Y0:   y0,
		Y1:   y1,
		Wall: wall,
		Perp: perp,
		TexU: u,
		Side: side,
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
