package core

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// OutOfBounds is the identifier Get reports outside the grid. Loaded grids
// never store it, so a ray that leaves the map always stops on it.
const OutOfBounds uint8 = 255

// GoalToken marks the goal cell in the map text format.
const GoalToken uint8 = 9

// Grid stores a level's cell identifiers in row-major order. 0 is vacant and
// any other value is a wall palette index. A Grid is read-only once built and
// may be shared between the motion resolver and the ray caster.
type Grid struct {
	w, h    int
	data    []uint8
	goal    Cell
	hasGoal bool
}

// NewGrid builds a grid from row-major cells. The slice is copied. Cells equal
// to OutOfBounds are stored as 0.
func NewGrid(w, h int, cells []uint8, goal *Cell) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("grid %dx%d: %w", w, h, ErrEmptyMap)
	}
	if len(cells) != w*h {
		return nil, fmt.Errorf("grid %dx%d has %d cells: %w", w, h, len(cells), ErrRowWidth)
	}
	g := &Grid{w: w, h: h, data: make([]uint8, len(cells))}
	for i, c := range cells {
		if c == OutOfBounds {
			c = 0
		}
		g.data[i] = c
	}
	if goal != nil {
		if _, ok := g.Index(goal.X, goal.Y); !ok {
			return nil, fmt.Errorf("goal (%d,%d) outside %dx%d grid", goal.X, goal.Y, w, h)
		}
		g.goal = *goal
		g.hasGoal = true
	}
	return g, nil
}

// Size returns the grid dimensions.
func (g *Grid) Size() Size { return Size{W: g.w, H: g.h} }

// Index returns the linear slice index for (x, y) and whether it is in bounds.
func (g *Grid) Index(x, y int) (int, bool) {
	if x < 0 || y < 0 || x >= g.w || y >= g.h {
		return 0, false
	}
	return y*g.w + x, true
}

// IsSolid reports whether (x, y) blocks movement. Everything outside the grid
// is solid.
func (g *Grid) IsSolid(x, y int) bool {
	i, ok := g.Index(x, y)
	if !ok {
		return true
	}
	return g.data[i] > 0
}

// Get returns the identifier at (x, y), or OutOfBounds.
func (g *Grid) Get(x, y int) uint8 {
	i, ok := g.Index(x, y)
	if !ok {
		return OutOfBounds
	}
	return g.data[i]
}

// Goal returns the goal cell, if the level has one.
func (g *Grid) Goal() (Cell, bool) { return g.goal, g.hasGoal }

// WriteTo encodes the grid in the map text format, one row per line, with the
// goal cell written as GoalToken.
func (g *Grid) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var n int64
	buf := make([]byte, 0, g.w*4)
	for y := 0; y < g.h; y++ {
		buf = buf[:0]
		for x := 0; x < g.w; x++ {
			if x > 0 {
				buf = append(buf, ' ')
			}
			v := g.data[y*g.w+x]
			if g.hasGoal && g.goal == (Cell{X: x, Y: y}) {
				v = GoalToken
			}
			buf = strconv.AppendUint(buf, uint64(v), 10)
		}
		buf = append(buf, '\n')
		m, err := bw.Write(buf)
		n += int64(m)
		if err != nil {
			return n, err
		}
	}
	return n, bw.Flush()
}
