package level

import (
	"strconv"
	"time"

	"gridcaster/internal/core"
	"gridcaster/pkg/rng"
)

// MazeConfig controls the procedural maze level.
type MazeConfig struct {
	Width  int
	Height int

	// Braiding is the chance in [0, 1] that a dead end is opened into a loop.
	// 0 gives a perfect maze with a single route to the goal.
	Braiding float64

	// Seed 0 picks a time-based seed.
	Seed int64
}

// DefaultMazeConfig returns the standard maze settings.
func DefaultMazeConfig() MazeConfig {
	return MazeConfig{Width: 21, Height: 21, Braiding: 0.2}
}

// MazeFromMap populates the config from a string map (flag-style key/value pairs).
func MazeFromMap(cfg map[string]string) MazeConfig {
	c := DefaultMazeConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["braid"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Braiding = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	return c
}

const minMazeSide = 5

var mazeDirs = [4]core.Cell{{X: 0, Y: -2}, {X: 2, Y: 0}, {X: 0, Y: 2}, {X: -2, Y: 0}}

// GenerateMaze carves a maze with a recursive backtracker. Sizes are rounded
// down to odd numbers so the maze keeps a solid border. The player starts in
// the top-left passage and the goal sits in the bottom-right one.
func GenerateMaze(cfg MazeConfig) (*core.Grid, error) {
	w := ensureOdd(max(cfg.Width, minMazeSide))
	h := ensureOdd(max(cfg.Height, minMazeSide))

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	r := rng.New(seed)

	// true = wall until carved
	wall := make([]bool, w*h)
	for i := range wall {
		wall[i] = true
	}
	at := func(c core.Cell) int { return c.Y*w + c.X }
	inner := func(c core.Cell) bool { return c.X > 0 && c.Y > 0 && c.X < w-1 && c.Y < h-1 }

	start := core.Cell{X: 1, Y: 1}
	wall[at(start)] = false
	stack := []core.Cell{start}
	order := [4]int{0, 1, 2, 3}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		r.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })
		moved := false
		for _, d := range order {
			next := core.Cell{X: cur.X + mazeDirs[d].X, Y: cur.Y + mazeDirs[d].Y}
			if !inner(next) || !wall[at(next)] {
				continue
			}
			between := core.Cell{X: cur.X + mazeDirs[d].X/2, Y: cur.Y + mazeDirs[d].Y/2}
			wall[at(between)] = false
			wall[at(next)] = false
			stack = append(stack, next)
			moved = true
			break
		}
		if !moved {
			stack = stack[:len(stack)-1]
		}
	}

	if cfg.Braiding > 0 {
		braid(wall, w, h, cfg.Braiding, r)
	}

	cells := make([]uint8, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if wall[y*w+x] {
				cells[y*w+x] = mazeWallID(x, y)
			}
		}
	}
	goal := core.Cell{X: w - 2, Y: h - 2}
	return core.NewGrid(w, h, cells, &goal)
}

// braid opens dead ends into neighbouring corridors with the given chance.
func braid(wall []bool, w, h int, chance float64, r *rng.RNG) {
	for y := 1; y < h-1; y += 2 {
		for x := 1; x < w-1; x += 2 {
			var closed []core.Cell
			for _, d := range mazeDirs {
				between := core.Cell{X: x + d.X/2, Y: y + d.Y/2}
				if wall[between.Y*w+between.X] {
					closed = append(closed, between)
				}
			}
			if len(closed) != 3 || r.Float64() >= chance {
				continue
			}
			// Only knock through to cells that stay inside the border.
			var options []core.Cell
			for _, b := range closed {
				if b.X > 0 && b.Y > 0 && b.X < w-1 && b.Y < h-1 {
					options = append(options, b)
				}
			}
			if len(options) == 0 {
				continue
			}
			b := options[r.IntN(len(options))]
			wall[b.Y*w+b.X] = false
		}
	}
}

// mazeWallID varies wall colours in bands so corridors are easier to tell apart.
func mazeWallID(x, y int) uint8 {
	return uint8((x/4+y/4)%3) + 1
}

func ensureOdd(n int) int {
	if n%2 == 0 {
		return n - 1
	}
	return n
}
