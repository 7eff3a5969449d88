package level

import (
	"errors"
	"strconv"
	"time"

	"gridcaster/internal/core"
	"gridcaster/pkg/rng"
)

// ErrNoCave reports a cave that smoothed away to solid rock.
var ErrNoCave = errors.New("cave has no open space")

// CaveConfig controls the cellular-automaton cave level.
type CaveConfig struct {
	Width  int
	Height int
	Fill   float64 // initial chance of rock per cell
	Steps  int     // smoothing generations
	Seed   int64   // 0 picks a time-based seed
}

// DefaultCaveConfig returns the standard cave settings.
func DefaultCaveConfig() CaveConfig {
	return CaveConfig{Width: 32, Height: 24, Fill: 0.45, Steps: 4}
}

// CaveFromMap populates the config from a string map (flag-style key/value pairs).
func CaveFromMap(cfg map[string]string) CaveConfig {
	c := DefaultCaveConfig()
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
	if v, ok := cfg["fill"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed < 1 {
			c.Fill = parsed
		}
	}
	if v, ok := cfg["steps"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Steps = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	return c
}

// Cave is a rock/open automaton. Cells outside the board count as rock, so
// caves close up at the edges instead of wrapping.
type Cave struct {
	w, h int
	cur  []uint8
	nxt  []uint8
}

// NewCave returns an all-open cave of w*h cells.
func NewCave(w, h int) *Cave {
	cells := make([]uint8, w*h)
	return &Cave{w: w, h: h, cur: cells, nxt: make([]uint8, len(cells))}
}

// Size returns the board dimensions.
func (c *Cave) Size() core.Size { return core.Size{W: c.w, H: c.h} }

// Cells exposes the current board, 1 for rock.
func (c *Cave) Cells() []uint8 { return c.cur }

// Reset scatters rock with the given chance per cell.
func (c *Cave) Reset(seed int64, fill float64) {
	r := rng.New(seed)
	for i := range c.cur {
		c.cur[i] = 0
		if r.Float64() < fill {
			c.cur[i] = 1
		}
	}
}

// Step advances one smoothing generation: a cell becomes rock when five or
// more of its eight neighbours are rock and opens when three or fewer are.
func (c *Cave) Step() {
	w, h := c.w, c.h
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			rock := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					nx, ny := x+dx, y+dy
					if nx < 0 || ny < 0 || nx >= w || ny >= h {
						rock++
						continue
					}
					rock += int(c.cur[ny*w+nx])
				}
			}
			idx := y*w + x
			switch {
			case rock >= 5:
				c.nxt[idx] = 1
			case rock <= 3:
				c.nxt[idx] = 0
			default:
				c.nxt[idx] = c.cur[idx]
			}
		}
	}
	c.cur, c.nxt = c.nxt, c.cur
}

// GenerateCave grows a cave, seals its border, keeps only the largest open
// region and places the goal at the open cell farthest from the spawn.
func GenerateCave(cfg CaveConfig) (*core.Grid, error) {
	w, h := max(cfg.Width, minMazeSide), max(cfg.Height, minMazeSide)
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	cave := NewCave(w, h)
	cave.Reset(seed, cfg.Fill)
	for i := 0; i < cfg.Steps; i++ {
		cave.Step()
	}

	cells := make([]uint8, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := y*w + x
			if x == 0 || y == 0 || x == w-1 || y == h-1 || cave.cur[i] == 1 {
				cells[i] = caveWallID(x, y, seed)
			}
		}
	}

	region := largestRegion(cells, w, h)
	if len(region) == 0 {
		return nil, ErrNoCave
	}
	keep := make(map[core.Cell]bool, len(region))
	for _, c := range region {
		keep[c] = true
	}
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			if cells[y*w+x] == 0 && !keep[core.Cell{X: x, Y: y}] {
				cells[y*w+x] = caveWallID(x, y, seed)
			}
		}
	}

	g, err := core.NewGrid(w, h, cells, nil)
	if err != nil {
		return nil, err
	}
	start := SpawnPoint(g).Cell()
	goal := farthest(cells, w, h, start)
	return core.NewGrid(w, h, cells, &goal)
}

func caveWallID(x, y int, seed int64) uint8 {
	v := uint64(x)*0x9E3779B1 ^ uint64(y)*0x85EBCA77 ^ uint64(seed)
	v ^= v >> 15
	return uint8(v%3) + 1
}

var caveDirs = [4]core.Cell{{X: 1}, {X: -1}, {Y: 1}, {Y: -1}}

// floodFrom returns the open cells reachable from start and their BFS
// distances, in visiting order.
func floodFrom(cells []uint8, w, h int, start core.Cell, seen []bool) ([]core.Cell, []int) {
	seen[start.Y*w+start.X] = true
	order := []core.Cell{start}
	dist := []int{0}
	for i := 0; i < len(order); i++ {
		c := order[i]
		for _, d := range caveDirs {
			n := core.Cell{X: c.X + d.X, Y: c.Y + d.Y}
			if n.X < 0 || n.Y < 0 || n.X >= w || n.Y >= h {
				continue
			}
			j := n.Y*w + n.X
			if seen[j] || cells[j] != 0 {
				continue
			}
			seen[j] = true
			order = append(order, n)
			dist = append(dist, dist[i]+1)
		}
	}
	return order, dist
}

func largestRegion(cells []uint8, w, h int) []core.Cell {
	seen := make([]bool, len(cells))
	var best []core.Cell
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := y*w + x
			if seen[i] || cells[i] != 0 {
				continue
			}
			region, _ := floodFrom(cells, w, h, core.Cell{X: x, Y: y}, seen)
			if len(region) > len(best) {
				best = region
			}
		}
	}
	return best
}

func farthest(cells []uint8, w, h int, start core.Cell) core.Cell {
	order, dist := floodFrom(cells, w, h, start, make([]bool, len(cells)))
	best := 0
	for i := range order {
		if dist[i] > dist[best] {
			best = i
		}
	}
	return order[best]
}
