package level

import (
	"errors"
	"os"
	"path/filepath"

	"gridcaster/internal/core"
)

// DefaultSpawn is where the player enters a level when that cell is vacant.
var DefaultSpawn = core.Vec2{X: 2.5, Y: 2.5}

// SpawnPoint returns the centre of the cell the player should start in:
// DefaultSpawn if it is vacant, otherwise the first vacant cell in row-major
// order. A grid without any vacant cell yields DefaultSpawn.
func SpawnPoint(g *core.Grid) core.Vec2 {
	c := DefaultSpawn.Cell()
	if !g.IsSolid(c.X, c.Y) {
		return DefaultSpawn
	}
	size := g.Size()
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			if !g.IsSolid(x, y) {
				return core.Vec2{X: float64(x) + 0.5, Y: float64(y) + 0.5}
			}
		}
	}
	return DefaultSpawn
}

// Load opens a registered level by name, or a map file when nameOrPath is not
// registered but names an existing file.
func Load(nameOrPath string, cfg map[string]string) (*core.Grid, error) {
	g, err := Open(nameOrPath, cfg)
	if err == nil || !errors.Is(err, ErrUnknownLevel) {
		return g, err
	}
	if filepath.Ext(nameOrPath) != MapExt {
		return nil, err
	}
	if _, statErr := os.Stat(nameOrPath); statErr != nil {
		return nil, err
	}
	return core.LoadFile(nameOrPath)
}
