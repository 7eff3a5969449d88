package level

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"gridcaster/internal/core"
)

var builtinNames = []string{"banana_land", "cave", "deep_jungle", "maze", "monkey_temple", "taylors_special", "the_cave"}

func TestBuiltinLevelsRegistered(t *testing.T) {
	names := Names()
	for _, want := range builtinNames {
		if !slices.Contains(names, want) {
			t.Fatalf("level %q missing from %v", want, names)
		}
	}
	if !slices.IsSorted(names) {
		t.Fatalf("Names not sorted: %v", names)
	}
}

func TestBuiltinLevelsArePlayable(t *testing.T) {
	for _, name := range builtinNames {
		t.Run(name, func(t *testing.T) {
			g, err := Open(name, map[string]string{"seed": "7"})
			if err != nil {
				t.Fatalf("Open: %v", err)
			}
			goal, ok := g.Goal()
			if !ok {
				t.Fatal("level has no goal")
			}
			spawn := SpawnPoint(g)
			start := spawn.Cell()
			if g.IsSolid(start.X, start.Y) {
				t.Fatalf("spawn %+v is inside a wall", spawn)
			}
			if !reachable(g, start, goal) {
				t.Fatalf("goal %+v unreachable from %+v", goal, start)
			}
			size := g.Size()
			for x := 0; x < size.W; x++ {
				if !g.IsSolid(x, 0) || !g.IsSolid(x, size.H-1) {
					t.Fatalf("open border at column %d", x)
				}
			}
			for y := 0; y < size.H; y++ {
				if !g.IsSolid(0, y) || !g.IsSolid(size.W-1, y) {
					t.Fatalf("open border at row %d", y)
				}
			}
		})
	}
}

func reachable(g *core.Grid, from, to core.Cell) bool {
	seen := map[core.Cell]bool{from: true}
	queue := []core.Cell{from}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		if c == to {
			return true
		}
		for _, d := range []core.Cell{{X: 1}, {X: -1}, {Y: 1}, {Y: -1}} {
			n := core.Cell{X: c.X + d.X, Y: c.Y + d.Y}
			if seen[n] || g.IsSolid(n.X, n.Y) {
				continue
			}
			seen[n] = true
			queue = append(queue, n)
		}
	}
	return false
}

func TestOpenUnknown(t *testing.T) {
	if _, err := Open("no-such-level", nil); !errors.Is(err, ErrUnknownLevel) {
		t.Fatalf("err = %v, want ErrUnknownLevel", err)
	}
}

func TestDiscoverAndLoad(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) string {
		p := filepath.Join(dir, name)
		if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
		return p
	}
	write("corridor.map", "1 1 1 1\n1 0 9 1\n1 1 1 1\n")
	write("broken.map", "1 1 1\n1 0\n")
	write("notes.txt", "ignored")

	names, err := Discover(dir)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	slices.Sort(names)
	if !slices.Equal(names, []string{"broken", "corridor"}) {
		t.Fatalf("discovered %v", names)
	}

	g, err := Open("corridor", nil)
	if err != nil {
		t.Fatalf("Open corridor: %v", err)
	}
	if goal, _ := g.Goal(); goal != (core.Cell{X: 2, Y: 1}) {
		t.Fatalf("goal = %+v", goal)
	}
	if _, err := Open("broken", nil); !errors.Is(err, core.ErrRowWidth) {
		t.Fatalf("broken level err = %v, want ErrRowWidth", err)
	}

	if _, err := Discover(filepath.Join(dir, "missing")); err == nil {
		t.Fatal("Discover on a missing directory should fail")
	}
}

func TestLoadByPath(t *testing.T) {
	p := filepath.Join(t.TempDir(), "adhoc.map")
	if err := os.WriteFile(p, []byte("1 1 1\n1 0 1\n1 1 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	g, err := Load(p, nil)
	if err != nil {
		t.Fatalf("Load(path): %v", err)
	}
	if g.Size() != (core.Size{W: 3, H: 3}) {
		t.Fatalf("size = %+v", g.Size())
	}
	if _, err := Load("the_cave", nil); err != nil {
		t.Fatalf("Load(name): %v", err)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "nope.map"), nil); !errors.Is(err, ErrUnknownLevel) {
		t.Fatalf("missing path err = %v", err)
	}
}

func TestSpawnPointFallback(t *testing.T) {
	g, err := core.NewGrid(4, 3, []uint8{
		1, 1, 1, 1,
		1, 1, 0, 1,
		1, 1, 1, 1,
	}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got := SpawnPoint(g); got != (core.Vec2{X: 2.5, Y: 1.5}) {
		t.Fatalf("spawn = %+v, want first vacant cell centre", got)
	}
}

func TestMazeDeterministic(t *testing.T) {
	cfg := MazeConfig{Width: 15, Height: 11, Braiding: 0.5, Seed: 42}
	a, err := GenerateMaze(cfg)
	if err != nil {
		t.Fatal(err)
	}
	b, _ := GenerateMaze(cfg)
	cfg.Seed = 43
	c, _ := GenerateMaze(cfg)

	if a.Size() != (core.Size{W: 15, H: 11}) {
		t.Fatalf("size = %+v", a.Size())
	}
	same, differs := true, false
	for y := 0; y < 11; y++ {
		for x := 0; x < 15; x++ {
			if a.Get(x, y) != b.Get(x, y) {
				same = false
			}
			if a.IsSolid(x, y) != c.IsSolid(x, y) {
				differs = true
			}
		}
	}
	if !same {
		t.Fatal("same seed produced different mazes")
	}
	if !differs {
		t.Fatal("different seeds produced identical layouts")
	}
}

func TestMazeRoundsToOdd(t *testing.T) {
	g, err := GenerateMaze(MazeConfig{Width: 10, Height: 2, Seed: 1})
	if err != nil {
		t.Fatal(err)
	}
	if got := g.Size(); got != (core.Size{W: 9, H: 5}) {
		t.Fatalf("size = %+v, want 9x5", got)
	}
	goal, _ := g.Goal()
	if !reachable(g, core.Cell{X: 1, Y: 1}, goal) {
		t.Fatal("perfect maze must connect start and goal")
	}
}

func TestMazeFromMap(t *testing.T) {
	c := MazeFromMap(map[string]string{"w": "31", "h": "bad", "braid": "0.75", "seed": "9"})
	if c.Width != 31 || c.Height != DefaultMazeConfig().Height || c.Braiding != 0.75 || c.Seed != 9 {
		t.Fatalf("config = %+v", c)
	}
	if c := MazeFromMap(map[string]string{"braid": "2"}); c.Braiding != DefaultMazeConfig().Braiding {
		t.Fatalf("out-of-range braid accepted: %+v", c)
	}
}

func TestCaveStepClosesEdges(t *testing.T) {
	cave := NewCave(5, 5)
	w := cave.Size().W
	cave.Cells()[2*w+2] = 1

	cave.Step()
	cells := cave.Cells()

	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			rock := cells[y*w+x] == 1
			corner := (x == 0 || x == 4) && (y == 0 || y == 4)
			if rock != corner {
				t.Fatalf("cell (%d,%d) rock=%v, expected %v", x, y, rock, corner)
			}
		}
	}
}

func TestCaveSingleRegion(t *testing.T) {
	g, err := GenerateCave(CaveConfig{Width: 40, Height: 30, Fill: 0.45, Steps: 4, Seed: 5})
	if err != nil {
		t.Fatal(err)
	}
	start := SpawnPoint(g).Cell()
	size := g.Size()
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			if g.IsSolid(x, y) {
				continue
			}
			if !reachable(g, start, core.Cell{X: x, Y: y}) {
				t.Fatalf("open cell (%d,%d) cut off from the spawn", x, y)
			}
		}
	}
	goal, ok := g.Goal()
	if !ok || goal == start {
		t.Fatalf("goal = %+v (ok=%v), spawn %+v", goal, ok, start)
	}
}

func TestCaveAllRock(t *testing.T) {
	if _, err := GenerateCave(CaveConfig{Width: 8, Height: 8, Fill: 0.99, Steps: 2, Seed: 3}); !errors.Is(err, ErrNoCave) {
		t.Fatalf("err = %v, want ErrNoCave", err)
	}
}

func TestCaveFromMap(t *testing.T) {
	c := CaveFromMap(map[string]string{"w": "50", "fill": "0.3", "steps": "6", "seed": "-2"})
	if c.Width != 50 || c.Height != DefaultCaveConfig().Height || c.Fill != 0.3 || c.Steps != 6 || c.Seed != -2 {
		t.Fatalf("config = %+v", c)
	}
}
