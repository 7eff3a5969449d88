package render

import (
	"image/color"
	"strings"
	"testing"

	"gridcaster/internal/core"
	"gridcaster/internal/motion"
	"gridcaster/internal/raycast"
)

func TestPaletteFor(t *testing.T) {
	p := PaletteFor("levels/the_cave.map")
	if p.Sky != rgb(60, 60, 60) {
		t.Fatalf("cave sky = %v", p.Sky)
	}
	if got := PaletteFor("banana_land").Wall(2, raycast.SideX); got != rgb(44, 168, 7) {
		t.Fatalf("banana wall 2 = %v", got)
	}
	if got := PaletteFor("somewhere").Sky; got != rgb(135, 206, 235) {
		t.Fatalf("default sky = %v", got)
	}
}

func TestWallShading(t *testing.T) {
	p := PaletteFor("monkey_temple")
	if got := p.Wall(3, raycast.SideY); got != rgb(50, 71, 78) {
		t.Fatalf("y-side wall = %v", got)
	}
	if got := p.Wall(42, raycast.SideX); got != DefaultWall {
		t.Fatalf("unknown id = %v, want DefaultWall", got)
	}
}

func TestFillBackground(t *testing.T) {
	fb := NewFramebuffer(3, 5)
	sky, floor := rgb(1, 2, 3), rgb(4, 5, 6)
	fb.FillBackground(sky, floor)
	for y := 0; y < 5; y++ {
		want := floor
		if y < 2 {
			want = sky
		}
		for x := 0; x < 3; x++ {
			if got := fb.At(x, y); got != want {
				t.Fatalf("(%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestDrawColumnsFromCast(t *testing.T) {
	g, err := core.Load(strings.NewReader("1 1 1\n1 0 1\n1 1 1"))
	if err != nil {
		t.Fatal(err)
	}
	const w, h = 10, 8
	pose := motion.NewPose(1.5, 1.5)
	hits := raycast.CastFrame(w, h, pose, g)

	fb := NewFramebuffer(w, h)
	p := PaletteFor("the_cave")
	fb.FillBackground(p.Sky, p.Floor)
	fb.DrawColumns(hits, p)

	mid := hits[w/2]
	want := p.Wall(mid.Wall, mid.Side)
	for y := mid.Y0; y <= mid.Y1; y++ {
		if got := fb.At(mid.X, y); got != want {
			t.Fatalf("column %d row %d = %v, want %v", mid.X, y, got, want)
		}
	}
}

func TestDrawColumnsIgnoresOutOfRange(t *testing.T) {
	fb := NewFramebuffer(2, 2)
	fb.DrawColumns([]raycast.ColumnHit{{X: 5, Y0: 0, Y1: 1, Wall: 1}, {X: 1, Y0: -3, Y1: 9, Wall: 1}}, Palette{})
	if fb.At(1, 0) != DefaultWall || fb.At(1, 1) != DefaultWall {
		t.Fatal("clamped column not drawn")
	}
	if fb.At(0, 0) != (color.RGBA{}) {
		t.Fatal("untouched column changed")
	}
}

func TestDrawMinimap(t *testing.T) {
	g, err := core.Load(strings.NewReader("1 1 1\n1 0 1\n1 1 1"))
	if err != nil {
		t.Fatal(err)
	}
	fb := NewFramebuffer(40, 30)
	DrawMinimap(fb, g, core.Vec2{X: 1.5, Y: 1.5})

	offX := 40 - (3*MinimapCell + MinimapMargin)
	if got := fb.At(offX, MinimapMargin); got != minimapWall {
		t.Fatalf("wall pixel = %v", got)
	}
	player := fb.At(offX+MinimapCell, MinimapMargin+MinimapCell)
	if player != minimapPlayer {
		t.Fatalf("player pixel = %v", player)
	}
	if got := fb.At(offX+MinimapCell+1, MinimapMargin+MinimapCell+1); got != minimapVacant {
		t.Fatalf("vacant pixel = %v", got)
	}
	if got := fb.At(offX-1, MinimapMargin); got != (color.RGBA{}) {
		t.Fatalf("pixel left of the minimap = %v", got)
	}
}

func TestDrawFPS(t *testing.T) {
	fb := NewFramebuffer(32, 16)
	DrawFPS(fb, 17)
	// "1": top row is 0 1 0.
	if fb.At(8, 8) != (color.RGBA{}) || fb.At(9, 8) != fpsColor {
		t.Fatal("digit 1 drawn wrong")
	}
	// "7": top row is solid, starting four pixels right.
	for x := 12; x < 15; x++ {
		if fb.At(x, 8) != fpsColor {
			t.Fatalf("digit 7 missing pixel at x=%d", x)
		}
	}
	if fb.At(15, 8) != (color.RGBA{}) {
		t.Fatal("gap between digits painted")
	}
}

func TestShadeRune(t *testing.T) {
	cases := []struct {
		perp float64
		side uint8
		want rune
	}{
		{0.5, raycast.SideX, '█'},
		{0.5, raycast.SideY, '▓'},
		{5, raycast.SideX, '▒'},
		{11, raycast.SideY, '.'},
		{100, raycast.SideX, '.'},
	}
	for _, c := range cases {
		if got := ShadeRune(c.perp, c.side); got != c.want {
			t.Fatalf("ShadeRune(%v, %d) = %q, want %q", c.perp, c.side, got, c.want)
		}
	}
}

func TestResizeReusesStorage(t *testing.T) {
	fb := NewFramebuffer(8, 8)
	before := &fb.Pix[0]
	fb.Resize(4, 4)
	if len(fb.Pix) != 64 || &fb.Pix[0] != before {
		t.Fatal("shrinking should reuse the buffer")
	}
	if img := fb.Image(); img.Bounds().Dx() != 4 || img.Stride != 16 {
		t.Fatalf("image bounds %v stride %d", img.Bounds(), img.Stride)
	}
}
