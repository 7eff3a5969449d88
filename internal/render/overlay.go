package render

import (
	"image/color"
	"strconv"

	"gridcaster/internal/core"
)

// Minimap and FPS layout in pixels.
const (
	MinimapCell   = 4
	MinimapMargin = 8
	fpsX, fpsY    = 8, 8
)

var (
	minimapWall   = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	minimapVacant = color.RGBA{R: 0x22, G: 0x22, B: 0x22, A: 255}
	minimapPlayer = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	fpsColor      = color.RGBA{R: 255, G: 255, B: 238, A: 255}
)

// DrawMinimap draws the grid in the top-right corner, one MinimapCell square
// per cell, with a single pixel at the top-left of the player's cell.
func DrawMinimap(fb *Framebuffer, g *core.Grid, pos core.Vec2) {
	size := g.Size()
	offX := max(fb.W-(size.W*MinimapCell+MinimapMargin), 0)
	offY := MinimapMargin
	for my := 0; my < size.H; my++ {
		for mx := 0; mx < size.W; mx++ {
			c := minimapVacant
			if g.IsSolid(mx, my) {
				c = minimapWall
			}
			for dy := 0; dy < MinimapCell; dy++ {
				for dx := 0; dx < MinimapCell; dx++ {
					fb.Set(offX+mx*MinimapCell+dx, offY+my*MinimapCell+dy, c)
				}
			}
		}
	}
	cell := pos.Cell()
	fb.Set(offX+cell.X*MinimapCell, offY+cell.Y*MinimapCell, minimapPlayer)
}

// 3x5 digit glyphs, row-major.
var digits = [10][15]uint8{
	{1, 1, 1, 1, 0, 1, 1, 0, 1, 1, 0, 1, 1, 1, 1},
	{0, 1, 0, 1, 1, 0, 0, 1, 0, 0, 1, 0, 1, 1, 1},
	{1, 1, 1, 0, 0, 1, 1, 1, 1, 1, 0, 0, 1, 1, 1},
	{1, 1, 1, 0, 0, 1, 0, 1, 1, 0, 0, 1, 1, 1, 1},
	{1, 0, 1, 1, 0, 1, 1, 1, 1, 0, 0, 1, 0, 0, 1},
	{1, 1, 1, 1, 0, 0, 1, 1, 1, 0, 0, 1, 1, 1, 1},
	{1, 1, 1, 1, 0, 0, 1, 1, 1, 1, 0, 1, 1, 1, 1},
	{1, 1, 1, 0, 0, 1, 0, 0, 1, 0, 0, 1, 0, 0, 1},
	{1, 1, 1, 1, 0, 1, 1, 1, 1, 1, 0, 1, 1, 1, 1},
	{1, 1, 1, 1, 0, 1, 1, 1, 1, 0, 0, 1, 1, 1, 1},
}

// DrawFPS prints fps in the top-left corner with a 3x5 pixel font.
func DrawFPS(fb *Framebuffer, fps int) {
	x := fpsX
	for _, ch := range strconv.Itoa(max(fps, 0)) {
		glyph := digits[ch-'0']
		for py := 0; py < 5; py++ {
			for px := 0; px < 3; px++ {
				if glyph[py*3+px] == 1 {
					fb.Set(x+px, fpsY+py, fpsColor)
				}
			}
		}
		x += 4
	}
}
