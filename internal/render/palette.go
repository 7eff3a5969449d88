package render

import (
	"image/color"
	"strings"
)

// DefaultWall colours wall identifiers a palette does not list.
var DefaultWall = color.RGBA{R: 100, G: 100, B: 100, A: 255}

// Palette holds the colours of one level.
type Palette struct {
	Sky   color.RGBA
	Floor color.RGBA
	Walls map[uint8]color.RGBA
}

// Wall returns the colour for wall id, halved when the hit was on a
// y-side face.
func (p Palette) Wall(id, side uint8) color.RGBA {
	c, ok := p.Walls[id]
	if !ok {
		c = DefaultWall
	}
	if side == 1 {
		c.R, c.G, c.B = c.R/2, c.G/2, c.B/2
	}
	return c
}

func rgb(r, g, b uint8) color.RGBA { return color.RGBA{R: r, G: g, B: b, A: 255} }

type namedPalette struct {
	match   string
	palette Palette
}

var palettes = []namedPalette{
	{"banana_land", Palette{
		Sky: rgb(121, 201, 104), Floor: rgb(3, 134, 173),
		Walls: map[uint8]color.RGBA{1: rgb(0, 200, 214), 2: rgb(44, 168, 7), 3: rgb(34, 155, 163)},
	}},
	{"the_cave", Palette{
		Sky: rgb(60, 60, 60), Floor: rgb(60, 60, 60),
		Walls: map[uint8]color.RGBA{1: rgb(87, 87, 87), 2: rgb(74, 74, 74), 3: rgb(68, 68, 68)},
	}},
	{"taylors_special", Palette{
		Sky: rgb(255, 240, 153), Floor: rgb(89, 18, 102),
		Walls: map[uint8]color.RGBA{1: rgb(194, 126, 207), 2: rgb(207, 126, 162), 3: rgb(158, 85, 151)},
	}},
	{"deep_jungle", Palette{
		Sky: rgb(64, 11, 11), Floor: rgb(18, 54, 21),
		Walls: map[uint8]color.RGBA{1: rgb(12, 102, 27), 2: rgb(16, 38, 54), 3: rgb(82, 82, 82)},
	}},
	{"monkey_temple", Palette{
		Sky: rgb(189, 146, 77), Floor: rgb(82, 182, 82),
		Walls: map[uint8]color.RGBA{1: rgb(110, 110, 110), 2: rgb(78, 110, 109), 3: rgb(101, 142, 156)},
	}},
}

var defaultPalette = Palette{
	Sky: rgb(135, 206, 235), Floor: rgb(68, 68, 68),
	Walls: map[uint8]color.RGBA{1: rgb(170, 170, 170), 2: rgb(136, 136, 136), 3: rgb(102, 102, 102)},
}

// PaletteFor picks the palette whose key occurs in name, so file paths such
// as "levels/the_cave.map" match too. Unknown names get a grey default.
func PaletteFor(name string) Palette {
	for _, p := range palettes {
		if strings.Contains(name, p.match) {
			return p.palette
		}
	}
	return defaultPalette
}
