package render

// shadeRunes go from nearest to farthest.
var shadeRunes = []rune{'█', '▓', '▒', '░'}

// shadeBands are the upper perpendicular distances of each shade rune.
var shadeBands = []float64{1.5, 3, 6, 12}

// ShadeRune picks a block character for a wall at distance perp. Y-side faces
// are drawn one band darker, and walls past the last band fade to a dot.
func ShadeRune(perp float64, side uint8) rune {
	band := len(shadeBands)
	for i, limit := range shadeBands {
		if perp < limit {
			band = i
			break
		}
	}
	if side == 1 {
		band++
	}
	if band >= len(shadeRunes) {
		return '.'
	}
	return shadeRunes[band]
}
