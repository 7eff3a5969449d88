// Package render paints raycast frames into an RGBA pixel buffer. Nothing
// here touches a window, so both front ends share it.
package render

import (
	"image"
	"image/color"

	"gridcaster/internal/raycast"
)

// Framebuffer is a W*H RGBA pixel buffer, row-major, four bytes per pixel.
type Framebuffer struct {
	W, H int
	Pix  []byte
}

// NewFramebuffer allocates a cleared buffer of w*h pixels.
func NewFramebuffer(w, h int) *Framebuffer {
	fb := &Framebuffer{}
	fb.Resize(w, h)
	return fb
}

// Resize changes the buffer dimensions, reusing storage when it is large
// enough. Pixel contents are undefined afterwards.
func (fb *Framebuffer) Resize(w, h int) {
	w, h = max(w, 0), max(h, 0)
	n := 4 * w * h
	if cap(fb.Pix) < n {
		fb.Pix = make([]byte, n)
	}
	fb.Pix = fb.Pix[:n]
	fb.W, fb.H = w, h
}

// Set writes c at (x, y). Coordinates outside the buffer are ignored.
func (fb *Framebuffer) Set(x, y int, c color.RGBA) {
	if x < 0 || y < 0 || x >= fb.W || y >= fb.H {
		return
	}
	base := (y*fb.W + x) * 4
	fb.Pix[base+0] = c.R
	fb.Pix[base+1] = c.G
	fb.Pix[base+2] = c.B
	fb.Pix[base+3] = c.A
}

// At returns the pixel at (x, y), or transparent black outside the buffer.
func (fb *Framebuffer) At(x, y int) color.RGBA {
	if x < 0 || y < 0 || x >= fb.W || y >= fb.H {
		return color.RGBA{}
	}
	base := (y*fb.W + x) * 4
	p := fb.Pix[base : base+4 : base+4]
	return color.RGBA{R: p[0], G: p[1], B: p[2], A: p[3]}
}

// Image wraps the buffer without copying.
func (fb *Framebuffer) Image() *image.RGBA {
	return &image.RGBA{Pix: fb.Pix, Stride: 4 * fb.W, Rect: image.Rect(0, 0, fb.W, fb.H)}
}

// FillBackground paints the top half of the buffer with sky and the bottom
// half with floor.
func (fb *Framebuffer) FillBackground(sky, floor color.RGBA) {
	for y := 0; y < fb.H; y++ {
		c := floor
		if y < fb.H/2 {
			c = sky
		}
		fillRow(fb.Pix[y*fb.W*4:(y+1)*fb.W*4], c)
	}
}

// DrawColumns paints each hit's span Y0..Y1 inclusive in the palette's wall
// colour. Hits outside the buffer are skipped.
func (fb *Framebuffer) DrawColumns(hits []raycast.ColumnHit, p Palette) {
	for _, h := range hits {
		if h.X < 0 || h.X >= fb.W {
			continue
		}
		c := p.Wall(h.Wall, h.Side)
		y0, y1 := max(h.Y0, 0), min(h.Y1, fb.H-1)
		for y := y0; y <= y1; y++ {
			base := (y*fb.W + h.X) * 4
			fb.Pix[base+0] = c.R
			fb.Pix[base+1] = c.G
			fb.Pix[base+2] = c.B
			fb.Pix[base+3] = c.A
		}
	}
}

func fillRow(row []byte, c color.RGBA) {
	for base := 0; base+3 < len(row); base += 4 {
		row[base+0] = c.R
		row[base+1] = c.G
		row[base+2] = c.B
		row[base+3] = c.A
	}
}
