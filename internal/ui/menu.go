//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"gridcaster/internal/render"
)

const lineHeight = 18

var (
	menuBackground = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	menuText       = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	menuHighlight  = color.RGBA{R: 255, G: 220, B: 90, A: 255}
	menuError      = color.RGBA{R: 230, G: 80, B: 80, A: 255}
)

// DrawLines fills screen and prints lines centred on it.
func DrawLines(screen *ebiten.Image, lines []Line) {
	screen.Fill(menuBackground)
	face := basicfont.Face7x13
	b := screen.Bounds()
	y := (b.Dy()-len(lines)*lineHeight)/2 + lineHeight
	for _, l := range lines {
		if l.Text != "" {
			col := menuText
			switch {
			case l.Error:
				col = menuError
			case l.Highlight:
				col = menuHighlight
			}
			bounds := text.BoundString(face, l.Text)
			x := (b.Dx() - bounds.Dx()) / 2
			text.Draw(screen, l.Text, face, x, y, col)
		}
		y += lineHeight
	}
}

// FrameView uploads a framebuffer to an ebiten image.
type FrameView struct {
	img *ebiten.Image
}

// NewFrameView returns an empty view; the image is sized on first Draw.
func NewFrameView() *FrameView { return &FrameView{} }

// Draw copies fb to the GPU and draws it onto screen scaled by scale.
func (v *FrameView) Draw(screen *ebiten.Image, fb *render.Framebuffer, scale int) {
	if fb.W == 0 || fb.H == 0 {
		return
	}
	if v.img == nil || v.img.Bounds().Dx() != fb.W || v.img.Bounds().Dy() != fb.H {
		v.img = ebiten.NewImage(fb.W, fb.H)
	}
	v.img.WritePixels(fb.Pix)
	if scale <= 0 {
		scale = 1
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	screen.DrawImage(v.img, op)
}
