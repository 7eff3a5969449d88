//go:build !ebiten

package ui

import "gridcaster/internal/render"

// DrawLines is a no-op in headless builds.
func DrawLines(any, []Line) {}

// FrameView is a no-op placeholder for headless builds.
type FrameView struct{}

// NewFrameView constructs a stub view.
func NewFrameView() *FrameView { return &FrameView{} }

// Draw is a no-op in headless builds.
func (v *FrameView) Draw(any, *render.Framebuffer, int) {}
