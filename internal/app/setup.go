// Package app wires configuration, levels, audio and rendering into the
// window front end.
package app

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"gridcaster/internal/core"
	"gridcaster/internal/game"
	"gridcaster/internal/level"
	"gridcaster/internal/raycast"
	"gridcaster/internal/render"
)

// NewFlow registers cfg.Maps, builds the level menu and, when cfg.Level is
// set, starts that level straight away.
func NewFlow(cfg *Config) (*game.Flow, error) {
	if cfg.Maps != "" {
		if _, err := level.Discover(cfg.Maps); err != nil {
			return nil, err
		}
	}
	params := cfg.LevelParams()
	flow := game.NewFlow(level.Names(), func(name string) (*core.Grid, error) {
		return level.Load(name, params)
	})
	if cfg.Level != "" {
		if err := flow.Start(cfg.Level); err != nil {
			return nil, err
		}
	}
	return flow, nil
}

// RedirectLog sends the standard logger to path; the returned Closer closes
// the file. An empty path discards log output.
func RedirectLog(path string) (io.Closer, error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return io.NopCloser(nil), nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	log.SetOutput(f)
	return f, nil
}

// Renderer casts and paints a session into a framebuffer.
type Renderer struct {
	FB      *render.Framebuffer
	Workers int

	hits []raycast.ColumnHit
}

// NewRenderer allocates a w*h framebuffer.
func NewRenderer(w, h, workers int) *Renderer {
	return &Renderer{FB: render.NewFramebuffer(w, h), Workers: workers}
}

// Render draws background, walls, minimap and fps for s.
func (r *Renderer) Render(ctx context.Context, s *game.Session, fps int) error {
	fb := r.FB
	p := render.PaletteFor(s.Level)
	if r.Workers > 0 {
		hits, err := raycast.CastFrameParallel(ctx, fb.W, fb.H, s.Pose, s.Grid, r.Workers)
		if err != nil {
			return err
		}
		r.hits = hits
	} else {
		r.hits = raycast.CastFrameInto(r.hits, fb.W, fb.H, s.Pose, s.Grid)
	}
	fb.FillBackground(p.Sky, p.Floor)
	fb.DrawColumns(r.hits, p)
	render.DrawMinimap(fb, s.Grid, s.Pose.Pos)
	render.DrawFPS(fb, fps)
	return nil
}
