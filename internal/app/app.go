//go:build ebiten

package app

import (
	"context"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"gridcaster/internal/audio"
	"gridcaster/internal/core"
	"gridcaster/internal/game"
	"gridcaster/internal/ui"
)

// Game adapts a game.Flow to the ebiten.Game interface.
type Game struct {
	cfg    *Config
	flow   *game.Flow
	sounds *audio.Player

	renderer *Renderer
	view     *ui.FrameView
	clock    *core.FrameClock

	pads     []ebiten.GamepadID
	lastX    int
	mouseSet bool
	err      error
}

// New constructs a Game for the provided flow.
func New(cfg *Config, flow *game.Flow, sounds *audio.Player) *Game {
	g := &Game{
		cfg:      cfg,
		flow:     flow,
		sounds:   sounds,
		renderer: NewRenderer(cfg.Width, cfg.Height, cfg.Workers),
		view:     ui.NewFrameView(),
		clock:    core.NewFrameClock(),
	}
	if s := flow.Session(); s != nil {
		g.enterLevel(s)
	}
	return g
}

// Update handles per-frame input and advances the running level.
func (g *Game) Update() error {
	if g.err != nil {
		return g.err
	}
	switch g.flow.Screen().(type) {
	case game.ScreenTitle:
		g.updateTitle()
	case game.ScreenGame:
		g.updateLevel()
	case game.ScreenVictory:
		g.updateVictory()
	}
	if g.flow.Done() {
		g.sounds.Close()
		return ebiten.Termination
	}
	return nil
}

func (g *Game) updateTitle() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyUp) || inpututil.IsKeyJustPressed(ebiten.KeyW) || g.padJustPressed(ebiten.StandardGamepadButtonLeftTop):
		g.flow.Up()
	case inpututil.IsKeyJustPressed(ebiten.KeyDown) || inpututil.IsKeyJustPressed(ebiten.KeyS) || g.padJustPressed(ebiten.StandardGamepadButtonLeftBottom):
		g.flow.Down()
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter) || g.padJustPressed(ebiten.StandardGamepadButtonRightBottom):
		if g.flow.Confirm() == nil {
			g.sounds.Select()
			if s := g.flow.Session(); s != nil {
				g.enterLevel(s)
			}
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape) || g.padJustPressed(ebiten.StandardGamepadButtonRightRight):
		g.flow.Back()
	}
}

func (g *Game) updateLevel() {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || g.padJustPressed(ebiten.StandardGamepadButtonCenterRight) {
		g.leaveLevel()
		g.flow.Back()
		return
	}

	dt := g.clock.Tick()
	in := game.Keys{
		Forward:     ebiten.IsKeyPressed(ebiten.KeyW),
		Back:        ebiten.IsKeyPressed(ebiten.KeyS),
		StrafeLeft:  ebiten.IsKeyPressed(ebiten.KeyA),
		StrafeRight: ebiten.IsKeyPressed(ebiten.KeyD),
		TurnLeft:    ebiten.IsKeyPressed(ebiten.KeyLeft),
		TurnRight:   ebiten.IsKeyPressed(ebiten.KeyRight),
	}.Intent(dt)
	if ebiten.IsKeyPressed(ebiten.KeyUp) {
		in.Forward++
	}
	if ebiten.IsKeyPressed(ebiten.KeyDown) {
		in.Forward--
	}
	if g.cfg.MouseLook {
		x, _ := ebiten.CursorPosition()
		if g.mouseSet {
			in = in.Add(game.MouseIntent(float64(x - g.lastX)))
		}
		g.lastX, g.mouseSet = x, true
	}
	g.pads = ebiten.AppendGamepadIDs(g.pads[:0])
	for _, id := range g.pads {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		in = in.Add(game.GamepadIntent(
			ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal),
			ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical),
			ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickHorizontal),
		))
	}

	ev := g.flow.Update(in)
	g.sounds.Handle(ev)
	if ev.Has(game.EventVictory) {
		g.leaveLevel()
	}
}

func (g *Game) updateVictory() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter) || g.padJustPressed(ebiten.StandardGamepadButtonRightBottom):
		g.flow.Confirm()
	case inpututil.IsKeyJustPressed(ebiten.KeyR) || g.padJustPressed(ebiten.StandardGamepadButtonRightLeft):
		if g.flow.Replay() == nil {
			g.enterLevel(g.flow.Session())
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape) || g.padJustPressed(ebiten.StandardGamepadButtonRightRight):
		g.flow.Back()
	}
}

func (g *Game) enterLevel(s *game.Session) {
	g.clock.Reset()
	g.mouseSet = false
	if g.cfg.MouseLook {
		ebiten.SetCursorMode(ebiten.CursorModeCaptured)
	}
	g.sounds.StartAmbience(s.Level)
}

func (g *Game) leaveLevel() {
	ebiten.SetCursorMode(ebiten.CursorModeVisible)
	g.sounds.StopAmbience()
}

func (g *Game) padJustPressed(b ebiten.StandardGamepadButton) bool {
	g.pads = ebiten.AppendGamepadIDs(g.pads[:0])
	for _, id := range g.pads {
		if inpututil.IsStandardGamepadButtonJustPressed(id, b) {
			return true
		}
	}
	return false
}

// Draw renders the current screen.
func (g *Game) Draw(screen *ebiten.Image) {
	switch s := g.flow.Screen().(type) {
	case game.ScreenTitle:
		ui.DrawLines(screen, ui.TitleLines(s))
	case game.ScreenGame:
		if err := g.renderer.Render(context.Background(), s.Session, g.clock.FPS()); err != nil {
			g.err = err
			return
		}
		g.view.Draw(screen, g.renderer.FB, g.cfg.Scale)
	case game.ScreenVictory:
		ui.DrawLines(screen, ui.VictoryLines(s))
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width * g.cfg.Scale, g.cfg.Height * g.cfg.Scale
}
