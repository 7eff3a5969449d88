// Package tui is the terminal front end: each text column is one ray, walls
// are drawn as shaded block characters.
package tui

import (
	"context"
	"fmt"
	"image/color"
	"time"

	"github.com/gdamore/tcell/v2"

	"gridcaster/internal/core"
	"gridcaster/internal/game"
	"gridcaster/internal/raycast"
	"gridcaster/internal/render"
)

// Terminals report key presses but not releases, so a key counts as held for
// this long after its last press or auto-repeat.
const holdFor = 180 * time.Millisecond

// Sounds is the audio the front end triggers.
type Sounds interface {
	Handle(game.Events)
	Select()
	StartAmbience(level string)
	StopAmbience()
}

type action int

const (
	actForward action = iota
	actBack
	actStrafeLeft
	actStrafeRight
	actTurnLeft
	actTurnRight
	actionCount
)

// App drives a game.Flow on a tcell screen.
type App struct {
	screen tcell.Screen
	flow   *game.Flow
	sounds Sounds
	tps    int

	clock *core.FrameClock
	now   func() time.Time
	held  [actionCount]time.Time
	hits  []raycast.ColumnHit
}

// New builds an App. sounds may be nil; tps <= 0 means 30 frames per second.
func New(screen tcell.Screen, flow *game.Flow, sounds Sounds, tps int) *App {
	if tps <= 0 {
		tps = 30
	}
	return &App{
		screen: screen,
		flow:   flow,
		sounds: sounds,
		tps:    tps,
		clock:  core.NewFrameClock(),
		now:    time.Now,
	}
}

// Run processes input and redraws at the configured rate until the player
// quits or ctx is cancelled. The caller owns the screen and must Fini it.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil || ctx.Err() != nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(a.tps))
	defer ticker.Stop()
	a.Draw()
	for !a.flow.Done() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			a.HandleEvent(ev)
		case <-ticker.C:
			a.Step(a.clock.Tick())
			a.Draw()
		}
	}
	return nil
}

// HandleEvent applies one terminal event.
func (a *App) HandleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.screen.Sync()
	case *tcell.EventKey:
		a.handleKey(ev)
	}
}

func (a *App) handleKey(ev *tcell.EventKey) {
	if ev.Key() == tcell.KeyCtrlC {
		for !a.flow.Done() {
			a.back()
		}
		return
	}
	switch a.flow.Screen().(type) {
	case game.ScreenTitle:
		switch {
		case ev.Key() == tcell.KeyUp || ev.Rune() == 'k' || ev.Rune() == 'w':
			a.flow.Up()
		case ev.Key() == tcell.KeyDown || ev.Rune() == 'j' || ev.Rune() == 's':
			a.flow.Down()
		case ev.Key() == tcell.KeyEnter:
			a.confirm()
		case ev.Key() == tcell.KeyEscape || ev.Rune() == 'q':
			a.back()
		}
	case game.ScreenGame:
		if ev.Key() == tcell.KeyEscape {
			a.back()
			return
		}
		if act, ok := keyAction(ev); ok {
			a.held[act] = a.now().Add(holdFor)
		}
	case game.ScreenVictory:
		switch {
		case ev.Key() == tcell.KeyEnter:
			a.confirm()
		case ev.Rune() == 'r':
			if a.flow.Replay() == nil {
				a.startLevel()
			}
		case ev.Key() == tcell.KeyEscape || ev.Rune() == 'q':
			a.back()
		}
	}
}

func keyAction(ev *tcell.EventKey) (action, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return actForward, true
	case tcell.KeyDown:
		return actBack, true
	case tcell.KeyLeft:
		return actTurnLeft, true
	case tcell.KeyRight:
		return actTurnRight, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			return actForward, true
		case 's', 'S':
			return actBack, true
		case 'a', 'A':
			return actStrafeLeft, true
		case 'd', 'D':
			return actStrafeRight, true
		}
	}
	return 0, false
}

func (a *App) confirm() {
	_, fromTitle := a.flow.Screen().(game.ScreenTitle)
	if err := a.flow.Confirm(); err != nil {
		return
	}
	if fromTitle {
		if a.sounds != nil {
			a.sounds.Select()
		}
		a.startLevel()
	}
}

func (a *App) startLevel() {
	a.held = [actionCount]time.Time{}
	a.clock.Reset()
	if s := a.flow.Session(); s != nil && a.sounds != nil {
		a.sounds.StartAmbience(s.Level)
	}
}

func (a *App) back() {
	if _, inGame := a.flow.Screen().(game.ScreenGame); inGame && a.sounds != nil {
		a.sounds.StopAmbience()
	}
	a.flow.Back()
}

// Keys returns the movement keys held at the current time.
func (a *App) Keys() game.Keys {
	now := a.now()
	held := func(act action) bool { return now.Before(a.held[act]) }
	return game.Keys{
		Forward:     held(actForward),
		Back:        held(actBack),
		StrafeLeft:  held(actStrafeLeft),
		StrafeRight: held(actStrafeRight),
		TurnLeft:    held(actTurnLeft),
		TurnRight:   held(actTurnRight),
	}
}

// Step advances the running level by dt seconds.
func (a *App) Step(dt float64) {
	ev := a.flow.Update(a.Keys().Intent(dt))
	if ev.Has(game.EventVictory) && a.sounds != nil {
		a.sounds.StopAmbience()
	}
	if a.sounds != nil {
		a.sounds.Handle(ev)
	}
}

// Draw renders the current screen.
func (a *App) Draw() {
	a.screen.Clear()
	switch s := a.flow.Screen().(type) {
	case game.ScreenTitle:
		a.drawTitle(s)
	case game.ScreenGame:
		a.drawGame(s.Session)
	case game.ScreenVictory:
		a.drawVictory(s)
	}
	a.screen.Show()
}

var (
	styleText     = tcell.StyleDefault
	styleSelected = tcell.StyleDefault.Reverse(true)
	styleError    = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleBanner   = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
)

func (a *App) drawTitle(s game.ScreenTitle) {
	w, h := a.screen.Size()
	top := max(h/2-len(s.Levels)/2-2, 0)
	a.centre(w, top, "GRIDCASTER", styleBanner)
	for i, name := range s.Levels {
		style := styleText
		if i == s.Selected {
			style = styleSelected
		}
		a.centre(w, top+2+i, " "+name+" ", style)
	}
	if s.Err != nil {
		a.centre(w, top+3+len(s.Levels), s.Err.Error(), styleError)
	}
	a.centre(w, h-1, "↑/↓ choose  Enter play  Esc quit", styleText)
}

func (a *App) drawGame(s *game.Session) {
	w, h := a.screen.Size()
	p := render.PaletteFor(s.Level)
	a.hits = raycast.CastFrameInto(a.hits, w, h, s.Pose, s.Grid)

	sky, floor := tcellColor(p.Sky), tcellColor(p.Floor)
	background := func(y int) tcell.Color {
		if y < h/2 {
			return sky
		}
		return floor
	}
	for y := 0; y < h; y++ {
		bg := tcell.StyleDefault.Background(background(y))
		for x := 0; x < w; x++ {
			a.screen.SetContent(x, y, ' ', nil, bg)
		}
	}
	for _, hit := range a.hits {
		r := render.ShadeRune(hit.Perp, hit.Side)
		style := tcell.StyleDefault.Foreground(tcellColor(p.Wall(hit.Wall, hit.Side)))
		for y := hit.Y0; y <= hit.Y1; y++ {
			a.screen.SetContent(hit.X, y, r, nil, style.Background(background(y)))
		}
	}
	hud := fmt.Sprintf(" %s  %d fps ", s.Level, a.clock.FPS())
	a.text(0, 0, hud, styleText)
}

func (a *App) drawVictory(s game.ScreenVictory) {
	w, h := a.screen.Size()
	mid := h / 2
	a.centre(w, mid-2, "LEVEL COMPLETE", styleBanner)
	a.centre(w, mid, fmt.Sprintf("%s in %.1fs", s.Level, s.Elapsed), styleText)
	a.centre(w, mid+2, "Enter menu  R replay  Esc quit", styleText)
}

func (a *App) centre(w, y int, s string, style tcell.Style) {
	a.text(max((w-len([]rune(s)))/2, 0), y, s, style)
}

func (a *App) text(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		a.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

func tcellColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
