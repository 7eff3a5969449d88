package game

import (
	"fmt"

	"gridcaster/internal/core"
)

// Screen is one of ScreenTitle, ScreenGame or ScreenVictory.
type Screen interface{ isScreen() }

// ScreenTitle is the level menu. Err holds the last load failure, if any.
type ScreenTitle struct {
	Levels   []string
	Selected int
	Err      error
}

// ScreenGame is a level in progress.
type ScreenGame struct {
	Session *Session
}

// ScreenVictory follows a completed level.
type ScreenVictory struct {
	Level   string
	Elapsed float64
	Steps   int
}

func (ScreenTitle) isScreen()   {}
func (ScreenGame) isScreen()    {}
func (ScreenVictory) isScreen() {}

// Loader opens a level by name.
type Loader func(name string) (*core.Grid, error)

// Flow moves between the title menu, a level and the victory screen.
type Flow struct {
	load     Loader
	levels   []string
	selected int
	screen   Screen
	done     bool
}

// NewFlow starts on the title menu listing levels.
func NewFlow(levels []string, load Loader) *Flow {
	f := &Flow{load: load, levels: append([]string(nil), levels...)}
	f.toTitle(nil)
	return f
}

// Screen returns the current screen.
func (f *Flow) Screen() Screen { return f.screen }

// Done reports whether the player asked to quit.
func (f *Flow) Done() bool { return f.done }

// Session returns the running session, or nil outside a level.
func (f *Flow) Session() *Session {
	if g, ok := f.screen.(ScreenGame); ok {
		return g.Session
	}
	return nil
}

// Up moves the menu selection up, wrapping at the top.
func (f *Flow) Up() { f.move(-1) }

// Down moves the menu selection down, wrapping at the bottom.
func (f *Flow) Down() { f.move(1) }

func (f *Flow) move(d int) {
	if _, ok := f.screen.(ScreenTitle); !ok || len(f.levels) == 0 {
		return
	}
	n := len(f.levels)
	f.selected = ((f.selected+d)%n + n) % n
	f.toTitle(nil)
}

// Confirm starts the selected level from the title, or returns to the title
// from the victory screen. A level that fails to load keeps the title up with
// the error attached.
func (f *Flow) Confirm() error {
	switch f.screen.(type) {
	case ScreenTitle:
		if len(f.levels) == 0 {
			return nil
		}
		return f.Start(f.levels[f.selected])
	case ScreenVictory:
		f.toTitle(nil)
	}
	return nil
}

// Start loads name and begins a session on it.
func (f *Flow) Start(name string) error {
	g, err := f.load(name)
	if err != nil {
		err = fmt.Errorf("start %s: %w", name, err)
		f.toTitle(err)
		return err
	}
	f.screen = ScreenGame{Session: NewSession(name, g)}
	return nil
}

// Replay restarts the level just completed.
func (f *Flow) Replay() error {
	v, ok := f.screen.(ScreenVictory)
	if !ok {
		return nil
	}
	return f.Start(v.Level)
}

// Back leaves a level for the title, and quits from the title or victory
// screen.
func (f *Flow) Back() {
	switch f.screen.(type) {
	case ScreenGame:
		f.toTitle(nil)
	default:
		f.done = true
	}
}

// Update runs one frame of the current level and switches to the victory
// screen on the frame the goal is reached. Outside a level it does nothing.
func (f *Flow) Update(in Intent) Events {
	s := f.Session()
	if s == nil {
		return 0
	}
	ev := s.Update(in)
	if ev.Has(EventVictory) {
		f.screen = ScreenVictory{Level: s.Level, Elapsed: s.Elapsed, Steps: s.Steps}
	}
	return ev
}

func (f *Flow) toTitle(err error) {
	f.screen = ScreenTitle{Levels: f.levels, Selected: f.selected, Err: err}
}
