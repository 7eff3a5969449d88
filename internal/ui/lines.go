// Package ui lays out and draws the menu screens of the window front end.
package ui

import (
	"fmt"

	"gridcaster/internal/game"
)

// Line is one row of menu text.
type Line struct {
	Text      string
	Highlight bool
	Error     bool
}

// TitleLines lays out the level menu.
func TitleLines(s game.ScreenTitle) []Line {
	lines := []Line{{Text: "GRIDCASTER"}, {}}
	for i, name := range s.Levels {
		prefix := "  "
		if i == s.Selected {
			prefix = "> "
		}
		lines = append(lines, Line{Text: prefix + name, Highlight: i == s.Selected})
	}
	if len(s.Levels) == 0 {
		lines = append(lines, Line{Text: "no levels found", Error: true})
	}
	if s.Err != nil {
		lines = append(lines, Line{}, Line{Text: s.Err.Error(), Error: true})
	}
	return append(lines, Line{}, Line{Text: "Up/Down choose  Enter play  Esc quit"})
}

// VictoryLines lays out the level-complete screen.
func VictoryLines(s game.ScreenVictory) []Line {
	return []Line{
		{Text: "LEVEL COMPLETE", Highlight: true},
		{},
		{Text: fmt.Sprintf("%s in %.1fs", s.Level, s.Elapsed)},
		{},
		{Text: "Enter menu  R replay  Esc quit"},
	}
}
