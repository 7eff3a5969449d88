// Package game holds the rules around a level: player input, the goal check
// and the menu flow between levels. It draws nothing.
package game

import (
	"gridcaster/internal/core"
	"gridcaster/internal/level"
	"gridcaster/internal/motion"
)

// Events is a set of things that happened during one Update.
type Events uint8

const (
	// EventMoved is set when the player tried to walk this frame.
	EventMoved Events = 1 << iota
	// EventVictory is set on the frame the player enters the goal cell.
	EventVictory
)

// Has reports whether every event in e is set.
func (ev Events) Has(e Events) bool { return ev&e == e }

// Session is one attempt at a level.
type Session struct {
	Level string
	Grid  *core.Grid
	Pose  motion.Pose

	Elapsed float64
	Steps   int

	won bool
}

// NewSession places the player at the level's spawn point facing +x.
func NewSession(name string, g *core.Grid) *Session {
	spawn := level.SpawnPoint(g)
	return &Session{
		Level: name,
		Grid:  g,
		Pose:  motion.NewPose(spawn.X, spawn.Y),
	}
}

// Won reports whether the goal has been reached.
func (s *Session) Won() bool { return s.won }

// Update advances the session by one frame: movement, then rotation, then the
// goal check. Once won the session ignores further input.
func (s *Session) Update(in Intent) Events {
	if s.won {
		return 0
	}
	in = in.Clamp()

	var ev Events
	if in.Moving() {
		ev |= EventMoved
		s.Steps++
	}
	s.Pose.Step(s.Grid, in.Forward, in.Strafe, in.DT)
	s.Pose.Rotate(in.Turn)
	s.Elapsed += in.DT

	if ReachedGoal(s.Grid, s.Pose.Pos) {
		s.won = true
		ev |= EventVictory
	}
	return ev
}
