package game

import "gridcaster/internal/core"

// ReachedGoal reports whether pos lies in the grid's goal cell. A grid
// without a goal is never won.
func ReachedGoal(g *core.Grid, pos core.Vec2) bool {
	goal, ok := g.Goal()
	if !ok {
		return false
	}
	return pos.Cell() == goal
}
