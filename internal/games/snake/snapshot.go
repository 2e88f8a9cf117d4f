package snake

import (
	"github.com/vovakirdan/autosnake/internal/core"
	"github.com/vovakirdan/autosnake/internal/grid"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick      uint64
	Phase     core.Phase
	Cause     core.DeathCause
	Score     int
	HighScore int
	Lives     int
	SnakeLen  int
	Head      grid.Cell
	Velocity  grid.Vector
	Food      grid.Cell
	HasFood   bool
	Autopilot bool
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:      g.tick,
		Phase:     g.phase,
		Cause:     g.cause,
		Score:     g.score,
		HighScore: g.stats.High(),
		Lives:     g.stats.Lives(),
		Food:      g.food,
		HasFood:   g.hasFood,
		Autopilot: g.autopilot,
	}
	if g.snake != nil {
		snap.SnakeLen = g.snake.Len()
		snap.Head = g.snake.Head()
		snap.Velocity = g.snake.Velocity()
	}
	return snap
}
