// Package snake implements the snake game: a single snake on a fixed board
// that grows by eating food, steered either by key presses or by an A*
// autopilot that routes the head to the food every tick.
package snake

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/vovakirdan/autosnake/internal/core"
	"github.com/vovakirdan/autosnake/internal/grid"
	"github.com/vovakirdan/autosnake/internal/pathfind"
	"github.com/vovakirdan/autosnake/internal/registry"
)

// Mode selects the variant registered under a game ID.
type Mode string

const (
	ModeManual Mode = "manual"
	ModeAuto   Mode = "auto"
)

// Game is one snake session: the current life plus the session accumulators.
type Game struct {
	mode      Mode
	autopilot bool
	cfg       core.RuntimeConfig
	board     grid.Board
	rng       *rand.Rand

	snake   *Snake
	food    grid.Cell
	hasFood bool
	score   int
	tick    uint64
	phase   core.Phase
	cause   core.DeathCause

	stats Stats
}

// New creates a manually steered Snake game.
func New() *Game {
	return &Game{mode: ModeManual}
}

// NewAuto creates a Snake game driven by the autopilot.
func NewAuto() *Game {
	return &Game{mode: ModeAuto, autopilot: true}
}

func init() {
	registry.Register("snake", func() registry.Game {
		return New()
	})
	registry.Register("snake_auto", func() registry.Game {
		return NewAuto()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeAuto {
		return "snake_auto"
	}
	return "snake"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeAuto {
		return "Snake (Autopilot)"
	}
	return "Snake"
}

// Reset reloads the session from cfg. Accumulated scores are discarded and
// the autopilot returns to the variant's default.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	def := core.DefaultConfig()
	if cfg.Board.Unit <= 0 || cfg.Board.Width <= 0 || cfg.Board.Height <= 0 {
		cfg.Board = def.Board
	}
	if cfg.InitialLength <= 0 {
		cfg.InitialLength = def.InitialLength
	}
	// The snake is seeded on row 0 and must fit in it.
	cfg.InitialLength = min(cfg.InitialLength, cfg.Board.Cols())

	g.cfg = cfg
	g.board = cfg.Board
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.autopilot = g.mode == ModeAuto
	g.stats.Reset()
	g.newLife()
}

// Replay starts a new life. High score and per-life scores are kept.
func (g *Game) Replay() {
	if g.rng == nil {
		g.Reset(core.DefaultConfig())
		return
	}
	g.newLife()
}

// newLife respawns the snake and food and zeroes the current score.
func (g *Game) newLife() {
	g.snake = NewSnake(g.board, g.cfg.InitialLength)
	g.food, g.hasFood = PlaceFood(g.board, g.snake, g.rng)
	g.score = 0
	g.tick = 0
	g.phase = core.PhaseRunning
	g.cause = core.CauseNone
}

// Step advances the running life by one tick: steer, advance, eat, and
// check for a terminal collision. Paused or finished games are unchanged.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.snake == nil || g.phase != core.PhaseRunning {
		return core.StepResult{State: g.State()}
	}
	g.tick++

	if g.autopilot {
		g.steerAuto()
	} else {
		g.processInput(in)
	}

	v := g.snake.Velocity()
	ate := g.hasFood && g.snake.Head().Add(v) == g.food
	g.snake.Advance(v, ate)

	if ate {
		g.score++
		g.food, g.hasFood = PlaceFood(g.board, g.snake, g.rng)
	}
	g.stats.Observe(g.score)

	result := core.StepResult{Ate: ate}
	switch {
	case g.snake.OutOfBounds(g.board):
		g.cause = core.CauseWall
	case g.snake.SelfCollision():
		g.cause = core.CauseSelf
	}
	if g.cause != core.CauseNone {
		g.phase = core.PhaseGameOver
		g.stats.EndLife(g.score)
		result.Died = true
		result.Cause = g.cause
	}

	result.State = g.State()
	return result
}

// steerAuto routes the head to the food around every body cell, tail
// included. Without a route the snake keeps its heading.
func (g *Game) steerAuto() {
	if !g.hasFood {
		return
	}
	route := pathfind.FindPath(g.board, g.snake.Head(), g.food, g.snake.Occupies)
	g.snake.Steer(route)
}

// processInput applies the first direction action present in the frame.
func (g *Game) processInput(in core.InputFrame) {
	var dir grid.Direction
	switch {
	case in.Has(core.ActionUp):
		dir = grid.Up
	case in.Has(core.ActionDown):
		dir = grid.Down
	case in.Has(core.ActionLeft):
		dir = grid.Left
	case in.Has(core.ActionRight):
		dir = grid.Right
	default:
		return
	}
	g.snake.Turn(g.board.Vector(dir))
}

// TogglePause switches between running and paused. A finished life is
// left in game over.
func (g *Game) TogglePause() core.Phase {
	switch g.phase {
	case core.PhaseRunning:
		g.phase = core.PhasePaused
	case core.PhasePaused:
		g.phase = core.PhaseRunning
	}
	return g.phase
}

// SetAutopilot enables or disables pathfinder steering.
func (g *Game) SetAutopilot(on bool) {
	g.autopilot = on
}

// Autopilot reports whether the pathfinder is steering.
func (g *Game) Autopilot() bool {
	return g.autopilot
}

// Board returns the playing field.
func (g *Game) Board() grid.Board {
	return g.board
}

// Draw paints the current frame in the order clear, food, snake.
func (g *Game) Draw(r core.Renderer) {
	r.Clear()
	if g.snake == nil {
		return
	}
	if g.hasFood {
		r.DrawFood(g.food)
	}
	r.DrawSnake(g.snake.Body())
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := core.GameState{
		Phase:     g.phase,
		Score:     g.score,
		HighScore: g.stats.High(),
		Average:   g.stats.Average(),
		Lives:     g.stats.Lives(),
		Tick:      g.tick,
		Autopilot: g.autopilot,
	}
	if g.snake != nil {
		st.Length = g.snake.Len()
	}
	return st
}

// LifeScores returns the final score of every finished life in order.
func (g *Game) LifeScores() []int {
	return g.stats.Scores()
}

// DebugState returns a string representation of the game state.
func (g *Game) DebugState() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Tick: %d, Score: %d, High: %d, Phase: %s\n", g.tick, g.score, g.stats.High(), g.phase))
	if g.snake != nil {
		b.WriteString(fmt.Sprintf("Snake len: %d, Head: %s, Velocity: %+v\n", g.snake.Len(), g.snake.Head(), g.snake.Velocity()))
	}
	b.WriteString(fmt.Sprintf("Food: %s (placed: %v), Autopilot: %v\n", g.food, g.hasFood, g.autopilot))
	return b.String()
}
