package core

import "github.com/vovakirdan/autosnake/internal/grid"

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW       int        // Screen width in characters
	ScreenH       int        // Screen height in characters
	Board         grid.Board // Playing field in board units
	InitialLength int        // Snake segments at spawn
	Seed          int64      // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with the classic 600x500 board.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:       80,
		ScreenH:       24,
		Board:         grid.Board{Width: 600, Height: 500, Unit: 25},
		InitialLength: 5,
		Seed:          0, // 0 means use current time in platform layer
	}
}

// Phase is the lifecycle state of a game session.
type Phase int

const (
	PhaseRunning Phase = iota
	PhasePaused
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// DeathCause names the terminal condition that ended a life.
type DeathCause string

const (
	CauseNone DeathCause = ""
	CauseWall DeathCause = "wall"
	CauseSelf DeathCause = "self"
)

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Phase     Phase
	Score     int     // Food eaten this life
	HighScore int     // Best score across lives in this session
	Average   float64 // Mean final score of finished lives
	Lives     int     // Finished lives in this session
	Length    int     // Current snake length
	Tick      uint64  // Ticks in the current life
	Autopilot bool
}

// GameOver reports whether the current life has ended.
func (s GameState) GameOver() bool {
	return s.Phase == PhaseGameOver
}

// Paused reports whether ticking is suspended.
func (s GameState) Paused() bool {
	return s.Phase == PhasePaused
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State GameState
	Ate   bool       // Food was consumed this tick
	Died  bool       // This tick moved the game into PhaseGameOver
	Cause DeathCause // Set when Died is true
}

// LifeRecord describes one finished life for persistence.
type LifeRecord struct {
	GameID string
	Score  int
	Length int
	Ticks  uint64
	Cause  DeathCause
}
