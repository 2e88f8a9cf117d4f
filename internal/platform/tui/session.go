package tui

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/autosnake/internal/config"
	"github.com/vovakirdan/autosnake/internal/engine"
	"github.com/vovakirdan/autosnake/internal/registry"
)

// SessionOptions configures NewSession.
type SessionOptions struct {
	GameID   string
	Config   config.Config
	Seed     int64
	Clock    engine.Clock
	Recorder engine.LifeRecorder
	Logger   *log.Logger
}

// Session is one playable game wired to its scheduler and frame buffer.
type Session struct {
	Game      registry.Game
	Scheduler *engine.Scheduler
	Frames    *FrameBuffer
}

// NewSession creates and resets the game, then builds a stopped scheduler
// that draws into a fresh frame buffer.
func NewSession(opts SessionOptions) (*Session, error) {
	id := opts.GameID
	if id == "" {
		id = opts.Config.DefaultGame()
	}
	game, err := registry.Create(id)
	if err != nil {
		return nil, fmt.Errorf("tui: %w", err)
	}
	game.Reset(opts.Config.Runtime(opts.Seed))

	frames := NewFrameBuffer(opts.Config.BoardGrid())
	t := opts.Config.Timing
	sched := engine.NewScheduler(game, engine.Options{
		Clock:        opts.Clock,
		Interval:     t.TickInterval(),
		MinInterval:  t.MinInterval(),
		MaxInterval:  t.MaxInterval(),
		SpeedStep:    t.SpeedStep(),
		RestartDelay: t.RestartDelay(),
		Renderer:     frames,
		Scores:       frames,
		Recorder:     opts.Recorder,
		Logger:       opts.Logger,
	})

	return &Session{Game: game, Scheduler: sched, Frames: frames}, nil
}

// Model returns a Bubble Tea model for the session.
func (s *Session) Model() Model {
	return NewModel(s.Scheduler, s.Frames, s.Game.Title())
}
