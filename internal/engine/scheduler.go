package engine

import (
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/autosnake/internal/core"
	"github.com/vovakirdan/autosnake/internal/registry"
)

// Default timing, in line with the embedded config.
const (
	DefaultInterval     = 50 * time.Millisecond
	DefaultMinInterval  = 10 * time.Millisecond
	DefaultMaxInterval  = 500 * time.Millisecond
	DefaultSpeedStep    = 10 * time.Millisecond
	DefaultRestartDelay = 300 * time.Millisecond
)

// ScoreSink receives score updates after every tick.
type ScoreSink interface {
	Scores(current, high int, avg float64)
}

// LifeRecorder persists the final score of each finished life.
type LifeRecorder interface {
	RecordLife(life core.LifeRecord) error
}

// Options configures a Scheduler. Zero values fall back to the defaults.
type Options struct {
	Clock        Clock
	Interval     time.Duration
	MinInterval  time.Duration
	MaxInterval  time.Duration
	SpeedStep    time.Duration
	RestartDelay time.Duration

	Renderer core.Renderer
	Scores   ScoreSink
	Recorder LifeRecorder
	Logger   *log.Logger
}

func (o *Options) applyDefaults() {
	if o.Clock == nil {
		o.Clock = RealClock()
	}
	if o.MinInterval <= 0 {
		o.MinInterval = DefaultMinInterval
	}
	if o.MaxInterval <= 0 {
		o.MaxInterval = DefaultMaxInterval
	}
	if o.MaxInterval < o.MinInterval {
		o.MaxInterval = o.MinInterval
	}
	if o.Interval <= 0 {
		o.Interval = DefaultInterval
	}
	o.Interval = core.Clamp(o.Interval, o.MinInterval, o.MaxInterval)
	if o.SpeedStep <= 0 {
		o.SpeedStep = DefaultSpeedStep
	}
	if o.RestartDelay <= 0 {
		o.RestartDelay = DefaultRestartDelay
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
}

// Scheduler owns one game session and drives it in real time. All methods
// are safe for concurrent use and none of them block on the game clock.
type Scheduler struct {
	mu      sync.Mutex
	game    registry.Game
	opts    Options
	log     *log.Logger
	ticker  *Repeater
	restart *Delay
	input   core.InputFrame
	started bool

	// lives finished by tick and not yet handed to the recorder.
	lives []core.LifeRecord
}

// NewScheduler creates a stopped scheduler for game. The game must already
// be Reset.
func NewScheduler(game registry.Game, opts Options) *Scheduler {
	opts.applyDefaults()
	s := &Scheduler{
		game:  game,
		opts:  opts,
		log:   opts.Logger.With("game", game.ID()),
		input: core.NewInputFrame(),
	}
	s.ticker = NewRepeater(opts.Clock, &s.mu, opts.Interval, s.tick)
	s.ticker.SetAfter(s.flushLives)
	s.restart = NewDelay(opts.Clock, &s.mu, s.autoRestart)
	return s
}

// Start draws the first frame and begins ticking if the game is running.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return
	}
	s.started = true
	s.render(false)
	if s.game.State().Phase == core.PhaseRunning {
		s.ticker.Start()
	}
	s.log.Info("session started", "interval", s.ticker.Interval(), "autopilot", s.game.State().Autopilot)
}

// Stop cancels all timers. A stopped scheduler ignores further input.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	s.started = false
	s.ticker.Stop()
	s.restart.Cancel()
	s.log.Info("session stopped", "lives", s.game.State().Lives)
}

// TogglePause suspends or resumes ticking. While paused no timer is armed.
// The interval is unchanged, so toggling twice restores the prior state.
func (s *Scheduler) TogglePause() core.Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.togglePauseLocked()
}

func (s *Scheduler) togglePauseLocked() core.Phase {
	phase := s.game.TogglePause()
	if !s.started {
		return phase
	}
	switch phase {
	case core.PhasePaused:
		s.ticker.Stop()
	case core.PhaseRunning:
		s.ticker.Start()
	}
	s.log.Debug("pause toggled", "phase", phase)
	return phase
}

// SetInterval changes the tick period, clamped to the configured bounds.
// A running session is rearmed with the new period; otherwise the value is
// only recorded. It returns the interval in effect.
func (s *Scheduler) SetInterval(d time.Duration) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.setIntervalLocked(d)
}

func (s *Scheduler) setIntervalLocked(d time.Duration) time.Duration {
	d = core.Clamp(d, s.opts.MinInterval, s.opts.MaxInterval)
	if d == s.ticker.Interval() {
		return d
	}
	s.ticker.SetInterval(d)
	s.log.Debug("interval changed", "interval", d, "rearmed", s.ticker.Running())
	return d
}

// Interval returns the current tick period.
func (s *Scheduler) Interval() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ticker.Interval()
}

// Faster shortens the interval by one speed step.
func (s *Scheduler) Faster() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.setIntervalLocked(s.ticker.Interval() - s.opts.SpeedStep)
}

// Slower lengthens the interval by one speed step.
func (s *Scheduler) Slower() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.setIntervalLocked(s.ticker.Interval() + s.opts.SpeedStep)
}

// Replay cancels pending timers and starts a new life. Session high score
// and average carry over.
func (s *Scheduler) Replay() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.replayLocked()
}

func (s *Scheduler) replayLocked() {
	s.ticker.Stop()
	s.restart.Cancel()
	s.input.Clear()
	s.game.Replay()
	s.render(false)
	if s.started {
		s.ticker.Start()
	}
	s.log.Debug("new life")
}

// SetAutopilot switches steering mode. Turning it on during game over arms
// the restart; turning it off cancels a pending restart.
func (s *Scheduler) SetAutopilot(on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setAutopilotLocked(on)
}

func (s *Scheduler) setAutopilotLocked(on bool) {
	s.game.SetAutopilot(on)
	if s.game.State().Phase == core.PhaseGameOver && s.started {
		if on {
			s.restart.Schedule(s.opts.RestartDelay)
		} else {
			s.restart.Cancel()
		}
	}
	s.log.Debug("autopilot toggled", "on", on)
}

// Input dispatches a player action. Directions are buffered until the next
// tick; the rest take effect immediately.
func (s *Scheduler) Input(a core.Action) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	switch {
	case a.IsDirection():
		// Only the latest direction of a tick counts.
		for _, d := range []core.Action{core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight} {
			delete(s.input.Actions, d)
		}
		s.input.Set(a)
	case a == core.ActionPause:
		s.togglePauseLocked()
	case a == core.ActionRestart:
		s.replayLocked()
	case a == core.ActionAutopilot:
		s.setAutopilotLocked(!s.game.State().Autopilot)
	case a == core.ActionFaster:
		s.setIntervalLocked(s.ticker.Interval() - s.opts.SpeedStep)
	case a == core.ActionSlower:
		s.setIntervalLocked(s.ticker.Interval() + s.opts.SpeedStep)
	}
}

// State returns the game state.
func (s *Scheduler) State() core.GameState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.State()
}

// tick runs one simulation step. Called by the Repeater with s.mu held.
func (s *Scheduler) tick() {
	res := s.game.Step(s.input)
	s.input.Clear()

	s.render(res.Died)

	if !res.Died {
		return
	}
	s.ticker.Stop()
	st := res.State
	s.log.Info("life ended", "score", st.Score, "high", st.HighScore, "avg", st.Average, "cause", res.Cause, "ticks", st.Tick)

	if s.opts.Recorder != nil {
		s.lives = append(s.lives, core.LifeRecord{GameID: s.game.ID(), Score: st.Score, Length: st.Length, Ticks: st.Tick, Cause: res.Cause})
	}
	if st.Autopilot {
		s.restart.Schedule(s.opts.RestartDelay)
	}
}

// flushLives hands finished lives to the recorder without holding s.mu.
func (s *Scheduler) flushLives() {
	s.mu.Lock()
	lives := s.lives
	s.lives = nil
	s.mu.Unlock()

	for _, life := range lives {
		if err := s.opts.Recorder.RecordLife(life); err != nil {
			s.log.Warn("cannot record life", "err", err)
		}
	}
}

// autoRestart is the restart Delay callback, run with s.mu held.
func (s *Scheduler) autoRestart() {
	if s.game.State().Phase != core.PhaseGameOver {
		return
	}
	s.replayLocked()
}

// render paints the frame and publishes scores. Caller must hold s.mu.
func (s *Scheduler) render(gameOver bool) {
	if r := s.opts.Renderer; r != nil {
		s.game.Draw(r)
		if gameOver {
			r.DrawGameOver()
		}
		if p, ok := r.(core.Presenter); ok {
			p.Present()
		}
	}
	if s.opts.Scores != nil {
		st := s.game.State()
		s.opts.Scores.Scores(st.Score, st.HighScore, st.Average)
	}
}
