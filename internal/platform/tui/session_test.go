package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/autosnake/internal/config"
	"github.com/vovakirdan/autosnake/internal/core"
	"github.com/vovakirdan/autosnake/internal/engine"
)

func newTestSession(t *testing.T, gameID string) (*Session, *engine.ManualClock) {
	t.Helper()
	clock := engine.NewManualClock(time.Unix(0, 0))
	sess, err := NewSession(SessionOptions{
		GameID: gameID,
		Config: config.Default(),
		Seed:   1,
		Clock:  clock,
	})
	if err != nil {
		t.Fatalf("NewSession() failed: %v", err)
	}
	return sess, clock
}

func TestNewSessionDefaultGame(t *testing.T) {
	cfg := config.Default()
	cfg.Autopilot.Enabled = true

	sess, err := NewSession(SessionOptions{Config: cfg, Clock: engine.NewManualClock(time.Unix(0, 0))})
	if err != nil {
		t.Fatalf("NewSession() failed: %v", err)
	}
	if sess.Game.ID() != "snake_auto" {
		t.Errorf("default game = %q, expected snake_auto", sess.Game.ID())
	}
	if !sess.Game.State().Autopilot {
		t.Error("snake_auto should start with the autopilot on")
	}
}

func TestNewSessionUnknownGame(t *testing.T) {
	_, err := NewSession(SessionOptions{GameID: "tetris", Config: config.Default()})
	if err == nil {
		t.Fatal("expected an error for an unknown game")
	}
}

func TestModelForwardsKeys(t *testing.T) {
	sess, clock := newTestSession(t, "snake")
	var m tea.Model = sess.Model()

	if cmd := m.Init(); cmd == nil {
		t.Fatal("Init() should schedule a redraw")
	}
	if _, seq, _ := sess.Frames.Frame(); seq == 0 {
		t.Fatal("Start should publish the first frame")
	}

	clock.Advance(3 * engine.DefaultInterval)
	if tick := sess.Scheduler.State().Tick; tick != 3 {
		t.Fatalf("tick after three intervals = %d, expected 3", tick)
	}

	m, _ = m.Update(runeKey('p'))
	if phase := sess.Scheduler.State().Phase; phase != core.PhasePaused {
		t.Fatalf("phase after 'p' = %v, expected paused", phase)
	}
	clock.Advance(5 * engine.DefaultInterval)
	if tick := sess.Scheduler.State().Tick; tick != 3 {
		t.Errorf("paused game ticked to %d", tick)
	}

	m, _ = m.Update(runeKey('+'))
	if got := sess.Scheduler.Interval(); got != engine.DefaultInterval-engine.DefaultSpeedStep {
		t.Errorf("interval after '+' = %v", got)
	}

	view := m.View()
	if !strings.Contains(view, "Snake") || !strings.Contains(view, "paused") {
		t.Errorf("view is missing title or phase:\n%s", view)
	}

	m, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if !m.(Model).Quitting() {
		t.Error("model should be quitting")
	}
	if m.View() != "" {
		t.Error("quitting model should render nothing")
	}
	if clock.Pending() != 0 {
		t.Errorf("%d timers left after quit", clock.Pending())
	}
}

func TestModelHelpToggle(t *testing.T) {
	sess, _ := newTestSession(t, "snake")
	var m tea.Model = sess.Model()
	m.Init()

	short := m.View()
	m, _ = m.Update(runeKey('?'))
	full := m.View()
	if !strings.Contains(full, "replay") || strings.Contains(short, "replay") {
		t.Error("'?' should expand the help to show every binding")
	}
	if sess.Scheduler.State().Phase != core.PhaseRunning {
		t.Error("help toggle should not reach the game")
	}
}
