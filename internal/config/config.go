// Package config provides YAML-based configuration loading for autosnake:
// board geometry, snake setup, tick timing and the autopilot default.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/autosnake/internal/core"
	"github.com/vovakirdan/autosnake/internal/grid"
)

// ErrInvalid is returned by Validate for unusable settings.
var ErrInvalid = errors.New("config: invalid")

// Config contains all autosnake settings.
type Config struct {
	Board     BoardConfig     `yaml:"board"`
	Snake     SnakeConfig     `yaml:"snake"`
	Timing    TimingConfig    `yaml:"timing"`
	Autopilot AutopilotConfig `yaml:"autopilot"`
}

// BoardConfig defines the playing field in board units.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Unit   int `yaml:"unit"`
}

// SnakeConfig defines spawn parameters.
type SnakeConfig struct {
	InitialLength int `yaml:"initial_length"`
}

// TimingConfig defines tick cadence in milliseconds.
type TimingConfig struct {
	TickIntervalMs int `yaml:"tick_interval_ms"`
	MinIntervalMs  int `yaml:"min_interval_ms"`
	MaxIntervalMs  int `yaml:"max_interval_ms"`
	SpeedStepMs    int `yaml:"speed_step_ms"`
	RestartDelayMs int `yaml:"restart_delay_ms"`
}

// AutopilotConfig defines the autopilot default for new sessions.
type AutopilotConfig struct {
	Enabled bool `yaml:"enabled"`
}

// Validate checks that the config describes a playable session.
func (c Config) Validate() error {
	b := c.Board
	if _, err := grid.NewBoard(b.Width, b.Height, b.Unit); err != nil {
		return fmt.Errorf("%w: board: %v", ErrInvalid, err)
	}
	if c.Snake.InitialLength < 1 || c.Snake.InitialLength > b.Width/b.Unit {
		return fmt.Errorf("%w: snake.initial_length %d must be between 1 and %d", ErrInvalid, c.Snake.InitialLength, b.Width/b.Unit)
	}

	t := c.Timing
	if t.MinIntervalMs <= 0 || t.MaxIntervalMs < t.MinIntervalMs {
		return fmt.Errorf("%w: timing bounds %d..%d ms", ErrInvalid, t.MinIntervalMs, t.MaxIntervalMs)
	}
	if t.TickIntervalMs < t.MinIntervalMs || t.TickIntervalMs > t.MaxIntervalMs {
		return fmt.Errorf("%w: timing.tick_interval_ms %d outside %d..%d", ErrInvalid, t.TickIntervalMs, t.MinIntervalMs, t.MaxIntervalMs)
	}
	if t.SpeedStepMs <= 0 {
		return fmt.Errorf("%w: timing.speed_step_ms must be positive", ErrInvalid)
	}
	if t.RestartDelayMs < 0 {
		return fmt.Errorf("%w: timing.restart_delay_ms must not be negative", ErrInvalid)
	}
	return nil
}

// BoardGrid returns the board as a grid.Board. Call Validate first.
func (c Config) BoardGrid() grid.Board {
	return grid.Board{Width: c.Board.Width, Height: c.Board.Height, Unit: c.Board.Unit}
}

// Runtime builds the game RuntimeConfig for the given seed.
func (c Config) Runtime(seed int64) core.RuntimeConfig {
	rc := core.DefaultConfig()
	rc.Board = c.BoardGrid()
	rc.InitialLength = c.Snake.InitialLength
	rc.Seed = seed
	return rc
}

// TickInterval returns the tick period.
func (t TimingConfig) TickInterval() time.Duration {
	return ms(t.TickIntervalMs)
}

// MinInterval returns the fastest allowed tick period.
func (t TimingConfig) MinInterval() time.Duration {
	return ms(t.MinIntervalMs)
}

// MaxInterval returns the slowest allowed tick period.
func (t TimingConfig) MaxInterval() time.Duration {
	return ms(t.MaxIntervalMs)
}

// SpeedStep returns the interval change per speed key press.
func (t TimingConfig) SpeedStep() time.Duration {
	return ms(t.SpeedStepMs)
}

// RestartDelay returns the pause before an autopilot restart.
func (t TimingConfig) RestartDelay() time.Duration {
	return ms(t.RestartDelayMs)
}

func ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}

// DefaultGame returns the game ID to start when none is named.
func (c Config) DefaultGame() string {
	if c.Autopilot.Enabled {
		return "snake_auto"
	}
	return "snake"
}
