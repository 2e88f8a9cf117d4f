package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// Default returns the hardcoded configuration used when no YAML is available.
func Default() Config {
	return Config{
		Board: BoardConfig{
			Width:  600,
			Height: 500,
			Unit:   25,
		},
		Snake: SnakeConfig{
			InitialLength: 5,
		},
		Timing: TimingConfig{
			TickIntervalMs: 50,
			MinIntervalMs:  10,
			MaxIntervalMs:  500,
			SpeedStepMs:    10,
			RestartDelayMs: 300,
		},
		Autopilot: AutopilotConfig{
			Enabled: true,
		},
	}
}
