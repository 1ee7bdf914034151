package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Speed: SpeedConfig{
			Initial:     2000,
			Decrement:   100,
			Divisor:     15,
			Floor:       0,
			MinInterval: time.Millisecond,
		},
		Timing: TimingConfig{
			StartedGate:       time.Second,
			GameOverViewDelay: 1500 * time.Millisecond,
		},
		Rules: RulesConfig{
			FullBodyCollision:  false,
			CancelPendingViews: true,
		},
	}
}

// DefaultYAML returns the embedded default YAML, e.g. for `snake config`.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
