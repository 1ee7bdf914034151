// Package config provides YAML-based game configuration loading and
// rule presets for the snake game.
package config

import (
	"errors"
	"fmt"
	"time"
)

// SnakeConfig contains all tunable configuration for the snake game.
// Board geometry is fixed and lives in the snake package.
type SnakeConfig struct {
	Speed  SpeedConfig  `yaml:"speed"`
	Timing TimingConfig `yaml:"timing"`
	Rules  RulesConfig  `yaml:"rules"`
}

// SpeedConfig defines how the tick interval is derived from the score.
// The interval is Initial/Divisor milliseconds and shrinks by
// Decrement/Divisor for every apple eaten.
type SpeedConfig struct {
	Initial   int `yaml:"initial"`
	Decrement int `yaml:"decrement"`
	Divisor   int `yaml:"divisor"`
	// Floor is the lowest speed value reachable by eating. Zero means no floor.
	Floor int `yaml:"floor"`
	// MinInterval is the shortest interval the clock will arm.
	MinInterval time.Duration `yaml:"min_interval"`
}

// TimingConfig defines the one-shot delays around state transitions.
type TimingConfig struct {
	StartedGate       time.Duration `yaml:"started_gate"`
	GameOverViewDelay time.Duration `yaml:"game_over_view_delay"`
}

// RulesConfig toggles behavioral variants.
type RulesConfig struct {
	// FullBodyCollision makes running into any body cell a loss, on top of
	// the stationary check.
	FullBodyCollision bool `yaml:"full_body_collision"`
	// CancelPendingViews drops a pending game-over view when the board is
	// reset for the menu, so the start view can't be painted over.
	CancelPendingViews bool `yaml:"cancel_pending_views"`
}

// Validate reports every invalid value in the config.
func (c SnakeConfig) Validate() error {
	var errs []error
	if c.Speed.Initial <= 0 {
		errs = append(errs, fmt.Errorf("speed.initial must be positive, got %d", c.Speed.Initial))
	}
	if c.Speed.Decrement < 0 {
		errs = append(errs, fmt.Errorf("speed.decrement must not be negative, got %d", c.Speed.Decrement))
	}
	if c.Speed.Divisor <= 0 {
		errs = append(errs, fmt.Errorf("speed.divisor must be positive, got %d", c.Speed.Divisor))
	}
	if c.Speed.Floor < 0 {
		errs = append(errs, fmt.Errorf("speed.floor must not be negative, got %d", c.Speed.Floor))
	}
	if c.Speed.MinInterval <= 0 {
		errs = append(errs, fmt.Errorf("speed.min_interval must be positive, got %v", c.Speed.MinInterval))
	}
	if c.Timing.StartedGate < 0 {
		errs = append(errs, fmt.Errorf("timing.started_gate must not be negative, got %v", c.Timing.StartedGate))
	}
	if c.Timing.GameOverViewDelay < 0 {
		errs = append(errs, fmt.Errorf("timing.game_over_view_delay must not be negative, got %v", c.Timing.GameOverViewDelay))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Interval converts a speed value to a tick interval. The result is not
// clamped and may be zero or negative for a speed at or below zero.
func (c SpeedConfig) Interval(speed int) time.Duration {
	return time.Duration(speed) * time.Millisecond / time.Duration(c.Divisor)
}
