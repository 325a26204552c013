// Package config provides YAML-based configuration loading for the game.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Config contains all tunable parameters of the game.
type Config struct {
	Board     BoardConfig     `yaml:"board"`
	Spawn     SpawnConfig     `yaml:"spawn"`
	Animation AnimationConfig `yaml:"animation"`
	Display   DisplayConfig   `yaml:"display"`
}

// BoardConfig defines the layout geometry in window pixels.
type BoardConfig struct {
	TileSize   float64 `yaml:"tile_size"`
	TileMargin float64 `yaml:"tile_margin"`
}

// SpawnConfig defines how new tiles are chosen.
type SpawnConfig struct {
	FourProbability float64 `yaml:"four_probability"` // 0.0-1.0
}

// AnimationConfig defines tile transition timing.
type AnimationConfig struct {
	DurationMS int `yaml:"duration_ms"`
}

// Duration returns the transition duration.
func (a AnimationConfig) Duration() time.Duration {
	return time.Duration(a.DurationMS) * time.Millisecond
}

// DisplayConfig defines the frame loop.
type DisplayConfig struct {
	FPS int `yaml:"fps"`
}

// Validate reports every out-of-range field.
func (c Config) Validate() error {
	var errs []error

	if c.Board.TileSize <= 0 {
		errs = append(errs, fmt.Errorf("board.tile_size must be positive, got %v", c.Board.TileSize))
	}
	if c.Board.TileMargin < 0 {
		errs = append(errs, fmt.Errorf("board.tile_margin must not be negative, got %v", c.Board.TileMargin))
	}
	if p := c.Spawn.FourProbability; p < 0 || p > 1 {
		errs = append(errs, fmt.Errorf("spawn.four_probability must be within [0, 1], got %v", p))
	}
	if c.Animation.DurationMS < 0 {
		errs = append(errs, fmt.Errorf("animation.duration_ms must not be negative, got %d", c.Animation.DurationMS))
	}
	if c.Display.FPS < 1 || c.Display.FPS > 240 {
		errs = append(errs, fmt.Errorf("display.fps must be within [1, 240], got %d", c.Display.FPS))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}
