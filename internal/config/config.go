// Package config provides YAML-based game configuration loading for Snake.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// SnakeConfig contains all configuration for the Snake game.
type SnakeConfig struct {
	Board   BoardConfig   `yaml:"board"`
	Tick    TickConfig    `yaml:"tick"`
	Food    FoodConfig    `yaml:"food"`
	Session SessionConfig `yaml:"session"`
}

// BoardConfig defines the playing field.
type BoardConfig struct {
	Size int `yaml:"size"` // Cells per side
}

// TickConfig defines the movement speed.
type TickConfig struct {
	IntervalMS int `yaml:"interval_ms"` // Milliseconds between moves
}

// FoodConfig defines food behaviour.
type FoodConfig struct {
	ReverseChance float64 `yaml:"reverse_chance"` // 0.0 = never, 1.0 = always
}

// SessionConfig defines what happens around a game.
type SessionConfig struct {
	AutoRestart bool `yaml:"auto_restart"`
}

// Interval returns the time between moves.
func (c SnakeConfig) Interval() time.Duration {
	return time.Duration(c.Tick.IntervalMS) * time.Millisecond
}

// Validate checks that the config can drive a game.
func (c SnakeConfig) Validate() error {
	if c.Board.Size < 3 {
		return fmt.Errorf("%w: board.size must be at least 3, got %d", ErrInvalidConfig, c.Board.Size)
	}
	if c.Tick.IntervalMS <= 0 {
		return fmt.Errorf("%w: tick.interval_ms must be positive, got %d", ErrInvalidConfig, c.Tick.IntervalMS)
	}
	if c.Food.ReverseChance < 0 || c.Food.ReverseChance > 1 {
		return fmt.Errorf("%w: food.reverse_chance must be within [0, 1], got %v", ErrInvalidConfig, c.Food.ReverseChance)
	}
	return nil
}
