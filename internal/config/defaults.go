package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default Snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Board: BoardConfig{
			Size: 10,
		},
		Tick: TickConfig{
			IntervalMS: 150,
		},
		Food: FoodConfig{
			ReverseChance: 0.3,
		},
		Session: SessionConfig{
			AutoRestart: false,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
