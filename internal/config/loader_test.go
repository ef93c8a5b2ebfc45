package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	if cfg != DefaultSnakeConfig() {
		t.Errorf("embedded default = %+v, expected %+v", cfg, DefaultSnakeConfig())
	}
}

func TestLoadSnakeFallsBackToDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadSnake("")
	if err != nil {
		t.Fatalf("LoadSnake() failed: %v", err)
	}
	if cfg != DefaultSnakeConfig() {
		t.Errorf("LoadSnake() = %+v, expected defaults", cfg)
	}
}

func TestLoadSnakeUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".snake", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "snake.yaml"), []byte("board:\n  size: 15\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadSnake("")
	if err != nil {
		t.Fatalf("LoadSnake() failed: %v", err)
	}
	if cfg.Board.Size != 15 {
		t.Errorf("Board.Size = %d, expected 15 from user config", cfg.Board.Size)
	}
}

func TestLoadSnakeCustomPathPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.yaml")
	data := []byte("food:\n  reverse_chance: 0\nsession:\n  auto_restart: true\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadSnake(path)
	if err != nil {
		t.Fatalf("LoadSnake() failed: %v", err)
	}

	if cfg.Food.ReverseChance != 0 {
		t.Errorf("ReverseChance = %v, expected 0", cfg.Food.ReverseChance)
	}
	if !cfg.Session.AutoRestart {
		t.Error("AutoRestart should be true")
	}
	// Unset keys keep their defaults
	if cfg.Board.Size != 10 {
		t.Errorf("Board.Size = %d, expected default 10", cfg.Board.Size)
	}
	if cfg.Tick.IntervalMS != 150 {
		t.Errorf("Tick.IntervalMS = %d, expected default 150", cfg.Tick.IntervalMS)
	}
}

func TestLoadSnakeCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadSnake(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("LoadSnake() with a missing file should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("board: [1, 2"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSnake(bad); err == nil {
		t.Error("LoadSnake() with malformed YAML should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("board:\n  size: 2\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := LoadSnake(invalid)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("LoadSnake() with size 2 = %v, expected ErrInvalidConfig", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SnakeConfig)
		valid  bool
	}{
		{"defaults", func(*SnakeConfig) {}, true},
		{"smallest board", func(c *SnakeConfig) { c.Board.Size = 3 }, true},
		{"board too small", func(c *SnakeConfig) { c.Board.Size = 2 }, false},
		{"zero interval", func(c *SnakeConfig) { c.Tick.IntervalMS = 0 }, false},
		{"negative chance", func(c *SnakeConfig) { c.Food.ReverseChance = -0.1 }, false},
		{"chance above one", func(c *SnakeConfig) { c.Food.ReverseChance = 1.5 }, false},
		{"always reverse", func(c *SnakeConfig) { c.Food.ReverseChance = 1 }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultSnakeConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.valid && err != nil {
				t.Errorf("Validate() = %v, expected nil", err)
			}
			if !tc.valid && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}

func TestInterval(t *testing.T) {
	cfg := DefaultSnakeConfig()
	if got := cfg.Interval().Milliseconds(); got != 150 {
		t.Errorf("Interval() = %dms, expected 150ms", got)
	}
}
