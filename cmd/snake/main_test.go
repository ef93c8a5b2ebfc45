package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

func TestLoadSettingsBoardSizeOverride(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Cleanup(func() {
		flagConfig = ""
		flagBoardSize = 0
	})

	tests := []struct {
		name    string
		size    int
		want    int
		wantErr bool
	}{
		{"no override", 0, 10, false},
		{"override", 15, 15, false},
		{"too small", 2, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flagBoardSize = tt.size
			got, err := loadSettings()
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("loadSettings() failed: %v", err)
			}
			if got.Board.Size != tt.want {
				t.Errorf("board size = %d, expected %d", got.Board.Size, tt.want)
			}
		})
	}
}

func TestLoadSettingsFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.yaml")
	if err := os.WriteFile(path, []byte("food:\n  reverse_chance: 1\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	flagConfig = path
	t.Cleanup(func() { flagConfig = "" })

	got, err := loadSettings()
	if err != nil {
		t.Fatalf("loadSettings() failed: %v", err)
	}
	if got.Food.ReverseChance != 1 {
		t.Errorf("reverse chance = %v, expected 1", got.Food.ReverseChance)
	}
	if got.Board.Size != 10 {
		t.Errorf("unset keys should keep defaults, board size = %d", got.Board.Size)
	}
}

func TestPortOf(t *testing.T) {
	tests := map[string]string{
		":23234":         "23234",
		"0.0.0.0:2222":   "2222",
		"[::1]:22":       "22",
		"no-port-at-all": "no-port-at-all",
	}
	for addr, want := range tests {
		if got := portOf(addr); got != want {
			t.Errorf("portOf(%q) = %q, expected %q", addr, got, want)
		}
	}
}

func TestWriteVariantList(t *testing.T) {
	games := []registry.GameInfo{
		{ID: "snake", Title: "Snake"},
		{ID: "snake_classic", Title: "Snake (Classic)"},
	}
	stats := map[string]*storage.GameStats{
		"snake": {GameID: "snake", GamesCount: 3, HighScore: 12},
	}

	var buf bytes.Buffer
	writeVariantList(&buf, games, stats)
	out := buf.String()

	for _, want := range []string{"snake_classic", "Snake (Classic)", "Runs", "Best"} {
		if !strings.Contains(out, want) {
			t.Errorf("list output missing %q:\n%s", want, out)
		}
	}
	lines := strings.Split(out, "\n")
	var snakeLine, classicLine string
	for _, l := range lines {
		fields := strings.Fields(l)
		if len(fields) > 0 && fields[0] == "snake" {
			snakeLine = l
		}
		if len(fields) > 0 && fields[0] == "snake_classic" {
			classicLine = l
		}
	}
	if f := strings.Fields(snakeLine); len(f) < 2 || f[len(f)-2] != "3" || f[len(f)-1] != "12" {
		t.Errorf("snake row = %q, expected 3 runs and best 12", snakeLine)
	}
	if f := strings.Fields(classicLine); len(f) < 2 || f[len(f)-2] != "0" || f[len(f)-1] != "0" {
		t.Errorf("unplayed variant row = %q, expected zeros", classicLine)
	}

	buf.Reset()
	writeVariantList(&buf, nil, nil)
	if !strings.Contains(buf.String(), "No variants") {
		t.Errorf("empty registry output = %q", buf.String())
	}
}

func TestListScoresAll(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	defer store.Close()

	for i := 1; i <= 12; i++ {
		if _, err := store.SaveScore(storage.ScoreRecord{GameID: "snake", Score: i, Length: i + 1, Cause: "wall"}); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	t.Cleanup(func() {
		flagScoresAll = false
		flagScoresLimit = 10
	})

	flagScoresLimit = 10
	top, err := listScores(store, "snake")
	if err != nil {
		t.Fatalf("listScores() failed: %v", err)
	}
	if len(top) != 10 || top[0].Score != 12 {
		t.Errorf("limited listing returned %d entries, expected the top 10", len(top))
	}

	flagScoresAll = true
	all, err := listScores(store, "snake")
	if err != nil {
		t.Fatalf("listScores() failed: %v", err)
	}
	if len(all) != 12 || all[11].Score != 1 {
		t.Errorf("--all returned %d entries", len(all))
	}
}
