package snake

import (
	"fmt"
	"math"
	"time"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// Registered variant IDs.
const (
	IDReverse = "snake"
	IDClassic = "snake_classic"
)

// reversalFlashTicks is how long the HUD shows the reversal notice (~1s at 60 FPS).
const reversalFlashTicks = 60

// Game adapts a Session to the platform's frame-driven Game interface.
// The platform steps it at a fixed frame rate; the snake moves once every
// moveEveryTicks frames.
type Game struct {
	id       string
	settings config.SnakeConfig
	session  *Session

	frame          uint64
	moveEveryTicks int
	moveTicker     int // Counts frames until next move

	lastOver   *core.Outcome // Most recent finished game, for auto-restart
	flashTicks int

	// Screen dimensions
	screenW int
	screenH int

	paused   bool
	tooSmall bool
}

// New creates the reversal variant: some food flips the snake.
func New(cfg config.SnakeConfig) *Game {
	return newGame(IDReverse, cfg)
}

// NewClassic creates the classic variant without reversal food.
func NewClassic(cfg config.SnakeConfig) *Game {
	cfg.Food.ReverseChance = 0
	return newGame(IDClassic, cfg)
}

func newGame(id string, cfg config.SnakeConfig) *Game {
	if cfg.Validate() != nil {
		cfg = config.DefaultSnakeConfig()
	}
	g := &Game{id: id, settings: cfg}
	g.Reset(core.DefaultConfig())
	return g
}

func init() {
	registry.Register(IDReverse, func(cfg config.SnakeConfig) registry.Game {
		return New(cfg)
	})
	registry.Register(IDClassic, func(cfg config.SnakeConfig) registry.Game {
		return NewClassic(cfg)
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.id == IDClassic {
		return "Snake (Classic)"
	}
	return "Snake"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	session, err := NewSession(Options{
		BoardSize:     g.settings.Board.Size,
		ReverseChance: g.settings.Food.ReverseChance,
		AutoRestart:   g.settings.Session.AutoRestart,
		Seed:          cfg.Seed,
	})
	if err != nil {
		// settings were validated in newGame
		panic(fmt.Sprintf("snake: %v", err))
	}

	g.session = session
	g.frame = 0
	g.moveEveryTicks = framesPerMove(g.settings.Interval(), cfg.TickRate)
	g.moveTicker = 0
	g.lastOver = nil
	g.flashTicks = 0
	g.paused = false
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize records new screen dimensions. Play is suspended while the board
// does not fit and resumes where it left off once it does.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height

	w, h := g.requiredSize()
	g.tooSmall = g.screenW < w || g.screenH < h
}

// framesPerMove converts the move interval into a whole number of frames.
func framesPerMove(interval time.Duration, tickRate int) int {
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	frames := math.Round(interval.Seconds() * float64(tickRate))
	return core.Clamp(int(frames), 1, math.MaxInt32)
}

// Step advances the game by one frame.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.frame++
	if g.flashTicks > 0 {
		g.flashTicks--
	}

	// Handle restart
	if input.Has(core.ActionRestart) && g.session.state == StateGameOver {
		g.session.Reset()
		g.moveTicker = 0
		g.paused = false
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if input.Has(core.ActionPause) && g.session.state == StateRunning {
		g.paused = !g.paused
	}

	if g.session.state == StateGameOver || g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	// Turns apply to the live session right away; the next move reads them.
	for _, a := range input.Moves {
		if d, ok := directionFor(a); ok {
			g.session.SetDirection(d)
		}
	}

	g.moveTicker++
	if g.moveTicker < g.moveEveryTicks {
		return core.StepResult{State: g.State()}
	}
	g.moveTicker = 0

	res := g.session.Tick()
	if res.Reversed {
		g.flashTicks = reversalFlashTicks
	}

	out := core.StepResult{State: g.State()}
	if res.GameOver {
		out.Over = &core.Outcome{
			Score:  res.Score,
			Length: res.Length,
			Cause:  string(res.Cause),
		}
		g.lastOver = out.Over
	}
	return out
}

// directionFor maps a move action to a heading.
func directionFor(a core.Action) (Direction, bool) {
	switch a {
	case core.ActionUp:
		return DirUp, true
	case core.ActionDown:
		return DirDown, true
	case core.ActionLeft:
		return DirLeft, true
	case core.ActionRight:
		return DirRight, true
	}
	return 0, false
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.session.score,
		GameOver: g.session.state == StateGameOver,
		Paused:   g.paused,
	}
}

// Snapshot returns the underlying session snapshot.
func (g *Game) Snapshot() Snapshot {
	return g.session.Snapshot()
}
