package snake

import (
	"math/rand"
)

// State is the session lifecycle state.
type State string

const (
	StateRunning  State = "running"
	StateGameOver State = "game_over"
)

// initialFoodOffset places the first food a few cells after the start cell.
const initialFoodOffset = 5

// Options configures a Session.
type Options struct {
	BoardSize     int
	ReverseChance float64
	// AutoRestart reinitializes the session in the same tick that ends it.
	AutoRestart bool
	Seed        int64
}

// DefaultOptions returns the classic 10x10 setup with reversal food.
func DefaultOptions() Options {
	return Options{
		BoardSize:     10,
		ReverseChance: DefaultReverseChance,
	}
}

// TickResult describes the outcome of one Tick.
// Either GameOver is set with its Cause, or the remaining fields carry the
// state after the move.
type TickResult struct {
	GameOver bool
	Cause    Cause

	Cells    []int // occupied cells, ascending
	Food     Food
	Score    int
	Length   int
	Ate      bool
	Grew     bool
	Reversed bool
}

// Session owns all mutable game state and advances it one tick at a time.
// It is not safe for concurrent use; the caller serializes Tick, SetDirection
// and Reset.
type Session struct {
	opts   Options
	board  Board
	rng    *rand.Rand
	placer *FoodPlacer

	body      *Body
	food      Food
	direction Direction
	moved     Direction // heading of the last committed move
	score     int
	state     State
	cause     Cause
	ticks     uint64
}

// NewSession validates opts and returns a running session.
func NewSession(opts Options) (*Session, error) {
	board, err := NewBoard(opts.BoardSize)
	if err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewSource(opts.Seed))
	placer, err := NewFoodPlacer(rng, opts.ReverseChance)
	if err != nil {
		return nil, err
	}

	s := &Session{
		opts:   opts,
		board:  board,
		rng:    rng,
		placer: placer,
	}
	s.Reset()
	return s, nil
}

// Board returns the session's board.
func (s *Session) Board() Board {
	return s.board
}

// Reset returns the session to a fresh running game on the same board.
func (s *Session) Reset() {
	start := s.board.startCoord()
	seg := Segment{Coord: start, Cell: s.board.CellID(start)}

	s.body = newBody(seg)
	s.food = Food{Cell: (seg.Cell-1+initialFoodOffset)%s.board.Cells() + 1}
	s.direction = DirRight
	s.moved = DirRight
	s.score = 0
	s.state = StateRunning
	s.cause = CauseNone
	s.ticks = 0
}

// SetDirection requests a new heading for the next tick.
// Unknown directions are ignored. While the snake is longer than one segment,
// so is the exact opposite of the current heading, and the opposite of the
// last committed move, which would turn straight back into the neck. It
// reports whether the heading was accepted.
func (s *Session) SetDirection(d Direction) bool {
	if !d.Valid() {
		return false
	}
	if s.body.Len() > 1 && (d == s.direction.Opposite() || d == s.moved.Opposite()) {
		return false
	}
	s.direction = d
	return true
}

// Direction returns the heading the next tick will use.
func (s *Session) Direction() Direction {
	return s.direction
}

// Tick advances the game by one step.
//
// A fatal move leaves the session exactly as it was before the tick apart from
// the transition to StateGameOver. Ticking a finished session repeats the
// game-over result without changing anything.
func (s *Session) Tick() TickResult {
	if s.state == StateGameOver {
		return TickResult{GameOver: true, Cause: s.cause, Score: s.score, Length: s.body.Len()}
	}

	next, cause := nextHead(s.board, s.body, s.direction)
	if cause != CauseNone {
		res := TickResult{GameOver: true, Cause: cause, Score: s.score, Length: s.body.Len()}
		s.state = StateGameOver
		s.cause = cause
		if s.opts.AutoRestart {
			s.Reset()
		}
		return res
	}

	s.ticks++
	slide(s.body, next)
	s.moved = s.direction

	var res TickResult
	if next.Cell == s.food.Cell {
		res.Ate = true
		res.Grew, res.Reversed = s.consume()
	}

	res.Cells = s.body.Cells()
	res.Food = s.food
	res.Score = s.score
	res.Length = s.body.Len()
	return res
}

// consume applies growth, the optional reversal and the next food placement.
func (s *Session) consume() (grew, reversed bool) {
	eaten := s.food

	grew = grow(s.board, s.body, s.direction)
	if eaten.Reversed {
		s.direction = reverse(s.body, s.direction)
		s.moved = s.direction
		reversed = true
	}

	s.food = s.placer.Place(s.board, s.body, eaten.Cell)
	s.score++
	return grew, reversed
}
