package snake

import (
	"errors"
	"fmt"
	"math/rand"
)

// DefaultReverseChance is the probability that new food carries the reversal effect.
const DefaultReverseChance = 0.3

// ErrInvalidChance is returned for reversal probabilities outside [0, 1].
var ErrInvalidChance = errors.New("snake: reverse chance must be within [0, 1]")

// Food is the single active food item. Cell 0 means there is no food
// because the board is full.
type Food struct {
	Cell     int
	Reversed bool
}

// FoodPlacer picks food cells and decides whether they reverse the snake.
type FoodPlacer struct {
	rng           *rand.Rand
	reverseChance float64
}

// NewFoodPlacer creates a placer drawing from rng.
func NewFoodPlacer(rng *rand.Rand, reverseChance float64) (*FoodPlacer, error) {
	if reverseChance < 0 || reverseChance > 1 {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidChance, reverseChance)
	}
	return &FoodPlacer{rng: rng, reverseChance: reverseChance}, nil
}

// Place returns the next food item: a uniformly random cell that is neither
// occupied by body nor equal to consumed, paired with its reversal flag.
//
// Candidates are drawn by rejection, which stays cheap until the board is
// nearly full. When no candidate exists Place returns the zero Food.
func (p *FoodPlacer) Place(board Board, body *Body, consumed int) Food {
	free := board.Cells() - body.Len()
	if consumed >= 1 && consumed <= board.Cells() && !body.Contains(consumed) {
		free--
	}
	if free <= 0 {
		return Food{}
	}

	var cell int
	for {
		cell = p.rng.Intn(board.Cells()) + 1
		if body.Contains(cell) || cell == consumed {
			continue
		}
		break
	}

	return Food{
		Cell:     cell,
		Reversed: p.rng.Float64() < p.reverseChance,
	}
}
