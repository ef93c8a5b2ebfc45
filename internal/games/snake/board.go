package snake

import (
	"errors"
	"fmt"
)

// MinBoardSize is the smallest board that can hold a snake and a food item.
const MinBoardSize = 3

// ErrBoardTooSmall is returned by NewBoard for sizes below MinBoardSize.
var ErrBoardTooSmall = errors.New("snake: board too small")

// Coordinate is a (row, col) position on the board.
type Coordinate struct {
	Row, Col int
}

// Board is an immutable size x size grid.
// Cells are numbered 1..size*size in row-major order.
type Board struct {
	size int
}

// NewBoard creates a square board with the given side length.
func NewBoard(size int) (Board, error) {
	if size < MinBoardSize {
		return Board{}, fmt.Errorf("%w: size %d, need at least %d", ErrBoardTooSmall, size, MinBoardSize)
	}
	return Board{size: size}, nil
}

// Size returns the side length of the board.
func (b Board) Size() int {
	return b.size
}

// Cells returns the number of cells on the board.
func (b Board) Cells() int {
	return b.size * b.size
}

// CellID returns the cell id of an on-board coordinate.
func (b Board) CellID(c Coordinate) int {
	return c.Row*b.size + c.Col + 1
}

// CoordOf is the inverse of CellID.
func (b Board) CoordOf(cell int) Coordinate {
	return Coordinate{Row: (cell - 1) / b.size, Col: (cell - 1) % b.size}
}

// InDirection returns the coordinate one step from c in direction d.
// The result may lie off the board.
func (b Board) InDirection(c Coordinate, d Direction) Coordinate {
	switch d {
	case DirUp:
		return Coordinate{Row: c.Row - 1, Col: c.Col}
	case DirDown:
		return Coordinate{Row: c.Row + 1, Col: c.Col}
	case DirLeft:
		return Coordinate{Row: c.Row, Col: c.Col - 1}
	case DirRight:
		return Coordinate{Row: c.Row, Col: c.Col + 1}
	}
	panic(fmt.Sprintf("snake: invalid direction %d", d))
}

// OutOfBounds reports whether either axis of c falls outside [0, size).
func (b Board) OutOfBounds(c Coordinate) bool {
	return c.Row < 0 || c.Col < 0 || c.Row >= b.size || c.Col >= b.size
}

// startCoord is where a fresh snake spawns: a third of the way in on both axes.
func (b Board) startCoord() Coordinate {
	// round(size/3) without floats
	p := (b.size + 1) / 3
	return Coordinate{Row: p, Col: p}
}
