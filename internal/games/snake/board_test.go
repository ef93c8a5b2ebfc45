package snake

import (
	"errors"
	"testing"
)

func TestNewBoardTooSmall(t *testing.T) {
	for _, size := range []int{-1, 0, 1, 2} {
		if _, err := NewBoard(size); !errors.Is(err, ErrBoardTooSmall) {
			t.Errorf("NewBoard(%d) = %v, expected ErrBoardTooSmall", size, err)
		}
	}
	if _, err := NewBoard(MinBoardSize); err != nil {
		t.Errorf("NewBoard(%d) failed: %v", MinBoardSize, err)
	}
}

func TestCellIDRoundTrip(t *testing.T) {
	b, _ := NewBoard(10)

	tests := []struct {
		c    Coordinate
		cell int
	}{
		{Coordinate{0, 0}, 1},
		{Coordinate{0, 9}, 10},
		{Coordinate{1, 0}, 11},
		{Coordinate{3, 3}, 34},
		{Coordinate{3, 8}, 39},
		{Coordinate{9, 9}, 100},
	}

	for _, tc := range tests {
		if got := b.CellID(tc.c); got != tc.cell {
			t.Errorf("CellID(%v) = %d, expected %d", tc.c, got, tc.cell)
		}
		if got := b.CoordOf(tc.cell); got != tc.c {
			t.Errorf("CoordOf(%d) = %v, expected %v", tc.cell, got, tc.c)
		}
	}

	// Every cell maps back to itself
	for cell := 1; cell <= b.Cells(); cell++ {
		if got := b.CellID(b.CoordOf(cell)); got != cell {
			t.Fatalf("CellID(CoordOf(%d)) = %d", cell, got)
		}
	}
}

func TestInDirection(t *testing.T) {
	b, _ := NewBoard(5)
	c := Coordinate{2, 2}

	tests := []struct {
		d    Direction
		want Coordinate
	}{
		{DirUp, Coordinate{1, 2}},
		{DirDown, Coordinate{3, 2}},
		{DirLeft, Coordinate{2, 1}},
		{DirRight, Coordinate{2, 3}},
	}

	for _, tc := range tests {
		t.Run(tc.d.String(), func(t *testing.T) {
			if got := b.InDirection(c, tc.d); got != tc.want {
				t.Errorf("InDirection(%v, %v) = %v, expected %v", c, tc.d, got, tc.want)
			}
		})
	}
}

func TestInDirectionInvalidPanics(t *testing.T) {
	b, _ := NewBoard(5)
	defer func() {
		if recover() == nil {
			t.Error("InDirection with an invalid direction should panic")
		}
	}()
	b.InDirection(Coordinate{2, 2}, Direction(42))
}

func TestOutOfBounds(t *testing.T) {
	b, _ := NewBoard(4)

	tests := []struct {
		c    Coordinate
		want bool
	}{
		{Coordinate{0, 0}, false},
		{Coordinate{3, 3}, false},
		{Coordinate{-1, 0}, true},
		{Coordinate{0, -1}, true},
		{Coordinate{4, 0}, true},
		{Coordinate{0, 4}, true},
	}

	for _, tc := range tests {
		if got := b.OutOfBounds(tc.c); got != tc.want {
			t.Errorf("OutOfBounds(%v) = %v, expected %v", tc.c, got, tc.want)
		}
	}
}

func TestStartCoord(t *testing.T) {
	tests := []struct {
		size int
		want int
	}{
		{3, 1},
		{4, 1},
		{5, 2},
		{10, 3},
		{11, 4},
		{20, 7},
	}

	for _, tc := range tests {
		b, _ := NewBoard(tc.size)
		got := b.startCoord()
		if got.Row != tc.want || got.Col != tc.want {
			t.Errorf("size %d: startCoord() = %v, expected (%d,%d)", tc.size, got, tc.want, tc.want)
		}
	}
}
