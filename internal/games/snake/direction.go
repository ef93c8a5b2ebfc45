package snake

import "fmt"

// Direction represents the snake's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Valid reports whether d is one of the four headings.
func (d Direction) Valid() bool {
	return d >= DirRight && d <= DirUp
}

// Opposite returns the reverse heading. Opposite is its own inverse.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	}
	panic(fmt.Sprintf("snake: invalid direction %d", d))
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// directionToward returns the heading that leads from a to its grid neighbour b.
// Callers only pass adjacent segments of a body, so any other geometry is a
// broken body invariant.
func directionToward(a, b Coordinate) Direction {
	switch {
	case b.Row == a.Row && b.Col == a.Col+1:
		return DirRight
	case b.Row == a.Row && b.Col == a.Col-1:
		return DirLeft
	case b.Col == a.Col && b.Row == a.Row+1:
		return DirDown
	case b.Col == a.Col && b.Row == a.Row-1:
		return DirUp
	}
	panic(fmt.Sprintf("snake: segments %v and %v are not adjacent", a, b))
}
