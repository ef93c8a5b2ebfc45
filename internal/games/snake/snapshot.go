package snake

// Snapshot is a read-only copy of the session for rendering and tests.
type Snapshot struct {
	Tick          uint64
	BoardSize     int
	OccupiedCells []int     // ascending
	Segments      []Segment // head first
	Head          Coordinate
	FoodCell      int
	FoodReversed  bool
	Score         int
	Length        int
	Direction     Direction
	State         State
	Cause         Cause
}

// Snapshot returns the current session state. The returned slices are copies.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Tick:          s.ticks,
		BoardSize:     s.board.Size(),
		OccupiedCells: s.body.Cells(),
		Segments:      s.body.Segments(),
		Head:          s.body.Head().Coord,
		FoodCell:      s.food.Cell,
		FoodReversed:  s.food.Reversed,
		Score:         s.score,
		Length:        s.body.Len(),
		Direction:     s.direction,
		State:         s.state,
		Cause:         s.cause,
	}
}
