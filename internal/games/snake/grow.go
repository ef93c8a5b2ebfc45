package snake

// tailHeading returns the direction from the tail toward its neighbour.
// A single-segment body has no neighbour and falls back to heading.
func tailHeading(body *Body, heading Direction) Direction {
	next, ok := body.TailNeighbor()
	if !ok {
		return heading
	}
	return directionToward(body.Tail().Coord, next.Coord)
}

// grow extends the body by one segment straight behind the tail.
// It reports false when the growth cell is off the board or taken, in which
// case the body is left unchanged.
func grow(board Board, body *Body, heading Direction) bool {
	back := tailHeading(body, heading).Opposite()
	c := board.InDirection(body.Tail().Coord, back)
	if board.OutOfBounds(c) {
		return false
	}
	cell := board.CellID(c)
	if body.Contains(cell) {
		return false
	}
	body.GrowAtTail(Segment{Coord: c, Cell: cell})
	return true
}

// reverse flips the body end for end and returns the new heading: away from
// the old tail's neighbour, so the snake leaves through its former tail.
func reverse(body *Body, heading Direction) Direction {
	next := tailHeading(body, heading).Opposite()
	body.Reverse()
	return next
}
