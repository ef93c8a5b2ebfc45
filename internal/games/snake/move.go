package snake

// Cause describes why a game ended.
type Cause string

const (
	CauseNone Cause = ""
	CauseWall Cause = "wall"
	CauseSelf Cause = "self"
)

// Describe returns a short human-readable reason.
func (c Cause) Describe() string {
	switch c {
	case CauseWall:
		return "Hit the wall"
	case CauseSelf:
		return "Bit yourself"
	default:
		return ""
	}
}

// nextHead computes the segment the head moves into when heading in dir.
// It does not touch the body. A non-empty Cause means the move is fatal.
//
// The tail cell still counts as occupied: the snake cannot chase its own tail
// into the cell the tail is about to leave.
func nextHead(board Board, body *Body, dir Direction) (Segment, Cause) {
	next := board.InDirection(body.Head().Coord, dir)
	if board.OutOfBounds(next) {
		return Segment{}, CauseWall
	}
	cell := board.CellID(next)
	if body.Contains(cell) {
		return Segment{}, CauseSelf
	}
	return Segment{Coord: next, Cell: cell}, CauseNone
}

// slide moves the body one step onto seg keeping its length.
func slide(body *Body, seg Segment) {
	body.AdvanceHead(seg)
	body.RemoveTail()
}
