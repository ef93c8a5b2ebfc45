package snake

import (
	"slices"
	"testing"
)

// bodyOf builds a body from coordinates listed head first.
func bodyOf(b Board, coords ...Coordinate) *Body {
	last := coords[len(coords)-1]
	body := newBody(Segment{Coord: last, Cell: b.CellID(last)})
	for i := len(coords) - 2; i >= 0; i-- {
		body.AdvanceHead(Segment{Coord: coords[i], Cell: b.CellID(coords[i])})
	}
	return body
}

func coordsOf(body *Body) []Coordinate {
	segs := body.Segments()
	out := make([]Coordinate, len(segs))
	for i, s := range segs {
		out[i] = s.Coord
	}
	return out
}

// checkBody verifies the occupancy set mirrors the segments and that the
// segments form a connected path.
func checkBody(t *testing.T, b Board, body *Body) {
	t.Helper()

	segs := body.Segments()
	if len(segs) != body.Len() {
		t.Fatalf("Segments() has %d entries, Len() = %d", len(segs), body.Len())
	}

	cells := make([]int, 0, len(segs))
	for i, s := range segs {
		if b.OutOfBounds(s.Coord) {
			t.Fatalf("segment %d at %v is off the board", i, s.Coord)
		}
		if s.Cell != b.CellID(s.Coord) {
			t.Fatalf("segment %d cell %d does not match %v", i, s.Cell, s.Coord)
		}
		if i > 0 {
			p := segs[i-1].Coord
			if absInt(p.Row-s.Coord.Row)+absInt(p.Col-s.Coord.Col) != 1 {
				t.Fatalf("segments %d and %d are not adjacent: %v %v", i-1, i, p, s.Coord)
			}
		}
		cells = append(cells, s.Cell)
	}
	slices.Sort(cells)

	if got := body.Cells(); !slices.Equal(got, cells) {
		t.Fatalf("Cells() = %v, segments cover %v", got, cells)
	}
	if len(slices.Compact(slices.Clone(cells))) != len(cells) {
		t.Fatalf("duplicate cells in body: %v", cells)
	}
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func TestNewBodySingleSegment(t *testing.T) {
	b, _ := NewBoard(5)
	body := bodyOf(b, Coordinate{2, 2})

	if body.Len() != 1 {
		t.Fatalf("Len() = %d, expected 1", body.Len())
	}
	if body.Head() != body.Tail() {
		t.Error("head and tail should be the same segment")
	}
	if _, ok := body.TailNeighbor(); ok {
		t.Error("single segment has no tail neighbour")
	}

	body.RemoveTail()
	if body.Len() != 1 {
		t.Error("RemoveTail must not empty the body")
	}
	checkBody(t, b, body)
}

func TestBodyHeadAndTail(t *testing.T) {
	b, _ := NewBoard(5)
	body := bodyOf(b, Coordinate{1, 3}, Coordinate{1, 2}, Coordinate{1, 1})

	if body.Head().Coord != (Coordinate{1, 3}) {
		t.Errorf("Head() = %v", body.Head().Coord)
	}
	if body.Tail().Coord != (Coordinate{1, 1}) {
		t.Errorf("Tail() = %v", body.Tail().Coord)
	}
	n, ok := body.TailNeighbor()
	if !ok || n.Coord != (Coordinate{1, 2}) {
		t.Errorf("TailNeighbor() = %v, %v", n.Coord, ok)
	}
	if !body.Contains(b.CellID(Coordinate{1, 2})) {
		t.Error("Contains should report the middle segment")
	}
	if body.Contains(b.CellID(Coordinate{0, 0})) {
		t.Error("Contains should not report a free cell")
	}
	checkBody(t, b, body)
}

func TestReverseTwiceRestores(t *testing.T) {
	b, _ := NewBoard(6)
	body := bodyOf(b, Coordinate{2, 3}, Coordinate{2, 2}, Coordinate{3, 2}, Coordinate{4, 2})
	before := coordsOf(body)

	body.Reverse()
	reversed := coordsOf(body)
	want := slices.Clone(before)
	slices.Reverse(want)
	if !slices.Equal(reversed, want) {
		t.Fatalf("after Reverse: %v, expected %v", reversed, want)
	}
	checkBody(t, b, body)

	body.Reverse()
	if got := coordsOf(body); !slices.Equal(got, before) {
		t.Errorf("after Reverse twice: %v, expected %v", got, before)
	}
}

func TestOperationsFollowOrientation(t *testing.T) {
	b, _ := NewBoard(6)
	body := bodyOf(b, Coordinate{0, 2}, Coordinate{0, 1}, Coordinate{0, 0})
	body.Reverse()

	// Head is now (0,0); advancing moves that end.
	body.AdvanceHead(Segment{Coord: Coordinate{1, 0}, Cell: b.CellID(Coordinate{1, 0})})
	body.RemoveTail()

	want := []Coordinate{{1, 0}, {0, 0}, {0, 1}}
	if got := coordsOf(body); !slices.Equal(got, want) {
		t.Fatalf("segments = %v, expected %v", got, want)
	}

	body.GrowAtTail(Segment{Coord: Coordinate{0, 2}, Cell: b.CellID(Coordinate{0, 2})})
	want = append(want, Coordinate{0, 2})
	if got := coordsOf(body); !slices.Equal(got, want) {
		t.Fatalf("after grow: %v, expected %v", got, want)
	}
	checkBody(t, b, body)
}

func TestBodyRingGrowth(t *testing.T) {
	b, _ := NewBoard(8)
	body := bodyOf(b, Coordinate{0, 0})

	// Snake path through the first rows, longer than the initial ring.
	var path []Coordinate
	for row := 0; row < 4; row++ {
		for i := 0; i < 8; i++ {
			col := i
			if row%2 == 1 {
				col = 7 - i
			}
			path = append(path, Coordinate{row, col})
		}
	}

	for i, c := range path[1:] {
		seg := Segment{Coord: c, Cell: b.CellID(c)}
		if i%2 == 0 {
			body.Reverse()
			body.GrowAtTail(seg)
			body.Reverse()
		} else {
			body.AdvanceHead(seg)
		}
		checkBody(t, b, body)
	}

	if body.Len() != len(path) {
		t.Fatalf("Len() = %d, expected %d", body.Len(), len(path))
	}
	if body.Head().Coord != path[len(path)-1] {
		t.Errorf("Head() = %v, expected %v", body.Head().Coord, path[len(path)-1])
	}
	if body.Tail().Coord != path[0] {
		t.Errorf("Tail() = %v, expected %v", body.Tail().Coord, path[0])
	}

	// Slide it back down to two segments.
	for body.Len() > 2 {
		body.RemoveTail()
		checkBody(t, b, body)
	}
}

func TestSegmentsIsCopy(t *testing.T) {
	b, _ := NewBoard(5)
	body := bodyOf(b, Coordinate{1, 1}, Coordinate{1, 0})

	segs := body.Segments()
	segs[0] = Segment{}
	cells := body.Cells()
	cells[0] = -1

	if body.Head().Coord != (Coordinate{1, 1}) {
		t.Error("mutating Segments() result changed the body")
	}
	checkBody(t, b, body)
}
