package snake

import "slices"

// Segment is one occupied cell of the snake.
type Segment struct {
	Coord Coordinate
	Cell  int
}

// Body is the snake as a deque of segments plus an occupancy set.
//
// Segments live in a ring buffer with a physical front and back. The reversed
// flag decides which physical end is the head: when false the front is the
// head, when true the back is. Reverse therefore only flips the flag, and
// every later push or pop follows the new orientation.
//
// The occupancy set mirrors the ring exactly and is updated in the same call
// as every insert or removal.
type Body struct {
	ring     []Segment
	start    int
	n        int
	reversed bool
	occupied map[int]struct{}
}

// newBody returns a single-segment body; head and tail are the same segment.
func newBody(seg Segment) *Body {
	b := &Body{
		ring:     make([]Segment, 8),
		occupied: make(map[int]struct{}, 8),
	}
	b.pushFront(seg)
	b.occupied[seg.Cell] = struct{}{}
	return b
}

// Len returns the number of segments.
func (b *Body) Len() int {
	return b.n
}

// Head returns the leading segment.
func (b *Body) Head() Segment {
	return b.at(0)
}

// Tail returns the trailing segment.
func (b *Body) Tail() Segment {
	return b.at(b.n - 1)
}

// TailNeighbor returns the segment adjacent to the tail on the head side.
// ok is false for a single-segment body.
func (b *Body) TailNeighbor() (seg Segment, ok bool) {
	if b.n < 2 {
		return Segment{}, false
	}
	return b.at(b.n - 2), true
}

// Contains reports whether cell is occupied by the body.
func (b *Body) Contains(cell int) bool {
	_, ok := b.occupied[cell]
	return ok
}

// AdvanceHead inserts seg in front of the current head.
// The caller guarantees seg is free and adjacent to the head.
func (b *Body) AdvanceHead(seg Segment) {
	if b.reversed {
		b.pushBack(seg)
	} else {
		b.pushFront(seg)
	}
	b.occupied[seg.Cell] = struct{}{}
}

// RemoveTail drops the trailing segment. A single-segment body is left as is.
func (b *Body) RemoveTail() {
	if b.n <= 1 {
		return
	}
	var seg Segment
	if b.reversed {
		seg = b.popFront()
	} else {
		seg = b.popBack()
	}
	delete(b.occupied, seg.Cell)
}

// GrowAtTail appends seg beyond the current tail.
// The caller guarantees seg is free and adjacent to the tail.
func (b *Body) GrowAtTail(seg Segment) {
	if b.reversed {
		b.pushFront(seg)
	} else {
		b.pushBack(seg)
	}
	b.occupied[seg.Cell] = struct{}{}
}

// Reverse swaps head and tail. Reverse is its own inverse.
func (b *Body) Reverse() {
	b.reversed = !b.reversed
}

// Segments returns a copy of the body ordered from head to tail.
func (b *Body) Segments() []Segment {
	out := make([]Segment, b.n)
	for i := range out {
		out[i] = b.at(i)
	}
	return out
}

// Cells returns the occupied cell ids in ascending order.
func (b *Body) Cells() []int {
	cells := make([]int, 0, len(b.occupied))
	for c := range b.occupied {
		cells = append(cells, c)
	}
	slices.Sort(cells)
	return cells
}

// at returns the i-th segment counted from the head.
func (b *Body) at(i int) Segment {
	if b.reversed {
		i = b.n - 1 - i
	}
	return b.ring[(b.start+i)%len(b.ring)]
}

// --- ring buffer ---

func (b *Body) pushFront(seg Segment) {
	b.ensureCapacity()
	b.start = (b.start - 1 + len(b.ring)) % len(b.ring)
	b.ring[b.start] = seg
	b.n++
}

func (b *Body) pushBack(seg Segment) {
	b.ensureCapacity()
	b.ring[(b.start+b.n)%len(b.ring)] = seg
	b.n++
}

func (b *Body) popFront() Segment {
	seg := b.ring[b.start]
	b.ring[b.start] = Segment{}
	b.start = (b.start + 1) % len(b.ring)
	b.n--
	return seg
}

func (b *Body) popBack() Segment {
	i := (b.start + b.n - 1) % len(b.ring)
	seg := b.ring[i]
	b.ring[i] = Segment{}
	b.n--
	return seg
}

// ensureCapacity doubles the ring when full, unrolling it so start is 0.
func (b *Body) ensureCapacity() {
	if b.n < len(b.ring) {
		return
	}
	grown := make([]Segment, max(8, 2*len(b.ring)))
	for i := range b.n {
		grown[i] = b.ring[(b.start+i)%len(b.ring)]
	}
	b.ring = grown
	b.start = 0
}
