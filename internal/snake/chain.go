package snake

import "fmt"

// Point is a board coordinate.
type Point struct {
	X, Y int
}

// segmentID indexes a segment in the chain's arena.
type segmentID int

const noSegment segmentID = -1

// segment is one body cell. prev points towards the head, next towards the tail.
type segment struct {
	pos  Point
	prev segmentID
	next segmentID
}

// chain is the snake's body: a doubly linked list of segments stored in an
// arena. Only head and tail ids are held outside the arena.
type chain struct {
	segs   []segment
	free   []segmentID
	head   segmentID
	tail   segmentID
	length int
}

// newChain returns a one-segment chain at p.
func newChain(p Point) *chain {
	c := &chain{head: noSegment, tail: noSegment}
	id := c.alloc(p, noSegment)
	c.head = id
	c.tail = id
	c.length = 1
	return c
}

func (c *chain) alloc(p Point, prev segmentID) segmentID {
	s := segment{pos: p, prev: prev, next: noSegment}
	if n := len(c.free); n > 0 {
		id := c.free[n-1]
		c.free = c.free[:n-1]
		c.segs[id] = s
		return id
	}
	c.segs = append(c.segs, s)
	return segmentID(len(c.segs) - 1)
}

func (c *chain) release(id segmentID) {
	c.segs[id] = segment{prev: noSegment, next: noSegment}
	c.free = append(c.free, id)
}

func (c *chain) empty() bool {
	return c.head == noSegment
}

func (c *chain) headPos() Point {
	return c.segs[c.head].pos
}

func (c *chain) tailPos() Point {
	return c.segs[c.tail].pos
}

// grow links n new segments after the tail, all sitting on the tail's cell.
func (c *chain) grow(n int) {
	if c.empty() {
		return
	}
	for i := 0; i < n; i++ {
		id := c.alloc(c.tailPos(), c.tail)
		c.segs[c.tail].next = id
		c.tail = id
		c.length++
	}
}

// shift moves the head to p and every other segment to where its
// predecessor was. It returns the tail's position before the move.
func (c *chain) shift(p Point) Point {
	next := p
	for id := c.head; id != noSegment; id = c.segs[id].next {
		prev := c.segs[id].pos
		c.segs[id].pos = next
		next = prev
	}
	return next
}

// popTail unlinks the tail segment and returns its position. When the
// tail was also the head the chain becomes empty and hadPrev is false.
func (c *chain) popTail() (pos Point, hadPrev bool) {
	old := c.tail
	pos = c.segs[old].pos
	prev := c.segs[old].prev

	if prev == noSegment {
		c.head = noSegment
		c.tail = noSegment
	} else {
		c.segs[prev].next = noSegment
		c.tail = prev
	}
	c.release(old)
	c.length--
	return pos, prev != noSegment
}

// positions returns segment positions from head to tail.
func (c *chain) positions() []Point {
	out := make([]Point, 0, c.length)
	for id := c.head; id != noSegment; id = c.segs[id].next {
		out = append(out, c.segs[id].pos)
	}
	return out
}

// check walks the chain and verifies the links agree with each other and
// with the recorded length.
func (c *chain) check() error {
	if c.head == noSegment || c.tail == noSegment {
		if c.head != c.tail || c.length != 0 {
			return fmt.Errorf("snake: chain half empty (head %d, tail %d, length %d)", c.head, c.tail, c.length)
		}
		return nil
	}
	if c.segs[c.head].prev != noSegment {
		return fmt.Errorf("snake: head %d has a predecessor", c.head)
	}

	steps := 0
	last := noSegment
	for id := c.head; id != noSegment; id = c.segs[id].next {
		if steps > c.length {
			return fmt.Errorf("snake: chain longer than %d, cycle suspected", c.length)
		}
		if c.segs[id].prev != last {
			return fmt.Errorf("snake: segment %d prev is %d, expected %d", id, c.segs[id].prev, last)
		}
		last = id
		steps++
	}
	if last != c.tail {
		return fmt.Errorf("snake: walk ended at %d, tail is %d", last, c.tail)
	}
	if steps != c.length {
		return fmt.Errorf("snake: walked %d segments, length is %d", steps, c.length)
	}
	return nil
}
