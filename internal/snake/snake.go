package snake

import (
	"fmt"
	"time"
)

// State is the snake's life cycle stage.
type State int

const (
	StateAlive State = iota
	StateDying       // shrinking one segment per tick
	StateDead        // no segments left
)

func (s State) String() string {
	switch s {
	case StateAlive:
		return "alive"
	case StateDying:
		return "dying"
	case StateDead:
		return "dead"
	default:
		return "unknown"
	}
}

// Options describe a new snake.
type Options struct {
	Length    int           // Total segments, head included
	Speed     time.Duration // Elapsed time needed for one move
	Start     Point         // Head position
	Direction Direction     // Initial facing
}

// Snake owns a chain of body segments on a shared board.
type Snake struct {
	board         *Board
	body          *chain
	direction     Direction
	nextDirection Direction
	speed         time.Duration
	timeSinceMove time.Duration
	state         State
	meals         int
}

// NewSnake places a snake's head on board and stacks the remaining
// segments on the same cell; they unfold as the snake moves.
func NewSnake(board *Board, opts Options) (*Snake, error) {
	if opts.Length < 1 {
		return nil, fmt.Errorf("snake: length must be at least 1, got %d", opts.Length)
	}
	if opts.Speed <= 0 {
		return nil, fmt.Errorf("snake: speed must be positive, got %s", opts.Speed)
	}
	if err := board.AddTile(BodyTile(opts.Start.X, opts.Start.Y)); err != nil {
		return nil, fmt.Errorf("snake: placing head: %w", err)
	}

	s := &Snake{
		board:         board,
		body:          newChain(opts.Start),
		direction:     opts.Direction,
		nextDirection: opts.Direction,
		speed:         opts.Speed,
		state:         StateAlive,
	}
	s.Grow(opts.Length - 1)
	return s, nil
}

// Length returns the number of segments in the chain.
func (s *Snake) Length() int {
	return s.body.length
}

// State returns the life cycle stage.
func (s *Snake) State() State {
	return s.state
}

// Dead reports whether the snake has collided, including while it is
// still shrinking.
func (s *Snake) Dead() bool {
	return s.state != StateAlive
}

// Gone reports whether the snake is dead and fully removed from the board.
func (s *Snake) Gone() bool {
	return s.state == StateDead
}

// Direction returns the direction of the last move.
func (s *Snake) Direction() Direction {
	return s.direction
}

// NextDirection returns the direction the next move will take.
func (s *Snake) NextDirection() Direction {
	return s.nextDirection
}

// SetNextDirection buffers d for the next move. Callers are responsible
// for refusing reversals; the snake applies whatever it is given.
func (s *Snake) SetNextDirection(d Direction) {
	s.nextDirection = d
}

// Speed returns the time needed for one move.
func (s *Snake) Speed() time.Duration {
	return s.speed
}

// Meals returns how many food items the snake has eaten.
func (s *Snake) Meals() int {
	return s.meals
}

// Head returns the head position; ok is false once the chain is empty.
func (s *Snake) Head() (p Point, ok bool) {
	if s.body.empty() {
		return Point{}, false
	}
	return s.body.headPos(), true
}

// Tail returns the tail position; ok is false once the chain is empty.
func (s *Snake) Tail() (p Point, ok bool) {
	if s.body.empty() {
		return Point{}, false
	}
	return s.body.tailPos(), true
}

// Positions returns the segment positions from head to tail.
func (s *Snake) Positions() []Point {
	return s.body.positions()
}

// Update advances the snake by delta. An alive snake moves once when
// enough time has accumulated; the remainder carries over. A dying snake
// loses one tail segment per call regardless of timing.
func (s *Snake) Update(delta time.Duration) error {
	switch s.state {
	case StateDead:
		return nil
	case StateDying:
		return s.Shrink()
	}

	s.timeSinceMove += delta
	if s.timeSinceMove < s.speed {
		return nil
	}

	s.direction = s.nextDirection
	err := s.move()
	s.timeSinceMove = max(0, s.timeSinceMove-s.speed)
	return err
}

// move takes one step in the current direction. Collisions switch the
// snake to dying without moving it.
func (s *Snake) move() error {
	head := s.body.headPos()
	dx, dy := s.direction.Delta()
	target := Point{X: head.X + dx, Y: head.Y + dy}

	if !s.board.InBounds(target.X, target.Y) {
		s.state = StateDying
		return nil
	}

	tile, err := s.board.TileAt(target.X, target.Y)
	if err != nil {
		return err
	}
	switch tile.Occupant() {
	case OccupantBody:
		s.state = StateDying
		return nil
	case OccupantFood:
		if err := s.eat(tile); err != nil {
			return err
		}
	}

	oldTail := s.body.shift(target)
	if err := s.board.AddTile(BodyTile(target.X, target.Y)); err != nil {
		return fmt.Errorf("snake: moving head: %w", err)
	}
	// A tail that stayed put (fresh growth) still covers its cell.
	if s.body.tailPos() != oldTail {
		if err := s.board.RemoveTile(oldTail.X, oldTail.Y); err != nil {
			return fmt.Errorf("snake: vacating tail: %w", err)
		}
	}
	return nil
}

func (s *Snake) eat(tile Tile) error {
	f := tile.Food()
	if err := s.board.RemoveTile(tile.X, tile.Y); err != nil {
		return fmt.Errorf("snake: eating: %w", err)
	}
	grow := 0
	if f != nil {
		f.Eaten = true
		grow = f.GrowAmount
	}
	s.meals++
	s.Grow(grow)
	return nil
}

// Grow appends n segments at the tail's current cell.
func (s *Snake) Grow(n int) {
	if n <= 0 {
		return
	}
	s.body.grow(n)
}

// Shrink removes the tail segment. The last segment is only removed while
// dying, which leaves the snake dead.
func (s *Snake) Shrink() error {
	if s.body.empty() {
		return nil
	}
	if s.body.length == 1 && s.state == StateAlive {
		return nil
	}

	pos, hadPrev := s.body.popTail()
	if !hadPrev {
		s.state = StateDead
		return s.board.RemoveTile(pos.X, pos.Y)
	}
	// Stacked segments share a cell; only free it when the last one leaves.
	if s.body.tailPos() != pos {
		return s.board.RemoveTile(pos.X, pos.Y)
	}
	return nil
}

// Validate checks that the chain links are consistent and that the board
// shows a body tile on exactly the cells the chain covers.
func (s *Snake) Validate() error {
	if err := s.body.check(); err != nil {
		return err
	}

	cells := make(map[Point]struct{}, s.body.length)
	for _, p := range s.body.positions() {
		cells[p] = struct{}{}
		occ, err := s.board.OccupantAt(p.X, p.Y)
		if err != nil {
			return err
		}
		if occ != OccupantBody {
			return fmt.Errorf("snake: segment at (%d, %d) sits on %s tile", p.X, p.Y, occ)
		}
	}
	if n := s.board.Count(OccupantBody); n != len(cells) {
		return fmt.Errorf("snake: board has %d body tiles, chain covers %d cells", n, len(cells))
	}
	return nil
}
