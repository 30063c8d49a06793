package snake

// Snapshot captures the game state for tests, debugging and the headless runner.
type Snapshot struct {
	Tick     uint64    `yaml:"tick"`
	Score    int       `yaml:"score"`
	State    string    `yaml:"state"`
	Length   int       `yaml:"length"`
	Head     *Point    `yaml:"head,omitempty"`
	Dir      Direction `yaml:"direction"`
	Food     *Point    `yaml:"food,omitempty"`
	Won      bool      `yaml:"won"`
	Paused   bool      `yaml:"paused"`
	Occupied int       `yaml:"occupied_tiles"`
}

// Snapshot returns the current state.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:     g.tick,
		Score:    g.snake.Meals(),
		State:    g.snake.State().String(),
		Length:   g.snake.Length(),
		Dir:      g.snake.Direction(),
		Won:      g.won,
		Paused:   g.paused,
		Occupied: g.board.Count(OccupantBody),
	}
	if head, ok := g.snake.Head(); ok {
		snap.Head = &head
	}
	if g.food != nil && !g.food.Eaten {
		snap.Food = &Point{X: g.food.X, Y: g.food.Y}
	}
	return snap
}
