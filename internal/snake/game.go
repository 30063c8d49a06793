package snake

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/snek/internal/core"
)

// Settings are the fixed parameters of a game.
type Settings struct {
	Width      int           // Horizontal tiles
	Height     int           // Vertical tiles
	Length     int           // Initial snake length
	GrowAmount int           // Segments gained per food item
	Speed      time.Duration // Elapsed time per snake move
	Start      Point         // Initial head position
	Direction  Direction     // Initial facing
}

// CenterStart returns the default head position for a board.
func CenterStart(width, height int) Point {
	return Point{X: width / 2, Y: height / 2}
}

// Validate reports settings that cannot produce a playable board.
func (s Settings) Validate() error {
	switch {
	case s.Width <= 0 || s.Height <= 0:
		return fmt.Errorf("snake: invalid board size %dx%d", s.Width, s.Height)
	case s.Length < 1:
		return fmt.Errorf("snake: initial length must be at least 1, got %d", s.Length)
	case s.GrowAmount < 0:
		return fmt.Errorf("snake: grow amount must not be negative, got %d", s.GrowAmount)
	case s.Speed <= 0:
		return fmt.Errorf("snake: speed must be positive, got %s", s.Speed)
	case s.Start.X < 0 || s.Start.Y < 0 || s.Start.X >= s.Width || s.Start.Y >= s.Height:
		return fmt.Errorf("snake: start (%d, %d) outside %dx%d board", s.Start.X, s.Start.Y, s.Width, s.Height)
	}
	return nil
}

// StepResult reports what happened during one tick.
type StepResult struct {
	State     core.GameState
	Ate       bool // The snake ate food this tick
	Died      bool // The snake collided this tick
	Won       bool // Food could not be respawned: the board is full
	Restarted bool // A fresh snake was built this tick
}

// Option configures a Game.
type Option func(*Game)

// WithObserver registers the lifecycle observer.
func WithObserver(o Observer) Option {
	return func(g *Game) {
		if o != nil {
			g.observer = o
		}
	}
}

// WithSeed seeds food placement.
func WithSeed(seed int64) Option {
	return func(g *Game) {
		g.rng = rand.New(rand.NewSource(seed))
	}
}

// Game owns the board, the snake and the current food, and advances them
// one tick at a time. It is not safe for concurrent use.
type Game struct {
	settings Settings
	rng      *rand.Rand
	observer Observer

	board *Board
	snake *Snake
	food  *Food

	tick    uint64
	paused  bool
	won     bool
	running bool
}

// New builds a game with a fresh board, snake and food.
func New(settings Settings, opts ...Option) (*Game, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	g := &Game{
		settings: settings,
		observer: NopObserver{},
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	if err := g.reset(); err != nil {
		return nil, err
	}
	return g, nil
}

// reset replaces board, snake and food. The start cell is always free
// because the board is rebuilt before the snake is placed.
func (g *Game) reset() error {
	board, err := NewBoard(g.settings.Width, g.settings.Height)
	if err != nil {
		return err
	}
	s, err := NewSnake(board, Options{
		Length:    g.settings.Length,
		Speed:     g.settings.Speed,
		Start:     g.settings.Start,
		Direction: g.settings.Direction,
	})
	if err != nil {
		return err
	}

	g.board = board
	g.snake = s
	g.food = nil
	g.won = false
	g.paused = false
	return g.respawnFood()
}

// respawnFood places new food, turning a full board into a win.
func (g *Game) respawnFood() error {
	f, err := SpawnFood(g.board, g.rng, g.settings.GrowAmount)
	if errors.Is(err, ErrNoSpace) {
		g.food = nil
		g.won = true
		return nil
	}
	if err != nil {
		return err
	}
	g.food = f
	return nil
}

// Start notifies the observer that the game is running.
func (g *Game) Start() {
	if g.running {
		return
	}
	g.running = true
	g.observer.GameStarted()
}

// Stop notifies the observer that the game has stopped.
func (g *Game) Stop() {
	if !g.running {
		return
	}
	g.running = false
	g.observer.GameStopped()
}

// Running reports whether Start was called without a matching Stop.
func (g *Game) Running() bool {
	return g.running
}

// Step advances the game by one tick of delta elapsed time.
//
// Steering actions are applied in arrival order; an action opposite to
// the snake's current facing is dropped. A restart request only takes
// effect once the previous snake is gone. Errors indicate a broken
// board invariant and should be treated as fatal.
func (g *Game) Step(in core.InputFrame, delta time.Duration) (StepResult, error) {
	g.tick++
	var res StepResult

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		res.State = g.State()
		return res, nil
	}

	g.applyInput(in)

	if in.Has(core.ActionRestart) && g.snake.Gone() {
		if err := g.reset(); err != nil {
			return res, fmt.Errorf("snake: restart: %w", err)
		}
		res.Restarted = true
	}

	wasDead := g.snake.Dead()
	meals := g.snake.Meals()
	if err := g.snake.Update(delta); err != nil {
		return res, fmt.Errorf("snake: tick %d: %w", g.tick, err)
	}
	res.Ate = g.snake.Meals() > meals
	res.Died = !wasDead && g.snake.Dead()

	if g.food == nil || g.food.Eaten {
		if err := g.respawnFood(); err != nil {
			return res, fmt.Errorf("snake: tick %d: %w", g.tick, err)
		}
	}

	res.Won = g.won
	res.State = g.State()
	return res, nil
}

func (g *Game) applyInput(in core.InputFrame) {
	if g.snake.Dead() {
		return
	}
	for _, a := range in.Actions() {
		if !a.IsDirectional() {
			continue
		}
		d, ok := actionDirection(a)
		if !ok {
			continue
		}
		if d == g.snake.Direction().Opposite() {
			continue
		}
		g.snake.SetNextDirection(d)
	}
}

func actionDirection(a core.Action) (Direction, bool) {
	switch a {
	case core.ActionUp:
		return DirUp, true
	case core.ActionDown:
		return DirDown, true
	case core.ActionLeft:
		return DirLeft, true
	case core.ActionRight:
		return DirRight, true
	}
	return DirUp, false
}

// State returns the host-facing summary.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.snake.Meals(),
		GameOver: g.snake.Gone(),
		Won:      g.won,
		Paused:   g.paused,
	}
}

// Board returns the board. Callers must treat it as read-only.
func (g *Game) Board() *Board {
	return g.board
}

// Snake returns the active snake.
func (g *Game) Snake() *Snake {
	return g.snake
}

// Food returns the active food, or nil when none could be placed.
func (g *Game) Food() *Food {
	return g.food
}

// Settings returns the game parameters.
func (g *Game) Settings() Settings {
	return g.settings
}

// Tick returns the number of Step calls so far.
func (g *Game) Tick() uint64 {
	return g.tick
}

// Validate checks the snake's chain and the food's tile against the board.
func (g *Game) Validate() error {
	if err := g.snake.Validate(); err != nil {
		return err
	}
	want := 0
	if g.food != nil && !g.food.Eaten {
		want = 1
		t, err := g.board.TileAt(g.food.X, g.food.Y)
		if err != nil {
			return err
		}
		if t.Food() != g.food {
			return fmt.Errorf("snake: food at (%d, %d) missing from board", g.food.X, g.food.Y)
		}
	}
	if n := g.board.Count(OccupantFood); n != want {
		return fmt.Errorf("snake: board has %d food tiles, expected %d", n, want)
	}
	return nil
}
