package snake

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/snek/internal/core"
)

func newTestGame(t *testing.T, s Settings, opts ...Option) *Game {
	t.Helper()
	g, err := New(s, append([]Option{WithSeed(42)}, opts...)...)
	require.NoError(t, err)
	require.NoError(t, g.Validate())
	return g
}

// moveFood puts the current food on a cell out of the snake's way.
func moveFood(t *testing.T, g *Game, x, y int) {
	t.Helper()
	require.NoError(t, g.board.RemoveTile(g.food.X, g.food.Y))
	f, err := PlaceFood(g.board, x, y, g.settings.GrowAmount)
	require.NoError(t, err)
	g.food = f
}

func input(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func smallSettings() Settings {
	return Settings{
		Width:      8,
		Height:     8,
		Length:     3,
		GrowAmount: 2,
		Speed:      10 * time.Millisecond,
		Start:      Point{X: 4, Y: 4},
		Direction:  DirUp,
	}
}

func TestSettingsValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Settings)
	}{
		{"zero width", func(s *Settings) { s.Width = 0 }},
		{"zero length", func(s *Settings) { s.Length = 0 }},
		{"negative grow", func(s *Settings) { s.GrowAmount = -1 }},
		{"zero speed", func(s *Settings) { s.Speed = 0 }},
		{"start outside", func(s *Settings) { s.Start = Point{X: 8, Y: 0} }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := smallSettings()
			tc.mutate(&s)
			require.Error(t, s.Validate())
			_, err := New(s)
			require.Error(t, err)
		})
	}

	require.NoError(t, smallSettings().Validate())
	require.Equal(t, Point{X: 15, Y: 15}, CenterStart(30, 30))
}

func TestGameEndToEndStraightRun(t *testing.T) {
	g := newTestGame(t, Settings{
		Width:      30,
		Height:     30,
		Length:     15,
		GrowAmount: 3,
		Speed:      150 * time.Millisecond, // speed factor 10 at a 15ms tick
		Start:      Point{X: 15, Y: 15},
		Direction:  DirUp,
	})
	moveFood(t, g, 0, 0)

	for i := 0; i < 10; i++ {
		res, err := g.Step(core.NewInputFrame(), 150*time.Millisecond)
		require.NoError(t, err)
		require.False(t, res.Died)
		require.Equal(t, 15, g.snake.Length())
		require.NoError(t, g.Validate())
	}

	head, ok := g.snake.Head()
	require.True(t, ok)
	require.Equal(t, Point{X: 15, Y: 5}, head)

	for x := 0; x < 30; x++ {
		for y := 0; y < 30; y++ {
			occ, err := g.board.OccupantAt(x, y)
			require.NoError(t, err)
			onPath := x == 15 && y >= 5 && y <= 15
			if occ == OccupantBody {
				require.True(t, onPath, "body tile at (%d, %d) off the path", x, y)
			}
			if onPath {
				require.Equal(t, OccupantBody, occ, "path cell (%d, %d) not covered", x, y)
			}
		}
	}
}

func TestGameIgnoresReversal(t *testing.T) {
	g := newTestGame(t, smallSettings())

	_, err := g.Step(input(core.ActionDown), 0)
	require.NoError(t, err)
	require.Equal(t, DirUp, g.snake.NextDirection())

	// Reversal is judged against the facing, not the buffered direction
	_, err = g.Step(input(core.ActionLeft, core.ActionDown), 0)
	require.NoError(t, err)
	require.Equal(t, DirLeft, g.snake.NextDirection())
}

func TestGameLastSteeringInputWins(t *testing.T) {
	g := newTestGame(t, smallSettings())
	moveFood(t, g, 0, 7)

	_, err := g.Step(input(core.ActionLeft, core.ActionRight), 10*time.Millisecond)
	require.NoError(t, err)

	head, _ := g.snake.Head()
	require.Equal(t, Point{X: 5, Y: 4}, head)
	require.Equal(t, DirRight, g.snake.Direction())
}

func TestGameEatAndRespawn(t *testing.T) {
	g := newTestGame(t, smallSettings())
	moveFood(t, g, 4, 3)
	eaten := g.food

	res, err := g.Step(core.NewInputFrame(), 10*time.Millisecond)
	require.NoError(t, err)
	require.True(t, res.Ate)
	require.True(t, eaten.Eaten)
	require.Equal(t, 1, res.State.Score)
	require.Equal(t, 5, g.snake.Length())

	require.NotNil(t, g.food)
	require.NotSame(t, eaten, g.food)
	require.False(t, g.food.Eaten)
	require.NoError(t, g.Validate())
}

func TestGameWinsWhenBoardFills(t *testing.T) {
	g := newTestGame(t, Settings{
		Width:      2,
		Height:     1,
		Length:     1,
		GrowAmount: 1,
		Speed:      time.Millisecond,
		Start:      Point{X: 0, Y: 0},
		Direction:  DirRight,
	})
	require.Equal(t, 1, g.food.X, "only one free tile for food")

	res, err := g.Step(core.NewInputFrame(), time.Millisecond)
	require.NoError(t, err)
	require.True(t, res.Ate)
	require.True(t, res.Won)
	require.True(t, res.State.Won)
	require.Nil(t, g.Food())
	require.Equal(t, 2, g.board.Count(OccupantBody))
	require.NoError(t, g.Validate())
}

func TestGameStartsWonOnFullBoard(t *testing.T) {
	g := newTestGame(t, Settings{
		Width:     1,
		Height:    1,
		Length:    1,
		Speed:     time.Millisecond,
		Direction: DirUp,
	})
	require.True(t, g.State().Won)
	require.Nil(t, g.Food())
}

func TestGameDeathAndRestart(t *testing.T) {
	s := smallSettings()
	s.Start = Point{X: 4, Y: 0}
	g := newTestGame(t, s)

	res, err := g.Step(core.NewInputFrame(), 10*time.Millisecond)
	require.NoError(t, err)
	require.True(t, res.Died)
	require.False(t, res.State.GameOver)

	// Restart is refused while the snake is still shrinking
	res, err = g.Step(input(core.ActionRestart), 0)
	require.NoError(t, err)
	require.False(t, res.Restarted)
	require.Equal(t, 2, g.snake.Length())

	// Steering a dying snake does nothing
	_, err = g.Step(input(core.ActionRight), 0)
	require.NoError(t, err)
	require.Equal(t, DirUp, g.snake.NextDirection())

	res, err = g.Step(core.NewInputFrame(), 0)
	require.NoError(t, err)
	require.True(t, res.State.GameOver)
	require.Equal(t, 0, g.board.Count(OccupantBody))

	old := g.snake
	res, err = g.Step(input(core.ActionRestart), 0)
	require.NoError(t, err)
	require.True(t, res.Restarted)
	require.NotSame(t, old, g.snake)
	require.Equal(t, StateAlive, g.snake.State())
	require.Equal(t, 3, g.snake.Length())
	require.Equal(t, 0, res.State.Score)
	require.NoError(t, g.Validate())
}

func TestGamePause(t *testing.T) {
	g := newTestGame(t, smallSettings())
	moveFood(t, g, 0, 7)

	res, err := g.Step(input(core.ActionPause), 10*time.Millisecond)
	require.NoError(t, err)
	require.True(t, res.State.Paused)
	head, _ := g.snake.Head()
	require.Equal(t, Point{X: 4, Y: 4}, head)

	_, err = g.Step(core.NewInputFrame(), time.Second)
	require.NoError(t, err)
	head, _ = g.snake.Head()
	require.Equal(t, Point{X: 4, Y: 4}, head)

	res, err = g.Step(input(core.ActionPause), 10*time.Millisecond)
	require.NoError(t, err)
	require.False(t, res.State.Paused)
	head, _ = g.snake.Head()
	require.Equal(t, Point{X: 4, Y: 3}, head)
}

func TestGameObserver(t *testing.T) {
	var started, stopped int
	g := newTestGame(t, smallSettings(), WithObserver(ObserverFuncs{
		OnStart: func() { started++ },
		OnStop:  func() { stopped++ },
	}))

	g.Stop()
	require.Equal(t, 0, stopped, "stop before start")

	g.Start()
	g.Start()
	require.True(t, g.Running())
	require.Equal(t, 1, started)

	g.Stop()
	require.False(t, g.Running())
	require.Equal(t, 1, stopped)
}

func TestGameDeterministicWithSeed(t *testing.T) {
	frames := []core.InputFrame{
		input(), input(core.ActionLeft), input(), input(core.ActionDown),
		input(), input(core.ActionRight), input(), input(core.ActionUp),
	}

	run := func() Snapshot {
		g := newTestGame(t, smallSettings(), WithSeed(99))
		for i := 0; i < 40; i++ {
			_, err := g.Step(frames[i%len(frames)], 10*time.Millisecond)
			require.NoError(t, err)
		}
		return g.Snapshot()
	}

	require.Equal(t, run(), run())
}

func TestGameRender(t *testing.T) {
	g := newTestGame(t, smallSettings())
	moveFood(t, g, 0, 0)

	screen := core.NewScreen(40, 14)
	g.Render(screen, DefaultRenderOptions())
	require.Contains(t, screen.Row(0), "Score: 0")

	w, _ := g.RequiredSize(DefaultRenderOptions())
	left := (40 - w) / 2
	// Frame starts below the HUD; food at tile (0,0) and head at (4,4)
	require.Equal(t, '●', screen.Get(left+1, 3))
	require.Equal(t, '█', screen.Get(left+1+4*2, 3+4))

	small := core.NewScreen(40, 5)
	g.Render(small, DefaultRenderOptions())
	require.Contains(t, small.String(), "Window too small")
}

func TestGameBoardString(t *testing.T) {
	g := newTestGame(t, Settings{
		Width:      4,
		Height:     3,
		Length:     2,
		GrowAmount: 1,
		Speed:      time.Millisecond,
		Start:      Point{X: 1, Y: 2},
		Direction:  DirUp,
	})
	moveFood(t, g, 3, 0)

	_, err := g.Step(core.NewInputFrame(), time.Millisecond)
	require.NoError(t, err)
	require.Equal(t, "...*\n.O..\n.o..", g.BoardString())

	snap := g.Snapshot()
	require.Equal(t, "alive", snap.State)
	require.Equal(t, &Point{X: 1, Y: 1}, snap.Head)
	require.Equal(t, &Point{X: 3, Y: 0}, snap.Food)
	require.Equal(t, 2, snap.Occupied)
}
