package snake

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestBoard(t *testing.T, w, h int) *Board {
	t.Helper()
	b, err := NewBoard(w, h)
	require.NoError(t, err)
	return b
}

func TestNewBoardRejectsBadSize(t *testing.T) {
	_, err := NewBoard(0, 5)
	require.Error(t, err)
	_, err = NewBoard(5, -1)
	require.Error(t, err)
}

func TestBoardStartsEmpty(t *testing.T) {
	b := newTestBoard(t, 4, 3)
	require.Equal(t, 4, b.Width())
	require.Equal(t, 3, b.Height())
	require.Len(t, b.EmptyTiles(), 12)
	require.Equal(t, 0, b.Count(OccupantBody))

	tile, err := b.TileAt(3, 2)
	require.NoError(t, err)
	require.Equal(t, 3, tile.X)
	require.Equal(t, 2, tile.Y)
	require.True(t, tile.IsOpen())
}

func TestBoardOutOfBounds(t *testing.T) {
	b := newTestBoard(t, 4, 3)

	tests := []struct {
		name string
		x, y int
	}{
		{"negative x", -1, 0},
		{"negative y", 0, -1},
		{"x at width", 4, 0},
		{"y at height", 0, 3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.False(t, b.InBounds(tc.x, tc.y))

			_, err := b.IsOpen(tc.x, tc.y)
			require.ErrorIs(t, err, ErrOutOfBounds)

			_, err = b.OccupantAt(tc.x, tc.y)
			require.ErrorIs(t, err, ErrOutOfBounds)

			require.ErrorIs(t, b.RemoveTile(tc.x, tc.y), ErrOutOfBounds)
			require.ErrorIs(t, b.AddTile(BodyTile(tc.x, tc.y)), ErrOutOfBounds)
		})
	}
}

func TestBoardAddAndRemoveTile(t *testing.T) {
	b := newTestBoard(t, 5, 5)

	require.NoError(t, b.AddTile(BodyTile(2, 3)))
	open, err := b.IsOpen(2, 3)
	require.NoError(t, err)
	require.False(t, open)

	occ, err := b.OccupantAt(2, 3)
	require.NoError(t, err)
	require.Equal(t, OccupantBody, occ)

	// Placing anything on an occupied cell is refused
	err = b.AddTile(BodyTile(2, 3))
	require.ErrorIs(t, err, ErrTileOccupied)
	_, err = PlaceFood(b, 2, 3, 1)
	require.ErrorIs(t, err, ErrTileOccupied)

	require.NoError(t, b.RemoveTile(2, 3))
	open, err = b.IsOpen(2, 3)
	require.NoError(t, err)
	require.True(t, open)

	// Removing an empty tile is a no-op
	require.NoError(t, b.RemoveTile(2, 3))
	require.Len(t, b.EmptyTiles(), 25)
}

func TestBoardEmptyTilesIsSnapshot(t *testing.T) {
	b := newTestBoard(t, 3, 3)
	require.NoError(t, b.AddTile(BodyTile(1, 1)))

	open := b.EmptyTiles()
	require.Len(t, open, 8)
	for _, tile := range open {
		require.False(t, tile.X == 1 && tile.Y == 1, "occupied tile listed as empty")
	}

	// Later changes do not leak into the returned slice
	require.NoError(t, b.AddTile(BodyTile(0, 0)))
	require.Len(t, open, 8)
	require.Len(t, b.EmptyTiles(), 7)
}

func TestFoodTileCarriesFood(t *testing.T) {
	b := newTestBoard(t, 3, 3)
	f, err := PlaceFood(b, 2, 1, 4)
	require.NoError(t, err)

	tile, err := b.TileAt(2, 1)
	require.NoError(t, err)
	require.Equal(t, OccupantFood, tile.Occupant())
	require.Same(t, f, tile.Food())
	require.Equal(t, 4, tile.Food().GrowAmount)
}

func TestSpawnFoodOnlyOnEmptyTiles(t *testing.T) {
	b := newTestBoard(t, 6, 6)
	for x := 0; x < 6; x++ {
		require.NoError(t, b.AddTile(BodyTile(x, 2)))
	}

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		f, err := SpawnFood(b, rng, 3)
		require.NoError(t, err)
		require.NotEqual(t, 2, f.Y, "food spawned on the snake")
		require.Equal(t, 3, f.GrowAmount)
		require.False(t, f.Eaten)
		require.NoError(t, b.RemoveTile(f.X, f.Y))
	}
}

func TestSpawnFoodOnFullBoard(t *testing.T) {
	b := newTestBoard(t, 30, 30)
	for x := 0; x < 30; x++ {
		for y := 0; y < 30; y++ {
			require.NoError(t, b.AddTile(BodyTile(x, y)))
		}
	}
	require.Equal(t, 900, b.Count(OccupantBody))

	_, err := SpawnFood(b, rand.New(rand.NewSource(1)), 3)
	require.ErrorIs(t, err, ErrNoSpace)
}
