package snake

import (
	"fmt"
	"math/rand"
)

// Food is a consumable item occupying one tile.
type Food struct {
	X, Y       int
	GrowAmount int  // Segments added to the snake that eats it
	Eaten      bool // Set by the snake; the game replaces eaten food
}

// SpawnFood places food on a uniformly chosen empty tile and registers it
// on the board. It fails with ErrNoSpace when the board is full.
func SpawnFood(board *Board, rng *rand.Rand, growAmount int) (*Food, error) {
	open := board.EmptyTiles()
	if len(open) == 0 {
		return nil, ErrNoSpace
	}

	t := open[rng.Intn(len(open))]
	return PlaceFood(board, t.X, t.Y, growAmount)
}

// PlaceFood puts food on a specific tile.
func PlaceFood(board *Board, x, y, growAmount int) (*Food, error) {
	f := &Food{X: x, Y: y, GrowAmount: growAmount}
	if err := board.AddTile(FoodTile(f)); err != nil {
		return nil, fmt.Errorf("snake: placing food: %w", err)
	}
	return f, nil
}
