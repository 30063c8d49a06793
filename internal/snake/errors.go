package snake

import "errors"

var (
	// ErrOutOfBounds is returned when a coordinate lies outside the board.
	// Move logic checks bounds first, so seeing it means a bug.
	ErrOutOfBounds = errors.New("snake: coordinate out of bounds")

	// ErrTileOccupied is returned when a tile is placed on a cell that is not open.
	ErrTileOccupied = errors.New("snake: tile is not empty")

	// ErrNoSpace is returned when food cannot be placed because every tile
	// is taken. The game reports it as a win.
	ErrNoSpace = errors.New("snake: no empty tiles left on the board")
)
