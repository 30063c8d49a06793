// Package snake implements the simulation core of a grid snake game: the
// tile board, the linked chain of body segments, food, and the fixed-step
// loop that moves, grows and kills the snake.
//
// The package has no knowledge of terminals or keyboards. Hosts feed it
// core.InputFrame values and elapsed time, then read its state back.
package snake

// Occupant identifies what sits on a tile.
type Occupant int

const (
	OccupantEmpty Occupant = iota
	OccupantBody
	OccupantFood
)

func (o Occupant) String() string {
	switch o {
	case OccupantEmpty:
		return "empty"
	case OccupantBody:
		return "body"
	case OccupantFood:
		return "food"
	default:
		return "unknown"
	}
}

// Tile is one cell of the board. Its identity is its position.
type Tile struct {
	X, Y     int
	occupant Occupant
	food     *Food // set only when occupant == OccupantFood
}

// EmptyTile returns an unoccupied tile at (x, y).
func EmptyTile(x, y int) Tile {
	return Tile{X: x, Y: y}
}

// BodyTile returns a tile holding a snake segment at (x, y).
func BodyTile(x, y int) Tile {
	return Tile{X: x, Y: y, occupant: OccupantBody}
}

// FoodTile returns a tile holding f at the food's position.
func FoodTile(f *Food) Tile {
	return Tile{X: f.X, Y: f.Y, occupant: OccupantFood, food: f}
}

// Occupant returns what is on the tile.
func (t Tile) Occupant() Occupant {
	return t.occupant
}

// Food returns the food on the tile, or nil.
func (t Tile) Food() *Food {
	return t.food
}

// IsOpen reports whether nothing occupies the tile.
func (t Tile) IsOpen() bool {
	return t.occupant == OccupantEmpty
}
