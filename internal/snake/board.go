package snake

import "fmt"

// Board is a fixed grid of tiles. It is the single source of truth for
// what occupies each cell; snake and food change it only through
// AddTile and RemoveTile.
type Board struct {
	width  int
	height int
	tiles  [][]Tile // indexed [x][y]
}

// NewBoard creates an empty width×height board.
func NewBoard(width, height int) (*Board, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("snake: invalid board size %dx%d", width, height)
	}

	b := &Board{
		width:  width,
		height: height,
		tiles:  make([][]Tile, width),
	}
	for x := range b.tiles {
		b.tiles[x] = make([]Tile, height)
		for y := range b.tiles[x] {
			b.tiles[x][y] = EmptyTile(x, y)
		}
	}
	return b, nil
}

// Width returns the number of horizontal tiles.
func (b *Board) Width() int {
	return b.width
}

// Height returns the number of vertical tiles.
func (b *Board) Height() int {
	return b.height
}

// InBounds reports whether (x, y) addresses a cell of the board.
func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < b.width && y < b.height
}

func (b *Board) checkBounds(x, y int) error {
	if !b.InBounds(x, y) {
		return fmt.Errorf("%w: (%d, %d) on %dx%d board", ErrOutOfBounds, x, y, b.width, b.height)
	}
	return nil
}

// TileAt returns the tile stored at (x, y).
func (b *Board) TileAt(x, y int) (Tile, error) {
	if err := b.checkBounds(x, y); err != nil {
		return Tile{}, err
	}
	return b.tiles[x][y], nil
}

// IsOpen reports whether the tile at (x, y) has no occupant.
func (b *Board) IsOpen(x, y int) (bool, error) {
	t, err := b.TileAt(x, y)
	if err != nil {
		return false, err
	}
	return t.IsOpen(), nil
}

// OccupantAt returns what occupies (x, y).
func (b *Board) OccupantAt(x, y int) (Occupant, error) {
	t, err := b.TileAt(x, y)
	if err != nil {
		return OccupantEmpty, err
	}
	return t.Occupant(), nil
}

// AddTile installs t at its own position. The cell must be open.
func (b *Board) AddTile(t Tile) error {
	open, err := b.IsOpen(t.X, t.Y)
	if err != nil {
		return err
	}
	if !open {
		return fmt.Errorf("%w: (%d, %d) holds %s", ErrTileOccupied, t.X, t.Y, b.tiles[t.X][t.Y].Occupant())
	}
	b.tiles[t.X][t.Y] = t
	return nil
}

// RemoveTile resets (x, y) to an empty tile, dropping whatever was there.
func (b *Board) RemoveTile(x, y int) error {
	if err := b.checkBounds(x, y); err != nil {
		return err
	}
	b.tiles[x][y] = EmptyTile(x, y)
	return nil
}

// EmptyTiles returns a snapshot of all open tiles, column by column.
// The slice does not track later board changes.
func (b *Board) EmptyTiles() []Tile {
	var open []Tile
	for x := 0; x < b.width; x++ {
		for y := 0; y < b.height; y++ {
			if b.tiles[x][y].IsOpen() {
				open = append(open, b.tiles[x][y])
			}
		}
	}
	return open
}

// Count returns how many tiles hold the given occupant.
func (b *Board) Count(o Occupant) int {
	n := 0
	for x := range b.tiles {
		for y := range b.tiles[x] {
			if b.tiles[x][y].Occupant() == o {
				n++
			}
		}
	}
	return n
}
