package rush

// Board is a square grid of tiles addressed by linear cell index
// 0..Size²-1, row-major. The zero Tile marks an empty cell. Size is fixed
// for the lifetime of a game.
type Board struct {
	Size  int
	Cells []Tile
}

// NewBoard creates an empty board with the given side length.
func NewBoard(size int) Board {
	return Board{
		Size:  size,
		Cells: make([]Tile, size*size),
	}
}

// Index converts (x, y) coordinates to a linear cell index.
func (b Board) Index(x, y int) int {
	return y*b.Size + x
}

// Coords converts a linear cell index to (x, y) coordinates.
func (b Board) Coords(i int) (x, y int) {
	return i % b.Size, i / b.Size
}

// InBounds reports whether i is a valid cell index.
func (b Board) InBounds(i int) bool {
	return i >= 0 && i < len(b.Cells)
}

// At returns the tile at the given cell, or the zero tile when empty.
func (b Board) At(i int) Tile {
	return b.Cells[i]
}

// Put places a tile at the given cell, replacing any occupant.
func (b *Board) Put(i int, t Tile) {
	b.Cells[i] = t
}

// ClearCell empties the given cell.
func (b *Board) ClearCell(i int) {
	b.Cells[i] = Tile{}
}

// Clone returns an independent deep copy of the board.
func (b Board) Clone() Board {
	cells := make([]Tile, len(b.Cells))
	copy(cells, b.Cells)
	return Board{Size: b.Size, Cells: cells}
}

// Equal reports whether two boards hold identical tiles in identical cells.
func (b Board) Equal(other Board) bool {
	if b.Size != other.Size {
		return false
	}
	for i, t := range b.Cells {
		if other.Cells[i] != t {
			return false
		}
	}
	return true
}

// EmptyCells returns the indices of all unoccupied cells.
func (b Board) EmptyCells() []int {
	var cells []int
	for i, t := range b.Cells {
		if t.Empty() {
			cells = append(cells, i)
		}
	}
	return cells
}

// TileCount returns the number of occupied cells.
func (b Board) TileCount() int {
	count := 0
	for _, t := range b.Cells {
		if !t.Empty() {
			count++
		}
	}
	return count
}

// MaxValue returns the highest Number value on the board, 0 when none.
func (b Board) MaxValue() int {
	maxVal := 0
	for _, t := range b.Cells {
		if !t.Empty() && t.Value > maxVal {
			maxVal = t.Value
		}
	}
	return maxVal
}

// HasPowerup reports whether any non-Number tile is on the board.
func (b Board) HasPowerup() bool {
	for _, t := range b.Cells {
		if !t.Empty() && t.Kind != KindNumber {
			return true
		}
	}
	return false
}

// IsGameOver reports whether no move or tap can change the board: every
// cell is occupied by a Number tile and no two orthogonal neighbors hold
// equal values. Any powerup tile on the board is an escape route and blocks
// game over.
func IsGameOver(b Board) bool {
	for _, t := range b.Cells {
		if t.Empty() {
			return false
		}
		if t.Kind != KindNumber {
			return false
		}
	}

	for y := 0; y < b.Size; y++ {
		for x := 0; x < b.Size; x++ {
			val := b.Cells[b.Index(x, y)].Value
			if x < b.Size-1 && b.Cells[b.Index(x+1, y)].Value == val {
				return false
			}
			if y < b.Size-1 && b.Cells[b.Index(x, y+1)].Value == val {
				return false
			}
		}
	}
	return true
}
