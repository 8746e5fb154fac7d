package rush

import "testing"

// checkerboard3 builds a full 3x3 board with no equal orthogonal neighbors.
func checkerboard3() Board {
	b := NewBoard(3)
	values := [3][3]int{
		{2, 4, 2},
		{4, 2, 4},
		{2, 4, 2},
	}
	var id TileID
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			id++
			b.Put(b.Index(x, y), Tile{ID: id, Value: values[y][x], Kind: KindNumber})
		}
	}
	return b
}

func TestIsGameOverCheckerboard(t *testing.T) {
	b := checkerboard3()
	if !IsGameOver(b) {
		t.Error("full checkerboard with no adjacent equals should be game over")
	}
}

func TestIsGameOverEmptyCellBlocks(t *testing.T) {
	b := checkerboard3()
	b.ClearCell(b.Index(1, 1))
	if IsGameOver(b) {
		t.Error("board with an empty cell is never game over")
	}
}

func TestIsGameOverPowerupBlocks(t *testing.T) {
	b := checkerboard3()
	b.Put(b.Index(1, 1), Tile{ID: 99, Kind: KindGlass})
	if IsGameOver(b) {
		t.Error("a powerup tile is an escape route and blocks game over")
	}
}

func TestIsGameOverJokerBlocks(t *testing.T) {
	b := checkerboard3()
	b.Put(b.Index(1, 1), Tile{ID: 99, Kind: KindJoker})
	if IsGameOver(b) {
		t.Error("a Joker can still merge and blocks game over")
	}
}

func TestIsGameOverAdjacentEqualBlocks(t *testing.T) {
	b := checkerboard3()
	b.Put(b.Index(1, 0), Tile{ID: 99, Value: 2, Kind: KindNumber})
	if IsGameOver(b) {
		t.Error("adjacent equal Numbers mean a merge is available")
	}
}

func TestCloneIndependence(t *testing.T) {
	b := checkerboard3()
	c := b.Clone()

	c.ClearCell(0)
	if b.At(0).Empty() {
		t.Error("mutating a clone modified the original board")
	}
	if b.Equal(c) {
		t.Error("diverged boards should not compare equal")
	}
}

func TestEmptyCellsAndTileCount(t *testing.T) {
	b := NewBoard(4)
	if got := len(b.EmptyCells()); got != 16 {
		t.Errorf("empty board EmptyCells = %d, want 16", got)
	}

	b.Put(5, Tile{ID: 1, Value: 2, Kind: KindNumber})
	b.Put(9, Tile{ID: 2, Kind: KindBomb})

	if got := len(b.EmptyCells()); got != 14 {
		t.Errorf("EmptyCells = %d, want 14", got)
	}
	if got := b.TileCount(); got != 2 {
		t.Errorf("TileCount = %d, want 2", got)
	}
}

func TestMaxValueIgnoresPowerups(t *testing.T) {
	b := NewBoard(4)
	b.Put(0, Tile{ID: 1, Value: 64, Kind: KindNumber})
	b.Put(1, Tile{ID: 2, Kind: KindBomb})

	if got := b.MaxValue(); got != 64 {
		t.Errorf("MaxValue = %d, want 64", got)
	}
	if !b.HasPowerup() {
		t.Error("HasPowerup should see the Bomb")
	}
}

func TestIndexCoordsRoundTrip(t *testing.T) {
	b := NewBoard(5)
	for i := 0; i < 25; i++ {
		x, y := b.Coords(i)
		if got := b.Index(x, y); got != i {
			t.Errorf("Index(Coords(%d)) = %d", i, got)
		}
	}
	if b.InBounds(25) || b.InBounds(-1) {
		t.Error("InBounds accepted an out-of-range index")
	}
}
