package rush

import (
	"math/rand"
	"sort"
	"testing"
)

// fill4 occupies every cell of a 4x4 board with distinct Number tiles.
func fill4() Board {
	b := NewBoard(4)
	var id TileID
	for i := range b.Cells {
		id++
		b.Put(i, Tile{ID: id, Value: 2 << uint(i%4), Kind: KindNumber})
	}
	return b
}

func TestApplyBombCenter(t *testing.T) {
	b := fill4()
	center := b.Index(1, 1)
	applyBomb(&b, center)

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			i := b.Index(x, y)
			inBlast := x <= 2 && y <= 2
			if inBlast && !b.At(i).Empty() {
				t.Errorf("cell (%d,%d) inside the 3x3 blast should be empty", x, y)
			}
			if !inBlast && b.At(i).Empty() {
				t.Errorf("cell (%d,%d) outside the blast should survive", x, y)
			}
		}
	}
}

func TestApplyBombCornerClipped(t *testing.T) {
	b := fill4()
	applyBomb(&b, b.Index(0, 0))

	if got := b.TileCount(); got != 12 {
		t.Errorf("corner bomb should clear 4 cells, left %d tiles, want 12", got)
	}
	for _, cell := range []int{b.Index(0, 0), b.Index(1, 0), b.Index(0, 1), b.Index(1, 1)} {
		if !b.At(cell).Empty() {
			t.Errorf("cell %d in the clipped blast should be empty", cell)
		}
	}
}

func TestApplySurge(t *testing.T) {
	b := fill4()
	applySurge(&b, b.Index(2, 1))

	for i := 0; i < 4; i++ {
		if !b.At(b.Index(i, 1)).Empty() {
			t.Errorf("row cell (%d,1) should be cleared", i)
		}
		if !b.At(b.Index(2, i)).Empty() {
			t.Errorf("column cell (2,%d) should be cleared", i)
		}
	}
	if got := b.TileCount(); got != 9 {
		t.Errorf("surge should leave 9 tiles, got %d", got)
	}
}

func TestApplyGlass(t *testing.T) {
	b := fill4()
	applyGlass(&b, b.Index(3, 3))

	if !b.At(b.Index(3, 3)).Empty() {
		t.Error("tapped cell should be cleared")
	}
	if got := b.TileCount(); got != 15 {
		t.Errorf("glass should clear exactly one cell, left %d tiles", got)
	}
}

// sortedTiles returns the board's tiles ordered by ID for multiset
// comparison, optionally excluding one cell.
func sortedTiles(b Board, exclude int) []Tile {
	var out []Tile
	for i, tile := range b.Cells {
		if i == exclude || tile.Empty() {
			continue
		}
		out = append(out, tile)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func TestApplyShufflePreservesMultiset(t *testing.T) {
	b := NewBoard(4)
	b.Put(0, Tile{ID: 1, Value: 2, Kind: KindNumber})
	b.Put(3, Tile{ID: 2, Value: 8, Kind: KindNumber})
	b.Put(5, Tile{ID: 3, Kind: KindShuffle})
	b.Put(9, Tile{ID: 4, Kind: KindBomb})
	b.Put(14, Tile{ID: 5, Value: 2, Kind: KindNumber})

	before := sortedTiles(b, 5)

	rng := rand.New(rand.NewSource(77))
	applyShuffle(&b, 5, rng)

	after := sortedTiles(b, -1)

	if len(after) != len(before) {
		t.Fatalf("shuffle changed tile count: %d -> %d", len(before), len(after))
	}
	for i := range before {
		if before[i] != after[i] {
			t.Errorf("tile %d changed identity: %+v -> %+v", i, before[i], after[i])
		}
	}
	if b.At(5).Kind == KindShuffle {
		t.Error("the Shuffle tile itself must be consumed")
	}
}

func TestApplyShuffleDeterministicWithSeed(t *testing.T) {
	build := func() Board {
		b := NewBoard(4)
		b.Put(0, Tile{ID: 1, Value: 2, Kind: KindNumber})
		b.Put(7, Tile{ID: 2, Value: 4, Kind: KindNumber})
		b.Put(10, Tile{ID: 3, Kind: KindShuffle})
		return b
	}

	b1 := build()
	applyShuffle(&b1, 10, rand.New(rand.NewSource(5)))
	b2 := build()
	applyShuffle(&b2, 10, rand.New(rand.NewSource(5)))

	if !b1.Equal(b2) {
		t.Error("same seed should produce the same shuffled layout")
	}
}
