package rush

import "math/rand"

// Powerup activation effects. Each operates on the board in place, clears
// cells only, and never spawns tiles or changes score.

// applyBomb clears the 3x3 neighborhood centered on the tapped cell,
// clipped to board bounds. The Bomb itself is consumed.
func applyBomb(b *Board, cell int) {
	cx, cy := b.Coords(cell)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			x, y := cx+dx, cy+dy
			if x < 0 || x >= b.Size || y < 0 || y >= b.Size {
				continue
			}
			b.ClearCell(b.Index(x, y))
		}
	}
}

// applySurge clears the tapped cell's entire row and entire column.
func applySurge(b *Board, cell int) {
	cx, cy := b.Coords(cell)
	for i := 0; i < b.Size; i++ {
		b.ClearCell(b.Index(i, cy))
		b.ClearCell(b.Index(cx, i))
	}
}

// applyGlass clears only the tapped cell.
func applyGlass(b *Board, cell int) {
	b.ClearCell(cell)
}

// applyShuffle consumes the Shuffle tile and redistributes every other
// tile into a uniformly random permutation of cell indices. Tile
// identities are preserved: no tile is created, destroyed, or renamed.
func applyShuffle(b *Board, cell int, rng *rand.Rand) {
	survivors := make([]Tile, 0, b.TileCount())
	for i, t := range b.Cells {
		if i == cell || t.Empty() {
			continue
		}
		survivors = append(survivors, t)
	}

	for i := range b.Cells {
		b.ClearCell(i)
	}

	perm := rng.Perm(len(b.Cells))
	for i, t := range survivors {
		b.Put(perm[i], t)
	}
}
