// Package rush implements the TileRush board engine: a 2048-style sliding
// puzzle extended with tap-activated powerup tiles.
package rush

// Kind classifies a tile. Number tiles merge by value; Joker merges with
// anything mergeable; the remaining kinds are powerups activated by tapping.
type Kind int

const (
	KindNumber Kind = iota
	KindBomb
	KindJoker
	KindSurge
	KindShuffle
	KindGlass
)

// String returns the name of the tile kind.
func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindBomb:
		return "bomb"
	case KindJoker:
		return "joker"
	case KindSurge:
		return "surge"
	case KindShuffle:
		return "shuffle"
	case KindGlass:
		return "glass"
	default:
		return "unknown"
	}
}

// Glyph returns the display character for a tile kind.
// Number tiles render their value instead.
func (k Kind) Glyph() rune {
	switch k {
	case KindBomb:
		return '*'
	case KindJoker:
		return '?'
	case KindSurge:
		return '+'
	case KindShuffle:
		return '%'
	case KindGlass:
		return '#'
	default:
		return ' '
	}
}

// Obstacle reports whether the kind blocks merging during compaction.
// Obstacles still slide like any tile but never merge and are never merged
// over. Joker is not an obstacle: it merges.
func (k Kind) Obstacle() bool {
	switch k {
	case KindBomb, KindSurge, KindShuffle, KindGlass:
		return true
	default:
		return false
	}
}

// Activatable reports whether tapping a tile of this kind has an effect.
func (k Kind) Activatable() bool {
	return k.Obstacle()
}

// TileID uniquely identifies a tile within one game. IDs are never reused;
// a merge produces a tile with a fresh ID.
type TileID uint64

// Tile is a single board occupant. Immutable once created: a move either
// keeps a tile, removes it, or replaces it with a newly-identified merged
// tile. Value is meaningful only for Number and Joker (0 until it merges).
type Tile struct {
	ID    TileID
	Value int
	Kind  Kind
}

// Empty reports whether this is the zero tile, i.e. an unoccupied cell.
func (t Tile) Empty() bool {
	return t.ID == 0
}
