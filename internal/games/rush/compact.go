package rush

// Direction represents a move direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// mergeable reports whether two adjacent dense tiles combine into one.
// Obstacles never merge. A Joker merges with any Number or another Joker;
// two Numbers merge when their values are equal.
func mergeable(a, b Tile) bool {
	if a.Kind.Obstacle() || b.Kind.Obstacle() {
		return false
	}
	if a.Kind == KindJoker || b.Kind == KindJoker {
		return true
	}
	return a.Value == b.Value
}

// mergedValue computes the value of the tile produced by merging a and b.
// A Joker doubles the larger of the two values, treating an unresolved
// Joker's zero as 2 (so Joker+Joker yields 4). Equal Numbers double.
func mergedValue(a, b Tile) int {
	if a.Kind == KindJoker || b.Kind == KindJoker {
		v := a.Value
		if b.Value > v {
			v = b.Value
		}
		if v == 0 {
			v = 2
		}
		return 2 * v
	}
	return 2 * a.Value
}

// compactLine slides one line of cells toward index 0 and merges adjacent
// pairs. Obstacles slide like any tile but act as merge-blocking walls.
// A freshly merged tile never re-merges within the same call. mint
// allocates the merged Number tiles. Returns the compacted line (padded
// with empty cells to the original length) and the score gained.
func compactLine(line []Tile, mint func(value int) Tile) ([]Tile, int) {
	dense := make([]Tile, 0, len(line))
	for _, t := range line {
		if !t.Empty() {
			dense = append(dense, t)
		}
	}

	out := make([]Tile, 0, len(line))
	score := 0
	for i := 0; i < len(dense); i++ {
		if i+1 < len(dense) && mergeable(dense[i], dense[i+1]) {
			v := mergedValue(dense[i], dense[i+1])
			out = append(out, mint(v))
			score += v
			i++ // both sources consumed
		} else {
			out = append(out, dense[i])
		}
	}

	for len(out) < len(line) {
		out = append(out, Tile{})
	}
	return out, score
}

// lineIndices returns the cell indices of one row or column, ordered so
// that index 0 is the edge tiles compact toward. Right and down reuse the
// leftward compaction by reversing the traversal order.
func lineIndices(b Board, dir Direction, n int) []int {
	idx := make([]int, b.Size)
	for i := 0; i < b.Size; i++ {
		switch dir {
		case DirLeft:
			idx[i] = b.Index(i, n)
		case DirRight:
			idx[i] = b.Index(b.Size-1-i, n)
		case DirUp:
			idx[i] = b.Index(n, i)
		case DirDown:
			idx[i] = b.Index(n, b.Size-1-i)
		}
	}
	return idx
}

// Slide applies a directional move to the whole board, compacting every
// row or column. Returns the new board, the score gained from merges, and
// whether any cell changed. The input board is not modified.
func Slide(b Board, dir Direction, mint func(value int) Tile) (Board, int, bool) {
	next := NewBoard(b.Size)
	totalScore := 0

	for n := 0; n < b.Size; n++ {
		idx := lineIndices(b, dir, n)

		line := make([]Tile, b.Size)
		for i, cell := range idx {
			line[i] = b.At(cell)
		}

		compacted, score := compactLine(line, mint)
		totalScore += score

		for i, cell := range idx {
			next.Put(cell, compacted[i])
		}
	}

	return next, totalScore, !b.Equal(next)
}
