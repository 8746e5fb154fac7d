package rush

import (
	"testing"
)

// testMint returns a mint function allocating Number tiles with IDs from a
// counter, mirroring what the live game does.
func testMint() func(int) Tile {
	var id TileID = 1000
	return func(v int) Tile {
		id++
		return Tile{ID: id, Value: v, Kind: KindNumber}
	}
}

// n builds a Number tile with a synthetic ID derived from its position.
func n(id TileID, v int) Tile {
	return Tile{ID: id, Value: v, Kind: KindNumber}
}

// pw builds a powerup tile.
func pw(id TileID, k Kind) Tile {
	return Tile{ID: id, Value: 0, Kind: k}
}

// sameShape compares lines by occupancy, kind, and value, ignoring IDs:
// merged tiles get fresh IDs, so ID equality is not meaningful here.
func sameShape(got, want []Tile) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i].Empty() != want[i].Empty() {
			return false
		}
		if got[i].Empty() {
			continue
		}
		if got[i].Kind != want[i].Kind || got[i].Value != want[i].Value {
			return false
		}
	}
	return true
}

func TestCompactLine(t *testing.T) {
	e := Tile{}

	tests := []struct {
		name  string
		input []Tile
		want  []Tile
		score int
	}{
		{
			name:  "simple merge",
			input: []Tile{n(1, 2), n(2, 2), e, e},
			want:  []Tile{n(9, 4), e, e, e},
			score: 4,
		},
		{
			name:  "merge with trailing tile",
			input: []Tile{n(1, 2), n(2, 2), n(3, 2), e},
			want:  []Tile{n(9, 4), n(9, 2), e, e},
			score: 4,
		},
		{
			name:  "double merge",
			input: []Tile{n(1, 2), n(2, 2), n(3, 2), n(4, 2)},
			want:  []Tile{n(9, 4), n(9, 4), e, e},
			score: 8,
		},
		{
			name:  "merged tile does not re-merge",
			input: []Tile{n(1, 2), n(2, 2), n(3, 4), e},
			want:  []Tile{n(9, 4), n(9, 4), e, e},
			score: 4,
		},
		{
			name:  "no merge possible",
			input: []Tile{n(1, 2), n(2, 4), n(3, 8), n(4, 16)},
			want:  []Tile{n(9, 2), n(9, 4), n(9, 8), n(9, 16)},
			score: 0,
		},
		{
			name:  "slide with gap",
			input: []Tile{e, e, n(1, 2), n(2, 2)},
			want:  []Tile{n(9, 4), e, e, e},
			score: 4,
		},
		{
			name:  "gap between equal tiles merges",
			input: []Tile{n(1, 2), e, e, n(2, 2)},
			want:  []Tile{n(9, 4), e, e, e},
			score: 4,
		},
		{
			name:  "empty line",
			input: []Tile{e, e, e, e},
			want:  []Tile{e, e, e, e},
			score: 0,
		},
		{
			name:  "single tile slides",
			input: []Tile{e, n(1, 4), e, e},
			want:  []Tile{n(9, 4), e, e, e},
			score: 0,
		},
		{
			name:  "obstacle slides but blocks merge across",
			input: []Tile{n(1, 2), pw(2, KindBomb), n(3, 2), e},
			want:  []Tile{n(9, 2), pw(9, KindBomb), n(9, 2), e},
			score: 0,
		},
		{
			name:  "merge behind obstacle",
			input: []Tile{pw(1, KindBomb), n(2, 2), n(3, 2), e},
			want:  []Tile{pw(9, KindBomb), n(9, 4), e, e},
			score: 4,
		},
		{
			name:  "obstacle compacts over gap",
			input: []Tile{e, pw(1, KindGlass), e, n(2, 2)},
			want:  []Tile{pw(9, KindGlass), n(9, 2), e, e},
			score: 0,
		},
		{
			name:  "two obstacles never merge",
			input: []Tile{pw(1, KindGlass), pw(2, KindGlass), e, e},
			want:  []Tile{pw(9, KindGlass), pw(9, KindGlass), e, e},
			score: 0,
		},
		{
			name:  "joker merges with number",
			input: []Tile{pw(1, KindJoker), n(2, 8), e, e},
			want:  []Tile{n(9, 16), e, e, e},
			score: 16,
		},
		{
			name:  "number merges with joker",
			input: []Tile{n(1, 8), pw(2, KindJoker), e, e},
			want:  []Tile{n(9, 16), e, e, e},
			score: 16,
		},
		{
			name:  "joker merges with joker",
			input: []Tile{pw(1, KindJoker), pw(2, KindJoker), e, e},
			want:  []Tile{n(9, 4), e, e, e},
			score: 4,
		},
		{
			name:  "joker blocked by obstacle",
			input: []Tile{pw(1, KindJoker), pw(2, KindShuffle), n(3, 4), e},
			want:  []Tile{pw(9, KindJoker), pw(9, KindShuffle), n(9, 4), e},
			score: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, score := compactLine(tt.input, testMint())
			if !sameShape(got, tt.want) {
				t.Errorf("compactLine(%v) = %v, want %v", tt.input, got, tt.want)
			}
			if score != tt.score {
				t.Errorf("compactLine(%v) score = %d, want %d", tt.input, score, tt.score)
			}
		})
	}
}

func TestCompactLineMintsFreshIDs(t *testing.T) {
	line := []Tile{n(1, 2), n(2, 2), {}, {}}
	got, _ := compactLine(line, testMint())

	if got[0].ID == 1 || got[0].ID == 2 {
		t.Errorf("merged tile reused a source ID: %d", got[0].ID)
	}
	if got[0].ID == 0 {
		t.Error("merged tile has zero ID")
	}
}

// buildBoard fills a 4x4 board from rows of values; 0 means empty.
// Powerups are placed separately by the tests that need them.
func buildBoard(rows [4][4]int) Board {
	b := NewBoard(4)
	var id TileID
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if rows[y][x] == 0 {
				continue
			}
			id++
			b.Put(b.Index(x, y), Tile{ID: id, Value: rows[y][x], Kind: KindNumber})
		}
	}
	return b
}

// boardValues extracts the Number values of a board; powerups read as -1.
func boardValues(b Board) [4][4]int {
	var out [4][4]int
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			t := b.At(b.Index(x, y))
			switch {
			case t.Empty():
				out[y][x] = 0
			case t.Kind != KindNumber:
				out[y][x] = -1
			default:
				out[y][x] = t.Value
			}
		}
	}
	return out
}

func TestSlideLeft(t *testing.T) {
	b := buildBoard([4][4]int{
		{2, 2, 0, 0},
		{4, 0, 4, 0},
		{2, 2, 2, 2},
		{0, 0, 0, 2},
	})

	want := [4][4]int{
		{4, 0, 0, 0},
		{8, 0, 0, 0},
		{4, 4, 0, 0},
		{2, 0, 0, 0},
	}

	got, score, changed := Slide(b, DirLeft, testMint())

	if boardValues(got) != want {
		t.Errorf("Slide left: got\n%v\nwant\n%v", boardValues(got), want)
	}
	if !changed {
		t.Error("Slide left should report the board changed")
	}
	if wantScore := 4 + 8 + 4 + 4; score != wantScore {
		t.Errorf("Slide left score = %d, want %d", score, wantScore)
	}
}

func TestSlideRight(t *testing.T) {
	b := buildBoard([4][4]int{
		{2, 2, 0, 0},
		{4, 0, 4, 0},
		{2, 2, 2, 2},
		{0, 0, 0, 2},
	})

	want := [4][4]int{
		{0, 0, 0, 4},
		{0, 0, 0, 8},
		{0, 0, 4, 4},
		{0, 0, 0, 2},
	}

	got, _, changed := Slide(b, DirRight, testMint())

	if boardValues(got) != want {
		t.Errorf("Slide right: got\n%v\nwant\n%v", boardValues(got), want)
	}
	if !changed {
		t.Error("Slide right should report the board changed")
	}
}

func TestSlideUp(t *testing.T) {
	b := buildBoard([4][4]int{
		{2, 4, 2, 0},
		{2, 0, 2, 0},
		{0, 4, 2, 0},
		{0, 0, 2, 2},
	})

	want := [4][4]int{
		{4, 8, 4, 2},
		{0, 0, 4, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}

	got, _, changed := Slide(b, DirUp, testMint())

	if boardValues(got) != want {
		t.Errorf("Slide up: got\n%v\nwant\n%v", boardValues(got), want)
	}
	if !changed {
		t.Error("Slide up should report the board changed")
	}
}

func TestSlideDown(t *testing.T) {
	b := buildBoard([4][4]int{
		{2, 4, 2, 0},
		{2, 0, 2, 0},
		{0, 4, 2, 0},
		{0, 0, 2, 2},
	})

	want := [4][4]int{
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 4, 0},
		{4, 8, 4, 2},
	}

	got, _, changed := Slide(b, DirDown, testMint())

	if boardValues(got) != want {
		t.Errorf("Slide down: got\n%v\nwant\n%v", boardValues(got), want)
	}
	if !changed {
		t.Error("Slide down should report the board changed")
	}
}

func TestSlideNoChange(t *testing.T) {
	b := buildBoard([4][4]int{
		{2, 0, 0, 0},
		{4, 0, 0, 0},
		{2, 0, 0, 0},
		{8, 0, 0, 0},
	})

	got, score, changed := Slide(b, DirLeft, testMint())

	if changed {
		t.Error("Slide on a settled board should report no change")
	}
	if score != 0 {
		t.Errorf("Slide score = %d, want 0", score)
	}
	if !got.Equal(b) {
		t.Error("Slide with no change should leave all tiles identical, IDs included")
	}
}

func TestSlidePreservesIDsWithoutMerge(t *testing.T) {
	b := NewBoard(4)
	b.Put(b.Index(3, 0), Tile{ID: 7, Value: 2, Kind: KindNumber})
	b.Put(b.Index(2, 1), Tile{ID: 9, Value: 4, Kind: KindNumber})

	got, _, changed := Slide(b, DirLeft, testMint())

	if !changed {
		t.Fatal("tiles had room to slide")
	}
	if got.At(got.Index(0, 0)).ID != 7 {
		t.Errorf("slid tile lost its ID: got %d, want 7", got.At(got.Index(0, 0)).ID)
	}
	if got.At(got.Index(0, 1)).ID != 9 {
		t.Errorf("slid tile lost its ID: got %d, want 9", got.At(got.Index(0, 1)).ID)
	}
}
