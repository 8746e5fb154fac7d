package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/tilerush/internal/games/rush"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func result(gameID string, score, moves int) rush.GameResult {
	return rush.GameResult{
		RulesetID: gameID,
		Score:     score,
		MoveCount: moves,
		MaxTile:   128,
		GridSize:  4,
		Duration:  90 * time.Second,
		Timestamp: time.Now(),
	}
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndTopResults(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveResult(result("tilerush", score, score/10)); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}
	if _, err := store.SaveResult(result("tilerush_hardcore", 500, 80)); err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}

	results, err := store.TopResults("tilerush", 10)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}

	if len(results) != 3 {
		t.Fatalf("Expected 3 results, got %d", len(results))
	}
	if results[0].Score != 200 || results[1].Score != 100 || results[2].Score != 50 {
		t.Errorf("Results not sorted by score: %v", results)
	}
	if results[0].Moves != 20 || results[0].MaxTile != 128 || results[0].GridSize != 4 {
		t.Errorf("Result fields not round-tripped: %+v", results[0])
	}
	if results[0].Duration != 90*time.Second {
		t.Errorf("Duration = %v, want 90s", results[0].Duration)
	}

	hardcore, err := store.TopResults("tilerush_hardcore", 10)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}
	if len(hardcore) != 1 {
		t.Errorf("Expected 1 hardcore result, got %d", len(hardcore))
	}
}

func TestStoreTopResultsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveResult(result("tilerush", (i+1)*100, 10))
	}

	results, err := store.TopResults("tilerush", 3)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}

	if len(results) != 3 {
		t.Fatalf("Expected 3 results with limit, got %d", len(results))
	}
	if results[0].Score != 500 || results[1].Score != 400 || results[2].Score != 300 {
		t.Errorf("Results not in expected order: %v", results)
	}
}

func TestStoreRecentResults(t *testing.T) {
	store := openTestStore(t)

	store.SaveResult(result("tilerush", 300, 10))
	store.SaveResult(result("tilerush", 100, 10))

	results, err := store.RecentResults("tilerush", 10)
	if err != nil {
		t.Fatalf("RecentResults() failed: %v", err)
	}

	if len(results) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(results))
	}
	if results[0].Score != 100 {
		t.Errorf("Newest result first: got score %d, want 100", results[0].Score)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	score, err := store.HighScore("tilerush")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if score != 0 {
		t.Errorf("HighScore with no results = %d, want 0", score)
	}

	store.SaveResult(result("tilerush", 150, 10))
	store.SaveResult(result("tilerush", 300, 10))

	score, err = store.HighScore("tilerush")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if score != 300 {
		t.Errorf("HighScore = %d, want 300", score)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveResult(result("tilerush", 100, 20))
	store.SaveResult(result("tilerush", 300, 40))

	stats, err := store.Stats("tilerush")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}

	if stats.Games != 2 {
		t.Errorf("Games = %d, want 2", stats.Games)
	}
	if stats.BestScore != 300 {
		t.Errorf("BestScore = %d, want 300", stats.BestScore)
	}
	if stats.AvgScore != 200 {
		t.Errorf("AvgScore = %f, want 200", stats.AvgScore)
	}
	if stats.TotalMoves != 60 {
		t.Errorf("TotalMoves = %d, want 60", stats.TotalMoves)
	}
	if stats.MaxTile != 128 {
		t.Errorf("MaxTile = %d, want 128", stats.MaxTile)
	}
}

func TestStoreClearResults(t *testing.T) {
	store := openTestStore(t)

	store.SaveResult(result("tilerush", 100, 10))
	store.SaveResult(result("tilerush_hardcore", 200, 10))

	if err := store.ClearResults("tilerush"); err != nil {
		t.Fatalf("ClearResults() failed: %v", err)
	}

	results, _ := store.TopResults("tilerush", 10)
	if len(results) != 0 {
		t.Errorf("Expected no tilerush results after clear, got %d", len(results))
	}

	kept, _ := store.TopResults("tilerush_hardcore", 10)
	if len(kept) != 1 {
		t.Errorf("Clear must not touch other games: got %d results", len(kept))
	}
}

func TestStoreSettings(t *testing.T) {
	store := openTestStore(t)

	value, err := store.GetSetting("preset", "classic")
	if err != nil {
		t.Fatalf("GetSetting() failed: %v", err)
	}
	if value != "classic" {
		t.Errorf("Unset key should return fallback, got %q", value)
	}

	if err := store.SetSetting("preset", "chaos"); err != nil {
		t.Fatalf("SetSetting() failed: %v", err)
	}
	if err := store.SetSetting("preset", "hardcore"); err != nil {
		t.Fatalf("SetSetting() overwrite failed: %v", err)
	}

	value, err = store.GetSetting("preset", "classic")
	if err != nil {
		t.Fatalf("GetSetting() failed: %v", err)
	}
	if value != "hardcore" {
		t.Errorf("GetSetting = %q, want hardcore", value)
	}
}
