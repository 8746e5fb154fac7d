// Package storage provides SQLite-based persistence for game results and
// settings. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tilerush/internal/games/rush"
)

// Store manages the SQLite database connection for result persistence.
type Store struct {
	db *sql.DB
}

// ResultEntry represents a single finished-game record.
type ResultEntry struct {
	ID        int64
	GameID    string
	Score     int
	Moves     int
	MaxTile   int
	GridSize  int
	Duration  time.Duration
	CreatedAt time.Time
}

// GameStats aggregates all recorded results for one ruleset.
type GameStats struct {
	GameID     string
	Games      int
	BestScore  int
	AvgScore   float64
	TotalMoves int
	MaxTile    int
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			moves INTEGER NOT NULL DEFAULT 0,
			max_tile INTEGER NOT NULL DEFAULT 0,
			grid_size INTEGER NOT NULL DEFAULT 4,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_results_game_id ON results(game_id);
		CREATE INDEX IF NOT EXISTS idx_results_top ON results(game_id, score DESC);

		CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveResult records a finished game. Returns the ID of the inserted record.
func (s *Store) SaveResult(r rush.GameResult) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO results (game_id, score, moves, max_tile, grid_size, duration_secs)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		r.RulesetID, r.Score, r.MoveCount, r.MaxTile, r.GridSize, int(r.Duration.Seconds()),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save result: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopResults retrieves the best N results for the given game, ordered by
// score descending.
func (s *Store) TopResults(gameID string, limit int) ([]ResultEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, score, moves, max_tile, grid_size, duration_secs, created_at
		 FROM results
		 WHERE game_id = ?
		 ORDER BY score DESC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	return scanResults(rows)
}

// RecentResults retrieves the latest N results for the given game, newest
// first.
func (s *Store) RecentResults(gameID string, limit int) ([]ResultEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, score, moves, max_tile, grid_size, duration_secs, created_at
		 FROM results
		 WHERE game_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	return scanResults(rows)
}

func scanResults(rows *sql.Rows) ([]ResultEntry, error) {
	var entries []ResultEntry
	for rows.Next() {
		var e ResultEntry
		var durationSecs int64
		var createdAt any
		if err := rows.Scan(&e.ID, &e.GameID, &e.Score, &e.Moves, &e.MaxTile, &e.GridSize, &durationSecs, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Duration = time.Duration(durationSecs) * time.Second
		e.CreatedAt = parseTimestamp(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// parseTimestamp handles both time.Time and string DATETIME columns.
func parseTimestamp(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// HighScore returns the highest recorded score for the given game.
// Returns 0 if no results exist.
func (s *Store) HighScore(gameID string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM results WHERE game_id = ?",
		gameID,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// Stats aggregates all recorded results for the given game.
func (s *Store) Stats(gameID string) (GameStats, error) {
	stats := GameStats{GameID: gameID}

	var best, moves, maxTile sql.NullInt64
	var avg sql.NullFloat64

	err := s.db.QueryRow(
		`SELECT COUNT(*), MAX(score), AVG(score), SUM(moves), MAX(max_tile)
		 FROM results
		 WHERE game_id = ?`,
		gameID,
	).Scan(&stats.Games, &best, &avg, &moves, &maxTile)
	if err != nil {
		return GameStats{}, fmt.Errorf("storage: cannot query stats: %w", err)
	}

	if best.Valid {
		stats.BestScore = int(best.Int64)
	}
	if avg.Valid {
		stats.AvgScore = avg.Float64
	}
	if moves.Valid {
		stats.TotalMoves = int(moves.Int64)
	}
	if maxTile.Valid {
		stats.MaxTile = int(maxTile.Int64)
	}

	return stats, nil
}

// ClearResults deletes all results for the given game.
func (s *Store) ClearResults(gameID string) error {
	_, err := s.db.Exec("DELETE FROM results WHERE game_id = ?", gameID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}
	return nil
}

// SetSetting stores a key-value setting, replacing any previous value.
func (s *Store) SetSetting(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO settings (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot set setting %q: %w", key, err)
	}
	return nil
}

// GetSetting retrieves a setting value. Returns the fallback when the key
// has never been set.
func (s *Store) GetSetting(key, fallback string) (string, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM settings WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return fallback, nil
	}
	if err != nil {
		return "", fmt.Errorf("storage: cannot get setting %q: %w", key, err)
	}
	return value, nil
}
