// Package storage provides SQLite-based persistence for finished runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Run outcomes.
const (
	OutcomeWin  = "win"
	OutcomeLoss = "loss"
)

// Store manages the SQLite database connection for run persistence.
type Store struct {
	db *sql.DB
}

// RunEntry represents one finished run of a level.
type RunEntry struct {
	ID            int64
	LevelID       string
	Coins         int
	Outcome       string // "win" or "loss"
	DurationTicks int
	CreatedAt     time.Time
}

// LevelStats aggregates the recorded runs of one level.
type LevelStats struct {
	LevelID   string
	Runs      int
	Wins      int
	BestCoins int
	BestTicks int // fastest winning run; 0 when there is no win yet
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
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			level_id TEXT NOT NULL,
			coins INTEGER NOT NULL DEFAULT 0,
			outcome TEXT NOT NULL,
			duration_ticks INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_level_id ON runs(level_id);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(level_id, coins DESC);
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

// SaveRun records a finished run. Returns the ID of the inserted record.
func (s *Store) SaveRun(levelID string, coins int, outcome string, durationTicks int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO runs (level_id, coins, outcome, duration_ticks) VALUES (?, ?, ?, ?)",
		levelID, coins, outcome, durationTicks,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopRuns retrieves the best N runs for the given level, ordered by coins
// descending and then by duration ascending.
func (s *Store) TopRuns(levelID string, limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, level_id, coins, outcome, duration_ticks, created_at
		 FROM runs
		 WHERE level_id = ?
		 ORDER BY coins DESC, duration_ticks ASC
		 LIMIT ?`,
		levelID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var entries []RunEntry
	for rows.Next() {
		var e RunEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.LevelID, &e.Coins, &e.Outcome, &e.DurationTicks, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseCreatedAt(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// BestCoins returns the highest coin count recorded for the given level.
// Returns 0 if no runs exist.
func (s *Store) BestCoins(levelID string) (int, error) {
	var coins sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(coins) FROM runs WHERE level_id = ?",
		levelID,
	).Scan(&coins)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best coins: %w", err)
	}

	if !coins.Valid {
		return 0, nil
	}
	return int(coins.Int64), nil
}

// Stats aggregates run counts and records for the given level.
func (s *Store) Stats(levelID string) (LevelStats, error) {
	stats := LevelStats{LevelID: levelID}

	var best sql.NullInt64
	var fastest sql.NullInt64
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END), 0),
		        MAX(coins),
		        MIN(CASE WHEN outcome = ? THEN duration_ticks END)
		 FROM runs
		 WHERE level_id = ?`,
		OutcomeWin, OutcomeWin, levelID,
	).Scan(&stats.Runs, &stats.Wins, &best, &fastest)
	if err != nil {
		return stats, fmt.Errorf("storage: cannot query stats: %w", err)
	}

	if best.Valid {
		stats.BestCoins = int(best.Int64)
	}
	if fastest.Valid {
		stats.BestTicks = int(fastest.Int64)
	}
	return stats, nil
}

// ClearRuns deletes all runs for the given level.
func (s *Store) ClearRuns(levelID string) error {
	_, err := s.db.Exec("DELETE FROM runs WHERE level_id = ?", levelID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// parseCreatedAt handles the driver returning either time.Time or the SQLite
// datetime string.
func parseCreatedAt(v any) time.Time {
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
