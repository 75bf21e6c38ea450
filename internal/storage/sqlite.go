// Package storage provides SQLite-based persistence for saved chickens
// and completed level runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/pecktopia/internal/core"
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// RunEntry is one completed level.
type RunEntry struct {
	ID        int64
	Owner     string
	LevelID   int
	Ticks     uint64
	Duration  time.Duration
	Items     []string
	CreatedAt time.Time
}

// RunStats aggregates the runs of one level.
type RunStats struct {
	Runs    int
	Best    time.Duration
	Average time.Duration
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

	// Create parent directories
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
		CREATE TABLE IF NOT EXISTS characters (
			owner TEXT PRIMARY KEY,
			color_scheme INTEGER NOT NULL DEFAULT 0,
			pattern INTEGER NOT NULL DEFAULT 0,
			temperament INTEGER NOT NULL DEFAULT 5,
			accessory INTEGER NOT NULL DEFAULT 0,
			wing_style INTEGER NOT NULL DEFAULT 0,
			eye_type INTEGER NOT NULL DEFAULT 0,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS level_runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			owner TEXT NOT NULL,
			level_id INTEGER NOT NULL,
			ticks INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_level_runs_level ON level_runs(level_id);
		CREATE INDEX IF NOT EXISTS idx_level_runs_best ON level_runs(level_id, duration_ms ASC);

		CREATE TABLE IF NOT EXISTS run_items (
			run_id INTEGER NOT NULL,
			position INTEGER NOT NULL,
			name TEXT NOT NULL,
			PRIMARY KEY (run_id, position)
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

// LoadCharacter returns the saved character of owner.
// The boolean is false when nothing has been saved yet.
func (s *Store) LoadCharacter(owner string) (core.Character, bool, error) {
	var c core.Character
	err := s.db.QueryRow(
		`SELECT color_scheme, pattern, temperament, accessory, wing_style, eye_type
		 FROM characters
		 WHERE owner = ?`,
		owner,
	).Scan(&c.ColorScheme, &c.Pattern, &c.Temperament, &c.Accessory, &c.WingStyle, &c.EyeType)

	if errors.Is(err, sql.ErrNoRows) {
		return core.Character{}, false, nil
	}
	if err != nil {
		return core.Character{}, false, fmt.Errorf("storage: cannot load character: %w", err)
	}
	return c, true, nil
}

// SaveCharacter inserts or replaces the character of owner.
func (s *Store) SaveCharacter(owner string, c core.Character) error {
	if err := c.Validate(); err != nil {
		return fmt.Errorf("storage: %w", err)
	}
	_, err := s.db.Exec(
		`INSERT INTO characters (owner, color_scheme, pattern, temperament, accessory, wing_style, eye_type, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(owner) DO UPDATE SET
			color_scheme = excluded.color_scheme,
			pattern = excluded.pattern,
			temperament = excluded.temperament,
			accessory = excluded.accessory,
			wing_style = excluded.wing_style,
			eye_type = excluded.eye_type,
			updated_at = excluded.updated_at`,
		owner, c.ColorScheme, c.Pattern, c.Temperament, c.Accessory, c.WingStyle, c.EyeType,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save character: %w", err)
	}
	return nil
}

// DeleteCharacter removes the saved character of owner.
func (s *Store) DeleteCharacter(owner string) error {
	if _, err := s.db.Exec("DELETE FROM characters WHERE owner = ?", owner); err != nil {
		return fmt.Errorf("storage: cannot delete character: %w", err)
	}
	return nil
}

// SaveRun records a completed level and the items collected in it.
// Returns the ID of the inserted record.
func (s *Store) SaveRun(run RunEntry) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.Exec(
		"INSERT INTO level_runs (owner, level_id, ticks, duration_ms) VALUES (?, ?, ?, ?)",
		run.Owner, run.LevelID, int64(run.Ticks), run.Duration.Milliseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	for i, name := range run.Items {
		if _, err := tx.Exec(
			"INSERT INTO run_items (run_id, position, name) VALUES (?, ?, ?)",
			id, i, name,
		); err != nil {
			return 0, fmt.Errorf("storage: cannot save run item: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("storage: cannot commit run: %w", err)
	}
	return id, nil
}

// BestRuns retrieves the fastest runs of a level, quickest first.
func (s *Store) BestRuns(levelID, limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, owner, level_id, ticks, duration_ms, created_at
		 FROM level_runs
		 WHERE level_id = ?
		 ORDER BY duration_ms ASC, id ASC
		 LIMIT ?`,
		levelID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var entries []RunEntry
	for rows.Next() {
		var (
			e         RunEntry
			ticks     int64
			ms        int64
			createdAt any
		)
		if err := rows.Scan(&e.ID, &e.Owner, &e.LevelID, &ticks, &ms, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Ticks = uint64(ticks)
		e.Duration = time.Duration(ms) * time.Millisecond
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	rows.Close()

	for i := range entries {
		if entries[i].Items, err = s.runItems(entries[i].ID); err != nil {
			return nil, err
		}
	}
	return entries, nil
}

// runItems returns the items of a run in pickup order, nil if none.
func (s *Store) runItems(runID int64) ([]string, error) {
	rows, err := s.db.Query(
		"SELECT name FROM run_items WHERE run_id = ? ORDER BY position ASC",
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run items: %w", err)
	}
	defer rows.Close()

	var items []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("storage: cannot scan run item: %w", err)
		}
		items = append(items, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: run item iteration error: %w", err)
	}
	return items, nil
}

// RunStats summarizes every run of a level. A level without runs
// returns zero stats.
func (s *Store) RunStats(levelID int) (RunStats, error) {
	var (
		count int
		best  sql.NullInt64
		avg   sql.NullFloat64
	)
	err := s.db.QueryRow(
		"SELECT COUNT(*), MIN(duration_ms), AVG(duration_ms) FROM level_runs WHERE level_id = ?",
		levelID,
	).Scan(&count, &best, &avg)
	if err != nil {
		return RunStats{}, fmt.Errorf("storage: cannot query run stats: %w", err)
	}

	stats := RunStats{Runs: count}
	if best.Valid {
		stats.Best = time.Duration(best.Int64) * time.Millisecond
	}
	if avg.Valid {
		stats.Average = time.Duration(avg.Float64 * float64(time.Millisecond))
	}
	return stats, nil
}

// ClearRuns deletes all runs of a level with their items.
func (s *Store) ClearRuns(levelID int) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		"DELETE FROM run_items WHERE run_id IN (SELECT id FROM level_runs WHERE level_id = ?)",
		levelID,
	); err != nil {
		return fmt.Errorf("storage: cannot clear run items: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM level_runs WHERE level_id = ?", levelID); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit clear: %w", err)
	}
	return nil
}

// parseTime handles the driver returning either time.Time or a string.
func parseTime(v any) time.Time {
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
